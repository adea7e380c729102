// Package lang carries the locale message catalogs for validation rules.
//
// A catalog is a flat mapping of rule name to message template. Templates use
// %s verbs for rule parameters; field placeholders are the renderer's
// concern, not the catalog's. Catalogs for a handful of locales ship embedded
// in the binary; additional ones can be parsed from YAML or JSON files at
// runtime.
package lang

import (
	"fmt"
	"path"
	"sort"
	"strings"
)

// Default is the locale assumed when the caller selects none.
const Default = "en"

// Messages maps rule names to message templates for one locale.
type Messages map[string]string

// Load returns the embedded message catalog for a locale.
func Load(locale string) (Messages, error) {
	content, err := localeFS.ReadFile(path.Join("locales", locale+".yml"))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLocale, locale)
	}
	return YAMLParser{}.Parse(content)
}

// Locales lists the embedded locales in sorted order.
func Locales() []string {
	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil
	}
	locales := make([]string, 0, len(entries))
	for _, entry := range entries {
		locales = append(locales, strings.TrimSuffix(entry.Name(), ".yml"))
	}
	sort.Strings(locales)
	return locales
}

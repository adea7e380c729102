package formcheck

import (
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// verbPattern matches printf conversion verbs, including flags, width and
// precision. Escaped percent signs are matched so they can be excluded from
// the count.
var verbPattern = regexp.MustCompile(`%(?:%|[-+# 0-9.]*[a-zA-Z])`)

// Render produces the final message for a failing field and rule. It
// substitutes {field} with the field's display label, {fieldN} with the label
// of the Nth parameter, stringifies all parameters, and applies printf-style
// positional substitution with the argument list capped to the number of
// verbs in the template. Rendering reads the label registry and never
// mutates validator state.
func (v *Validator) Render(field, template string, params Params) string {
	out := strings.ReplaceAll(template, "{field}", v.displayLabel(field))

	for i, param := range params {
		tag := fmt.Sprintf("{field%d}", i+1)
		if !strings.Contains(out, tag) {
			continue
		}
		name, ok := param.(string)
		if !ok {
			out = strings.ReplaceAll(out, tag, v.stringify(param))
			continue
		}
		out = strings.ReplaceAll(out, tag, v.displayLabel(name))
	}

	args := make([]any, len(params))
	for i, param := range params {
		args[i] = v.stringify(param)
	}
	if n := countVerbs(out); n < len(args) {
		args = args[:n]
	}
	if len(args) == 0 {
		return out
	}
	return fmt.Sprintf(out, args...)
}

func (v *Validator) displayLabel(field string) string {
	if label, ok := v.labels[field]; ok {
		return label
	}
	return humanize(field)
}

// humanize turns a field identifier into a display label: underscores become
// spaces and words are title-cased.
func humanize(field string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(field, "_", " "))
}

// stringify renders a parameter for message interpolation. String parameters
// with a registered label render as the label, times render as dates, lists
// render as quoted items, and other non-primitive values render as their
// type name.
func (v *Validator) stringify(param any) string {
	switch p := param.(type) {
	case nil:
		return ""
	case string:
		if label, ok := v.labels[p]; ok {
			return label
		}
		return p
	case time.Time:
		return p.Format("2006-01-02")
	}

	rv := reflect.ValueOf(param)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		items := make([]string, rv.Len())
		for i := range items {
			items[i] = fmt.Sprintf("%v", rv.Index(i).Interface())
		}
		return quoteList(items)
	case reflect.Map:
		items := make([]string, 0, rv.Len())
		for _, key := range rv.MapKeys() {
			items = append(items, fmt.Sprintf("%v", key.Interface()))
		}
		sort.Strings(items)
		return quoteList(items)
	case reflect.Struct, reflect.Pointer, reflect.Func, reflect.Chan:
		return fmt.Sprintf("%T", param)
	}
	return fmt.Sprintf("%v", param)
}

func quoteList(items []string) string {
	if len(items) == 0 {
		return "[]"
	}
	return "['" + strings.Join(items, "', '") + "']"
}

func countVerbs(template string) int {
	n := 0
	for _, m := range verbPattern.FindAllString(template, -1) {
		if m != "%%" {
			n++
		}
	}
	return n
}

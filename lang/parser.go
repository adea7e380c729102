package lang

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Parser turns serialized catalog content into Messages.
type Parser interface {
	Parse(content []byte) (Messages, error)
}

// YAMLParser implements the Parser interface for YAML catalogs: a flat
// mapping of rule name to message template.
type YAMLParser struct{}

// Parse parses YAML content and returns the message catalog.
func (YAMLParser) Parse(content []byte) (Messages, error) {
	var messages Messages
	if err := yaml.Unmarshal(content, &messages); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}
	if len(messages) == 0 {
		return nil, fmt.Errorf("%w: no messages found", ErrFailedToParseYAML)
	}
	return messages, nil
}

// SupportsFileExtension checks if the parser supports the given file extension.
func (YAMLParser) SupportsFileExtension(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	return strings.EqualFold(ext, "yaml") || strings.EqualFold(ext, "yml")
}

// JSONParser implements the Parser interface for JSON catalogs with the same
// flat shape as the YAML form.
type JSONParser struct{}

// Parse parses JSON content and returns the message catalog.
func (JSONParser) Parse(content []byte) (Messages, error) {
	var messages Messages
	if err := json.Unmarshal(content, &messages); err != nil {
		return nil, errors.Join(ErrFailedToParseJSON, err)
	}
	if len(messages) == 0 {
		return nil, fmt.Errorf("%w: no messages found", ErrFailedToParseJSON)
	}
	return messages, nil
}

// SupportsFileExtension checks if the parser supports the given file extension.
func (JSONParser) SupportsFileExtension(ext string) bool {
	return strings.EqualFold(strings.TrimPrefix(ext, "."), "json")
}

// LoadFile reads a message catalog from disk, picking the parser by file
// extension. Use it to supply locales beyond the embedded set, together with
// the validator's WithMessages option.
func LoadFile(path string) (Messages, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}

	ext := filepath.Ext(path)
	for _, parser := range []interface {
		Parser
		SupportsFileExtension(string) bool
	}{YAMLParser{}, JSONParser{}} {
		if parser.SupportsFileExtension(ext) {
			return parser.Parse(content)
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
}

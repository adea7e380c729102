package lang

import "errors"

var (
	// ErrUnknownLocale is returned when no embedded catalog exists for the
	// requested locale.
	ErrUnknownLocale = errors.New("unknown locale")

	// ErrFailedToParseYAML is returned when YAML catalog content does not
	// parse as a flat rule-to-template mapping.
	ErrFailedToParseYAML = errors.New("failed to parse YAML content")

	// ErrFailedToParseJSON is returned when JSON catalog content does not
	// parse as a flat rule-to-template mapping.
	ErrFailedToParseJSON = errors.New("failed to parse JSON content")

	// ErrFailedToReadFile is returned when a catalog file cannot be read.
	ErrFailedToReadFile = errors.New("failed to read message catalog file")

	// ErrUnsupportedFormat is returned when a catalog file has an extension no
	// parser supports.
	ErrUnsupportedFormat = errors.New("unsupported message catalog format")
)

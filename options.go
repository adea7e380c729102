package formcheck

import (
	"log/slog"

	"github.com/dmitrymomot/formcheck/lang"
)

// Option configures a Validator at construction.
type Option func(*Validator)

// WithFields restricts the record copy to the named top-level fields. Values
// outside the allow-list are invisible to rules and to Data.
func WithFields(fields ...string) Option {
	return func(v *Validator) {
		v.allow = append(v.allow, fields...)
	}
}

// WithLocale selects the embedded message catalog used for builtin rule
// messages. New fails when the locale is unknown.
func WithLocale(locale string) Option {
	return func(v *Validator) {
		if locale != "" {
			v.locale = locale
		}
	}
}

// WithMessages supplies an explicit message catalog and bypasses the embedded
// locales. Keys are rule names, values are message templates.
func WithMessages(messages lang.Messages) Option {
	return func(v *Validator) {
		if messages != nil {
			v.messages = messages
		}
	}
}

// WithCatalog points the validator at a rule catalog other than
// DefaultCatalog.
func WithCatalog(catalog *Catalog) Option {
	return func(v *Validator) {
		if catalog != nil {
			v.catalog = catalog
		}
	}
}

// WithLogger attaches a structured logger for construction and validation
// diagnostics. The default logger discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(v *Validator) {
		if logger != nil {
			v.logger = logger
		}
	}
}

// WithAccumulatedErrors makes repeated Validate calls append to the error map
// instead of starting from an empty one.
func WithAccumulatedErrors() Option {
	return func(v *Validator) {
		v.accumulate = true
	}
}

// Package formcheck validates nested data records, typically decoded web form
// or API input, against a declarative plan of field rules, producing per-field
// templated error messages and a pass/fail result.
//
// A Validator is built over one record, rules are bound to dot-separated
// field paths (a "*" segment fans out over every element of a collection),
// and Validate runs the plan in order. Optional fields whose values are
// absent are skipped unless the plan marks them required; rules that do run
// are evaluated against every resolved value, and the first failing value
// records one rendered message per field and rule.
//
// # Architecture
//
// Rule names resolve through a Catalog, a lock-guarded registry of named
// predicates with default message templates. Registered rules shadow the
// builtin table of the same names, so a caller can replace any builtin by
// registering under its name. Validators consult the process-wide
// DefaultCatalog unless WithCatalog injects an isolated one, which keeps
// tests hermetic. Builtin rule families live in per-domain files
// (string_rules.go, numeric_rules.go, date_rules.go, etc.).
//
// Messages come from embedded locale catalogs in the lang subpackage, render
// with {field} and {fieldN} placeholders resolved through the label registry,
// and interpolate rule parameters with printf verbs. The clientside
// subpackage exports a plan as the schema the jQuery Validation plugin
// understands.
//
// # Usage
//
//	v, err := formcheck.New(record)
//	if err != nil {
//	    return err
//	}
//	v.Rule("required", "email")
//	v.Rule("email", "email")
//	if b, err := v.Rule("lengthMin", "username", 3); err == nil {
//	    b.Message("{field} needs at least %s characters").Label("User Name")
//	}
//	if !v.Validate() {
//	    for _, field := range v.Errors().Fields() {
//	        // v.Errors().Get(field) holds the rendered messages
//	    }
//	}
//
// # Error Handling
//
// Configuration mistakes (unknown rule names, bad parameters, missing locale
// catalogs) surface immediately as errors from the offending call, wrapped
// around the package's sentinel errors for errors.Is checks. Validation
// failures are never Go errors: they accumulate in the ErrorMap returned by
// Errors, and an empty map means the record passed.
//
// # Concurrency
//
// A Validator owns its record copy, plan, labels, and error map, and is not
// safe for concurrent use. Catalogs are safe for concurrent registration and
// lookup, so one validator per goroutine over a shared catalog is the
// intended pattern. No builtin rule performs I/O except urlActive, which does
// a blocking DNS lookup.
package formcheck

package formcheck

import "strings"

// Validate runs the plan against the record and reports whether every binding
// passed. Failing bindings render one message per field into Errors. Each
// call starts from an empty error map unless the validator was built with
// WithAccumulatedErrors.
func (v *Validator) Validate() bool {
	if !v.accumulate {
		v.errors = make(ErrorMap)
	}

	for _, b := range v.plan {
		for _, field := range b.Fields {
			v.validateField(b, field)
		}
	}

	v.logger.Debug("Validation finished", "bindings", len(v.plan), "failed_fields", len(v.errors))
	return v.errors.IsEmpty()
}

func (v *Validator) validateField(b *Binding, field string) {
	value, multiple := resolvePath(v.fields, strings.Split(field, "."))

	presence := b.Name == "required" || b.Name == "accepted"
	if !presence && !v.planRequires(field) && absent(value, multiple) {
		return
	}

	pred := v.predicateFor(b.Name)
	for _, item := range spreadValues(value, multiple, presence) {
		if !pred(v, field, item, b.Params) {
			v.errors.Add(field, v.Render(field, b.Template, b.Params))
			return
		}
	}
}

// planRequires reports whether the plan contains a required binding for
// exactly this field. Optional fields are skipped when absent; required ones
// are not.
func (v *Validator) planRequires(field string) bool {
	for _, b := range v.plan {
		if b.Name != "required" {
			continue
		}
		for _, f := range b.Fields {
			if f == field {
				return true
			}
		}
	}
	return false
}

// absent reports whether a resolved value carries no content: nil, a string
// that is empty after trimming, or an empty multi-value collection.
func absent(value any, multiple bool) bool {
	if multiple {
		values, ok := value.([]any)
		return !ok || len(values) == 0
	}
	if value == nil {
		return true
	}
	if s, ok := value.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	return false
}

// spreadValues normalizes a resolved value to the sequence the predicate is
// applied over. Presence rules on an empty multi-value evaluate a single nil
// so an empty collection fails them.
func spreadValues(value any, multiple, presence bool) []any {
	if !multiple {
		return []any{value}
	}
	values, _ := value.([]any)
	if len(values) == 0 && presence {
		return []any{nil}
	}
	return values
}

// predicateFor resolves a rule name at validation time, catalog entry first
// so registered rules shadow builtins of the same name.
func (v *Validator) predicateFor(name string) predicate {
	if entry, ok := v.catalog.lookup(name); ok {
		return func(_ *Validator, field string, value any, params Params) bool {
			return entry.fn(field, value, params)
		}
	}
	if builtin, ok := builtinRules[name]; ok {
		return builtin.fn
	}
	// Rule rejects unknown names and catalog entries are never removed, so
	// this is unreachable. Fail closed regardless.
	return func(*Validator, string, any, Params) bool { return false }
}

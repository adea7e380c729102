package formcheck

import (
	"reflect"
	"strings"
)

// validateRequired fails on nil and on strings that are empty after trimming.
// Absence alone skips optional fields before predicates run; required is the
// rule that turns absence into a failure.
func validateRequired(_ *Validator, _ string, value any, _ Params) bool {
	if value == nil {
		return false
	}
	if s, ok := value.(string); ok {
		return strings.TrimSpace(s) != ""
	}
	return true
}

// acceptedValues is the literal set a checkbox-style field may carry.
var acceptedValues = []any{"yes", "on", "1", 1, int64(1), float64(1), true}

func validateAccepted(v *Validator, field string, value any, params Params) bool {
	if !validateRequired(v, field, value, params) {
		return false
	}
	for _, accepted := range acceptedValues {
		if value == accepted {
			return true
		}
	}
	return false
}

// validateBoolean passes only for actual bool values, not truthy encodings.
func validateBoolean(_ *Validator, _ string, value any, _ Params) bool {
	_, ok := value.(bool)
	return ok
}

func validateArray(_ *Validator, _ string, value any, _ Params) bool {
	switch reflect.ValueOf(value).Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return true
	}
	return false
}

// validateInstanceOf checks the value's dynamic type. The parameter is either
// a type name, with or without package qualifier, or an example value whose
// type the field value must share.
func validateInstanceOf(_ *Validator, _ string, value any, params Params) bool {
	if value == nil {
		return false
	}
	valueType := reflect.TypeOf(value)

	if name, ok := params.String(0); ok {
		return valueType.String() == name || valueType.Name() == name
	}
	example := params.At(0)
	if example == nil {
		return false
	}
	return valueType == reflect.TypeOf(example)
}

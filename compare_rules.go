package formcheck

import (
	"reflect"
	"strings"
)

// looseEqual mirrors form-value comparison: identical values are equal, and
// numeric values of different types compare by magnitude, so "1" equals 1.
// Booleans and non-numeric values only match their own kind.
func looseEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if reflect.DeepEqual(a, b) {
		return true
	}

	af, aok := bigFloat(a)
	bf, bok := bigFloat(b)
	return aok && bok && af.Cmp(bf) == 0
}

// validateEquals compares the value against another field, named by the first
// parameter and resolved through the same path rules as the binding's own
// field. A missing reference field never equals anything.
func validateEquals(v *Validator, _ string, value any, params Params) bool {
	other, ok := params.String(0)
	if !ok {
		return false
	}
	otherValue, _ := resolvePath(v.fields, strings.Split(other, "."))
	return otherValue != nil && looseEqual(value, otherValue)
}

// validateDifferent is the exact negation of equals.
func validateDifferent(v *Validator, field string, value any, params Params) bool {
	return !validateEquals(v, field, value, params)
}

// validateIn passes when the value is loosely equal to any member of the
// first parameter. A map parameter offers its keys.
func validateIn(_ *Validator, _ string, value any, params Params) bool {
	list, ok := params.List(0)
	if !ok {
		return false
	}
	for _, item := range list {
		if looseEqual(value, item) {
			return true
		}
	}
	return false
}

func validateNotIn(v *Validator, field string, value any, params Params) bool {
	if _, ok := params.List(0); !ok {
		return false
	}
	return !validateIn(v, field, value, params)
}

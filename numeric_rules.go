package formcheck

import (
	"math"
	"math/big"
	"reflect"
	"regexp"
	"strconv"
)

// integerPattern accepts canonical base-10 integers: no leading zeros, no
// negative zero.
var integerPattern = regexp.MustCompile(`^(0|-?[1-9][0-9]*)$`)

// toFloat converts numeric kinds and numeric strings to float64.
func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case nil:
		return 0, false
	case bool:
		return 0, false
	case string:
		f, err := strconv.ParseFloat(v, 64)
		return f, err == nil
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	case reflect.String:
		f, err := strconv.ParseFloat(rv.String(), 64)
		return f, err == nil
	}
	return 0, false
}

// bigFloat converts numeric kinds and numeric strings to arbitrary-precision
// floats so bound comparisons keep every digit long numeric strings carry.
func bigFloat(value any) (*big.Float, bool) {
	switch v := value.(type) {
	case nil:
		return nil, false
	case bool:
		return nil, false
	case string:
		f, _, err := big.ParseFloat(v, 10, 128, big.ToNearestEven)
		if err != nil || f.IsInf() {
			return nil, false
		}
		return f, true
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return new(big.Float).SetInt64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return new(big.Float).SetUint64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		if math.IsNaN(rv.Float()) || math.IsInf(rv.Float(), 0) {
			return nil, false
		}
		return new(big.Float).SetFloat64(rv.Float()), true
	case reflect.String:
		f, _, err := big.ParseFloat(rv.String(), 10, 128, big.ToNearestEven)
		if err != nil || f.IsInf() {
			return nil, false
		}
		return f, true
	}
	return nil, false
}

func validateNumeric(_ *Validator, _ string, value any, _ Params) bool {
	_, ok := bigFloat(value)
	return ok
}

// validateInteger accepts integer kinds, floats with no fractional part, and
// canonical integer strings.
func validateInteger(_ *Validator, _ string, value any, _ Params) bool {
	if s, ok := value.(string); ok {
		return integerPattern.MatchString(s)
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0) && math.Trunc(f) == f
	case reflect.String:
		return integerPattern.MatchString(rv.String())
	}
	return false
}

// validateMin passes when the value is a number greater than or equal to the
// bound, inclusive.
func validateMin(_ *Validator, _ string, value any, params Params) bool {
	v, ok := bigFloat(value)
	if !ok {
		return false
	}
	bound, ok := bigFloat(params.At(0))
	if !ok {
		return false
	}
	return v.Cmp(bound) >= 0
}

// validateMax passes when the value is a number less than or equal to the
// bound, inclusive.
func validateMax(_ *Validator, _ string, value any, params Params) bool {
	v, ok := bigFloat(value)
	if !ok {
		return false
	}
	bound, ok := bigFloat(params.At(0))
	if !ok {
		return false
	}
	return v.Cmp(bound) <= 0
}

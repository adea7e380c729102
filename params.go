package formcheck

import (
	"math"
	"reflect"
	"sort"
	"strconv"
	"time"
)

// Params is the ordered parameter list bound to a rule application. Values
// keep whatever type the caller passed to Rule; the typed accessors perform
// the conversions predicates commonly need and report whether the parameter
// was present and convertible.
type Params []any

// Len returns the number of bound parameters.
func (p Params) Len() int { return len(p) }

// At returns the i-th parameter, or nil when out of range.
func (p Params) At(i int) any {
	if i < 0 || i >= len(p) {
		return nil
	}
	return p[i]
}

// String returns the i-th parameter as a string.
func (p Params) String(i int) (string, bool) {
	s, ok := p.At(i).(string)
	return s, ok
}

// Int returns the i-th parameter as an int, converting integral floats and
// numeric strings.
func (p Params) Int(i int) (int, bool) {
	switch v := p.At(i).(type) {
	case int:
		return v, true
	case int8:
		return int(v), true
	case int16:
		return int(v), true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case uint:
		return int(v), true
	case uint8:
		return int(v), true
	case uint16:
		return int(v), true
	case uint32:
		return int(v), true
	case uint64:
		return int(v), true
	case float32:
		if float32(int(v)) == v {
			return int(v), true
		}
	case float64:
		if math.Trunc(v) == v {
			return int(v), true
		}
	case string:
		if n, err := strconv.Atoi(v); err == nil {
			return n, true
		}
	}
	return 0, false
}

// Float returns the i-th parameter as a float64, converting numeric kinds and
// numeric strings.
func (p Params) Float(i int) (float64, bool) {
	return toFloat(p.At(i))
}

// Time returns the i-th parameter as a time.Time. Accepts time.Time values
// and strings in any of the supported date layouts.
func (p Params) Time(i int) (time.Time, bool) {
	return toTime(p.At(i))
}

// List returns the i-th parameter as a flat value list. Slices and arrays
// yield their elements; maps yield their keys (the associative-as-list form),
// string keys sorted for determinism.
func (p Params) List(i int) ([]any, bool) {
	switch v := p.At(i).(type) {
	case nil:
		return nil, false
	case []any:
		return v, true
	case []string:
		out := make([]any, len(v))
		for j, s := range v {
			out[j] = s
		}
		return out, true
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := make([]any, len(keys))
		for j, k := range keys {
			out[j] = k
		}
		return out, true
	}

	rv := reflect.ValueOf(p.At(i))
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for j := range out {
			out[j] = rv.Index(j).Interface()
		}
		return out, true
	case reflect.Map:
		out := make([]any, 0, rv.Len())
		for _, k := range rv.MapKeys() {
			out = append(out, k.Interface())
		}
		sort.Slice(out, func(a, b int) bool {
			sa, aok := out[a].(string)
			sb, bok := out[b].(string)
			return aok && bok && sa < sb
		})
		return out, true
	}
	return nil, false
}

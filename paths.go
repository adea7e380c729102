package formcheck

import (
	"reflect"
	"sort"
	"strconv"
)

// resolvePath walks a nested record along dot-separated path segments and
// returns the value found together with a flag reporting whether any traversed
// segment was a "*" wildcard. Wildcard resolution collects the remaining-path
// value of every element; results of nested wildcards are concatenated into
// one flat slice, never nested. A segment that cannot be followed (key absent,
// index out of range, or the current value not being a container) is a dead
// end and resolves to (nil, false). Resolution never mutates the record and
// never fails: absent data is "no value", not an error.
func resolvePath(data any, segments []string) (any, bool) {
	if len(segments) == 0 {
		return data, false
	}

	segment, rest := segments[0], segments[1:]

	if segment == "*" {
		elems, ok := elements(data)
		if !ok {
			return nil, false
		}
		values := make([]any, 0, len(elems))
		for _, elem := range elems {
			value, multiple := resolvePath(elem, rest)
			if multiple {
				values = append(values, value.([]any)...)
			} else {
				values = append(values, value)
			}
		}
		return values, true
	}

	child, ok := index(data, segment)
	if !ok {
		return nil, false
	}
	if len(rest) == 0 {
		return child, false
	}
	return resolvePath(child, rest)
}

// elements lists the values a "*" segment fans out over: slice and array
// elements in order, map values in sorted-key order so resolution stays
// deterministic. Scalars and nil are not iterable.
func elements(data any) ([]any, bool) {
	switch v := data.(type) {
	case nil:
		return nil, false
	case []any:
		return v, true
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		values := make([]any, len(keys))
		for i, k := range keys {
			values[i] = v[k]
		}
		return values, true
	}

	rv := reflect.ValueOf(data)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		values := make([]any, rv.Len())
		for i := range values {
			values[i] = rv.Index(i).Interface()
		}
		return values, true
	case reflect.Map:
		keys := make([]string, 0, rv.Len())
		byKey := make(map[string]reflect.Value, rv.Len())
		for _, k := range rv.MapKeys() {
			if k.Kind() != reflect.String {
				return nil, false
			}
			keys = append(keys, k.String())
			byKey[k.String()] = rv.MapIndex(k)
		}
		sort.Strings(keys)
		values := make([]any, len(keys))
		for i, k := range keys {
			values[i] = byKey[k].Interface()
		}
		return values, true
	}
	return nil, false
}

// index looks a single concrete segment up in the current container. String
// segments address map keys; numeric segments additionally address slice and
// array positions.
func index(data any, segment string) (any, bool) {
	switch v := data.(type) {
	case nil:
		return nil, false
	case map[string]any:
		child, ok := v[segment]
		return child, ok
	case []any:
		i, err := strconv.Atoi(segment)
		if err != nil || i < 0 || i >= len(v) {
			return nil, false
		}
		return v[i], true
	}

	rv := reflect.ValueOf(data)
	switch rv.Kind() {
	case reflect.Map:
		keyType := rv.Type().Key()
		if keyType.Kind() != reflect.String {
			return nil, false
		}
		child := rv.MapIndex(reflect.ValueOf(segment).Convert(keyType))
		if !child.IsValid() {
			return nil, false
		}
		return child.Interface(), true
	case reflect.Slice, reflect.Array:
		i, err := strconv.Atoi(segment)
		if err != nil || i < 0 || i >= rv.Len() {
			return nil, false
		}
		return rv.Index(i).Interface(), true
	}
	return nil, false
}

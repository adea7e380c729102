package formcheck

import "time"

// dateLayouts are the formats the date rule and date parameters accept, tried
// in order.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
}

// toTime converts time values and date strings in a known layout.
func toTime(value any) (time.Time, bool) {
	switch v := value.(type) {
	case time.Time:
		return v, true
	case *time.Time:
		if v == nil {
			return time.Time{}, false
		}
		return *v, true
	case string:
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, v); err == nil {
				return t, true
			}
		}
	}
	return time.Time{}, false
}

func validateDate(_ *Validator, _ string, value any, _ Params) bool {
	_, ok := toTime(value)
	return ok
}

// validateDateFormat requires the value to parse with the exact layout given
// as the first parameter and to survive a format round-trip, so "2024-1-5"
// does not pass as "2006-01-02".
func validateDateFormat(_ *Validator, _ string, value any, params Params) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}
	layout, ok := params.String(0)
	if !ok {
		return false
	}

	t, err := time.Parse(layout, s)
	if err != nil {
		return false
	}
	return t.Format(layout) == s
}

// validateDateBefore passes when the value is strictly before the bound.
func validateDateBefore(_ *Validator, _ string, value any, params Params) bool {
	t, ok := toTime(value)
	if !ok {
		return false
	}
	bound, ok := params.Time(0)
	if !ok {
		return false
	}
	return t.Before(bound)
}

// validateDateAfter passes when the value is strictly after the bound.
func validateDateAfter(_ *Validator, _ string, value any, params Params) bool {
	t, ok := toTime(value)
	if !ok {
		return false
	}
	bound, ok := params.Time(0)
	if !ok {
		return false
	}
	return t.After(bound)
}

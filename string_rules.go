package formcheck

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	alphaPattern    = regexp.MustCompile(`^[a-zA-Z]+$`)
	alphaNumPattern = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	slugPattern     = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
)

// stringLength counts characters rather than bytes so multi-byte input
// measures the way users perceive it. Non-string values have no length.
func stringLength(value any) (int, bool) {
	s, ok := value.(string)
	if !ok {
		return 0, false
	}
	return utf8.RuneCountInString(s), true
}

func validateLength(_ *Validator, _ string, value any, params Params) bool {
	length, ok := stringLength(value)
	if !ok {
		return false
	}
	want, _ := params.Int(0)
	return length == want
}

// validateLengthBetween is inclusive on both ends.
func validateLengthBetween(_ *Validator, _ string, value any, params Params) bool {
	length, ok := stringLength(value)
	if !ok {
		return false
	}
	min, _ := params.Int(0)
	max, _ := params.Int(1)
	return length >= min && length <= max
}

func validateLengthMin(_ *Validator, _ string, value any, params Params) bool {
	length, ok := stringLength(value)
	if !ok {
		return false
	}
	min, _ := params.Int(0)
	return length >= min
}

func validateLengthMax(_ *Validator, _ string, value any, params Params) bool {
	length, ok := stringLength(value)
	if !ok {
		return false
	}
	max, _ := params.Int(0)
	return length <= max
}

func validateAlpha(_ *Validator, _ string, value any, _ Params) bool {
	s, ok := value.(string)
	return ok && alphaPattern.MatchString(s)
}

func validateAlphaNum(_ *Validator, _ string, value any, _ Params) bool {
	s, ok := value.(string)
	return ok && alphaNumPattern.MatchString(s)
}

func validateSlug(_ *Validator, _ string, value any, _ Params) bool {
	s, ok := value.(string)
	return ok && slugPattern.MatchString(s)
}

// validateRegex matches against a compiled *regexp.Regexp parameter or a
// pattern string vetted at bind time.
func validateRegex(_ *Validator, _ string, value any, params Params) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}
	switch p := params.At(0).(type) {
	case *regexp.Regexp:
		return p.MatchString(s)
	case string:
		re, err := regexp.Compile(p)
		if err != nil {
			return false
		}
		return re.MatchString(s)
	}
	return false
}

// validateContains requires both the value and the needle to be strings.
func validateContains(_ *Validator, _ string, value any, params Params) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}
	needle, ok := params.String(0)
	if !ok {
		return false
	}
	return strings.Contains(s, needle)
}

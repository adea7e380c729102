package formcheck

import (
	"fmt"
	"regexp"
	"strings"
)

// cardBrandPatterns match cleaned card numbers per brand.
var cardBrandPatterns = map[string]*regexp.Regexp{
	"visa":       regexp.MustCompile(`^4[0-9]{12}(?:[0-9]{3})?$`),
	"mastercard": regexp.MustCompile(`^(5[1-5]|2[2-7])[0-9]{14}$`),
	"amex":       regexp.MustCompile(`^3[47][0-9]{13}$`),
	"dinersclub": regexp.MustCompile(`^3(?:0[0-5]|[68][0-9])[0-9]{11}$`),
	"discover":   regexp.MustCompile(`^6(?:011|5[0-9]{2})[0-9]{12}$`),
}

var cardDigitsPattern = regexp.MustCompile(`^[0-9]+$`)

// validateCreditCard checks the Luhn checksum over the card number with
// spaces and dashes removed. An optional first parameter restricts the brand:
// a string names one brand, a list allows several, and a string followed by a
// list requires the named brand to be in the list.
func validateCreditCard(_ *Validator, _ string, value any, params Params) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}

	cleaned := strings.ReplaceAll(strings.ReplaceAll(s, " ", ""), "-", "")
	if !cardDigitsPattern.MatchString(cleaned) {
		return false
	}
	if len(cleaned) < 13 || len(cleaned) > 19 {
		return false
	}
	if !luhnValid(cleaned) {
		return false
	}

	if params.Len() == 0 {
		return true
	}

	if brand, ok := params.String(0); ok {
		if allowed, ok := params.List(1); ok && !brandListed(brand, allowed) {
			return false
		}
		pattern, ok := cardBrandPatterns[brand]
		return ok && pattern.MatchString(cleaned)
	}

	allowed, ok := params.List(0)
	if !ok {
		return false
	}
	for _, item := range allowed {
		brand, ok := item.(string)
		if !ok {
			continue
		}
		if pattern, ok := cardBrandPatterns[brand]; ok && pattern.MatchString(cleaned) {
			return true
		}
	}
	return false
}

func brandListed(brand string, allowed []any) bool {
	for _, item := range allowed {
		if name, ok := item.(string); ok && name == brand {
			return true
		}
	}
	return false
}

// luhnValid runs the Luhn algorithm over a string of digits, right to left.
func luhnValid(number string) bool {
	sum := 0
	double := false
	for i := len(number) - 1; i >= 0; i-- {
		digit := int(number[i] - '0')
		if double {
			digit *= 2
			if digit > 9 {
				digit = digit/10 + digit%10
			}
		}
		sum += digit
		double = !double
	}
	return sum%10 == 0
}

// creditCardParams accepts no parameters, a brand name, a brand list, or a
// brand name followed by the list it must belong to.
func creditCardParams(params Params) error {
	if params.Len() == 0 {
		return nil
	}
	_, isString := params.String(0)
	_, isList := params.List(0)
	if !isString && !isList {
		return fmt.Errorf("%w: parameter 1 must be a brand name or list of brands", ErrInvalidParams)
	}
	if params.Len() > 1 {
		if !isString {
			return fmt.Errorf("%w: a brand list takes no further parameters", ErrInvalidParams)
		}
		if _, ok := params.List(1); !ok {
			return fmt.Errorf("%w: parameter 2 must be a list of brands", ErrInvalidParams)
		}
	}
	return nil
}

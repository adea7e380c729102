package formcheck

import (
	"fmt"
	"regexp"
	"sync"
)

// RuleFunc is the contract for caller-registered rules. It receives the field
// identifier being validated, one resolved value, and the binding's
// parameters, and reports whether the value passes. Rules that need other
// parts of the record close over it.
type RuleFunc func(field string, value any, params Params) bool

// Catalog is a registry of named validation rules. Registration is additive
// and last-registration-wins, so a caller can shadow a builtin rule by
// registering under its name. A Catalog is safe for concurrent use.
type Catalog struct {
	mu      sync.RWMutex
	entries map[string]catalogEntry
}

type catalogEntry struct {
	fn      RuleFunc
	message string
}

// NewCatalog returns an empty rule catalog.
func NewCatalog() *Catalog {
	return &Catalog{entries: make(map[string]catalogEntry)}
}

// AddRule registers fn under name. The message becomes the default error
// template for bindings of this rule; when empty, the locale catalog entry
// for the name applies, falling back to a generic message.
func (c *Catalog) AddRule(name string, fn RuleFunc, message string) error {
	if name == "" {
		return ErrInvalidRuleName
	}
	if fn == nil {
		return fmt.Errorf("%w: %q", ErrInvalidRuleFunc, name)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[name] = catalogEntry{fn: fn, message: message}
	return nil
}

func (c *Catalog) lookup(name string) (catalogEntry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.entries[name]
	return entry, ok
}

// DefaultCatalog is the process-wide catalog consulted by validators unless
// WithCatalog injects a different one.
var DefaultCatalog = NewCatalog()

// AddRule registers a rule in DefaultCatalog. The registration is visible to
// every validator that uses the default catalog.
func AddRule(name string, fn RuleFunc, message string) error {
	return DefaultCatalog.AddRule(name, fn, message)
}

// predicate is the evaluation contract shared by builtin and registered
// rules. Builtins receive the validator so cross-field rules can resolve
// their reference field against the same record.
type predicate func(v *Validator, field string, value any, params Params) bool

// paramCheck inspects a binding's parameters when the rule is bound, so a
// misconfigured plan fails at build time instead of misbehaving during
// validation.
type paramCheck func(params Params) error

type builtinRule struct {
	fn    predicate
	check paramCheck
}

// builtinRules maps rule names to their implementations. Catalog entries
// shadow builtins of the same name at both bind and validation time.
var builtinRules = map[string]builtinRule{
	"required":   {fn: validateRequired},
	"accepted":   {fn: validateAccepted},
	"boolean":    {fn: validateBoolean},
	"array":      {fn: validateArray},
	"instanceOf": {fn: validateInstanceOf, check: arity(1)},

	"equals":    {fn: validateEquals, check: and(arity(1), stringParam(0))},
	"different": {fn: validateDifferent, check: and(arity(1), stringParam(0))},
	"in":        {fn: validateIn, check: and(arity(1), listParam(0))},
	"notIn":     {fn: validateNotIn, check: and(arity(1), listParam(0))},
	"contains":  {fn: validateContains, check: and(arity(1), stringParam(0))},

	"numeric": {fn: validateNumeric},
	"integer": {fn: validateInteger},
	"min":     {fn: validateMin, check: and(arity(1), numericParam(0))},
	"max":     {fn: validateMax, check: and(arity(1), numericParam(0))},

	"length":        {fn: validateLength, check: and(arity(1), intParam(0))},
	"lengthBetween": {fn: validateLengthBetween, check: and(arity(2), intParam(0), intParam(1))},
	"lengthMin":     {fn: validateLengthMin, check: and(arity(1), intParam(0))},
	"lengthMax":     {fn: validateLengthMax, check: and(arity(1), intParam(0))},
	"alpha":         {fn: validateAlpha},
	"alphaNum":      {fn: validateAlphaNum},
	"slug":          {fn: validateSlug},
	"regex":         {fn: validateRegex, check: and(arity(1), regexParam(0))},

	"email":     {fn: validateEmail},
	"url":       {fn: validateURL},
	"urlActive": {fn: validateURLActive},
	"ip":        {fn: validateIP},
	"uuid":      {fn: validateUUID},

	"date":       {fn: validateDate},
	"dateFormat": {fn: validateDateFormat, check: and(arity(1), stringParam(0))},
	"dateBefore": {fn: validateDateBefore, check: and(arity(1), timeParam(0))},
	"dateAfter":  {fn: validateDateAfter, check: and(arity(1), timeParam(0))},

	"creditCard": {fn: validateCreditCard, check: creditCardParams},
}

func and(checks ...paramCheck) paramCheck {
	return func(params Params) error {
		for _, check := range checks {
			if err := check(params); err != nil {
				return err
			}
		}
		return nil
	}
}

func arity(n int) paramCheck {
	return func(params Params) error {
		if params.Len() < n {
			return fmt.Errorf("%w: want %d parameter(s), got %d", ErrInvalidParams, n, params.Len())
		}
		return nil
	}
}

func intParam(i int) paramCheck {
	return func(params Params) error {
		if _, ok := params.Int(i); !ok {
			return fmt.Errorf("%w: parameter %d must be an integer", ErrInvalidParams, i+1)
		}
		return nil
	}
}

func numericParam(i int) paramCheck {
	return func(params Params) error {
		if _, ok := bigFloat(params.At(i)); !ok {
			return fmt.Errorf("%w: parameter %d must be numeric", ErrInvalidParams, i+1)
		}
		return nil
	}
}

func stringParam(i int) paramCheck {
	return func(params Params) error {
		if _, ok := params.String(i); !ok {
			return fmt.Errorf("%w: parameter %d must be a string", ErrInvalidParams, i+1)
		}
		return nil
	}
}

func listParam(i int) paramCheck {
	return func(params Params) error {
		if _, ok := params.List(i); !ok {
			return fmt.Errorf("%w: parameter %d must be a list or map", ErrInvalidParams, i+1)
		}
		return nil
	}
}

func timeParam(i int) paramCheck {
	return func(params Params) error {
		if _, ok := params.Time(i); !ok {
			return fmt.Errorf("%w: parameter %d must be a time or parseable date", ErrInvalidParams, i+1)
		}
		return nil
	}
}

func regexParam(i int) paramCheck {
	return func(params Params) error {
		switch p := params.At(i).(type) {
		case *regexp.Regexp:
			return nil
		case string:
			if _, err := regexp.Compile(p); err != nil {
				return fmt.Errorf("%w: parameter %d: %w", ErrInvalidParams, i+1, err)
			}
			return nil
		}
		return fmt.Errorf("%w: parameter %d must be a pattern string or *regexp.Regexp", ErrInvalidParams, i+1)
	}
}

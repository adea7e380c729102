package formcheck

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Configuration errors returned from construction and plan-building calls.
// They abort the offending call immediately; validation failures are never
// returned as errors, they accumulate in the ErrorMap instead.
var (
	// ErrUnknownRule is returned when a rule name is neither registered in the
	// catalog nor present in the builtin table.
	ErrUnknownRule = errors.New("unknown validation rule")

	// ErrInvalidRuleFunc is returned when a nil predicate is registered.
	ErrInvalidRuleFunc = errors.New("rule function is nil")

	// ErrInvalidRuleName is returned when a rule is registered under an empty name.
	ErrInvalidRuleName = errors.New("rule name is empty")

	// ErrInvalidParams is returned when a binding's parameters do not satisfy
	// the rule's arity or type expectations.
	ErrInvalidParams = errors.New("invalid rule parameters")

	// ErrNoFields is returned when a binding names no fields.
	ErrNoFields = errors.New("rule requires at least one field")

	// ErrMessages is returned when the locale message catalog cannot be loaded
	// at construction time.
	ErrMessages = errors.New("failed to load message catalog")
)

// ErrorMap collects rendered validation messages keyed by field identifier.
// Messages for a field keep the order in which they were recorded. An empty
// map means the record passed validation.
type ErrorMap map[string][]string

// Error implements the error interface.
func (e ErrorMap) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(e))
	for _, field := range e.Fields() {
		parts = append(parts, fmt.Sprintf("%s: %s", field, e[field][0]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add appends a message for a field.
func (e ErrorMap) Add(field, message string) {
	e[field] = append(e[field], message)
}

// Get returns all messages recorded for a field, nil when the field passed.
func (e ErrorMap) Get(field string) []string {
	return e[field]
}

// First returns the first message recorded for a field, or the empty string.
func (e ErrorMap) First(field string) string {
	if msgs := e[field]; len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

// Has reports whether any message was recorded for the field.
func (e ErrorMap) Has(field string) bool {
	return len(e[field]) > 0
}

// Fields returns the failing field identifiers in sorted order.
func (e ErrorMap) Fields() []string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// IsEmpty reports whether validation recorded no failures.
func (e ErrorMap) IsEmpty() bool {
	return len(e) == 0
}

// Package clientside translates a validation plan into the rule and message
// schema the jQuery Validation plugin consumes, as a JSON document or as
// inline data attributes.
//
// The export is lossy. Only rules with a client-side equivalent are
// translated; dateFormat, dateBefore, dateAfter, instanceOf, array and custom
// rules are omitted. Overlapping length and numeric bounds on one field merge
// to the tightest bound, and a merged entry's message is regenerated from the
// locale template, discarding per-binding overrides. Wildcard field paths are
// exported verbatim and only match form inputs named accordingly.
package clientside

import (
	"fmt"
	"html"
	"regexp"
	"sort"
	"strings"

	"github.com/goccy/go-json"

	"github.com/dmitrymomot/formcheck"
)

// Export bundles per-field rule objects and their messages, keyed the way the
// jQuery Validation plugin expects.
type Export struct {
	Rules    map[string]map[string]any    `json:"rules"`
	Messages map[string]map[string]string `json:"messages"`
}

// Build translates the validator's current plan. The validator is read, never
// mutated; rebuild the export after adding bindings.
func Build(v *formcheck.Validator) Export {
	b := &builder{
		v:        v,
		rules:    make(map[string]map[string]any),
		messages: make(map[string]map[string]string),
		lengths:  make(map[string]*lengthBound),
		mins:     make(map[string]*numericBound),
		maxs:     make(map[string]*numericBound),
	}
	for _, binding := range v.Bindings() {
		for _, field := range binding.Fields {
			b.add(field, binding)
		}
	}
	return b.export()
}

// Rules returns only the per-field rule objects.
func Rules(v *formcheck.Validator) map[string]map[string]any {
	return Build(v).Rules
}

// Messages returns only the per-field message objects.
func Messages(v *formcheck.Validator) map[string]map[string]string {
	return Build(v).Messages
}

// JSON marshals the export as one document with "rules" and "messages" keys.
func JSON(v *formcheck.Validator) ([]byte, error) {
	return json.Marshal(Build(v))
}

// Attributes renders the inline data-rule-*/data-msg-* attribute string for
// one field's input element, rule keys in sorted order. Fields without
// translatable rules render as the empty string.
func Attributes(v *formcheck.Validator, field string) string {
	export := Build(v)
	rules := export.Rules[field]
	if len(rules) == 0 {
		return ""
	}

	keys := make([]string, 0, len(rules))
	for key := range rules {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, 2*len(keys))
	for _, key := range keys {
		attr := strings.ToLower(key)
		parts = append(parts, fmt.Sprintf(`data-rule-%s="%s"`, attr, html.EscapeString(attrValue(rules[key]))))
		if message := export.Messages[field][key]; message != "" {
			parts = append(parts, fmt.Sprintf(`data-msg-%s="%s"`, attr, html.EscapeString(message)))
		}
	}
	return strings.Join(parts, " ")
}

type builder struct {
	v        *formcheck.Validator
	rules    map[string]map[string]any
	messages map[string]map[string]string
	lengths  map[string]*lengthBound
	mins     map[string]*numericBound
	maxs     map[string]*numericBound
}

// lengthBound accumulates length constraints for one field. The binding is
// kept so a bound contributed by a single rule keeps that rule's message.
type lengthBound struct {
	low, high       int
	hasLow, hasHigh bool
	count           int
	binding         *formcheck.Binding
}

type numericBound struct {
	value   float64
	binding *formcheck.Binding
	merged  bool
}

func (b *builder) add(field string, binding *formcheck.Binding) {
	switch binding.Name {
	case "required", "accepted":
		b.set(field, "required", true, binding)
	case "email":
		b.set(field, "email", true, binding)
	case "url", "urlActive":
		b.set(field, "url", true, binding)
	case "numeric":
		b.set(field, "number", true, binding)
	case "integer":
		b.set(field, "digits", true, binding)
	case "date":
		b.set(field, "date", true, binding)
	case "creditCard":
		b.set(field, "creditcard", true, binding)
	case "equals":
		if other, ok := binding.Params.String(0); ok {
			b.set(field, "equalTo", "#"+other, binding)
		}
	case "regex":
		if pattern, ok := patternSource(binding.Params.At(0)); ok {
			b.set(field, "pattern", pattern, binding)
		}
	case "min":
		if value, ok := binding.Params.Float(0); ok {
			mergeNumeric(b.mins, field, value, binding, func(next, current float64) bool { return next > current })
		}
	case "max":
		if value, ok := binding.Params.Float(0); ok {
			mergeNumeric(b.maxs, field, value, binding, func(next, current float64) bool { return next < current })
		}
	case "length":
		if n, ok := binding.Params.Int(0); ok {
			b.length(field, binding).narrow(n, n)
		}
	case "lengthBetween":
		low, lowOK := binding.Params.Int(0)
		high, highOK := binding.Params.Int(1)
		if lowOK && highOK {
			b.length(field, binding).narrow(low, high)
		}
	case "lengthMin":
		if n, ok := binding.Params.Int(0); ok {
			b.length(field, binding).narrowLow(n)
		}
	case "lengthMax":
		if n, ok := binding.Params.Int(0); ok {
			b.length(field, binding).narrowHigh(n)
		}
	}
}

func (b *builder) set(field, key string, value any, binding *formcheck.Binding) {
	if b.rules[field] == nil {
		b.rules[field] = make(map[string]any)
		b.messages[field] = make(map[string]string)
	}
	b.rules[field][key] = value
	b.messages[field][key] = b.v.Render(field, binding.Template, binding.Params)
}

func (b *builder) length(field string, binding *formcheck.Binding) *lengthBound {
	lb := b.lengths[field]
	if lb == nil {
		lb = &lengthBound{}
		b.lengths[field] = lb
	}
	lb.count++
	lb.binding = binding
	return lb
}

func (lb *lengthBound) narrow(low, high int) {
	lb.narrowLow(low)
	lb.narrowHigh(high)
}

func (lb *lengthBound) narrowLow(low int) {
	if !lb.hasLow || low > lb.low {
		lb.low = low
	}
	lb.hasLow = true
}

func (lb *lengthBound) narrowHigh(high int) {
	if !lb.hasHigh || high < lb.high {
		lb.high = high
	}
	lb.hasHigh = true
}

func mergeNumeric(bounds map[string]*numericBound, field string, value float64, binding *formcheck.Binding, tighter func(next, current float64) bool) {
	nb := bounds[field]
	if nb == nil {
		bounds[field] = &numericBound{value: value, binding: binding}
		return
	}
	nb.merged = true
	if tighter(value, nb.value) {
		nb.value = value
	}
}

func (b *builder) export() Export {
	for field, nb := range b.mins {
		message := b.v.Render(field, nb.binding.Template, nb.binding.Params)
		if nb.merged {
			message = b.regenerate(field, "min", formcheck.Params{nb.value})
		}
		b.place(field, "min", nb.value, message)
	}
	for field, nb := range b.maxs {
		message := b.v.Render(field, nb.binding.Template, nb.binding.Params)
		if nb.merged {
			message = b.regenerate(field, "max", formcheck.Params{nb.value})
		}
		b.place(field, "max", nb.value, message)
	}

	for field, lb := range b.lengths {
		switch {
		case lb.hasLow && lb.hasHigh:
			message := b.lengthMessage(field, lb, "lengthBetween", formcheck.Params{lb.low, lb.high})
			b.place(field, "rangelength", []int{lb.low, lb.high}, message)
		case lb.hasLow:
			message := b.lengthMessage(field, lb, "lengthMin", formcheck.Params{lb.low})
			b.place(field, "minlength", lb.low, message)
		case lb.hasHigh:
			message := b.lengthMessage(field, lb, "lengthMax", formcheck.Params{lb.high})
			b.place(field, "maxlength", lb.high, message)
		}
	}

	return Export{Rules: b.rules, Messages: b.messages}
}

// lengthMessage keeps the contributing rule's own message when exactly one
// rule produced the bound, and regenerates from the locale template when
// bounds were merged.
func (b *builder) lengthMessage(field string, lb *lengthBound, rule string, params formcheck.Params) string {
	if lb.count == 1 {
		return b.v.Render(field, lb.binding.Template, lb.binding.Params)
	}
	return b.regenerate(field, rule, params)
}

func (b *builder) regenerate(field, rule string, params formcheck.Params) string {
	return b.v.Render(field, "{field} "+b.v.RuleMessage(rule), params)
}

func (b *builder) place(field, key string, value any, message string) {
	if b.rules[field] == nil {
		b.rules[field] = make(map[string]any)
		b.messages[field] = make(map[string]string)
	}
	b.rules[field][key] = value
	b.messages[field][key] = message
}

func patternSource(param any) (string, bool) {
	switch p := param.(type) {
	case *regexp.Regexp:
		return p.String(), true
	case string:
		return p, true
	}
	return "", false
}

func attrValue(value any) string {
	switch v := value.(type) {
	case bool:
		return "true"
	case []int:
		parts := make([]string, len(v))
		for i, n := range v {
			parts[i] = fmt.Sprintf("%d", n)
		}
		return "[" + strings.Join(parts, ",") + "]"
	default:
		return fmt.Sprintf("%v", v)
	}
}

package formcheck

import (
	"fmt"
	"sort"
)

// Binding is one rule application in the plan: a rule name, the fields it
// applies to, its parameters, and the message template rendered when it
// fails.
type Binding struct {
	Name     string
	Fields   []string
	Params   Params
	Template string

	v *Validator
}

// Message replaces the binding's message template and returns the binding for
// chaining. The template may use {field}, {fieldN} and printf verbs; unlike
// the default it carries no field prefix of its own.
func (b *Binding) Message(template string) *Binding {
	b.Template = template
	return b
}

// Label registers a display label for the binding's first field and returns
// the binding for chaining.
func (b *Binding) Label(label string) *Binding {
	if len(b.Fields) > 0 {
		b.v.labels[b.Fields[0]] = label
	}
	return b
}

// Rule appends a binding of the named rule on one field. It fails when the
// name resolves to neither a catalog entry nor a builtin, or when the
// parameters do not satisfy the rule's expectations.
func (v *Validator) Rule(name, field string, params ...any) (*Binding, error) {
	return v.RuleFields(name, []string{field}, params...)
}

// RuleFields appends one binding applying the named rule to several fields,
// validated in order.
func (v *Validator) RuleFields(name string, fields []string, params ...any) (*Binding, error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: rule %q", ErrNoFields, name)
	}

	if _, ok := v.catalog.lookup(name); !ok {
		builtin, ok := builtinRules[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownRule, name)
		}
		if builtin.check != nil {
			if err := builtin.check(Params(params)); err != nil {
				return nil, fmt.Errorf("rule %q: %w", name, err)
			}
		}
	}

	b := &Binding{
		Name:     name,
		Fields:   append([]string(nil), fields...),
		Params:   Params(params),
		Template: "{field} " + v.RuleMessage(name),
		v:        v,
	}
	v.plan = append(v.plan, b)
	return b, nil
}

// RuleSpec is one application of a rule in the bulk Rules form.
type RuleSpec struct {
	Fields []string
	Params []any
}

// RuleSet maps rule names to their applications for bulk plan building.
type RuleSet map[string][]RuleSpec

// Rules appends bindings for a bulk rule set. Rule names are applied in
// sorted order and each rule's applications in declared order, so the same
// set always produces the same plan. The first configuration error aborts the
// expansion.
func (v *Validator) Rules(set RuleSet) error {
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		for _, spec := range set[name] {
			if _, err := v.RuleFields(name, spec.Fields, spec.Params...); err != nil {
				return err
			}
		}
	}
	return nil
}

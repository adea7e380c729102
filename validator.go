package formcheck

import (
	"errors"
	"io"
	"log/slog"

	"github.com/dmitrymomot/formcheck/lang"
)

// defaultMessage renders when neither the catalog nor the locale knows a
// rule's message template.
const defaultMessage = "Invalid"

// Validator checks one record against an incrementally built plan of rule
// bindings. The record is copied at construction, so later mutation by the
// caller is not observed. A Validator is not safe for concurrent use; the
// catalog it consults is.
type Validator struct {
	fields     map[string]any
	plan       []*Binding
	labels     map[string]string
	errors     ErrorMap
	messages   lang.Messages
	catalog    *Catalog
	logger     *slog.Logger
	locale     string
	allow      []string
	accumulate bool
}

// New builds a validator over record. The record's map and slice shapes are
// deep-copied. Options select the locale, restrict the copy to an allow-list
// of top-level fields, and inject a rule catalog or logger. New fails when
// the requested locale has no message catalog.
func New(record map[string]any, opts ...Option) (*Validator, error) {
	v := &Validator{
		labels:  make(map[string]string),
		errors:  make(ErrorMap),
		catalog: DefaultCatalog,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		locale:  lang.Default,
	}
	for _, opt := range opts {
		opt(v)
	}

	if v.messages == nil {
		messages, err := lang.Load(v.locale)
		if err != nil {
			return nil, errors.Join(ErrMessages, err)
		}
		v.messages = messages
	}

	v.fields = copyRecord(record, v.allow)
	v.logger.Debug("Validator created", "locale", v.locale, "fields", len(v.fields))
	return v, nil
}

// Data returns the validator's filtered copy of the record. The map is owned
// by the validator; treat it as read-only.
func (v *Validator) Data() map[string]any {
	return v.fields
}

// Errors returns the error map produced by the last Validate call. The map is
// live: a later Validate call may replace its contents.
func (v *Validator) Errors() ErrorMap {
	return v.errors
}

// Labels registers display labels for several fields at once and returns the
// validator for chaining. Later registrations win.
func (v *Validator) Labels(labels map[string]string) *Validator {
	for field, label := range labels {
		v.labels[field] = label
	}
	return v
}

// Reset clears the record, plan, labels, and errors so the validator can be
// reloaded. The locale, message catalog, rule catalog, and logger are kept.
func (v *Validator) Reset() {
	v.fields = make(map[string]any)
	v.plan = nil
	v.labels = make(map[string]string)
	v.errors = make(ErrorMap)
}

// Bindings returns the plan in application order. The slice is owned by the
// validator; treat it as read-only.
func (v *Validator) Bindings() []*Binding {
	return v.plan
}

// RuleMessage returns the message template for a rule name before the
// "{field} " prefix a binding adds: the message the rule was registered with
// when non-empty, otherwise the locale catalog entry, otherwise a generic
// default.
func (v *Validator) RuleMessage(name string) string {
	if entry, ok := v.catalog.lookup(name); ok && entry.message != "" {
		return entry.message
	}
	if message, ok := v.messages[name]; ok {
		return message
	}
	v.logger.Warn("Message template not found", "rule", name, "locale", v.locale)
	return defaultMessage
}

func copyRecord(record map[string]any, allow []string) map[string]any {
	fields := make(map[string]any, len(record))
	if len(allow) == 0 {
		for key, value := range record {
			fields[key] = copyValue(value)
		}
		return fields
	}
	for _, key := range allow {
		if value, ok := record[key]; ok {
			fields[key] = copyValue(value)
		}
	}
	return fields
}

// copyValue deep-copies the map and slice shapes a decoded form or JSON body
// is built from. Other values, including structs and pointers, are shared.
func copyValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[key] = copyValue(item)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = copyValue(item)
		}
		return out
	case []string:
		return append([]string(nil), v...)
	case []int:
		return append([]int(nil), v...)
	case []float64:
		return append([]float64(nil), v...)
	case map[string]string:
		out := make(map[string]string, len(v))
		for key, item := range v {
			out[key] = item
		}
		return out
	}
	return value
}

package clientside_test

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formcheck"
	"github.com/dmitrymomot/formcheck/clientside"
)

func planned(t *testing.T, record map[string]any) *formcheck.Validator {
	t.Helper()
	v, err := formcheck.New(record)
	require.NoError(t, err)
	return v
}

func mustBind(t *testing.T, v *formcheck.Validator, name, field string, params ...any) *formcheck.Binding {
	t.Helper()
	b, err := v.Rule(name, field, params...)
	require.NoError(t, err)
	return b
}

func TestRules_Mapping(t *testing.T) {
	t.Parallel()
	v := planned(t, map[string]any{})
	mustBind(t, v, "required", "email")
	mustBind(t, v, "email", "email")
	mustBind(t, v, "urlActive", "website")
	mustBind(t, v, "numeric", "price")
	mustBind(t, v, "integer", "qty")
	mustBind(t, v, "min", "qty", 1)
	mustBind(t, v, "max", "qty", 99)
	mustBind(t, v, "equals", "password_confirm", "password")
	mustBind(t, v, "creditCard", "card")
	mustBind(t, v, "date", "start")
	mustBind(t, v, "regex", "sku", `^[A-Z]{3}-[0-9]+$`)

	rules := clientside.Rules(v)

	assert.Equal(t, true, rules["email"]["required"])
	assert.Equal(t, true, rules["email"]["email"])
	assert.Equal(t, true, rules["website"]["url"])
	assert.Equal(t, true, rules["price"]["number"])
	assert.Equal(t, true, rules["qty"]["digits"])
	assert.Equal(t, 1.0, rules["qty"]["min"])
	assert.Equal(t, 99.0, rules["qty"]["max"])
	assert.Equal(t, "#password", rules["password_confirm"]["equalTo"])
	assert.Equal(t, true, rules["card"]["creditcard"])
	assert.Equal(t, true, rules["start"]["date"])
	assert.Equal(t, `^[A-Z]{3}-[0-9]+$`, rules["sku"]["pattern"])
}

func TestRules_OmitsUntranslatableRules(t *testing.T) {
	t.Parallel()
	v := planned(t, map[string]any{})
	mustBind(t, v, "dateFormat", "start", "2006-01-02")
	mustBind(t, v, "dateBefore", "start", "2030-01-01")
	mustBind(t, v, "dateAfter", "start", "2020-01-01")
	mustBind(t, v, "instanceOf", "payload", "time.Time")
	mustBind(t, v, "array", "tags")
	mustBind(t, v, "alpha", "name")

	export := clientside.Build(v)
	assert.Empty(t, export.Rules)
	assert.Empty(t, export.Messages)
}

func TestRules_LengthMerging(t *testing.T) {
	t.Parallel()
	t.Run("min and max bounds combine into rangelength", func(t *testing.T) {
		v := planned(t, map[string]any{})
		mustBind(t, v, "lengthMin", "username", 3)
		mustBind(t, v, "lengthMax", "username", 10)

		export := clientside.Build(v)
		assert.Equal(t, []int{3, 10}, export.Rules["username"]["rangelength"])
		assert.Equal(t, "Username must be between 3 and 10 characters", export.Messages["username"]["rangelength"])
	})

	t.Run("overlapping bounds take the tightest", func(t *testing.T) {
		v := planned(t, map[string]any{})
		mustBind(t, v, "lengthBetween", "username", 2, 20)
		mustBind(t, v, "lengthBetween", "username", 5, 10)

		export := clientside.Build(v)
		assert.Equal(t, []int{5, 10}, export.Rules["username"]["rangelength"])
	})

	t.Run("a single bound keeps its own message", func(t *testing.T) {
		v := planned(t, map[string]any{})
		mustBind(t, v, "lengthMin", "username", 3).Message("{field} needs %s+ characters")

		export := clientside.Build(v)
		assert.Equal(t, 3, export.Rules["username"]["minlength"])
		assert.Equal(t, "Username needs 3+ characters", export.Messages["username"]["minlength"])
	})

	t.Run("merged bounds regenerate the message from the locale", func(t *testing.T) {
		v := planned(t, map[string]any{})
		mustBind(t, v, "lengthMin", "username", 3).Message("{field} custom minimum %s")
		mustBind(t, v, "lengthMin", "username", 5)

		export := clientside.Build(v)
		assert.Equal(t, 5, export.Rules["username"]["minlength"])
		assert.Equal(t, "Username must be at least 5 characters long", export.Messages["username"]["minlength"])
	})

	t.Run("exact length exports as a degenerate range", func(t *testing.T) {
		v := planned(t, map[string]any{})
		mustBind(t, v, "length", "pin", 4)

		export := clientside.Build(v)
		assert.Equal(t, []int{4, 4}, export.Rules["pin"]["rangelength"])
	})
}

func TestRules_NumericMerging(t *testing.T) {
	t.Parallel()
	v := planned(t, map[string]any{})
	mustBind(t, v, "min", "qty", 5).Message("{field} custom")
	mustBind(t, v, "min", "qty", 8)
	mustBind(t, v, "max", "qty", 100)
	mustBind(t, v, "max", "qty", 50)

	export := clientside.Build(v)
	assert.Equal(t, 8.0, export.Rules["qty"]["min"])
	assert.Equal(t, 50.0, export.Rules["qty"]["max"])
	assert.Equal(t, "Qty must be at least 8", export.Messages["qty"]["min"])
	assert.Equal(t, "Qty must be no more than 50", export.Messages["qty"]["max"])
}

func TestJSON(t *testing.T) {
	t.Parallel()
	v := planned(t, map[string]any{})
	mustBind(t, v, "required", "email")
	mustBind(t, v, "lengthMin", "username", 3)

	raw, err := clientside.JSON(v)
	require.NoError(t, err)

	var decoded struct {
		Rules    map[string]map[string]any    `json:"rules"`
		Messages map[string]map[string]string `json:"messages"`
	}
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Equal(t, true, decoded.Rules["email"]["required"])
	assert.Equal(t, 3.0, decoded.Rules["username"]["minlength"])
	assert.Equal(t, "Email is required", decoded.Messages["email"]["required"])
}

func TestAttributes(t *testing.T) {
	t.Parallel()
	t.Run("renders sorted data attributes", func(t *testing.T) {
		v := planned(t, map[string]any{})
		mustBind(t, v, "required", "email")
		mustBind(t, v, "email", "email")

		got := clientside.Attributes(v, "email")
		want := `data-rule-email="true" data-msg-email="Email is not a valid email address" ` +
			`data-rule-required="true" data-msg-required="Email is required"`
		assert.Equal(t, want, got)
	})

	t.Run("escapes message content", func(t *testing.T) {
		v := planned(t, map[string]any{})
		mustBind(t, v, "required", "email").Message(`{field} is "mandatory"`)

		got := clientside.Attributes(v, "email")
		assert.Contains(t, got, "&#34;mandatory&#34;")
		assert.NotContains(t, got, `"mandatory"`)
	})

	t.Run("renders range values as arrays", func(t *testing.T) {
		v := planned(t, map[string]any{})
		mustBind(t, v, "lengthBetween", "username", 3, 10)

		got := clientside.Attributes(v, "username")
		assert.Contains(t, got, `data-rule-rangelength="[3,10]"`)
	})

	t.Run("returns empty for fields without client rules", func(t *testing.T) {
		v := planned(t, map[string]any{})
		mustBind(t, v, "dateFormat", "start", "2006-01-02")

		assert.Equal(t, "", clientside.Attributes(v, "start"))
		assert.Equal(t, "", clientside.Attributes(v, "missing"))
	})
}

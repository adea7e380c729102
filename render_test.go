package formcheck_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formcheck"
)

func TestValidator_Render(t *testing.T) {
	t.Parallel()
	v := newValidator(t, map[string]any{})
	v.Labels(map[string]string{
		"dob":      "Date of Birth",
		"password": "Password",
	})

	t.Run("substitutes field labels", func(t *testing.T) {
		assert.Equal(t, "Date of Birth is required", v.Render("dob", "{field} is required", nil))
	})

	t.Run("humanizes unlabeled fields", func(t *testing.T) {
		assert.Equal(t, "First Name is required", v.Render("first_name", "{field} is required", nil))
	})

	t.Run("substitutes parameter field tags", func(t *testing.T) {
		got := v.Render("confirm", "{field} must match {field1}", formcheck.Params{"password"})
		assert.Equal(t, "Confirm must match Password", got)
	})

	t.Run("humanizes unlabeled parameter field tags", func(t *testing.T) {
		got := v.Render("confirm", "{field} must match {field1}", formcheck.Params{"secret_answer"})
		assert.Equal(t, "Confirm must match Secret Answer", got)
	})

	t.Run("interpolates parameters positionally", func(t *testing.T) {
		got := v.Render("name", "{field} must be between %s and %s characters", formcheck.Params{2, 10})
		assert.Equal(t, "Name must be between 2 and 10 characters", got)
	})

	t.Run("caps arguments to the verbs in the template", func(t *testing.T) {
		got := v.Render("name", "{field} is too short (%s minimum)", formcheck.Params{2, 10, "extra"})
		assert.Equal(t, "Name is too short (2 minimum)", got)
	})

	t.Run("leaves templates without verbs untouched", func(t *testing.T) {
		got := v.Render("name", "{field} looks wrong", formcheck.Params{1, 2, 3})
		assert.Equal(t, "Name looks wrong", got)
	})

	t.Run("renders string parameters through the label registry", func(t *testing.T) {
		got := v.Render("confirm", "{field} must equal '%s'", formcheck.Params{"password"})
		assert.Equal(t, "Confirm must equal 'Password'", got)
	})

	t.Run("renders list parameters as quoted items", func(t *testing.T) {
		got := v.Render("color", "{field} must be one of %s", formcheck.Params{[]any{"red", "green"}})
		assert.Equal(t, "Color must be one of ['red', 'green']", got)
	})

	t.Run("renders map parameters as sorted keys", func(t *testing.T) {
		got := v.Render("size", "{field} must be one of %s", formcheck.Params{map[string]any{"s": 1, "m": 2}})
		assert.Equal(t, "Size must be one of ['m', 's']", got)
	})

	t.Run("renders times as dates", func(t *testing.T) {
		bound := time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC)
		got := v.Render("start", "{field} must be before '%s'", formcheck.Params{bound})
		assert.Equal(t, "Start must be before '2024-06-01'", got)
	})

	t.Run("renders other non-primitives as their type", func(t *testing.T) {
		got := v.Render("f", "{field} got %s", formcheck.Params{struct{ X int }{1}})
		assert.Equal(t, "F got struct { X int }", got)
	})
}

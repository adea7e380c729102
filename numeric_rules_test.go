package formcheck_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRule_Numeric(t *testing.T) {
	t.Parallel()
	t.Run("accepts numbers and numeric strings", func(t *testing.T) {
		for _, value := range []any{42, int64(-7), uint8(3), 3.14, float32(2.5), "42", "-1.5", "1e3"} {
			assert.True(t, checkRule(t, "numeric", value), "value %v (%T) should be numeric", value, value)
		}
	})

	t.Run("rejects non-numeric values", func(t *testing.T) {
		for _, value := range []any{"abc", "12abc", true, []any{1}} {
			assert.False(t, checkRule(t, "numeric", value), "value %v (%T) should be rejected", value, value)
		}
	})
}

func TestRule_Integer(t *testing.T) {
	t.Parallel()
	t.Run("accepts integer kinds and integral floats", func(t *testing.T) {
		for _, value := range []any{42, int64(-7), uint(9), 5.0, float64(-3)} {
			assert.True(t, checkRule(t, "integer", value), "value %v (%T) should be an integer", value, value)
		}
	})

	t.Run("accepts canonical integer strings", func(t *testing.T) {
		for _, value := range []string{"0", "42", "-7"} {
			assert.True(t, checkRule(t, "integer", value), "value %q should be an integer", value)
		}
	})

	t.Run("rejects fractional values and sloppy strings", func(t *testing.T) {
		for _, value := range []any{5.5, "5.5", "007", "-0", "1e3", "abc", true} {
			assert.False(t, checkRule(t, "integer", value), "value %v (%T) should be rejected", value, value)
		}
	})
}

func TestRule_MinMax(t *testing.T) {
	t.Parallel()
	t.Run("bounds are inclusive", func(t *testing.T) {
		assert.True(t, checkRule(t, "min", 5, 5))
		assert.True(t, checkRule(t, "min", 6, 5))
		assert.False(t, checkRule(t, "min", 4, 5))

		assert.True(t, checkRule(t, "max", 5, 5))
		assert.True(t, checkRule(t, "max", 4, 5))
		assert.False(t, checkRule(t, "max", 6, 5))
	})

	t.Run("compares numeric strings by magnitude", func(t *testing.T) {
		assert.True(t, checkRule(t, "min", "10", 9))
		assert.False(t, checkRule(t, "min", "8", 9))
		assert.True(t, checkRule(t, "max", "2.5", 3))
	})

	t.Run("keeps precision on long numeric strings", func(t *testing.T) {
		assert.True(t, checkRule(t, "min", "100000000000000000000000001", "100000000000000000000000000"))
		assert.False(t, checkRule(t, "max", "100000000000000000000000001", "100000000000000000000000000"))
	})

	t.Run("rejects non-numeric values", func(t *testing.T) {
		assert.False(t, checkRule(t, "min", "abc", 1))
		assert.False(t, checkRule(t, "max", true, 1))
	})
}

package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/rulekit/pkg/rules"
)

func TestIsString(t *testing.T) {
	rule := rules.IsString()

	t.Run("passes for strings", func(t *testing.T) {
		assert.True(t, rule.Passes("hello", "f", nil))
		assert.True(t, rule.Passes("", "f", nil))
	})

	t.Run("fails for non-strings", func(t *testing.T) {
		assert.False(t, rule.Passes(1, "f", nil))
		assert.False(t, rule.Passes(nil, "f", nil))
	})
}

func TestIsInteger(t *testing.T) {
	rule := rules.IsInteger()

	t.Run("passes for integers", func(t *testing.T) {
		assert.True(t, rule.Passes(42, "f", nil))
		assert.True(t, rule.Passes(int64(42), "f", nil))
	})

	t.Run("passes for whole floats from json decoding", func(t *testing.T) {
		assert.True(t, rule.Passes(float64(42), "f", nil))
	})

	t.Run("passes for integer strings", func(t *testing.T) {
		assert.True(t, rule.Passes("42", "f", nil))
		assert.True(t, rule.Passes("-7", "f", nil))
	})

	t.Run("fails for fractional values", func(t *testing.T) {
		assert.False(t, rule.Passes(4.2, "f", nil))
		assert.False(t, rule.Passes("4.2", "f", nil))
	})

	t.Run("fails for empty string", func(t *testing.T) {
		assert.False(t, rule.Passes("", "f", nil))
	})

	t.Run("message", func(t *testing.T) {
		assert.Equal(t, "The age must be an integer.", rule.Message("age"))
	})
}

func TestIsNumeric(t *testing.T) {
	rule := rules.IsNumeric()

	t.Run("passes for numbers and numeric strings", func(t *testing.T) {
		assert.True(t, rule.Passes(4.2, "f", nil))
		assert.True(t, rule.Passes("4.2", "f", nil))
		assert.True(t, rule.Passes(uint8(4), "f", nil))
	})

	t.Run("fails otherwise", func(t *testing.T) {
		assert.False(t, rule.Passes("abc", "f", nil))
		assert.False(t, rule.Passes(true, "f", nil))
	})
}

func TestIsBoolean(t *testing.T) {
	rule := rules.IsBoolean()

	t.Run("passes for boolean encodings", func(t *testing.T) {
		assert.True(t, rule.Passes(true, "f", nil))
		assert.True(t, rule.Passes(0, "f", nil))
		assert.True(t, rule.Passes("1", "f", nil))
		assert.True(t, rule.Passes("False", "f", nil))
	})

	t.Run("fails otherwise", func(t *testing.T) {
		assert.False(t, rule.Passes(2, "f", nil))
		assert.False(t, rule.Passes("yes", "f", nil))
	})
}

func TestIsArray(t *testing.T) {
	rule := rules.IsArray()

	t.Run("passes for slices and maps", func(t *testing.T) {
		assert.True(t, rule.Passes([]any{1}, "f", nil))
		assert.True(t, rule.Passes(map[string]any{}, "f", nil))
		assert.True(t, rule.Passes([]string{"a"}, "f", nil))
	})

	t.Run("fails for scalars", func(t *testing.T) {
		assert.False(t, rule.Passes("abc", "f", nil))
		assert.False(t, rule.Passes(nil, "f", nil))
	})
}

package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit/pkg/rules"
)

func TestSometimes(t *testing.T) {
	rule := rules.Sometimes()
	ctrl, ok := rule.(rules.ControlRule)
	require.True(t, ok)

	t.Run("never fails", func(t *testing.T) {
		assert.True(t, rule.Passes(nil, "f", nil))
	})

	t.Run("skips when absent, not validated", func(t *testing.T) {
		skip, validated := ctrl.ShouldSkip(nil, false, nil)
		assert.True(t, skip)
		assert.False(t, validated)
	})

	t.Run("continues when present", func(t *testing.T) {
		skip, _ := ctrl.ShouldSkip("x", true, nil)
		assert.False(t, skip)
	})
}

func TestNullable(t *testing.T) {
	rule := rules.Nullable()
	ctrl, ok := rule.(rules.ControlRule)
	require.True(t, ok)

	t.Run("skips blank values as validated", func(t *testing.T) {
		skip, validated := ctrl.ShouldSkip("", true, nil)
		assert.True(t, skip)
		assert.True(t, validated)

		skip, validated = ctrl.ShouldSkip(nil, true, nil)
		assert.True(t, skip)
		assert.True(t, validated)
	})

	t.Run("continues for non-blank values", func(t *testing.T) {
		skip, _ := ctrl.ShouldSkip("value", true, nil)
		assert.False(t, skip)
	})
}

func TestBail(t *testing.T) {
	rule := rules.Bail()
	ctrl, ok := rule.(rules.ControlRule)
	require.True(t, ok)

	skip, _ := ctrl.ShouldSkip(nil, false, nil)
	assert.False(t, skip)
	assert.True(t, rule.Passes(nil, "f", nil))
	assert.Equal(t, rules.CostControl, rule.Cost())
}

package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit/pkg/rules"
)

func TestRegistryResolve(t *testing.T) {
	reg := rules.Default()

	t.Run("resolves known rule", func(t *testing.T) {
		rule, err := reg.Resolve("required", nil)
		require.NoError(t, err)
		assert.Equal(t, "required", rule.Name())
	})

	t.Run("resolves rule with arguments", func(t *testing.T) {
		rule, err := reg.Resolve("between", []string{"1", "10"})
		require.NoError(t, err)
		assert.Equal(t, "between", rule.Name())
	})

	t.Run("unknown rule name", func(t *testing.T) {
		_, err := reg.Resolve("does_not_exist", nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, rules.ErrUnknownRule)
	})

	t.Run("missing arguments", func(t *testing.T) {
		_, err := reg.Resolve("between", []string{"1"})
		require.Error(t, err)
		assert.ErrorIs(t, err, rules.ErrBadRuleArgs)
	})

	t.Run("non-numeric argument", func(t *testing.T) {
		_, err := reg.Resolve("min", []string{"abc"})
		require.Error(t, err)
		assert.ErrorIs(t, err, rules.ErrBadRuleArgs)
	})
}

func TestRegistryRegister(t *testing.T) {
	t.Run("custom rule is resolvable", func(t *testing.T) {
		reg := rules.NewRegistry()
		assert.False(t, reg.Has("always_ok"))

		reg.Register("always_ok", func([]string) (rules.Rule, error) {
			return rules.Required(), nil
		})
		assert.True(t, reg.Has("always_ok"))

		rule, err := reg.Resolve("always_ok", nil)
		require.NoError(t, err)
		assert.NotNil(t, rule)
	})
}

func TestCostOrdering(t *testing.T) {
	// The cost bands guarantee cheap checks sort before expensive ones.
	t.Run("bands are strictly increasing", func(t *testing.T) {
		assert.Less(t, rules.CostControl, rules.CostType)
		assert.Less(t, rules.CostType, rules.CostString)
		assert.Less(t, rules.CostString, rules.CostFormat)
		assert.Less(t, rules.CostFormat, rules.CostDatabase)
	})

	t.Run("database rules carry the highest band", func(t *testing.T) {
		rule, err := rules.Unique([]string{"users", "email"})
		require.NoError(t, err)
		assert.Equal(t, rules.CostDatabase, rule.Cost())
		assert.True(t, rule.Batchable())
	})

	t.Run("inline rules are not batchable", func(t *testing.T) {
		assert.False(t, rules.Required().Batchable())
		assert.False(t, rules.Email().Batchable())
	})
}

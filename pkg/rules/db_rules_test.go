package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit/pkg/rules"
)

func TestUnique(t *testing.T) {
	t.Run("table and column", func(t *testing.T) {
		rule, err := rules.Unique([]string{"users", "email"})
		require.NoError(t, err)

		db, ok := rule.(rules.DBRule)
		require.True(t, ok)
		assert.Equal(t, rules.KindUnique, db.Kind())
		assert.Equal(t, "users", db.Table())
		assert.Equal(t, "email", db.Column())
		_, _, hasIgnore := db.IgnoreID()
		assert.False(t, hasIgnore)
	})

	t.Run("with ignore id", func(t *testing.T) {
		rule, err := rules.Unique([]string{"users", "email", "5"})
		require.NoError(t, err)

		db := rule.(rules.DBRule)
		col, id, ok := db.IgnoreID()
		require.True(t, ok)
		assert.Equal(t, "id", col)
		assert.Equal(t, "5", id)
	})

	t.Run("explicit null ignore id means none", func(t *testing.T) {
		rule, err := rules.Unique([]string{"users", "email", "NULL"})
		require.NoError(t, err)

		_, _, ok := rule.(rules.DBRule).IgnoreID()
		assert.False(t, ok)
	})

	t.Run("custom id column", func(t *testing.T) {
		rule, err := rules.Unique([]string{"users", "email", "5", "user_id"})
		require.NoError(t, err)

		col, _, ok := rule.(rules.DBRule).IgnoreID()
		require.True(t, ok)
		assert.Equal(t, "user_id", col)
	})

	t.Run("missing table", func(t *testing.T) {
		_, err := rules.Unique(nil)
		assert.ErrorIs(t, err, rules.ErrBadRuleArgs)
	})

	t.Run("never fails inline", func(t *testing.T) {
		rule, err := rules.Unique([]string{"users", "email"})
		require.NoError(t, err)
		assert.True(t, rule.Passes("anything", "email", nil))
	})

	t.Run("message", func(t *testing.T) {
		rule, err := rules.Unique([]string{"users", "email"})
		require.NoError(t, err)
		assert.Equal(t, "The email has already been taken.", rule.Message("email"))
	})
}

func TestUniqueIgnoring(t *testing.T) {
	rule := rules.UniqueIgnoring("users", "email", 5, "")
	db := rule.(rules.DBRule)

	col, id, ok := db.IgnoreID()
	require.True(t, ok)
	assert.Equal(t, "id", col)
	assert.Equal(t, 5, id)
}

func TestExists(t *testing.T) {
	rule, err := rules.Exists([]string{"countries", "code"})
	require.NoError(t, err)

	db := rule.(rules.DBRule)
	assert.Equal(t, rules.KindExists, db.Kind())
	assert.Equal(t, "countries", db.Table())
	assert.Equal(t, "The selected country is invalid.", rule.Message("country"))
}

func TestUniqueComposite(t *testing.T) {
	t.Run("columns span the tuple", func(t *testing.T) {
		rule, err := rules.UniqueComposite([]string{"memberships", "user_id", "team_id"})
		require.NoError(t, err)

		comp, ok := rule.(rules.CompositeDBRule)
		require.True(t, ok)
		assert.Equal(t, rules.KindComposite, comp.Kind())
		assert.Equal(t, []string{"user_id", "team_id"}, comp.Columns())
	})

	t.Run("needs at least two columns", func(t *testing.T) {
		_, err := rules.UniqueComposite([]string{"memberships", "user_id"})
		assert.ErrorIs(t, err, rules.ErrBadRuleArgs)
	})
}

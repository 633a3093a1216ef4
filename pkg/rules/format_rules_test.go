package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit/pkg/rules"
)

func TestEmail(t *testing.T) {
	rule := rules.Email()

	t.Run("passes for valid addresses", func(t *testing.T) {
		assert.True(t, rule.Passes("test@example.com", "f", nil))
		assert.True(t, rule.Passes("user.name+tag@sub.example.co", "f", nil))
	})

	t.Run("fails for malformed addresses", func(t *testing.T) {
		assert.False(t, rule.Passes("", "f", nil))
		assert.False(t, rule.Passes("not-an-email", "f", nil))
		assert.False(t, rule.Passes("a@b", "f", nil))
		assert.False(t, rule.Passes("a@.com", "f", nil))
		assert.False(t, rule.Passes(42, "f", nil))
	})

	t.Run("message", func(t *testing.T) {
		assert.Equal(t, "The email must be a valid email address.", rule.Message("email"))
	})
}

func TestURL(t *testing.T) {
	rule := rules.URL()

	assert.True(t, rule.Passes("https://example.com/path", "f", nil))
	assert.True(t, rule.Passes("http://localhost:8080", "f", nil))
	assert.False(t, rule.Passes("example.com", "f", nil))
	assert.False(t, rule.Passes("ftp://example.com", "f", nil))
}

func TestUUID(t *testing.T) {
	rule := rules.UUID()

	t.Run("passes for canonical format", func(t *testing.T) {
		assert.True(t, rule.Passes("550e8400-e29b-41d4-a716-446655440000", "f", nil))
	})

	t.Run("fails for wrong shape", func(t *testing.T) {
		assert.False(t, rule.Passes("550e8400e29b41d4a716446655440000", "f", nil))
		assert.False(t, rule.Passes("zzze8400-e29b-41d4-a716-446655440000", "f", nil))
		assert.False(t, rule.Passes("", "f", nil))
	})
}

func TestIP(t *testing.T) {
	rule := rules.IP()

	assert.True(t, rule.Passes("192.168.1.1", "f", nil))
	assert.True(t, rule.Passes("2001:db8::1", "f", nil))
	assert.False(t, rule.Passes("999.1.1.1", "f", nil))
}

func TestJSON(t *testing.T) {
	rule := rules.JSON()

	assert.True(t, rule.Passes(`{"a": 1}`, "f", nil))
	assert.True(t, rule.Passes(`[1,2]`, "f", nil))
	assert.False(t, rule.Passes(`{a: 1}`, "f", nil))
}

func TestRegex(t *testing.T) {
	t.Run("matches the pattern", func(t *testing.T) {
		rule, err := rules.Regex([]string{`^[a-z]+$`})
		require.NoError(t, err)
		assert.True(t, rule.Passes("abc", "f", nil))
		assert.False(t, rule.Passes("Abc", "f", nil))
	})

	t.Run("commas in the pattern survive argument splitting", func(t *testing.T) {
		rule, err := rules.Regex([]string{`^\d{2`, `4}$`})
		require.NoError(t, err)
		assert.True(t, rule.Passes("123", "f", nil))
		assert.False(t, rule.Passes("1", "f", nil))
	})

	t.Run("bad pattern is a configuration error", func(t *testing.T) {
		_, err := rules.Regex([]string{`([`})
		require.Error(t, err)
		assert.ErrorIs(t, err, rules.ErrBadRuleArgs)
	})

	t.Run("not_regex inverts", func(t *testing.T) {
		rule, err := rules.NotRegex([]string{`\s`})
		require.NoError(t, err)
		assert.True(t, rule.Passes("no-spaces", "f", nil))
		assert.False(t, rule.Passes("has space", "f", nil))
	})
}

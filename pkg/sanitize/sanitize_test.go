package sanitize_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit/pkg/sanitize"
)

func TestChain(t *testing.T) {
	t.Run("resolves pipe-joined names in order", func(t *testing.T) {
		chain, err := sanitize.Chain("trim|lower")
		require.NoError(t, err)
		assert.Equal(t, "user@example.com", sanitize.Apply("  User@Example.COM ", chain...))
	})

	t.Run("empty segments are skipped", func(t *testing.T) {
		chain, err := sanitize.Chain("trim||lower|")
		require.NoError(t, err)
		assert.Len(t, chain, 2)
	})

	t.Run("unknown name is a configuration error", func(t *testing.T) {
		_, err := sanitize.Chain("trim|frobnicate")
		require.Error(t, err)
		assert.ErrorIs(t, err, sanitize.ErrUnknownTransform)
	})
}

func TestRegister(t *testing.T) {
	sanitize.Register("reverse_test", func(s string) string {
		r := []rune(s)
		for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
			r[i], r[j] = r[j], r[i]
		}
		return string(r)
	})

	chain, err := sanitize.Chain("reverse_test")
	require.NoError(t, err)
	assert.Equal(t, "cba", sanitize.Apply("abc", chain...))
}

func TestCompose(t *testing.T) {
	normalize := sanitize.Compose(sanitize.Trim, sanitize.Lower)
	assert.Equal(t, "hello", normalize("  HELLO "))
}

func TestTransforms(t *testing.T) {
	t.Run("trim", func(t *testing.T) {
		assert.Equal(t, "x", sanitize.Trim("  x\t"))
	})

	t.Run("capitalize", func(t *testing.T) {
		assert.Equal(t, "Hello world", sanitize.Capitalize("hello world"))
		assert.Equal(t, "", sanitize.Capitalize(""))
	})

	t.Run("squish", func(t *testing.T) {
		assert.Equal(t, "a b c", sanitize.Squish("  a \t b \n c  "))
	})

	t.Run("digits", func(t *testing.T) {
		assert.Equal(t, "4915112345678", sanitize.Digits("+49 (151) 123-456-78"))
	})

	t.Run("ascii strips diacritics", func(t *testing.T) {
		assert.Equal(t, "creme brulee", sanitize.ASCII("crème brûlée"))
		assert.Equal(t, "uber", strings.ToLower(sanitize.ASCII("Über")))
	})
}

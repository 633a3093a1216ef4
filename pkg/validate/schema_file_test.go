package validate_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit/pkg/validate"
)

func TestParseSchema(t *testing.T) {
	t.Run("pipe strings and token lists", func(t *testing.T) {
		schema, err := validate.ParseSchema([]byte(`
email: required|email
age:
  - required
  - integer
  - min:18
`))
		require.NoError(t, err)

		v, err := validate.New(schema)
		require.NoError(t, err)

		res, err := v.Validate(context.Background(), map[string]any{
			"email": "x@y.com",
			"age":   21,
		})
		require.NoError(t, err)
		assert.True(t, res.Passes())
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := validate.ParseSchema([]byte("a: [unclosed"))
		require.Error(t, err)
		assert.ErrorIs(t, err, validate.ErrInvalidRuleFormat)
	})
}

func TestParseSchemaFile(t *testing.T) {
	t.Run("reads from disk", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "schema.yaml")
		require.NoError(t, os.WriteFile(path, []byte("name: required|string\n"), 0o644))

		schema, err := validate.ParseSchemaFile(path)
		require.NoError(t, err)
		assert.Equal(t, "required|string", schema["name"])
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := validate.ParseSchemaFile(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
	})
}

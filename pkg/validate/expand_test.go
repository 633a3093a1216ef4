package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit/pkg/rules"
)

func mustCompile(t *testing.T, schema Schema) []fieldRules {
	t.Helper()
	compiled, err := compileSchema(schema, rules.Default())
	require.NoError(t, err)
	return compiled
}

func fieldsOf(schema []fieldRules) []string {
	out := make([]string, len(schema))
	for i, fr := range schema {
		out[i] = fr.field
	}
	return out
}

func TestExpandFlatPassthrough(t *testing.T) {
	compiled := mustCompile(t, Schema{"age": "required", "name": "required"})
	data := map[string]any{"age": 30, "name": "Alice"}

	flatSchema, flatData := expand(compiled, data)

	// No dot-notation fields: both inputs pass through untouched.
	assert.Equal(t, len(compiled), len(flatSchema))
	for i := range compiled {
		assert.Equal(t, compiled[i].field, flatSchema[i].field)
	}
	// Same map, not a copy.
	flatData["probe"] = true
	_, ok := data["probe"]
	assert.True(t, ok)
	delete(data, "probe")
}

func TestExpandDotPath(t *testing.T) {
	compiled := mustCompile(t, Schema{"address.city": "required"})

	t.Run("resolves nested value", func(t *testing.T) {
		data := map[string]any{"address": map[string]any{"city": "Berlin"}}
		_, flatData := expand(compiled, data)
		assert.Equal(t, "Berlin", flatData["address.city"])
	})

	t.Run("missing intermediate segment yields absence", func(t *testing.T) {
		data := map[string]any{"other": 1}
		flatSchema, flatData := expand(compiled, data)
		_, present := flatData["address.city"]
		assert.False(t, present)
		// The field itself still exists in the schema, so required fails later.
		assert.Contains(t, fieldsOf(flatSchema), "address.city")
	})

	t.Run("numeric segment indexes arrays", func(t *testing.T) {
		compiled := mustCompile(t, Schema{"items.1.sku": "required"})
		data := map[string]any{"items": []any{
			map[string]any{"sku": "A"},
			map[string]any{"sku": "B"},
		}}
		_, flatData := expand(compiled, data)
		assert.Equal(t, "B", flatData["items.1.sku"])
	})
}

func TestExpandWildcard(t *testing.T) {
	t.Run("one concrete field per array element", func(t *testing.T) {
		compiled := mustCompile(t, Schema{"items.*.x": "required"})
		data := map[string]any{"items": []any{
			map[string]any{"x": 1},
			map[string]any{"x": 0},
		}}

		flatSchema, flatData := expand(compiled, data)

		assert.Equal(t, []string{"items.0.x", "items.1.x"}, fieldsOf(flatSchema))
		assert.Equal(t, 1, flatData["items.0.x"])
		assert.Equal(t, 0, flatData["items.1.x"])
	})

	t.Run("expanded entries reuse the same rule list", func(t *testing.T) {
		compiled := mustCompile(t, Schema{"items.*.x": "required|integer"})
		data := map[string]any{"items": []any{map[string]any{"x": 1}, map[string]any{"x": 2}}}

		flatSchema, _ := expand(compiled, data)
		require.Len(t, flatSchema, 2)
		require.Len(t, flatSchema[0].rules, 2)
		require.Len(t, flatSchema[1].rules, 2)
	})

	t.Run("element missing the trailing key still yields a field", func(t *testing.T) {
		compiled := mustCompile(t, Schema{"items.*.x": "required"})
		data := map[string]any{"items": []any{
			map[string]any{"x": 1},
			map[string]any{"y": 2},
		}}

		flatSchema, flatData := expand(compiled, data)

		// Branching stops at the wildcard: the second element has no "x"
		// but the field must exist with an absent value so required fails.
		assert.Equal(t, []string{"items.0.x", "items.1.x"}, fieldsOf(flatSchema))
		assert.Equal(t, 1, flatData["items.0.x"])
		_, present := flatData["items.1.x"]
		assert.False(t, present)
	})

	t.Run("absent container expands to nothing", func(t *testing.T) {
		compiled := mustCompile(t, Schema{"items.*.x": "required"})
		flatSchema, _ := expand(compiled, map[string]any{"other": 1})
		assert.Empty(t, fieldsOf(flatSchema))
	})

	t.Run("non-iterable container expands to nothing", func(t *testing.T) {
		compiled := mustCompile(t, Schema{"items.*.x": "required"})
		flatSchema, _ := expand(compiled, map[string]any{"items": "not-a-list"})
		assert.Empty(t, fieldsOf(flatSchema))
	})

	t.Run("map containers expand by key", func(t *testing.T) {
		compiled := mustCompile(t, Schema{"prices.*": "numeric"})
		data := map[string]any{"prices": map[string]any{"eur": 10, "usd": 11}}

		flatSchema, flatData := expand(compiled, data)
		assert.Equal(t, []string{"prices.eur", "prices.usd"}, fieldsOf(flatSchema))
		assert.Equal(t, 10, flatData["prices.eur"])
	})

	t.Run("double wildcard walks both levels", func(t *testing.T) {
		compiled := mustCompile(t, Schema{"orders.*.lines.*.qty": "integer"})
		data := map[string]any{"orders": []any{
			map[string]any{"lines": []any{
				map[string]any{"qty": 1},
				map[string]any{"qty": 2},
			}},
			map[string]any{"lines": []any{
				map[string]any{"qty": 3},
			}},
		}}

		flatSchema, flatData := expand(compiled, data)
		assert.Equal(t, []string{
			"orders.0.lines.0.qty",
			"orders.0.lines.1.qty",
			"orders.1.lines.0.qty",
		}, fieldsOf(flatSchema))
		assert.Equal(t, 3, flatData["orders.1.lines.0.qty"])
	})

	t.Run("top-level data stays visible in the flat view", func(t *testing.T) {
		compiled := mustCompile(t, Schema{"items.*.x": "required"})
		data := map[string]any{
			"mode":  "strict",
			"items": []any{map[string]any{"x": 1}},
		}
		_, flatData := expand(compiled, data)
		assert.Equal(t, "strict", flatData["mode"])
	})
}

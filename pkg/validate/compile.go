package validate

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dmitrymomot/rulekit/pkg/rules"
)

// Schema maps field names (optionally dot-notated, with * wildcards) to
// their rules: a pipe-joined string, a slice of tokens, or pre-built
// rules.Rule instances.
type Schema map[string]any

type compiledRule struct {
	rule      rules.Rule
	cost      int
	batchable bool
}

type fieldRules struct {
	field string
	rules []compiledRule
}

// compileSchema resolves every rule token through the registry and sorts
// each field's rules by ascending cost. The sort is stable, so rules with
// equal cost keep their declaration order. Field order is lexicographic to
// make execution deterministic. Compilation never invokes a rule's Passes.
func compileSchema(schema Schema, reg *rules.Registry) ([]fieldRules, error) {
	fields := make([]string, 0, len(schema))
	for field := range schema {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	compiled := make([]fieldRules, 0, len(fields))
	for _, field := range fields {
		tokens, err := ruleTokens(field, schema[field])
		if err != nil {
			return nil, err
		}

		crs := make([]compiledRule, 0, len(tokens))
		for _, tok := range tokens {
			rule, err := resolveToken(field, tok, reg)
			if err != nil {
				return nil, err
			}
			crs = append(crs, compiledRule{
				rule:      rule,
				cost:      rule.Cost(),
				batchable: rule.Batchable(),
			})
		}

		// Stable: cheap checks first, ties keep declaration order.
		sort.SliceStable(crs, func(i, j int) bool {
			return crs[i].cost < crs[j].cost
		})

		compiled = append(compiled, fieldRules{field: field, rules: crs})
	}
	return compiled, nil
}

// ruleTokens normalizes the schema value for one field into a token list.
// A token is either a string ("between:1,10") or a rules.Rule instance.
func ruleTokens(field string, spec any) ([]any, error) {
	switch v := spec.(type) {
	case string:
		parts := strings.Split(v, "|")
		tokens := make([]any, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				tokens = append(tokens, p)
			}
		}
		return tokens, nil
	case []string:
		tokens := make([]any, len(v))
		for i, s := range v {
			tokens[i] = s
		}
		return tokens, nil
	case []any:
		return v, nil
	case rules.Rule:
		return []any{v}, nil
	}
	return nil, fmt.Errorf("%w: field %q: rules must be a string, a slice, or a rule instance, got %T",
		ErrInvalidRuleFormat, field, spec)
}

func resolveToken(field string, tok any, reg *rules.Registry) (rules.Rule, error) {
	switch t := tok.(type) {
	case rules.Rule:
		return t, nil
	case string:
		name, argstr, hasArgs := strings.Cut(t, ":")
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("%w: field %q: empty rule token", ErrInvalidRuleFormat, field)
		}
		var args []string
		if hasArgs {
			args = strings.Split(argstr, ",")
		}
		rule, err := reg.Resolve(name, args)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", field, err)
		}
		return rule, nil
	}
	return nil, fmt.Errorf("%w: field %q: rule token must be a string or a rule instance, got %T",
		ErrInvalidRuleFormat, field, tok)
}

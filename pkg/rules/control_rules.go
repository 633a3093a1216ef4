package rules

import "fmt"

// controlRule never fails; it only signals the engine to skip the rest of a
// field's rules under its condition.
type controlRule struct {
	name string
	skip func(value any, present bool, data map[string]any) (skip, validated bool)
}

func (r controlRule) Name() string    { return r.name }
func (r controlRule) Cost() int       { return CostControl }
func (r controlRule) Batchable() bool { return false }

func (r controlRule) Passes(any, string, map[string]any) bool { return true }

func (r controlRule) Message(attribute string) string {
	return fmt.Sprintf("The %s field is invalid.", attribute)
}

func (r controlRule) ShouldSkip(value any, present bool, data map[string]any) (bool, bool) {
	return r.skip(value, present, data)
}

// Sometimes skips every remaining rule when the field is absent from the
// input. An absent field is neither failed nor validated.
func Sometimes() Rule {
	return controlRule{
		name: "sometimes",
		skip: func(_ any, present bool, _ map[string]any) (bool, bool) {
			return !present, false
		},
	}
}

// Nullable skips the remaining rules when the value is blank, and still
// counts the field as validated with its blank value.
func Nullable() Rule {
	return controlRule{
		name: "nullable",
		skip: func(value any, _ bool, _ map[string]any) (bool, bool) {
			return isBlank(value), true
		},
	}
}

// Bail is a no-op marker kept for rule-string compatibility: the engine
// already stops at a field's first failure.
func Bail() Rule {
	return controlRule{
		name: "bail",
		skip: func(any, bool, map[string]any) (bool, bool) {
			return false, false
		},
	}
}

package rules

import "fmt"

// Required validates that the field is present and not blank.
func Required() Rule {
	return funcRule{
		name: "required",
		cost: CostControl,
		check: func(value any, _ string, _ map[string]any) bool {
			return !isBlank(value)
		},
		message: func(attribute string) string {
			return fmt.Sprintf("The %s field is required.", attribute)
		},
	}
}

// Filled validates that the field, when present, is not blank. Absent
// fields pass.
func Filled() Rule {
	return funcRule{
		name: "filled",
		cost: CostControl,
		check: func(value any, field string, data map[string]any) bool {
			if _, ok := data[field]; !ok {
				return true
			}
			return !isBlank(value)
		},
		message: func(attribute string) string {
			return fmt.Sprintf("The %s field must have a value.", attribute)
		},
	}
}

// Present validates that the field key exists in the input, blank or not.
func Present() Rule {
	return funcRule{
		name: "present",
		cost: CostControl,
		check: func(_ any, field string, data map[string]any) bool {
			_, ok := data[field]
			return ok
		},
		message: func(attribute string) string {
			return fmt.Sprintf("The %s field must be present.", attribute)
		},
	}
}

// RequiredIf requires the field when another field equals the given value.
func RequiredIf(other, expected string) Rule {
	return funcRule{
		name: "required_if",
		cost: CostPresence,
		check: func(value any, _ string, data map[string]any) bool {
			if looseEquals(data[other], expected) {
				return !isBlank(value)
			}
			return true
		},
		message: func(attribute string) string {
			return fmt.Sprintf("The %s field is required when %s is %s.", attribute, other, expected)
		},
	}
}

// RequiredUnless requires the field unless another field equals the given value.
func RequiredUnless(other, expected string) Rule {
	return funcRule{
		name: "required_unless",
		cost: CostPresence,
		check: func(value any, _ string, data map[string]any) bool {
			if looseEquals(data[other], expected) {
				return true
			}
			return !isBlank(value)
		},
		message: func(attribute string) string {
			return fmt.Sprintf("The %s field is required unless %s is %s.", attribute, other, expected)
		},
	}
}

// RequiredWith requires the field when the other field is present and not blank.
func RequiredWith(other string) Rule {
	return funcRule{
		name: "required_with",
		cost: CostPresence,
		check: func(value any, _ string, data map[string]any) bool {
			if isBlank(data[other]) {
				return true
			}
			return !isBlank(value)
		},
		message: func(attribute string) string {
			return fmt.Sprintf("The %s field is required when %s is present.", attribute, other)
		},
	}
}

// RequiredWithout requires the field when the other field is absent or blank.
func RequiredWithout(other string) Rule {
	return funcRule{
		name: "required_without",
		cost: CostPresence,
		check: func(value any, _ string, data map[string]any) bool {
			if !isBlank(data[other]) {
				return true
			}
			return !isBlank(value)
		},
		message: func(attribute string) string {
			return fmt.Sprintf("The %s field is required when %s is not present.", attribute, other)
		},
	}
}

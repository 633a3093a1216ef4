package rules

import "fmt"

// Same validates that the value equals another field's value.
func Same(other string) Rule {
	return funcRule{
		name: "same",
		cost: CostString,
		check: func(value any, _ string, data map[string]any) bool {
			return looseEquals(value, data[other])
		},
		message: func(attribute string) string {
			return fmt.Sprintf("The %s and %s must match.", attribute, other)
		},
	}
}

// Different validates that the value differs from another field's value.
func Different(other string) Rule {
	return funcRule{
		name: "different",
		cost: CostString,
		check: func(value any, _ string, data map[string]any) bool {
			return !looseEquals(value, data[other])
		},
		message: func(attribute string) string {
			return fmt.Sprintf("The %s and %s must be different.", attribute, other)
		},
	}
}

// Confirmed validates that <field>_confirmation holds the same value.
func Confirmed() Rule {
	return funcRule{
		name: "confirmed",
		cost: CostString,
		check: func(value any, field string, data map[string]any) bool {
			return looseEquals(value, data[field+"_confirmation"])
		},
		message: func(attribute string) string {
			return fmt.Sprintf("The %s confirmation does not match.", attribute)
		},
	}
}

// Gt validates that the value's size is greater than the reference, which
// is another field when it names one, otherwise a numeric literal.
func Gt(ref string) Rule {
	return compareRule("gt", ref, "The %s must be greater than %s.", func(a, b float64) bool { return a > b })
}

// Gte validates size greater than or equal to the reference.
func Gte(ref string) Rule {
	return compareRule("gte", ref, "The %s must be greater than or equal to %s.", func(a, b float64) bool { return a >= b })
}

// Lt validates size less than the reference.
func Lt(ref string) Rule {
	return compareRule("lt", ref, "The %s must be less than %s.", func(a, b float64) bool { return a < b })
}

// Lte validates size less than or equal to the reference.
func Lte(ref string) Rule {
	return compareRule("lte", ref, "The %s must be less than or equal to %s.", func(a, b float64) bool { return a <= b })
}

func compareRule(name, ref, format string, cmp func(a, b float64) bool) Rule {
	return funcRule{
		name: name,
		cost: CostString,
		check: func(value any, _ string, data map[string]any) bool {
			size, ok := sizeOf(value)
			if !ok {
				return false
			}
			if other, exists := data[ref]; exists {
				otherSize, ok := sizeOf(other)
				return ok && cmp(size, otherSize)
			}
			n, err := parseFloat(ref)
			if err != nil {
				return false
			}
			return cmp(size, n)
		},
		message: func(attribute string) string {
			return fmt.Sprintf(format, attribute, ref)
		},
	}
}

package rules

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

var (
	alphaRegex     = regexp.MustCompile(`^[a-zA-Z]+$`)
	alphaNumRegex  = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	alphaDashRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
	digitsRegex    = regexp.MustCompile(`^[0-9]+$`)
)

// Min validates that the value's size is at least n. Size is the numeric
// value for numbers, rune count for strings, and element count for
// slices and maps.
func Min(n float64) Rule {
	return funcRule{
		name: "min",
		cost: CostString,
		check: func(value any, _ string, _ map[string]any) bool {
			size, ok := sizeOf(value)
			return ok && size >= n
		},
		message: func(attribute string) string {
			return fmt.Sprintf("The %s must be at least %s.", attribute, formatNum(n))
		},
	}
}

// Max validates that the value's size is at most n.
func Max(n float64) Rule {
	return funcRule{
		name: "max",
		cost: CostString,
		check: func(value any, _ string, _ map[string]any) bool {
			size, ok := sizeOf(value)
			return ok && size <= n
		},
		message: func(attribute string) string {
			return fmt.Sprintf("The %s may not be greater than %s.", attribute, formatNum(n))
		},
	}
}

// Between validates that the value's size is within [lo, hi].
func Between(args []string) (Rule, error) {
	if len(args) < 2 {
		return nil, fmt.Errorf("%w: between expects two numeric arguments", ErrBadRuleArgs)
	}
	lo, err := parseFloat(args[0])
	if err != nil {
		return nil, fmt.Errorf("%w: between: %q is not numeric", ErrBadRuleArgs, args[0])
	}
	hi, err := parseFloat(args[1])
	if err != nil {
		return nil, fmt.Errorf("%w: between: %q is not numeric", ErrBadRuleArgs, args[1])
	}
	return funcRule{
		name: "between",
		cost: CostString,
		check: func(value any, _ string, _ map[string]any) bool {
			size, ok := sizeOf(value)
			return ok && size >= lo && size <= hi
		},
		message: func(attribute string) string {
			return fmt.Sprintf("The %s must be between %s and %s.", attribute, formatNum(lo), formatNum(hi))
		},
	}, nil
}

// Size validates that the value's size equals n exactly.
func Size(n float64) Rule {
	return funcRule{
		name: "size",
		cost: CostString,
		check: func(value any, _ string, _ map[string]any) bool {
			size, ok := sizeOf(value)
			return ok && size == n
		},
		message: func(attribute string) string {
			return fmt.Sprintf("The %s must be %s.", attribute, formatNum(n))
		},
	}
}

// Digits validates an all-digit string (or integer) of exactly n digits.
func Digits(n int) Rule {
	return funcRule{
		name: "digits",
		cost: CostString,
		check: func(value any, _ string, _ map[string]any) bool {
			s := stringValue(value)
			return digitsRegex.MatchString(s) && len(s) == n
		},
		message: func(attribute string) string {
			return fmt.Sprintf("The %s must be %d digits.", attribute, n)
		},
	}
}

// DigitsBetween validates an all-digit string of between lo and hi digits.
func DigitsBetween(args []string) (Rule, error) {
	if len(args) < 2 {
		return nil, fmt.Errorf("%w: digits_between expects two integer arguments", ErrBadRuleArgs)
	}
	lo, err := parseInt(args[0])
	if err != nil {
		return nil, fmt.Errorf("%w: digits_between: %q is not an integer", ErrBadRuleArgs, args[0])
	}
	hi, err := parseInt(args[1])
	if err != nil {
		return nil, fmt.Errorf("%w: digits_between: %q is not an integer", ErrBadRuleArgs, args[1])
	}
	return funcRule{
		name: "digits_between",
		cost: CostString,
		check: func(value any, _ string, _ map[string]any) bool {
			s := stringValue(value)
			return digitsRegex.MatchString(s) && len(s) >= lo && len(s) <= hi
		},
		message: func(attribute string) string {
			return fmt.Sprintf("The %s must be between %d and %d digits.", attribute, lo, hi)
		},
	}, nil
}

// Alpha validates ASCII letters only.
func Alpha() Rule {
	return patternRule("alpha", alphaRegex, "The %s may only contain letters.")
}

// AlphaNum validates ASCII letters and digits.
func AlphaNum() Rule {
	return patternRule("alpha_num", alphaNumRegex, "The %s may only contain letters and numbers.")
}

// AlphaDash validates ASCII letters, digits, dashes and underscores.
func AlphaDash() Rule {
	return patternRule("alpha_dash", alphaDashRegex, "The %s may only contain letters, numbers, dashes and underscores.")
}

func patternRule(name string, re *regexp.Regexp, format string) Rule {
	return funcRule{
		name: name,
		cost: CostString,
		check: func(value any, _ string, _ map[string]any) bool {
			s, ok := value.(string)
			return ok && re.MatchString(s)
		},
		message: func(attribute string) string {
			return fmt.Sprintf(format, attribute)
		},
	}
}

// StartsWith validates that the string starts with one of the prefixes.
func StartsWith(prefixes []string) Rule {
	return funcRule{
		name: "starts_with",
		cost: CostString,
		check: func(value any, _ string, _ map[string]any) bool {
			s, ok := value.(string)
			if !ok {
				return false
			}
			return slices.ContainsFunc(prefixes, func(p string) bool {
				return strings.HasPrefix(s, p)
			})
		},
		message: func(attribute string) string {
			return fmt.Sprintf("The %s must start with one of the following: %s.", attribute, strings.Join(prefixes, ", "))
		},
	}
}

// EndsWith validates that the string ends with one of the suffixes.
func EndsWith(suffixes []string) Rule {
	return funcRule{
		name: "ends_with",
		cost: CostString,
		check: func(value any, _ string, _ map[string]any) bool {
			s, ok := value.(string)
			if !ok {
				return false
			}
			return slices.ContainsFunc(suffixes, func(p string) bool {
				return strings.HasSuffix(s, p)
			})
		},
		message: func(attribute string) string {
			return fmt.Sprintf("The %s must end with one of the following: %s.", attribute, strings.Join(suffixes, ", "))
		},
	}
}

// Lowercase validates that the string equals its lowercase form.
func Lowercase() Rule {
	return funcRule{
		name: "lowercase",
		cost: CostString,
		check: func(value any, _ string, _ map[string]any) bool {
			s, ok := value.(string)
			return ok && s == strings.ToLower(s)
		},
		message: func(attribute string) string {
			return fmt.Sprintf("The %s must be lowercase.", attribute)
		},
	}
}

// Uppercase validates that the string equals its uppercase form.
func Uppercase() Rule {
	return funcRule{
		name: "uppercase",
		cost: CostString,
		check: func(value any, _ string, _ map[string]any) bool {
			s, ok := value.(string)
			return ok && s == strings.ToUpper(s)
		},
		message: func(attribute string) string {
			return fmt.Sprintf("The %s must be uppercase.", attribute)
		},
	}
}

// In validates that the value, rendered as a string, is one of the choices.
func In(choices []string) Rule {
	return funcRule{
		name: "in",
		cost: CostString,
		check: func(value any, _ string, _ map[string]any) bool {
			return slices.Contains(choices, stringValue(value))
		},
		message: func(attribute string) string {
			return fmt.Sprintf("The selected %s is invalid.", attribute)
		},
	}
}

// NotIn validates that the value is none of the choices.
func NotIn(choices []string) Rule {
	return funcRule{
		name: "not_in",
		cost: CostString,
		check: func(value any, _ string, _ map[string]any) bool {
			return !slices.Contains(choices, stringValue(value))
		},
		message: func(attribute string) string {
			return fmt.Sprintf("The selected %s is invalid.", attribute)
		},
	}
}

func formatNum(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

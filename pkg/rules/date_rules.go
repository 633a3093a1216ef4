package rules

import (
	"fmt"
	"time"
)

// Date validates that the value parses as a date in one of the supported
// layouts (RFC 3339, "2006-01-02 15:04:05", "2006-01-02", "02/01/2006").
func Date() Rule {
	return funcRule{
		name: "date",
		cost: CostFormat,
		check: func(value any, _ string, _ map[string]any) bool {
			_, ok := parseDate(value)
			return ok
		},
		message: func(attribute string) string {
			return fmt.Sprintf("The %s is not a valid date.", attribute)
		},
	}
}

// DateFormat validates the value against an exact Go time layout.
func DateFormat(layout string) Rule {
	return funcRule{
		name: "date_format",
		cost: CostFormat,
		check: func(value any, _ string, _ map[string]any) bool {
			s, ok := value.(string)
			if !ok {
				return false
			}
			_, err := time.Parse(layout, s)
			return err == nil
		},
		message: func(attribute string) string {
			return fmt.Sprintf("The %s does not match the format %s.", attribute, layout)
		},
	}
}

// After validates that the value is a date strictly after the reference,
// which may be a date literal, "now", or another field's name.
func After(ref string) Rule {
	return dateCompareRule("after", ref, "The %s must be a date after %s.", func(v, r time.Time) bool {
		return v.After(r)
	})
}

// Before validates that the value is a date strictly before the reference.
func Before(ref string) Rule {
	return dateCompareRule("before", ref, "The %s must be a date before %s.", func(v, r time.Time) bool {
		return v.Before(r)
	})
}

// AfterOrEqual validates a date on or after the reference.
func AfterOrEqual(ref string) Rule {
	return dateCompareRule("after_or_equal", ref, "The %s must be a date after or equal to %s.", func(v, r time.Time) bool {
		return !v.Before(r)
	})
}

// BeforeOrEqual validates a date on or before the reference.
func BeforeOrEqual(ref string) Rule {
	return dateCompareRule("before_or_equal", ref, "The %s must be a date before or equal to %s.", func(v, r time.Time) bool {
		return !v.After(r)
	})
}

func dateCompareRule(name, ref, format string, cmp func(v, r time.Time) bool) Rule {
	return funcRule{
		name: name,
		cost: CostFormat,
		check: func(value any, _ string, data map[string]any) bool {
			v, ok := parseDate(value)
			if !ok {
				return false
			}
			r, ok := resolveDateRef(ref, data)
			if !ok {
				return false
			}
			return cmp(v, r)
		},
		message: func(attribute string) string {
			return fmt.Sprintf(format, attribute, ref)
		},
	}
}

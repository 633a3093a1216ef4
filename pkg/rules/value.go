package rules

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// isBlank mirrors the "empty" notion used by presence rules: nil, a
// whitespace-only string, or an empty slice/map/array.
func isBlank(v any) bool {
	if v == nil {
		return true
	}
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val) == ""
	case []any:
		return len(val) == 0
	case map[string]any:
		return len(val) == 0
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() == 0
	}
	return false
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

func parseInt(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}

// toFloat converts any Go numeric type to float64. Strings are not
// converted; size rules treat them by length instead.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

// sizeOf implements the polymorphic size notion shared by min/max/between/
// size: numeric value for numbers, rune count for strings, element count for
// slices and maps.
func sizeOf(v any) (float64, bool) {
	if n, ok := toFloat(v); ok {
		return n, true
	}
	switch val := v.(type) {
	case string:
		return float64(len([]rune(val))), true
	case []any:
		return float64(len(val)), true
	case map[string]any:
		return float64(len(val)), true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array:
		return float64(rv.Len()), true
	}
	return 0, false
}

// stringValue renders scalars the way a form value would look, used by
// loose comparisons such as in/not_in and required_if.
func stringValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	}
	return fmt.Sprintf("%v", v)
}

// looseEquals compares two values after normalizing numerics, so 1, 1.0 and
// "1" compare equal the way form-sourced data expects.
func looseEquals(a, b any) bool {
	if af, ok := toFloat(a); ok {
		if bf, ok := toFloat(b); ok {
			return af == bf
		}
		if bs, ok := b.(string); ok {
			if bf, err := parseFloat(bs); err == nil {
				return af == bf
			}
		}
		return false
	}
	if _, ok := toFloat(b); ok {
		return looseEquals(b, a)
	}
	return stringValue(a) == stringValue(b)
}

// dateLayouts are tried in order when parsing date values and arguments.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02/01/2006",
}

func parseDate(v any) (time.Time, bool) {
	switch val := v.(type) {
	case time.Time:
		return val, true
	case string:
		s := strings.TrimSpace(val)
		if s == "" {
			return time.Time{}, false
		}
		if strings.EqualFold(s, "now") {
			return time.Now(), true
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, true
			}
		}
	}
	return time.Time{}, false
}

// resolveDateRef resolves a date rule argument: another field's value when
// the argument names a key in data, otherwise a date literal.
func resolveDateRef(ref string, data map[string]any) (time.Time, bool) {
	if other, ok := data[ref]; ok {
		return parseDate(other)
	}
	return parseDate(ref)
}

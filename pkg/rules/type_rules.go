package rules

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// IsString validates that the value is a string.
func IsString() Rule {
	return funcRule{
		name: "string",
		cost: CostType,
		check: func(value any, _ string, _ map[string]any) bool {
			_, ok := value.(string)
			return ok
		},
		message: func(attribute string) string {
			return fmt.Sprintf("The %s must be a string.", attribute)
		},
	}
}

// IsInteger validates integer values. Numeric strings and whole floats
// (the usual shapes after JSON decoding) count as integers.
func IsInteger() Rule {
	return funcRule{
		name: "integer",
		cost: CostType,
		check: func(value any, _ string, _ map[string]any) bool {
			switch v := value.(type) {
			case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
				return true
			case float64:
				return v == math.Trunc(v)
			case float32:
				return float64(v) == math.Trunc(float64(v))
			case string:
				_, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
				return err == nil
			}
			return false
		},
		message: func(attribute string) string {
			return fmt.Sprintf("The %s must be an integer.", attribute)
		},
	}
}

// IsNumeric validates numbers and numeric strings.
func IsNumeric() Rule {
	return funcRule{
		name: "numeric",
		cost: CostType,
		check: func(value any, _ string, _ map[string]any) bool {
			if _, ok := toFloat(value); ok {
				return true
			}
			if s, ok := value.(string); ok {
				_, err := parseFloat(s)
				return err == nil
			}
			return false
		},
		message: func(attribute string) string {
			return fmt.Sprintf("The %s must be a number.", attribute)
		},
	}
}

// IsBoolean validates booleans and common boolean encodings
// (true/false, 1/0, "1"/"0", "true"/"false").
func IsBoolean() Rule {
	return funcRule{
		name: "boolean",
		cost: CostType,
		check: func(value any, _ string, _ map[string]any) bool {
			switch v := value.(type) {
			case bool:
				return true
			case int:
				return v == 0 || v == 1
			case float64:
				return v == 0 || v == 1
			case string:
				switch strings.ToLower(strings.TrimSpace(v)) {
				case "true", "false", "1", "0":
					return true
				}
			}
			return false
		},
		message: func(attribute string) string {
			return fmt.Sprintf("The %s field must be true or false.", attribute)
		},
	}
}

// IsArray validates slices, arrays and maps.
func IsArray() Rule {
	return funcRule{
		name: "array",
		cost: CostType,
		check: func(value any, _ string, _ map[string]any) bool {
			if value == nil {
				return false
			}
			switch reflect.ValueOf(value).Kind() {
			case reflect.Slice, reflect.Array, reflect.Map:
				return true
			}
			return false
		},
		message: func(attribute string) string {
			return fmt.Sprintf("The %s must be an array.", attribute)
		},
	}
}

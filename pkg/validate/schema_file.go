package validate

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ParseSchema decodes a Schema from YAML. Values may be pipe-joined rule
// strings or token lists:
//
//	email: required|email|unique:users,email
//	age:
//	  - required
//	  - integer
//	  - min:18
func ParseSchema(src []byte) (Schema, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(src, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRuleFormat, err)
	}
	return Schema(raw), nil
}

// ParseSchemaFile reads a YAML schema from disk, for callers that keep
// validation rules in configuration files.
func ParseSchemaFile(path string) (Schema, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema file: %w", err)
	}
	return ParseSchema(src)
}

package rules

import "errors"

// Configuration-tier errors raised while resolving rule names or parsing
// rule arguments. Ordinary validation failures are never represented as
// errors; they surface as messages in the result.
var (
	// ErrUnknownRule is returned when a rule name has no registered factory.
	ErrUnknownRule = errors.New("unknown rule name")

	// ErrBadRuleArgs is returned when a rule factory receives missing or
	// malformed arguments (e.g. "between:1" without an upper bound).
	ErrBadRuleArgs = errors.New("invalid rule arguments")
)

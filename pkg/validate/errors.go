package validate

import "errors"

// Configuration-tier errors. These halt the whole Validate call and are
// never used for ordinary validation failures, which live in the Result.
var (
	// ErrInvalidRuleFormat is returned when a schema entry is neither a
	// rule string, a slice of rule tokens, nor a pre-built rule instance.
	ErrInvalidRuleFormat = errors.New("invalid rule format")

	// ErrUnsafeIdentifier is returned when a table or column name from a
	// rule argument contains characters outside [A-Za-z0-9_]. Raised before
	// any query is assembled.
	ErrUnsafeIdentifier = errors.New("unsafe sql identifier")

	// ErrMissingDataStore is returned in strict mode when a batchable rule
	// is compiled but no DataStore is configured.
	ErrMissingDataStore = errors.New("no datastore configured for database-backed rules")
)

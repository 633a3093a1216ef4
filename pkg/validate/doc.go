// Package validate executes declarative rule schemas against field→value
// maps, returning per-field pass/fail results with human-readable messages.
//
// A schema maps field names to rules from pkg/rules, written as
// pipe-joined strings, token slices, or pre-built rule instances:
//
//	v, err := validate.New(validate.Schema{
//	    "email": "required|email|unique:users,email",
//	    "age":   "required|integer|min:18",
//	}, validate.WithDataStore(store))
//	if err != nil {
//	    // configuration error: bad rule syntax, unknown rule name, ...
//	}
//
//	res, err := v.Validate(ctx, data)
//	if res.Fails() {
//	    _ = res.Errors() // field → []message
//	}
//
// # Execution model
//
// Compilation resolves rule names through the registry and sorts each
// field's rules by ascending cost, so cheap presence and type checks run
// before format checks, which run before database-backed checks. Nested
// fields use dot notation; a * segment expands against the arrays actually
// present in the data. Execution is fail-fast per field, and database
// checks are deferred: all unique/exists checks against one table collapse
// into a single query per (kind, table) pair, resolved after the inline
// pass through the DataStore.
//
// # Error tiers
//
// Configuration problems (malformed rule specs, unknown rule names, unsafe
// SQL identifiers, strict-mode missing DataStore) return as errors from
// New or Validate. Ordinary validation failures are data: they live in the
// Result, or in a *FailedError via Result.Err for callers that opt into an
// error return.
//
// # Concurrency
//
// A Validator carries no per-call state. Concurrent Validate calls on one
// instance are safe when the DataStore supports concurrent reads.
package validate

package validate

import "maps"

// Result is the immutable outcome of one Validate call: messages grouped
// by field plus the map of fields whose every rule passed.
type Result struct {
	errors    map[string][]string
	validated map[string]any
}

func newResult(errors map[string][]string, validated map[string]any) *Result {
	if errors == nil {
		errors = make(map[string][]string)
	}
	if validated == nil {
		validated = make(map[string]any)
	}
	return &Result{errors: errors, validated: validated}
}

// Passes reports whether no field produced an error.
func (r *Result) Passes() bool { return len(r.errors) == 0 }

// Fails reports whether any field produced an error.
func (r *Result) Fails() bool { return !r.Passes() }

// Errors returns every message grouped by field. The returned map is a
// copy; mutating it does not affect the result.
func (r *Result) Errors() map[string][]string {
	out := make(map[string][]string, len(r.errors))
	for field, msgs := range r.errors {
		out[field] = append([]string(nil), msgs...)
	}
	return out
}

// ErrorsFor returns the messages recorded for one field, in the order the
// rules failed.
func (r *Result) ErrorsFor(field string) []string {
	return append([]string(nil), r.errors[field]...)
}

// First returns the first message for the field, or "" when it has none.
func (r *Result) First(field string) string {
	if msgs := r.errors[field]; len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

// Validated returns the fields that passed every rule, with the values
// they were validated against. The returned map is a copy.
func (r *Result) Validated() map[string]any {
	return maps.Clone(r.validated)
}

// Err wraps the error map into a *FailedError for callers that prefer an
// error return over inspecting the result. Returns nil when validation
// passed.
func (r *Result) Err() error {
	if r.Passes() {
		return nil
	}
	count := 0
	for _, msgs := range r.errors {
		count += len(msgs)
	}
	return &FailedError{
		Errors:     r.Errors(),
		ErrorCount: count,
		Status:     StatusUnprocessable,
	}
}

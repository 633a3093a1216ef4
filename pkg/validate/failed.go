package validate

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// StatusUnprocessable is the HTTP-style status carried by FailedError.
const StatusUnprocessable = http.StatusUnprocessableEntity

// FailedError is the opt-in throw-on-failure representation of a failed
// validation: the same error map the Result holds, wrapped as an error for
// handlers that prefer bubbling it up.
type FailedError struct {
	Errors     map[string][]string
	ErrorCount int
	Status     int
}

func (e *FailedError) Error() string {
	fields := make([]string, 0, len(e.Errors))
	for field := range e.Errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fmt.Sprintf("validation failed: %d error(s) on %s",
		e.ErrorCount, strings.Join(fields, ", "))
}

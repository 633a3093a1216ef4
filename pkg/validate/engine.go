package validate

import (
	"github.com/dmitrymomot/rulekit/pkg/rules"
)

// batchItem is one deferred database-backed check. Created during the
// inline pass, consumed exactly once by the batch executor.
type batchItem struct {
	field string
	rule  rules.DBRule
	value any
}

// execOutcome carries the inline pass results into result assembly.
type execOutcome struct {
	errors    map[string][]string
	validated map[string]any
	queue     []batchItem
}

// execute runs the inline pass: every field in schema order, its rules in
// cost order. Batchable rules never block the pass; they are queued and
// assumed to pass pending batch resolution. Non-batchable failures stop
// the field (fail-fast-per-field); with stopOnFirstError the first failing
// field stops the whole loop, leaving later fields unvisited while
// already-queued batch items stay queued. Every predicate sees the same
// immutable flatData snapshot.
func execute(schema []fieldRules, flatData map[string]any, stopOnFirstError bool, displayName func(string) string) execOutcome {
	out := execOutcome{
		errors:    make(map[string][]string),
		validated: make(map[string]any),
	}

	for _, fr := range schema {
		value, present := flatData[fr.field]

		failed := false
		track := true // whether the field may enter the validated map

		for _, cr := range fr.rules {
			if ctrl, ok := cr.rule.(rules.ControlRule); ok {
				skip, validated := ctrl.ShouldSkip(value, present, flatData)
				if skip {
					track = validated
					break
				}
				continue
			}

			if cr.batchable {
				if db, ok := cr.rule.(rules.DBRule); ok {
					out.queue = append(out.queue, batchItem{field: fr.field, rule: db, value: value})
				}
				continue
			}

			if !cr.rule.Passes(value, fr.field, flatData) {
				out.errors[fr.field] = append(out.errors[fr.field], cr.rule.Message(displayName(fr.field)))
				failed = true
				break
			}
		}

		if failed {
			if stopOnFirstError {
				break
			}
			continue
		}
		if track {
			// Provisional for fields with queued batch items; the batch
			// resolver evicts them on failure.
			out.validated[fr.field] = value
		}
	}
	return out
}

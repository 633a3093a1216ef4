package rules

// Cost bands group rules by relative execution expense. The engine only
// relies on the ordering, not the absolute values.
const (
	CostControl  = 0
	CostPresence = 5
	CostType     = 10
	CostString   = 20
	CostFormat   = 50
	CostDatabase = 100
)

// Rule is the capability every validation rule implements. Passes receives
// the field's value, the flattened field name, and the immutable data
// snapshot of the whole request, so conditional rules can inspect sibling
// fields. Message formats the failure text for the given display name.
type Rule interface {
	Name() string
	Cost() int
	Batchable() bool
	Passes(value any, field string, data map[string]any) bool
	Message(attribute string) string
}

// ControlRule is a marker rule that never fails on its own but may short
// circuit the remaining rules for a field. ShouldSkip reports whether the
// rest of the field's rules should be skipped and, if so, whether the field
// still counts as validated.
type ControlRule interface {
	Rule
	ShouldSkip(value any, present bool, data map[string]any) (skip, validated bool)
}

// CheckKind partitions database-backed checks for batching.
type CheckKind string

const (
	KindUnique    CheckKind = "unique"
	KindExists    CheckKind = "exists"
	KindComposite CheckKind = "composite"
)

// DBRule is implemented by batchable database-backed rules. The engine never
// calls Passes on a DBRule; it defers the check to the batch executor.
type DBRule interface {
	Rule
	Kind() CheckKind
	Table() string
	Column() string
	// IgnoreID returns the identifier column and value exempted from a
	// uniqueness check (update-in-place), if any.
	IgnoreID() (column string, id any, ok bool)
}

// funcRule is the common closure-backed rule shape used by the catalogue.
type funcRule struct {
	name    string
	cost    int
	check   func(value any, field string, data map[string]any) bool
	message func(attribute string) string
}

func (r funcRule) Name() string    { return r.name }
func (r funcRule) Cost() int       { return r.cost }
func (r funcRule) Batchable() bool { return false }

func (r funcRule) Passes(value any, field string, data map[string]any) bool {
	return r.check(value, field, data)
}

func (r funcRule) Message(attribute string) string {
	return r.message(attribute)
}

package rules

import (
	"fmt"
	"strings"
)

// dbRule carries the target of a database-backed check. The engine never
// evaluates it inline; Passes always reports true and the batch executor
// resolves the real outcome.
type dbRule struct {
	name     string
	kind     CheckKind
	table    string
	column   string
	ignoreID any
	idColumn string
	message  func(attribute string) string
}

func (r dbRule) Name() string    { return r.name }
func (r dbRule) Cost() int       { return CostDatabase }
func (r dbRule) Batchable() bool { return true }
func (r dbRule) Kind() CheckKind { return r.kind }
func (r dbRule) Table() string   { return r.table }
func (r dbRule) Column() string  { return r.column }

func (r dbRule) Passes(any, string, map[string]any) bool { return true }

func (r dbRule) Message(attribute string) string { return r.message(attribute) }

func (r dbRule) IgnoreID() (string, any, bool) {
	if r.ignoreID == nil {
		return "", nil, false
	}
	return r.idColumn, r.ignoreID, true
}

// Unique builds a uniqueness check: unique:table,column[,ignoreId[,idColumn]].
// The column defaults to the field name when omitted; ignoreId exempts one
// row for update-in-place, matched against idColumn (default "id").
func Unique(args []string) (Rule, error) {
	if len(args) < 1 || args[0] == "" {
		return nil, fmt.Errorf("%w: unique expects at least a table name", ErrBadRuleArgs)
	}
	r := dbRule{
		name:     "unique",
		kind:     KindUnique,
		table:    args[0],
		idColumn: "id",
		message: func(attribute string) string {
			return fmt.Sprintf("The %s has already been taken.", attribute)
		},
	}
	if len(args) > 1 && args[1] != "" {
		r.column = args[1]
	}
	if len(args) > 2 && args[2] != "" && !strings.EqualFold(args[2], "null") {
		r.ignoreID = args[2]
	}
	if len(args) > 3 && args[3] != "" {
		r.idColumn = args[3]
	}
	return r, nil
}

// UniqueIgnoring builds a uniqueness check with a typed ignore id, for
// callers composing rule instances in code rather than rule strings.
func UniqueIgnoring(table, column string, ignoreID any, idColumn string) Rule {
	if idColumn == "" {
		idColumn = "id"
	}
	return dbRule{
		name:     "unique",
		kind:     KindUnique,
		table:    table,
		column:   column,
		ignoreID: ignoreID,
		idColumn: idColumn,
		message: func(attribute string) string {
			return fmt.Sprintf("The %s has already been taken.", attribute)
		},
	}
}

// Exists builds an existence check: exists:table[,column].
func Exists(args []string) (Rule, error) {
	if len(args) < 1 || args[0] == "" {
		return nil, fmt.Errorf("%w: exists expects at least a table name", ErrBadRuleArgs)
	}
	r := dbRule{
		name:  "exists",
		kind:  KindExists,
		table: args[0],
		message: func(attribute string) string {
			return fmt.Sprintf("The selected %s is invalid.", attribute)
		},
	}
	if len(args) > 1 && args[1] != "" {
		r.column = args[1]
	}
	return r, nil
}

// compositeRule checks a multi-column uniqueness constraint as one tuple.
// It rides the batch queue but resolves through the DataStore's point
// lookup, since tuple checks cannot share a column-grouped query plan.
type compositeRule struct {
	dbRule
	columns []string
}

// Columns returns the full column tuple, field-name keyed against the data
// snapshot by the batch executor.
func (r compositeRule) Columns() []string { return r.columns }

// CompositeDBRule is implemented by checks spanning multiple columns.
type CompositeDBRule interface {
	DBRule
	Columns() []string
}

// UniqueComposite builds a composite uniqueness check:
// unique_composite:table,col1,col2[,...]. Each column doubles as the field
// name whose value feeds the tuple; the validated field supplies its own.
func UniqueComposite(args []string) (Rule, error) {
	if len(args) < 3 {
		return nil, fmt.Errorf("%w: unique_composite expects a table and at least two columns", ErrBadRuleArgs)
	}
	return compositeRule{
		dbRule: dbRule{
			name:   "unique_composite",
			kind:   KindComposite,
			table:  args[0],
			column: args[1],
			message: func(attribute string) string {
				return fmt.Sprintf("The %s combination has already been taken.", attribute)
			},
		},
		columns: args[1:],
	}, nil
}

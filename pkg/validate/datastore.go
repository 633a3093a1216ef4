package validate

import "context"

// DataStore is the database collaborator consumed by database-backed rules.
// The batch executor only requires Query; the point-lookup methods exist
// for non-batched fallback use such as composite uniqueness checks.
//
// Implementations must be safe for concurrent reads; pkg/pgstore provides
// one over a pgx connection pool.
type DataStore interface {
	// Query runs a read-only statement with positional arguments and
	// returns the rows as column-keyed maps.
	Query(ctx context.Context, sql string, args ...any) ([]map[string]any, error)

	// Exists reports whether a row with column = value exists in table,
	// ignoring the row whose id equals ignoreID when ignoreID is non-nil.
	Exists(ctx context.Context, table, column string, value, ignoreID any) (bool, error)

	// CompositeUnique reports whether no row matches every column/value
	// pair, ignoring the row whose id equals ignoreID when non-nil.
	CompositeUnique(ctx context.Context, table string, columns map[string]any, ignoreID any) (bool, error)
}

package pgstore

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/rulekit/pkg/validate"
)

var safeIdentRe = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

var _ validate.DataStore = (*Store)(nil)

// Store implements the validate.DataStore contract over a pgx pool. Safe
// for concurrent use; all methods are read-only.
type Store struct {
	pool     *pgxpool.Pool
	idColumn string
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithIDColumn overrides the identifier column used by the point-lookup
// methods. Defaults to "id".
func WithIDColumn(column string) StoreOption {
	return func(s *Store) {
		if column != "" {
			s.idColumn = column
		}
	}
}

// New wraps a connection pool as a Store.
func New(pool *pgxpool.Pool, opts ...StoreOption) *Store {
	s := &Store{pool: pool, idColumn: "id"}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Query runs a read-only statement and maps every row by column name.
func (s *Store) Query(ctx context.Context, sql string, args ...any) ([]map[string]any, error) {
	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("pgstore query: %w", err)
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	var out []map[string]any
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("pgstore scan: %w", err)
		}
		row := make(map[string]any, len(fields))
		for i, fd := range fields {
			row[fd.Name] = values[i]
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pgstore rows: %w", err)
	}
	return out, nil
}

// Exists reports whether a row with column = value exists in table,
// ignoring the row whose id equals ignoreID when non-nil.
func (s *Store) Exists(ctx context.Context, table, column string, value, ignoreID any) (bool, error) {
	if err := checkIdents(table, column, s.idColumn); err != nil {
		return false, err
	}

	sql := fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1", table, column)
	args := []any{value}
	if ignoreID != nil {
		sql += fmt.Sprintf(" AND %s <> $2", s.idColumn)
		args = append(args, ignoreID)
	}
	sql += ")"

	var exists bool
	if err := s.pool.QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("pgstore exists: %w", err)
	}
	return exists, nil
}

// CompositeUnique reports whether no row matches every column/value pair,
// ignoring the row whose id equals ignoreID when non-nil. Columns are
// sorted so equivalent checks produce identical statements.
func (s *Store) CompositeUnique(ctx context.Context, table string, columns map[string]any, ignoreID any) (bool, error) {
	if err := checkIdents(table, s.idColumn); err != nil {
		return false, err
	}

	names := make([]string, 0, len(columns))
	for name := range columns {
		names = append(names, name)
	}
	sort.Strings(names)

	var conds []string
	var args []any
	for i, name := range names {
		if err := checkIdents(name); err != nil {
			return false, err
		}
		conds = append(conds, fmt.Sprintf("%s = $%d", name, i+1))
		args = append(args, columns[name])
	}
	if ignoreID != nil {
		conds = append(conds, fmt.Sprintf("%s <> $%d", s.idColumn, len(args)+1))
		args = append(args, ignoreID)
	}

	sql := fmt.Sprintf("SELECT NOT EXISTS (SELECT 1 FROM %s WHERE %s)",
		table, strings.Join(conds, " AND "))

	var unique bool
	if err := s.pool.QueryRow(ctx, sql, args...).Scan(&unique); err != nil {
		return false, fmt.Errorf("pgstore composite unique: %w", err)
	}
	return unique, nil
}

func checkIdents(names ...string) error {
	for _, name := range names {
		if !safeIdentRe.MatchString(name) {
			return fmt.Errorf("%w: %s", ErrUnsafeIdentifier, strconv.Quote(name))
		}
	}
	return nil
}

package validate

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrymomot/rulekit/pkg/logger"
	"github.com/dmitrymomot/rulekit/pkg/rules"
)

var safeIdentRe = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// safeIdent guards table and column names sourced from rule arguments
// before they are interpolated into SQL. Anything outside [A-Za-z0-9_] is a
// fatal configuration error.
func safeIdent(name string) error {
	if !safeIdentRe.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrUnsafeIdentifier, name)
	}
	return nil
}

// planKey partitions batch items: one query plan per (kind, table) pair.
type planKey struct {
	kind  rules.CheckKind
	table string
}

// queryPlan groups every deferred check against one table into a single
// query: per-column IN conditions OR'd together, plus the id columns needed
// for ignore-id comparisons.
type queryPlan struct {
	table      string
	columns    []string
	seenCols   map[string]bool
	conditions map[string][]any
	condSeen   map[string]bool
	idColumns  []string
	seenIDCols map[string]bool
	checkIndex map[string][]batchItem
}

func newQueryPlan(table string) *queryPlan {
	return &queryPlan{
		table:      table,
		seenCols:   make(map[string]bool),
		conditions: make(map[string][]any),
		condSeen:   make(map[string]bool),
		seenIDCols: make(map[string]bool),
		checkIndex: make(map[string][]batchItem),
	}
}

func (p *queryPlan) add(item batchItem) error {
	column := itemColumn(item)
	if err := safeIdent(column); err != nil {
		return err
	}
	if !p.seenCols[column] {
		p.seenCols[column] = true
		p.columns = append(p.columns, column)
	}
	key := checkKey(column, item.value)
	if !p.condSeen[key] {
		p.condSeen[key] = true
		p.conditions[column] = append(p.conditions[column], item.value)
	}
	p.checkIndex[key] = append(p.checkIndex[key], item)

	if idCol, _, ok := item.rule.IgnoreID(); ok {
		if err := safeIdent(idCol); err != nil {
			return err
		}
		if !p.seenIDCols[idCol] && !p.seenCols[idCol] {
			p.seenIDCols[idCol] = true
			p.idColumns = append(p.idColumns, idCol)
		}
	}
	return nil
}

// sql renders the plan as one SELECT with positional pgx placeholders.
func (p *queryPlan) sql() (string, []any) {
	selectCols := append(append([]string{}, p.columns...), p.idColumns...)

	var where []string
	var args []any
	n := 1
	for _, col := range p.columns {
		values := p.conditions[col]
		if len(values) == 0 {
			continue
		}
		ph := make([]string, len(values))
		for i, v := range values {
			ph[i] = "$" + strconv.Itoa(n)
			args = append(args, v)
			n++
		}
		where = append(where, fmt.Sprintf("%s IN (%s)", col, strings.Join(ph, ", ")))
	}

	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s",
		strings.Join(selectCols, ", "), p.table, strings.Join(where, " OR "))
	return query, args
}

// resolveBatch consumes the deferred queue: one-pass partition by
// (kind, table), one query per plan regardless of how many checks share it,
// then per-item pass/fail resolution against the fetched rows. Composite
// uniqueness checks cannot share a column-grouped plan and resolve through
// the DataStore point lookup instead.
//
// Without a DataStore every deferred check passes silently; that permissive
// default is logged as a configuration smell, and strict mode turns it into
// a configuration error.
func resolveBatch(ctx context.Context, queue []batchItem, flatData map[string]any, store DataStore, strict bool, log *slog.Logger, displayName func(string) string) (map[string][]string, error) {
	if len(queue) == 0 {
		return nil, nil
	}
	if store == nil {
		if strict {
			return nil, ErrMissingDataStore
		}
		log.WarnContext(ctx, "database-backed rules skipped: no datastore configured",
			slog.Int("deferred_checks", len(queue)))
		for _, item := range queue {
			log.DebugContext(ctx, "deferred check passed without a datastore",
				logger.Field(item.field), logger.RuleName(item.rule.Name()), logger.Table(item.rule.Table()))
		}
		return nil, nil
	}

	errs := make(map[string][]string)
	fail := func(item batchItem) {
		errs[item.field] = append(errs[item.field], item.rule.Message(displayName(item.field)))
	}

	plans := make(map[planKey]*queryPlan)
	var planOrder []planKey
	var composites []batchItem

	// Every identifier is checked during partitioning so an unsafe one
	// halts the whole call before any query executes.
	for _, item := range queue {
		if item.rule.Kind() == rules.KindComposite {
			if err := compositeIdents(item); err != nil {
				return nil, err
			}
			composites = append(composites, item)
			continue
		}
		if err := safeIdent(item.rule.Table()); err != nil {
			return nil, err
		}
		key := planKey{kind: item.rule.Kind(), table: item.rule.Table()}
		plan, ok := plans[key]
		if !ok {
			plan = newQueryPlan(item.rule.Table())
			plans[key] = plan
			planOrder = append(planOrder, key)
		}
		if err := plan.add(item); err != nil {
			return nil, err
		}
	}

	for _, key := range planOrder {
		plan := plans[key]
		query, args := plan.sql()
		rows, err := store.Query(ctx, query, args...)
		if err != nil {
			return nil, fmt.Errorf("batch %s check on %s: %w", key.kind, key.table, err)
		}

		// Rows indexed the same way checks are keyed, so resolution is a
		// map lookup per original check.
		matches := make(map[string][]map[string]any)
		for _, row := range rows {
			for _, col := range plan.columns {
				v, ok := row[col]
				if !ok {
					continue
				}
				k := checkKey(col, v)
				matches[k] = append(matches[k], row)
			}
		}

		for key2, items := range plan.checkIndex {
			found := matches[key2]
			for _, item := range items {
				switch item.rule.Kind() {
				case rules.KindExists:
					if len(found) == 0 {
						fail(item)
					}
				case rules.KindUnique:
					if len(found) == 0 {
						continue
					}
					idCol, ignoreID, ok := item.rule.IgnoreID()
					if !ok {
						fail(item)
						continue
					}
					for _, row := range found {
						if !equalID(row[idCol], ignoreID) {
							fail(item)
							break
						}
					}
				}
			}
		}
	}

	for _, item := range composites {
		if err := resolveComposite(ctx, store, item, flatData, fail); err != nil {
			return nil, err
		}
	}

	return errs, nil
}

// compositeIdents validates every identifier a composite check will
// interpolate, table and full column tuple both.
func compositeIdents(item batchItem) error {
	if err := safeIdent(item.rule.Table()); err != nil {
		return err
	}
	comp, ok := item.rule.(rules.CompositeDBRule)
	if !ok {
		return nil
	}
	for _, col := range comp.Columns() {
		if err := safeIdent(col); err != nil {
			return err
		}
	}
	return nil
}

func resolveComposite(ctx context.Context, store DataStore, item batchItem, flatData map[string]any, fail func(batchItem)) error {
	comp, ok := item.rule.(rules.CompositeDBRule)
	if !ok {
		return nil
	}
	columns := make(map[string]any, len(comp.Columns()))
	for _, col := range comp.Columns() {
		if col == itemColumn(item) {
			columns[col] = item.value
			continue
		}
		columns[col] = flatData[col]
	}
	var ignoreID any
	if _, id, ok := item.rule.IgnoreID(); ok {
		ignoreID = id
	}
	unique, err := store.CompositeUnique(ctx, item.rule.Table(), columns, ignoreID)
	if err != nil {
		return fmt.Errorf("composite unique check on %s: %w", item.rule.Table(), err)
	}
	if !unique {
		fail(item)
	}
	return nil
}

// itemColumn falls back to the field's last path segment when the rule
// does not name a column, so "items.0.sku" checks the "sku" column.
func itemColumn(item batchItem) string {
	if col := item.rule.Column(); col != "" {
		return col
	}
	field := item.field
	if i := strings.LastIndex(field, "."); i >= 0 {
		field = field[i+1:]
	}
	return field
}

func checkKey(column string, value any) string {
	return column + "\x00" + encodeValue(value)
}

// encodeValue renders a value as a type-tagged key so semantically distinct
// checks never collide: integer 1, string "1" and boolean true all encode
// differently, while 1 and 1.0 share a key the way the database treats
// them as equal.
func encodeValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case bool:
		return "bool:" + strconv.FormatBool(val)
	case string:
		return "str:" + val
	case []byte:
		return "str:" + string(val)
	case time.Time:
		return "time:" + val.UTC().Format(time.RFC3339Nano)
	case int:
		return "num:" + strconv.FormatInt(int64(val), 10)
	case int8:
		return "num:" + strconv.FormatInt(int64(val), 10)
	case int16:
		return "num:" + strconv.FormatInt(int64(val), 10)
	case int32:
		return "num:" + strconv.FormatInt(int64(val), 10)
	case int64:
		return "num:" + strconv.FormatInt(val, 10)
	case uint:
		return "num:" + strconv.FormatUint(uint64(val), 10)
	case uint8:
		return "num:" + strconv.FormatUint(uint64(val), 10)
	case uint16:
		return "num:" + strconv.FormatUint(uint64(val), 10)
	case uint32:
		return "num:" + strconv.FormatUint(uint64(val), 10)
	case uint64:
		return "num:" + strconv.FormatUint(val, 10)
	case float32:
		return encodeFloat(float64(val))
	case float64:
		return encodeFloat(val)
	}
	if b, err := json.Marshal(v); err == nil {
		return "json:" + string(b)
	}
	return "opaque:" + fmt.Sprintf("%v", v)
}

// encodeFloat keys whole floats like integers so a float64 1 from JSON
// decoding matches an int64 1 from the database.
func encodeFloat(f float64) string {
	if f == math.Trunc(f) && !math.IsInf(f, 0) {
		return "num:" + strconv.FormatInt(int64(f), 10)
	}
	return "num:" + strconv.FormatFloat(f, 'f', -1, 64)
}

// equalID compares a fetched identifier against the configured ignore id,
// tolerating int-vs-string drift in either direction: rule-string
// arguments arrive as strings even when the id column is numeric, and a
// typed ignore id may target a text id column.
func equalID(rowID, ignoreID any) bool {
	if encodeValue(rowID) == encodeValue(ignoreID) {
		return true
	}
	rk, rok := numKey(rowID)
	ik, iok := numKey(ignoreID)
	return rok && iok && rk == ik
}

// numKey normalizes an id to its numeric encoding when it is a number or
// a numeric string.
func numKey(v any) (string, bool) {
	if s, ok := v.(string); ok {
		if n, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			return encodeFloat(n), true
		}
		return "", false
	}
	k := encodeValue(v)
	if strings.HasPrefix(k, "num:") {
		return k, true
	}
	return "", false
}

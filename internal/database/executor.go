package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/aerosys-mx/bookings-admin/internal/logger"
)

// Store is the statement-execution contract the HTTP layer consumes.
// Handlers talk only to this interface — they never import pgx directly.
//
// Every method routes to the pool selected by role and propagates execution
// failures as the ORIGINAL driver error, never a derived one: the error
// normalizer downstream depends on the *pgconn.PgError metadata
// (constraint, detail, table, …) surviving intact.
type Store interface {
	// Query executes a statement returning rows, scanned into column-name maps.
	Query(ctx context.Context, role Role, sql string, args ...any) ([]map[string]any, error)

	// Exec executes a statement returning the number of rows affected.
	Exec(ctx context.Context, role Role, sql string, args ...any) (int64, error)

	// CallProc builds and executes `CALL name($1, …, $n);` with one
	// positional placeholder per argument, in argument order.
	CallProc(ctx context.Context, role Role, name string, args ...any) error
}

// Executor implements Store over the per-role Pools.
// It is stateless per call: no retries, no transactions, no statement
// caching. Consistency guarantees belong to the database's procedures.
type Executor struct {
	pools *Pools
	log   *logger.Logger
}

// NewExecutor binds an Executor to pools, logging failures through log.
func NewExecutor(pools *Pools, log *logger.Logger) *Executor {
	return &Executor{pools: pools, log: log}
}

// Query runs sql against the role's pool and scans all rows into maps.
func (e *Executor) Query(ctx context.Context, role Role, sql string, args ...any) ([]map[string]any, error) {
	rows, err := e.pools.ForRole(role).Query(ctx, sql, args...)
	if err != nil {
		return nil, e.fail(role, sql, err)
	}
	result, err := scanRows(rows)
	if err != nil {
		return nil, e.fail(role, sql, err)
	}
	return result, nil
}

// Exec runs a statement and reports rows affected.
func (e *Executor) Exec(ctx context.Context, role Role, sql string, args ...any) (int64, error) {
	tag, err := e.pools.ForRole(role).Exec(ctx, sql, args...)
	if err != nil {
		return 0, e.fail(role, sql, err)
	}
	return tag.RowsAffected(), nil
}

// CallProc executes a stored procedure through the same path as Exec.
func (e *Executor) CallProc(ctx context.Context, role Role, name string, args ...any) error {
	_, err := e.Exec(ctx, role, buildCall(name, len(args)), args...)
	return err
}

// fail logs the failure and returns err unmodified.
func (e *Executor) fail(role Role, sql string, err error) error {
	e.log.ErrorWith("db error", err, map[string]any{
		"role": string(role),
		"sql":  sql,
	})
	return err
}

// buildCall renders the CALL statement for a qualified procedure name with
// n positional placeholders.
func buildCall(name string, n int) string {
	placeholders := make([]string, n)
	for i := range placeholders {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	return fmt.Sprintf("CALL %s(%s);", name, strings.Join(placeholders, ", "))
}

// scanRows reads all rows into column-name maps. The returned slice is
// always non-nil (empty on zero rows), and rows are always closed.
// The iteration error, when present, is returned as-is.
func scanRows(rows pgx.Rows) ([]map[string]any, error) {
	defer rows.Close()

	descs := rows.FieldDescriptions()
	columns := make([]string, len(descs))
	for i, d := range descs {
		columns[i] = d.Name
	}

	result := make([]map[string]any, 0)
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, err
		}
		row := make(map[string]any, len(columns))
		for i, col := range columns {
			row[col] = values[i]
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

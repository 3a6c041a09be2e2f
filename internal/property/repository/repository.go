// Package repository implements persistence for the property service over
// PostgreSQL. A single generic CRUD core covers the per-entity plumbing;
// entity-specific queries (the property listing with its filter window and
// eager includes) live on the embedding repository.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
)

var (
	// ErrNotFound signals absence of the requested row. It is an expected
	// outcome, not a store fault.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate signals a unique-constraint violation on insert.
	ErrDuplicate = errors.New("duplicate key")
)

type scanner interface {
	Scan(dest ...any) error
}

// crud is the shared CRUD core. The id column must be first in cols, and
// values must yield one argument per column in the same order.
type crud[T any] struct {
	db      *sql.DB
	table   string
	idCol   string
	cols    []string
	orderBy string
	scan    func(scanner) (*T, error)
	values  func(*T) []any
}

func (r *crud[T]) List(ctx context.Context) ([]T, error) {
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY %s",
		strings.Join(r.cols, ", "), r.table, r.orderBy)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", r.table, err)
	}
	defer rows.Close()

	var items []T
	for rows.Next() {
		item, err := r.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", r.table, err)
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s rows: %w", r.table, err)
	}
	return items, nil
}

func (r *crud[T]) GetByID(ctx context.Context, id string) (*T, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1",
		strings.Join(r.cols, ", "), r.table, r.idCol)

	item, err := r.scan(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s row: %w", r.table, err)
	}
	return item, nil
}

func (r *crud[T]) Create(ctx context.Context, entity *T) error {
	placeholders := make([]string, len(r.cols))
	for i := range r.cols {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		r.table, strings.Join(r.cols, ", "), strings.Join(placeholders, ", "))

	if _, err := r.db.ExecContext(ctx, query, r.values(entity)...); err != nil {
		return fmt.Errorf("failed to create %s row: %w", r.table, translate(err))
	}
	return nil
}

// Update rewrites every non-id column and reports how many rows matched.
// Zero rows means the target is gone; the caller decides what that implies.
func (r *crud[T]) Update(ctx context.Context, entity *T) (int64, error) {
	assignments := make([]string, 0, len(r.cols)-1)
	for i, col := range r.cols[1:] {
		assignments = append(assignments, fmt.Sprintf("%s = $%d", col, i+2))
	}
	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s = $1",
		r.table, strings.Join(assignments, ", "), r.idCol)

	result, err := r.db.ExecContext(ctx, query, r.values(entity)...)
	if err != nil {
		return 0, fmt.Errorf("failed to update %s row: %w", r.table, translate(err))
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check rows affected: %w", err)
	}
	return rows, nil
}

// Delete removes the row and reports how many rows were affected. Zero is
// the "already gone" no-op case, surfaced as 304 at the API boundary.
func (r *crud[T]) Delete(ctx context.Context, id string) (int64, error) {
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", r.table, r.idCol)

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete %s row: %w", r.table, err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check rows affected: %w", err)
	}
	return rows, nil
}

// Exists is the explicit probe the handlers use to disambiguate store
// errors; it is not a read path.
func (r *crud[T]) Exists(ctx context.Context, id string) (bool, error) {
	query := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s WHERE %s = $1)", r.table, r.idCol)

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check %s existence: %w", r.table, err)
	}
	return exists, nil
}

// translate maps driver-level constraint violations onto the package
// sentinels so handlers never inspect pq errors themselves.
func translate(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return fmt.Errorf("%w: %s", ErrDuplicate, pqErr.Constraint)
	}
	return err
}

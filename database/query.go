package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"
)

// OrderDirection represents sort direction
type OrderDirection string

const (
	ASC  OrderDirection = "ASC"
	DESC OrderDirection = "DESC"
)

type whereClause struct {
	column   string
	operator string
	value    any
}

type orderClause struct {
	column    string
	direction OrderDirection
}

// QueryBuilder provides a fluent, type-safe API for building database queries
type QueryBuilder[T any] struct {
	db *DB

	wheres    []whereClause
	orders    []orderClause
	limitVal  *int
	offsetVal *int
	forUpdate bool

	// Insert conflict handling
	conflictColumn string

	timeout time.Duration
}

// Query creates a new QueryBuilder instance
func Query[T any](db *DB) *QueryBuilder[T] {
	return &QueryBuilder[T]{db: db}
}

// Where adds a simple WHERE condition (column = value)
func (q *QueryBuilder[T]) Where(column string, value any) *QueryBuilder[T] {
	q.wheres = append(q.wheres, whereClause{column: column, operator: "=", value: value})
	return q
}

// WhereOp adds a WHERE condition with a custom operator
func (q *QueryBuilder[T]) WhereOp(column, operator string, value any) *QueryBuilder[T] {
	q.wheres = append(q.wheres, whereClause{column: column, operator: operator, value: value})
	return q
}

// OrderBy adds an ORDER BY clause
func (q *QueryBuilder[T]) OrderBy(column string, direction OrderDirection) *QueryBuilder[T] {
	q.orders = append(q.orders, orderClause{column: column, direction: direction})
	return q
}

// Limit sets the LIMIT clause
func (q *QueryBuilder[T]) Limit(limit int) *QueryBuilder[T] {
	q.limitVal = &limit
	return q
}

// Offset sets the OFFSET clause
func (q *QueryBuilder[T]) Offset(offset int) *QueryBuilder[T] {
	q.offsetVal = &offset
	return q
}

// ForUpdate adds FOR UPDATE clause (for row locking)
func (q *QueryBuilder[T]) ForUpdate() *QueryBuilder[T] {
	q.forUpdate = true
	return q
}

// OnConflictDoNothing makes Insert skip rows that violate the unique
// constraint on the given column instead of failing. Combined with a
// follow-up select this gives atomic get-or-create semantics.
func (q *QueryBuilder[T]) OnConflictDoNothing(column string) *QueryBuilder[T] {
	q.conflictColumn = column
	return q
}

// Timeout sets a timeout for the query
func (q *QueryBuilder[T]) Timeout(duration time.Duration) *QueryBuilder[T] {
	q.timeout = duration
	return q
}

func (q *QueryBuilder[T]) applyContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if q.timeout > 0 {
		return context.WithTimeout(ctx, q.timeout)
	}
	return ctx, func() {}
}

func (q *QueryBuilder[T]) applySelect(query *bun.SelectQuery) *bun.SelectQuery {
	for _, w := range q.wheres {
		query = query.Where(fmt.Sprintf("? %s ?", w.operator), bun.Ident(w.column), w.value)
	}
	for _, o := range q.orders {
		query = query.OrderExpr("? ?", bun.Ident(o.column), bun.Safe(o.direction))
	}
	if q.limitVal != nil {
		query = query.Limit(*q.limitVal)
	}
	if q.offsetVal != nil {
		query = query.Offset(*q.offsetVal)
	}
	if q.forUpdate {
		query = query.For("UPDATE")
	}
	return query
}

// All executes the query and returns all matching records with automatic retry
func (q *QueryBuilder[T]) All(ctx context.Context) ([]T, error) {
	start := time.Now()
	ctx, cancel := q.applyContext(ctx)
	defer cancel()

	var data []T
	err := WithRetry(ctx, func() error {
		data = nil // Reset on retry
		return q.applySelect(q.db.NewSelect().Model(&data)).Scan(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to execute select query: %w (took %v)", err, time.Since(start))
	}

	return data, nil
}

// First executes the query and returns the first matching record with
// automatic retry. Returns (nil, nil) when no row matches.
func (q *QueryBuilder[T]) First(ctx context.Context) (*T, error) {
	start := time.Now()
	ctx, cancel := q.applyContext(ctx)
	defer cancel()

	var data T
	err := WithRetry(ctx, func() error {
		return q.applySelect(q.db.NewSelect().Model(&data)).Limit(1).Scan(ctx)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to execute first query: %w (took %v)", err, time.Since(start))
	}

	return &data, nil
}

// Count executes the query and returns the count of matching records with automatic retry
func (q *QueryBuilder[T]) Count(ctx context.Context) (int, error) {
	start := time.Now()
	ctx, cancel := q.applyContext(ctx)
	defer cancel()

	var count int
	err := WithRetry(ctx, func() error {
		var model T
		var err error
		count, err = q.applySelect(q.db.NewSelect().Model(&model)).Count(ctx)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("failed to execute count query: %w (took %v)", err, time.Since(start))
	}

	return count, nil
}

// Exists checks if any records match the query
func (q *QueryBuilder[T]) Exists(ctx context.Context) (bool, error) {
	count, err := q.Count(ctx)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Insert inserts a new record and returns it with automatic retry
func (q *QueryBuilder[T]) Insert(ctx context.Context, data *T) (*T, error) {
	start := time.Now()
	ctx, cancel := q.applyContext(ctx)
	defer cancel()

	err := WithRetry(ctx, func() error {
		query := q.db.NewInsert().Model(data).Returning("*")
		if q.conflictColumn != "" {
			query = query.On("CONFLICT (?) DO NOTHING", bun.Ident(q.conflictColumn))
		}
		_, err := query.Exec(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to execute insert query: %w (took %v)", err, time.Since(start))
	}

	return data, nil
}

// Update applies the given column updates to all matching rows and returns
// the number of rows affected
func (q *QueryBuilder[T]) Update(ctx context.Context, updates map[string]any) (int, error) {
	start := time.Now()
	ctx, cancel := q.applyContext(ctx)
	defer cancel()

	var affected int
	err := WithRetry(ctx, func() error {
		query := q.db.NewUpdate().Model((*T)(nil))
		for column, value := range updates {
			query = query.Set("? = ?", bun.Ident(column), value)
		}
		for _, w := range q.wheres {
			query = query.Where(fmt.Sprintf("? %s ?", w.operator), bun.Ident(w.column), w.value)
		}

		res, err := query.Exec(ctx)
		if err != nil {
			return err
		}
		rows, err := res.RowsAffected()
		if err != nil {
			return err
		}
		affected = int(rows)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to execute update query: %w (took %v)", err, time.Since(start))
	}

	return affected, nil
}

// Delete removes all matching rows and returns the number of rows affected
func (q *QueryBuilder[T]) Delete(ctx context.Context) (int, error) {
	start := time.Now()
	ctx, cancel := q.applyContext(ctx)
	defer cancel()

	var affected int
	err := WithRetry(ctx, func() error {
		query := q.db.NewDelete().Model((*T)(nil))
		for _, w := range q.wheres {
			query = query.Where(fmt.Sprintf("? %s ?", w.operator), bun.Ident(w.column), w.value)
		}

		res, err := query.Exec(ctx)
		if err != nil {
			return err
		}
		rows, err := res.RowsAffected()
		if err != nil {
			return err
		}
		affected = int(rows)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to execute delete query: %w (took %v)", err, time.Since(start))
	}

	return affected, nil
}

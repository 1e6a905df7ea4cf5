package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is the method set stores run against. Both *pgxpool.Pool and
// pgx.Tx satisfy it.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Bounded wraps a Querier so every call carries the op timeout. WithTx
// bounds its whole transaction the same way; Bounded covers store access
// that runs outside one.
type Bounded struct {
	inner   Querier
	timeout time.Duration
}

func NewBounded(inner Querier, timeout time.Duration) *Bounded {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Bounded{inner: inner, timeout: timeout}
}

// Bounded returns the pool with the configured op timeout applied to
// every call.
func (db *DB) Bounded() *Bounded {
	return NewBounded(db.pool, db.opTimeout)
}

func (b *Bounded) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()
	return b.inner.Exec(ctx, sql, args...)
}

// Query ties the cancel to rows.Close: the rows hold the connection and
// read under this context until the caller closes them.
func (b *Bounded) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	rows, err := b.inner.Query(ctx, sql, args...)
	if err != nil {
		cancel()
		return nil, err
	}
	return &boundedRows{Rows: rows, cancel: cancel}, nil
}

// QueryRow defers the cancel to Scan, which is when pgx actually reads
// the result.
func (b *Bounded) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	return &boundedRow{row: b.inner.QueryRow(ctx, sql, args...), cancel: cancel}
}

type boundedRows struct {
	pgx.Rows
	cancel context.CancelFunc
}

func (r *boundedRows) Close() {
	r.Rows.Close()
	r.cancel()
}

type boundedRow struct {
	row    pgx.Row
	cancel context.CancelFunc
}

func (r *boundedRow) Scan(dest ...any) error {
	defer r.cancel()
	return r.row.Scan(dest...)
}

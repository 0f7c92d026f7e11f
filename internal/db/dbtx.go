package db

import (
	"context"
	"database/sql"
)

// DBTX is what the session, set and record repositories run their queries
// against: the shared *sql.DB for reads, or the *sql.Tx of a recording.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ DBTX = (*sql.DB)(nil)
	_ DBTX = (*sql.Tx)(nil)
)

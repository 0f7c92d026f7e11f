package testutil

import (
	"context"
	"database/sql"
	"sync/atomic"

	"github.com/alexanderramin/spotter/internal/db"
)

// FailOnNthExecUoW runs the real SQLite unit of work but fails the Nth write
// made inside it with Err. Recording a session writes the session row first,
// then one row per set, then record upserts, so N picks the step that breaks.
// Reads are not counted.
type FailOnNthExecUoW struct {
	DB     *sql.DB
	FailOn int32
	Err    error

	// FailedQuery is the statement that was failed, if any.
	FailedQuery string
}

func (u *FailOnNthExecUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	return db.NewSQLiteUnitOfWork(u.DB).WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return fn(ctx, &failOnNthExec{DBTX: tx, uow: u})
	})
}

type failOnNthExec struct {
	db.DBTX
	uow   *FailOnNthExecUoW
	count atomic.Int32
}

func (f *failOnNthExec) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if f.count.Add(1) == f.uow.FailOn {
		f.uow.FailedQuery = query
		return nil, f.uow.Err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}

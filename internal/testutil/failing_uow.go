package testutil

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/fieldops/internal/db"
)

// FailingUoW runs the unit of work in a real transaction but fails its Nth
// write with Err. Reads are not counted.
type FailingUoW struct {
	DB     *sql.DB
	FailAt int
	Err    error
}

func (u *FailingUoW) WithinTx(ctx context.Context, fn db.TxFunc) error {
	return db.NewSQLiteUnitOfWork(u.DB).WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return fn(ctx, &failingWriter{DBTX: tx, failAt: u.FailAt, err: u.Err})
	})
}

type failingWriter struct {
	db.DBTX
	writes int
	failAt int
	err    error
}

func (w *failingWriter) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	w.writes++
	if w.writes == w.failAt {
		return nil, fmt.Errorf("write %d: %w", w.writes, w.err)
	}
	return w.DBTX.ExecContext(ctx, query, args...)
}

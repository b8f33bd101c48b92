package db

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func insertClient(ctx context.Context, tx DBTX, id string) error {
	_, err := tx.ExecContext(ctx, `INSERT INTO clients (id, seq, name) VALUES (?, 0, ?)`, id, "Cliente "+id)
	return err
}

func clientCount(t *testing.T, db *sql.DB) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM clients`).Scan(&n))
	return n
}

func TestWithinTx_Commits(t *testing.T) {
	db := openTestDB(t)
	uow := NewSQLiteUnitOfWork(db)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx DBTX) error {
		if err := insertClient(ctx, tx, "c1"); err != nil {
			return err
		}
		return insertClient(ctx, tx, "c2")
	})

	require.NoError(t, err)
	assert.Equal(t, 2, clientCount(t, db))
}

func TestWithinTx_ErrorRollsBackEveryWrite(t *testing.T) {
	db := openTestDB(t)
	uow := NewSQLiteUnitOfWork(db)
	stop := errors.New("fixture rejected")

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx DBTX) error {
		require.NoError(t, insertClient(ctx, tx, "c1"))
		return stop
	})

	require.ErrorIs(t, err, stop)
	assert.Zero(t, clientCount(t, db))
}

func TestWithinTx_ConstraintViolationRollsBack(t *testing.T) {
	db := openTestDB(t)
	uow := NewSQLiteUnitOfWork(db)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx DBTX) error {
		if err := insertClient(ctx, tx, "c1"); err != nil {
			return err
		}
		return insertClient(ctx, tx, "c1")
	})

	require.Error(t, err)
	assert.Zero(t, clientCount(t, db))
}

func TestWithinTx_PanicRollsBack(t *testing.T) {
	db := openTestDB(t)
	uow := NewSQLiteUnitOfWork(db)

	assert.PanicsWithValue(t, "seed bug", func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx DBTX) error {
			_ = insertClient(ctx, tx, "c1")
			panic("seed bug")
		})
	})

	assert.Zero(t, clientCount(t, db))
}

func TestWithinTx_CancelledContext(t *testing.T) {
	db := openTestDB(t)
	uow := NewSQLiteUnitOfWork(db)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := uow.WithinTx(ctx, func(context.Context, DBTX) error {
		called = true
		return nil
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "beginning transaction")
	assert.False(t, called)
}

package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/alexanderramin/fieldops/internal/db"
	"github.com/alexanderramin/fieldops/internal/seed"
)

// NewTestDB opens an empty in-memory store with the schema applied. It is
// closed when the test ends.
func NewTestDB(t testing.TB) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	if err != nil {
		t.Fatalf("opening test store: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return database
}

// NewSeededDB opens an in-memory store holding the embedded fixture, the
// same data the binary starts with.
func NewSeededDB(t testing.TB) *sql.DB {
	t.Helper()
	ds, err := seed.Default()
	if err != nil {
		t.Fatalf("parsing embedded fixture: %v", err)
	}
	return SeedDB(t, NewTestDB(t), ds)
}

// SeedDB applies ds to database in one transaction and returns database.
func SeedDB(t testing.TB, database *sql.DB, ds *seed.Dataset) *sql.DB {
	t.Helper()
	if err := seed.Apply(context.Background(), db.NewSQLiteUnitOfWork(database), ds); err != nil {
		t.Fatalf("seeding test store: %v", err)
	}
	return database
}

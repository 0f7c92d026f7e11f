package testutil

import (
	"database/sql"
	"testing"

	"github.com/alexanderramin/spotter/internal/db"
)

// NewTestDB opens an in-memory history database with the spotter schema
// (sessions, sets, records) migrated. It is closed at test cleanup.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	if err != nil {
		t.Fatalf("opening test history database: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return database
}

// NewTestUoW wraps database for WorkoutService.Record in tests.
func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}

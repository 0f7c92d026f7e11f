package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// MemoryPath opens a throwaway database, as used by tests or db_path: ":memory:".
const MemoryPath = ":memory:"

// pragmas run on every new database handle, in order.
var pragmas = []struct{ stmt, what string }{
	// The TUI reads history while a finished session is being recorded.
	{"PRAGMA journal_mode = WAL", "setting WAL mode"},
	// workout_sets cascade with their session and personal_records fall back
	// to a NULL session_id; both need enforcement on.
	{"PRAGMA foreign_keys = ON", "enabling foreign keys"},
}

// OpenDB opens the spotter history database at path, creating its directory
// if needed, and brings the schema up to date.
func OpenDB(path string) (*sql.DB, error) {
	if path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("creating history directory: %w", err)
		}
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	for _, p := range pragmas {
		if _, err := conn.Exec(p.stmt); err != nil {
			conn.Close()
			return nil, fmt.Errorf("%s: %w", p.what, err)
		}
	}

	if err := Migrate(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrating history schema: %w", err)
	}
	return conn, nil
}

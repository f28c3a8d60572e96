package shelf

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	json "github.com/goccy/go-json"
	_ "modernc.org/sqlite" // Pure-Go SQLite driver.
)

// schema contains the DDL executed on first open. Using IF NOT EXISTS makes
// it safe to run on every startup.
const schema = `
CREATE TABLE IF NOT EXISTS lists (
    key        TEXT PRIMARY KEY,
    payload    TEXT NOT NULL,
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// Store persists each list as a JSON array under its key in a local SQLite
// database. Persistence is best-effort: Load never fails visibly, and Save
// errors are for the caller to absorb, not to show.
//
// A nil *Store is a valid no-op store — Load returns empty, Save succeeds
// silently. Callers that fail to open the database keep a working in-memory
// session that simply will not survive a restart.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens (or creates) the list database at dbPath, enables WAL mode and
// a busy timeout, and creates the schema if absent.
func Open(ctx context.Context, dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("shelf: open database: %w", err)
	}

	// SQLite only supports a single writer; one connection avoids
	// SQLITE_BUSY contention between pooled connections.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("shelf: enable WAL mode: %w", err)
	}
	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout=5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("shelf: set busy timeout: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("shelf: create schema: %w", err)
	}

	return &Store{db: db, path: dbPath}, nil
}

// Path returns the database file path, or empty for a nil store.
func (s *Store) Path() string {
	if s == nil {
		return ""
	}
	return s.path
}

// Load returns the saved entries for the given list. An absent key, corrupt
// payload, or storage failure all yield an empty slice — this call never
// fails visibly.
func (s *Store) Load(ctx context.Context, list List) []Entry {
	if s == nil {
		return nil
	}
	var payload string
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM lists WHERE key = ?`, string(list)).Scan(&payload)
	if err != nil {
		return nil
	}
	var entries []Entry
	if err := json.Unmarshal([]byte(payload), &entries); err != nil {
		return nil
	}
	return entries
}

// Save upserts the entries for the given list as a JSON array. Best-effort:
// callers absorb the error rather than surfacing it.
func (s *Store) Save(ctx context.Context, list List, entries []Entry) error {
	if s == nil {
		return nil
	}
	if entries == nil {
		entries = []Entry{}
	}
	payload, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("shelf: encode %s: %w", list, err)
	}
	const q = `
		INSERT INTO lists (key, payload, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET payload = excluded.payload, updated_at = CURRENT_TIMESTAMP`
	if _, err := s.db.ExecContext(ctx, q, string(list), string(payload)); err != nil {
		return fmt.Errorf("shelf: save %s: %w", list, err)
	}
	return nil
}

// LoadShelf restores both lists into a fresh Shelf.
func (s *Store) LoadShelf(ctx context.Context) Shelf {
	return Shelf{
		ToWatch: s.Load(ctx, ListToWatch),
		Watched: s.Load(ctx, ListWatched),
	}
}

// Close releases the database handle. Safe on nil.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	if err := s.db.Close(); err != nil && !errors.Is(err, sql.ErrConnDone) {
		return fmt.Errorf("shelf: close: %w", err)
	}
	return nil
}

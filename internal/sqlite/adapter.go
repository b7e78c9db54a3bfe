// Package sqlite implements the SQLite storage adapter for keepsake.
// The favorites list is serialized as a compact JSON array of URL strings
// and stored in a single key/value row, guarded by a revision token so
// writes from another process are detected instead of silently overwritten.
package sqlite

import (
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/keepsake/pkg/types"
)

//go:embed schema.sql
var schemaSQL string

// dbFileName is the database file created inside the data directory.
const dbFileName = "favorites.db"

// Adapter implements types.Adapter on a SQLite database.
type Adapter struct {
	mu     sync.Mutex
	db     *sql.DB
	closed bool

	// revision observed by the last Load; "" means no row was seen.
	// Save compare-and-swaps against it.
	revision string
}

// Open creates the data directory if needed, opens (or creates) the
// database, and ensures the schema exists.
func Open(dataDir string) (*Adapter, error) {
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, dbFileName))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &Adapter{db: db}, nil
}

// Load returns the persisted favorites list, newest-first. A missing row or
// an undecodable value yields an empty list without error; the next Save
// replaces whatever is there.
func (a *Adapter) Load() ([]string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return nil, types.ErrAdapterClosed
	}

	var value, revision string
	err := a.db.QueryRow(
		`SELECT value, revision FROM kv WHERE key = ?`, types.StorageKey,
	).Scan(&value, &revision)
	if errors.Is(err, sql.ErrNoRows) {
		a.revision = ""
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query favorites: %w", err)
	}
	a.revision = revision

	var urls []string
	if err := json.Unmarshal([]byte(value), &urls); err != nil {
		// Corrupt value reads as empty.
		return nil, nil
	}
	return urls, nil
}

// Save persists the full list under the favorites key. The write succeeds
// only if the stored revision still matches the one seen by the last Load;
// otherwise another writer got there first and ErrConflict is returned.
func (a *Adapter) Save(urls []string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return types.ErrAdapterClosed
	}

	if urls == nil {
		urls = []string{}
	}
	value, err := json.Marshal(urls)
	if err != nil {
		return fmt.Errorf("encode favorites: %w", err)
	}

	next := newRevision()
	res, err := a.db.Exec(
		`INSERT INTO kv (key, value, revision) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, revision = excluded.revision
		 WHERE kv.revision = ?`,
		types.StorageKey, string(value), next, a.revision,
	)
	if err != nil {
		return fmt.Errorf("save favorites: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("save favorites: %w", err)
	}
	if n == 0 {
		return types.ErrConflict
	}

	a.revision = next
	return nil
}

// Clear removes the favorites row entirely.
func (a *Adapter) Clear() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return types.ErrAdapterClosed
	}
	if _, err := a.db.Exec(`DELETE FROM kv WHERE key = ?`, types.StorageKey); err != nil {
		return fmt.Errorf("clear favorites: %w", err)
	}
	a.revision = ""
	return nil
}

// Close releases the database handle. Idempotent.
func (a *Adapter) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return nil
	}
	a.closed = true
	return a.db.Close()
}

// newRevision generates an opaque revision token (UUID v7, falling back to
// v4 if v7 generation fails).
func newRevision() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

package types

import "errors"

// StorageKey is the logical key under which the favorites list is persisted.
// Every backend stores the serialized list under this single name.
const StorageKey = "favorites"

// Adapter is the storage boundary for the favorites list. It persists one
// named key holding the serialized, newest-first sequence of URL strings.
//
// Load treats absent or malformed persisted state as the empty list and does
// not report it as an error; only I/O failures are returned. Save persists
// the full list before returning. No Adapter failure is fatal to the caller;
// the worst outcome is a lost write, which the caller may report.
type Adapter interface {
	// Load returns the persisted list, newest-first. A missing or
	// undecodable value yields an empty list and a nil error.
	Load() ([]string, error)

	// Save persists the full list, replacing any previous value.
	// Returns ErrConflict if another writer changed the persisted value
	// since the last Load and the backend detects concurrent updates.
	Save(urls []string) error

	// Clear removes the persisted value entirely.
	Clear() error

	// Close releases backend resources. Operations after Close return
	// ErrAdapterClosed. Close is idempotent.
	Close() error
}

// Adapter lifecycle and persistence errors.
var (
	ErrAdapterClosed = errors.New("storage adapter is closed")
	ErrConflict      = errors.New("favorites were modified by another writer")
)

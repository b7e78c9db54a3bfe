// Package jsonfile implements a flat-file storage adapter for keepsake.
// The favorites list is stored as a JSON array of URL strings in a single
// file, written atomically with the temp-file, fsync, rename pattern.
//
// Unlike the sqlite adapter, this backend carries no revision token:
// concurrent writers are last-write-wins.
package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/mesh-intelligence/keepsake/pkg/types"
)

// fileName is the favorites file created inside the data directory.
const fileName = "favorites.json"

// Adapter implements types.Adapter on a single JSON file.
type Adapter struct {
	mu     sync.Mutex
	path   string
	closed bool
}

// Open creates the data directory if needed and returns an adapter for the
// favorites file inside it. The file itself is created on first Save.
func Open(dataDir string) (*Adapter, error) {
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Adapter{path: filepath.Join(dataDir, fileName)}, nil
}

// Load returns the persisted favorites list, newest-first. A missing file or
// undecodable content yields an empty list without error.
func (a *Adapter) Load() ([]string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return nil, types.ErrAdapterClosed
	}

	data, err := os.ReadFile(a.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", a.path, err)
	}

	var urls []string
	if err := json.Unmarshal(data, &urls); err != nil {
		// Corrupt content reads as empty; the next Save replaces it.
		return nil, nil
	}
	return urls, nil
}

// Save atomically replaces the favorites file with the full list.
func (a *Adapter) Save(urls []string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return types.ErrAdapterClosed
	}

	if urls == nil {
		urls = []string{}
	}
	data, err := json.Marshal(urls)
	if err != nil {
		return fmt.Errorf("encode favorites: %w", err)
	}
	return writeFileAtomic(a.path, data)
}

// Clear removes the favorites file. A missing file is not an error.
func (a *Adapter) Clear() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return types.ErrAdapterClosed
	}
	if err := os.Remove(a.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove %s: %w", a.path, err)
	}
	return nil
}

// Close marks the adapter closed. Idempotent; there is no file handle to
// release since every operation opens and closes the file itself.
func (a *Adapter) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.closed = true
	return nil
}

// writeFileAtomic writes data to path via a temp file in the same directory,
// fsyncs, and renames it into place so readers never observe a partial write.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".favorites-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing favorites: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

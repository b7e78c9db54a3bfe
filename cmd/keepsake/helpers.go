// Shared helpers for keepsake CLI commands.
package main

import (
	"fmt"

	"github.com/mesh-intelligence/keepsake/internal/jsonfile"
	"github.com/mesh-intelligence/keepsake/internal/sqlite"
	"github.com/mesh-intelligence/keepsake/internal/store"
	"github.com/mesh-intelligence/keepsake/pkg/types"
)

// openAdapter resolves the data directory and opens the storage adapter
// selected by config. The caller must Close the adapter.
func openAdapter() (types.Adapter, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{
		Backend: configBackend,
		DataDir: dataDir,
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	switch cfg.Backend {
	case types.BackendJSONFile:
		return jsonfile.Open(cfg.DataDir)
	default:
		return sqlite.Open(cfg.DataDir)
	}
}

// openStore opens the configured adapter and loads the favorites store on
// top of it. The caller must Close the returned adapter when done.
func openStore() (*store.Store, types.Adapter, error) {
	adapter, err := openAdapter()
	if err != nil {
		return nil, nil, fmt.Errorf("open storage: %w", err)
	}

	s, err := store.New(adapter)
	if err != nil {
		adapter.Close()
		return nil, nil, err
	}
	return s, adapter, nil
}

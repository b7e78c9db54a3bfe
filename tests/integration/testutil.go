// Package integration provides CLI integration tests for keepsake.
package integration

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

var (
	// keepsakeBin is the path to the built keepsake binary.
	keepsakeBin string
	// buildErr captures any build error.
	buildErr error
)

// BuildError wraps a build error with output.
type BuildError struct {
	Err    error
	Output string
}

func (e *BuildError) Error() string {
	return e.Err.Error() + ": " + e.Output
}

// FindProjectRoot finds the project root by walking up and looking for go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		goModPath := filepath.Join(dir, "go.mod")
		if _, err := os.Stat(goModPath); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// TestEnv provides an isolated test environment with its own config and data
// directory.
type TestEnv struct {
	t       *testing.T
	TempDir string
	Config  string
	DataDir string
}

// NewTestEnv creates a new isolated test environment using the sqlite backend.
func NewTestEnv(t *testing.T) *TestEnv {
	return newTestEnv(t, "sqlite")
}

// NewJSONFileTestEnv creates an isolated environment using the jsonfile backend.
func NewJSONFileTestEnv(t *testing.T) *TestEnv {
	return newTestEnv(t, "jsonfile")
}

func newTestEnv(t *testing.T, backend string) *TestEnv {
	t.Helper()

	if buildErr != nil {
		t.Fatalf("failed to build keepsake: %v", buildErr)
	}
	if keepsakeBin == "" {
		t.Fatal("keepsake binary not built (keepsakeBin is empty)")
	}

	tempDir := t.TempDir()
	dataDir := filepath.Join(tempDir, "data")
	configDir := filepath.Join(tempDir, "config")

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	configContent := "backend: " + backend + "\ndata_dir: " + dataDir + "\n"
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(configContent), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	return &TestEnv{
		t:       t,
		TempDir: tempDir,
		Config:  configDir,
		DataDir: dataDir,
	}
}

// CmdResult holds the result of a keepsake command execution.
type CmdResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// RunKeepsake executes the keepsake CLI with the given arguments.
func (e *TestEnv) RunKeepsake(args ...string) CmdResult {
	e.t.Helper()

	allArgs := append([]string{"--config-dir", e.Config, "--data-dir", e.DataDir}, args...)
	cmd := exec.Command(keepsakeBin, allArgs...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			e.t.Fatalf("failed to run keepsake: %v", err)
		}
	}

	return CmdResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
	}
}

// MustRunKeepsake executes the keepsake CLI and fails the test if it returns
// non-zero.
func (e *TestEnv) MustRunKeepsake(args ...string) CmdResult {
	e.t.Helper()
	result := e.RunKeepsake(args...)
	if result.ExitCode != 0 {
		e.t.Fatalf("keepsake %v failed with exit code %d:\nstdout: %s\nstderr: %s",
			args, result.ExitCode, result.Stdout, result.Stderr)
	}
	return result
}

// ParseJSON parses JSON output into the target type.
func ParseJSON[T any](t *testing.T, jsonStr string) T {
	t.Helper()
	var result T
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		t.Fatalf("failed to parse JSON %q: %v", jsonStr, err)
	}
	return result
}

// GalleryView mirrors the JSON shape of `keepsake list --json`.
type GalleryView struct {
	Items []struct {
		URL     string `json:"url"`
		Caption string `json:"caption"`
	} `json:"items"`
	Total  int    `json:"total"`
	Empty  bool   `json:"empty"`
	Notice string `json:"notice"`
}

// AddResult mirrors the JSON shape of `keepsake add --json`.
type AddResult struct {
	URL   string `json:"url"`
	Added bool   `json:"added"`
	Total int    `json:"total"`
}

// RemoveResult mirrors the JSON shape of `keepsake remove --json`.
type RemoveResult struct {
	URL     string `json:"url"`
	Removed bool   `json:"removed"`
	Total   int    `json:"total"`
}

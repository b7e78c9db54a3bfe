package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/keepsake/pkg/types"
)

var _ types.Adapter = (*Adapter)(nil)

func openTestAdapter(t *testing.T, dir string) *Adapter {
	t.Helper()
	a, err := Open(dir)
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })
	return a
}

func TestLoadEmptyDatabase(t *testing.T) {
	a := openTestAdapter(t, t.TempDir())

	urls, err := a.Load()
	require.NoError(t, err)
	assert.Empty(t, urls)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	a := openTestAdapter(t, dir)

	want := []string{"http://b.test/y.png", "http://a.test/x.png"}
	require.NoError(t, a.Save(want))

	got, err := a.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// A fresh adapter on the same directory sees the same list.
	b := openTestAdapter(t, dir)
	got, err = b.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSaveEmptyList(t *testing.T) {
	a := openTestAdapter(t, t.TempDir())

	require.NoError(t, a.Save([]string{"http://a.test/x.png"}))
	require.NoError(t, a.Save(nil))

	got, err := a.Load()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestClear(t *testing.T) {
	a := openTestAdapter(t, t.TempDir())

	require.NoError(t, a.Save([]string{"http://a.test/x.png"}))
	require.NoError(t, a.Clear())

	got, err := a.Load()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCorruptValueLoadsEmpty(t *testing.T) {
	a := openTestAdapter(t, t.TempDir())

	_, err := a.db.Exec(
		`INSERT INTO kv (key, value, revision) VALUES (?, ?, ?)`,
		types.StorageKey, `{not json`, "rev-1",
	)
	require.NoError(t, err)

	got, err := a.Load()
	require.NoError(t, err)
	assert.Empty(t, got)

	// The next save replaces the corrupt value.
	require.NoError(t, a.Save([]string{"http://a.test/x.png"}))
	got, err = a.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"http://a.test/x.png"}, got)
}

func TestConcurrentWriterDetected(t *testing.T) {
	dir := t.TempDir()
	a := openTestAdapter(t, dir)
	b := openTestAdapter(t, dir)

	require.NoError(t, a.Save([]string{"http://a.test/x.png"}))

	// b loads the current state, then a writes again behind b's back.
	_, err := b.Load()
	require.NoError(t, err)
	require.NoError(t, a.Save([]string{"http://a.test/x.png", "http://b.test/y.png"}))

	err = b.Save([]string{"http://c.test/z.png"})
	assert.ErrorIs(t, err, types.ErrConflict)

	// After reloading, b can write again.
	_, err = b.Load()
	require.NoError(t, err)
	require.NoError(t, b.Save([]string{"http://c.test/z.png"}))
}

func TestStaleWriterWithoutLoadDetected(t *testing.T) {
	dir := t.TempDir()
	a := openTestAdapter(t, dir)
	require.NoError(t, a.Save([]string{"http://a.test/x.png"}))

	// b never loads, so it has not seen the existing row.
	b := openTestAdapter(t, dir)
	err := b.Save([]string{"http://c.test/z.png"})
	assert.ErrorIs(t, err, types.ErrConflict)
}

func TestClosedAdapter(t *testing.T) {
	a := openTestAdapter(t, t.TempDir())
	require.NoError(t, a.Close())
	require.NoError(t, a.Close()) // idempotent

	_, err := a.Load()
	assert.ErrorIs(t, err, types.ErrAdapterClosed)
	assert.ErrorIs(t, a.Save([]string{"x"}), types.ErrAdapterClosed)
	assert.ErrorIs(t, a.Clear(), types.ErrAdapterClosed)
}

func TestOpenCreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	a := openTestAdapter(t, dir)

	require.NoError(t, a.Save([]string{"http://a.test/x.png"}))
	assert.FileExists(t, filepath.Join(dir, dbFileName))
}

package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kvBackends(t *testing.T) map[string]KV {
	t.Helper()
	dir := t.TempDir()

	file, err := NewFileKV(filepath.Join(dir, "store.json"))
	require.NoError(t, err)

	db, err := NewSQLiteKV(filepath.Join(dir, "store.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return map[string]KV{"file": file, "sqlite": db}
}

func TestKV_RoundTrip(t *testing.T) {
	for name, kv := range kvBackends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := kv.Get("missing")
			assert.ErrorIs(t, err, ErrNotFound)

			require.NoError(t, kv.Put("k", []byte(`{"a":1}`)))
			got, err := kv.Get("k")
			require.NoError(t, err)
			assert.JSONEq(t, `{"a":1}`, string(got))

			require.NoError(t, kv.Put("k", []byte(`[1,2]`)))
			got, err = kv.Get("k")
			require.NoError(t, err)
			assert.JSONEq(t, `[1,2]`, string(got))

			require.NoError(t, kv.Delete("k"))
			_, err = kv.Get("k")
			assert.ErrorIs(t, err, ErrNotFound)
			assert.NoError(t, kv.Delete("k"))
		})
	}
}

func TestFileKV_PersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "store.json")

	kv, err := NewFileKV(path)
	require.NoError(t, err)
	require.NoError(t, kv.Put("settings", []byte(`{"shopName":"Box"}`)))

	reopened, err := NewFileKV(path)
	require.NoError(t, err)
	got, err := reopened.Get("settings")
	require.NoError(t, err)
	assert.JSONEq(t, `{"shopName":"Box"}`, string(got))
}

func TestFileKV_RejectsInvalidJSON(t *testing.T) {
	kv, err := NewFileKV(filepath.Join(t.TempDir(), "store.json"))
	require.NoError(t, err)

	assert.ErrorIs(t, kv.Put("k", []byte("{oops")), ErrInvalidJSON)
}

func TestFileKV_CorruptFileMovedAside(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	require.NoError(t, os.WriteFile(path, []byte("not json at all"), 0644))

	kv, err := NewFileKV(path)
	require.NoError(t, err)

	_, err = kv.Get(ServicesKey)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = os.Stat(path + ".corrupt")
	assert.NoError(t, err)
}

func TestSQLiteKV_PersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.db")

	kv, err := NewSQLiteKV(path)
	require.NoError(t, err)
	require.NoError(t, kv.Put("k", []byte(`"v"`)))
	require.NoError(t, kv.Close())

	reopened, err := NewSQLiteKV(path)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Get("k")
	require.NoError(t, err)
	assert.Equal(t, `"v"`, string(got))
}

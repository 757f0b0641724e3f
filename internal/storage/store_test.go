package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/coursemind/landing-forms/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openStores(t *testing.T) map[string]Store {
	t.Helper()

	sqliteStore, err := NewSQLiteStore(context.Background(), filepath.Join(t.TempDir(), "forms.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqliteStore.Close() })

	memoryStore := NewMemoryStore()
	t.Cleanup(func() { _ = memoryStore.Close() })

	return map[string]Store{
		"sqlite": sqliteStore,
		"memory": memoryStore,
	}
}

func TestStore_GetMissing(t *testing.T) {
	for name, store := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			value, ok, err := store.Get(context.Background(), "nothing-here")
			require.NoError(t, err)
			assert.False(t, ok)
			assert.Empty(t, value)
		})
	}
}

func TestStore_SetOverwrites(t *testing.T) {
	ctx := context.Background()
	for name, store := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Set(ctx, "slot", `{"v":1}`))
			require.NoError(t, store.Set(ctx, "slot", `{"v":2}`))

			value, ok, err := store.Get(ctx, "slot")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, `{"v":2}`, value)
		})
	}
}

func TestStore_KeysAreIndependent(t *testing.T) {
	ctx := context.Background()
	for name, store := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Set(ctx, "a", "first"))
			require.NoError(t, store.Set(ctx, "b", "second"))
			require.NoError(t, store.Delete(ctx, "a"))

			_, ok, err := store.Get(ctx, "a")
			require.NoError(t, err)
			assert.False(t, ok)

			value, ok, err := store.Get(ctx, "b")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, "second", value)
		})
	}
}

func TestStore_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for name, store := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, store.Set(ctx, "slot", "value"))
		})
	}
}

func TestSQLiteStore_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "forms.db")

	first, err := NewSQLiteStore(ctx, path)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "coursemind_demo_request_last", `{"name":"Анна"}`))
	require.NoError(t, first.Close())

	// Second open runs migrations again and must find them already applied
	second, err := NewSQLiteStore(ctx, path)
	require.NoError(t, err)
	defer second.Close()

	value, ok, err := second.Get(ctx, "coursemind_demo_request_last")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"name":"Анна"}`, value)
	assert.Equal(t, path, second.Path())
}

func TestSQLiteDSN_EscapesURIDelimiters(t *testing.T) {
	assert.Equal(t, "file:/tmp/forms.db?_pragma=busy_timeout(5000)", sqliteDSN("/tmp/forms.db"))
	assert.Equal(t, "file:/tmp/a%3fb%23c%25d.db?_pragma=busy_timeout(5000)", sqliteDSN("/tmp/a?b#c%d.db"))
}

func TestSQLiteStore_PathWithURIDelimiters(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "what?#now", "forms%20.db")

	store, err := NewSQLiteStore(ctx, path)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "k", "v"))
	require.NoError(t, store.Close())

	_, err = os.Stat(path)
	require.NoError(t, err)

	reopened, err := NewSQLiteStore(ctx, path)
	require.NoError(t, err)
	defer reopened.Close()

	value, ok, err := reopened.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", value)
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	store, err := Open(ctx, config.StorageConfig{Driver: config.StorageDriverMemory})
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, store)

	store, err = Open(ctx, config.StorageConfig{Driver: config.StorageDriverSQLite, Path: filepath.Join(t.TempDir(), "x.db")})
	require.NoError(t, err)
	assert.IsType(t, &SQLiteStore{}, store)
	require.NoError(t, store.Close())

	_, err = Open(ctx, config.StorageConfig{Driver: "etcd"})
	assert.Error(t, err)
}

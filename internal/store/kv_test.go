package store_test

import (
	"fmt"
	"path/filepath"
	"sort"
	"sync"
	"testing"

	"herbwala/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// TestMain ensures no goroutines leak during store tests.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestKVBasicOps(t *testing.T) {
	kv, err := store.Open(":memory:")
	require.NoError(t, err)
	defer kv.Close()

	t.Run("absent key", func(t *testing.T) {
		_, ok, err := kv.Get("nothing")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("set then get", func(t *testing.T) {
		require.NoError(t, kv.Set("greeting", `"salaam"`))

		value, ok, err := kv.Get("greeting")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, `"salaam"`, value)
	})

	t.Run("overwrite replaces whole value", func(t *testing.T) {
		require.NoError(t, kv.Set("doc", `{"a":1}`))
		require.NoError(t, kv.Set("doc", `{"b":2}`))

		value, ok, err := kv.Get("doc")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, `{"b":2}`, value)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, kv.Set("gone", "x"))
		require.NoError(t, kv.Delete("gone"))

		_, ok, err := kv.Get("gone")
		require.NoError(t, err)
		assert.False(t, ok)

		// Deleting again is a no-op.
		require.NoError(t, kv.Delete("gone"))
	})

	t.Run("keys sorted", func(t *testing.T) {
		require.NoError(t, kv.Set("zz", "1"))
		require.NoError(t, kv.Set("aa", "2"))

		keys, err := kv.Keys()
		require.NoError(t, err)
		assert.Contains(t, keys, "aa")
		assert.Contains(t, keys, "zz")
		assert.True(t, sort.StringsAreSorted(keys))
	})
}

func TestKVPersistence(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "state", "herbwala.db")

	// 1. Create store and write data
	kv, err := store.Open(dbPath)
	require.NoError(t, err)

	require.NoError(t, kv.Set("users", `[{"name":"A","email":"a@x.pk","password":"p"}]`))
	require.NoError(t, kv.Close())

	// 2. Reopen store and verify data
	kv2, err := store.Open(dbPath)
	require.NoError(t, err)
	defer kv2.Close()

	value, ok, err := kv2.Get("users")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[{"name":"A","email":"a@x.pk","password":"p"}]`, value)
	assert.Equal(t, dbPath, kv2.Path())
}

func TestKVConcurrentWrites(t *testing.T) {
	kv, err := store.Open(filepath.Join(t.TempDir(), "herbwala.db"))
	require.NoError(t, err)
	defer kv.Close()

	var wg sync.WaitGroup
	numWorkers := 10
	numWritesPerWorker := 10

	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for j := 0; j < numWritesPerWorker; j++ {
				key := fmt.Sprintf("key-%d-%d", workerID, j)
				assert.NoError(t, kv.Set(key, "value"))
			}
		}(i)
	}

	wg.Wait()

	keys, err := kv.Keys()
	require.NoError(t, err)
	assert.Len(t, keys, numWorkers*numWritesPerWorker)
}

package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Veraticus/swipe-grocery/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper function to create test storage.
func createTestStorage(t *testing.T) (*SQLiteStorage, func()) {
	t.Helper()
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := NewSQLiteStorage(dbPath)
	if err != nil {
		t.Fatalf("Failed to create storage: %v", err)
	}

	ctx := context.Background()
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		t.Fatalf("Failed to migrate: %v", err)
	}

	return store, func() { _ = store.Close() }
}

func createTestItems(count int) []model.Item {
	items := make([]model.Item, count)
	for i := 0; i < count; i++ {
		items[i] = model.Item{
			ID:       i + 1,
			Name:     makeTestName("Item", i+1),
			Category: "Produce",
			Weight:   "500g",
			Price:    float64(i+1) * 1.25,
		}
	}
	return items
}

func makeTestName(prefix string, num int) string {
	return prefix + " #" + string(rune('0'+num))
}

func TestNewSQLiteStorage(t *testing.T) {
	t.Run("creates nested directories", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "a", "b", "swipe.db")
		store, err := NewSQLiteStorage(dbPath)
		require.NoError(t, err)
		defer func() { _ = store.Close() }()

		assert.Equal(t, dbPath, store.Path())
		assert.FileExists(t, dbPath)
	})

	t.Run("in memory", func(t *testing.T) {
		store, err := NewSQLiteStorage(":memory:")
		require.NoError(t, err)
		defer func() { _ = store.Close() }()

		require.NoError(t, store.Migrate(context.Background()))
		count, err := store.CountItems(context.Background())
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("empty path", func(t *testing.T) {
		_, err := NewSQLiteStorage("  ")
		assert.ErrorIs(t, err, ErrEmptyString)
	})
}

func TestClassifyError(t *testing.T) {
	assert.NoError(t, classifyError(nil))

	plain := assert.AnError
	assert.Equal(t, plain, classifyError(plain))
}

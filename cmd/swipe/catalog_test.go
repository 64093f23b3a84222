package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Veraticus/swipe-grocery/internal/catalog"
	"github.com/Veraticus/swipe-grocery/internal/common"
	"github.com/Veraticus/swipe-grocery/internal/storage"
	"github.com/Veraticus/swipe-grocery/internal/testutil"
	"github.com/Veraticus/swipe-grocery/internal/testutil/items"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB points the global config at a fresh database file.
func setupTestDB(t *testing.T) string {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	dbPath := filepath.Join(t.TempDir(), "catalog.db")
	viper.Set("database.path", dbPath)
	return dbPath
}

func runCommand(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func openTestStore(t *testing.T, dbPath string) *storage.SQLiteStorage {
	t.Helper()
	return testutil.SetupTestDBWithOptions(t, testutil.TestDBOptions{Path: dbPath}).Storage
}

func TestCatalogSeed(t *testing.T) {
	dbPath := setupTestDB(t)

	out, err := runCommand(t, catalogCmd(), "seed")
	require.NoError(t, err)
	assert.Contains(t, out, "Seeded 10 items")

	out, err = runCommand(t, catalogCmd(), "seed")
	require.NoError(t, err)
	assert.Contains(t, out, "nothing seeded")

	store := openTestStore(t, dbPath)
	count, err := store.CountItems(context.Background())
	require.NoError(t, err)
	assert.Equal(t, catalog.Default().Len(), count)
}

func TestCatalogList(t *testing.T) {
	setupTestDB(t)

	out, err := runCommand(t, catalogCmd(), "list")
	require.NoError(t, err)
	assert.Contains(t, out, "The catalog is empty")

	_, err = runCommand(t, catalogCmd(), "seed")
	require.NoError(t, err)

	out, err = runCommand(t, catalogCmd(), "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Catalog (10 items)")
	assert.Contains(t, out, "Discount")
}

func TestCatalogImport(t *testing.T) {
	dbPath := setupTestDB(t)

	file := filepath.Join(t.TempDir(), "items.json")
	require.NoError(t, os.WriteFile(file, []byte(`[
		{"id": 1, "name": "Oat Milk", "price": 3.5, "discount": 10},
		{"id": 2, "name": "Rye Bread", "price": 4.25, "category": "Bakery"}
	]`), 0600))

	out, err := runCommand(t, catalogCmd(), "import", file)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported: 2")
	assert.Contains(t, out, "Catalog size: 2")

	// Importing again upserts.
	out, err = runCommand(t, catalogCmd(), "import", file)
	require.NoError(t, err)
	assert.Contains(t, out, "Catalog size: 2")

	db := testutil.SetupTestDBWithOptions(t, testutil.TestDBOptions{Path: dbPath})
	item := db.MustGetItem(2)
	assert.Equal(t, "Rye Bread", item.Name)
	assert.Equal(t, "Bakery", item.Category)
}

func TestCatalogListFixture(t *testing.T) {
	dbPath := setupTestDB(t)
	testutil.SetupTestDBWithOptions(t, testutil.TestDBOptions{
		Path:  dbPath,
		Items: items.NewBuilder(t).WithFixture(items.FixtureDiscounted).Build(),
	})

	out, err := runCommand(t, catalogCmd(), "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Catalog (2 items)")
	assert.Contains(t, out, "Olive Oil")
	assert.Contains(t, out, "$40.00")
}

func TestCatalogImportErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		missing bool
	}{
		{name: "missing file", missing: true},
		{name: "invalid json", content: `{not json`},
		{name: "invalid item", content: `[{"id": 1, "name": "Free", "price": 0}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupTestDB(t)

			file := filepath.Join(t.TempDir(), "items.json")
			if !tt.missing {
				require.NoError(t, os.WriteFile(file, []byte(tt.content), 0600))
			}

			_, err := runCommand(t, catalogCmd(), "import", file)
			assert.Error(t, err)
		})
	}
}

func TestCatalogRemove(t *testing.T) {
	setupTestDB(t)

	_, err := runCommand(t, catalogCmd(), "seed")
	require.NoError(t, err)

	out, err := runCommand(t, catalogCmd(), "remove", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Removed item 1")

	_, err = runCommand(t, catalogCmd(), "remove", "1")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrNotFound)

	_, err = runCommand(t, catalogCmd(), "remove", "bananas")
	var userErr *common.UserError
	assert.ErrorAs(t, err, &userErr)
}

func TestMigrateStatus(t *testing.T) {
	setupTestDB(t)

	out, err := runCommand(t, migrateCmd(), "--status")
	require.NoError(t, err)
	assert.Contains(t, out, "Current version: 0")
	assert.Contains(t, out, "swipe migrate")

	out, err = runCommand(t, migrateCmd())
	require.NoError(t, err)
	assert.Contains(t, out, "completed successfully")

	out, err = runCommand(t, migrateCmd(), "--status")
	require.NoError(t, err)
	assert.Contains(t, out, "Current version: 2")
	assert.NotContains(t, out, "Run 'swipe migrate'")
}

func TestOpenSource(t *testing.T) {
	ctx := context.Background()

	t.Run("builtin", func(t *testing.T) {
		setupTestDB(t)
		cfg, err := loadConfig()
		require.NoError(t, err)

		source, cleanup, err := openSource(ctx, cfg)
		require.NoError(t, err)
		defer cleanup()

		items, err := source.Items(ctx)
		require.NoError(t, err)
		assert.Len(t, items, catalog.Default().Len())
	})

	t.Run("empty sqlite catalog", func(t *testing.T) {
		setupTestDB(t)
		viper.Set("catalog.source", "sqlite")
		cfg, err := loadConfig()
		require.NoError(t, err)

		source, cleanup, err := openSource(ctx, cfg)
		require.NoError(t, err)
		defer cleanup()

		_, err = source.Items(ctx)
		assert.ErrorIs(t, err, common.ErrEmptyCatalog)
	})

	t.Run("seeded sqlite catalog", func(t *testing.T) {
		setupTestDB(t)
		_, err := runCommand(t, catalogCmd(), "seed")
		require.NoError(t, err)

		viper.Set("catalog.source", "sqlite")
		cfg, err := loadConfig()
		require.NoError(t, err)

		source, cleanup, err := openSource(ctx, cfg)
		require.NoError(t, err)
		defer cleanup()

		items, err := source.Items(ctx)
		require.NoError(t, err)
		assert.Len(t, items, catalog.Default().Len())
	})
}

func TestVersionCommand(t *testing.T) {
	out, err := runCommand(t, versionCmd())
	require.NoError(t, err)
	assert.Contains(t, out, "swipe dev")
}

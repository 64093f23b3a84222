// Package testutil provides test databases seeded with grocery items.
package testutil

import (
	"context"
	"testing"

	"github.com/Veraticus/swipe-grocery/internal/model"
	"github.com/Veraticus/swipe-grocery/internal/storage"
)

// TestDB is a migrated in-memory catalog database.
type TestDB struct {
	Storage *storage.SQLiteStorage
	t       *testing.T
	Items   []model.Item
}

// SetupTestDB creates a migrated in-memory database holding items.
// Cleanup is registered on t.
//
// Example:
//
//	db := testutil.SetupTestDB(t,
//		items.NewBuilder(t).WithFixture(items.FixtureThree).Build(),
//	)
func SetupTestDB(t *testing.T, items []model.Item) *TestDB {
	t.Helper()
	return SetupTestDBWithOptions(t, TestDBOptions{Items: items})
}

// TestDBOptions provides configuration options for test database setup.
type TestDBOptions struct {
	CustomSetup    func(context.Context, *storage.SQLiteStorage) error
	Path           string
	Items          []model.Item
	SkipMigrations bool
}

// SetupTestDBWithOptions creates a test database with custom options.
func SetupTestDBWithOptions(t *testing.T, opts TestDBOptions) *TestDB {
	t.Helper()

	path := opts.Path
	if path == "" {
		path = ":memory:"
	}
	store, err := storage.NewSQLiteStorage(path)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})
	ctx := context.Background()

	if !opts.SkipMigrations {
		if err := store.Migrate(ctx); err != nil {
			t.Fatalf("failed to run migrations: %v", err)
		}
	}

	if len(opts.Items) > 0 {
		if err := store.SaveItems(ctx, opts.Items); err != nil {
			t.Fatalf("failed to seed items: %v", err)
		}
	}

	if opts.CustomSetup != nil {
		if err := opts.CustomSetup(ctx, store); err != nil {
			t.Fatalf("custom setup failed: %v", err)
		}
	}

	return &TestDB{
		Storage: store,
		Items:   opts.Items,
		t:       t,
	}
}

// MustGetItem returns the stored item with id or fails the test.
func (db *TestDB) MustGetItem(id int) model.Item {
	db.t.Helper()
	item, err := db.Storage.GetItem(context.Background(), id)
	if err != nil {
		db.t.Fatalf("item %d not found: %v", id, err)
	}
	return *item
}

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Veraticus/swipe-grocery/internal/catalog"
	"github.com/Veraticus/swipe-grocery/internal/common"
	"github.com/Veraticus/swipe-grocery/internal/model"
)

const itemColumns = `id, name, category, description, weight, image, price, discount, organic`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (model.Item, error) {
	var item model.Item
	err := row.Scan(
		&item.ID,
		&item.Name,
		&item.Category,
		&item.Description,
		&item.Weight,
		&item.Image,
		&item.Price,
		&item.Discount,
		&item.Organic,
	)
	return item, err
}

// Items returns the catalog in deck order. It implements catalog.Source.
func (s *SQLiteStorage) Items(ctx context.Context) ([]model.Item, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `SELECT ` + itemColumns + ` FROM items ORDER BY position, id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", classifyError(err))
	}
	defer rows.Close()

	var items []model.Item
	for rows.Next() {
		item, scanErr := scanItem(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan item: %w", scanErr)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating items: %w", classifyError(err))
	}

	slog.Debug("retrieved items", "count", len(items))
	return items, nil
}

// GetItem returns a single item.
func (s *SQLiteStorage) GetItem(ctx context.Context, id int) (*model.Item, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `SELECT `+itemColumns+` FROM items WHERE id = ?`, id)
	item, err := scanItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("item %d: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get item %d: %w", id, classifyError(err))
	}
	return &item, nil
}

// SaveItem inserts or updates an item. New items are appended to the end of the deck.
func (s *SQLiteStorage) SaveItem(ctx context.Context, item *model.Item) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateItem(item); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", classifyError(err))
	}
	defer func() { _ = tx.Rollback() }()

	if err := upsertItemTx(ctx, tx, item); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit item: %w", classifyError(err))
	}
	return nil
}

// SaveItems upserts items in one transaction, preserving their order for new rows.
func (s *SQLiteStorage) SaveItems(ctx context.Context, items []model.Item) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateItems(items); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", classifyError(err))
	}
	defer func() { _ = tx.Rollback() }()

	for i := range items {
		if err := upsertItemTx(ctx, tx, &items[i]); err != nil {
			return fmt.Errorf("item %d: %w", items[i].ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit items: %w", classifyError(err))
	}
	return nil
}

func upsertItemTx(ctx context.Context, tx *sql.Tx, item *model.Item) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO items (`+itemColumns+`, position)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, (SELECT COALESCE(MAX(position), 0) + 1 FROM items))
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			category = excluded.category,
			description = excluded.description,
			weight = excluded.weight,
			image = excluded.image,
			price = excluded.price,
			discount = excluded.discount,
			organic = excluded.organic`,
		item.ID,
		item.Name,
		item.Category,
		item.Description,
		item.Weight,
		item.Image,
		item.Price,
		item.Discount,
		item.Organic,
	)
	if err != nil {
		return fmt.Errorf("failed to save item: %w", classifyError(err))
	}
	return nil
}

// DeleteItem removes an item from the catalog.
func (s *SQLiteStorage) DeleteItem(ctx context.Context, id int) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete item %d: %w", id, classifyError(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("item %d: %w", id, common.ErrNotFound)
	}
	return nil
}

// CountItems returns the number of catalog items.
func (s *SQLiteStorage) CountItems(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM items`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count items: %w", classifyError(err))
	}
	return count, nil
}

// Seed loads items into an empty catalog. It returns how many were inserted;
// a catalog that already has items is left alone.
func (s *SQLiteStorage) Seed(ctx context.Context, items []model.Item) (int, error) {
	count, err := s.CountItems(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		slog.Debug("catalog already seeded", "count", count)
		return 0, nil
	}
	if err := s.SaveItems(ctx, items); err != nil {
		return 0, err
	}
	return len(items), nil
}

// Source returns a catalog.Source that retries reads while the database is busy.
func (s *SQLiteStorage) Source(opts common.RetryOptions) catalog.Source {
	return catalog.SourceFunc(func(ctx context.Context) ([]model.Item, error) {
		var items []model.Item
		err := common.WithRetry(ctx, func() error {
			var loadErr error
			items, loadErr = s.Items(ctx)
			if loadErr != nil && !common.IsRetryable(loadErr) {
				return &common.RetryableError{Err: loadErr, Retryable: false}
			}
			return loadErr
		}, opts)
		if err != nil {
			return nil, err
		}
		if len(items) == 0 {
			return nil, common.NewUserError("the catalog is empty, run 'swipe catalog seed' first", common.ErrEmptyCatalog)
		}
		return items, nil
	})
}

// Package catalog provides the read-only product sources the deck is dealt from.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/Veraticus/swipe-grocery/internal/common"
	"github.com/Veraticus/swipe-grocery/internal/model"
)

// Source supplies the ordered item list. Each call returns a fresh copy that
// the caller may keep; sources never hand out their own backing slice.
type Source interface {
	Items(ctx context.Context) ([]model.Item, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context) ([]model.Item, error)

// Items implements Source.
func (f SourceFunc) Items(ctx context.Context) ([]model.Item, error) {
	return f(ctx)
}

// Static is an in-memory catalog.
type Static struct {
	items []model.Item
}

// NewStatic creates a catalog over a copy of items.
func NewStatic(items []model.Item) *Static {
	return &Static{items: append([]model.Item(nil), items...)}
}

// Default returns the built-in grocery catalog.
func Default() *Static {
	return NewStatic(DefaultItems)
}

// Items implements Source.
func (s *Static) Items(ctx context.Context) ([]model.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]model.Item(nil), s.items...), nil
}

// Len returns the number of items in the catalog.
func (s *Static) Len() int {
	return len(s.items)
}

// Validate checks every item and rejects duplicate IDs.
func Validate(items []model.Item) error {
	seen := make(map[int]struct{}, len(items))
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return fmt.Errorf("%w: index %d: %v", common.ErrInvalidItem, i, err)
		}
		if _, dup := seen[item.ID]; dup {
			return fmt.Errorf("%w: duplicate id %d at index %d", common.ErrInvalidItem, item.ID, i)
		}
		seen[item.ID] = struct{}{}
	}
	return nil
}

// LoadJSON decodes and validates a JSON array of items.
func LoadJSON(r io.Reader) ([]model.Item, error) {
	var items []model.Item
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&items); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	if err := Validate(items); err != nil {
		return nil, err
	}
	return items, nil
}

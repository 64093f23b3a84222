// Package items provides fluent builders for grocery items used in tests.
//
// Example usage:
//
//	items := items.NewBuilder(t).
//		WithItem("Bananas", 2.99).
//		WithDiscountedItem("Yogurt", 100, 20).
//		Build()
package items

import (
	"testing"

	"github.com/Veraticus/swipe-grocery/internal/catalog"
	"github.com/Veraticus/swipe-grocery/internal/model"
)

// Builder constructs a validated set of test items. IDs are assigned in
// insertion order starting at 1 unless set explicitly.
type Builder interface {
	// WithItem adds an undiscounted item.
	WithItem(name string, price float64) Builder

	// WithDiscountedItem adds an item with a discount percentage.
	WithDiscountedItem(name string, price, discount float64) Builder

	// WithItems adds fully specified items. A zero ID is assigned.
	WithItems(items ...model.Item) Builder

	// WithFixture adds items from a predefined fixture.
	WithFixture(fixture Fixture) Builder

	// Build validates and returns the items, failing the test on invalid data.
	Build() []model.Item
}

type builder struct {
	t      *testing.T
	items  []model.Item
	nextID int
}

// NewBuilder creates an empty item builder.
func NewBuilder(t *testing.T) Builder {
	t.Helper()
	return &builder{t: t, nextID: 1}
}

func (b *builder) WithItem(name string, price float64) Builder {
	return b.WithItems(model.Item{Name: name, Price: price})
}

func (b *builder) WithDiscountedItem(name string, price, discount float64) Builder {
	return b.WithItems(model.Item{Name: name, Price: price, Discount: discount})
}

func (b *builder) WithItems(items ...model.Item) Builder {
	for _, item := range items {
		if item.ID == 0 {
			item.ID = b.nextID
		}
		b.nextID = max(b.nextID, item.ID) + 1
		b.items = append(b.items, item)
	}
	return b
}

func (b *builder) WithFixture(fixture Fixture) Builder {
	return b.WithItems(fixture.Items()...)
}

func (b *builder) Build() []model.Item {
	b.t.Helper()
	if err := catalog.Validate(b.items); err != nil {
		b.t.Fatalf("invalid test items: %v", err)
	}
	out := make([]model.Item, len(b.items))
	copy(out, b.items)
	return out
}

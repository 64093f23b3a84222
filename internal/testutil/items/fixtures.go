package items

import (
	"github.com/Veraticus/swipe-grocery/internal/catalog"
	"github.com/Veraticus/swipe-grocery/internal/model"
)

// Fixture is a named, reusable set of items.
type Fixture int

// Available fixtures.
const (
	// FixtureThree is the minimal deck used by swipe scenarios.
	FixtureThree Fixture = iota
	// FixtureDiscounted holds only discounted items with round savings.
	FixtureDiscounted
	// FixtureBuiltin is the built-in catalog.
	FixtureBuiltin
)

// Items returns a fresh copy of the fixture's items. IDs are left zero
// except for the built-in catalog.
func (f Fixture) Items() []model.Item {
	switch f {
	case FixtureThree:
		return []model.Item{
			{Name: "Bananas", Category: "Produce", Price: 4, Discount: 20, Organic: true},
			{Name: "Bread", Category: "Bakery", Price: 5.49},
			{Name: "Yogurt", Category: "Dairy", Price: 100, Discount: 20},
		}
	case FixtureDiscounted:
		return []model.Item{
			{Name: "Coffee", Category: "Beverages", Price: 75, Discount: 25},
			{Name: "Olive Oil", Category: "Abarrotes", Price: 40, Discount: 50},
		}
	case FixtureBuiltin:
		out := make([]model.Item, len(catalog.DefaultItems))
		copy(out, catalog.DefaultItems)
		return out
	default:
		return nil
	}
}

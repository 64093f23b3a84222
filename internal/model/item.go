package model

import "fmt"

// Item is a product card in the deck. Items are immutable once loaded from a catalog.
type Item struct {
	Name        string  `json:"name"`
	Category    string  `json:"category,omitempty"`
	Description string  `json:"description,omitempty"`
	Weight      string  `json:"weight,omitempty"`
	Image       string  `json:"image,omitempty"`
	Price       float64 `json:"price"`
	Discount    float64 `json:"discount,omitempty"`
	ID          int     `json:"id"`
	Organic     bool    `json:"organic,omitempty"`
}

// HasDiscount reports whether the item is sold below its original price.
func (i Item) HasDiscount() bool {
	return i.Discount > 0
}

// PriceLabel renders the price with its unit, e.g. "$4.99/400g".
func (i Item) PriceLabel() string {
	if i.Weight == "" {
		return fmt.Sprintf("$%.2f", i.Price)
	}
	return fmt.Sprintf("$%.2f/%s", i.Price, i.Weight)
}

// Validate checks the invariants every catalog item must satisfy.
func (i Item) Validate() error {
	if i.ID <= 0 {
		return fmt.Errorf("item id must be positive, got %d", i.ID)
	}
	if i.Name == "" {
		return fmt.Errorf("item %d: name is required", i.ID)
	}
	if i.Price <= 0 {
		return fmt.Errorf("item %d: price must be greater than 0, got %.2f", i.ID, i.Price)
	}
	if i.Discount < 0 || i.Discount >= 100 {
		return fmt.Errorf("item %d: discount must be in [0, 100), got %.2f", i.ID, i.Discount)
	}
	return nil
}

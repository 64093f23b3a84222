package catalog

import "github.com/Veraticus/swipe-grocery/internal/model"

// DefaultItems is the built-in catalog dealt when no database is configured.
var DefaultItems = []model.Item{
	{
		ID:          1,
		Name:        "Azúcar LEDESMA Clásica",
		Category:    "Abarrotes",
		Price:       1699,
		Description: "Azúcar blanca clásica de primera calidad",
		Weight:      "kg",
		Discount:    30,
	},
	{
		ID:          2,
		Name:        "Sliced Bread",
		Category:    "Bakery",
		Price:       2.49,
		Description: "Freshly baked white bread, sliced and ready to enjoy.",
		Weight:      "500g",
	},
	{
		ID:          3,
		Name:        "Milk",
		Category:    "Dairy",
		Price:       3.29,
		Description: "Fresh whole milk. Excellent source of calcium and protein.",
		Weight:      "1L",
	},
	{
		ID:          4,
		Name:        "Strawberries",
		Category:    "Produce",
		Price:       4.99,
		Description: "Sweet and juicy strawberries. Great for desserts or as a healthy snack.",
		Weight:      "400g",
		Discount:    20,
	},
	{
		ID:          5,
		Name:        "Chicken Breast",
		Category:    "Meat",
		Price:       7.99,
		Description: "Boneless, skinless chicken breasts. High in protein and versatile for many recipes.",
		Weight:      "500g",
	},
	{
		ID:          6,
		Name:        "Pasta",
		Category:    "Dry Goods",
		Price:       1.49,
		Description: "Italian spaghetti pasta. Perfect base for countless delicious meals.",
		Weight:      "500g",
	},
	{
		ID:          7,
		Name:        "Bananas",
		Category:    "Produce",
		Price:       0.89,
		Description: "Fresh yellow bananas. Rich in potassium and perfect for a quick energy boost.",
		Weight:      "1kg",
	},
	{
		ID:          8,
		Name:        "Ground Coffee",
		Category:    "Beverages",
		Price:       5.99,
		Description: "Premium ground coffee. Rich and aromatic for your morning brew.",
		Weight:      "250g",
		Organic:     true,
	},
	{
		ID:          9,
		Name:        "Chocolate Bar",
		Category:    "Snacks",
		Price:       2.79,
		Description: "Smooth milk chocolate bar. A delicious treat for any chocolate lover.",
		Weight:      "100g",
		Discount:    10,
	},
	{
		ID:          10,
		Name:        "Tomatoes",
		Category:    "Produce",
		Price:       2.29,
		Description: "Fresh red tomatoes. Versatile ingredient for salads, sauces, and more.",
		Weight:      "500g",
		Organic:     true,
	},
}

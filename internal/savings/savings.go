// Package savings derives the cart savings and loyalty tier from the liked items.
//
// Everything here is a pure function of the liked list. Nothing is cached;
// callers recompute after every change.
package savings

import (
	"math"

	"github.com/Veraticus/swipe-grocery/internal/model"
)

// ItemSavings returns how much was saved on a single item.
// The original price is reconstructed from the discount: price / (1 - discount/100).
func ItemSavings(item model.Item) float64 {
	if !item.HasDiscount() || item.Discount >= 100 {
		return 0
	}
	original := item.Price / (1 - item.Discount/100)
	return original - item.Price
}

// Total sums ItemSavings over items. Items without a discount contribute 0.
func Total(items []model.Item) float64 {
	// Kahan summation keeps the fold order-independent to within float noise.
	var sum, c float64
	for _, item := range items {
		y := ItemSavings(item) - c
		t := sum + y
		c = (t - sum) - y
		sum = t
	}
	return sum
}

// CartTotal sums the current prices of items.
func CartTotal(items []model.Item) float64 {
	var sum float64
	for _, item := range items {
		sum += item.Price
	}
	return sum
}

// Tier is a reward bracket reached once savings hit Min.
type Tier struct {
	Label string
	Min   float64
}

// Tiers are the reward brackets in ascending order. The first must start at 0.
var Tiers = []Tier{
	{Label: "Bronze", Min: 0},
	{Label: "Silver", Min: 10},
	{Label: "Gold", Min: 25},
	{Label: "Platinum", Min: 50},
}

// Status is the tier reached for a savings amount.
type Status struct {
	// Next is the savings amount that unlocks the following tier, nil at the top tier.
	Next      *float64
	Tier      Tier
	Remaining float64
	// Progress is how far through the current tier the savings are, 0-100.
	Progress int
	Level    int
}

// IsTop reports whether the highest tier has been reached.
func (s Status) IsTop() bool {
	return s.Next == nil
}

// TierFor maps savings onto Tiers. Negative and NaN inputs count as zero.
func TierFor(amount float64) Status {
	if math.IsNaN(amount) || amount < 0 {
		amount = 0
	}

	level := 0
	for i, tier := range Tiers {
		if amount >= tier.Min {
			level = i
		}
	}

	current := Tiers[level]
	if level == len(Tiers)-1 {
		return Status{
			Tier:     current,
			Level:    level,
			Progress: 100,
		}
	}

	next := Tiers[level+1].Min
	span := next - current.Min
	progress := int(math.Floor((amount - current.Min) / span * 100))
	progress = max(0, min(progress, 100))

	return Status{
		Tier:      current,
		Level:     level,
		Progress:  progress,
		Next:      &next,
		Remaining: next - amount,
	}
}

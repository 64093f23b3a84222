package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItem_Validate(t *testing.T) {
	tests := []struct {
		name    string
		errMsg  string
		item    Item
		wantErr bool
	}{
		{
			name: "valid item without discount",
			item: Item{ID: 1, Name: "Milk", Price: 3.29},
		},
		{
			name: "valid item with discount",
			item: Item{ID: 2, Name: "Strawberries", Price: 4.99, Discount: 20},
		},
		{
			name:    "zero id",
			item:    Item{Name: "Milk", Price: 3.29},
			wantErr: true,
			errMsg:  "id must be positive",
		},
		{
			name:    "missing name",
			item:    Item{ID: 3, Price: 3.29},
			wantErr: true,
			errMsg:  "name is required",
		},
		{
			name:    "zero price",
			item:    Item{ID: 4, Name: "Free", Price: 0},
			wantErr: true,
			errMsg:  "price must be greater than 0",
		},
		{
			name:    "full discount",
			item:    Item{ID: 5, Name: "Gift", Price: 1, Discount: 100},
			wantErr: true,
			errMsg:  "discount must be in [0, 100)",
		},
		{
			name:    "negative discount",
			item:    Item{ID: 6, Name: "Markup", Price: 1, Discount: -5},
			wantErr: true,
			errMsg:  "discount must be in [0, 100)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.item.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestItem_PriceLabel(t *testing.T) {
	assert.Equal(t, "$3.29", Item{Price: 3.29}.PriceLabel())
	assert.Equal(t, "$4.99/400g", Item{Price: 4.99, Weight: "400g"}.PriceLabel())
}

func TestDirection(t *testing.T) {
	assert.True(t, DirectionLeft.IsDecision())
	assert.True(t, DirectionRight.IsDecision())
	assert.False(t, DirectionNone.IsDecision())
	assert.Equal(t, "like", DirectionRight.String())
	assert.Equal(t, "pass", DirectionLeft.String())
	assert.Equal(t, "none", DirectionNone.String())
}

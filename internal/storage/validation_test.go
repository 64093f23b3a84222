package storage

import (
	"context"
	"testing"

	"github.com/Veraticus/swipe-grocery/internal/common"
	"github.com/Veraticus/swipe-grocery/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestValidateContext(t *testing.T) {
	tests := []struct {
		ctx     context.Context
		name    string
		wantErr bool
	}{
		{
			name:    "valid context",
			ctx:     context.Background(),
			wantErr: false,
		},
		{
			name:    "nil context",
			ctx:     nil,
			wantErr: true,
		},
		{
			name: "canceled context still valid",
			ctx: func() context.Context {
				ctx, cancel := context.WithCancel(context.Background())
				cancel()
				return ctx
			}(),
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateContext(tt.ctx)
			assert.Equal(t, tt.wantErr, err != nil)
		})
	}
}

func TestValidateString(t *testing.T) {
	tests := []struct {
		name    string
		str     string
		wantErr bool
	}{
		{name: "valid string", str: "test"},
		{name: "empty string", str: "", wantErr: true},
		{name: "whitespace only", str: " \t\n", wantErr: true},
		{name: "leading whitespace is fine", str: "  test"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateString(tt.str, "param")
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrEmptyString)
				assert.Contains(t, err.Error(), "param")
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateItem(t *testing.T) {
	tests := []struct {
		item    *model.Item
		wantErr error
		name    string
	}{
		{
			name: "valid item",
			item: &model.Item{ID: 1, Name: "Bananas", Price: 1.99},
		},
		{
			name:    "nil item",
			item:    nil,
			wantErr: ErrNilParameter,
		},
		{
			name:    "zero price",
			item:    &model.Item{ID: 1, Name: "Bananas"},
			wantErr: common.ErrInvalidItem,
		},
		{
			name:    "discount of 100",
			item:    &model.Item{ID: 1, Name: "Bananas", Price: 1.99, Discount: 100},
			wantErr: common.ErrInvalidItem,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateItem(tt.item)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateItems(t *testing.T) {
	assert.ErrorIs(t, validateItems(nil), ErrNilParameter)
	assert.ErrorIs(t, validateItems([]model.Item{}), ErrEmptySlice)

	items := createTestItems(3)
	assert.NoError(t, validateItems(items))

	items[2].Name = ""
	err := validateItems(items)
	assert.ErrorIs(t, err, common.ErrInvalidItem)
	assert.Contains(t, err.Error(), "index 2")
}

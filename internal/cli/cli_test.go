package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Veraticus/swipe-grocery/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderItemTable(t *testing.T) {
	items := []model.Item{
		{ID: 1, Name: "Greek Yogurt", Category: "Dairy", Weight: "1kg", Price: 100, Discount: 20},
		{ID: 12, Name: "Bananas", Category: "Produce", Price: 1.5, Organic: true},
	}

	out := RenderItemTable(items)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	// Header, its bottom border and one line per item.
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "Name")
	assert.Contains(t, lines[0], "Saves")
	assert.Contains(t, lines[2], "Greek Yogurt")
	assert.Contains(t, lines[2], "$100.00/1kg")
	assert.Contains(t, lines[2], "20%")
	assert.Contains(t, lines[2], "$25.00")
	assert.Contains(t, lines[3], "Bananas (organic)")
	assert.NotContains(t, lines[3], "%")
}

func TestFormatters(t *testing.T) {
	assert.Contains(t, FormatSuccess("done"), "done")
	assert.Contains(t, FormatSuccess("done"), SuccessIcon)
	assert.Contains(t, FormatError("bad"), ErrorIcon)
	assert.Contains(t, FormatWarning("careful"), "careful")
	assert.Contains(t, FormatTitle("Catalog"), CartIcon)

	box := RenderBox("Seeded", "10 items")
	assert.Contains(t, box, "Seeded")
	assert.Contains(t, box, "10 items")
}

func TestNewProgressBar(t *testing.T) {
	var buf bytes.Buffer
	bar := NewProgressBar(&buf, 3, "Importing items...")

	for i := 0; i < 3; i++ {
		require.NoError(t, bar.Add(1))
	}
	assert.True(t, bar.IsFinished())
	assert.Contains(t, buf.String(), "Importing items...")
}

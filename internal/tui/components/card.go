package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/Veraticus/swipe-grocery/internal/gesture"
	"github.com/Veraticus/swipe-grocery/internal/model"
	"github.com/Veraticus/swipe-grocery/internal/savings"
	"github.com/Veraticus/swipe-grocery/internal/tui/themes"
	"github.com/charmbracelet/lipgloss"
)

// Card dimensions in cells, borders included.
const (
	CardWidth  = 38
	CardHeight = 12
)

// CardModel renders one product card in its current gesture state.
type CardModel struct {
	theme themes.Theme
	item  model.Item
	view  gesture.View
	width int
}

// NewCardModel creates a card for item.
func NewCardModel(item model.Item, theme themes.Theme) CardModel {
	return CardModel{
		item:  item,
		theme: theme,
		width: CardWidth,
	}
}

// WithView returns the card with the given gesture snapshot.
func (m CardModel) WithView(v gesture.View) CardModel {
	m.view = v
	return m
}

// Resize sets the outer card width.
func (m *CardModel) Resize(width int) {
	m.width = max(width, 20)
}

// Width returns the outer card width.
func (m CardModel) Width() int {
	return m.width
}

// View renders the card.
func (m CardModel) View() string {
	inner := m.width - 4
	item := m.item

	icon := themes.GetCategoryIcon(item.Category)
	top := fmt.Sprintf("%s %s", icon, item.Category)
	if item.Organic {
		top = joinEnds(top, "ORGANIC", inner)
	}

	name := m.theme.Bold.Width(inner).Render(item.Name)

	desc := lipgloss.NewStyle().
		Foreground(m.theme.Muted).
		Width(inner).
		MaxHeight(3).
		Render(item.Description)

	price := m.theme.Bold.Render(item.PriceLabel())
	if item.HasDiscount() {
		badge := m.theme.Badge.Render(fmt.Sprintf("-%.0f%%", item.Discount))
		save := lipgloss.NewStyle().
			Foreground(m.theme.Discount).
			Render(fmt.Sprintf("save $%.2f", savings.ItemSavings(item)))
		price = joinEnds(price, badge+" "+save, inner)
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Subtitle.Render(top),
		name,
		desc,
		"",
		price,
		m.renderStamp(inner),
	)

	return m.theme.Card.
		BorderForeground(m.borderColor()).
		Width(m.width - 2).
		Height(CardHeight - 2).
		MaxHeight(CardHeight).
		Render(body)
}

func (m CardModel) borderColor() lipgloss.Color {
	dir := m.view.Committed
	if !dir.IsDecision() {
		dir = m.view.Hint
	}
	switch dir {
	case model.DirectionRight:
		return m.theme.Like
	case model.DirectionLeft:
		return m.theme.Pass
	default:
		return m.theme.Border
	}
}

// renderStamp shows the pending or final decision and the card tilt.
func (m CardModel) renderStamp(width int) string {
	var stamp string
	switch {
	case m.view.Committed == model.DirectionRight:
		stamp = lipgloss.NewStyle().Foreground(m.theme.Like).Bold(true).Render("♥ LIKED")
	case m.view.Committed == model.DirectionLeft:
		stamp = lipgloss.NewStyle().Foreground(m.theme.Pass).Bold(true).Render("✗ PASSED")
	case m.view.Hint == model.DirectionRight:
		stamp = lipgloss.NewStyle().Foreground(m.theme.Like).Render("♥ like")
	case m.view.Hint == model.DirectionLeft:
		stamp = lipgloss.NewStyle().Foreground(m.theme.Pass).Render("✗ pass")
	}

	tilt := ""
	if math.Abs(m.view.Rotation) >= 0.5 {
		glyph := "↻"
		if m.view.Rotation < 0 {
			glyph = "↺"
		}
		tilt = m.theme.Subtitle.Render(fmt.Sprintf("%s %.0f°", glyph, math.Abs(m.view.Rotation)))
	}
	return joinEnds(stamp, tilt, width)
}

// RenderStack renders the edges of the cards waiting behind the top card.
func RenderStack(theme themes.Theme, behind, width int) string {
	lines := make([]string, 0, behind)
	for i := 1; i <= behind; i++ {
		w := width - 4*i
		if w < 2 {
			break
		}
		line := strings.Repeat(" ", 2*i) + "╰" + strings.Repeat("─", w-2) + "╯"
		lines = append(lines, theme.CardBehind.Render(line))
	}
	return strings.Join(lines, "\n")
}

// joinEnds places left and right at either end of a line of the given width.
func joinEnds(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

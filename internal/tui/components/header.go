package components

import (
	"fmt"

	"github.com/Veraticus/swipe-grocery/internal/deck"
	"github.com/Veraticus/swipe-grocery/internal/savings"
	"github.com/Veraticus/swipe-grocery/internal/tui/themes"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// HeaderModel shows the cart count, deck position and loyalty tier.
type HeaderModel struct {
	theme       themes.Theme
	progressBar progress.Model
	tier        savings.Status
	saved       float64
	liked       int
	position    int
	total       int
	width       int
}

// NewHeaderModel creates a header.
func NewHeaderModel(theme themes.Theme) HeaderModel {
	prog := progress.New(progress.WithDefaultGradient())
	prog.ShowPercentage = false
	prog.Width = 40

	return HeaderModel{
		theme:       theme,
		progressBar: prog,
		tier:        savings.TierFor(0),
		width:       80,
	}
}

// SetDeck refreshes the header from a deck snapshot.
func (m *HeaderModel) SetDeck(snap deck.Snapshot) {
	m.liked = len(snap.Liked)
	m.saved = snap.Savings()
	m.tier = savings.TierFor(m.saved)
	m.total = snap.Len()
	m.position = min(snap.Cursor+1, snap.Len())
}

// Resize sets the header width.
func (m *HeaderModel) Resize(width int) {
	m.width = width
	m.progressBar.Width = min(max(width-4, 10), 40)
}

// Tier returns the displayed tier status.
func (m HeaderModel) Tier() savings.Status {
	return m.tier
}

// View renders the header.
func (m HeaderModel) View() string {
	title := m.theme.Title.Render("🛒 Swipe Grocery")
	counts := m.theme.Subtitle.Render(fmt.Sprintf("Cart %d  ·  Card %d/%d", m.liked, m.position, m.total))
	top := joinEnds(title, counts, max(m.width-2, 0))

	tierLine := fmt.Sprintf("%s member  ·  $%.2f saved", m.tier.Tier.Label, m.saved)
	if next, ok := m.nextTier(); ok {
		tierLine += fmt.Sprintf("  ·  $%.2f to %s", m.tier.Remaining, next)
	}

	bar := m.progressBar.ViewAs(float64(m.tier.Progress) / 100)

	return lipgloss.JoinVertical(lipgloss.Left,
		top,
		m.theme.StatusInfo.Render(tierLine),
		bar,
		"",
	)
}

func (m HeaderModel) nextTier() (string, bool) {
	if m.tier.IsTop() {
		return "", false
	}
	return savings.Tiers[m.tier.Level+1].Label, true
}

package tui

import (
	"fmt"

	"github.com/Veraticus/swipe-grocery/internal/gesture"
	"github.com/Veraticus/swipe-grocery/internal/tui/components"
	"github.com/charmbracelet/lipgloss"
)

// renderLoading renders the loading screen.
func (m Model) renderLoading() string {
	content := lipgloss.JoinVertical(
		lipgloss.Center,
		m.theme.Title.Render("🛒 Swipe Grocery"),
		"",
		lipgloss.NewStyle().Foreground(m.theme.Muted).Render("Stocking the shelves..."),
	)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// renderLoadError is shown when the catalog could not be loaded.
func (m Model) renderLoadError() string {
	content := lipgloss.JoinVertical(
		lipgloss.Center,
		m.theme.StatusWarning.Render("Could not load the catalog"),
		"",
		m.theme.Normal.Render(fmt.Sprint(m.lastError)),
		"",
		m.theme.StatusMuted.Render("Press q to quit"),
	)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// renderMain renders the header, the card stage, the cart and the footer.
func (m Model) renderMain() string {
	l := m.layout()

	body := m.renderStage(l)
	if !l.compact {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, m.liked.View())
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.header.View(),
		body,
		m.renderStatusBar(),
	)
}

// renderStage draws the top card at its drag offset over the rest of the stack.
func (m Model) renderStage(l layout) string {
	stage := lipgloss.NewStyle().Width(l.stage.w).Height(l.stage.h).MaxHeight(l.stage.h)

	if m.card == nil {
		return stage.Render(m.renderEmptyDeck(l))
	}

	v := m.card.View()
	card := components.NewCardModel(m.card.Item(), m.theme).WithView(v)
	card.Resize(l.card.w)

	top := lipgloss.NewStyle().
		MarginLeft(l.card.x + m.cardShift(v, l)).
		Render(card.View())

	// Once committed the cursor has moved on, so every visible card is behind it.
	visible := m.deck.Visible(m.config.VisibleCards)
	behind := len(visible) - 1
	if v.State == gesture.StateCommitting {
		behind = min(len(visible), m.config.VisibleCards-1)
	}

	parts := []string{top}
	if behind > 0 {
		indent := lipgloss.NewStyle().MarginLeft(l.card.x)
		parts = append(parts, indent.Render(components.RenderStack(m.theme, behind, l.card.w)))

		next := visible[0]
		if v.State != gesture.StateCommitting && len(visible) > 1 {
			next = visible[1]
		}
		parts = append(parts, indent.Render(m.theme.StatusMuted.Render("Up next: "+next.Name)))
	}

	return stage.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// renderEmptyDeck is the overlay shown while there is no card to swipe.
func (m Model) renderEmptyDeck(l layout) string {
	var content string
	switch {
	case m.snapshot.Exhausted:
		content = m.theme.Overlay.Render(lipgloss.JoinVertical(
			lipgloss.Center,
			m.theme.Title.Render("🎉 You've seen every product!"),
			"",
			m.theme.Subtitle.Render("Shuffling a fresh deck..."),
		))
	case m.snapshot.Len() == 0:
		content = m.theme.Overlay.Render(m.theme.Subtitle.Render("The catalog is empty"))
	default:
		content = m.theme.StatusMuted.Render("Dealing...")
	}
	return lipgloss.Place(l.stage.w, min(l.stage.h, components.CardHeight+4), lipgloss.Center, lipgloss.Center, content)
}

// renderHelp renders the full key reference.
func (m Model) renderHelp() string {
	h := m.help
	h.ShowAll = true

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.Title.Render("Keyboard & Mouse"),
		"",
		h.View(m.keymap),
		"",
		m.theme.Normal.Render("Drag a card past the threshold with the mouse to decide."),
		m.theme.Normal.Render("Right adds it to your cart, left passes."),
		"",
		m.theme.StatusMuted.Render("Press ? or Esc to return"),
	)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.theme.Overlay.Render(content))
}

// renderStatusBar renders the notice line and the short help.
func (m Model) renderStatusBar() string {
	status := ""
	if m.status != "" {
		status = m.statusStyle.Render(m.status)
	}
	return lipgloss.JoinVertical(lipgloss.Left, "", status, m.help.View(m.keymap))
}

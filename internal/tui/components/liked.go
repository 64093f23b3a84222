package components

import (
	"fmt"
	"strings"

	"github.com/Veraticus/swipe-grocery/internal/model"
	"github.com/Veraticus/swipe-grocery/internal/savings"
	"github.com/Veraticus/swipe-grocery/internal/tui/themes"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// LikedListModel is the cart panel listing liked items.
type LikedListModel struct {
	theme  themes.Theme
	items  []model.Item
	cursor int
	width  int
	height int
}

// NewLikedListModel creates an empty cart panel.
func NewLikedListModel(theme themes.Theme) LikedListModel {
	return LikedListModel{
		theme:  theme,
		width:  32,
		height: 16,
	}
}

// SetItems replaces the listed items, keeping the cursor in range.
func (m *LikedListModel) SetItems(items []model.Item) {
	m.items = items
	if m.cursor >= len(items) {
		m.cursor = max(len(items)-1, 0)
	}
}

// Resize sets the panel size.
func (m *LikedListModel) Resize(width, height int) {
	m.width = width
	m.height = height
}

// Selected returns the item under the cursor.
func (m LikedListModel) Selected() (model.Item, bool) {
	if len(m.items) == 0 {
		return model.Item{}, false
	}
	return m.items[m.cursor], true
}

// Cursor returns the selected row.
func (m LikedListModel) Cursor() int {
	return m.cursor
}

// Update handles cart navigation and removal.
func (m LikedListModel) Update(msg tea.Msg) (LikedListModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "j", "down":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "x", "delete", "backspace":
		if item, ok := m.Selected(); ok {
			return m, func() tea.Msg {
				return UndoLikeRequestMsg{Item: item}
			}
		}
	}
	return m, nil
}

// View renders the panel.
func (m LikedListModel) View() string {
	inner := max(m.width-4, 10)
	var b strings.Builder

	b.WriteString(m.theme.Title.Render(fmt.Sprintf("🛒 Cart (%d)", len(m.items))))
	b.WriteString("\n\n")

	if len(m.items) == 0 {
		b.WriteString(m.theme.StatusMuted.Render("Swipe right to add items"))
		return m.theme.Panel.Width(m.width - 2).Render(b.String())
	}

	// Leave room for the title and the totals.
	rows := max(m.height-7, 1)
	start := 0
	if m.cursor >= rows {
		start = m.cursor - rows + 1
	}
	end := min(start+rows, len(m.items))

	for i := start; i < end; i++ {
		b.WriteString(m.renderRow(m.items[i], i == m.cursor, inner))
		b.WriteString("\n")
	}
	if end < len(m.items) {
		b.WriteString(m.theme.StatusMuted.Render(fmt.Sprintf("… %d more", len(m.items)-end)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(joinEnds("Total", fmt.Sprintf("$%.2f", savings.CartTotal(m.items)), inner))
	b.WriteString("\n")
	saved := lipgloss.NewStyle().Foreground(m.theme.Discount).
		Render(fmt.Sprintf("$%.2f", savings.Total(m.items)))
	b.WriteString(joinEnds("Saved", saved, inner))

	return m.theme.Panel.Width(m.width - 2).Render(b.String())
}

func (m LikedListModel) renderRow(item model.Item, selected bool, width int) string {
	price := fmt.Sprintf("$%.2f", item.Price)
	nameWidth := max(width-lipgloss.Width(price)-3, 4)
	name := lipgloss.NewStyle().MaxWidth(nameWidth).Render(item.Name)

	prefix := "  "
	if selected {
		prefix = "▸ "
	}
	row := joinEnds(prefix+name, price, width)
	if selected {
		return m.theme.Selected.Render(row)
	}
	return m.theme.Normal.Render(row)
}

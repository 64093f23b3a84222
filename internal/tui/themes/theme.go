// Package themes holds the lipgloss palettes for the swipe deck.
package themes

import "github.com/charmbracelet/lipgloss"

// Theme defines the visual style for the TUI.
type Theme struct {
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Normal        lipgloss.Style
	Bold          lipgloss.Style
	Selected      lipgloss.Style
	Card          lipgloss.Style
	CardBehind    lipgloss.Style
	Panel         lipgloss.Style
	Overlay       lipgloss.Style
	Badge         lipgloss.Style
	StatusInfo    lipgloss.Style
	StatusSuccess lipgloss.Style
	StatusWarning lipgloss.Style
	StatusMuted   lipgloss.Style
	Primary       lipgloss.Color
	Secondary     lipgloss.Color
	Like          lipgloss.Color
	Pass          lipgloss.Color
	Discount      lipgloss.Color
	Border        lipgloss.Color
	Muted         lipgloss.Color
	Foreground    lipgloss.Color
}

func build(primary, secondary, like, pass, discount, border, muted, fg, selectedFg string) Theme {
	return Theme{
		Primary:    lipgloss.Color(primary),
		Secondary:  lipgloss.Color(secondary),
		Like:       lipgloss.Color(like),
		Pass:       lipgloss.Color(pass),
		Discount:   lipgloss.Color(discount),
		Border:     lipgloss.Color(border),
		Muted:      lipgloss.Color(muted),
		Foreground: lipgloss.Color(fg),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(primary)),
		Subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(muted)),
		Normal: lipgloss.NewStyle().
			Foreground(lipgloss.Color(fg)),
		Bold: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(fg)),
		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(primary)).
			Foreground(lipgloss.Color(selectedFg)).
			Bold(true),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(border)).
			Padding(0, 1),
		CardBehind: lipgloss.NewStyle().
			Foreground(lipgloss.Color(border)),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(border)).
			Padding(0, 1),
		Overlay: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color(secondary)).
			Padding(1, 3).
			Align(lipgloss.Center),
		Badge: lipgloss.NewStyle().
			Background(lipgloss.Color(discount)).
			Foreground(lipgloss.Color(selectedFg)).
			Bold(true).
			Padding(0, 1),

		StatusInfo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(secondary)).
			Bold(true),
		StatusSuccess: lipgloss.NewStyle().
			Foreground(lipgloss.Color(like)).
			Bold(true),
		StatusWarning: lipgloss.NewStyle().
			Foreground(lipgloss.Color(discount)).
			Bold(true),
		StatusMuted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(muted)).
			Italic(true),
	}
}

// Default is the default theme.
var Default = build("#16a34a", "#3b82f6", "#10b981", "#ef4444", "#f59e0b", "#404040", "#737373", "#fafafa", "#0a0a0a")

// CatppuccinMocha is the Catppuccin Mocha theme.
var CatppuccinMocha = build("#a6e3a1", "#89b4fa", "#a6e3a1", "#f38ba8", "#f9e2af", "#45475a", "#6c7086", "#cdd6f4", "#1e1e2e")

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	switch name {
	case "catppuccin-mocha":
		return CatppuccinMocha
	default:
		return Default
	}
}

// CategoryIcons maps grocery categories to emoji icons.
var CategoryIcons = map[string]string{
	"Abarrotes": "🫙",
	"Bakery":    "🍞",
	"Beverages": "🧃",
	"Dairy":     "🥛",
	"Dry Goods": "🌾",
	"Frozen":    "🧊",
	"Household": "🧽",
	"Meat":      "🥩",
	"Produce":   "🥬",
	"Seafood":   "🐟",
	"Snacks":    "🍪",
}

// GetCategoryIcon returns an icon for a category.
func GetCategoryIcon(category string) string {
	if icon, ok := CategoryIcons[category]; ok {
		return icon
	}
	return "🛒"
}

package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Veraticus/swipe-grocery/internal/model"
	"github.com/Veraticus/swipe-grocery/internal/savings"
	"github.com/charmbracelet/lipgloss"
)

var itemTableHeaders = []string{"ID", "Name", "Category", "Price", "Discount", "Saves"}

// RenderItemTable renders catalog items as an aligned table.
func RenderItemTable(items []model.Item) string {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		discount, saves := "", ""
		if item.HasDiscount() {
			discount = fmt.Sprintf("%.0f%%", item.Discount)
			saves = fmt.Sprintf("$%.2f", savings.ItemSavings(item))
		}
		name := item.Name
		if item.Organic {
			name += " (organic)"
		}
		rows = append(rows, []string{
			strconv.Itoa(item.ID),
			name,
			item.Category,
			item.PriceLabel(),
			discount,
			saves,
		})
	}

	widths := make([]int, len(itemTableHeaders))
	for i, h := range itemTableHeaders {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	var b strings.Builder
	header := make([]string, len(itemTableHeaders))
	for i, h := range itemTableHeaders {
		header[i] = TableCellStyle.Width(widths[i] + 2).Render(h)
	}
	b.WriteString(TableHeaderStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top, header...)))
	b.WriteString("\n")

	for _, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			style := TableCellStyle.Width(widths[i] + 2)
			if i == len(row)-1 {
				style = style.Foreground(DiscountColor)
			}
			cells[i] = style.Render(cell)
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		b.WriteString("\n")
	}

	return b.String()
}

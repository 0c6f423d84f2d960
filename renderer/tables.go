package renderer

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mstojako/pyft"
)

// Column widths match the historical fixed layout.
const (
	accountNameWidth = 16
	balanceWidth     = 24
	categoryWidth    = 15
	colorWidth       = 16
	entryColWidth    = 16
	entryAmountWidth = 15
)

// Accounts renders the account table: bold header, colorized balances.
func Accounts(accounts []pyft.Account) string {
	var b strings.Builder
	b.WriteString(cell(boldStyle, "Account Name", accountNameWidth))
	b.WriteString(cell(boldStyle, "Balance", balanceWidth))
	b.WriteString("\n")
	for _, a := range accounts {
		b.WriteString(cell(lipgloss.NewStyle(), a.Name, accountNameWidth))
		b.WriteString(moneyCell(a.Balance, balanceWidth))
		b.WriteString("\n")
	}
	return b.String()
}

// Categories renders the category table, tinting each name with its own color.
func Categories(categories []pyft.Category) string {
	var b strings.Builder
	b.WriteString(cell(boldStyle, "Category Name", categoryWidth))
	b.WriteString(cell(boldStyle, "Color", colorWidth))
	b.WriteString("\n")
	for _, c := range categories {
		tint := lipgloss.NewStyle().Foreground(categoryColor(c.Color))
		b.WriteString(cell(tint, c.Name, categoryWidth))
		b.WriteString(cell(lipgloss.NewStyle(), c.Color, colorWidth))
		b.WriteString("\n")
	}
	return b.String()
}

// Entries renders the entry table. Entry and category names are tinted with
// the category's color; colors is the name→color map from the store.
func Entries(entries []pyft.Entry, colors map[string]string) string {
	var b strings.Builder
	for _, h := range []string{"Name", "Account", "Amount", "Date", "Category"} {
		w := entryColWidth
		if h == "Amount" {
			w = entryAmountWidth
		}
		b.WriteString(cell(boldStyle, h, w))
	}
	b.WriteString("\n")
	plain := lipgloss.NewStyle()
	for _, e := range entries {
		tint := lipgloss.NewStyle().Foreground(categoryColor(colors[e.Category]))
		b.WriteString(cell(tint, e.Name, entryColWidth))
		b.WriteString(cell(plain, e.Account, entryColWidth))
		b.WriteString(moneyCell(e.Amount, entryAmountWidth))
		b.WriteString(cell(plain, e.Date.String(), entryColWidth))
		b.WriteString(cell(tint, e.Category, entryColWidth))
		b.WriteString("\n")
	}
	return b.String()
}

func moneyCell(a pyft.Amount, width int) string {
	style := negativeStyle
	if a.IsPositive() {
		style = positiveStyle
	}
	return cell(style, a.String(), width)
}

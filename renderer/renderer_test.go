package renderer

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/mstojako/pyft"
)

func TestAccountsTable(t *testing.T) {
	out := Accounts([]pyft.Account{
		{Name: "checking", Balance: pyft.A(1234.5)},
		{Name: "savings", Balance: pyft.A(-0.5)},
	})

	for _, want := range []string{"Account Name", "Balance", "checking", "$1,234.50", "savings", "-$0.50"} {
		if !strings.Contains(out, want) {
			t.Errorf("Accounts output missing %q:\n%s", want, out)
		}
	}
	if got := strings.Count(out, "\n"); got != 3 {
		t.Errorf("Accounts output has %d lines, want header + 2 rows", got)
	}
}

func TestCategoriesTable(t *testing.T) {
	out := Categories([]pyft.Category{{Name: "food", Color: "00FF00"}})
	for _, want := range []string{"Category Name", "Color", "food", "00FF00"} {
		if !strings.Contains(out, want) {
			t.Errorf("Categories output missing %q:\n%s", want, out)
		}
	}
}

func TestEntriesTable(t *testing.T) {
	entries := []pyft.Entry{{
		Name:     "rent",
		Amount:   pyft.A(-1200),
		Category: "housing",
		Account:  "checking",
		Date:     pyft.NewDate(2025, 1, 15),
	}}
	out := Entries(entries, map[string]string{"housing": "FF0000"})

	for _, want := range []string{"Name", "Account", "Amount", "Date", "Category",
		"rent", "checking", "-$1,200.00", "2025-01-15", "housing"} {
		if !strings.Contains(out, want) {
			t.Errorf("Entries output missing %q:\n%s", want, out)
		}
	}
}

func TestCategoryColorFallsBackToBlack(t *testing.T) {
	tests := []struct {
		color    string
		expected lipgloss.Color
	}{
		{"00FF00", lipgloss.Color("#00FF00")},
		{"ZZZZZZ", lipgloss.Color("#000000")}, // not hex
		{"FFF", lipgloss.Color("#000000")},    // wrong length
		{"", lipgloss.Color("#000000")},
	}
	for _, tt := range tests {
		if got := categoryColor(tt.color); got != tt.expected {
			t.Errorf("categoryColor(%q) = %v, want %v", tt.color, got, tt.expected)
		}
	}
}

func TestSummaryMarkdown(t *testing.T) {
	s := &pyft.Summary{
		Account: "checking",
		Credits: pyft.GroupStats{Count: 2, Mean: pyft.A(1500), Median: pyft.A(1500), Std: 500, Total: pyft.A(3000)},
		All:     pyft.GroupStats{Count: 2, Mean: pyft.A(1500), Median: pyft.A(1500), Std: 500, Total: pyft.A(3000)},
		// Debits left empty on purpose.
	}
	out := SummaryMarkdown(s)

	for _, want := range []string{
		"Financial summary of checking",
		"Mean credit", "$1,500.00",
		"500.00", // std dev
		"Grand total", "$3,000.00",
		"N/A", // empty debit group
	} {
		if !strings.Contains(out, want) {
			t.Errorf("SummaryMarkdown missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "$0.00") {
		t.Errorf("empty group must render N/A, never a computed zero:\n%s", out)
	}
}

func TestSummaryMarkdownAllEmpty(t *testing.T) {
	out := SummaryMarkdown(&pyft.Summary{Account: "empty"})
	if got := strings.Count(out, "N/A"); got < 9 {
		t.Errorf("expected every aggregate to render N/A, found %d occurrences:\n%s", got, out)
	}
}

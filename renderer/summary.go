package renderer

import (
	"bytes"
	"fmt"

	"github.com/mstojako/pyft"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the statistical summary of an account as a
// markdown document, to be printed through the terminal markdown renderer.
// Aggregates of an empty group render as "N/A"; nothing is ever computed on
// an empty set.
func SummaryMarkdown(s *pyft.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Financial summary of " + s.Account)
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Statistic", "Value", "Std. dev."},
		Rows: [][]string{
			{"Mean credit", groupValue(s.Credits, s.Credits.Mean), groupStd(s.Credits)},
			{"Median credit", groupValue(s.Credits, s.Credits.Median), ""},
			{"Mean debit", groupValue(s.Debits, s.Debits.Mean), groupStd(s.Debits)},
			{"Median debit", groupValue(s.Debits, s.Debits.Median), ""},
			{"Mean entry amount", groupValue(s.All, s.All.Mean), groupStd(s.All)},
			{"Median entry amount", groupValue(s.All, s.All.Median), ""},
			{"Total credit", groupValue(s.Credits, s.Credits.Total), ""},
			{"Total debit", groupValue(s.Debits, s.Debits.Total), ""},
			{md.Bold("Grand total"), md.Bold(groupValue(s.All, s.GrandTotal())), ""},
		},
	})
	return doc.String()
}

func groupValue(g pyft.GroupStats, a pyft.Amount) string {
	if g.Empty() {
		return "N/A"
	}
	return a.String()
}

func groupStd(g pyft.GroupStats) string {
	if g.Empty() {
		return "N/A"
	}
	return fmt.Sprintf("%.2f", g.Std)
}

// Package renderer turns ledger records and reports into colorized terminal
// output. It is purely presentational: nothing in here touches the store.
package renderer

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var out io.Writer = os.Stdout

// SetOutput redirects where the severity lines are written. The default is
// standard output; tests use it to capture what the user would see.
func SetOutput(w io.Writer) { out = w }

var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	boldStyle    = lipgloss.NewStyle().Bold(true)

	positiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	negativeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// Error prints a severity-tagged error line. It does not abort anything.
func Error(format string, args ...any) {
	fmt.Fprintln(out, errorStyle.Render("❌ ERROR: "+fmt.Sprintf(format, args...)))
}

// Warning prints a severity-tagged warning line.
func Warning(format string, args ...any) {
	fmt.Fprintln(out, warningStyle.Render("⚠️  WARNING: "+fmt.Sprintf(format, args...)))
}

// Success prints a confirmation line.
func Success(format string, args ...any) {
	fmt.Fprintln(out, successStyle.Render("✅ "+fmt.Sprintf(format, args...)))
}

// categoryColor maps a stored 6-hex-digit color to a lipgloss color.
// Anything that is not valid hex of the right length renders as black.
func categoryColor(color string) lipgloss.Color {
	if len(color) != 6 {
		return lipgloss.Color("#000000")
	}
	if _, err := hex.DecodeString(color); err != nil {
		return lipgloss.Color("#000000")
	}
	return lipgloss.Color("#" + color)
}

// cell pads text to a fixed column width before styling it, so that ANSI
// escape codes do not break the alignment.
func cell(style lipgloss.Style, text string, width int) string {
	return style.Render(fmt.Sprintf("%-*s", width, text))
}

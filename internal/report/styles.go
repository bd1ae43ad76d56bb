package report

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette - keeping it minimal and accessible.
var (
	colorPrimary = lipgloss.Color("39")  // Blue
	colorWarning = lipgloss.Color("214") // Orange
	colorSuccess = lipgloss.Color("34")  // Green
	colorMuted   = lipgloss.Color("240") // Dark gray
)

// Styles for the text renderer.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	packageStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWarning)

	hookStyle = lipgloss.NewStyle().
			Foreground(colorWarning)

	pathStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	cleanStyle = lipgloss.NewStyle().
			Foreground(colorSuccess)
)

// UseColor reports whether the text renderer should emit styled output.
//
// Returns false if:
//   - the report is not going to stdout, or stdout is not a terminal
//   - NO_COLOR is set (https://no-color.org)
//   - CI is set (common CI/CD convention)
func UseColor(toStdout bool) bool {
	if !toStdout {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("CI") != "" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

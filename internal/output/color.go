// Package output provides styled terminal rendering helpers for codecommenter.
package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Color constants for consistent styling across the CLI.
var (
	// ColorPrimary is used for headers and emphasis.
	ColorPrimary = lipgloss.Color("#64b5f6")

	// ColorSuccess is used for clean results.
	ColorSuccess = lipgloss.Color("#66bb6a")

	// ColorError is used for errors.
	ColorError = lipgloss.Color("#ef5350")

	// ColorWarning is used for suggestion numbers.
	ColorWarning = lipgloss.Color("#fff59d")

	// ColorMuted is used for secondary text and borders.
	ColorMuted = lipgloss.Color("#888888")
)

// Styles provides reusable lipgloss styles.
var (
	// StyleHeader is used for section headers.
	StyleHeader lipgloss.Style

	// StyleSuccess is used for positive values.
	StyleSuccess lipgloss.Style

	// StyleError is used for error messages.
	StyleError lipgloss.Style

	// StyleWarning is used for cautionary values.
	StyleWarning lipgloss.Style

	// StyleMuted is used for de-emphasized text.
	StyleMuted lipgloss.Style

	// StyleLabel is used for stat labels.
	StyleLabel lipgloss.Style
)

func init() {
	applyStyles(false)
}

// noColor tracks whether color output is disabled.
var noColor bool

func applyStyles(plain bool) {
	if plain {
		p := lipgloss.NewStyle()
		StyleHeader = p
		StyleSuccess = p
		StyleError = p
		StyleWarning = p
		StyleMuted = p
		StyleLabel = p.Width(16)
		return
	}
	StyleHeader = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorSuccess)
	StyleError = lipgloss.NewStyle().Foreground(ColorError)
	StyleWarning = lipgloss.NewStyle().Foreground(ColorWarning).Bold(true)
	StyleMuted = lipgloss.NewStyle().Foreground(ColorMuted)
	StyleLabel = lipgloss.NewStyle().Width(16)
}

// SetNoColor disables or re-enables color output globally by reassigning the
// package-level styles.
func SetNoColor(disabled bool) {
	noColor = disabled
	applyStyles(disabled)
}

// IsNoColor returns whether color output is currently disabled.
func IsNoColor() bool {
	return noColor
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// AutoColor disables color when f is not a terminal or NO_COLOR is set.
func AutoColor(f *os.File) {
	if _, set := os.LookupEnv("NO_COLOR"); set || !IsTerminal(f) {
		SetNoColor(true)
	}
}

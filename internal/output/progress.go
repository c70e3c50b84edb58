package output

import (
	"fmt"
	"strings"
)

// CoverageBar renders the share of lines that received an annotation.
// Example: "████░░░░░░ 4/10 lines"
func CoverageBar(annotated, total, width int) string {
	if width <= 0 {
		width = 20
	}
	filled := 0
	if total > 0 {
		filled = annotated * width / total
	}
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("%s %s", StyleSuccess.Render(bar), StyleMuted.Render(fmt.Sprintf("%d/%d lines", annotated, total)))
}

// Section returns a styled section header with a horizontal rule.
func Section(title string) string {
	header := StyleHeader.Render(title)
	rule := StyleMuted.Render(strings.Repeat("─", 66))
	return fmt.Sprintf("\n %s\n %s", header, rule)
}

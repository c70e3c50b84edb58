package suggest

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Numbering decides the number printed before each suggestion.
type Numbering string

const (
	// NumberingFixed prints each rule's slot, leaving gaps for rules that
	// did not fire.
	NumberingFixed Numbering = "fixed"

	// NumberingSequential numbers fired rules 1..n.
	NumberingSequential Numbering = "sequential"
)

// ErrUnknownNumbering is returned by ParseNumbering for unsupported names.
var ErrUnknownNumbering = errors.New("unknown numbering policy")

// ParseNumbering resolves a policy name. The empty string selects
// NumberingFixed.
func ParseNumbering(s string) (Numbering, error) {
	switch Numbering(strings.ToLower(strings.TrimSpace(s))) {
	case "", NumberingFixed:
		return NumberingFixed, nil
	case NumberingSequential:
		return NumberingSequential, nil
	}
	return "", fmt.Errorf("%w: %q (want %q or %q)", ErrUnknownNumbering, s, NumberingFixed, NumberingSequential)
}

// Number returns the label for the i-th (zero-based) suggestion in a report.
func (n Numbering) Number(i int, s Suggestion) int {
	if n == NumberingSequential {
		return i + 1
	}
	return s.Slot
}

// ReportHeader opens every suggestions report.
const ReportHeader = "# Suggestions for improvement:\n\n"

// Render formats suggestions as a numbered, newline-terminated report.
func Render(suggestions []Suggestion, n Numbering) string {
	var sb strings.Builder
	sb.WriteString(ReportHeader)
	for i, s := range suggestions {
		sb.WriteString(strconv.Itoa(n.Number(i, s)))
		sb.WriteString(". ")
		sb.WriteString(s.Message)
		sb.WriteByte('\n')
	}
	return sb.String()
}

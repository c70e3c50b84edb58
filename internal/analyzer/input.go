package analyzer

import (
	"errors"
	"strings"
)

// ErrBlankInput is returned by CheckInput for empty or whitespace-only text.
var ErrBlankInput = errors.New("no code to analyze")

// CheckInput is the precondition every front end applies before calling the
// engine. The engine itself accepts any string.
func CheckInput(text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrBlankInput
	}
	return nil
}

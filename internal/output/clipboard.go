package output

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// ErrClipboardUnavailable is returned when no system clipboard tool exists.
var ErrClipboardUnavailable = errors.New("clipboard unavailable")

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

// Copy places text on the system clipboard unmodified.
func Copy(text string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnavailable
	}
	if err := writeClipboard(text); err != nil {
		return fmt.Errorf("copying to clipboard: %w", err)
	}
	return nil
}

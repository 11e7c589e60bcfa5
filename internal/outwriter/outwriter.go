// Package outwriter has output and writer logic.
package outwriter

import (
	"os"

	"github.com/threesixty-dev/threesixty/internal/contract"
	"golang.org/x/term"
)

// GetMaxTableNameWidth calculates the maximum width for manager names and
// labels in table output based on terminal width.
func GetMaxTableNameWidth(cfg *contract.Config) int {
	termWidth := cfg.Width
	if termWidth == 0 {
		detected, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detected <= 0 {
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detected
		}
	}

	// Reserve space for the numeric columns with borders and padding.
	available := termWidth - 55
	if available < 12 {
		return 12
	}
	if available > 40 {
		return 40
	}
	return available
}

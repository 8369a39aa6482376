package handler

import (
	"os"

	"github.com/mattn/go-isatty"
)

// shouldEnableColor returns true if console output should be
// colorized using terminal escape sequences.
func shouldEnableColor() bool {
	// If $NO_COLOR is non-empty, no color.
	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	// If stderr is not a tty, no color.
	fd := os.Stderr.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return false
	}

	// Check $TERM. TERM=dumb used by Xcode.
	term := os.Getenv("TERM")
	if term == "" || term == "dumb" {
		return false
	}
	return true
}

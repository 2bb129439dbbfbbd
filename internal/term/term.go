// Package term answers two questions about the output terminal: whether it
// accepts ANSI styling, and how wide a string will look once the styling
// sequences are accounted for.
package term

import (
	"os"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-isatty"
)

// SupportsColor reports whether f is a terminal that accepts ANSI styling.
// CLICOLOR_FORCE forces styling on, NO_COLOR and TERM=dumb force it off.
func SupportsColor(f *os.File) bool {
	if os.Getenv("CLICOLOR_FORCE") != "" && os.Getenv("CLICOLOR_FORCE") != "0" {
		return true
	}
	if _, set := os.LookupEnv("NO_COLOR"); set {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Width returns the visible display width of s, ignoring any embedded ANSI
// escape sequences and accounting for wide runes.
func Width(s string) int {
	return ansi.StringWidth(s)
}

// Strip returns s with all ANSI escape sequences removed.
func Strip(s string) string {
	return ansi.Strip(s)
}

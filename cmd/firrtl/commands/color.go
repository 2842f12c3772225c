// cmd/firrtl/commands/color.go
package commands

import (
	"os"

	"github.com/mattn/go-isatty"
)

// colorEnabled decides whether diagnostics written to f should be
// colored: only when f is an interactive terminal.
func colorEnabled(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

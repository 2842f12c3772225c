// cmd/firrtl/commands/fmt.go
package commands

import (
	"fmt"
	"os"

	"firrtl/format"
	"firrtl/internal/reporting"
	"firrtl/parser"
)

// FmtCommand parses each named file and re-emits it in canonical form
// on stdout.
func FmtCommand(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: firrtl fmt <file.fir>...")
	}
	for _, path := range args {
		text, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		circuit, err := parser.ParseCircuit(string(text))
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s:\n", path)
			reporting.Report(os.Stderr, err, colorEnabled(os.Stderr))
			return err
		}
		fmt.Print(format.Circuit(circuit))
	}
	return nil
}

// cmd/firrtl/commands/parse.go
package commands

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"

	"firrtl/internal/reporting"
	"firrtl/parser"
)

// ParseCommand parses each named file and reports a module/port
// summary.
func ParseCommand(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: firrtl parse <file.fir>...")
	}
	failed := false
	for _, path := range args {
		if err := parseOne(path); err != nil {
			failed = true
		}
	}
	if failed {
		return fmt.Errorf("one or more files failed to parse")
	}
	return nil
}

func parseOne(path string) error {
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
	ports := 0
	for _, m := range circuit.Modules() {
		ports += len(m.Ports())
	}
	fmt.Printf("%s: parsed %s modules, %s ports (top: %s)\n",
		path, humanize.Comma(int64(len(circuit.Modules()))), humanize.Comma(int64(ports)), circuit.Top.Name())
	return nil
}

// Package reporting renders a ferrors.ParseError (and its context
// chain) as text for a terminal or log sink, matching the CLI output
// conventions of teacher's internal/reporting and internal/commands
// packages: a one-line summary plus an indented chain, optionally
// colored when the destination is a terminal.
package reporting

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"firrtl/ferrors"
)

const (
	colorRed   = "\x1b[31m"
	colorDim   = "\x1b[2m"
	colorReset = "\x1b[0m"
)

// Report renders err to w. If color is true, the summary line is red
// and the context chain dimmed; callers typically set color from
// github.com/mattn/go-isatty on the destination file descriptor.
func Report(w io.Writer, err error, color bool) {
	var pe *ferrors.ParseError
	if !errors.As(err, &pe) {
		fmt.Fprintf(w, "%s\n", err)
		return
	}
	summary := summaryLine(pe)
	if color {
		fmt.Fprintf(w, "%s%s%s\n", colorRed, summary, colorReset)
	} else {
		fmt.Fprintf(w, "%s\n", summary)
	}
	for _, line := range chainLines(pe) {
		if color {
			fmt.Fprintf(w, "%s%s%s\n", colorDim, line, colorReset)
		} else {
			fmt.Fprintf(w, "%s\n", line)
		}
	}
}

func summaryLine(pe *ferrors.ParseError) string {
	ctx := pe.Context()
	if pe.Kind() == ferrors.IO {
		return fmt.Sprintf("[%s] %s", pe.ID(), pe.Kind())
	}
	head := ""
	if len(ctx) > 0 {
		head = ": " + ctx[0]
	}
	return fmt.Sprintf("[%s] %s at %s%s", pe.ID(), pe.Kind(), pe.Position(), head)
}

func chainLines(pe *ferrors.ParseError) []string {
	ctx := pe.Context()
	if len(ctx) <= 1 {
		return nil
	}
	lines := make([]string, 0, len(ctx)-1)
	for i, c := range ctx[1:] {
		lines = append(lines, strings.Repeat("  ", i+1)+"while parsing: "+c)
	}
	return lines
}

// Package ferrors defines the parser's error taxonomy: Syntax errors
// and caller-wrapped IO errors. Type and flow derivation failures are
// not defined here; package expr reports them as its own TypeError and
// FlowError values.
package ferrors

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Kind distinguishes the broad categories of error the library produces.
type Kind int

const (
	// Syntax covers any failure to recognize the grammar: unexpected
	// tokens, missing keywords, bad indentation, unknown primitive
	// names, missing required memory fields, undefined references,
	// unknown modules in instance statements.
	Syntax Kind = iota
	// IO covers failures reading input; the library itself never
	// produces this kind, but callers may wrap an io.Error this way
	// for uniform handling.
	IO
)

func (k Kind) String() string {
	switch k {
	case Syntax:
		return "syntax error"
	case IO:
		return "I/O error"
	default:
		return "error"
	}
}

// Position identifies a location in source text.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// ParseError is returned by every parsing entry point in this module.
// It carries a position, a chain of contexts describing what the parser
// expected at each nested level ("expected identifier", "expected
// decimal numeral", ...), and a stable correlation ID so repeated
// failures can be cross-referenced in logs.
type ParseError struct {
	kind     Kind
	pos      Position
	contexts []string
	cause    error
	id       uuid.UUID
}

// New creates a Syntax ParseError at pos with a single context message.
func New(pos Position, context string) *ParseError {
	return &ParseError{kind: Syntax, pos: pos, contexts: []string{context}, id: uuid.New()}
}

// Wrap attaches additional context in front of an existing error,
// mirroring the original parser's nested `nom::error::context` chain.
// If err is already a *ParseError, the context is prepended to its
// chain and the position is left as the innermost (most specific) one.
func Wrap(pos Position, context string, err error) *ParseError {
	var pe *ParseError
	if errors.As(err, &pe) {
		contexts := make([]string, 0, len(pe.contexts)+1)
		contexts = append(contexts, context)
		contexts = append(contexts, pe.contexts...)
		return &ParseError{kind: pe.kind, pos: pe.pos, contexts: contexts, cause: pe.cause, id: pe.id}
	}
	return &ParseError{kind: Syntax, pos: pos, contexts: []string{context}, cause: err, id: uuid.New()}
}

// FromIO wraps a caller-supplied I/O failure as a ParseError of kind IO.
func FromIO(err error) *ParseError {
	return &ParseError{kind: IO, cause: err, id: uuid.New()}
}

// Kind reports the taxonomy bucket this error falls into.
func (e *ParseError) Kind() Kind { return e.kind }

// Position reports where in the source the failure was detected.
// It is the zero Position for IO errors.
func (e *ParseError) Position() Position { return e.pos }

// Context returns the chain of expectation messages, outermost first.
func (e *ParseError) Context() []string { return append([]string(nil), e.contexts...) }

// ID returns the correlation ID stamped on this error at creation time.
func (e *ParseError) ID() uuid.UUID { return e.id }

func (e *ParseError) Unwrap() error { return e.cause }

// Error renders a single-line summary followed by the context chain,
// one entry per line, matching the library's documented error-rendering
// contract: callers may still format the error themselves using the
// structured accessors above.
func (e *ParseError) Error() string {
	var b strings.Builder
	switch e.kind {
	case IO:
		fmt.Fprintf(&b, "I/O error")
		if e.cause != nil {
			fmt.Fprintf(&b, ": %s", e.cause)
		}
	default:
		fmt.Fprintf(&b, "syntax error at %s", e.pos)
		if len(e.contexts) > 0 {
			fmt.Fprintf(&b, ": %s", e.contexts[0])
		}
	}
	for _, ctx := range e.contexts[min(1, len(e.contexts)):] {
		fmt.Fprintf(&b, "\n  while parsing: %s", ctx)
	}
	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

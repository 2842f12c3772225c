package format_test

import (
	"fmt"
	"math/rand"
	"testing"
	"testing/quick"

	"github.com/kr/pretty"

	"firrtl/expr"
	"firrtl/format"
	"firrtl/internal/propcheck"
	"firrtl/parser"
)

// TestRoundTripUIntExpressionProperty checks that parsing a rendered
// expression reproduces the same rendering (parse(display(e)) == e,
// up to value) over a random population of UInt-typed expressions
// built from literals, and/xor, and mux.
func TestRoundTripUIntExpressionProperty(t *testing.T) {
	noRefs := func(string) (expr.NamedRef, error) {
		return expr.NamedRef{}, fmt.Errorf("no references in this generator")
	}
	prop := func(seed int64) bool {
		rnd := rand.New(rand.NewSource(seed))
		width := uint16(rnd.Intn(16) + 1)
		e := propcheck.UIntExpression(rnd, 3, width)
		text := format.Expression[expr.NamedRef](e)
		p := parser.New(text)
		reparsed, err := parser.Expression[expr.NamedRef](p, noRefs)
		if err != nil {
			t.Logf("failed to reparse %q: %v", text, err)
			return false
		}
		got := format.Expression[expr.NamedRef](reparsed)
		if got != text {
			t.Logf("round-trip mismatch: %q -> %q\noriginal: %# v\nreparsed: %# v", text, got, pretty.Formatter(e), pretty.Formatter(reparsed))
			return false
		}
		return true
	}
	if err := quick.Check(prop, &quick.Config{MaxCount: 100}); err != nil {
		t.Error(err)
	}
}

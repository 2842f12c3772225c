package propcheck

import (
	"math/rand"
	"testing"
	"testing/quick"

	"github.com/google/go-cmp/cmp"

	"firrtl/format"
	"firrtl/parser"
	"firrtl/types"
)

func TestTypeGeneratorProducesWellFormedTypes(t *testing.T) {
	prop := func(seed int64) bool {
		rnd := rand.New(rand.NewSource(seed))
		ty := Type(rnd, 3)
		return wellFormed(ty)
	}
	if err := quick.Check(prop, &quick.Config{MaxCount: 200}); err != nil {
		t.Error(err)
	}
}

var bitWidthComparer = cmp.Comparer(func(a, b types.BitWidth) bool {
	av, aok := a.Value()
	bv, bok := b.Value()
	return aok == bok && av == bv
})

// TestTypeGeneratorRoundTripsStructurally checks that a generated
// type, rendered by format.Type and reparsed, is structurally equal
// to the original (not just string-equal), catching a renderer that
// happens to be byte-stable but loses information a parser would
// interpret differently.
func TestTypeGeneratorRoundTripsStructurally(t *testing.T) {
	prop := func(seed int64) bool {
		rnd := rand.New(rand.NewSource(seed))
		want := Type(rnd, 3)
		text := format.Type(want)
		got, err := parser.New(text).Type()
		if err != nil {
			t.Logf("reparse %q: %v", text, err)
			return false
		}
		if diff := cmp.Diff(want, got, bitWidthComparer); diff != "" {
			t.Logf("type %q round-trip mismatch (-want +got):\n%s", text, diff)
			return false
		}
		return true
	}
	if err := quick.Check(prop, &quick.Config{MaxCount: 100}); err != nil {
		t.Error(err)
	}
}

func wellFormed(t types.Type) bool {
	switch v := t.(type) {
	case types.Ground:
		return v.Type != nil
	case types.Vector:
		return v.Size > 0 && wellFormed(v.Base)
	case types.Bundle:
		seen := map[string]bool{}
		for _, f := range v.Fields {
			if seen[f.Name] || !wellFormed(f.Type) {
				return false
			}
			seen[f.Name] = true
		}
		return true
	default:
		return false
	}
}

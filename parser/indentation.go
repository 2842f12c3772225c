package parser

// IndentationKind distinguishes a lower bound from a pinned exact
// level in the Indentation algebra.
type IndentationKind int

const (
	MoreThan IndentationKind = iota
	Exact
)

// Indentation is either a lower bound ("more than n spaces") before a
// block's depth is known, or a pinned exact depth once it is. It is
// threaded explicitly through parser calls rather than held on a
// stack, so backtracking never needs to undo indentation state.
type Indentation struct {
	Kind IndentationKind
	N    int
}

// Root is the indentation of a circuit's top-level module list: column 0.
func Root() Indentation { return Indentation{Kind: Exact, N: 0} }

// DefaultStep is the conventional indentation step used by Lock when
// no adaptive observation is available.
const DefaultStep = 2

// Locked is an indentation that has been pinned to a concrete column.
type Locked struct{ N int }

// Lock pins ind to a concrete column: an Exact indentation is already
// pinned and is returned as-is; a MoreThan(n) lower bound is pinned to
// n+step (step defaults to DefaultStep when <= 0), matching the
// original crate's indentation-combinator semantics for constructs
// that assume the conventional step rather than observing one.
func (ind Indentation) Lock(step int) Locked {
	if step <= 0 {
		step = DefaultStep
	}
	if ind.Kind == MoreThan {
		return Locked{N: ind.N + step}
	}
	return Locked{N: ind.N}
}

// Sub derives a deeper lower-bound indentation for a block nested
// inside locked.
func (l Locked) Sub() Indentation { return Indentation{Kind: MoreThan, N: l.N} }

// Accepts reports whether a line observed at the given column
// (1-based, i.e. Token.Column) satisfies ind: Exact(k) requires
// column == k+1; MoreThan(k) requires column > k+1.
func (ind Indentation) Accepts(column int) bool {
	switch ind.Kind {
	case Exact:
		return column == ind.N+1
	default:
		return column > ind.N+1
	}
}

// Observe pins a MoreThan lower bound to the column actually seen on
// a block's first line; an Exact indentation is returned unchanged
// (it was already pinned).
func (ind Indentation) Observe(column int) Locked {
	if ind.Kind == Exact {
		return Locked{N: ind.N}
	}
	return Locked{N: column - 1}
}

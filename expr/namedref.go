package expr

import "firrtl/types"

// NamedRef is a minimal Reference: a bare name with an explicit flow
// and type, used for isolated expression parsing and tests where no
// enclosing module scope provides richer Entity references.
type NamedRef struct {
	NameValue string
	FlowValue Flow
	TypeValue types.Type
}

func (r NamedRef) Name() string      { return r.NameValue }
func (r NamedRef) Flow() Flow        { return r.FlowValue }
func (r NamedRef) Type() types.Type  { return r.TypeValue }

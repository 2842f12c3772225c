package expr

import "firrtl/types"

// FlowError reports that FlowOf could not derive a flow, identifying
// the offending sub-expression.
type FlowError[R Reference] struct {
	Expr   Expression[R]
	Reason string
}

func (e *FlowError[R]) Error() string { return "cannot derive flow: " + e.Reason }

func flowErr[R Reference](e Expression[R], reason string) error {
	return &FlowError[R]{Expr: e, Reason: reason}
}

// FlowOf derives the Flow of e: Reference nodes take their own flow;
// SubField adds the orientation of the selected field; SubIndex and
// SubAccess pass their base's flow through unchanged; every other
// expression kind is Source.
func FlowOf[R Reference](e Expression[R]) (Flow, error) {
	switch v := e.(type) {
	case Ref[R]:
		return v.Ref.Flow(), nil
	case SubField[R]:
		baseFlow, err := FlowOf[R](v.Base)
		if err != nil {
			return 0, err
		}
		baseType, err := TypeOf[R](v.Base)
		if err != nil {
			return 0, flowErr[R](e, "cannot derive base type")
		}
		f, ok := types.Field(baseType, v.Field)
		if !ok {
			return 0, flowErr[R](e, "sub-field of a non-bundle, or unknown field \""+v.Field+"\"")
		}
		return baseFlow.Add(f.Orientation), nil
	case SubIndex[R]:
		return FlowOf[R](v.Base)
	case SubAccess[R]:
		return FlowOf[R](v.Base)
	default:
		return Source, nil
	}
}

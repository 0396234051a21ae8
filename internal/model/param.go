package model

import "github.com/moznion/go-optional"

// Direction is a GIR parameter's direction attribute.
type Direction int

const (
	DirectionIn Direction = iota
	DirectionOut
	DirectionInOut
)

func DirectionFromGIR(raw string) Direction {
	switch raw {
	case "out":
		return DirectionOut
	case "inout":
		return DirectionInOut
	default:
		return DirectionIn
	}
}

// Parameter is one entry of a CallableSignature.
type Parameter struct {
	Name      string
	Direction Direction
	Nullable  bool
	Optional  bool

	ClosureIndex optional.Option[int]
	DestroyIndex optional.Option[int]
	LengthIndex  optional.Option[int]

	Type TypeRef
}

// CallableSignature is the parameter list plus return shape of a
// function, method, virtual method, constructor, callback, or signal.
type CallableSignature struct {
	Parameters []Parameter
	Return     TypeRef

	// OutArrayLengthIndex names, among Parameters, the length-carrying
	// parameter of an out array return, when applicable.
	OutArrayLengthIndex optional.Option[int]

	// Shadows/ShadowedBy mirror the GIR annotations of the same name;
	// internal/synth consults them when deciding whether this signature
	// is emitted at all, or under a different name.
	Shadows    string
	ShadowedBy string
}

// IsVoid reports whether the signature's return type is C void with no
// array/list wrapping, the condition checked before folding
// a single out-parameter into the return position.
func (c CallableSignature) IsVoid() bool {
	return (c.Return.Shape == ShapePrimitive && c.Return.Primitive == "none") ||
		(c.Return.Shape == ShapeNamed && c.Return.Named == "none")
}

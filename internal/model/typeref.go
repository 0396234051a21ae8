package model

import (
	"github.com/gir-project/girgen/internal/gir"
	"github.com/moznion/go-optional"
)

// TypeRefShape tags the five TypeRef variants.
type TypeRefShape int

const (
	ShapePrimitive TypeRefShape = iota
	ShapeNamed
	ShapeCallbackInline
	ShapeArray
	ShapeList
)

// TypeRef is the core's interpreted view of a GIR <type>/<array>
// occurrence, built while walking a parameter, return-value, or field
// node. It is the input TypeResolver (internal/typeresolve) consumes.
type TypeRef struct {
	Shape TypeRefShape

	// Primitive holds the raw C type tag when Shape == ShapePrimitive.
	Primitive string

	// Named holds "<Namespace>.<Name>" (possibly still unqualified, same
	// -module) when Shape == ShapeNamed.
	Named string

	// Callback holds the inline callback node when Shape ==
	// ShapeCallbackInline.
	Callback *gir.Callback

	// Element is the element TypeRef for ShapeArray/ShapeList.
	Element *TypeRef

	// LengthParamIndex is the index, among the signature's parameters, of
	// the parameter carrying this array's runtime length, when the GIR
	// <array length="N"> attribute was present.
	LengthParamIndex optional.Option[int]

	Nullable bool
}

// FromGIRType interprets a parsed GIR type/array occurrence. nullable is
// the caller-computed nullable/allow-none/optional flag; FromGIRType does not inspect annotations itself, only the
// shape of t/array.
func FromGIRType(t *gir.Type, array *gir.ArrayType, nullable bool) TypeRef {
	if array != nil {
		elem := TypeRef{Shape: ShapePrimitive, Primitive: "any"}
		if array.ElementType != nil {
			elem = FromGIRType(array.ElementType, nil, false)
		}
		ref := TypeRef{
			Shape:    ShapeArray,
			Element:  &elem,
			Nullable: nullable,
		}
		if array.Length != "" {
			if idx, ok := parseIndex(array.Length); ok {
				ref.LengthParamIndex = optional.Some(idx)
			}
		}
		return ref
	}

	if t == nil {
		return TypeRef{Shape: ShapePrimitive, Primitive: "none", Nullable: nullable}
	}

	if t.Callback != nil {
		return TypeRef{Shape: ShapeCallbackInline, Callback: t.Callback, Nullable: nullable}
	}

	switch t.Name {
	case "GLib.List", "GLib.SList":
		// GIR nests the element type as the sole child <type> of the list
		// type in well-formed documents; callers that already unpacked it
		// should use ShapeArray/ShapeList directly instead of calling
		// FromGIRType again, so this path only ever returns the element-
		// less list shell for a directly-nested <type name="GLib.List">.
		return TypeRef{Shape: ShapeList, Nullable: nullable}
	default:
		if t.Name == "" {
			return TypeRef{Shape: ShapePrimitive, Primitive: t.CType, Nullable: nullable}
		}
		return TypeRef{Shape: ShapeNamed, Named: t.Name, Nullable: nullable}
	}
}

func parseIndex(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	return n, true
}

// Package typeexpr models the small target-surface type expression tree
// that internal/typeresolve produces and internal/synth/internal/emit
// print. It is deliberately tiny, a handful of variants, not a full
// structural type system, since the core only ever needs to print a
// type, never to unify, widen, or check one.
package typeexpr

import "strings"

// Expr is the tagged variant over target-surface type expressions.
type Expr interface {
	isExpr()
	String() string
}

func (Named) isExpr()    {}
func (Array) isExpr()    {}
func (Nullable) isExpr() {}
func (Func) isExpr()     {}
func (Union) isExpr()    {}
func (Tuple) isExpr()    {}

// Named is a bare named type: a primitive ("number", "string", "any",
// "void", "bigint") or a qualified reference ("Gtk.Widget").
type Named struct {
	Name string
}

func (n Named) String() string { return n.Name }

// Array is Element followed by "[]".
type Array struct {
	Element Expr
}

func (a Array) String() string {
	return parenthesizeIfNeeded(a.Element) + "[]"
}

// Nullable is Inner followed by " | null". The suffix order is fixed as
// array-then-nullable, so Nullable never wraps another
// Nullable; callers build Array(Nullable(x)) or Nullable(Array(x))
// depending on which annotation applies to which layer.
type Nullable struct {
	Inner Expr
}

func (n Nullable) String() string {
	return parenthesizeIfNeeded(n.Inner) + " | null"
}

// Func is a callback/closure type: (p1: T1, p2: T2) => TReturn.
type Func struct {
	ParamNames []string
	ParamTypes []Expr
	Return     Expr
}

func (f Func) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, t := range f.ParamTypes {
		if i > 0 {
			b.WriteString(", ")
		}
		if i < len(f.ParamNames) && f.ParamNames[i] != "" {
			b.WriteString(f.ParamNames[i])
			b.WriteString(": ")
		}
		b.WriteString(t.String())
	}
	b.WriteString(") => ")
	if f.Return == nil {
		b.WriteString("void")
	} else {
		b.WriteString(f.Return.String())
	}
	return b.String()
}

// Union is a "|"-joined list of alternatives.
type Union struct {
	Members []Expr
}

func (u Union) String() string {
	parts := make([]string, len(u.Members))
	for i, m := range u.Members {
		parts[i] = m.String()
	}
	return strings.Join(parts, " | ")
}

// Tuple is a fixed-length positional "[T1, T2]" shape, used for the
// packed (return, out1, out2, ...) result of an out-parameter signature.
type Tuple struct {
	Elements []Expr
}

func (t Tuple) String() string {
	parts := make([]string, len(t.Elements))
	for i, e := range t.Elements {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// parenthesizeIfNeeded wraps a Func or Union in parens before appending
// "[]" or " | null", following the "wrap in parentheses when
// an array or nullable suffix follows" rule for callback types.
func parenthesizeIfNeeded(e Expr) string {
	switch e.(type) {
	case Func, Union:
		return "(" + e.String() + ")"
	default:
		return e.String()
	}
}

// Any is the top-type fallback TypeResolver returns on an unresolved
// outcome.
var Any = Named{Name: "any"}

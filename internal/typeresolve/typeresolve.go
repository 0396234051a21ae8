// Package typeresolve lowers a model.TypeRef, the resolved, in-memory
// view of one GIR type occurrence, to a typeexpr.Expr, the printed
// target-surface type.
package typeresolve

import (
	"fmt"
	"strings"

	"github.com/gir-project/girgen/internal/config"
	"github.com/gir-project/girgen/internal/diag"
	"github.com/gir-project/girgen/internal/gir"
	"github.com/gir-project/girgen/internal/inheritance"
	"github.com/gir-project/girgen/internal/model"
	"github.com/gir-project/girgen/internal/symboltable"
	"github.com/gir-project/girgen/internal/typeexpr"
)

// Resolver is the TypeResolver: stateless except for the SymbolTable it
// consults and the environment it was built for.
type Resolver struct {
	table *symboltable.SymbolTable
	env   config.Environment
}

// New builds a Resolver bound to table and env. env selects which of the
// two primitive/array-plain-type maps below is consulted.
func New(table *symboltable.SymbolTable, env config.Environment) *Resolver {
	return &Resolver{table: table, env: env}
}

// plainTypeMap holds the GIR primitive type names (the <type name="...">
// value, not the C type) that resolve without consulting the
// SymbolTable at all, keyed by environment. gint64/guint64/gsize/gssize
// widen to bigint under node (node-gtk marshals 64-bit integers as
// BigInt) and stay number under gjs (Spidermonkey's number covers the
// GIR types GJS actually exposes as plain numbers).
var plainTypeMap = map[config.Environment]map[string]string{
	config.EnvironmentGJS: {
		"gboolean": "boolean",
		"gint":     "number", "guint": "number",
		"gint8": "number", "guint8": "number",
		"gint16": "number", "guint16": "number",
		"gint32": "number", "guint32": "number",
		"gint64": "number", "guint64": "number",
		"glong": "number", "gulong": "number",
		"gshort": "number", "gushort": "number",
		"gfloat": "number", "gdouble": "number",
		"gsize": "number", "gssize": "number", "goffset": "number",
		"gchar": "number", "guchar": "number",
		"gunichar": "number",
		"utf8":     "string", "filename": "string",
		"gpointer": "any", "gconstpointer": "any",
		"gtype": "number",
		"none":  "void",
		"va_list": "any",
	},
	config.EnvironmentNode: {
		"gboolean": "boolean",
		"gint":     "number", "guint": "number",
		"gint8": "number", "guint8": "number",
		"gint16": "number", "guint16": "number",
		"gint32": "number", "guint32": "number",
		"gint64": "bigint", "guint64": "bigint",
		"glong": "number", "gulong": "number",
		"gshort": "number", "gushort": "number",
		"gfloat": "number", "gdouble": "number",
		"gsize": "bigint", "gssize": "bigint", "goffset": "bigint",
		"gchar": "number", "guchar": "number",
		"gunichar": "number",
		"utf8":     "string", "filename": "string",
		"gpointer": "any", "gconstpointer": "any",
		"gtype": "number",
		"none":  "void",
		"va_list": "any",
	},
}

// cTypeMap covers raw C type spellings that reach TypeResolver without a
// GIR name attribute at all (resolution step 2), narrower than
// plainTypeMap since most GIR documents always set name.
var cTypeMap = map[string]string{
	"void": "void",
	"gboolean": "boolean",
}

// arrayPlainTypeMap covers resolution step 3: an outer array/list shape
// whose element is itself atomic enough to collapse to a single target
// type instead of "<element>[]": a raw byte buffer, the canonical case.
var arrayPlainTypeMap = map[config.Environment]map[string]string{
	config.EnvironmentGJS:  {"guint8": "Uint8Array", "gint8": "Uint8Array"},
	config.EnvironmentNode: {"guint8": "Buffer", "gint8": "Buffer"},
}

// namedTypeMap covers resolution step 5: fully-qualified names with a
// fixed, direction-sensitive target mapping that does not go through the
// SymbolTable at all, because the type is part of GLib/GObject's
// bedrock rather than something a GIR document's own namespace defines.
var namedTypeMap = map[string]struct{ in, out string }{
	"GObject.Value":  {in: "any", out: "any"},
	"GLib.Variant":   {in: "any", out: "any"},
	"GLib.Error":     {in: "Error", out: "Error"},
	"GLib.HashTable": {in: "Record<any, any>", out: "Record<any, any>"},
	"GLib.List":      {in: "any[]", out: "any[]"},
	"GLib.SList":     {in: "any[]", out: "any[]"},
}

// Resolve lowers ref to a printed type expression. mod is the module
// that referenced ref, used to qualify an as-yet-unqualified named type
// and to tag any diagnostic raised. out is true for return positions,
// false for parameter/field positions.
func (r *Resolver) Resolve(sink *diag.Sink, mod *model.Module, ref model.TypeRef, out bool) typeexpr.Expr {
	switch ref.Shape {
	case model.ShapeCallbackInline:
		fn := r.ResolveCallback(sink, mod, ref.Callback, out)
		return wrapNullable(fn, ref.Nullable)

	case model.ShapeArray, model.ShapeList:
		return r.resolveArray(sink, mod, ref, out)

	default:
		return r.resolvePlainOrNamed(sink, mod, ref, out)
	}
}

func (r *Resolver) resolveArray(sink *diag.Sink, mod *model.Module, ref model.TypeRef, out bool) typeexpr.Expr {
	if ref.Element != nil {
		if name := elementPlainName(*ref.Element); name != "" {
			if special, ok := arrayPlainTypeMap[r.env][name]; ok {
				return wrapNullable(typeexpr.Named{Name: special}, ref.Nullable)
			}
		}
	}

	var elem typeexpr.Expr = typeexpr.Any
	if ref.Element != nil {
		elem = r.Resolve(sink, mod, *ref.Element, out)
	}
	return wrapNullable(typeexpr.Array{Element: elem}, ref.Nullable)
}

// elementPlainName returns the GIR primitive name a TypeRef's element
// names, when it is plain enough for arrayPlainTypeMap to key on,
// empty for anything else (a named object type, a nested callback, ...).
func elementPlainName(ref model.TypeRef) string {
	if ref.Shape == model.ShapeNamed {
		return ref.Named
	}
	return ""
}

func (r *Resolver) resolvePlainOrNamed(sink *diag.Sink, mod *model.Module, ref model.TypeRef, out bool) typeexpr.Expr {
	// Step 2: raw C type, only reached when GIR omitted the name attribute.
	if ref.Shape == model.ShapePrimitive {
		if mapped, ok := cTypeMap[ref.Primitive]; ok {
			return wrapNullable(typeexpr.Named{Name: mapped}, ref.Nullable)
		}
		if mapped, ok := plainTypeMap[r.env][ref.Primitive]; ok {
			return wrapNullable(typeexpr.Named{Name: mapped}, ref.Nullable)
		}
	}

	if ref.Shape == model.ShapeNamed {
		// Step 4: plain-type mapping by GIR type name.
		if mapped, ok := plainTypeMap[r.env][ref.Named]; ok {
			return wrapNullable(typeexpr.Named{Name: mapped}, ref.Nullable)
		}

		// Step 5: fixed, direction-sensitive named-type mapping.
		if entry, ok := namedTypeMap[ref.Named]; ok {
			mapped := entry.in
			if out {
				mapped = entry.out
			}
			return wrapNullable(typeexpr.Named{Name: mapped}, ref.Nullable)
		}

		// Step 6: SymbolTable lookup, stripping the local-module prefix.
		qualified := inheritance.Qualify(mod, ref.Named)
		if _, ok := r.table.Lookup(qualified); ok {
			printed := qualified
			if strings.HasPrefix(qualified, mod.Namespace+".") {
				printed = strings.TrimPrefix(qualified, mod.Namespace+".")
			}
			return wrapNullable(typeexpr.Named{Name: printed}, ref.Nullable)
		}
	}

	// Step 7: unresolved fallback.
	sink.Report(diag.UnresolvedType, mod.PackageName(),
		fmt.Sprintf("unresolved type reference %q, falling back to any", refDescription(ref)))
	return wrapNullable(typeexpr.Any, ref.Nullable)
}

func refDescription(ref model.TypeRef) string {
	if ref.Shape == model.ShapeNamed {
		return ref.Named
	}
	return ref.Primitive
}

// ResolveCallback synthesizes a Func expression from an inline
// <callback> node's parameters and return type (resolution step 1).
// Exported so internal/emit can use it directly for top-level <callback>
// declarations, not just inline ones.
func (r *Resolver) ResolveCallback(sink *diag.Sink, mod *model.Module, cb *gir.Callback, out bool) typeexpr.Func {
	var names []string
	var types []typeexpr.Expr
	for i := range cb.Parameters.Parameter {
		p := &cb.Parameters.Parameter[i]
		nullable := p.Nullable == "1" || p.AllowNone == "1" || p.Optional == "1"
		ref := model.FromGIRType(p.Type, p.Array, nullable)
		names = append(names, p.Name)
		types = append(types, r.Resolve(sink, mod, ref, model.DirectionFromGIR(p.Direction) == model.DirectionOut))
	}

	retNullable := cb.ReturnValue.Nullable == "1"
	retRef := model.FromGIRType(cb.ReturnValue.Type, cb.ReturnValue.Array, retNullable)
	ret := r.Resolve(sink, mod, retRef, true)

	return typeexpr.Func{ParamNames: names, ParamTypes: types, Return: ret}
}

func wrapNullable(e typeexpr.Expr, nullable bool) typeexpr.Expr {
	if !nullable {
		return e
	}
	return typeexpr.Nullable{Inner: e}
}

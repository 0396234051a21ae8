// Package model holds the core's interpreted view of one GIR repository:
// the tagged Declaration variant, the Module entity, and the type/
// parameter/signature shapes the core works with. Concrete Declaration
// kinds wrap a pointer into the raw gir tree rather than copying it, and
// carry the one-shot owning-Module/qualified-name stamp that the
// population pass attaches.
package model

import "github.com/gir-project/girgen/internal/gir"

// Kind tags which of the ten GIR construct kinds a Declaration wraps.
type Kind int

const (
	KindEnumeration Kind = iota
	KindBitfield
	KindConstant
	KindAlias
	KindCallback
	KindFunction
	KindRecord
	KindUnion
	KindClass
	KindInterface
)

func (k Kind) String() string {
	switch k {
	case KindEnumeration:
		return "enumeration"
	case KindBitfield:
		return "bitfield"
	case KindConstant:
		return "constant"
	case KindAlias:
		return "alias"
	case KindCallback:
		return "callback"
	case KindFunction:
		return "function"
	case KindRecord:
		return "record"
	case KindUnion:
		return "union"
	case KindClass:
		return "class"
	case KindInterface:
		return "interface"
	default:
		return "unknown"
	}
}

//sumtype:decl

// Declaration is the tagged variant over the ten GIR construct kinds.
// Every concrete type below implements it by embedding Base.
type Declaration interface {
	isDeclaration()
	Kind() Kind
	Name() string
	QualifiedName() string
	Module() *Module

	// stamp is called exactly once per Declaration, through Stamp (by
	// SymbolTable.Insert, and by internal/emit for the view declarations
	// it builds), to attach the owning Module and fully-qualified name.
	// Calling it twice panics;
	// Declarations are never mutated after population.
	stamp(mod *Module, qualifiedName string)
}

// Base carries the fields common to every Declaration: its local name and
// the one-shot owning-Module / qualified-name stamp.
type Base struct {
	LocalName string

	module        *Module
	qualifiedName string
	stamped       bool
}

func (b *Base) Name() string          { return b.LocalName }
func (b *Base) QualifiedName() string { return b.qualifiedName }
func (b *Base) Module() *Module       { return b.module }

func (b *Base) stamp(mod *Module, qualifiedName string) {
	if b.stamped {
		panic("model: declaration stamped twice: " + b.qualifiedName)
	}
	b.module = mod
	b.qualifiedName = qualifiedName
	b.stamped = true
}

// Stamp attaches the owning Module and fully-qualified name to decl. It
// is the only way to set them: Declarations are never mutated after
// population, and it panics if called a second time on the
// same Declaration.
func Stamp(decl Declaration, mod *Module, qualifiedName string) {
	decl.stamp(mod, qualifiedName)
}

func (*EnumDecl) isDeclaration()      {}
func (*ConstantDecl) isDeclaration()  {}
func (*AliasDecl) isDeclaration()     {}
func (*CallbackDecl) isDeclaration()  {}
func (*FunctionDecl) isDeclaration()  {}
func (*RecordDecl) isDeclaration()    {}
func (*UnionDecl) isDeclaration()     {}
func (*ClassDecl) isDeclaration()     {}
func (*InterfaceDecl) isDeclaration() {}

// EnumDecl wraps a <enumeration> or <bitfield>; IsBitfield distinguishes
// them since GIR gives both an identical shape.
type EnumDecl struct {
	Base
	GIR        *gir.Enumeration
	IsBitfield bool
}

func (d *EnumDecl) Kind() Kind {
	if d.IsBitfield {
		return KindBitfield
	}
	return KindEnumeration
}

type ConstantDecl struct {
	Base
	GIR *gir.Constant
}

func (*ConstantDecl) Kind() Kind { return KindConstant }

type AliasDecl struct {
	Base
	GIR *gir.Alias
}

func (*AliasDecl) Kind() Kind { return KindAlias }

type CallbackDecl struct {
	Base
	GIR *gir.Callback
}

func (*CallbackDecl) Kind() Kind { return KindCallback }

type FunctionDecl struct {
	Base
	GIR *gir.Function
}

func (*FunctionDecl) Kind() Kind { return KindFunction }

// RecordDecl wraps a <record>. GTypeStructFor holds the simple name of
// the class this record supplies static methods for, taken verbatim from
// glib:is-gtype-struct-for; empty when the record is a plain boxed type.
type RecordDecl struct {
	Base
	GIR           *gir.Record
	GTypeStructFor string
}

func (*RecordDecl) Kind() Kind { return KindRecord }

type UnionDecl struct {
	Base
	GIR *gir.Union
}

func (*UnionDecl) Kind() Kind { return KindUnion }

// ClassDecl wraps a <class>. Parent and Implements are copied verbatim
// from the GIR attributes (possibly unqualified, same-module names);
// internal/inheritance is responsible for qualifying them.
type ClassDecl struct {
	Base
	GIR        *gir.Class
	Parent     string   // may be empty for the root object class
	Implements []string
}

func (*ClassDecl) Kind() Kind { return KindClass }

// InterfaceDecl wraps a <interface>. Prerequisite is the single
// prerequisite name (GIR allows only one), possibly
// empty.
type InterfaceDecl struct {
	Base
	GIR          *gir.Interface
	Prerequisite string
}

func (*InterfaceDecl) Kind() Kind { return KindInterface }

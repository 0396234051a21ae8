// Package gir decodes GObject Introspection Repository XML documents into
// a typed tree. It knows nothing about name resolution, type lowering, or
// inheritance; that belongs to internal/model and friends. This package
// is purely an XML parser for the GIR schema.
package gir

import "encoding/xml"

// Repository is the root element of one GIR document.
type Repository struct {
	XMLName   xml.Name  `xml:"repository"`
	Version   string    `xml:"version,attr"`
	Includes  []Include `xml:"include"`
	Namespace Namespace `xml:"namespace"`
}

// Include names another namespace this document depends on.
type Include struct {
	Name    string `xml:"name,attr"`
	Version string `xml:"version,attr"`
}

// Namespace is the single namespace a GIR document declares.
type Namespace struct {
	Name          string        `xml:"name,attr"`
	Version       string        `xml:"version,attr"`
	SharedLibrary string        `xml:"shared-library,attr"`
	CPrefix       string        `xml:"http://www.gtk.org/introspection/c/1.0 prefix,attr"`

	Enumerations []Enumeration `xml:"enumeration"`
	Bitfields    []Enumeration `xml:"bitfield"`
	Constants    []Constant    `xml:"constant"`
	Aliases      []Alias       `xml:"alias"`
	Callbacks    []Callback    `xml:"callback"`
	Functions    []Function    `xml:"function"`
	Records      []Record      `xml:"record"`
	Unions       []Union       `xml:"union"`
	Classes      []Class       `xml:"class"`
	Interfaces   []Interface   `xml:"interface"`
}

// Introspectable returns whether a construct whose raw attribute value is
// given should be inserted into the SymbolTable. A bare absent attribute
// defaults to true; only an explicit "0" excludes it.
func Introspectable(raw string) bool {
	return raw != "0"
}

// Enumeration covers both <enumeration> and <bitfield>; GIR gives them an
// identical shape so the core treats Bitfield as Enumeration with a tag.
type Enumeration struct {
	Name           string   `xml:"name,attr"`
	Introspectable string   `xml:"introspectable,attr"`
	CType          string   `xml:"http://www.gtk.org/introspection/c/1.0 type,attr"`
	Doc            string   `xml:"doc"`
	Members        []Member `xml:"member"`
}

type Member struct {
	Name        string `xml:"name,attr"`
	Value       string `xml:"value,attr"`
	GlibNick    string `xml:"http://www.gtk.org/introspection/glib/1.0 nick,attr"`
	CIdentifier string `xml:"http://www.gtk.org/introspection/c/1.0 identifier,attr"`
}

type Constant struct {
	Name           string `xml:"name,attr"`
	Introspectable string `xml:"introspectable,attr"`
	Value          string `xml:"value,attr"`
	Type           Type   `xml:"type"`
}

type Alias struct {
	Name           string `xml:"name,attr"`
	Introspectable string `xml:"introspectable,attr"`
	CType          string `xml:"http://www.gtk.org/introspection/c/1.0 type,attr"`
	Type           Type   `xml:"type"`
}

type Callback struct {
	Name           string      `xml:"name,attr"`
	Introspectable string      `xml:"introspectable,attr"`
	ReturnValue    ReturnValue `xml:"return-value"`
	Parameters     Parameters  `xml:"parameters"`
}

type Function struct {
	Name           string      `xml:"name,attr"`
	Introspectable string      `xml:"introspectable,attr"`
	CIdentifier    string      `xml:"http://www.gtk.org/introspection/c/1.0 identifier,attr"`
	Shadows        string      `xml:"shadows,attr"`
	ShadowedBy     string      `xml:"shadowed-by,attr"`
	Doc            string      `xml:"doc"`
	ReturnValue    ReturnValue `xml:"return-value"`
	Parameters     Parameters  `xml:"parameters"`
}

type Record struct {
	Name               string     `xml:"name,attr"`
	Introspectable     string     `xml:"introspectable,attr"`
	CType              string     `xml:"http://www.gtk.org/introspection/c/1.0 type,attr"`
	GlibIsGTypeStructFor string   `xml:"http://www.gtk.org/introspection/glib/1.0 is-gtype-struct-for,attr"`
	Fields             []Field    `xml:"field"`
	Methods            []Function `xml:"method"`
	Functions          []Function `xml:"function"`
	Constructors       []Function `xml:"constructor"`
}

type Union struct {
	Name           string     `xml:"name,attr"`
	Introspectable string     `xml:"introspectable,attr"`
	Fields         []Field    `xml:"field"`
	Methods        []Function `xml:"method"`
	Functions      []Function `xml:"function"`
}

type Class struct {
	Name           string          `xml:"name,attr"`
	Introspectable string          `xml:"introspectable,attr"`
	Parent         string          `xml:"parent,attr"`
	Abstract       string          `xml:"abstract,attr"`
	Implements     []Implements    `xml:"implements"`
	Fields         []Field         `xml:"field"`
	Properties     []Property      `xml:"property"`
	Methods        []Function      `xml:"method"`
	VirtualMethods []VirtualMethod `xml:"virtual-method"`
	Constructors   []Function      `xml:"constructor"`
	Functions      []Function      `xml:"function"`
	Signals        []Signal        `xml:"http://www.gtk.org/introspection/glib/1.0 signal"`
}

type Interface struct {
	Name           string          `xml:"name,attr"`
	Introspectable string          `xml:"introspectable,attr"`
	Prerequisites  []Prerequisite  `xml:"prerequisite"`
	Properties     []Property      `xml:"property"`
	Methods        []Function      `xml:"method"`
	VirtualMethods []VirtualMethod `xml:"virtual-method"`
	Functions      []Function      `xml:"function"`
	Signals        []Signal        `xml:"http://www.gtk.org/introspection/glib/1.0 signal"`
}

type Implements struct {
	Name string `xml:"name,attr"`
}

type Prerequisite struct {
	Name string `xml:"name,attr"`
}

type Property struct {
	Name           string `xml:"name,attr"`
	Introspectable string `xml:"introspectable,attr"`
	Writable       string `xml:"writable,attr"`
	ConstructOnly  string `xml:"construct-only,attr"`
	Private        string `xml:"private,attr"`
	Type           Type   `xml:"type"`
}

type Field struct {
	Name           string `xml:"name,attr"`
	Introspectable string `xml:"introspectable,attr"`
	Private        string `xml:"private,attr"`
	Type           Type   `xml:"type"`
}

type VirtualMethod struct {
	Name           string      `xml:"name,attr"`
	Introspectable string      `xml:"introspectable,attr"`
	ReturnValue    ReturnValue `xml:"return-value"`
	Parameters     Parameters  `xml:"parameters"`
}

type Signal struct {
	Name           string      `xml:"name,attr"`
	Introspectable string      `xml:"introspectable,attr"`
	ReturnValue    ReturnValue `xml:"return-value"`
	Parameters     Parameters  `xml:"parameters"`
}

type Parameters struct {
	InstanceParameter *Parameter  `xml:"instance-parameter"`
	Parameter         []Parameter `xml:"parameter"`
}

type Parameter struct {
	Name        string     `xml:"name,attr"`
	Direction   string     `xml:"direction,attr"`
	Nullable    string     `xml:"nullable,attr"`
	AllowNone   string     `xml:"allow-none,attr"`
	Optional    string     `xml:"optional,attr"`
	Closure     string     `xml:"closure,attr"`
	Destroy     string     `xml:"destroy,attr"`
	CType       string     `xml:"http://www.gtk.org/introspection/c/1.0 type,attr"`
	Type        *Type      `xml:"type"`
	Array       *ArrayType `xml:"array"`
	VarArgs     *struct{}  `xml:"varargs"`
}

type ReturnValue struct {
	Nullable string     `xml:"nullable,attr"`
	Type     *Type      `xml:"type"`
	Array    *ArrayType `xml:"array"`
}

type ArrayType struct {
	Length         string `xml:"length,attr"`
	ZeroTerminated string `xml:"zero-terminated,attr"`
	CType          string `xml:"http://www.gtk.org/introspection/c/1.0 type,attr"`
	Name           string `xml:"name,attr"`
	ElementType    *Type  `xml:"type"`
}

// Type is either a plain named type or a nested callback/array; the
// resolver (internal/typeresolve) is the only consumer that interprets
// the combination of fields.
type Type struct {
	Name     string    `xml:"name,attr"`
	CType    string    `xml:"http://www.gtk.org/introspection/c/1.0 type,attr"`
	Callback *Callback `xml:"callback"`
}

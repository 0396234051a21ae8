// Package synth implements the MemberSynthesizer: turning one class
// or interface view into an ordered sequence of member fragments, ready
// for the OverloadReconciler (internal/reconcile) and NamespaceEmitter
// (internal/emit) to consume.
package synth

import (
	"fmt"

	"github.com/gir-project/girgen/internal/diag"
	"github.com/gir-project/girgen/internal/gir"
	"github.com/gir-project/girgen/internal/inheritance"
	"github.com/gir-project/girgen/internal/member"
	"github.com/gir-project/girgen/internal/model"
	"github.com/gir-project/girgen/internal/nametransform"
	"github.com/gir-project/girgen/internal/reconcile"
	"github.com/gir-project/girgen/internal/symboltable"
	"github.com/gir-project/girgen/internal/typeresolve"
)

// Synthesizer is the MemberSynthesizer. It is stateless between calls;
// all per-class scratch state (LocalNameSet, the reconciler's fnMap) is
// created fresh inside ClassView.
type Synthesizer struct {
	table    *symboltable.SymbolTable
	idx      *inheritance.Index
	resolver *typeresolve.Resolver
	sink     *diag.Sink
}

// New builds a Synthesizer. table and idx must already be fully
// populated; the MemberSynthesizer never mutates either.
func New(table *symboltable.SymbolTable, idx *inheritance.Index, resolver *typeresolve.Resolver, sink *diag.Sink) *Synthesizer {
	return &Synthesizer{table: table, idx: idx, resolver: resolver, sink: sink}
}

// ClassView is the ordered, fully reconciled fragment sequence for one
// class: construct-props carrier, fields, properties, instance methods,
// virtual methods, signals/signal-helpers, constructor/static carrier
//.
func (s *Synthesizer) ClassView(cls *model.ClassDecl) []member.Fragment {
	mod := cls.Module()
	qualified := cls.QualifiedName()
	names := model.NewLocalNameSet()

	var out []member.Fragment
	out = append(out, s.constructPropsCarrier(cls)...)
	out = append(out, s.renderFields(mod, cls.GIR.Fields, names)...)
	out = append(out, s.renderProperties(mod, cls.GIR.Properties, names)...)

	ancestorProps, fnMap := s.gatherInherited(mod, qualified)

	directMethods := s.renderMethods(mod, cls.GIR.Methods)
	reconciler := reconcile.New(s.sink)
	out = append(out, reconciler.Reconcile(cls.Name(), mod.IsRootObjectModule() && cls.Name() == "Object", directMethods, fnMap, ancestorProps, names)...)

	out = append(out, s.renderVirtualMethods(mod, cls.GIR.VirtualMethods, names)...)

	if s.isRootObjectDescendant(mod, qualified) {
		out = append(out, s.signalHelpers(cls)...)
	}

	out = append(out, s.staticCarrier(cls)...)
	return out
}

// InterfaceView is the analogous, simpler view for an interface: no
// construct props and no constructor carrier. Only the interface's own
// properties, methods and virtual methods are rendered; members of its
// prerequisite are not collected and no overload reconciliation runs.
func (s *Synthesizer) InterfaceView(iface *model.InterfaceDecl) []member.Fragment {
	mod := iface.Module()
	names := model.NewLocalNameSet()

	var out []member.Fragment
	out = append(out, s.renderProperties(mod, iface.GIR.Properties, names)...)
	out = append(out, s.renderMethods(mod, iface.GIR.Methods)...)
	out = append(out, s.renderVirtualMethods(mod, iface.GIR.VirtualMethods, names)...)
	return out
}

func (s *Synthesizer) isRootObjectDescendant(mod *model.Module, qualifiedName string) bool {
	if qualifiedName == inheritance.RootObjectQualifiedName {
		return true
	}
	isDescendant := false
	s.idx.ClosureWalk(s.sink, mod, qualifiedName, func(ancestor string) {
		if ancestor == inheritance.RootObjectQualifiedName {
			isDescendant = true
		}
	})
	return isDescendant
}

// gatherInherited walks qualifiedName's ancestor classes and every
// interface reachable from it, collecting each source's own property
// names (for the method/property-collision check) and its own methods
// (for fnMap, keyed by rendered method name then owner qualified name).
func (s *Synthesizer) gatherInherited(mod *model.Module, qualifiedName string) (map[string]bool, map[string]map[string]member.Fragment) {
	propertyNames := make(map[string]bool)
	fnMap := make(map[string]map[string]member.Fragment)

	addSource := func(ownerQualified string) {
		decl, ok := s.table.Lookup(ownerQualified)
		if !ok {
			return
		}
		var props []gir.Property
		var methods []gir.Function
		var mod *model.Module
		switch d := decl.(type) {
		case *model.ClassDecl:
			props, methods, mod = d.GIR.Properties, d.GIR.Methods, d.Module()
		case *model.InterfaceDecl:
			props, methods, mod = d.GIR.Properties, d.GIR.Methods, d.Module()
		default:
			return
		}
		for _, p := range props {
			if !gir.Introspectable(p.Introspectable) {
				continue
			}
			propertyNames[nametransform.PropertyName(p.Name, false)] = true
		}
		for _, m := range methods {
			if !gir.Introspectable(m.Introspectable) || m.ShadowedBy != "" {
				continue
			}
			f := s.renderMethod(mod, m)
			f.SourceClass = ownerQualified
			if fnMap[f.Name] == nil {
				fnMap[f.Name] = make(map[string]member.Fragment)
			}
			fnMap[f.Name][ownerQualified] = f
		}
	}

	visitInterfaces := func(owner string) {
		s.idx.ForEachInterface(owner, true, func(iface string) {
			addSource(iface)
		})
	}

	visitInterfaces(qualifiedName)
	s.idx.ClosureWalk(s.sink, mod, qualifiedName, func(ancestor string) {
		addSource(ancestor)
		visitInterfaces(ancestor)
	})

	return propertyNames, fnMap
}

// FunctionView renders one module-level <function> declaration the same
// way a method would be rendered, for internal/emit's top-level function
// section.
func (s *Synthesizer) FunctionView(f *model.FunctionDecl) string {
	return "function " + s.renderMethod(f.Module(), *f.GIR).Text + ";"
}

func (s *Synthesizer) renderMethods(mod *model.Module, fns []gir.Function) []member.Fragment {
	var out []member.Fragment
	for _, f := range fns {
		if !gir.Introspectable(f.Introspectable) || f.ShadowedBy != "" {
			continue
		}
		out = append(out, s.renderMethod(mod, f))
	}
	return out
}

func (s *Synthesizer) renderMethod(mod *model.Module, f gir.Function) member.Fragment {
	name := f.Name
	if f.Shadows != "" {
		name = f.Shadows
	}
	fname := nametransform.FunctionName(name)
	sig := buildSignature(f.Parameters, f.ReturnValue)
	text := s.renderSignature(s.sink, mod, fname, sig)
	return member.Fragment{Name: fname, Text: text, Signature: reconcile.CanonicalSignature(text)}
}

func (s *Synthesizer) renderVirtualMethods(mod *model.Module, vms []gir.VirtualMethod, names *model.LocalNameSet) []member.Fragment {
	var out []member.Fragment
	for _, vm := range vms {
		if !gir.Introspectable(vm.Introspectable) {
			continue
		}
		fname := "vfunc_" + nametransform.FunctionName(vm.Name)
		if !names.Add(fname) {
			continue
		}
		sig := buildSignature(vm.Parameters, vm.ReturnValue)
		text := s.renderSignature(s.sink, mod, fname, sig)
		out = append(out, member.Fragment{Name: fname, Text: text, Signature: reconcile.CanonicalSignature(text), IsVirtual: true})
	}
	return out
}

func (s *Synthesizer) renderFields(mod *model.Module, fields []gir.Field, names *model.LocalNameSet) []member.Fragment {
	var out []member.Fragment
	for _, f := range fields {
		if !gir.Introspectable(f.Introspectable) || f.Private == "1" {
			continue
		}
		name := nametransform.FieldName(f.Name)
		if !names.Add(name) {
			continue
		}
		ref := model.FromGIRType(&f.Type, nil, false)
		t := s.resolver.Resolve(s.sink, mod, ref, false)
		out = append(out, member.Fragment{Name: name, Text: fmt.Sprintf("%s: %s", name, t.String())})
	}
	return out
}

func (s *Synthesizer) renderProperties(mod *model.Module, props []gir.Property, names *model.LocalNameSet) []member.Fragment {
	var out []member.Fragment
	for _, p := range props {
		if !gir.Introspectable(p.Introspectable) || p.ConstructOnly == "1" {
			continue
		}
		name := nametransform.PropertyName(p.Name, false)
		if !names.Add(name) {
			continue
		}
		ref := model.FromGIRType(&p.Type, nil, false)
		t := s.resolver.Resolve(s.sink, mod, ref, false)
		text := fmt.Sprintf("%s: %s", name, t.String())
		if p.Writable == "0" {
			text = "readonly " + text
		}
		out = append(out, member.Fragment{Name: name, Text: text})
	}
	return out
}

// constructPropsCarrier renders the construct-only properties of cls as
// a single "<Name>ConstructProps" object-literal-type fragment, used by
// the constructor overload that accepts construction properties.
func (s *Synthesizer) constructPropsCarrier(cls *model.ClassDecl) []member.Fragment {
	var fields []string
	for _, p := range cls.GIR.Properties {
		if !gir.Introspectable(p.Introspectable) || p.ConstructOnly != "1" {
			continue
		}
		name := nametransform.PropertyName(p.Name, true)
		ref := model.FromGIRType(&p.Type, nil, false)
		t := s.resolver.Resolve(s.sink, cls.Module(), ref, false)
		fields = append(fields, fmt.Sprintf("%q: %s", name, t.String()))
	}
	if len(fields) == 0 {
		return nil
	}
	carrierName := cls.Name() + "ConstructProps"
	text := fmt.Sprintf("interface %s { %s }", carrierName, joinComma(fields))
	return []member.Fragment{{Name: carrierName, Text: text}}
}

// staticCarrier renders every <constructor> as a static factory, the
// "new" constructor's extra colon-style arrow overload, and, when a
// same-namespace record's glib:is-gtype-struct-for names this class,
// that record's own <method> children as additional static methods.
func (s *Synthesizer) staticCarrier(cls *model.ClassDecl) []member.Fragment {
	mod := cls.Module()
	var out []member.Fragment

	for _, ctor := range cls.GIR.Constructors {
		if !gir.Introspectable(ctor.Introspectable) {
			continue
		}
		fname := nametransform.FunctionName(ctor.Name)
		sig := buildSignature(ctor.Parameters, gir.ReturnValue{Type: &gir.Type{Name: cls.QualifiedName()}})
		text := "static " + s.renderSignature(s.sink, mod, fname, sig)
		out = append(out, member.Fragment{Name: fname, Text: text})

		if ctor.Name == "new" {
			params := s.paramList(s.sink, mod, sig)
			out = append(out, member.Fragment{
				Name: fname,
				Text: fmt.Sprintf("static new: (%s) => %s;", params, cls.Name()),
			})
		}
	}

	s.table.Range(func(_ string, decl model.Declaration) bool {
		rec, ok := decl.(*model.RecordDecl)
		if !ok || rec.Module() != mod || rec.GTypeStructFor != cls.Name() {
			return true
		}
		for _, m := range rec.GIR.Methods {
			if !gir.Introspectable(m.Introspectable) {
				continue
			}
			fname := nametransform.FunctionName(m.Name)
			sig := buildSignature(m.Parameters, m.ReturnValue)
			text := "static " + s.renderSignature(s.sink, mod, fname, sig)
			out = append(out, member.Fragment{Name: fname, Text: text})
		}
		return true
	})

	return out
}

func joinComma(parts []string) string {
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += "; "
		}
		out += p
	}
	return out
}

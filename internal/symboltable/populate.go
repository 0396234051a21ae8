package symboltable

import (
	"github.com/gir-project/girgen/internal/diag"
	"github.com/gir-project/girgen/internal/gir"
	"github.com/gir-project/girgen/internal/model"
)

// Populate walks every GIR construct in mod's namespace and inserts each
// introspectable one into t, skipping any construct whose introspectable
// attribute is explicitly "0".
func Populate(sink *diag.Sink, t *SymbolTable, mod *model.Module) {
	ns := &mod.Repository.Namespace
	qualify := func(name string) string { return mod.Namespace + "." + name }

	for i := range ns.Enumerations {
		e := &ns.Enumerations[i]
		if !gir.Introspectable(e.Introspectable) {
			continue
		}
		decl := &model.EnumDecl{Base: model.Base{LocalName: e.Name}, GIR: e}
		t.Insert(sink, mod, decl, qualify(e.Name))
	}
	for i := range ns.Bitfields {
		e := &ns.Bitfields[i]
		if !gir.Introspectable(e.Introspectable) {
			continue
		}
		decl := &model.EnumDecl{Base: model.Base{LocalName: e.Name}, GIR: e, IsBitfield: true}
		t.Insert(sink, mod, decl, qualify(e.Name))
	}
	for i := range ns.Constants {
		c := &ns.Constants[i]
		if !gir.Introspectable(c.Introspectable) {
			continue
		}
		decl := &model.ConstantDecl{Base: model.Base{LocalName: c.Name}, GIR: c}
		t.Insert(sink, mod, decl, qualify(c.Name))
	}
	for i := range ns.Aliases {
		a := &ns.Aliases[i]
		if !gir.Introspectable(a.Introspectable) {
			continue
		}
		decl := &model.AliasDecl{Base: model.Base{LocalName: a.Name}, GIR: a}
		t.Insert(sink, mod, decl, qualify(a.Name))
	}
	for i := range ns.Callbacks {
		c := &ns.Callbacks[i]
		if !gir.Introspectable(c.Introspectable) {
			continue
		}
		decl := &model.CallbackDecl{Base: model.Base{LocalName: c.Name}, GIR: c}
		t.Insert(sink, mod, decl, qualify(c.Name))
	}
	for i := range ns.Functions {
		f := &ns.Functions[i]
		if !gir.Introspectable(f.Introspectable) {
			continue
		}
		decl := &model.FunctionDecl{Base: model.Base{LocalName: f.Name}, GIR: f}
		t.Insert(sink, mod, decl, qualify(f.Name))
	}
	for i := range ns.Records {
		r := &ns.Records[i]
		if !gir.Introspectable(r.Introspectable) {
			continue
		}
		decl := &model.RecordDecl{
			Base:           model.Base{LocalName: r.Name},
			GIR:            r,
			GTypeStructFor: r.GlibIsGTypeStructFor,
		}
		t.Insert(sink, mod, decl, qualify(r.Name))
	}
	for i := range ns.Unions {
		u := &ns.Unions[i]
		if !gir.Introspectable(u.Introspectable) {
			continue
		}
		decl := &model.UnionDecl{Base: model.Base{LocalName: u.Name}, GIR: u}
		t.Insert(sink, mod, decl, qualify(u.Name))
	}
	for i := range ns.Classes {
		c := &ns.Classes[i]
		if !gir.Introspectable(c.Introspectable) {
			continue
		}
		implements := make([]string, len(c.Implements))
		for j, impl := range c.Implements {
			implements[j] = impl.Name
		}
		decl := &model.ClassDecl{
			Base:       model.Base{LocalName: c.Name},
			GIR:        c,
			Parent:     c.Parent,
			Implements: implements,
		}
		t.Insert(sink, mod, decl, qualify(c.Name))
	}
	for i := range ns.Interfaces {
		iface := &ns.Interfaces[i]
		if !gir.Introspectable(iface.Introspectable) {
			continue
		}
		prereq := ""
		if len(iface.Prerequisites) > 0 {
			prereq = iface.Prerequisites[0].Name
		}
		decl := &model.InterfaceDecl{
			Base:         model.Base{LocalName: iface.Name},
			GIR:          iface,
			Prerequisite: prereq,
		}
		t.Insert(sink, mod, decl, qualify(iface.Name))
	}
}

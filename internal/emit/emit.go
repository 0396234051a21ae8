// Package emit implements the NamespaceEmitter: the final pass that
// sequences every declaration of one Module into the printed
// declaration-file text.
package emit

import (
	"fmt"
	"strings"

	"github.com/gir-project/girgen/internal/config"
	"github.com/gir-project/girgen/internal/diag"
	"github.com/gir-project/girgen/internal/gir"
	"github.com/gir-project/girgen/internal/member"
	"github.com/gir-project/girgen/internal/model"
	"github.com/gir-project/girgen/internal/nametransform"
	"github.com/gir-project/girgen/internal/render"
	"github.com/gir-project/girgen/internal/synth"
	"github.com/gir-project/girgen/internal/typeresolve"
)

// Emitter sequences one Module's declarations into printed text.
type Emitter struct {
	resolver    *typeresolve.Resolver
	synthesizer *synth.Synthesizer
	sink        *diag.Sink
	cfg         config.Config
}

// New builds an Emitter. resolver and synthesizer must be built against
// the same, already-populated SymbolTable/InheritanceIndex.
func New(resolver *typeresolve.Resolver, synthesizer *synth.Synthesizer, sink *diag.Sink, cfg config.Config) *Emitter {
	return &Emitter{resolver: resolver, synthesizer: synthesizer, sink: sink, cfg: cfg}
}

// EmitModule renders mod's full declaration file. templateOverride, when
// non-empty, is concatenated verbatim between the interface and class
// sections.
func (e *Emitter) EmitModule(mod *model.Module, templateOverride string) string {
	ns := &mod.Repository.Namespace
	var b strings.Builder

	header, err := render.Header(e.headerData(mod))
	if err != nil {
		// The template is a fixed literal compiled into the binary; a
		// parse/execute failure here can only be a programming error.
		panic(err)
	}
	b.WriteString(header)

	var body strings.Builder
	e.writeEnums(&body, ns.Enumerations)
	e.writeEnums(&body, ns.Bitfields)
	e.writeConstants(&body, mod, ns.Constants)
	e.writeFunctions(&body, mod, ns.Functions)
	e.writeCallbacks(&body, mod, ns.Callbacks)
	e.writeInterfaces(&body, mod, ns.Interfaces)

	if templateOverride != "" {
		body.WriteString(templateOverride)
		body.WriteString("\n")
	}

	e.writeClasses(&body, mod, ns.Classes)
	e.writeRecords(&body, mod, ns.Records)
	e.writeUnions(&body, mod, ns.Unions)
	e.writeAliases(&body, mod, ns.Aliases)

	if e.cfg.BuildType == config.BuildTypeTypes {
		fmt.Fprintf(&b, "declare namespace %s {\n", nametransform.Namespace(mod.Namespace))
		b.WriteString(body.String())
		b.WriteString("}\n")
	} else {
		b.WriteString(body.String())
	}

	return render.PrettyPrint(b.String())
}

// headerData builds the template input for the header/import block:
// every direct dependency, plus an always-on GObject import for any
// module other than GObject itself.
func (e *Emitter) headerData(mod *model.Module) render.HeaderData {
	data := render.HeaderData{Namespace: mod.Repository.Namespace.Name, Version: mod.Version}
	seen := make(map[string]bool)
	for _, dep := range mod.Direct {
		pkg := nametransform.Namespace(dep.Namespace)
		if seen[pkg] {
			continue
		}
		seen[pkg] = true
		data.Imports = append(data.Imports, render.ImportEntry{Package: pkg})
	}
	if !mod.IsRootObjectModule() && !seen["GObject"] {
		data.Imports = append(data.Imports, render.ImportEntry{Package: "GObject"})
	}
	return data
}

// writeEnums renders both <enumeration> and <bitfield> elements
// identically: GIR gives them the same shape, and the target surface
// only needs a numeric enum either way.
func (e *Emitter) writeEnums(b *strings.Builder, enums []gir.Enumeration) {
	for _, en := range enums {
		if !gir.Introspectable(en.Introspectable) {
			continue
		}
		fmt.Fprintf(b, "export enum %s {\n", nametransform.TypeName(en.Name))
		for _, m := range en.Members {
			if nametransform.StartsWithDigit(m.Name) {
				fmt.Fprintf(b, "  // %s: invalid, starts with a number\n", m.Name)
				continue
			}
			fmt.Fprintf(b, "  %s = %s,\n", nametransform.EnumValue(m.Name), m.Value)
		}
		b.WriteString("}\n\n")
	}
}

func (e *Emitter) writeConstants(b *strings.Builder, mod *model.Module, constants []gir.Constant) {
	seen := model.NewConstantNameSet()
	for _, c := range constants {
		if !gir.Introspectable(c.Introspectable) {
			continue
		}
		name := nametransform.Constant(c.Name)
		if !seen.Claim(name) {
			e.sink.Report(diag.DuplicateConstantExport, mod.PackageName(),
				fmt.Sprintf("constant %q exported twice, keeping first", name))
			continue
		}
		ref := model.FromGIRType(&c.Type, nil, false)
		t := e.resolver.Resolve(e.sink, mod, ref, false)
		fmt.Fprintf(b, "export const %s: %s;\n", name, t.String())
	}
	b.WriteString("\n")
}

func (e *Emitter) writeFunctions(b *strings.Builder, mod *model.Module, fns []gir.Function) {
	for i := range fns {
		f := &fns[i]
		if !gir.Introspectable(f.Introspectable) || f.ShadowedBy != "" {
			continue
		}
		decl := &model.FunctionDecl{Base: model.Base{LocalName: f.Name}, GIR: f}
		model.Stamp(decl, mod, mod.Namespace+"."+f.Name)
		b.WriteString("export ")
		b.WriteString(e.synthesizer.FunctionView(decl))
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

func (e *Emitter) writeCallbacks(b *strings.Builder, mod *model.Module, callbacks []gir.Callback) {
	for i := range callbacks {
		cb := &callbacks[i]
		if !gir.Introspectable(cb.Introspectable) {
			continue
		}
		fn := e.resolver.ResolveCallback(e.sink, mod, cb, false)
		fmt.Fprintf(b, "export type %s = %s;\n", nametransform.TypeName(cb.Name), fn.String())
	}
	b.WriteString("\n")
}

func (e *Emitter) writeInterfaces(b *strings.Builder, mod *model.Module, ifaces []gir.Interface) {
	for i := range ifaces {
		iface := &ifaces[i]
		if !gir.Introspectable(iface.Introspectable) {
			continue
		}
		decl := &model.InterfaceDecl{Base: model.Base{LocalName: iface.Name}, GIR: iface}
		prereq := ""
		if len(iface.Prerequisites) > 0 {
			prereq = iface.Prerequisites[0].Name
		}
		decl.Prerequisite = prereq
		model.Stamp(decl, mod, mod.Namespace+"."+iface.Name)

		fmt.Fprintf(b, "export interface %s {\n", nametransform.TypeName(iface.Name))
		for _, frag := range e.synthesizer.InterfaceView(decl) {
			fmt.Fprintf(b, "  %s;\n", frag.Text)
		}
		b.WriteString("}\n\n")
	}
}

func (e *Emitter) writeClasses(b *strings.Builder, mod *model.Module, classes []gir.Class) {
	for i := range classes {
		c := &classes[i]
		if !gir.Introspectable(c.Introspectable) {
			continue
		}
		decl := &model.ClassDecl{Base: model.Base{LocalName: c.Name}, GIR: c, Parent: c.Parent}
		for _, impl := range c.Implements {
			decl.Implements = append(decl.Implements, impl.Name)
		}
		model.Stamp(decl, mod, mod.Namespace+"."+c.Name)
		frags := e.synthesizer.ClassView(decl)

		if e.cfg.Inheritance {
			e.writeClassAsInterfaceAndConstructor(b, mod, c, decl, frags)
			continue
		}

		header := "class " + nametransform.TypeName(c.Name)
		if c.Parent != "" {
			header += " extends " + nametransform.TypeName(c.Parent)
		}
		if len(decl.Implements) > 0 {
			names := make([]string, len(decl.Implements))
			for j, impl := range decl.Implements {
				names[j] = nametransform.TypeName(impl)
			}
			header += " implements " + strings.Join(names, ", ")
		}
		fmt.Fprintf(b, "export %s {\n", header)
		for _, frag := range frags {
			fmt.Fprintf(b, "  %s;\n", frag.Text)
		}
		b.WriteString("}\n\n")

		if !mod.IsRootObjectModule() {
			fmt.Fprintf(b, "export type %sType = number;\n\n", nametransform.TypeName(c.Name))
		}
	}
}

// writeClassAsInterfaceAndConstructor renders a class the alternate way
// config.Inheritance selects: an instance-shape interface extending its
// parent and implemented interfaces directly (TypeScript interfaces can
// extend several bases at once, sidestepping the single-inheritance
// limit of an actual class), plus a separate const carrying the static
// surface (the constructor overloads and GType-struct static methods
// staticCarrier produced) a class declaration would otherwise hold.
func (e *Emitter) writeClassAsInterfaceAndConstructor(b *strings.Builder, mod *model.Module, c *gir.Class, decl *model.ClassDecl, frags []member.Fragment) {
	var instance, static []member.Fragment
	for _, frag := range frags {
		if strings.HasPrefix(frag.Text, "static ") {
			static = append(static, frag)
		} else {
			instance = append(instance, frag)
		}
	}

	name := nametransform.TypeName(c.Name)
	header := "export interface " + name
	var bases []string
	if c.Parent != "" {
		bases = append(bases, nametransform.TypeName(c.Parent))
	}
	for _, impl := range decl.Implements {
		bases = append(bases, nametransform.TypeName(impl))
	}
	if len(bases) > 0 {
		header += " extends " + strings.Join(bases, ", ")
	}
	fmt.Fprintf(b, "%s {\n", header)
	for _, frag := range instance {
		fmt.Fprintf(b, "  %s;\n", frag.Text)
	}
	b.WriteString("}\n\n")

	fmt.Fprintf(b, "export const %s: {\n", name)
	for _, frag := range static {
		fmt.Fprintf(b, "  %s;\n", strings.TrimPrefix(frag.Text, "static "))
	}
	b.WriteString("};\n\n")

	if !mod.IsRootObjectModule() {
		fmt.Fprintf(b, "export type %sType = number;\n\n", name)
	}
}

func (e *Emitter) writeRecords(b *strings.Builder, mod *model.Module, records []gir.Record) {
	for _, r := range records {
		if !gir.Introspectable(r.Introspectable) || r.GlibIsGTypeStructFor != "" {
			continue
		}
		fmt.Fprintf(b, "export interface %s {\n", nametransform.TypeName(r.Name))
		for _, f := range r.Fields {
			if !gir.Introspectable(f.Introspectable) || f.Private == "1" {
				continue
			}
			ref := model.FromGIRType(&f.Type, nil, false)
			t := e.resolver.Resolve(e.sink, mod, ref, false)
			fmt.Fprintf(b, "  %s: %s;\n", nametransform.FieldName(f.Name), t.String())
		}
		b.WriteString("}\n\n")
	}
}

func (e *Emitter) writeUnions(b *strings.Builder, mod *model.Module, unions []gir.Union) {
	for _, u := range unions {
		if !gir.Introspectable(u.Introspectable) {
			continue
		}
		fmt.Fprintf(b, "export interface %s {\n", nametransform.TypeName(u.Name))
		for _, f := range u.Fields {
			if !gir.Introspectable(f.Introspectable) || f.Private == "1" {
				continue
			}
			ref := model.FromGIRType(&f.Type, nil, false)
			t := e.resolver.Resolve(e.sink, mod, ref, false)
			fmt.Fprintf(b, "  %s: %s;\n", nametransform.FieldName(f.Name), t.String())
		}
		b.WriteString("}\n\n")
	}
}

func (e *Emitter) writeAliases(b *strings.Builder, mod *model.Module, aliases []gir.Alias) {
	for _, a := range aliases {
		if !gir.Introspectable(a.Introspectable) {
			continue
		}
		if mod.IsRootObjectModule() && a.Name == "Type" {
			continue // the root object module's type-handle alias is suppressed
		}
		ref := model.FromGIRType(&a.Type, nil, false)
		t := e.resolver.Resolve(e.sink, mod, ref, false)
		fmt.Fprintf(b, "export type %s = %s;\n", nametransform.TypeName(a.Name), t.String())
	}
	b.WriteString("\n")
}

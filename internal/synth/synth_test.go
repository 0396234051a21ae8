package synth

import (
	"strings"
	"testing"

	"github.com/gir-project/girgen/internal/config"
	"github.com/gir-project/girgen/internal/diag"
	"github.com/gir-project/girgen/internal/gir"
	"github.com/gir-project/girgen/internal/inheritance"
	"github.com/gir-project/girgen/internal/model"
	"github.com/gir-project/girgen/internal/symboltable"
	"github.com/gir-project/girgen/internal/typeresolve"
)

func buildClassView(t *testing.T, repo *gir.Repository, className string) []string {
	t.Helper()
	mod := model.NewModule(repo)
	sink := diag.NewSink(nil)
	table := symboltable.New()
	symboltable.Populate(sink, table, mod)
	idx := inheritance.Populate(sink, table)
	resolver := typeresolve.New(table, config.EnvironmentGJS)
	synthesizer := New(table, idx, resolver, sink)

	decl, ok := table.Lookup(mod.Namespace + "." + className)
	if !ok {
		t.Fatalf("class %s not found", className)
	}
	frags := synthesizer.ClassView(decl.(*model.ClassDecl))

	texts := make([]string, len(frags))
	for i, f := range frags {
		texts[i] = f.Text
	}
	return texts
}

func TestClassViewRendersFieldsAndMethods(t *testing.T) {
	repo := &gir.Repository{
		Namespace: gir.Namespace{
			Name: "Gtk",
			Classes: []gir.Class{
				{
					Name: "Widget",
					Fields: []gir.Field{
						{Name: "priv_data", Type: gir.Type{Name: "gpointer"}},
					},
					Methods: []gir.Function{
						{Name: "show", ReturnValue: gir.ReturnValue{}},
					},
				},
			},
		},
	}

	texts := buildClassView(t, repo, "Widget")
	joined := strings.Join(texts, "\n")
	if !strings.Contains(joined, "privData: any") {
		t.Fatalf("expected rendered field, got:\n%s", joined)
	}
	if !strings.Contains(joined, "show(): void") {
		t.Fatalf("expected rendered method, got:\n%s", joined)
	}
}

func TestClassViewAppliesOptionalParameterRule(t *testing.T) {
	repo := &gir.Repository{
		Namespace: gir.Namespace{
			Name: "Gtk",
			Classes: []gir.Class{
				{
					Name: "Widget",
					Methods: []gir.Function{
						{
							Name: "setMargins",
							Parameters: gir.Parameters{
								Parameter: []gir.Parameter{
									{Name: "top", Nullable: "1", Type: &gir.Type{Name: "gint"}},
									{Name: "bottom", Type: &gir.Type{Name: "gint"}},
								},
							},
						},
					},
				},
			},
		},
	}

	texts := buildClassView(t, repo, "Widget")
	joined := strings.Join(texts, "\n")
	if !strings.Contains(joined, "top: number, bottom: number") {
		t.Fatalf("expected top to NOT be optional (a required param follows), got:\n%s", joined)
	}
}

// A class that implements no interface directly but descends from a
// parent that does must still surface that interface's members: the
// inheritance closure includes every ancestor's own implements list,
// not only the leaf class's. Leaf declares its own activate with a
// different signature, so the inherited copy surfaces as a false
// overload next to it; a lone unclashing inherited copy is not repeated.
func TestClassViewInheritsInterfaceMembersFromAncestor(t *testing.T) {
	repo := &gir.Repository{
		Namespace: gir.Namespace{
			Name: "Gtk",
			Classes: []gir.Class{
				{Name: "Base"},
				{
					Name:       "Middle",
					Parent:     "Base",
					Implements: []gir.Implements{{Name: "Actionable"}},
				},
				{
					Name:   "Leaf",
					Parent: "Middle",
					Methods: []gir.Function{
						{
							Name: "activate",
							Parameters: gir.Parameters{
								Parameter: []gir.Parameter{{Name: "mode", Type: &gir.Type{Name: "gint"}}},
							},
						},
					},
				},
			},
			Interfaces: []gir.Interface{
				{
					Name: "Actionable",
					Methods: []gir.Function{
						{Name: "activate", ReturnValue: gir.ReturnValue{}},
					},
				},
			},
		},
	}

	texts := buildClassView(t, repo, "Leaf")
	joined := strings.Join(texts, "\n")
	if !strings.Contains(joined, "activate(): void") {
		t.Fatalf("expected Leaf to inherit Actionable.activate through Middle, got:\n%s", joined)
	}
}

func TestClassViewGainsSignalHelpersWhenRootObjectDescendant(t *testing.T) {
	repo := &gir.Repository{
		Namespace: gir.Namespace{
			Name: "GObject",
			Classes: []gir.Class{
				{Name: "Object"},
			},
		},
	}
	mod := model.NewModule(repo)
	sink := diag.NewSink(nil)
	table := symboltable.New()
	symboltable.Populate(sink, table, mod)
	idx := inheritance.Populate(sink, table)
	resolver := typeresolve.New(table, config.EnvironmentGJS)
	synthesizer := New(table, idx, resolver, sink)

	decl, _ := table.Lookup("GObject.Object")
	frags := synthesizer.ClassView(decl.(*model.ClassDecl))

	var found bool
	for _, f := range frags {
		if strings.Contains(f.Text, "disconnect(id: number): void") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected signal helpers on GObject.Object itself, got: %v", frags)
	}
}

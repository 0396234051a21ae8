package symboltable

import (
	"testing"

	"github.com/gir-project/girgen/internal/diag"
	"github.com/gir-project/girgen/internal/gir"
	"github.com/gir-project/girgen/internal/model"
)

func newModule(namespace string, classes []gir.Class, enums []gir.Enumeration) *model.Module {
	repo := &gir.Repository{
		Namespace: gir.Namespace{
			Name:    namespace,
			Version: "1.0",
			Classes: classes,
			Enumerations: enums,
		},
	}
	return model.NewModule(repo)
}

func TestPopulateInsertsIntrospectableConstructs(t *testing.T) {
	mod := newModule("Foo", []gir.Class{
		{Name: "Widget"},
		{Name: "Hidden", Introspectable: "0"},
	}, []gir.Enumeration{
		{Name: "Mode"},
	})

	sink := diag.NewSink(nil)
	table := New()
	Populate(sink, table, mod)

	if table.Len() != 2 {
		t.Fatalf("got %d entries want 2", table.Len())
	}
	if _, ok := table.Lookup("Foo.Widget"); !ok {
		t.Fatal("Foo.Widget not inserted")
	}
	if _, ok := table.Lookup("Foo.Mode"); !ok {
		t.Fatal("Foo.Mode not inserted")
	}
	if _, ok := table.Lookup("Foo.Hidden"); ok {
		t.Fatal("Foo.Hidden should have been skipped (introspectable=0)")
	}
}

func TestPopulateStampsQualifiedNameAndModule(t *testing.T) {
	mod := newModule("Foo", []gir.Class{{Name: "Widget"}}, nil)
	sink := diag.NewSink(nil)
	table := New()
	Populate(sink, table, mod)

	decl, ok := table.Lookup("Foo.Widget")
	if !ok {
		t.Fatal("Foo.Widget not found")
	}
	if decl.QualifiedName() != "Foo.Widget" {
		t.Fatalf("got qualified name %q", decl.QualifiedName())
	}
	if decl.Module() != mod {
		t.Fatal("decl not stamped with its owning module")
	}
}

func TestInsertDuplicateKeepsFirstAndReports(t *testing.T) {
	mod := newModule("Foo", nil, nil)
	sink := diag.NewSink(nil)
	table := New()

	first := &model.ConstantDecl{Base: model.Base{LocalName: "Answer"}}
	second := &model.ConstantDecl{Base: model.Base{LocalName: "Answer"}}

	table.Insert(sink, mod, first, "Foo.Answer")
	table.Insert(sink, mod, second, "Foo.Answer")

	got, _ := table.Lookup("Foo.Answer")
	if got != model.Declaration(first) {
		t.Fatal("second insert should not have replaced the first")
	}
	if sink.CountByKind(diag.DuplicateSymbol) != 1 {
		t.Fatalf("expected one duplicate-symbol diagnostic, got %d", sink.CountByKind(diag.DuplicateSymbol))
	}
}

func TestRangeVisitsInAscendingOrder(t *testing.T) {
	mod := newModule("Foo", []gir.Class{
		{Name: "Zeta"},
		{Name: "Alpha"},
	}, nil)
	sink := diag.NewSink(nil)
	table := New()
	Populate(sink, table, mod)

	var order []string
	table.Range(func(name string, _ model.Declaration) bool {
		order = append(order, name)
		return true
	})
	if len(order) != 2 || order[0] != "Foo.Alpha" || order[1] != "Foo.Zeta" {
		t.Fatalf("got %v, want alphabetical order", order)
	}
}

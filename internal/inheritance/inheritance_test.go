package inheritance

import (
	"testing"

	"github.com/gir-project/girgen/internal/diag"
	"github.com/gir-project/girgen/internal/gir"
	"github.com/gir-project/girgen/internal/model"
	"github.com/gir-project/girgen/internal/symboltable"
	"github.com/google/go-cmp/cmp"
)

func buildTable(t *testing.T) (*symboltable.SymbolTable, *diag.Sink, *model.Module) {
	t.Helper()
	repo := &gir.Repository{
		Namespace: gir.Namespace{
			Name: "Foo",
			Classes: []gir.Class{
				{Name: "Base"},
				{Name: "Middle", Parent: "Base", Implements: []gir.Implements{{Name: "Actionable"}}},
				{Name: "Leaf", Parent: "Middle"},
				{Name: "Dangling", Parent: "Nonexistent"},
			},
			Interfaces: []gir.Interface{
				{Name: "Actionable", Prerequisites: []gir.Prerequisite{{Name: "Base"}}},
			},
		},
	}
	mod := model.NewModule(repo)
	sink := diag.NewSink(nil)
	table := symboltable.New()
	symboltable.Populate(sink, table, mod)
	return table, sink, mod
}

func TestClosureWalkOrdersAncestors(t *testing.T) {
	table, sink, mod := buildTable(t)
	idx := Populate(sink, table)

	var walked []string
	idx.ClosureWalk(sink, mod, "Foo.Leaf", func(ancestor string) {
		walked = append(walked, ancestor)
	})
	if diff := cmp.Diff([]string{"Foo.Middle", "Foo.Base"}, walked); diff != "" {
		t.Fatalf("ancestor order mismatch (-want +got):\n%s", diff)
	}
}

func TestClosureWalkDetectsCycle(t *testing.T) {
	repo := &gir.Repository{
		Namespace: gir.Namespace{
			Name: "Foo",
			Classes: []gir.Class{
				{Name: "A", Parent: "B"},
				{Name: "B", Parent: "A"},
			},
		},
	}
	mod := model.NewModule(repo)
	sink := diag.NewSink(nil)
	table := symboltable.New()
	symboltable.Populate(sink, table, mod)
	idx := Populate(sink, table)

	var walked []string
	idx.ClosureWalk(sink, mod, "Foo.A", func(ancestor string) {
		walked = append(walked, ancestor)
	})
	if len(walked) != 1 || walked[0] != "Foo.B" {
		t.Fatalf("got %v, want [Foo.B] before the cycle is caught", walked)
	}
	if sink.CountByKind(diag.CircularInheritance) != 1 {
		t.Fatalf("expected one circular-inheritance diagnostic, got %d", sink.CountByKind(diag.CircularInheritance))
	}
}

func TestResolveOrFallbackReportsUnresolvedAncestor(t *testing.T) {
	table, sink, _ := buildTable(t)
	idx := Populate(sink, table)

	parents := idx.Parents("Foo.Dangling")
	if len(parents) != 1 || parents[0] != rootObjectQualifiedName {
		t.Fatalf("got %v, want fallback to %s", parents, rootObjectQualifiedName)
	}
	if sink.CountByKind(diag.UnresolvedType) != 1 {
		t.Fatalf("expected one unresolved-type diagnostic, got %d", sink.CountByKind(diag.UnresolvedType))
	}
}

func TestForEachInterfaceFollowsPrerequisites(t *testing.T) {
	table, sink, _ := buildTable(t)
	idx := Populate(sink, table)

	var seen []string
	idx.ForEachInterface("Foo.Middle", true, func(iface string) {
		seen = append(seen, iface)
	})
	if len(seen) != 1 || seen[0] != "Foo.Actionable" {
		t.Fatalf("got %v, want [Foo.Actionable]", seen)
	}
}

// ForEachInterface itself only looks at the interfaces implemented
// directly by the name it is given; a descendant class that implements
// nothing itself must have its own ancestors walked separately to
// surface an interface implemented higher up the parent chain.
func TestForEachInterfaceDoesNotClimbParentChainOnItsOwn(t *testing.T) {
	table, sink, _ := buildTable(t)
	idx := Populate(sink, table)

	var seen []string
	idx.ForEachInterface("Foo.Leaf", true, func(iface string) {
		seen = append(seen, iface)
	})
	if len(seen) != 0 {
		t.Fatalf("got %v, want no interfaces: Foo.Leaf implements nothing directly", seen)
	}
}

func TestQualifyLeavesAlreadyQualifiedNamesAlone(t *testing.T) {
	mod := &model.Module{Namespace: "Foo"}
	if got := Qualify(mod, "GObject.Object"); got != "GObject.Object" {
		t.Fatalf("got %q", got)
	}
	if got := Qualify(mod, "Widget"); got != "Foo.Widget" {
		t.Fatalf("got %q", got)
	}
}

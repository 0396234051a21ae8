package reconcile

import (
	"testing"

	"github.com/gir-project/girgen/internal/diag"
	"github.com/gir-project/girgen/internal/member"
	"github.com/gir-project/girgen/internal/model"
)

func TestCanonicalSignatureIgnoresParamNames(t *testing.T) {
	a := CanonicalSignature("foo(bar: string, baz?: number): void")
	b := CanonicalSignature("foo(x: string, y?: number): void")
	if a != b {
		t.Fatalf("got %q vs %q, want equal", a, b)
	}
}

func TestCanonicalSignatureStripsBlockComments(t *testing.T) {
	a := CanonicalSignature("foo(/* comment */x: string): void")
	b := CanonicalSignature("foo(x: string): void")
	if a != b {
		t.Fatalf("got %q vs %q, want equal", a, b)
	}
}

func TestReconcileSkipsMethodCollidingWithProperty(t *testing.T) {
	r := New(diag.NewSink(nil))
	names := model.NewLocalNameSet()
	methods := []member.Fragment{{Name: "label", Text: "label(): string"}}
	propertyNames := map[string]bool{"label": true}

	out := r.Reconcile("Widget", false, methods, map[string]map[string]member.Fragment{}, propertyNames, names)

	if len(out) != 1 || out[0].Text != "// label skipped: collides with an inherited property" {
		t.Fatalf("got %+v", out)
	}
	if names.Has("label") {
		t.Fatal("skipped method must not claim the name")
	}
}

func TestReconcileEmitsFalseOverloadForMismatchedInherited(t *testing.T) {
	r := New(diag.NewSink(nil))
	names := model.NewLocalNameSet()
	methods := []member.Fragment{{Name: "show", Text: "show(): void"}}
	fnMap := map[string]map[string]member.Fragment{
		"show": {
			"Gtk.Widget": {Name: "show", Text: "show(flag: boolean): void", SourceClass: "Gtk.Widget"},
		},
	}

	out := r.Reconcile("Button", false, methods, fnMap, map[string]bool{}, names)

	if len(out) != 3 {
		t.Fatalf("got %d fragments, want 3 (direct + comment + inherited)", len(out))
	}
	if out[1].Text != "// false overload: show's signature differs from Gtk.Widget" {
		t.Fatalf("got %q", out[1].Text)
	}
	if _, stillThere := fnMap["show"]; stillThere {
		t.Fatal("reconciled name must be removed from fnMap")
	}
}

func TestReconcileForcesClashForSignalHelperOnNonRootClass(t *testing.T) {
	r := New(diag.NewSink(nil))
	names := model.NewLocalNameSet()
	fnMap := map[string]map[string]member.Fragment{
		"connect": {
			"GObject.Object": {Name: "connect", Text: "connect(name: string): number", SourceClass: "GObject.Object"},
		},
	}

	out := r.Reconcile("Widget", false, nil, fnMap, map[string]bool{}, names)

	if len(out) != 2 {
		t.Fatalf("got %d fragments, want a note + the declaration", len(out))
	}
	if !names.Has("connect") {
		t.Fatal("connect must be claimed in LocalNameSet even though forced")
	}
}

func TestReconcileSkipsSingleInheritedCopyWithNoForcedClash(t *testing.T) {
	r := New(diag.NewSink(nil))
	names := model.NewLocalNameSet()
	fnMap := map[string]map[string]member.Fragment{
		"destroy": {
			"Gtk.Widget": {Name: "destroy", Text: "destroy(): void", SourceClass: "Gtk.Widget"},
		},
	}

	out := r.Reconcile("Button", false, nil, fnMap, map[string]bool{}, names)

	if len(out) != 0 {
		t.Fatalf("got %+v, want no fragments for a single unforced inherited copy", out)
	}
	if !names.Has("destroy") {
		t.Fatal("name must still be claimed unconditionally")
	}
}

package render

import (
	"strings"
	"testing"
)

func TestHeaderRendersImports(t *testing.T) {
	out, err := Header(HeaderData{
		Namespace: "Gtk",
		Version:   "4.0",
		Imports:   []ImportEntry{{Package: "GLib"}, {Package: "GObject"}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Gtk 4.0") {
		t.Fatalf("missing namespace/version in header:\n%s", out)
	}
	if !strings.Contains(out, `import * as GLib from "./GLib";`) {
		t.Fatalf("missing GLib import:\n%s", out)
	}
}

func TestPrettyPrintCollapsesBlankRuns(t *testing.T) {
	in := "a\n\n\n\nb\n\n"
	out := PrettyPrint(in)
	if out != "a\n\nb\n" {
		t.Fatalf("got %q", out)
	}
}

func TestPrettyPrintTrimsTrailingWhitespace(t *testing.T) {
	in := "a   \nb\t\n"
	out := PrettyPrint(in)
	if out != "a\nb\n" {
		t.Fatalf("got %q", out)
	}
}

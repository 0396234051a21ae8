package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

const testGir = `<?xml version="1.0"?>
<repository version="1.2">
  <namespace name="Demo" version="1.0" shared-library="libdemo.so.0">
    <constant name="ANSWER" value="42">
      <type name="gint" c:type="gint"/>
    </constant>
  </namespace>
</repository>`

func TestGenerateWritesDeclarationFile(t *testing.T) {
	girDir := t.TempDir()
	outDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(girDir, "Demo-1.0.gir"), []byte(testGir), 0o644); err != nil {
		t.Fatal(err)
	}

	flags := &generateFlags{
		configPath: filepath.Join(girDir, "missing-girgen.yaml"),
		outDir:     outDir,
		env:        "gjs",
		buildType:  "types",
		girDirs:    stringList{girDir},
	}

	var stdout, stderr bytes.Buffer
	generate(&stdout, &stderr, flags, []string{"Demo-1.0"})

	out, err := os.ReadFile(filepath.Join(outDir, "Demo-1.0.d.ts"))
	if err != nil {
		t.Fatalf("expected declaration file to be written: %v\nstderr: %s", err, stderr.String())
	}
	if !bytes.Contains(out, []byte("ANSWER")) {
		t.Fatalf("declaration file missing constant:\n%s", out)
	}
}

func TestTemplateOverridesForReadsOverrideFile(t *testing.T) {
	project := t.TempDir()
	configPath := filepath.Join(project, "girgen.yaml")
	overridePath := filepath.Join(project, "girgen.Demo-1.0.override.ts")
	if err := os.WriteFile(overridePath, []byte("// hand-written Demo extras"), 0o644); err != nil {
		t.Fatal(err)
	}

	overrides := templateOverridesFor(configPath, []string{"Demo-1.0"})
	if overrides["Demo-1.0"] != "// hand-written Demo extras" {
		t.Fatalf("expected override for Demo-1.0, got %v", overrides)
	}
}

func TestTemplateOverridesForSkipsMissingFile(t *testing.T) {
	project := t.TempDir()
	configPath := filepath.Join(project, "girgen.yaml")
	overrides := templateOverridesFor(configPath, []string{"Demo-1.0"})
	if len(overrides) != 0 {
		t.Fatalf("expected no overrides, got %v", overrides)
	}
}

func TestSplitNamespaceVersion(t *testing.T) {
	cases := []struct {
		in              string
		wantNS, wantVer string
	}{
		{"Gtk-4.0", "Gtk", "4.0"},
		{"GLib-2.0", "GLib", "2.0"},
		{"NoVersion", "NoVersion", ""},
	}
	for _, c := range cases {
		ns, ver := splitNamespaceVersion(c.in)
		if ns != c.wantNS || ver != c.wantVer {
			t.Errorf("splitNamespaceVersion(%q) = (%q, %q), want (%q, %q)", c.in, ns, ver, c.wantNS, c.wantVer)
		}
	}
}

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInspectDumpsSymbolTable(t *testing.T) {
	girDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(girDir, "Demo-1.0.gir"), []byte(testGir), 0o644); err != nil {
		t.Fatal(err)
	}

	flags := &inspectFlags{
		configPath: filepath.Join(girDir, "missing-girgen.yaml"),
		girDirs:    stringList{girDir},
	}

	var stdout, stderr bytes.Buffer
	inspect(&stdout, &stderr, flags, []string{"Demo-1.0"})

	if !strings.Contains(stdout.String(), "Demo.ANSWER") {
		t.Fatalf("expected dump to contain the qualified constant name:\n%s\nstderr: %s", stdout.String(), stderr.String())
	}
}

func TestInspectAppliesGjsonPath(t *testing.T) {
	girDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(girDir, "Demo-1.0.gir"), []byte(testGir), 0o644); err != nil {
		t.Fatal(err)
	}

	flags := &inspectFlags{
		configPath: filepath.Join(girDir, "missing-girgen.yaml"),
		girDirs:    stringList{girDir},
		path:       "0.kind",
	}

	var stdout, stderr bytes.Buffer
	inspect(&stdout, &stderr, flags, []string{"Demo-1.0"})

	if strings.TrimSpace(stdout.String()) != "constant" {
		t.Fatalf("expected gjson path to select the single constant's kind, got %q (stderr: %s)", stdout.String(), stderr.String())
	}
}

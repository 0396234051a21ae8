package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/gir-project/girgen/internal/config"
	"github.com/gir-project/girgen/internal/diag"
	"github.com/gir-project/girgen/internal/model"
	"github.com/gir-project/girgen/internal/pipeline"
	"github.com/tidwall/gjson"
)

type inspectFlags struct {
	configPath string
	path       string
	girDirs    stringList
}

func registerInspectFlags(fs *flag.FlagSet) *inspectFlags {
	f := &inspectFlags{}
	fs.StringVar(&f.configPath, "config", "girgen.yaml", "path to a girgen.yaml project file")
	fs.StringVar(&f.path, "path", "", "gjson path to query against the dumped symbol table")
	fs.Var(&f.girDirs, "gir-dir", "directory to search for .gir files (repeatable)")
	return f
}

// symbolDump is the shape of one entry in the JSON document inspect
// builds for gjson to query: kind, qualified name, and the package
// that owns it.
type symbolDump struct {
	QualifiedName string `json:"qualifiedName"`
	Kind          string `json:"kind"`
	Package       string `json:"package"`
}

// inspect loads one namespace and dumps its resolved symbol table as
// JSON, either in full or filtered through a gjson path expression
// given via -path. This is a debugging aid, grounded on the pack's own
// "dump a JSON snapshot, then query it" pattern for inspecting a large
// resolved structure without reading the whole thing.
func inspect(stdout, stderr io.Writer, flags *inspectFlags, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(stderr, "inspect: expected exactly one namespace-version argument, e.g. Gtk-4.0")
		os.Exit(1)
	}

	cfg, err := config.LoadFile(flags.configPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		os.Exit(1)
	}
	if len(flags.girDirs) > 0 {
		cfg.GirDirectories = append(cfg.GirDirectories, flags.girDirs...)
	}

	sink := diag.NewSink(nil)
	namespace, version := splitNamespaceVersion(args[0])
	_, table, _, err := pipeline.LoadAndPopulate(cfg, sink, namespace, version)
	if err != nil {
		fmt.Fprintln(stderr, "inspect:", err)
		os.Exit(1)
	}

	var dump []symbolDump
	table.Range(func(qualifiedName string, decl model.Declaration) bool {
		dump = append(dump, symbolDump{
			QualifiedName: qualifiedName,
			Kind:          decl.Kind().String(),
			Package:       decl.Module().PackageName(),
		})
		return true
	})
	sort.Slice(dump, func(i, j int) bool { return dump[i].QualifiedName < dump[j].QualifiedName })

	encoded, err := json.Marshal(dump)
	if err != nil {
		fmt.Fprintln(stderr, "inspect: encoding symbol dump:", err)
		os.Exit(1)
	}

	if flags.path == "" {
		fmt.Fprintln(stdout, string(encoded))
		return
	}
	result := gjson.GetBytes(encoded, flags.path)
	fmt.Fprintln(stdout, result.String())
}

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gir-project/girgen/internal/config"
	"github.com/gir-project/girgen/internal/diag"
	"github.com/gir-project/girgen/internal/pipeline"
)

// stringList collects repeated occurrences of a flag into a slice, in
// the order given on the command line.
type stringList []string

func (s *stringList) String() string { return strings.Join(*s, ",") }
func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

type generateFlags struct {
	configPath  string
	outDir      string
	env         string
	buildType   string
	inheritance bool
	girDirs     stringList
	verbose     bool
}

func registerGenerateFlags(fs *flag.FlagSet) *generateFlags {
	f := &generateFlags{}
	fs.StringVar(&f.configPath, "config", "girgen.yaml", "path to a girgen.yaml project file")
	fs.StringVar(&f.outDir, "out", "", "output directory (overrides the config file)")
	fs.StringVar(&f.env, "env", "", "target environment: gjs or node (overrides the config file)")
	fs.StringVar(&f.buildType, "buildtype", "", "types or lib (overrides the config file)")
	fs.BoolVar(&f.inheritance, "inheritance", false, "decompose classes into an instance interface plus a static const instead of extends (overrides the config file)")
	fs.Var(&f.girDirs, "gir-dir", "directory to search for .gir files (repeatable)")
	fs.BoolVar(&f.verbose, "verbose", false, "log diagnostics as they are found")
	return f
}

// templateOverridesFor looks, for each requested namespace, for a
// girgen.<namespace>-<version>.override.ts file next to the project
// config and reads it verbatim as that module's template override. A
// namespace with no matching file is simply skipped; this is opt-in
// enrichment, not a requirement.
func templateOverridesFor(configPath string, namespaces []string) map[string]string {
	overrides := make(map[string]string)
	dir := filepath.Dir(configPath)
	for _, ns := range namespaces {
		namespace, version := splitNamespaceVersion(ns)
		path := filepath.Join(dir, fmt.Sprintf("girgen.%s-%s.override.ts", namespace, version))
		text, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		overrides[namespace+"-"+version] = string(text)
	}
	return overrides
}

// generate drives one run of the pipeline per namespace named in args
// ("Gtk-4.0", "GLib-2.0", ...), writing the resulting declaration files
// under the configured output directory.
func generate(stdout, stderr io.Writer, flags *generateFlags, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(stderr, "generate: expected at least one namespace-version argument, e.g. Gtk-4.0")
		os.Exit(1)
	}

	cfg, err := config.LoadFile(flags.configPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		os.Exit(1)
	}
	cfg = cfg.Merge(overrideFromFlags(flags))
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, err)
		os.Exit(1)
	}

	sink := diag.NewSink(nil)
	if cfg.Verbose {
		sink = diag.NewSink(verboseLogger())
	}

	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		fmt.Fprintln(stderr, "generate: creating output directory:", err)
		os.Exit(1)
	}

	overrides := templateOverridesFor(flags.configPath, args)

	for _, arg := range args {
		namespace, version := splitNamespaceVersion(arg)
		results, err := pipeline.Run(cfg, sink, namespace, version, overrides)
		if err != nil {
			fmt.Fprintln(stderr, "generate:", err)
			continue
		}
		for _, r := range results {
			outPath := filepath.Join(cfg.OutDir, r.PackageName+".d.ts")
			if err := os.WriteFile(outPath, []byte(r.Text), 0o644); err != nil {
				fmt.Fprintln(stderr, "generate: writing", outPath, ":", err)
				continue
			}
			fmt.Fprintln(stdout, "wrote", outPath)
		}
	}

	for _, d := range sink.All() {
		fmt.Fprintln(stderr, d.String())
	}
}

// splitNamespaceVersion parses a "Namespace-Version" argument such as
// "Gtk-4.0" into its two parts. An argument with no "-" is treated as a
// bare namespace with no version constraint.
func splitNamespaceVersion(arg string) (namespace, version string) {
	i := strings.LastIndex(arg, "-")
	if i < 0 {
		return arg, ""
	}
	return arg[:i], arg[i+1:]
}

func overrideFromFlags(f *generateFlags) config.Config {
	var c config.Config
	if f.outDir != "" {
		c.OutDir = f.outDir
	}
	if f.env != "" {
		c.Environment = config.Environment(f.env)
	}
	if f.buildType != "" {
		c.BuildType = config.BuildType(f.buildType)
	}
	c.Inheritance = f.inheritance
	if len(f.girDirs) > 0 {
		c.GirDirectories = f.girDirs
	}
	c.Verbose = f.verbose
	return c
}

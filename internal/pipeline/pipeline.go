// Package pipeline orchestrates one girgen run end to end: load every
// GIR document reachable from the entry namespace, populate the
// SymbolTable and InheritanceIndex once across all of them, then emit
// each module's declaration file. Everything here runs on the calling
// goroutine; there is no concurrency anywhere in the core.
package pipeline

import (
	"fmt"
	"sort"

	"github.com/gir-project/girgen/internal/config"
	"github.com/gir-project/girgen/internal/diag"
	"github.com/gir-project/girgen/internal/emit"
	"github.com/gir-project/girgen/internal/gir"
	"github.com/gir-project/girgen/internal/inheritance"
	"github.com/gir-project/girgen/internal/model"
	"github.com/gir-project/girgen/internal/symboltable"
	"github.com/gir-project/girgen/internal/synth"
	"github.com/gir-project/girgen/internal/typeresolve"
)

// Result is one emitted module: its package name and rendered text.
type Result struct {
	PackageName string
	Text        string
}

// Run loads namespaceName (and, transitively, everything it includes),
// resolves every module's symbols and inheritance, and emits each one in
// load order. templateOverrides maps a package name ("Gtk-4.0") to the
// verbatim override text for that module, when a
// girgen.<ns>-<version>.override.ts file was found alongside the project
// config.
func Run(cfg config.Config, sink *diag.Sink, namespaceName, version string, templateOverrides map[string]string) ([]Result, error) {
	modules, table, idx, err := LoadAndPopulate(cfg, sink, namespaceName, version)
	if err != nil {
		return nil, err
	}

	resolver := typeresolve.New(table, cfg.Environment)
	synthesizer := synth.New(table, idx, resolver, sink)
	emitter := emit.New(resolver, synthesizer, sink, cfg)

	results := make([]Result, 0, len(modules))
	for _, mod := range modules {
		if sink.HasFatal() {
			break
		}
		text := emitter.EmitModule(mod, templateOverrides[mod.PackageName()])
		results = append(results, Result{PackageName: mod.PackageName(), Text: text})
	}
	return results, nil
}

// LoadAndPopulate loads namespaceName and its transitive includes and
// runs the SymbolTable and InheritanceIndex passes, without emitting
// anything. The "inspect" subcommand uses this directly to query the
// resolved symbol table without writing any declaration files.
func LoadAndPopulate(cfg config.Config, sink *diag.Sink, namespaceName, version string) ([]*model.Module, *symboltable.SymbolTable, *inheritance.Index, error) {
	modules, err := loadGraph(cfg, sink, namespaceName, version)
	if err != nil {
		return nil, nil, nil, err
	}

	table := symboltable.New()
	for _, mod := range modules {
		symboltable.Populate(sink, table, mod)
	}

	idx := inheritance.Populate(sink, table)
	return modules, table, idx, nil
}

// loadGraph loads namespaceName and every module it transitively
// includes, in breadth-first document order, wiring each Module's
// Direct dependency list as it goes. A missing-namespace error on the
// entry module aborts the whole run; a missing-namespace error on a
// dependency is recorded as a diagnostic and that branch is skipped;
// the modules that do load are still emitted.
func loadGraph(cfg config.Config, sink *diag.Sink, namespaceName, version string) ([]*model.Module, error) {
	byKey := make(map[string]*model.Module)
	var order []*model.Module

	var loadOne func(ns, ver string) (*model.Module, error)
	loadOne = func(ns, ver string) (*model.Module, error) {
		key := ns + "-" + ver
		if mod, ok := byKey[key]; ok {
			return mod, nil
		}

		path, err := gir.ResolveFile(ns, ver, cfg.GirDirectories)
		if err != nil {
			return nil, fmt.Errorf("pipeline: %w", err)
		}
		repo, err := gir.Load(path)
		if err != nil {
			return nil, err
		}

		mod := model.NewModule(repo)
		byKey[key] = mod
		order = append(order, mod)

		for _, inc := range repo.Includes {
			dep, err := loadOne(inc.Name, inc.Version)
			if err != nil {
				sink.Report(diag.DependencyNotFound, mod.PackageName(),
					fmt.Sprintf("include %s-%s: %v", inc.Name, inc.Version, err))
				continue
			}
			mod.Direct = append(mod.Direct, dep)
		}
		return mod, nil
	}

	entry, err := loadOne(namespaceName, version)
	if err != nil {
		sink.Report(diag.MissingNamespace, namespaceName+"-"+version, err.Error())
		return nil, err
	}
	_ = entry

	return order, nil
}

// PackageNames returns the package names of results in sorted order, a
// convenience for callers that want deterministic output regardless of
// load order (e.g. test failure messages).
func PackageNames(results []Result) []string {
	names := make([]string, len(results))
	for i, r := range results {
		names[i] = r.PackageName
	}
	sort.Strings(names)
	return names
}

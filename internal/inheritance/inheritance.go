// Package inheritance is the parent-and-interface adjacency
// built on top of the SymbolTable, plus the two closure walkers
// MemberSynthesizer and OverloadReconciler drive member collation with.
package inheritance

import (
	"fmt"
	"strings"

	"github.com/gir-project/girgen/internal/diag"
	"github.com/gir-project/girgen/internal/model"
	"github.com/gir-project/girgen/internal/symboltable"
)

// MaxRecursion bounds every closure walk.
const MaxRecursion = 100

// Index is the InheritanceIndex: a mapping from class/interface qualified
// name to an ordered sequence of parent-or-interface qualified names.
type Index struct {
	table *symboltable.SymbolTable
	adj   map[string][]string
}

// Qualify resolves a possibly-unqualified GIR type name against the
// module that referenced it: a name already
// containing "." is returned unchanged, otherwise it is prefixed with
// the referencing module's namespace.
func Qualify(mod *model.Module, rawName string) string {
	if strings.Contains(rawName, ".") {
		return rawName
	}
	if rawName == "" {
		return rawName
	}
	return mod.Namespace + "." + rawName
}

// Populate builds the adjacency from every Class/Interface declaration
// currently in table. Referenced names that don't resolve through table
// are reported as unresolved-type and the adjacency entry falls back to
// the root object class.
func Populate(sink *diag.Sink, table *symboltable.SymbolTable) *Index {
	idx := &Index{table: table, adj: make(map[string][]string)}

	table.Range(func(qualifiedName string, decl model.Declaration) bool {
		switch d := decl.(type) {
		case *model.ClassDecl:
			var parents []string
			if d.Parent != "" {
				parents = append(parents, resolveOrFallback(sink, table, d.Module(), qualifiedName, d.Parent))
			}
			for _, impl := range d.Implements {
				parents = append(parents, resolveOrFallback(sink, table, d.Module(), qualifiedName, impl))
			}
			idx.adj[qualifiedName] = parents
		case *model.InterfaceDecl:
			if d.Prerequisite != "" {
				idx.adj[qualifiedName] = []string{resolveOrFallback(sink, table, d.Module(), qualifiedName, d.Prerequisite)}
			}
		}
		return true
	})

	return idx
}

func resolveOrFallback(sink *diag.Sink, table *symboltable.SymbolTable, mod *model.Module, owner, raw string) string {
	qualified := Qualify(mod, raw)
	if _, ok := table.Lookup(qualified); ok {
		return qualified
	}
	sink.Report(diag.UnresolvedType, mod.PackageName(),
		fmt.Sprintf("%s: unresolved ancestor %q, falling back to root object class", owner, qualified))
	return rootObjectQualifiedName
}

// RootObjectQualifiedName is the class every fallback and every
// GObject-derived signal-helper check ultimately bottoms out at.
const RootObjectQualifiedName = "GObject.Object"

// rootObjectQualifiedName is kept as an internal alias so existing call
// sites in this file read naturally.
const rootObjectQualifiedName = RootObjectQualifiedName

// Parents returns the ordered parent-or-interface qualified names
// directly adjacent to qualifiedName (empty for a class with no parent
// and no implements, or an interface with no prerequisite).
func (idx *Index) Parents(qualifiedName string) []string {
	return idx.adj[qualifiedName]
}

// ClosureWalk performs a depth-first walk up the parent chain starting
// at qualifiedName (the class's own qualified name, not yet visited
// itself), calling visit for every ancestor reached. The walk is bounded
// at MaxRecursion and stops, with a recursion-depth-exceeded diagnostic,
// if that bound is hit. It also stops, with a circular-inheritance
// diagnostic, the moment the next parent to visit equals qualifiedName
// itself.
func (idx *Index) ClosureWalk(sink *diag.Sink, mod *model.Module, qualifiedName string, visit func(ancestor string)) {
	current := idx.parentOf(qualifiedName)
	depth := 0
	for current != "" {
		if current == qualifiedName {
			sink.Report(diag.CircularInheritance, mod.PackageName(),
				fmt.Sprintf("Circular dependency found for %s", qualifiedName))
			return
		}
		if depth >= MaxRecursion {
			sink.Report(diag.RecursionDepthExceeded, mod.PackageName(),
				fmt.Sprintf("%s: inheritance chain exceeds %d levels", qualifiedName, MaxRecursion))
			return
		}
		visit(current)
		depth++
		current = idx.parentOf(current)
	}
}

// parentOf returns the next name up the parent chain from qualifiedName:
// empty for a class declared without a parent, whose adjacency entry
// then holds only implements entries.
func (idx *Index) parentOf(qualifiedName string) string {
	if decl, ok := idx.table.Lookup(qualifiedName); ok {
		if c, isClass := decl.(*model.ClassDecl); isClass && c.Parent == "" {
			return ""
		}
	}
	return soleParent(idx.adj[qualifiedName])
}

// soleParent returns the first adjacency entry: for a class this is its
// parent (implements entries follow it in the slice and are not part of
// the parent chain ClosureWalk walks).
func soleParent(adj []string) string {
	if len(adj) == 0 {
		return ""
	}
	return adj[0]
}

// implementsOf returns the implemented-interface qualified names for a
// class (everything after the parent in its adjacency entry), or the
// single prerequisite for an interface.
func (idx *Index) implementsOf(qualifiedName string) []string {
	decl, ok := idx.table.Lookup(qualifiedName)
	if !ok {
		return nil
	}
	switch d := decl.(type) {
	case *model.ClassDecl:
		adj := idx.adj[qualifiedName]
		if d.Parent == "" {
			return adj
		}
		if len(adj) <= 1 {
			return nil
		}
		return adj[1:]
	case *model.InterfaceDecl:
		return idx.adj[qualifiedName]
	default:
		return nil
	}
}

// ForEachInterface visits every interface implemented (transitively,
// through prerequisites) by qualifiedName. recurseObjects controls
// whether an object-class prerequisite of an interface is itself
// followed for its implemented interfaces; interface-to-interface
// prerequisites are always followed. A visited-set keyed by qualified
// name prevents revisiting the same interface twice through a diamond.
func (idx *Index) ForEachInterface(qualifiedName string, recurseObjects bool, visit func(iface string)) {
	visited := make(map[string]bool)
	var walk func(name string)
	walk = func(name string) {
		for _, iface := range idx.implementsOf(name) {
			decl, ok := idx.table.Lookup(iface)
			if !ok {
				continue
			}
			switch decl.(type) {
			case *model.InterfaceDecl:
				if visited[iface] {
					continue
				}
				visited[iface] = true
				visit(iface)
				walk(iface)
			case *model.ClassDecl:
				if !recurseObjects || visited[iface] {
					continue
				}
				visited[iface] = true
				walk(iface)
			}
		}
	}
	walk(qualifiedName)
}

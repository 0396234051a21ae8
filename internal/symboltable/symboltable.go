// Package symboltable is the cross-module mapping from
// fully-qualified name to Declaration. It is populated once per Module
// in an initial pass and is read-only for the rest of a run.
package symboltable

import (
	"fmt"

	"github.com/gir-project/girgen/internal/diag"
	"github.com/gir-project/girgen/internal/model"
	"github.com/tidwall/btree"
)

// SymbolTable is the global, process-wide mapping from qualified name to
// Declaration. Ordered iteration (via btree.Map) gives deterministic
// output ordering for anything that walks the whole table, matching the
// byte-exact reproducibility across runs.
type SymbolTable struct {
	entries btree.Map[string, model.Declaration]
}

// New creates an empty SymbolTable.
func New() *SymbolTable {
	return &SymbolTable{}
}

// Insert stamps decl with mod and qualifiedName and inserts it under
// qualifiedName. A second insertion under the same key is refused: the
// first entry is kept and a duplicate-symbol diagnostic is reported
//.
func (t *SymbolTable) Insert(sink *diag.Sink, mod *model.Module, decl model.Declaration, qualifiedName string) {
	if _, exists := t.entries.Get(qualifiedName); exists {
		sink.Report(diag.DuplicateSymbol, mod.PackageName(),
			fmt.Sprintf("duplicate symbol %q, keeping first definition", qualifiedName))
		return
	}
	model.Stamp(decl, mod, qualifiedName)
	t.entries.Set(qualifiedName, decl)
}

// Lookup returns the Declaration registered under qualifiedName, if any.
func (t *SymbolTable) Lookup(qualifiedName string) (model.Declaration, bool) {
	return t.entries.Get(qualifiedName)
}

// Len returns the number of distinct qualified names in the table.
func (t *SymbolTable) Len() int {
	return t.entries.Len()
}

// Range visits every entry in ascending key order.
func (t *SymbolTable) Range(visit func(qualifiedName string, decl model.Declaration) bool) {
	t.entries.Scan(visit)
}

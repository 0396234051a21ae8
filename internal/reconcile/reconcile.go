// Package reconcile implements the OverloadReconciler: deciding,
// for one class view, which inherited members surface alongside the
// class's own and how name collisions between them are reconciled.
package reconcile

import (
	"fmt"
	"sort"

	"github.com/gir-project/girgen/internal/diag"
	"github.com/gir-project/girgen/internal/member"
	"github.com/gir-project/girgen/internal/model"
)

var reservedSignalHelpers = map[string]bool{
	"connect": true, "connect_after": true, "emit": true, "disconnect": true,
}

// Reconciler runs the per-class method/property collation algorithm.
type Reconciler struct {
	sink *diag.Sink
}

// New builds a Reconciler reporting through sink.
func New(sink *diag.Sink) *Reconciler {
	return &Reconciler{sink: sink}
}

// Reconcile produces the ordered method fragments for one class view.
//
// methods is the set of methods defined directly on the class, in
// declaration order. fnMap is keyed by method name, each value a map
// from owning-class qualified name to the fragment collected while
// walking the inheritance closure and implemented interfaces.
// propertyNames is the set of inherited property names a method cannot
// share. names accumulates every claimed identifier so later synthesis
// stages (fields, properties) can check against it.
func (r *Reconciler) Reconcile(
	className string,
	isRootObject bool,
	methods []member.Fragment,
	fnMap map[string]map[string]member.Fragment,
	propertyNames map[string]bool,
	names *model.LocalNameSet,
) []member.Fragment {
	var out []member.Fragment

	for _, m := range methods {
		if propertyNames[m.Name] {
			out = append(out, commentFragment(fmt.Sprintf("%s skipped: collides with an inherited property", m.Name)))
			continue
		}

		out = append(out, m)
		names.Add(m.Name)

		for _, owner := range sortedOwners(fnMap[m.Name]) {
			inherited := fnMap[m.Name][owner]
			if CanonicalSignature(m.Text) == CanonicalSignature(inherited.Text) {
				continue
			}
			out = append(out, commentFragment(fmt.Sprintf("false overload: %s's signature differs from %s", m.Name, inherited.SourceClass)))
			out = append(out, inherited)
		}
		delete(fnMap, m.Name)
	}

	for _, name := range sortedNames(fnMap) {
		copies := fnMap[name]
		names.Add(name)

		forcedClash := reservedSignalHelpers[name] && !isRootObject

		distinct := distinctBySignature(copies)
		if len(distinct) < 2 && !forcedClash {
			continue
		}

		for _, f := range distinct {
			note := fmt.Sprintf("overridden from %s; use %s.prototype.%s.call()", f.SourceClass, className, name)
			if f.IsVirtual {
				note = fmt.Sprintf("overridden from %s; do not override", f.SourceClass)
			}
			out = append(out, commentFragment(note))
			out = append(out, f)
		}
	}

	return out
}

// distinctBySignature dedupes copies by canonical signature, keeping the
// first fragment seen in owner-sorted order for each distinct shape.
func distinctBySignature(copies map[string]member.Fragment) []member.Fragment {
	seen := make(map[string]bool)
	var out []member.Fragment
	for _, owner := range sortedOwners(copies) {
		f := copies[owner]
		sig := CanonicalSignature(f.Text)
		if seen[sig] {
			continue
		}
		seen[sig] = true
		out = append(out, f)
	}
	return out
}

func sortedOwners(copies map[string]member.Fragment) []string {
	owners := make([]string, 0, len(copies))
	for owner := range copies {
		owners = append(owners, owner)
	}
	sort.Strings(owners)
	return owners
}

func sortedNames(fnMap map[string]map[string]member.Fragment) []string {
	names := make([]string, 0, len(fnMap))
	for name := range fnMap {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func commentFragment(text string) member.Fragment {
	return member.Fragment{Text: "// " + text}
}

package model

import "github.com/gir-project/girgen/internal/gir"

// Module is one loaded GIR document: identity, package name, and its
// direct dependencies (other Modules reached via <include>).
type Module struct {
	Namespace string
	Version   string

	// Repository is the parsed GIR tree this Module was built from.
	Repository *gir.Repository

	// Direct is the set of modules named by this module's <include>
	// elements, in document order.
	Direct []*Module
}

// NewModule wraps a parsed repository as a Module.
func NewModule(repo *gir.Repository) *Module {
	return &Module{
		Namespace:  repo.Namespace.Name,
		Version:    repo.Namespace.Version,
		Repository: repo,
	}
}

// PackageName is the "<namespace>-<version>" identity GIR consumers use
// to name the emitted package and tag diagnostics.
func (m *Module) PackageName() string {
	return m.Namespace + "-" + m.Version
}

// IsRootObjectModule reports whether this module is GObject itself, the
// module every other class-bearing module always imports, and whose
// type-handle alias must be suppressed.
func (m *Module) IsRootObjectModule() bool {
	return m.Namespace == "GObject"
}

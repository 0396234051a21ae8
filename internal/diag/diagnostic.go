// Package diag collects the warning stream the core emits while resolving
// types, inheritance, and symbol names. It never panics or aborts a run
// itself; callers decide whether a Kind is fatal for the
// module being processed.
package diag

import (
	"fmt"
	"strings"
)

// Kind is one of the eight error kinds the core can report. The Code is
// what gets logged and what tests grep for; it never changes shape.
type Kind int

const (
	MissingNamespace Kind = iota
	DuplicateSymbol
	UnresolvedType
	CircularInheritance
	RecursionDepthExceeded
	DependencyNotFound
	DuplicateConstantExport
	BadFunctionDefinition
)

// Code is the stable diagnostic code for a Kind, following the pack's own
// diagnostic-code convention (short, kebab-case, greppable).
func (k Kind) Code() string {
	switch k {
	case MissingNamespace:
		return "missing-namespace"
	case DuplicateSymbol:
		return "duplicate-symbol"
	case UnresolvedType:
		return "unresolved-type"
	case CircularInheritance:
		return "circular-inheritance"
	case RecursionDepthExceeded:
		return "recursion-depth-exceeded"
	case DependencyNotFound:
		return "dependency-not-found"
	case DuplicateConstantExport:
		return "duplicate-constant-export"
	case BadFunctionDefinition:
		return "bad-function-definition"
	default:
		return "unknown"
	}
}

// Fatal reports whether a Kind aborts the emission of the module it
// occurred in. Only a missing namespace is fatal; every other kind
// recovers locally.
func (k Kind) Fatal() bool {
	return k == MissingNamespace
}

// Diagnostic is one warning-stream event, tagged with the package name of
// the module that produced it.
type Diagnostic struct {
	Kind    Kind
	Module  string // "<namespace>-<version>", empty if not yet known
	Message string
}

func (d Diagnostic) String() string {
	var b strings.Builder
	b.WriteByte('[')
	b.WriteString(d.Kind.Code())
	b.WriteByte(']')
	if d.Module != "" {
		fmt.Fprintf(&b, " %s:", d.Module)
	}
	b.WriteByte(' ')
	b.WriteString(d.Message)
	return b.String()
}

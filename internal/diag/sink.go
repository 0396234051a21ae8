package diag

import (
	"log/slog"
)

// Sink collects diagnostics as they are raised during population and
// emission, and optionally forwards each one to a *slog.Logger as it
// arrives: one Warn call per event, tagged with the module's package
// name, same as the plain warning stream a CLI run prints to stderr.
//
// A nil Logger means "collect but don't print", matching the pack's own
// "zero overhead when no logger is set" convention for a library that is
// also driven programmatically (e.g. from cmd/girgen's "inspect"
// subcommand, which wants the diagnostics without stderr noise).
type Sink struct {
	Logger *slog.Logger

	diagnostics []Diagnostic
}

// NewSink creates a Sink. A nil logger is valid and suppresses output.
func NewSink(logger *slog.Logger) *Sink {
	return &Sink{Logger: logger}
}

// Report records a diagnostic and, if a Logger is set, logs it immediately.
func (s *Sink) Report(kind Kind, module, message string) Diagnostic {
	d := Diagnostic{Kind: kind, Module: module, Message: message}
	s.diagnostics = append(s.diagnostics, d)
	if s.Logger != nil {
		s.Logger.Warn(message, slog.String("code", kind.Code()), slog.String("module", module))
	}
	return d
}

// All returns every diagnostic reported so far, in report order.
func (s *Sink) All() []Diagnostic {
	return s.diagnostics
}

// HasFatal reports whether any reported diagnostic's Kind is fatal.
func (s *Sink) HasFatal() bool {
	for _, d := range s.diagnostics {
		if d.Kind.Fatal() {
			return true
		}
	}
	return false
}

// CountByKind returns how many diagnostics of a given Kind were reported;
// useful for asserting properties like "at
// most one duplicate-constant-export per repeated symbol").
func (s *Sink) CountByKind(kind Kind) int {
	n := 0
	for _, d := range s.diagnostics {
		if d.Kind == kind {
			n++
		}
	}
	return n
}

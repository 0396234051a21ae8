package model

import "github.com/gir-project/girgen/internal/set"

// LocalNameSet is per-emission scratch state: the set of identifiers
// already claimed within one class view. MemberSynthesizer and
// OverloadReconciler both record into it; nothing outside a single
// class's synthesis pass ever sees it.
type LocalNameSet struct {
	claimed set.Set[string]
}

// NewLocalNameSet returns an empty set.
func NewLocalNameSet() *LocalNameSet {
	return &LocalNameSet{claimed: set.NewSet[string]()}
}

// Has reports whether name was already claimed.
func (s *LocalNameSet) Has(name string) bool {
	return s.claimed.Contains(name)
}

// Add claims name, returning whether it was newly added (false if it
// was already present).
func (s *LocalNameSet) Add(name string) bool {
	if s.claimed.Contains(name) {
		return false
	}
	s.claimed.Add(name)
	return true
}

// ConstantNameSet is per-Module state preventing the same constant name
// from being exported twice out of one namespace.
type ConstantNameSet struct {
	claimed set.Set[string]
}

// NewConstantNameSet returns an empty set.
func NewConstantNameSet() *ConstantNameSet {
	return &ConstantNameSet{claimed: set.NewSet[string]()}
}

// Claim reports whether name was newly claimed (false if it was already
// exported by this module).
func (s *ConstantNameSet) Claim(name string) bool {
	if s.claimed.Contains(name) {
		return false
	}
	s.claimed.Add(name)
	return true
}

// Package member defines Fragment, the small unit of rendered text that
// MemberSynthesizer produces and OverloadReconciler collates. Keeping it
// in its own package lets both sides depend on the shape without a
// synth/reconcile import cycle.
package member

// Fragment is one emitted member: a name (for collision/lookup
// purposes), the rendered declaration text, the canonical signature used
// to compare two Fragments for "same shape", and whether it is a virtual
// method (changes the wording of a collision note).
type Fragment struct {
	Name      string
	Text      string
	Signature string
	IsVirtual bool

	// SourceClass is the qualified name of the class the Fragment was
	// collected from while walking the inheritance closure; empty for a
	// Fragment belonging directly to the class view being emitted.
	SourceClass string
}

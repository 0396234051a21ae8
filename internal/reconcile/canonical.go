package reconcile

import "regexp"

var blockComment = regexp.MustCompile(`(?s)/\*.*?\*/`)

// paramNameToken matches a parameter-name token immediately preceding a
// colon in a rendered signature, "name:" or "name?:", capturing
// whether the "?" was present so it can be preserved.
var paramNameToken = regexp.MustCompile(`\b[A-Za-z_][A-Za-z0-9_]*(\??):`)

// CanonicalSignature strips block comments and parameter names from a
// rendered declaration so two declarations that differ only in
// parameter naming compare equal.
func CanonicalSignature(text string) string {
	stripped := blockComment.ReplaceAllString(text, "")
	return paramNameToken.ReplaceAllString(stripped, "$1:")
}

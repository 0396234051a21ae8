// Package nametransform provides pure, deterministic, idempotent
// functions mapping raw GIR identifiers to valid target-surface
// identifiers. Every function here is side-effect free; callers
// (internal/synth, internal/emit) decide what to do with the result.
package nametransform

import (
	"strings"
	"unicode"

	"github.com/iancoleman/strcase"
	"golang.org/x/text/unicode/norm"
)

// digitPrefix is the fixed token prepended to an identifier that would
// otherwise start with a digit, not a valid identifier in the target
// surface.
const digitPrefix = "_"

// emptyPlaceholder replaces an identifier that is the empty string.
const emptyPlaceholder = "-"

// reserved is the target surface's reserved-word set. A parameter,
// property, or field name equal to one of these is suffixed with "_".
var reserved = map[string]bool{
	"break": true, "case": true, "catch": true, "class": true, "const": true,
	"continue": true, "debugger": true, "default": true, "delete": true,
	"do": true, "else": true, "enum": true, "export": true, "extends": true,
	"false": true, "finally": true, "for": true, "function": true, "if": true,
	"import": true, "in": true, "instanceof": true, "new": true, "null": true,
	"return": true, "super": true, "switch": true, "this": true, "throw": true,
	"true": true, "try": true, "typeof": true, "var": true, "void": true,
	"while": true, "with": true, "as": true, "implements": true,
	"interface": true, "let": true, "package": true, "private": true,
	"protected": true, "public": true, "static": true, "yield": true,
	"any": true, "boolean": true, "constructor": true, "declare": true,
	"get": true, "module": true, "require": true, "number": true, "set": true,
	"string": true, "symbol": true, "type": true, "from": true, "of": true,
	"namespace": true, "asserts": true, "keyof": true, "infer": true,
	"is": true, "satisfies": true,
}

// IsReserved reports whether name collides with a reserved word.
func IsReserved(name string) bool {
	return reserved[name]
}

func normalize(name string) string {
	return norm.NFC.String(name)
}

func escapeEmpty(name string) string {
	if name == "" {
		return emptyPlaceholder
	}
	return name
}

func escapeDigitLeading(name string) string {
	if name == "" {
		return name
	}
	if unicode.IsDigit(rune(name[0])) {
		return digitPrefix + name
	}
	return name
}

func suffixReserved(name string) string {
	if IsReserved(name) {
		return name + "_"
	}
	return name
}

// Namespace transforms a GIR namespace name into a target-surface module
// identifier. GIR namespace names are already valid identifiers in
// practice (e.g. "Gtk", "GLib"); this only guards the edge cases.
func Namespace(name string) string {
	return escapeDigitLeading(escapeEmpty(normalize(name)))
}

// TypeName transforms a class/interface/record/union/alias/callback name.
// GIR already PascalCases these; only the degenerate cases need escaping.
func TypeName(name string) string {
	return escapeDigitLeading(escapeEmpty(normalize(name)))
}

// EnumValue transforms an <member name=...> into a SCREAMING_SNAKE_CASE
// identifier, removing dashes in the process.
// A digit-leading result is additionally prefixed with digitPrefix;
// callers that need to detect "was this digit-leading" for the
// commented-placeholder rule should check the
// raw name directly rather than re-deriving it from this output.
func EnumValue(name string) string {
	name = escapeEmpty(normalize(name))
	transformed := strcase.ToScreamingSnake(strings.ReplaceAll(name, "-", "_"))
	return escapeDigitLeading(transformed)
}

// StartsWithDigit reports whether a raw GIR identifier begins with an
// ASCII digit, the condition that triggers the commented-placeholder
// rule for enum members.
func StartsWithDigit(rawName string) bool {
	return rawName != "" && unicode.IsDigit(rune(rawName[0]))
}

// Constant transforms a <constant name=...>.
func Constant(name string) string {
	name = escapeEmpty(normalize(name))
	return escapeDigitLeading(strcase.ToScreamingSnake(strings.ReplaceAll(name, "-", "_")))
}

// FunctionName transforms a <function>/<method>/<constructor> name from
// GIR's snake_case into lowerCamelCase.
func FunctionName(name string) string {
	name = escapeEmpty(normalize(name))
	return escapeDigitLeading(strcase.ToLowerCamel(name))
}

// ParameterName transforms a parameter name: lowerCamelCase, then
// suffixed with "_" if the result collides with a reserved word.
func ParameterName(name string) string {
	name = escapeEmpty(normalize(name))
	camel := strcase.ToLowerCamel(name)
	return suffixReserved(escapeDigitLeading(camel))
}

// PropertyName transforms a <property name=...>. GIR property names are
// dash-separated (e.g. "icon-name"). When allowQuotes is true the raw
// dashed name is kept and the caller is expected to emit it as a quoted
// string-literal key; otherwise it is camelCased into a bare identifier.
func PropertyName(name string, allowQuotes bool) string {
	name = escapeEmpty(normalize(name))
	if allowQuotes && strings.Contains(name, "-") {
		return name
	}
	return suffixReserved(escapeDigitLeading(strcase.ToLowerCamel(name)))
}

// FieldName transforms a <field name=...>.
func FieldName(name string) string {
	name = escapeEmpty(normalize(name))
	return suffixReserved(escapeDigitLeading(strcase.ToLowerCamel(name)))
}

// SignalName returns a <glib:signal name=...> unchanged: signals are
// referenced as string literals ("notify::prop", "<signal-name>"), never
// as bare identifiers, so no escaping applies.
func SignalName(name string) string {
	return escapeEmpty(normalize(name))
}

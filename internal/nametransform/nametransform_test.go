package nametransform

import "testing"

func TestEnumValueRemovesDashes(t *testing.T) {
	got := EnumValue("b-c")
	if got != "B_C" {
		t.Fatalf("EnumValue(%q) = %q, want %q", "b-c", got, "B_C")
	}
}

func TestEnumValueDigitLeading(t *testing.T) {
	if !StartsWithDigit("2fast") {
		t.Fatalf("expected 2fast to be detected as digit-leading")
	}
	got := EnumValue("2fast")
	if got[:len(digitPrefix)] != digitPrefix {
		t.Fatalf("EnumValue(%q) = %q, want digit-prefixed", "2fast", got)
	}
}

func TestParameterNameReservedWordSuffixed(t *testing.T) {
	got := ParameterName("in")
	if got != "in_" {
		t.Fatalf("ParameterName(%q) = %q, want %q", "in", got, "in_")
	}
	// Idempotent: applying again must not double-suffix.
	if again := ParameterName(got); again != got {
		t.Fatalf("ParameterName not idempotent: %q -> %q", got, again)
	}
}

func TestPropertyNameDashHandling(t *testing.T) {
	if got := PropertyName("icon-name", true); got != "icon-name" {
		t.Fatalf("PropertyName(allowQuotes) = %q, want unchanged dashed name", got)
	}
	if got := PropertyName("icon-name", false); got != "iconName" {
		t.Fatalf("PropertyName(camelCase) = %q, want %q", got, "iconName")
	}
}

func TestEmptyIdentifierPlaceholder(t *testing.T) {
	if got := FieldName(""); got != emptyPlaceholder {
		t.Fatalf("FieldName(\"\") = %q, want placeholder %q", got, emptyPlaceholder)
	}
}

package typeexpr

import "testing"

func TestArrayOfNullable(t *testing.T) {
	e := Array{Element: Nullable{Inner: Named{Name: "number"}}}
	if got, want := e.String(), "number | null[]"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestNullableFuncIsParenthesized(t *testing.T) {
	fn := Func{ParamTypes: []Expr{Named{Name: "number"}}, Return: Named{Name: "void"}}
	e := Nullable{Inner: fn}
	got := e.String()
	want := "((number) => void) | null"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestTupleString(t *testing.T) {
	tup := Tuple{Elements: []Expr{Named{Name: "string"}, Named{Name: "number"}}}
	if got, want := tup.String(), "[string, number]"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

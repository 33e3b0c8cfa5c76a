package tableau

import "testing"

func TestPrettyAssociativeOmitsParens(t *testing.T) {
	// a and (b and c): And tolerates an equal-precedence child unparenthesized.
	f := And{Left: Var{Name: "a"}, Right: And{Left: Var{Name: "b"}, Right: Var{Name: "c"}}}
	got := Pretty(f)
	want := "a ∧ b ∧ c"
	if got != want {
		t.Fatalf("Pretty = %q, want %q", got, want)
	}
}

func TestPrettyNonAssociativeAddsParens(t *testing.T) {
	// a -> (b -> c): Implies is non-associative, so the nested Implies at
	// equal precedence still gets parens.
	f := Implies{Left: Var{Name: "a"}, Right: Implies{Left: Var{Name: "b"}, Right: Var{Name: "c"}}}
	got := Pretty(f)
	want := "a → (b → c)"
	if got != want {
		t.Fatalf("Pretty = %q, want %q", got, want)
	}
}

func TestPrettyHigherPrecedenceChildParenthesized(t *testing.T) {
	// (a or b) and c: Or has looser precedence than And, so it needs parens
	// when it is And's child.
	f := And{Left: Or{Left: Var{Name: "a"}, Right: Var{Name: "b"}}, Right: Var{Name: "c"}}
	got := Pretty(f)
	want := "(a ∨ b) ∧ c"
	if got != want {
		t.Fatalf("Pretty = %q, want %q", got, want)
	}
}

func TestPrettyQuantifierNoParensAroundName(t *testing.T) {
	f := ForAll{Name: "x", Body: Predicate{Name: "P", Args: []string{"x"}}}
	got := Pretty(f)
	want := "∀x P(x)"
	if got != want {
		t.Fatalf("Pretty = %q, want %q", got, want)
	}
}

func TestPrettyNotHugsOperand(t *testing.T) {
	f := And{Left: Not{Child: Var{Name: "a"}}, Right: Var{Name: "b"}}
	got := Pretty(f)
	want := "¬a ∧ b"
	if got != want {
		t.Fatalf("Pretty = %q, want %q", got, want)
	}
}

func TestPrettyPredicateArgsSeparated(t *testing.T) {
	f := Predicate{Name: "P", Args: []string{"x", "y"}}
	got := Pretty(f)
	want := "P(x, y)"
	if got != want {
		t.Fatalf("Pretty = %q, want %q", got, want)
	}
}

func TestPrettyMarkupUsesMacros(t *testing.T) {
	f := Not{Child: Var{Name: "a"}}
	got := PrettyMarkup(f)
	want := `\neg a`
	if got != want {
		t.Fatalf("PrettyMarkup = %q, want %q", got, want)
	}
}

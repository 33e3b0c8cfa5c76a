package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rfielding/tableau"
)

func TestParseSimpleVar(t *testing.T) {
	f, err := Parse("a")
	require.NoError(t, err)
	require.True(t, tableau.Equal(f, tableau.Var{Name: "a"}))
}

func TestParsePredicate(t *testing.T) {
	f, err := Parse("P(x,y)")
	require.NoError(t, err)
	require.True(t, tableau.Equal(f, tableau.Predicate{Name: "P", Args: []string{"x", "y"}}))
}

func TestParseNegation(t *testing.T) {
	f, err := Parse("!a")
	require.NoError(t, err)
	require.True(t, tableau.Equal(f, tableau.Not{Child: tableau.Var{Name: "a"}}))
}

func TestParseImplicationRightAssociative(t *testing.T) {
	// a -> b -> c parses as a -> (b -> c)
	f, err := Parse("a>b>c")
	require.NoError(t, err)
	want := tableau.Implies{Left: tableau.Var{Name: "a"}, Right: tableau.Implies{
		Left: tableau.Var{Name: "b"}, Right: tableau.Var{Name: "c"},
	}}
	require.True(t, tableau.Equal(f, want))
}

func TestParseConjunctionRightAssociative(t *testing.T) {
	f, err := Parse("a&b&c")
	require.NoError(t, err)
	want := tableau.And{Left: tableau.Var{Name: "a"}, Right: tableau.And{
		Left: tableau.Var{Name: "b"}, Right: tableau.Var{Name: "c"},
	}}
	require.True(t, tableau.Equal(f, want))
}

func TestParseQuantifiers(t *testing.T) {
	f, err := Parse(`\xP(x)`)
	require.NoError(t, err)
	want := tableau.ForAll{Name: "x", Body: tableau.Predicate{Name: "P", Args: []string{"x"}}}
	require.True(t, tableau.Equal(f, want))

	f2, err := Parse(".xP(x)")
	require.NoError(t, err)
	want2 := tableau.Exists{Name: "x", Body: tableau.Predicate{Name: "P", Args: []string{"x"}}}
	require.True(t, tableau.Equal(f2, want2))
}

func TestParseParens(t *testing.T) {
	f, err := Parse("(a|b)&c")
	require.NoError(t, err)
	want := tableau.And{Left: tableau.Or{Left: tableau.Var{Name: "a"}, Right: tableau.Var{Name: "b"}}, Right: tableau.Var{Name: "c"}}
	require.True(t, tableau.Equal(f, want))
}

func TestParseUnclosedParenError(t *testing.T) {
	_, err := Parse("(a&b")
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	require.Contains(t, pe.Message, "unclosed paren")
}

func TestParseInvalidPredicateArgs(t *testing.T) {
	_, err := Parse("P(x,)")
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	require.Contains(t, pe.Message, "invalid predicate argument list")
}

func TestParseIgnoresTrailingTokens(t *testing.T) {
	f, err := Parse("a)b")
	require.NoError(t, err)
	require.True(t, tableau.Equal(f, tableau.Var{Name: "a"}))
}

func TestParseSkipsSpaces(t *testing.T) {
	f, err := Parse("a  &  b")
	require.NoError(t, err)
	want := tableau.And{Left: tableau.Var{Name: "a"}, Right: tableau.Var{Name: "b"}}
	require.True(t, tableau.Equal(f, want))
}

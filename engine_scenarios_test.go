package tableau

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// These mirror the worked end-to-end scenarios: each input signed formula
// set has a documented expected shape for the finished proof tree.

func TestScenarioS1_ContradictionCloses(t *testing.T) {
	// a and not a, asserted true: closes with exactly one closed leaf.
	f := And{Left: Var{Name: "a"}, Right: Not{Child: Var{Name: "a"}}}
	e := New([]SignedFormula{{F: f, Expect: true}})

	require.True(t, e.Closed())
	stats := e.Stats()
	require.Equal(t, 1, stats.ClosedLeaves)
	require.Equal(t, 0, stats.OpenLeaves)
}

func TestScenarioS2_DisjunctionOpensTwoBranches(t *testing.T) {
	// a or b, asserted true: branches into (a,T) and (b,T), both open.
	f := Or{Left: Var{Name: "a"}, Right: Var{Name: "b"}}
	e := New([]SignedFormula{{F: f, Expect: true}})

	require.False(t, e.Closed())
	stats := e.Stats()
	require.Equal(t, 2, stats.OpenLeaves)
	require.Equal(t, 0, stats.ClosedLeaves)

	foundA, foundB := false, false
	for _, n := range e.Nodes {
		for _, nf := range n.Facts {
			if v, ok := nf.F.(Var); ok && v.Name == "a" && nf.Expect {
				foundA = true
			}
			if v, ok := nf.F.(Var); ok && v.Name == "b" && nf.Expect {
				foundB = true
			}
		}
	}
	require.True(t, foundA, "expected a branch asserting a=true")
	require.True(t, foundB, "expected a branch asserting b=true")
}

func TestScenarioS3_AllBranchesClose(t *testing.T) {
	p, q, r := Var{Name: "p"}, Var{Name: "q"}, Var{Name: "r"}
	signed := []SignedFormula{
		{F: Implies{Left: And{Left: p, Right: q}, Right: r}, Expect: true},
		{F: Implies{Left: p, Right: r}, Expect: false},
		{F: Implies{Left: q, Right: r}, Expect: false},
	}
	e := New(signed)
	require.True(t, e.Closed())
}

func TestScenarioS4_SatisfiableStaysOpen(t *testing.T) {
	a, b, h, k, l := Var{Name: "a"}, Var{Name: "b"}, Var{Name: "h"}, Var{Name: "k"}, Var{Name: "l"}
	f := And{
		Left: And{
			Left: And{
				Left:  And{Left: Or{Left: b, Right: h}, Right: Implies{Left: h, Right: Not{Child: b}}},
				Right: Implies{Left: Not{Child: h}, Right: Not{Child: a}},
			},
			Right: Implies{Left: l, Right: k},
		},
		Right: Implies{Left: k, Right: And{Left: Not{Child: b}, Right: Not{Child: a}}},
	}
	e := New([]SignedFormula{{F: f, Expect: false}})
	require.False(t, e.Closed(), "satisfiable formula should leave at least one open branch")
}

func TestScenarioS5_UniversalWithNoConstantsNeverFires(t *testing.T) {
	// forall x forall y (P(x,y) -> P(y,x)), asserted true, with no free
	// variables and no existential anywhere: the repeaters are added but
	// never have a constant to fire on, so the tree is just the root and
	// it never closes.
	f := ForAll{Name: "x", Body: ForAll{Name: "y", Body: Implies{
		Left:  Predicate{Name: "P", Args: []string{"x", "y"}},
		Right: Predicate{Name: "P", Args: []string{"y", "x"}},
	}}}
	e := New([]SignedFormula{{F: f, Expect: true}})

	require.Len(t, e.Nodes, 1)
	require.Len(t, e.Edges, 0)
	require.False(t, e.Closed())
}

func TestScenarioS6_BoundedInstantiationCloses(t *testing.T) {
	p := func(x, y string) Predicate { return Predicate{Name: "P", Args: []string{x, y}} }
	inner := Exists{Name: "x", Body: ForAll{Name: "y", Body: p("x", "y")}}
	outer := ForAll{Name: "y", Body: Exists{Name: "x", Body: p("x", "y")}}
	f := Implies{Left: inner, Right: outer}

	e := New([]SignedFormula{{F: f, Expect: false}})
	require.True(t, e.Closed())
}

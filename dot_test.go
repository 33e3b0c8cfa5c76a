package tableau

import (
	"strings"
	"testing"
)

func TestDOTWellFormed(t *testing.T) {
	f := And{Left: Var{Name: "a"}, Right: Var{Name: "b"}}
	e := New([]SignedFormula{{F: f, Expect: true}})
	out := e.DOT()

	if !strings.HasPrefix(out, "digraph A {\n") {
		t.Fatalf("DOT does not start with digraph header: %q", out)
	}
	if !strings.HasSuffix(out, "}\n") {
		t.Fatalf("DOT does not end with closing brace: %q", out)
	}
	for i := range e.Nodes {
		if !strings.Contains(out, "\n  "+itoaForTest(i)+" [label=") {
			t.Fatalf("DOT missing node %d declaration:\n%s", i, out)
		}
	}
}

func TestDOTClosedNodeMarked(t *testing.T) {
	f := And{Left: Var{Name: "a"}, Right: Not{Child: Var{Name: "a"}}}
	e := New([]SignedFormula{{F: f, Expect: true}})
	out := e.DOT()
	if !strings.Contains(out, "\\nx") {
		t.Fatalf("expected a closed-node marker in DOT output:\n%s", out)
	}
}

func itoaForTest(n int) string { return nodeName(NodeId(n)) }

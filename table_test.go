package tableau

import (
	"reflect"
	"testing"
)

func TestBuildTableImplication(t *testing.T) {
	f := Implies{Left: Var{Name: "a"}, Right: Var{Name: "b"}}
	tbl := BuildTable(f)

	wantHeaders := []string{"a", "b", "a → b"}
	if !reflect.DeepEqual(tbl.Headers, wantHeaders) {
		t.Fatalf("Headers = %v, want %v", tbl.Headers, wantHeaders)
	}

	wantRows := [][]bool{
		{true, true, true},
		{true, false, false},
		{false, true, true},
		{false, false, true},
	}
	if !reflect.DeepEqual(tbl.Rows, wantRows) {
		t.Fatalf("Rows = %v, want %v", tbl.Rows, wantRows)
	}
}

func TestGenAssignmentsLaterVariesFastest(t *testing.T) {
	got := genAssignments([]string{"a", "b"})
	want := []map[string]bool{
		{"a": true, "b": true},
		{"a": true, "b": false},
		{"a": false, "b": true},
		{"a": false, "b": false},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("genAssignments = %v, want %v", got, want)
	}
}

func TestBuildTableIncludesSubConnectives(t *testing.T) {
	and := And{Left: Var{Name: "a"}, Right: Var{Name: "b"}}
	f := Or{Left: and, Right: Var{Name: "c"}}
	tbl := BuildTable(f)
	wantHeaders := []string{"a", "b", "c", Pretty(and), Pretty(f)}
	if !reflect.DeepEqual(tbl.Headers, wantHeaders) {
		t.Fatalf("Headers = %v, want %v", tbl.Headers, wantHeaders)
	}
	if len(tbl.Rows) != 8 {
		t.Fatalf("got %d rows, want 8", len(tbl.Rows))
	}
}

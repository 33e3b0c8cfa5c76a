package tableau

// Table is the truth table of a formula: Headers lists the free variable
// names (in FreeVariables order) followed by the pretty-printed
// sub-connectives of the formula, and Rows has one entry per assignment,
// whose cells line up with Headers column for column.
type Table struct {
	Headers []string
	Rows    [][]bool
}

// BuildTable enumerates every assignment of f's free variables and
// evaluates f and each of its sub-connectives under each one. Assignments
// are generated so that later-introduced variables vary fastest; for
// a -> b the rows come out (T,T),(T,F),(F,T),(F,F).
func BuildTable(f Formula) Table {
	vars := FreeVariables(f)
	subs := SubConnectives(f)

	headers := make([]string, 0, len(vars)+len(subs))
	headers = append(headers, vars...)
	for _, s := range subs {
		headers = append(headers, Pretty(s))
	}

	assignments := genAssignments(vars)
	rows := make([][]bool, 0, len(assignments))
	for _, a := range assignments {
		row := make([]bool, 0, len(headers))
		for _, v := range vars {
			row = append(row, a[v])
		}
		for _, s := range subs {
			row = append(row, Solve(s, a))
		}
		rows = append(rows, row)
	}

	return Table{Headers: headers, Rows: rows}
}

// genAssignments builds the stable recursive Cartesian product of
// {true,false} over vars, one assignment per combination, with
// later-introduced variables varying fastest.
func genAssignments(vars []string) []map[string]bool {
	if len(vars) == 0 {
		return []map[string]bool{{}}
	}
	first := vars[0]
	rest := genAssignments(vars[1:])

	out := make([]map[string]bool, 0, len(rest)*2)
	for _, v := range []bool{true, false} {
		for _, r := range rest {
			a := make(map[string]bool, len(r)+1)
			for k, val := range r {
				a[k] = val
			}
			a[first] = v
			out = append(out, a)
		}
	}
	return out
}

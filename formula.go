// Package tableau implements an analytic tableau prover for classical
// first-order logic with unary/n-ary predicates, propositional variables,
// the standard connectives, and the universal and existential quantifiers.
//
// The package splits into an immutable formula AST with structural
// operations (this file), a precedence-aware pretty-printer (pretty.go), a
// propositional truth-table evaluator (table.go), a cloneable proof-search
// state (knowledge.go), the tableau search engine itself (engine.go), and a
// DOT projection of the finished proof tree (dot.go).
package tableau

import "strings"

// Formula is the immutable AST of a logical expression. It is implemented
// by exactly nine shapes: Var, Predicate, Not, And, Or, Implies, Iff,
// ForAll, and Exists. Formulas are value objects: structurally comparable
// via Key, and safe to share since nothing in this package mutates one
// after construction.
type Formula interface {
	isFormula()
	// key returns a canonical, collision-free structural signature used to
	// index facts and detect duplicates. It is not meant for display; use
	// Pretty or PrettyMarkup for that.
	key() string
}

// Var is a propositional variable or first-order term name.
type Var struct {
	Name string
}

// Predicate is an atomic relation; Args are term names, never nested terms.
type Predicate struct {
	Name string
	Args []string
}

// Not is negation.
type Not struct {
	Child Formula
}

// And is conjunction.
type And struct {
	Left, Right Formula
}

// Or is disjunction.
type Or struct {
	Left, Right Formula
}

// Implies is implication, Left -> Right.
type Implies struct {
	Left, Right Formula
}

// Iff is the biconditional, Left <-> Right.
type Iff struct {
	Left, Right Formula
}

// ForAll binds Name within Body: universal quantification.
type ForAll struct {
	Name string
	Body Formula
}

// Exists binds Name within Body: existential quantification.
type Exists struct {
	Name string
	Body Formula
}

func (Var) isFormula()       {}
func (Predicate) isFormula() {}
func (Not) isFormula()       {}
func (And) isFormula()       {}
func (Or) isFormula()        {}
func (Implies) isFormula()   {}
func (Iff) isFormula()       {}
func (ForAll) isFormula()    {}
func (Exists) isFormula()    {}

func (v Var) key() string { return "V(" + v.Name + ")" }

func (p Predicate) key() string {
	var sb strings.Builder
	sb.WriteString("P(")
	sb.WriteString(p.Name)
	for _, a := range p.Args {
		sb.WriteByte(',')
		sb.WriteString(a)
	}
	sb.WriteByte(')')
	return sb.String()
}

func (n Not) key() string { return "N(" + n.Child.key() + ")" }
func (a And) key() string { return "A(" + a.Left.key() + "," + a.Right.key() + ")" }
func (o Or) key() string  { return "O(" + o.Left.key() + "," + o.Right.key() + ")" }
func (i Implies) key() string {
	return "I(" + i.Left.key() + "," + i.Right.key() + ")"
}
func (i Iff) key() string { return "F(" + i.Left.key() + "," + i.Right.key() + ")" }
func (q ForAll) key() string {
	return "U(" + q.Name + "," + q.Body.key() + ")"
}
func (q Exists) key() string {
	return "E(" + q.Name + "," + q.Body.key() + ")"
}

// Key returns the canonical structural signature of f. Two formulas are
// structurally equal iff their Key values are equal.
func Key(f Formula) string { return f.key() }

// Equal reports whether a and b are the same formula structurally.
func Equal(a, b Formula) bool { return a.key() == b.key() }

// FreeVariables returns the term names appearing free in f, in
// first-encountered order from a left-to-right traversal. Names bound by an
// enclosing ForAll/Exists are excluded within that subtree. Names occurring
// in Var and as Predicate arguments are both collected.
func FreeVariables(f Formula) []string {
	var order []string
	seen := make(map[string]bool)
	collectFreeVariables(f, nil, seen, &order)
	return order
}

func collectFreeVariables(f Formula, bound map[string]bool, seen map[string]bool, order *[]string) {
	note := func(name string) {
		if bound[name] {
			return
		}
		if seen[name] {
			return
		}
		seen[name] = true
		*order = append(*order, name)
	}
	switch n := f.(type) {
	case Var:
		note(n.Name)
	case Predicate:
		for _, a := range n.Args {
			note(a)
		}
	case Not:
		collectFreeVariables(n.Child, bound, seen, order)
	case And:
		collectFreeVariables(n.Left, bound, seen, order)
		collectFreeVariables(n.Right, bound, seen, order)
	case Or:
		collectFreeVariables(n.Left, bound, seen, order)
		collectFreeVariables(n.Right, bound, seen, order)
	case Implies:
		collectFreeVariables(n.Left, bound, seen, order)
		collectFreeVariables(n.Right, bound, seen, order)
	case Iff:
		collectFreeVariables(n.Left, bound, seen, order)
		collectFreeVariables(n.Right, bound, seen, order)
	case ForAll:
		inner := withBound(bound, n.Name)
		collectFreeVariables(n.Body, inner, seen, order)
	case Exists:
		inner := withBound(bound, n.Name)
		collectFreeVariables(n.Body, inner, seen, order)
	}
}

func withBound(bound map[string]bool, name string) map[string]bool {
	out := make(map[string]bool, len(bound)+1)
	for k := range bound {
		out[k] = true
	}
	out[name] = true
	return out
}

// Atomics returns the sub-formulas of f that are Var or Predicate, with
// bound-variable occurrences excluded as in FreeVariables. Order is
// first-encountered; duplicates (by structural Key) are collapsed to their
// first occurrence.
func Atomics(f Formula) []Formula {
	var order []Formula
	seen := make(map[string]bool)
	collectAtomics(f, nil, seen, &order)
	return order
}

func collectAtomics(f Formula, bound map[string]bool, seen map[string]bool, order *[]Formula) {
	note := func(name string, atom Formula) {
		if bound[name] {
			return
		}
		k := atom.key()
		if seen[k] {
			return
		}
		seen[k] = true
		*order = append(*order, atom)
	}
	switch n := f.(type) {
	case Var:
		note(n.Name, n)
	case Predicate:
		// A predicate occurrence counts as bound when any of its argument
		// names is captured by an enclosing quantifier.
		excluded := false
		for _, a := range n.Args {
			if bound[a] {
				excluded = true
				break
			}
		}
		if !excluded {
			note(n.key(), n)
		}
	case Not:
		collectAtomics(n.Child, bound, seen, order)
	case And:
		collectAtomics(n.Left, bound, seen, order)
		collectAtomics(n.Right, bound, seen, order)
	case Or:
		collectAtomics(n.Left, bound, seen, order)
		collectAtomics(n.Right, bound, seen, order)
	case Implies:
		collectAtomics(n.Left, bound, seen, order)
		collectAtomics(n.Right, bound, seen, order)
	case Iff:
		collectAtomics(n.Left, bound, seen, order)
		collectAtomics(n.Right, bound, seen, order)
	case ForAll:
		inner := withBound(bound, n.Name)
		collectAtomics(n.Body, inner, seen, order)
	case Exists:
		inner := withBound(bound, n.Name)
		collectAtomics(n.Body, inner, seen, order)
	}
}

// SubConnectives returns a depth-first, post-order (children before
// parents) list of every non-atomic sub-formula of f. The top-level Not is
// included; a Not nested inside another connective is suppressed from the
// listing because its structural role is subsumed by its parent — it still
// descends into its child, it just does not contribute itself.
func SubConnectives(f Formula) []Formula {
	return subConnectives(f, true)
}

func subConnectives(f Formula, root bool) []Formula {
	switch n := f.(type) {
	case Var, Predicate:
		return nil
	case Not:
		out := subConnectives(n.Child, false)
		if root {
			out = append(out, n)
		}
		return out
	case And:
		out := subConnectives(n.Left, false)
		out = append(out, subConnectives(n.Right, false)...)
		return append(out, n)
	case Or:
		out := subConnectives(n.Left, false)
		out = append(out, subConnectives(n.Right, false)...)
		return append(out, n)
	case Implies:
		out := subConnectives(n.Left, false)
		out = append(out, subConnectives(n.Right, false)...)
		return append(out, n)
	case Iff:
		out := subConnectives(n.Left, false)
		out = append(out, subConnectives(n.Right, false)...)
		return append(out, n)
	case ForAll:
		out := subConnectives(n.Body, false)
		return append(out, n)
	case Exists:
		out := subConnectives(n.Body, false)
		return append(out, n)
	}
	return nil
}

// Solve evaluates f under a propositional assignment. Var looks itself up
// in the assignment (defaulting to false when absent); Predicate is always
// false (no first-order semantics at this level); the connectives follow
// classical truth tables; ForAll/Exists are always false (quantifiers are
// out of scope for the truth table).
func Solve(f Formula, assignment map[string]bool) bool {
	switch n := f.(type) {
	case Var:
		return assignment[n.Name]
	case Predicate:
		return false
	case Not:
		return !Solve(n.Child, assignment)
	case And:
		return Solve(n.Left, assignment) && Solve(n.Right, assignment)
	case Or:
		return Solve(n.Left, assignment) || Solve(n.Right, assignment)
	case Implies:
		return !Solve(n.Left, assignment) || Solve(n.Right, assignment)
	case Iff:
		return Solve(n.Left, assignment) == Solve(n.Right, assignment)
	case ForAll, Exists:
		return false
	}
	return false
}

// Substitute returns a new formula with every free occurrence of term name
// x replaced by y. Substitution inside ForAll(z, …) or Exists(z, …) with
// z == x leaves that subtree unchanged; otherwise it recurses into the
// body. Bound variables are never renamed, so callers must keep y fresh
// with respect to the binders it may land under.
func Substitute(f Formula, x, y string) Formula {
	switch n := f.(type) {
	case Var:
		if n.Name == x {
			return Var{Name: y}
		}
		return n
	case Predicate:
		args := make([]string, len(n.Args))
		for i, a := range n.Args {
			if a == x {
				args[i] = y
			} else {
				args[i] = a
			}
		}
		return Predicate{Name: n.Name, Args: args}
	case Not:
		return Not{Child: Substitute(n.Child, x, y)}
	case And:
		return And{Left: Substitute(n.Left, x, y), Right: Substitute(n.Right, x, y)}
	case Or:
		return Or{Left: Substitute(n.Left, x, y), Right: Substitute(n.Right, x, y)}
	case Implies:
		return Implies{Left: Substitute(n.Left, x, y), Right: Substitute(n.Right, x, y)}
	case Iff:
		return Iff{Left: Substitute(n.Left, x, y), Right: Substitute(n.Right, x, y)}
	case ForAll:
		if n.Name == x {
			return n
		}
		return ForAll{Name: n.Name, Body: Substitute(n.Body, x, y)}
	case Exists:
		if n.Name == x {
			return n
		}
		return Exists{Name: n.Name, Body: Substitute(n.Body, x, y)}
	}
	return f
}

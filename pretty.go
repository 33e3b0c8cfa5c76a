package tableau

import "strings"

// Atomics bind tightest, quantifiers next, then Not, And, Or, and finally
// Implies/Iff at the loosest (and equal) level.
const (
	precAtom       = 0
	precQuantifier = 1
	precNot        = 2
	precAnd        = 3
	precOr         = 4
	precImplies    = 5
	precIff        = 5
)

type symbolSet struct {
	not, and, or, implies, iff, forall, exists string
}

var plainSymbols = symbolSet{not: "¬", and: "∧", or: "∨", implies: "→", iff: "↔", forall: "∀", exists: "∃"}

// The \neg macro keeps a trailing space so the following atom does not fuse
// into the control word; the plain ¬ hugs its operand.
var markupSymbols = symbolSet{not: `\neg `, and: `\land`, or: `\lor`, implies: `\to`, iff: `\leftrightarrow`, forall: `\forall`, exists: `\exists`}

// Pretty renders f using plain Unicode connective symbols (¬ ∧ ∨ → ↔ ∀ ∃).
func Pretty(f Formula) string {
	var sb strings.Builder
	writeFormula(&sb, f, plainSymbols, -1, false)
	return sb.String()
}

// PrettyMarkup renders f using LaTeX-style macro symbols (\neg, \land, …)
// in place of the Unicode connectives.
func PrettyMarkup(f Formula) string {
	var sb strings.Builder
	writeFormula(&sb, f, markupSymbols, -1, false)
	return sb.String()
}

func precedenceOf(f Formula) int {
	switch f.(type) {
	case Var, Predicate:
		return precAtom
	case ForAll, Exists:
		return precQuantifier
	case Not:
		return precNot
	case And:
		return precAnd
	case Or:
		return precOr
	case Implies:
		return precImplies
	case Iff:
		return precIff
	}
	return precAtom
}

// associative reports whether a parent of this shape tolerates a child of
// the SAME precedence without parenthesizing it. And, Or, and Not are
// associative in this sense; Implies, Iff, and the quantifiers are not, so
// equal-precedence children still get parens under them.
func associative(f Formula) bool {
	switch f.(type) {
	case And, Or, Not:
		return true
	default:
		return false
	}
}

// writeFormula writes f into sb. parentPrec is the precedence of the
// enclosing formula (-1 at the root, meaning "never parenthesize"), and
// parentAssociative says whether that enclosing formula tolerates an
// equal-precedence child unparenthesized.
func writeFormula(sb *strings.Builder, f Formula, sym symbolSet, parentPrec int, parentAssociative bool) {
	prec := precedenceOf(f)
	needsParens := parentPrec >= 0 && (prec > parentPrec || (prec == parentPrec && !parentAssociative))
	if needsParens {
		sb.WriteByte('(')
	}
	switch n := f.(type) {
	case Var:
		sb.WriteString(n.Name)
	case Predicate:
		sb.WriteString(n.Name)
		sb.WriteByte('(')
		for i, a := range n.Args {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(a)
		}
		sb.WriteByte(')')
	case Not:
		sb.WriteString(sym.not)
		writeFormula(sb, n.Child, sym, prec, associative(f))
	case And:
		writeFormula(sb, n.Left, sym, prec, associative(f))
		sb.WriteByte(' ')
		sb.WriteString(sym.and)
		sb.WriteByte(' ')
		writeFormula(sb, n.Right, sym, prec, associative(f))
	case Or:
		writeFormula(sb, n.Left, sym, prec, associative(f))
		sb.WriteByte(' ')
		sb.WriteString(sym.or)
		sb.WriteByte(' ')
		writeFormula(sb, n.Right, sym, prec, associative(f))
	case Implies:
		writeFormula(sb, n.Left, sym, prec, associative(f))
		sb.WriteByte(' ')
		sb.WriteString(sym.implies)
		sb.WriteByte(' ')
		writeFormula(sb, n.Right, sym, prec, associative(f))
	case Iff:
		writeFormula(sb, n.Left, sym, prec, associative(f))
		sb.WriteByte(' ')
		sb.WriteString(sym.iff)
		sb.WriteByte(' ')
		writeFormula(sb, n.Right, sym, prec, associative(f))
	case ForAll:
		sb.WriteString(sym.forall)
		sb.WriteString(n.Name)
		sb.WriteByte(' ')
		writeFormula(sb, n.Body, sym, prec, associative(f))
	case Exists:
		sb.WriteString(sym.exists)
		sb.WriteString(n.Name)
		sb.WriteByte(' ')
		writeFormula(sb, n.Body, sym, prec, associative(f))
	}
	if needsParens {
		sb.WriteByte(')')
	}
}

// Package parser turns formula source text into a tableau.Formula. It is an
// external collaborator to the core prover — tableau.New only ever accepts
// already-built Formula values — but without it nothing in this repository
// is runnable end to end, so it is supplied here as a pure function from
// text to Formula or a structured ParseError.
package parser

import (
	"fmt"

	"github.com/rfielding/tableau"
)

// tokenKind enumerates the lexical alphabet.
type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNot
	tokAnd
	tokOr
	tokImplies
	tokIff
	tokComma
	tokSlash
	tokLParen
	tokRParen
	tokForAll
	tokExists
	tokName
)

type token struct {
	kind tokenKind
	ch   string // for tokName, the single-character name
	pos  int
}

// ParseError is returned for any malformed input: an unclosed parenthesis,
// an unexpected token, or an invalid predicate argument list.
type ParseError struct {
	Message string
	Pos     int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at %d: %s", e.Pos, e.Message)
}

// lexer converts source runes into tokens per the fixed alphabet:
// ¬ ! -> Not; ∧ & ∪ -> And; ∨ | ∩ -> Or; → > -> Implies; ↔ = -> Iff;
// , -> Comma; / -> Slash; ( ) -> parens; \ -> ForAll; . -> Exists;
// space is skipped; any other single character is a Name (Var or
// predicate/bound name).
func lex(src string) ([]token, error) {
	var toks []token
	runes := []rune(src)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch r {
		case ' ', '\t', '\n', '\r':
			continue
		case '¬', '!':
			toks = append(toks, token{kind: tokNot, pos: i})
		case '∧', '&', '∪':
			toks = append(toks, token{kind: tokAnd, pos: i})
		case '∨', '|', '∩':
			toks = append(toks, token{kind: tokOr, pos: i})
		case '→', '>':
			toks = append(toks, token{kind: tokImplies, pos: i})
		case '↔', '=':
			toks = append(toks, token{kind: tokIff, pos: i})
		case ',':
			toks = append(toks, token{kind: tokComma, pos: i})
		case '/':
			toks = append(toks, token{kind: tokSlash, pos: i})
		case '(':
			toks = append(toks, token{kind: tokLParen, pos: i})
		case ')':
			toks = append(toks, token{kind: tokRParen, pos: i})
		case '\\':
			toks = append(toks, token{kind: tokForAll, pos: i})
		case '.':
			toks = append(toks, token{kind: tokExists, pos: i})
		default:
			toks = append(toks, token{kind: tokName, ch: string(r), pos: i})
		}
	}
	toks = append(toks, token{kind: tokEOF, pos: len(runes)})
	return toks, nil
}

type parser struct {
	toks []token
	pos  int
}

// Parse converts src into a Formula following the three-level
// recursive-descent grammar:
//
//	L3 := L2 (('→'|'↔') L3)?
//	L2 := L1 (('∧'|'∨') L2)?
//	L1 := '¬' L1 | '\' name L1 | '.' name L1
//	    | name '(' name (',' name)* ')' | name | '(' L3 ')'
//
// Both L3 and L2 are right-associative, matching the source grammar.
func Parse(src string) (tableau.Formula, error) {
	toks, err := lex(src)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	// Tokens left over after the top-level formula are ignored rather than
	// rejected.
	return p.parseL3()
}

func (p *parser) cur() token { return p.toks[p.pos] }

func (p *parser) advance() token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *parser) parseL3() (tableau.Formula, error) {
	left, err := p.parseL2()
	if err != nil {
		return nil, err
	}
	switch p.cur().kind {
	case tokImplies:
		p.advance()
		right, err := p.parseL3()
		if err != nil {
			return nil, err
		}
		return tableau.Implies{Left: left, Right: right}, nil
	case tokIff:
		p.advance()
		right, err := p.parseL3()
		if err != nil {
			return nil, err
		}
		return tableau.Iff{Left: left, Right: right}, nil
	}
	return left, nil
}

func (p *parser) parseL2() (tableau.Formula, error) {
	left, err := p.parseL1()
	if err != nil {
		return nil, err
	}
	switch p.cur().kind {
	case tokAnd:
		p.advance()
		right, err := p.parseL2()
		if err != nil {
			return nil, err
		}
		return tableau.And{Left: left, Right: right}, nil
	case tokOr:
		p.advance()
		right, err := p.parseL2()
		if err != nil {
			return nil, err
		}
		return tableau.Or{Left: left, Right: right}, nil
	}
	return left, nil
}

func (p *parser) parseL1() (tableau.Formula, error) {
	t := p.cur()
	switch t.kind {
	case tokNot:
		p.advance()
		child, err := p.parseL1()
		if err != nil {
			return nil, err
		}
		return tableau.Not{Child: child}, nil
	case tokForAll:
		p.advance()
		name, err := p.expectName()
		if err != nil {
			return nil, err
		}
		body, err := p.parseL1()
		if err != nil {
			return nil, err
		}
		return tableau.ForAll{Name: name, Body: body}, nil
	case tokExists:
		p.advance()
		name, err := p.expectName()
		if err != nil {
			return nil, err
		}
		body, err := p.parseL1()
		if err != nil {
			return nil, err
		}
		return tableau.Exists{Name: name, Body: body}, nil
	case tokLParen:
		p.advance()
		inner, err := p.parseL3()
		if err != nil {
			return nil, err
		}
		if p.cur().kind != tokRParen {
			return nil, &ParseError{Message: "unclosed paren", Pos: p.cur().pos}
		}
		p.advance()
		return inner, nil
	case tokName:
		name := t.ch
		p.advance()
		if p.cur().kind == tokLParen {
			return p.parsePredicateArgs(name)
		}
		return tableau.Var{Name: name}, nil
	default:
		return nil, &ParseError{Message: "unexpected token", Pos: t.pos}
	}
}

func (p *parser) parsePredicateArgs(name string) (tableau.Formula, error) {
	p.advance() // consume '('
	var args []string
	first, err := p.expectName()
	if err != nil {
		return nil, &ParseError{Message: "invalid predicate argument list", Pos: p.cur().pos}
	}
	args = append(args, first)
	for p.cur().kind == tokComma {
		p.advance()
		next, err := p.expectName()
		if err != nil {
			return nil, &ParseError{Message: "invalid predicate argument list", Pos: p.cur().pos}
		}
		args = append(args, next)
	}
	if p.cur().kind != tokRParen {
		return nil, &ParseError{Message: "unclosed paren", Pos: p.cur().pos}
	}
	p.advance()
	return tableau.Predicate{Name: name, Args: args}, nil
}

func (p *parser) expectName() (string, error) {
	t := p.cur()
	if t.kind != tokName {
		return "", &ParseError{Message: "unexpected token", Pos: t.pos}
	}
	p.advance()
	return t.ch, nil
}

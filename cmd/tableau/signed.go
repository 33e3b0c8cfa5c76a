package main

import (
	"fmt"
	"strings"

	"github.com/rfielding/tableau"
	"github.com/rfielding/tableau/parser"
)

// parseSignedArg accepts "formula" (defaulting to true) or "formula=true" /
// "formula=false", and returns the parsed signed formula. A trailing "="
// whose right side is not a truth literal is left alone: "=" doubles as the
// biconditional in the formula alphabet, so "a=b" is a formula, not a sign.
func parseSignedArg(arg string) (tableau.SignedFormula, error) {
	text := arg
	expect := true
	if idx := strings.LastIndex(arg, "="); idx >= 0 {
		switch arg[idx+1:] {
		case "true", "T", "1":
			text = arg[:idx]
		case "false", "F", "0":
			text = arg[:idx]
			expect = false
		}
	}
	f, err := parser.Parse(text)
	if err != nil {
		return tableau.SignedFormula{}, fmt.Errorf("parsing %q: %w", text, err)
	}
	return tableau.SignedFormula{F: f, Expect: expect}, nil
}

func parseSignedArgs(args []string) ([]tableau.SignedFormula, error) {
	out := make([]tableau.SignedFormula, 0, len(args))
	for _, a := range args {
		sf, err := parseSignedArg(a)
		if err != nil {
			return nil, err
		}
		out = append(out, sf)
	}
	return out, nil
}

package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rfielding/tableau"
)

func TestParseSignedArgDefaultsTrue(t *testing.T) {
	sf, err := parseSignedArg("a")
	require.NoError(t, err)
	require.True(t, sf.Expect)
}

func TestParseSignedArgExplicitFalse(t *testing.T) {
	sf, err := parseSignedArg("a=false")
	require.NoError(t, err)
	require.False(t, sf.Expect)
}

func TestParseSignedArgIffStaysFormula(t *testing.T) {
	// "=" is also the biconditional, so a right side that is not a truth
	// literal keeps the whole argument as one formula.
	sf, err := parseSignedArg("a=b")
	require.NoError(t, err)
	require.True(t, sf.Expect)
	require.Equal(t, "a ↔ b", tableau.Pretty(sf.F))
}

func TestRootCommandHasSubcommands(t *testing.T) {
	root := newRootCmd()
	names := make(map[string]bool)
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	require.True(t, names["prove"])
	require.True(t, names["table"])
	require.True(t, names["dot"])
}

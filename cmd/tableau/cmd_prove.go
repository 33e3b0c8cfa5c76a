package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/rfielding/tableau"
)

var flagProveDOT bool

func newProveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prove formula[=bool] [formula[=bool] ...]",
		Short: "Run the tableau on one or more signed formulas and report closure",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			signed, err := parseSignedArgs(args)
			if err != nil {
				return err
			}
			e := tableau.New(signed, engineOptions()...)
			stats := e.Stats()

			closedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
			openStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)

			if e.Closed() {
				fmt.Println(closedStyle.Render("CLOSED") + " — every branch refuted")
			} else {
				fmt.Println(openStyle.Render("OPEN") + fmt.Sprintf(" — %d open branch(es) remain", stats.OpenLeaves))
			}
			fmt.Printf("nodes=%d edges=%d steps=%d constants=%d facts=%d budget_spent=%v\n",
				stats.Nodes, stats.Edges, stats.Steps, stats.Constants, stats.Facts, stats.BudgetSpent)

			if flagProveDOT {
				fmt.Println()
				fmt.Print(e.DOT())
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&flagProveDOT, "dot", false, "also print the proof tree as DOT")
	return cmd
}

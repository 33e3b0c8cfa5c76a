package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/rfielding/tableau"
	"github.com/rfielding/tableau/parser"
)

func newTableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "table formula",
		Short: "Print the truth table of a formula",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := parser.Parse(args[0])
			if err != nil {
				return err
			}
			tbl := tableau.BuildTable(f)

			headerStyle := lipgloss.NewStyle().Bold(true).Underline(true)
			var sb strings.Builder
			for i, h := range tbl.Headers {
				if i > 0 {
					sb.WriteString("  ")
				}
				sb.WriteString(headerStyle.Render(h))
			}
			fmt.Println(sb.String())

			for _, row := range tbl.Rows {
				var rb strings.Builder
				for i, v := range row {
					if i > 0 {
						rb.WriteString("  ")
					}
					if v {
						rb.WriteString("T")
					} else {
						rb.WriteString("F")
					}
				}
				fmt.Println(rb.String())
			}
			return nil
		},
	}
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rfielding/tableau"
)

func newDotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dot formula[=bool] [formula[=bool] ...]",
		Short: "Run the tableau and print the proof tree as DOT",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			signed, err := parseSignedArgs(args)
			if err != nil {
				return err
			}
			e := tableau.New(signed, engineOptions()...)
			fmt.Print(e.DOT())
			return nil
		},
	}
}

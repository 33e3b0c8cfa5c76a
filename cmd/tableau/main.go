// Command tableau is the CLI front end for the tableau prover: it parses
// formula text, runs the engine, and renders the result as a closure
// summary, a truth table, or raw DOT, mirroring the command-per-file cobra
// layout used across the retrieval pack's CLI tools.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/rfielding/tableau"
)

var (
	logger *zap.SugaredLogger

	flagSteps     int
	flagConstants int
	flagFacts     int
	flagVerbose   bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "tableau",
		Short: "Analytic tableau prover for classical first-order logic",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := zap.NewProductionConfig()
			level := zapcore.InfoLevel
			if flagVerbose {
				level = zapcore.DebugLevel
			}
			cfg.Level = zap.NewAtomicLevelAt(level)
			cfg.Encoding = "console"
			cfg.EncoderConfig.TimeKey = ""
			l, err := cfg.Build()
			if err != nil {
				return fmt.Errorf("building logger: %w", err)
			}
			logger = l.Sugar()
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	root.PersistentFlags().IntVar(&flagSteps, "step-limit", 0, "override the engine's step budget (0 = default)")
	root.PersistentFlags().IntVar(&flagConstants, "constant-limit", 0, "override the engine's constant budget (0 = default)")
	root.PersistentFlags().IntVar(&flagFacts, "fact-limit", 0, "override the engine's fact budget (0 = default)")
	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newProveCmd())
	root.AddCommand(newTableCmd())
	root.AddCommand(newDotCmd())
	return root
}

func engineOptions() []tableau.Option {
	var opts []tableau.Option
	if flagSteps > 0 {
		opts = append(opts, tableau.WithStepLimit(flagSteps))
	}
	if flagConstants > 0 {
		opts = append(opts, tableau.WithConstantLimit(flagConstants))
	}
	if flagFacts > 0 {
		opts = append(opts, tableau.WithFactLimit(flagFacts))
	}
	opts = append(opts, tableau.WithLogger(logger))
	return opts
}

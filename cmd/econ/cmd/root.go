package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/econlab/internal/logging"
)

// NewRootCommand builds the econ command tree.
func NewRootCommand() *cobra.Command {
	var logCfg logging.Config

	root := &cobra.Command{
		Use:   "econ",
		Short: "Engineering economics calculator",
		Long: `econ evaluates interest conversions, depreciation schedules, mortgages
and capital-budgeting scenarios.

Commands:
  convert   - convert a rate between compounding conventions
  deprec    - print a depreciation book table
  mortgage  - payment, renewal balance and amortization schedule
  worth     - present/annual worth, IRR, de facto MARR and selection
  budget    - project relationship and affordable combinations`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logging.New(logCfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			slog.SetDefault(logger)
			slog.Debug("command started", "cmd", cmd.Name(), "args", args)

			return nil
		},
	}

	root.PersistentFlags().StringVar(&logCfg.Level, "log-level", "warn", "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&logCfg.Format, "log-format", "text", "log format (text, json)")

	root.AddCommand(
		newConvertCmd(),
		newDeprecCmd(),
		newMortgageCmd(),
		newWorthCmd(),
		newBudgetCmd(),
	)

	return root
}

// Execute runs the econ command tree.
func Execute() error {
	err := NewRootCommand().Execute()
	if err != nil {
		slog.Error("command failed", "err", err)
	}

	return err
}

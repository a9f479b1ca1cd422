package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/econlab/instrument"
	"github.com/katalvlaran/econlab/internal/scenario"
)

func newBudgetCmd() *cobra.Command {
	var path string

	c := &cobra.Command{
		Use:   "budget --scenario <file>",
		Short: "Project relationship and affordable combinations",
		Long: `Classifies the project costs of a scenario against its budget and lists
every combination of projects the budget can fund.

Example:
  econ budget --scenario plant.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBudget(cmd, path)
		},
	}

	c.Flags().StringVar(&path, "scenario", "", "scenario file (yaml or toml)")
	_ = c.MarkFlagRequired("scenario")

	return c
}

func runBudget(cmd *cobra.Command, path string) error {
	s, err := scenario.Load(path)
	if err != nil {
		return err
	}
	slog.Info("loaded scenario", "path", path, "name", s.Name, "projects", len(s.Projects))

	costs := s.Costs()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "budget %s: %s\n", money(s.Budget), instrument.Relate(costs, s.Budget))

	tw := newTable(out)
	fmt.Fprintln(tw, "COMBINATION\tCOST")
	for combo := range instrument.RelatedCombinations(costs, s.Budget) {
		names := make([]string, len(combo))
		total := 0.0
		for k, j := range combo {
			names[k] = s.Projects[j].Name
			total += costs[j]
		}
		label := strings.Join(names, " + ")
		if label == "" {
			label = "(none)"
		}
		fmt.Fprintf(tw, "%s\t%s\n", label, money(total))
	}

	return tw.Flush()
}

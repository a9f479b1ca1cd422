package cmd

import (
	"cmp"
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/econlab/calc"
	"github.com/katalvlaran/econlab/cashflow"
	"github.com/katalvlaran/econlab/instrument"
	"github.com/katalvlaran/econlab/interest"
	"github.com/katalvlaran/econlab/internal/scenario"
)

type worthOptions struct {
	scenario string
	guess    float64
	maxIter  int
}

func newWorthCmd() *cobra.Command {
	o := worthOptions{}

	c := &cobra.Command{
		Use:   "worth --scenario <file>",
		Short: "Present/annual worth, IRR, de facto MARR and selection",
		Long: `Evaluates every project of a scenario at its interest rate: present worth,
annual worth, repeated present worth over the horizon, payback and IRR.
With a budget the de facto MARR is reported; the best alternative is then
picked by incremental IRR against the scenario MARR (or the de facto one).

Examples:
  econ worth --scenario plant.yaml
  econ worth --scenario plant.toml --max-iter 500`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWorth(cmd, o)
		},
	}

	c.Flags().StringVar(&o.scenario, "scenario", "", "scenario file (yaml or toml)")
	c.Flags().Float64Var(&o.guess, "guess", 0, "initial IRR guess (effective)")
	c.Flags().IntVar(&o.maxIter, "max-iter", 1000, "Newton step budget for IRR (0 = unbounded)")
	_ = c.MarkFlagRequired("scenario")

	return c
}

func runWorth(cmd *cobra.Command, o worthOptions) error {
	s, err := scenario.Load(o.scenario)
	if err != nil {
		return err
	}
	slog.Info("loaded scenario", "path", o.scenario, "name", s.Name, "projects", len(s.Projects))

	i, err := s.Interest.Compound()
	if err != nil {
		return err
	}
	guess := interest.Effective{Rate: o.guess}
	opts := []calc.Option{calc.WithContext(cmd.Context()), calc.WithMaxIter(o.maxIter)}

	projects := s.Instruments()
	irrs := make([]interest.Effective, len(projects))

	out := cmd.OutOrStdout()
	tw := newTable(out)
	fmt.Fprintln(tw, "PROJECT\tPW\tAW\tRPW\tPAYBACK\tIRR")
	for k, p := range projects {
		irr, err := cashflow.IRR(p.CashFlows(), guess, calc.Epsilon, opts...)
		if err != nil {
			return fmt.Errorf("project %q: %w", s.Projects[k].Name, err)
		}
		irrs[k] = irr

		rpw := "-"
		if s.Horizon > 0 {
			rpw = money(cashflow.RepeatedPresentWorth(p.CashFlows(), i, s.Horizon))
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", s.Projects[k].Name,
			money(cashflow.PresentWorth(p.CashFlows(), i)),
			money(cashflow.AnnualWorth(p.CashFlows(), i, 0)),
			rpw,
			periods(cashflow.Payback(receipts(p), -p.Initial)),
			rate(irr.Rate))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	marr := interest.Effective{Rate: s.MARR}
	if s.Budget > 0 {
		deFacto, err := instrument.DeFactoMARR(projects, s.Budget, guess, calc.Epsilon, opts...)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "\nde facto MARR at budget %s: %s\n", money(s.Budget), rate(deFacto.Rate))
		if s.MARR == 0 {
			marr = deFacto
		}
	}

	return printSelection(cmd, s, irrs, marr, guess, opts)
}

// receipts drops the initial amount so that payback measures the time for
// the remaining flows to recover it.
func receipts(p instrument.Project) iter.Seq[cashflow.Flow] {
	return func(yield func(cashflow.Flow) bool) {
		first := true
		for f := range p.CashFlows() {
			if first {
				first = false
				continue
			}
			if !yield(f) {
				return
			}
		}
	}
}

// printSelection ranks the projects that beat marr by cost and picks the best
// one by incremental IRR.
func printSelection(cmd *cobra.Command, s *scenario.Scenario, irrs []interest.Effective, marr interest.Effective, guess interest.Compound, opts []calc.Option) error {
	var idx []int
	for k, irr := range irrs {
		if interest.Less(marr, irr) {
			idx = append(idx, k)
		}
	}
	slices.SortStableFunc(idx, func(a, b int) int {
		return cmp.Compare(s.Projects[b].Initial, s.Projects[a].Initial)
	})

	candidates := make([]instrument.Project, len(idx))
	ranked := make([]interest.Effective, len(idx))
	for k, j := range idx {
		candidates[k] = s.Projects[j].Instrument()
		ranked[k] = irrs[j]
	}

	out := cmd.OutOrStdout()
	table, err := instrument.IRRTable(candidates, guess, calc.Epsilon, opts...)
	if errors.Is(err, instrument.ErrLifeMismatch) {
		slog.Warn("skipping incremental selection", "err", err)
		return nil
	}
	if err != nil {
		return err
	}

	best, ok := instrument.Select(ranked, table, marr)
	if !ok {
		fmt.Fprintf(out, "no project beats MARR %s\n", rate(marr.Rate))
		return nil
	}
	fmt.Fprintf(out, "selected at MARR %s: %s\n", rate(marr.Rate), s.Projects[idx[best]].Name)

	return nil
}

package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/econlab/deprec"
	"github.com/katalvlaran/econlab/internal/scenario"
)

type deprecOptions struct {
	asset    scenario.Asset
	rate     float64
	scenario string
	market   float64
}

func newDeprecCmd() *cobra.Command {
	o := deprecOptions{}

	c := &cobra.Command{
		Use:   "deprec",
		Short: "Print a depreciation book table",
		Long: `Prints the depreciation charge and book value of every period.

Methods: sl, db, ddb, syd, uop (or their long names).

Examples:
  econ deprec --method sl --basis 92000 --salvage 19000 --life 4
  econ deprec --method ddb --basis 100000 --salvage 10000 --life 5 --floor
  econ deprec --method uop --basis 500000 --salvage 50000 --prods 1000,3000,2000
  econ deprec --scenario plant.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("rate") {
				o.asset.Rate = &scenario.Interest{Kind: "effective", Rate: o.rate}
			}

			return runDeprec(cmd, o)
		},
	}

	c.Flags().StringVar(&o.asset.Method, "method", "sl", "depreciation method")
	c.Flags().Float64Var(&o.asset.Basis, "basis", 0, "cost basis")
	c.Flags().Float64Var(&o.asset.Salvage, "salvage", 0, "salvage value")
	c.Flags().IntVar(&o.asset.Life, "life", 0, "useful life in periods")
	c.Flags().Float64Var(&o.rate, "rate", 0, "declining-balance rate (overrides salvage)")
	c.Flags().BoolVar(&o.asset.Floor, "floor", false, "keep double-declining book above salvage")
	c.Flags().Float64SliceVar(&o.asset.Production, "prods", nil, "per-period production (uop)")
	c.Flags().StringVar(&o.scenario, "scenario", "", "print every asset of a scenario file instead")
	c.Flags().Float64Var(&o.market, "market", -1, "market value at disposal, for gain/recapture/loss")

	return c
}

func runDeprec(cmd *cobra.Command, o deprecOptions) error {
	assets := []scenario.Asset{o.asset}
	if o.scenario != "" {
		s, err := scenario.Load(o.scenario)
		if err != nil {
			return err
		}
		slog.Info("loaded scenario", "path", o.scenario, "name", s.Name, "assets", len(s.Assets))
		assets = s.Assets
	}

	out := cmd.OutOrStdout()
	for k, a := range assets {
		sched, err := a.Schedule()
		if err != nil {
			return err
		}
		if k > 0 {
			fmt.Fprintln(out)
		}
		if a.Name != "" {
			fmt.Fprintf(out, "%s (%s)\n", a.Name, a.Method)
		}
		if err := printBooks(cmd, sched, o.market); err != nil {
			return err
		}
	}

	return nil
}

func printBooks(cmd *cobra.Command, s deprec.Schedule, market float64) error {
	tw := newTable(cmd.OutOrStdout())
	fmt.Fprintln(tw, "PERIOD\tCHARGE\tBOOK")
	for t := 0; t <= s.Periods(); t++ {
		charge := ""
		if t > 0 {
			charge = money(s.Amount(t))
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\n", t, charge, money(s.Book(t)))
	}
	if market >= 0 {
		fmt.Fprintf(tw, "gain\t%s\t\n", money(s.CapitalGain(market)))
		fmt.Fprintf(tw, "recaptured\t%s\t\n", money(s.RecapturedDepreciation(market)))
		fmt.Fprintf(tw, "loss\t%s\t\n", money(s.LossOnDisposal(market)))
	}

	return tw.Flush()
}

package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/econlab/instrument"
	"github.com/katalvlaran/econlab/internal/scenario"
)

type mortgageOptions struct {
	rate     scenario.Interest
	loan     scenario.Mortgage
	schedule bool
	scenario string
}

func newMortgageCmd() *cobra.Command {
	o := mortgageOptions{}

	c := &cobra.Command{
		Use:   "mortgage",
		Short: "Payment, renewal balance and amortization schedule",
		Long: `Prints the level payment of a mortgage and the principal left at the end
of its term. With --schedule every payment is listed in cents.

Examples:
  econ mortgage --principal 450000 --rate 0.060755 --count 2
  econ mortgage --principal 1000 --kind effective --rate 0.1 --frequency 1 --amortization 2 --schedule
  econ mortgage --scenario home.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMortgage(cmd, o)
		},
	}

	c.Flags().Float64Var(&o.loan.Principal, "principal", 0, "amount borrowed")
	c.Flags().StringVar(&o.rate.Kind, "kind", "nominal", "rate kind (effective, nominal, subperiod, continuous)")
	c.Flags().Float64Var(&o.rate.Rate, "rate", 0, "interest rate")
	c.Flags().Float64Var(&o.rate.Count, "count", 2, "compounding count (nominal, subperiod)")
	c.Flags().Float64Var(&o.loan.Frequency, "frequency", instrument.DefaultFrequency, "payments per period")
	c.Flags().Float64Var(&o.loan.Term, "term", instrument.DefaultTerm, "contract term in periods")
	c.Flags().Float64Var(&o.loan.Amortization, "amortization", instrument.DefaultAmortization, "amortization horizon in periods")
	c.Flags().BoolVar(&o.schedule, "schedule", false, "list every payment")
	c.Flags().StringVar(&o.scenario, "scenario", "", "read the mortgage from a scenario file")

	return c
}

func runMortgage(cmd *cobra.Command, o mortgageOptions) error {
	loan, rate := o.loan, o.rate
	if o.scenario != "" {
		s, err := scenario.Load(o.scenario)
		if err != nil {
			return err
		}
		if s.Mortgage == nil {
			return fmt.Errorf("%w: %s has no mortgage", scenario.ErrInvalidScenario, o.scenario)
		}
		slog.Info("loaded scenario", "path", o.scenario, "name", s.Name)
		loan, rate = *s.Mortgage, s.Interest
	}

	i, err := rate.Compound()
	if err != nil {
		return err
	}
	m, err := loan.Instrument(i)
	if err != nil {
		return err
	}
	slog.Debug("mortgage", "principal", m.Principal, "interest", m.Interest.ToEffective().Rate,
		"frequency", m.Frequency, "term", m.Term, "amortization", m.Amortization)

	renewal := m.Pay()
	out := cmd.OutOrStdout()
	tw := newTable(out)
	fmt.Fprintf(tw, "principal\t%s\n", money(m.Principal))
	fmt.Fprintf(tw, "payment\t%s\n", money(m.Payment()))
	fmt.Fprintf(tw, "balance after %g\t%s\n", m.Term, money(renewal.Principal))
	if err := tw.Flush(); err != nil {
		return err
	}

	if !o.schedule {
		return nil
	}

	fmt.Fprintln(out)
	tw = newTable(out)
	fmt.Fprintln(tw, "PERIOD\tPAYMENT\tINTEREST\tPRINCIPAL\tBALANCE")
	for _, row := range m.Schedule() {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", row.Period,
			row.Payment.StringFixed(2), row.Interest.StringFixed(2),
			row.Principal.StringFixed(2), row.Balance.StringFixed(2))
	}

	return tw.Flush()
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/econlab/interest"
	"github.com/katalvlaran/econlab/internal/scenario"
)

type convertOptions struct {
	from    scenario.Interest
	to      string
	toCount float64
	time    float64
}

func newConvertCmd() *cobra.Command {
	o := convertOptions{}

	c := &cobra.Command{
		Use:   "convert",
		Short: "Convert a rate between compounding conventions",
		Long: `Converts a rate to another compounding convention and prints the growth
factor over --time periods.

Examples:
  econ convert --kind nominal --rate 0.06 --count 12 --to effective
  econ convert --rate 0.1 --to subperiod --to-count 4 --time 2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, o)
		},
	}

	c.Flags().StringVar(&o.from.Kind, "kind", "effective", "source kind (effective, nominal, subperiod, continuous)")
	c.Flags().Float64Var(&o.from.Rate, "rate", 0, "source rate")
	c.Flags().Float64Var(&o.from.Count, "count", 0, "source compounding count (nominal, subperiod)")
	c.Flags().StringVar(&o.to, "to", "effective", "target kind")
	c.Flags().Float64Var(&o.toCount, "to-count", 12, "target compounding count (nominal, subperiod)")
	c.Flags().Float64Var(&o.time, "time", 1, "periods for the growth factor")

	return c
}

func runConvert(cmd *cobra.Command, o convertOptions) error {
	from, err := o.from.Compound()
	if err != nil {
		return err
	}

	var to interest.Compound
	switch o.to {
	case "effective":
		to = from.ToEffective()
	case "continuous":
		to = from.ToContinuous()
	case "nominal":
		to = from.ToNominal(o.toCount)
	case "subperiod":
		to = from.ToSubperiod(o.toCount)
	default:
		return fmt.Errorf("unknown target kind %q", o.to)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%v -> %v\n", from, to)
	fmt.Fprintf(out, "factor(%g) = %.10f\n", o.time, to.Factor(o.time))

	return nil
}

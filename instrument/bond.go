package instrument

import (
	"iter"

	"github.com/katalvlaran/econlab/calc"
	"github.com/katalvlaran/econlab/cashflow"
	"github.com/katalvlaran/econlab/interest"
	"github.com/katalvlaran/econlab/seq"
)

// Bond pays Coupon Frequency times per period until Maturity, then Face.
type Bond struct {
	Face      float64
	Coupon    float64
	Frequency float64
	Maturity  float64
}

// BondFromRate returns the bond whose coupon pays rate on the face value,
// converted to the per-payment subperiod rate.
func BondFromRate(face float64, rate interest.Compound, frequency, maturity float64) Bond {
	return Bond{
		Face:      face,
		Coupon:    face * rate.ToSubperiod(frequency).Rate,
		Frequency: frequency,
		Maturity:  maturity,
	}
}

// CashFlows yields a coupon at every 1/Frequency up to and including
// Maturity, then the face value at Maturity.
func (b Bond) CashFlows() iter.Seq[cashflow.Flow] {
	period := 1 / b.Frequency

	return func(yield func(cashflow.Flow) bool) {
		for t := range seq.Arange(period, b.Maturity+calc.Epsilon, period) {
			if !yield(cashflow.Flow{Time: t, Amount: b.Coupon}) {
				return
			}
		}
		yield(cashflow.Flow{Time: b.Maturity, Amount: b.Face})
	}
}

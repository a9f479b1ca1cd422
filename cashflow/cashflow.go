package cashflow

import (
	"cmp"
	"fmt"
	"iter"
	"math"
	"slices"

	"github.com/katalvlaran/econlab/calc"
	"github.com/katalvlaran/econlab/interest"
	"github.com/katalvlaran/econlab/seq"
)

const (
	opIRR   = "IRR"
	opYield = "Yield"
)

// Flow is an amount of money changing hands at a point in time.
// Positive amounts are receipts, negative amounts are outlays.
type Flow struct {
	Time   float64
	Amount float64
}

// Of returns the flows as a restartable sequence.
func Of(flows ...Flow) iter.Seq[Flow] {
	return slices.Values(flows)
}

// Discount moves f to time 0 at rate i.
func Discount(f Flow, i interest.Interest) Flow {
	return Flow{Time: 0, Amount: f.Amount / i.Factor(f.Time)}
}

// PresentWorth sums every flow discounted to time 0 at rate i.
func PresentWorth(flows iter.Seq[Flow], i interest.Interest) float64 {
	sum := 0.0
	for f := range flows {
		sum += Discount(f, i).Amount
	}

	return sum
}

// AnnualWorth spreads the present worth of flows into a uniform series over
// totalLife periods with the capital recovery factor. A non-positive
// totalLife selects Life(flows).
func AnnualWorth(flows iter.Seq[Flow], i interest.Compound, totalLife float64) float64 {
	all := slices.Collect(flows)
	if totalLife <= 0 {
		totalLife = lifeOf(all)
	}

	return PresentWorth(slices.Values(all), i) * interest.AP(i.ToEffective().Rate, totalLife)
}

// RepeatedPresentWorth is the present worth of flows repeated end to end
// until totalLife.
func RepeatedPresentWorth(flows iter.Seq[Flow], i interest.Interest, totalLife float64) float64 {
	return PresentWorth(Repeat(flows, totalLife), i)
}

// Payback returns the time at which the cumulative amount of flows, taken in
// time order, first reaches cost.
//
// The crossing is interpolated linearly between the indices of the two
// bracketing cumulative sums, not between their times. Payback is 0 when
// cost <= 0 or the first flow already covers it, and +Inf when the flows
// never cover it.
func Payback(flows iter.Seq[Flow], cost float64) float64 {
	sorted := slices.Collect(flows)
	slices.SortStableFunc(sorted, func(a, b Flow) int { return cmp.Compare(a.Time, b.Time) })

	prefix := make([]float64, len(sorted))
	acc := 0.0
	for k, f := range sorted {
		acc += f.Amount
		prefix[k] = acc
	}

	if cost <= 0 || (len(prefix) > 0 && cost <= prefix[0]) {
		return 0
	}
	for k := 1; k < len(prefix); k++ {
		if prefix[k] >= cost {
			return calc.Interpolate(cost, [2]float64{prefix[k-1], prefix[k]}, [2]float64{float64(k - 1), float64(k)})
		}
	}

	return math.Inf(1)
}

// DiscountedPayback is Payback over the flows discounted at rate i.
func DiscountedPayback(flows iter.Seq[Flow], cost float64, i interest.Interest) float64 {
	return Payback(discounted(flows, i), cost)
}

func discounted(flows iter.Seq[Flow], i interest.Interest) iter.Seq[Flow] {
	return func(yield func(Flow) bool) {
		for f := range flows {
			if !yield(Discount(f, i)) {
				return
			}
		}
	}
}

// IRR returns the effective rate at which the present worth of flows is zero,
// searched by Newton's method from guess to accuracy eps. opts bound the search.
func IRR(flows iter.Seq[Flow], guess interest.Compound, eps float64, opts ...calc.Option) (interest.Effective, error) {
	return solveYield(opIRR, flows, 0, guess, eps, opts)
}

// Yield returns the effective rate at which the present worth of flows equals
// price, searched by Newton's method from guess to accuracy eps.
func Yield(flows iter.Seq[Flow], price float64, guess interest.Compound, eps float64, opts ...calc.Option) (interest.Effective, error) {
	return solveYield(opYield, flows, price, guess, eps, opts)
}

// solveYield tags any root-finding error with op.
func solveYield(op string, flows iter.Seq[Flow], price float64, guess interest.Compound, eps float64, opts []calc.Option) (interest.Effective, error) {
	all := slices.Collect(flows)
	excess := func(y float64) float64 {
		return PresentWorth(slices.Values(all), interest.Effective{Rate: y}) - price
	}

	r, err := calc.Root(excess, guess.ToEffective().Rate, eps, opts...)
	if err != nil {
		return interest.Effective{Rate: r}, fmt.Errorf("%s: %w", op, err)
	}

	return interest.Effective{Rate: r}, nil
}

// Life returns the latest time among flows, or 0 for an empty set.
func Life(flows iter.Seq[Flow]) float64 {
	return lifeOf(slices.Collect(flows))
}

func lifeOf(flows []Flow) float64 {
	if len(flows) == 0 {
		return 0
	}

	return slices.MaxFunc(flows, func(a, b Flow) int { return cmp.Compare(a.Time, b.Time) }).Time
}

// Link places the sets end to end: every set is shifted by the total life of
// the sets before it. The inputs are consumed immediately; the result is
// restartable.
func Link(sets ...iter.Seq[Flow]) iter.Seq[Flow] {
	var (
		out   []Flow
		shift float64
	)
	for _, set := range sets {
		flows := slices.Collect(set)
		for _, f := range flows {
			out = append(out, Flow{Time: f.Time + shift, Amount: f.Amount})
		}
		shift += lifeOf(flows)
	}

	return slices.Values(out)
}

// Repeat tiles flows end to end, one copy per life starting below totalLife,
// and drops every flow later than totalLife. A set with no positive life is
// emitted once.
func Repeat(flows iter.Seq[Flow], totalLife float64) iter.Seq[Flow] {
	all := slices.Collect(flows)
	life := lifeOf(all)

	copies := 1
	if life > 0 {
		copies = 0
		for range seq.Arange(0, totalLife, life) {
			copies++
		}
	}

	sets := make([]iter.Seq[Flow], copies)
	for k := range sets {
		sets[k] = slices.Values(all)
	}

	var out []Flow
	for f := range Link(sets...) {
		if f.Time <= totalLife {
			out = append(out, f)
		}
	}

	return slices.Values(out)
}

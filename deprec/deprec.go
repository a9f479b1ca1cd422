package deprec

import (
	"iter"
	"math"

	"github.com/katalvlaran/econlab/interest"
	"github.com/katalvlaran/econlab/seq"
)

// Schedule is a depreciation convention applied to an asset.
type Schedule interface {
	// Book returns the book value after t periods.
	Book(t int) float64

	// Amount returns the depreciation charged in period t (t >= 1).
	Amount(t int) float64

	// Periods returns the depreciable life.
	Periods() int

	// CapitalGain, RecapturedDepreciation and LossOnDisposal split a
	// disposal at market price.
	CapitalGain(market float64) float64
	RecapturedDepreciation(market float64) float64
	LossOnDisposal(market float64) float64
}

// Books yields Book(t) for t = 0..Periods().
func Books(s Schedule) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for t := 0; t <= s.Periods(); t++ {
			if !yield(s.Book(t)) {
				return
			}
		}
	}
}

// Asset holds the parameters every schedule shares.
type Asset struct {
	Basis   float64
	Salvage float64
	Life    int
}

// Periods returns a.Life.
func (a Asset) Periods() int { return a.Life }

// CapitalGain is the part of the disposal price above the basis.
func (a Asset) CapitalGain(market float64) float64 {
	return max(0, market-a.Basis)
}

// RecapturedDepreciation is the part of the disposal price, up to the basis,
// above the salvage value.
func (a Asset) RecapturedDepreciation(market float64) float64 {
	return max(0, min(a.Basis, market)-a.Salvage)
}

// LossOnDisposal is the shortfall of the disposal price below the salvage value.
func (a Asset) LossOnDisposal(market float64) float64 {
	return max(0, a.Salvage-market)
}

// StraightLine charges (basis - salvage) / life every period.
type StraightLine struct {
	Asset
}

// NewStraightLine returns a straight-line schedule.
func NewStraightLine(basis, salvage float64, life int) StraightLine {
	return StraightLine{Asset{Basis: basis, Salvage: salvage, Life: life}}
}

// Book returns basis less t level charges.
func (s StraightLine) Book(t int) float64 {
	return s.Basis - s.Amount(t)*float64(t)
}

// Amount is the same in every period.
func (s StraightLine) Amount(int) float64 {
	return (s.Basis - s.Salvage) / float64(s.Life)
}

// DecliningBalance charges a fixed fraction of the remaining book value, the
// rate that brings the basis down to salvage in exactly Life periods.
type DecliningBalance struct {
	Asset
}

// NewDecliningBalance returns a declining-balance schedule ending at salvage.
func NewDecliningBalance(basis, salvage float64, life int) DecliningBalance {
	return DecliningBalance{Asset{Basis: basis, Salvage: salvage, Life: life}}
}

// DecliningBalanceFromRate returns the declining-balance schedule that
// depreciates at rate, with the salvage value that rate implies.
func DecliningBalanceFromRate(basis float64, life int, rate interest.Compound) DecliningBalance {
	salvage := basis * math.Pow(1-rate.ToEffective().Rate, float64(life))

	return NewDecliningBalance(basis, salvage, life)
}

// Rate returns 1 - (salvage/basis)^(1/life).
func (d DecliningBalance) Rate() interest.Effective {
	return interest.Effective{Rate: 1 - math.Pow(d.Salvage/d.Basis, 1/float64(d.Life))}
}

// Book returns basis·(1-rate)^t.
func (d DecliningBalance) Book(t int) float64 {
	return declined(d.Basis, d.Rate().Rate, t)
}

// Amount charges Rate on the book value at the start of period t.
func (d DecliningBalance) Amount(t int) float64 {
	return d.Book(t-1) * d.Rate().Rate
}

// DoubleDecliningBalance is declining balance at the fixed rate 2/life.
// With Floor set the book value never drops below salvage.
type DoubleDecliningBalance struct {
	Asset
	Floor bool
}

// NewDoubleDecliningBalance returns a double-declining-balance schedule.
func NewDoubleDecliningBalance(basis, salvage float64, life int, floor bool) DoubleDecliningBalance {
	return DoubleDecliningBalance{Asset: Asset{Basis: basis, Salvage: salvage, Life: life}, Floor: floor}
}

// Rate returns 2/life.
func (d DoubleDecliningBalance) Rate() interest.Effective {
	return interest.Effective{Rate: 2 / float64(d.Life)}
}

// Book returns basis·(1-2/life)^t, floored at salvage when Floor is set.
func (d DoubleDecliningBalance) Book(t int) float64 {
	book := declined(d.Basis, d.Rate().Rate, t)
	if d.Floor {
		return max(d.Salvage, book)
	}

	return book
}

// Amount charges 2/life on the book value at the start of period t.
func (d DoubleDecliningBalance) Amount(t int) float64 {
	return d.Book(t-1) * d.Rate().Rate
}

func declined(basis, rate float64, t int) float64 {
	return basis * math.Pow(1-rate, float64(t))
}

// SumOfYearsDigits charges (life-t+1)/SYD of the depreciable amount in period
// t, where SYD = 1+2+...+life.
type SumOfYearsDigits struct {
	Asset
}

// NewSumOfYearsDigits returns a sum-of-years'-digits schedule.
func NewSumOfYearsDigits(basis, salvage float64, life int) SumOfYearsDigits {
	return SumOfYearsDigits{Asset{Basis: basis, Salvage: salvage, Life: life}}
}

// SYD returns the sum of the years' digits.
func (s SumOfYearsDigits) SYD() int {
	return seq.SeriesSumTo(s.Life)
}

// Book returns basis less the digits used so far as a share of SYD.
func (s SumOfYearsDigits) Book(t int) float64 {
	syd := float64(s.SYD())
	used := syd - float64(seq.SeriesSumTo(s.Life-t))

	return s.Basis - used/syd*(s.Basis-s.Salvage)
}

// Amount returns (life-t+1)/SYD of basis - salvage.
func (s SumOfYearsDigits) Amount(t int) float64 {
	return float64(s.Life-t+1) / float64(s.SYD()) * (s.Basis - s.Salvage)
}

// UnitsOfProduction charges each period in proportion to its share of the
// lifetime output. Life is the number of production periods.
type UnitsOfProduction struct {
	Asset
	Production []float64
}

// NewUnitsOfProduction returns a units-of-production schedule over the
// per-period output prods.
func NewUnitsOfProduction(basis, salvage float64, prods []float64) UnitsOfProduction {
	return UnitsOfProduction{
		Asset:      Asset{Basis: basis, Salvage: salvage, Life: len(prods)},
		Production: append([]float64(nil), prods...),
	}
}

// LifetimeProduction returns the total output.
func (u UnitsOfProduction) LifetimeProduction() float64 {
	total := 0.0
	for _, p := range u.Production {
		total += p
	}

	return total
}

// Book clamps t into [0, Life].
func (u UnitsOfProduction) Book(t int) float64 {
	t = max(0, min(t, len(u.Production)))
	produced := 0.0
	for _, p := range u.Production[:t] {
		produced += p
	}

	return u.Basis - produced/u.LifetimeProduction()*(u.Basis-u.Salvage)
}

// Amount is 0 outside periods 1..Life.
func (u UnitsOfProduction) Amount(t int) float64 {
	if t < 1 || t > len(u.Production) {
		return 0
	}

	return u.Production[t-1] / u.LifetimeProduction() * (u.Basis - u.Salvage)
}

var (
	_ Schedule = StraightLine{}
	_ Schedule = DecliningBalance{}
	_ Schedule = DoubleDecliningBalance{}
	_ Schedule = SumOfYearsDigits{}
	_ Schedule = UnitsOfProduction{}
)

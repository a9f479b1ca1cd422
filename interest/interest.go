package interest

import (
	"cmp"
	"fmt"
	"math"
)

// Interest is any rate convention that can report a growth factor.
// The set of implementations is closed.
type Interest interface {
	// Factor returns the growth factor over t periods.
	Factor(t float64) float64

	sealed()
}

// Compound is an Interest that compounds and can be expressed in every other
// compounding convention.
type Compound interface {
	Interest

	// ToEffective returns the once-per-period equivalent.
	ToEffective() Effective

	// ToContinuous returns the continuously compounded equivalent.
	ToContinuous() Continuous

	// ToNominal returns the equivalent nominal rate compounding count times.
	ToNominal(count float64) Nominal

	// ToSubperiod returns the equivalent per-subperiod rate over count subperiods.
	ToSubperiod(count float64) Subperiod
}

// Compare orders two compounding values by their effective rates.
func Compare(a, b Compound) int {
	return cmp.Compare(a.ToEffective().Rate, b.ToEffective().Rate)
}

// Equal reports whether a and b share the same effective rate.
func Equal(a, b Compound) bool { return Compare(a, b) == 0 }

// Less reports whether a earns less than b per period.
func Less(a, b Compound) bool { return Compare(a, b) < 0 }

// FromFactor returns the effective rate that grows 1 into factor over t periods.
func FromFactor(factor, t float64) Effective {
	return Effective{Rate: math.Pow(factor, 1/t) - 1}
}

// Simple is a non-compounding rate.
type Simple struct {
	Rate float64
}

// SimpleFromFactor returns the simple rate that grows 1 into factor over t periods.
func SimpleFromFactor(factor, t float64) Simple {
	return Simple{Rate: (factor - 1) / t}
}

func (Simple) sealed() {}

// Factor returns 1 + r·t.
func (s Simple) Factor(t float64) float64 { return 1 + s.Rate*t }

// Compare orders simple rates by their raw rate.
func (s Simple) Compare(o Simple) int { return cmp.Compare(s.Rate, o.Rate) }

// String renders s as "simple <rate>".
func (s Simple) String() string { return fmt.Sprintf("simple %g", s.Rate) }

// Effective compounds exactly once per period.
type Effective struct {
	Rate float64
}

func (Effective) sealed() {}

// Factor returns (1+r)^t.
func (e Effective) Factor(t float64) float64 { return FP(e.Rate, t) }

// ToEffective returns e unchanged.
func (e Effective) ToEffective() Effective { return e }

// ToContinuous returns ln(1+r).
func (e Effective) ToContinuous() Continuous {
	return Continuous{Rate: math.Log1p(e.Rate)}
}

// ToNominal returns n((1+r)^(1/n) - 1), or ln(1+r) for an infinite count.
func (e Effective) ToNominal(count float64) Nominal {
	if math.IsInf(count, 1) {
		return Nominal{Rate: math.Log1p(e.Rate), Count: count}
	}

	return Nominal{Rate: count * (math.Pow(1+e.Rate, 1/count) - 1), Count: count}
}

// ToSubperiod returns (1+r)^(1/n) - 1.
func (e Effective) ToSubperiod(count float64) Subperiod {
	return Subperiod{Rate: math.Pow(1+e.Rate, 1/count) - 1, Count: count}
}

// String renders e as "effective <rate>".
func (e Effective) String() string { return fmt.Sprintf("effective %g", e.Rate) }

// Nominal is a stated rate compounding Count times per period.
// An infinite Count is the continuous limit.
type Nominal struct {
	Rate  float64
	Count float64
}

func (Nominal) sealed() {}

// Factor returns (1+r/n)^(n·t).
func (n Nominal) Factor(t float64) float64 {
	if math.IsInf(n.Count, 1) {
		return math.Exp(n.Rate * t)
	}

	return FP(n.Rate/n.Count, n.Count*t)
}

// Period returns the length of one subperiod, 1/Count.
func (n Nominal) Period() float64 { return 1 / n.Count }

// ToEffective returns (1+r/n)^n - 1, or e^r - 1 for an infinite Count.
func (n Nominal) ToEffective() Effective {
	return Effective{Rate: n.Factor(1) - 1}
}

// ToContinuous converts through the effective rate.
func (n Nominal) ToContinuous() Continuous { return n.ToEffective().ToContinuous() }

// ToNominal re-expresses n at another compounding count.
func (n Nominal) ToNominal(count float64) Nominal { return n.ToEffective().ToNominal(count) }

// ToSubperiod returns the per-subperiod rate over count subperiods.
func (n Nominal) ToSubperiod(count float64) Subperiod { return n.ToEffective().ToSubperiod(count) }

// AsSubperiod returns the per-subperiod rate r/n over the same Count.
func (n Nominal) AsSubperiod() Subperiod {
	return Subperiod{Rate: n.Rate / n.Count, Count: n.Count}
}

// String renders n as "nominal <rate>/<count>".
func (n Nominal) String() string { return fmt.Sprintf("nominal %g/%g", n.Rate, n.Count) }

// Subperiod is the rate earned in each of Count subperiods.
type Subperiod struct {
	Rate  float64
	Count float64
}

func (Subperiod) sealed() {}

// Factor returns (1+r)^(n·t).
func (s Subperiod) Factor(t float64) float64 { return FP(s.Rate, s.Count*t) }

// Period returns the length of one subperiod, 1/Count.
func (s Subperiod) Period() float64 { return 1 / s.Count }

// ToEffective returns (1+r)^n - 1.
func (s Subperiod) ToEffective() Effective {
	return Effective{Rate: FP(s.Rate, s.Count) - 1}
}

// ToContinuous converts through the effective rate.
func (s Subperiod) ToContinuous() Continuous { return s.ToEffective().ToContinuous() }

// ToNominal returns the nominal rate compounding count times.
func (s Subperiod) ToNominal(count float64) Nominal { return s.ToEffective().ToNominal(count) }

// ToSubperiod re-expresses s over another subperiod count.
func (s Subperiod) ToSubperiod(count float64) Subperiod { return s.ToEffective().ToSubperiod(count) }

// AsNominal returns the stated rate r·n over the same Count.
func (s Subperiod) AsNominal() Nominal {
	return Nominal{Rate: s.Rate * s.Count, Count: s.Count}
}

// String renders s as "subperiod <rate>/<count>".
func (s Subperiod) String() string { return fmt.Sprintf("subperiod %g/%g", s.Rate, s.Count) }

// Continuous compounds continuously.
type Continuous struct {
	Rate float64
}

func (Continuous) sealed() {}

// Count is always +Inf.
func (Continuous) Count() float64 { return math.Inf(1) }

// Factor returns (e^r)^t.
func (c Continuous) Factor(t float64) float64 { return math.Pow(math.Exp(c.Rate), t) }

// ToEffective returns e^r - 1.
func (c Continuous) ToEffective() Effective { return Effective{Rate: math.Expm1(c.Rate)} }

// ToContinuous returns c unchanged.
func (c Continuous) ToContinuous() Continuous { return c }

// ToNominal returns n(e^(r/n) - 1) via the effective rate.
func (c Continuous) ToNominal(count float64) Nominal { return c.ToEffective().ToNominal(count) }

// ToSubperiod returns e^(r/n) - 1 via the effective rate.
func (c Continuous) ToSubperiod(count float64) Subperiod { return c.ToEffective().ToSubperiod(count) }

// String renders c as "continuous <rate>".
func (c Continuous) String() string { return fmt.Sprintf("continuous %g", c.Rate) }

var (
	_ Interest = Simple{}
	_ Compound = Effective{}
	_ Compound = Nominal{}
	_ Compound = Subperiod{}
	_ Compound = Continuous{}
)

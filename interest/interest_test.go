package interest_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/econlab/interest"
	"github.com/stretchr/testify/assert"
)

const tol = 1e-7

func TestFactor_SimpleVersusEffective(t *testing.T) {
	r, p, years := 0.07, 24.0, float64(2020-1626)

	assert.InDelta(t, 685.92, p*interest.Simple{Rate: r}.Factor(years), tol)
	assert.InEpsilon(t, 9066082143624.828, p*interest.Effective{Rate: r}.Factor(years), 1e-12)
}

// TestConsistency converts every compounding convention into every other one
// for subperiod counts 1..365 and expects the same growth factor each time.
func TestConsistency(t *testing.T) {
	nr, sc, years, want := 0.1, 4.0, 2.5, 1.2800845441963565

	rates := []interest.Compound{
		interest.Effective{Rate: math.Pow(1+nr/sc, sc) - 1},
		interest.Continuous{Rate: math.Log(math.Pow(1+nr/sc, sc))},
		interest.Nominal{Rate: nr, Count: sc},
		interest.Subperiod{Rate: nr / sc, Count: sc},
	}

	for _, r := range rates {
		assert.InDelta(t, want, r.Factor(years), tol, "%v", r)
		assert.InDelta(t, want, r.ToEffective().Factor(years), tol, "%v", r)
		assert.InDelta(t, want, r.ToContinuous().Factor(years), tol, "%v", r)

		for count := 1.0; count <= 365; count++ {
			assert.InDelta(t, want, r.ToNominal(count).Factor(years), tol, "%v to nominal %g", r, count)
			assert.InDelta(t, want, r.ToSubperiod(count).Factor(years), tol, "%v to subperiod %g", r, count)
		}
	}

	nom := interest.Nominal{Rate: nr, Count: sc}
	sub := interest.Subperiod{Rate: nr / sc, Count: sc}
	assert.InDelta(t, want, nom.AsSubperiod().Factor(years), tol)
	assert.InDelta(t, want, sub.AsNominal().Factor(years), tol)
	assert.Equal(t, sub, nom.AsSubperiod())
	assert.Equal(t, nom, sub.AsNominal())
}

func TestConversions(t *testing.T) {
	e := interest.Effective{Rate: 0.034}

	assert.InDelta(t, 0.03371581102178567, e.ToNominal(2).Rate, tol)
	assert.InDelta(t, 0.033481397886386155, e.ToNominal(12).Rate, tol)
	assert.InDelta(t, 0.03343630748129267, e.ToNominal(365).Rate, tol)
	assert.InDelta(t, 0.03343477608623742, e.ToContinuous().Rate, tol)
	assert.InDelta(t, 114309.4552336, 100000*e.ToContinuous().Factor(4), 1e-6)

	assert.InDelta(t, 0.02326653954721758, interest.Continuous{Rate: 0.023}.ToEffective().Rate, tol)
	assert.InDelta(t, 98.8565872247913, 100/interest.Continuous{Rate: 0.023}.Factor(0.5), tol)

	assert.InDelta(t, 0.00643403011000343, interest.Effective{Rate: 0.08}.ToSubperiod(12).Rate, tol)
	assert.InDelta(t, 0.03561719190449408, interest.Nominal{Rate: 0.035, Count: 252}.ToEffective().Rate, tol)
	assert.InDelta(t, 0.039801323412672354, interest.Nominal{Rate: 0.04, Count: 4}.ToContinuous().Rate, tol)
}

func TestInfiniteCount(t *testing.T) {
	c := interest.Continuous{Rate: 0.05}
	assert.True(t, math.IsInf(c.Count(), 1))

	n := c.ToNominal(math.Inf(1))
	assert.InDelta(t, 0.05, n.Rate, 1e-12)
	assert.InDelta(t, c.Factor(3), n.Factor(3), 1e-12)
	assert.InDelta(t, c.ToEffective().Rate, n.ToEffective().Rate, 1e-12)
}

func TestFromFactor(t *testing.T) {
	factor := interest.Nominal{Rate: 0.15, Count: 4}.Factor(4.0/12) * interest.Continuous{Rate: 0.11}.Factor(5.0/12)
	assert.InDelta(t, 0.134915472328168, interest.FromFactor(factor, 9.0/12).Rate, tol)

	f := interest.Subperiod{Rate: 0.015, Count: 12}.Factor(1)
	assert.InDelta(t, 0.04466583748125169, interest.FromFactor(f, 4).ToContinuous().Rate, tol)

	inner := interest.FromFactor(interest.Nominal{Rate: 0.012, Count: 3}.Factor(1), 0.25)
	assert.InDelta(t, 0.1454477030768886, interest.FromFactor(inner.Factor(3), 1).ToNominal(6).Rate, tol)

	assert.InDelta(t, 0.05, interest.SimpleFromFactor(1.25, 5).Rate, 1e-12)
}

func TestCompare(t *testing.T) {
	lo := interest.Nominal{Rate: 0.06, Count: 12}
	hi := interest.Subperiod{Rate: 0.063, Count: 1}

	assert.True(t, interest.Less(lo, hi))
	assert.Equal(t, -1, interest.Compare(lo, hi))
	assert.Equal(t, 1, interest.Compare(hi, lo))

	// Equal by effective rate even though the conventions differ.
	assert.True(t, interest.Equal(hi, hi.ToEffective()))
	assert.False(t, interest.Equal(lo, hi))

	assert.Equal(t, -1, interest.Simple{Rate: 0.01}.Compare(interest.Simple{Rate: 0.02}))
	assert.Equal(t, 0, interest.Simple{Rate: 0.02}.Compare(interest.Simple{Rate: 0.02}))
}

func TestFactors(t *testing.T) {
	i := 0.02

	assert.InDelta(t, 100*(math.Pow(1.05, 10)-1)/(0.05*math.Pow(1.05, 10)), 100*interest.PA(0.05, 10), 1e-9)
	assert.InDelta(t, 139230.06759675476, 15500*interest.PA(i, 10), 1e-6)
	assert.InDelta(t, 140388.27552363696, 155000*interest.PF(i, 5), 1e-6)
	assert.InDelta(t, 148258.50062422457, 10000*interest.PA(i, 10)+1500*interest.PG(i, 10), 1e-6)
	assert.InDelta(t, 112086.97925088322, 10000*interest.PAGeometric(i, 10, 0.05), 1e-6)
	assert.InDelta(t, 24.509803921568626, 2*interest.Perpetuity(0.0816), 1e-9)

	// Reciprocal pairs.
	assert.InDelta(t, 1, interest.AP(0.07, 12)*interest.PA(0.07, 12), 1e-12)
	assert.InDelta(t, 1, interest.AF(0.07, 12)*interest.FA(0.07, 12), 1e-12)
	assert.InDelta(t, 1, interest.FP(0.07, 12)*interest.PF(0.07, 12), 1e-12)
	assert.InDelta(t, interest.PG(0.07, 12)*interest.AP(0.07, 12), interest.AG(0.07, 12), 1e-12)
}

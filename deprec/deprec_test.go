package deprec_test

import (
	"slices"
	"testing"

	"github.com/katalvlaran/econlab/calc"
	"github.com/katalvlaran/econlab/deprec"
	"github.com/katalvlaran/econlab/interest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-6

func TestBooks(t *testing.T) {
	tests := []struct {
		name string
		s    deprec.Schedule
		want []float64
	}{
		{"straight line", deprec.NewStraightLine(92000, 19000, 4),
			[]float64{92000, 73750, 55500, 37250, 19000}},
		{"declining balance", deprec.NewDecliningBalance(92000, 19000, 4),
			[]float64{92000, 62019.64424847585, 41809.08992073374, 28184.618296048306, 19000}},
		{"declining balance from rate", deprec.DecliningBalanceFromRate(92000, 4, interest.Effective{Rate: 0.25}),
			[]float64{92000, 69000, 51750, 38812.5, 29109.375}},
		{"double declining balance", deprec.NewDoubleDecliningBalance(92000, 19000, 4, false),
			[]float64{92000, 46000, 23000, 11500, 5750}},
		{"double declining balance floored", deprec.NewDoubleDecliningBalance(92000, 19000, 4, true),
			[]float64{92000, 46000, 23000, 19000, 19000}},
		{"sum of years digits", deprec.NewSumOfYearsDigits(92000, 19000, 4),
			[]float64{92000, 62800, 40900, 26300, 19000}},
		{"units of production", deprec.NewUnitsOfProduction(92000, 19000, []float64{37000, 37000, 32000, 30000}),
			[]float64{92000, 72139.70588235295, 52279.41176470589, 35102.94117647059, 19000}},
		{"straight line 2", deprec.NewStraightLine(110000, 25000, 4),
			[]float64{110000, 88750, 67500, 46250, 25000}},
		{"declining balance 2", deprec.NewDecliningBalance(110000, 25000, 4),
			[]float64{110000, 75950.3039160202, 52440.44240850757, 36207.88671287913, 25000}},
		{"declining balance from rate 2", deprec.DecliningBalanceFromRate(110000, 4, interest.Effective{Rate: 0.35}),
			[]float64{110000, 71500, 46475, 30208.75, 19635.6875}},
		{"sum of years digits 2", deprec.NewSumOfYearsDigits(110000, 25000, 4),
			[]float64{110000, 76000, 50500, 33500, 25000}},
		{"units of production 2", deprec.NewUnitsOfProduction(110000, 25000, []float64{80000, 65000, 50000, 35000}),
			[]float64{110000, 80434.78260869565, 56413.043478260865, 37934.78260869565, 25000}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := slices.Collect(deprec.Books(tc.s))
			require.Len(t, got, len(tc.want))
			assert.InDeltaSlice(t, tc.want, got, tol)
		})
	}
}

func TestBookAndAmount(t *testing.T) {
	tests := []struct {
		name         string
		s            deprec.Schedule
		t            int
		book, amount float64
	}{
		{"SL", deprec.NewStraightLine(210000, 10000, 20), 6, 150000, 10000},
		{"DB", deprec.NewDecliningBalance(210000, 10000, 20), 6, 84246.81795174461, 13852.157371177402},
		{"DB rate", deprec.DecliningBalanceFromRate(210000, 20, interest.Effective{Rate: 0.2}), 6, 55050.24, 13762.56},
		{"DDB", deprec.NewDoubleDecliningBalance(210000, 10000, 20, false), 6, 111602.61, 12400.29},
		{"SL 2", deprec.NewStraightLine(2500000, 200000, 10), 4, 1580000, 230000},
		{"DB 2", deprec.NewDecliningBalance(2500000, 200000, 10), 4, 910282.1015130404, 261554.3542830096},
		{"DDB 2", deprec.NewDoubleDecliningBalance(2500000, 200000, 10, false), 4, 1024000, 256000},
		{"SYD 2", deprec.NewSumOfYearsDigits(2500000, 200000, 10), 4, 1078181.8181818182, 292727.2727272727},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.book, tc.s.Book(tc.t), tol, "book")
			assert.InDelta(t, tc.amount, tc.s.Amount(tc.t), tol, "amount")
		})
	}
}

func TestBookAndAmount_SplitPeriods(t *testing.T) {
	prods := []float64{50, 60, 40, 20, 10, 15, 5}

	assert.InDelta(t, 12142.857142857143, deprec.NewStraightLine(23000, 4000, 7).Book(4), tol)
	assert.InDelta(t, 8465.096723059049, deprec.NewDecliningBalance(23000, 4000, 7).Book(4), tol)
	assert.InDelta(t, 8071.4285714285725, deprec.NewSumOfYearsDigits(23000, 4000, 7).Book(4), tol)
	assert.InDelta(t, 6850, deprec.NewUnitsOfProduction(23000, 4000, prods).Book(4), tol)

	assert.InDelta(t, 2714.285714285714, deprec.NewStraightLine(23000, 4000, 7).Amount(5), tol)
	assert.InDelta(t, 1871.7191438152927, deprec.NewDecliningBalance(23000, 4000, 7).Amount(5), tol)
	assert.InDelta(t, 2035.7142857142856, deprec.NewSumOfYearsDigits(23000, 4000, 7).Amount(5), tol)
	assert.InDelta(t, 950, deprec.NewUnitsOfProduction(23000, 4000, prods).Amount(5), tol)
}

func TestAmountsSumToDepreciableBase(t *testing.T) {
	schedules := []deprec.Schedule{
		deprec.NewStraightLine(92000, 19000, 4),
		deprec.NewDecliningBalance(92000, 19000, 4),
		deprec.NewSumOfYearsDigits(92000, 19000, 4),
		deprec.NewUnitsOfProduction(92000, 19000, []float64{37000, 37000, 32000, 30000}),
	}
	for _, s := range schedules {
		total := 0.0
		for t := 1; t <= s.Periods(); t++ {
			total += s.Amount(t)
		}
		assert.InDelta(t, 92000-19000, total, tol, "%T", s)
	}
}

func TestUnitsOfProduction_OutOfRange(t *testing.T) {
	u := deprec.NewUnitsOfProduction(100, 10, []float64{1, 2})

	assert.Equal(t, 2, u.Periods())
	assert.InDelta(t, 3.0, u.LifetimeProduction(), 0)
	assert.Equal(t, 0.0, u.Amount(0))
	assert.Equal(t, 0.0, u.Amount(3))
	assert.Equal(t, 100.0, u.Book(-1))
	assert.InDelta(t, 10, u.Book(5), tol)
}

func TestRates(t *testing.T) {
	assert.InDelta(t, 0.5, deprec.NewDoubleDecliningBalance(92000, 19000, 4, false).Rate().Rate, 0)
	assert.InDelta(t, 0.25, deprec.DecliningBalanceFromRate(92000, 4, interest.Effective{Rate: 0.25}).Rate().Rate, 1e-12)
	assert.Equal(t, 10, deprec.NewSumOfYearsDigits(1, 0, 4).SYD())
}

func TestDisposal(t *testing.T) {
	d := deprec.DecliningBalanceFromRate(5000, 5, interest.Effective{Rate: 0.15})

	tests := []struct{ market, gain, recaptured, loss float64 }{
		{3000, 0, 781.4734375, 0},
		{2000, 0, 0, 218.5265625},
		{6000, 1000, 2781.4734375, 0},
	}
	for _, tc := range tests {
		assert.InDelta(t, tc.gain, d.CapitalGain(tc.market), tol, "gain at %g", tc.market)
		assert.InDelta(t, tc.recaptured, d.RecapturedDepreciation(tc.market), tol, "recaptured at %g", tc.market)
		assert.InDelta(t, tc.loss, d.LossOnDisposal(tc.market), tol, "loss at %g", tc.market)
	}
}

func TestImpliedSalvage(t *testing.T) {
	// Salvage that leaves a book value of 57000 after 6 of 8 years.
	x, err := calc.Root(func(x float64) float64 {
		return deprec.NewStraightLine(145000, x, 8).Book(6) - 57000
	}, 0, calc.Epsilon)
	require.NoError(t, err)
	assert.InDelta(t, 27666.66666666667, x, tol)

	x, err = calc.Root(func(x float64) float64 {
		return deprec.NewDecliningBalance(145000, x, 8).Book(6) - 57000
	}, 10000, calc.Epsilon, calc.WithMaxIter(100))
	require.NoError(t, err)
	assert.InDelta(t, 41755.1908917986, x, tol)
}

package market_test

import (
	"testing"

	"github.com/katalvlaran/econlab/interest"
	"github.com/katalvlaran/econlab/linalg"
	"github.com/katalvlaran/econlab/market"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-9

func TestTwoStateAsset(t *testing.T) {
	rf, pBull := interest.Effective{Rate: 0.022}, 0.6
	mPrice, mBull, mBear := 105.0, 127.0, 90.0

	price, err := market.Fair(102, 77, mPrice, mBull, mBear, rf)
	require.NoError(t, err)
	assert.InDelta(t, 86.78663986883166, price, tol)

	ar := market.ExpectedReturn(price, 102, 77, pBull)
	mr := market.ExpectedReturn(mPrice, mBull, mBear, pBull)
	assert.InDelta(t, 0.060070998704959244, ar.Rate, tol)
	assert.InDelta(t, 0.0685714285714285, mr.Rate, tol)
	assert.InDelta(t, 0.8174754323150769, market.Beta(ar, mr, rf), tol)
}

func TestPortfolioBeta(t *testing.T) {
	assets := [][3]float64{{90, 102, 66}, {85, 115, 77}, {150, 200, 132}}
	mPrice, mBull, mBear := 18.0, 22.0, 16.0
	p, rf := 0.6, interest.Effective{Rate: 0.03}

	fair := make([]float64, len(assets))
	var underpriced []int
	for k, a := range assets {
		v, err := market.Fair(a[1], a[2], mPrice, mBull, mBear, rf)
		require.NoError(t, err)
		fair[k] = v
		if v > a[0] {
			underpriced = append(underpriced, k)
		}
	}
	assert.Equal(t, []int{1, 2}, underpriced)
	assert.InDelta(t, 246.4789644012945, fair[1]+fair[2], tol)
	assert.InDelta(t, 11.47896440129449, fair[1]+fair[2]-assets[1][0]-assets[2][0], tol)

	ar := market.ExpectedReturn(fair[1]+fair[2], assets[1][1]+assets[2][1], assets[1][2]+assets[2][2], p)
	mr := market.ExpectedReturn(mPrice, mBull, mBear, p)
	assert.InDelta(t, 1.2901709513930817, market.Beta(ar, mr, rf), tol)
}

func TestFairFlatMarket(t *testing.T) {
	_, err := market.Fair(10, 8, 100, 110, 110, interest.Effective{Rate: 0.01})
	require.ErrorIs(t, err, linalg.ErrSingular)
}

func TestCAPM(t *testing.T) {
	r := market.CAPM(0.86, interest.Effective{Rate: 0.015}, interest.Effective{Rate: 0.08})
	assert.InDelta(t, 0.0709, r.Rate, tol)
	assert.InDelta(t, 51.581746894818, 42*r.Factor(3), 1e-9)

	r = market.CAPM(1.2, interest.Effective{Rate: 0.012}, interest.Effective{Rate: 0.07})
	assert.InDelta(t, 24.509803921568626, 2*interest.Perpetuity(r.Rate), 1e-9)

	r = market.CAPM(0.8, interest.Effective{Rate: 0.017}, interest.Effective{Rate: 0.07})
	assert.InDelta(t, 44.56329005026732, 41*r.Factor(2.5)*interest.Effective{Rate: -0.03}.Factor(2), 1e-9)
}

func TestBetaOfMarketIsOne(t *testing.T) {
	m := interest.Nominal{Rate: 0.08, Count: 12}
	rf := interest.Continuous{Rate: 0.02}
	assert.InDelta(t, 1, market.Beta(m, m, rf), tol)
	assert.InDelta(t, m.ToEffective().Rate, market.CAPM(1, rf, m).Rate, tol)
}

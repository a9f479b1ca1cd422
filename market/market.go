package market

import (
	"fmt"

	"github.com/katalvlaran/econlab/interest"
	"github.com/katalvlaran/econlab/linalg"
)

// Fair returns the price of an asset paying bull or bear next period, given a
// market investment priced marketPrice paying marketBull or marketBear and a
// risk-free rate. The replicating holding (a units of market, b of risk-free
// lending) solves
//
//	a·marketBull + b·(1+rf) = bull
//	a·marketBear + b·(1+rf) = bear
//
// and the fair price is a·marketPrice + b.
//
// Errors: linalg.ErrSingular when the market pays the same in both states.
func Fair(bull, bear, marketPrice, marketBull, marketBear float64, riskFree interest.Interest) (float64, error) {
	growth := riskFree.Factor(1)
	x, err := linalg.Solve(
		linalg.Matrix{
			{marketBull, growth},
			{marketBear, growth},
		},
		linalg.Vector{bull, bear},
	)
	if err != nil {
		return 0, fmt.Errorf("Fair: %w", err)
	}

	return marketPrice*x[0] + x[1], nil
}

// ExpectedReturn is the one-period return of an asset bought at price that
// pays bull with probability p and bear otherwise.
func ExpectedReturn(price, bull, bear, p float64) interest.Effective {
	return interest.Effective{Rate: (bull*p+bear*(1-p))/price - 1}
}

// Beta measures an asset's excess return over the risk-free rate relative to
// the market's.
func Beta(asset, market, riskFree interest.Compound) float64 {
	rf := riskFree.ToEffective().Rate

	return (asset.ToEffective().Rate - rf) / (market.ToEffective().Rate - rf)
}

// CAPM returns the expected return rf + beta·(E[m] - rf).
func CAPM(beta float64, riskFree, expectedMarket interest.Compound) interest.Effective {
	rf := riskFree.ToEffective().Rate

	return interest.Effective{Rate: rf + beta*(expectedMarket.ToEffective().Rate-rf)}
}

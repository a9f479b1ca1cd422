// Package market prices assets against a two-state market and relates their
// returns through beta and the capital asset pricing model.
//
// Fair values an asset by the portfolio of market investment and risk-free
// lending that replicates its payoff in both a bull and a bear market.
// ExpectedReturn weighs those payoffs by the probability of a bull market.
// Beta and CAPM compare effective rates only; any Compound rate is accepted.
package market

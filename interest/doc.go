// Package interest models interest-rate conventions and the classic
// compound-interest factors.
//
// Five conventions are provided as immutable value types:
//
//	Simple      1 + r·t, no compounding
//	Effective   compounds once per period: (1+r)^t
//	Nominal     stated rate compounding Count times: (1+r/n)^(n·t)
//	Subperiod   per-subperiod rate over Count subperiods: (1+r)^(n·t)
//	Continuous  the infinite-count limit: e^(r·t)
//
// Every compounding value implements Compound and converts into any other
// compounding convention. Conversions agree with routing through Effective,
// so a value converted anywhere and back reproduces the same growth factor.
// Compounding values are ordered by their Effective-equivalent rate (Compare);
// Simple values are ordered among themselves only (Simple.Compare), since the
// two families do not share a growth law.
//
// The factor helpers use engineering-economics notation: AP is (A/P, i, n),
// the capital recovery factor, PA is (P/A, i, n), and so on.
package interest

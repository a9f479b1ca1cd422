// Package cashflow is the cash-flow engine: a time-stamped Flow value and the
// aggregation operators of engineering economics built on it.
//
// Operators:
//
//   - Discount, PresentWorth, AnnualWorth, RepeatedPresentWorth
//   - Payback and DiscountedPayback
//   - IRR and Yield, solved with calc.Root
//   - Life, Link and Repeat for composing flow sets in time
//
// Flow sets are passed as iter.Seq[Flow]. Every operator ranges over its input
// exactly once, materializing it first when it needs several passes, so
// one-shot sequences are safe to pass.
package cashflow

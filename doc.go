// Package econlab is an engineering-economics and financial-mathematics
// toolkit: interest conventions, cash flows, depreciation, instruments and
// capital budgeting, built on a few small numeric helpers.
//
// Packages:
//
//	seq/         ranges, windows, predicates and products over iter.Seq
//	linalg/      Vector, Matrix and a closed-form Solve up to 2×2
//	calc/        derivative, Newton root, integral, linear interpolation
//	stats/       trimmed mean, range, shuffle
//	ntheory/     GCD and LCM
//	interest/    Simple, Effective, Nominal, Subperiod, Continuous + factors
//	cashflow/    present/annual worth, payback, IRR, yield, link and repeat
//	deprec/      straight-line, declining-balance, SYD, units-of-production
//	instrument/  Bond, Mortgage, Project and budgeting helpers
//	market/      two-state fair value, expected return, beta, CAPM
//
// Every value is immutable and every function is pure. Root finding is
// unbounded unless calc.WithMaxIter or calc.WithContext says otherwise.
//
// Quick example:
//
//	i := interest.Nominal{Rate: 0.06, Count: 12}
//	p := instrument.Project{Initial: -20000, Annuity: 3000, Final: 4000, Life: 10}
//	pw := cashflow.PresentWorth(p.CashFlows(), i)
//
// The econ command (cmd/econ) exposes the same operations over YAML or TOML
// scenario files.
package econlab

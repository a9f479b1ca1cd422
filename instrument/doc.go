// Package instrument expresses bonds, mortgages and projects as cash-flow
// generators and implements the capital-budgeting helpers built on them.
//
// Instruments:
//
//   - Bond: a coupon every 1/Frequency up to maturity plus the face value.
//   - Mortgage: the principal lent at time 0 and level payments over the
//     amortization horizon. Pay derives the mortgage that remains after a
//     term of payments; Schedule lists every payment in cents.
//   - Project: an initial amount, a level annuity each period and a final
//     amount. Sub forms the incremental project between two alternatives.
//
// Budgeting:
//
//   - Relate and RelatedCombinations classify project costs against a budget.
//   - DeFactoMARR ranks projects by IRR and funds them greedily.
//   - IRRTable and Select pick the best alternative by incremental IRR.
//
// Maturity and horizon bounds are inclusive to within calc.Epsilon so that a
// final period accumulated in floating point is not lost.
package instrument

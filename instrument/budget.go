package instrument

import (
	"cmp"
	"iter"
	"slices"

	"github.com/katalvlaran/econlab/calc"
	"github.com/katalvlaran/econlab/cashflow"
	"github.com/katalvlaran/econlab/interest"
)

// Relationship classifies a set of project costs against a budget.
type Relationship int

const (
	// Independent projects can all be funded together.
	Independent Relationship = iota
	// MutuallyExclusive projects admit at most one choice.
	MutuallyExclusive
	// Related projects admit some, but not all, combinations.
	Related
)

// String returns the relationship in words.
func (r Relationship) String() string {
	switch r {
	case Independent:
		return "independent"
	case MutuallyExclusive:
		return "mutually exclusive"
	case Related:
		return "related"
	default:
		return "unknown"
	}
}

// Relate returns Independent when the whole set fits the budget, Related
// when at least the two cheapest fit together, and MutuallyExclusive
// otherwise.
func Relate(values []float64, budget float64) Relationship {
	total := 0.0
	for _, v := range values {
		total += v
	}
	if total <= budget {
		return Independent
	}

	sorted := slices.Clone(values)
	slices.Sort(sorted)
	cheapest := 0.0
	for _, v := range sorted[:min(2, len(sorted))] {
		cheapest += v
	}
	if cheapest <= budget {
		return Related
	}

	return MutuallyExclusive
}

// RelatedCombinations yields every subset of indices into values whose total
// fits the budget, including the empty subset. Indices within a subset are
// ascending; subsets that take the last value come before those that skip it.
// Each yielded slice is owned by the caller.
func RelatedCombinations(values []float64, budget float64) iter.Seq[[]int] {
	vs := slices.Clone(values)

	var walk func(n int, budget float64, tail []int, yield func([]int) bool) bool
	walk = func(n int, budget float64, tail []int, yield func([]int) bool) bool {
		if n == 0 {
			return yield(append([]int{}, tail...))
		}
		k := n - 1
		if vs[k] <= budget {
			if !walk(k, budget-vs[k], append([]int{k}, tail...), yield) {
				return false
			}
		}

		return walk(k, budget, tail, yield)
	}

	return func(yield func([]int) bool) {
		walk(len(vs), budget, nil, yield)
	}
}

// DeFactoMARR funds projects in order of decreasing IRR until the budget runs
// out and returns the IRR of the last project funded, or a zero rate when
// none fits. Project initial amounts are outlays, so they are negative.
func DeFactoMARR(projects []Project, budget float64, guess interest.Compound, eps float64, opts ...calc.Option) (interest.Effective, error) {
	irrs := make([]interest.Effective, len(projects))
	for k, p := range projects {
		irr, err := cashflow.IRR(p.CashFlows(), guess, eps, opts...)
		if err != nil {
			return interest.Effective{}, instrumentErrorf(opDeFactoMARR, err)
		}
		irrs[k] = irr
	}

	order := make([]int, len(projects))
	for k := range order {
		order[k] = k
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(irrs[b].Rate, irrs[a].Rate)
	})

	var marr interest.Effective
	for _, k := range order {
		budget += projects[k].Initial
		if budget < 0 {
			break
		}
		marr = irrs[k]
	}

	return marr, nil
}

// IRRTable returns the lower-triangular table of incremental IRRs: row k
// holds the IRR of projects[k] - projects[j] for every j < k. Projects are
// expected in order of increasing cost.
//
// Errors: ErrLifeMismatch if two projects differ in life, and any error of
// the underlying root search.
func IRRTable(projects []Project, guess interest.Compound, eps float64, opts ...calc.Option) ([][]interest.Effective, error) {
	table := make([][]interest.Effective, len(projects))
	for k, p := range projects {
		row := make([]interest.Effective, 0, k)
		for _, o := range projects[:k] {
			diff, err := p.Sub(o)
			if err != nil {
				return nil, instrumentErrorf(opIRRTable, err)
			}
			irr, err := cashflow.IRR(diff.CashFlows(), guess, eps, opts...)
			if err != nil {
				return nil, instrumentErrorf(opIRRTable, err)
			}
			row = append(row, irr)
		}
		table[k] = row
	}

	return table, nil
}

// Select walks an incremental IRR table and returns the index of the best
// alternative. The starting candidate is the first alternative whose own IRR
// beats marr; a later alternative replaces the candidate whenever its
// incremental IRR against the candidate beats marr. ok is false when no
// alternative beats marr.
func Select(irrs []interest.Effective, table [][]interest.Effective, marr interest.Compound) (best int, ok bool) {
	best = slices.IndexFunc(irrs, func(irr interest.Effective) bool {
		return interest.Less(marr, irr)
	})
	if best < 0 {
		return 0, false
	}

	for k, row := range table {
		if k > best && best < len(row) && interest.Less(marr, row[best]) {
			best = k
		}
	}

	return best, true
}

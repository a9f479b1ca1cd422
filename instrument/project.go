package instrument

import (
	"iter"

	"github.com/katalvlaran/econlab/calc"
	"github.com/katalvlaran/econlab/cashflow"
	"github.com/katalvlaran/econlab/seq"
)

// Project is an investment alternative: Initial at time 0, Annuity at the
// end of every period through Life, and Final at Life. Outlays are negative.
type Project struct {
	Initial float64
	Annuity float64
	Final   float64
	Life    float64
}

// CashFlows yields the initial, every annuity and the final amount in order.
func (p Project) CashFlows() iter.Seq[cashflow.Flow] {
	return func(yield func(cashflow.Flow) bool) {
		if !yield(cashflow.Flow{Time: 0, Amount: p.Initial}) {
			return
		}
		for t := range seq.Arange(1, p.Life+calc.Epsilon, 1) {
			if !yield(cashflow.Flow{Time: t, Amount: p.Annuity}) {
				return
			}
		}
		yield(cashflow.Flow{Time: p.Life, Amount: p.Final})
	}
}

// Sub returns the incremental project p - o.
//
// Errors: ErrLifeMismatch if the lives differ.
func (p Project) Sub(o Project) (Project, error) {
	if p.Life != o.Life {
		return Project{}, instrumentErrorf(opSub, ErrLifeMismatch)
	}

	return Project{
		Initial: p.Initial - o.Initial,
		Annuity: p.Annuity - o.Annuity,
		Final:   p.Final - o.Final,
		Life:    p.Life,
	}, nil
}

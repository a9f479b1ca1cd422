package instrument

import (
	"iter"

	"github.com/katalvlaran/econlab/cashflow"
)

// Instrument is anything that generates cash flows. CashFlows must be
// restartable.
type Instrument interface {
	CashFlows() iter.Seq[cashflow.Flow]
}

var (
	_ Instrument = Bond{}
	_ Instrument = Mortgage{}
	_ Instrument = Project{}
)

package cashflow_test

import (
	"fmt"

	"github.com/katalvlaran/econlab/cashflow"
	"github.com/katalvlaran/econlab/interest"
)

func ExamplePresentWorth() {
	flows := cashflow.Of(
		cashflow.Flow{Time: 0, Amount: -1000},
		cashflow.Flow{Time: 1, Amount: 600},
		cashflow.Flow{Time: 2, Amount: 600},
	)
	fmt.Printf("%.2f\n", cashflow.PresentWorth(flows, interest.Effective{Rate: 0.1}))
	// Output: 41.32
}

func ExamplePayback() {
	flows := cashflow.Of(
		cashflow.Flow{Time: 0, Amount: 100},
		cashflow.Flow{Time: 1, Amount: 200},
		cashflow.Flow{Time: 2, Amount: 300},
	)
	fmt.Println(cashflow.Payback(flows, 450))
	// Output: 1.5
}

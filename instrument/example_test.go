package instrument_test

import (
	"fmt"

	"github.com/katalvlaran/econlab/instrument"
	"github.com/katalvlaran/econlab/interest"
)

func ExampleMortgage_Schedule() {
	m, err := instrument.NewMortgage(1000, interest.Effective{Rate: 0.1},
		instrument.WithFrequency(1), instrument.WithAmortization(2))
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, row := range m.Schedule() {
		fmt.Println(row.Period, row.Payment.StringFixed(2), row.Interest.StringFixed(2),
			row.Principal.StringFixed(2), row.Balance.StringFixed(2))
	}
	// Output:
	// 1 576.19 100.00 476.19 523.81
	// 2 576.19 52.38 523.81 0.00
}

func ExampleRelate() {
	costs := []float64{5000, 7000, 6000, 3000}
	fmt.Println(instrument.Relate(costs, 10000))
	for combo := range instrument.RelatedCombinations(costs, 10000) {
		fmt.Print(combo, " ")
	}
	fmt.Println()
	// Output:
	// related
	// [2 3] [1 3] [0 3] [3] [2] [1] [0] []
}

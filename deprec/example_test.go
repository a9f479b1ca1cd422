package deprec_test

import (
	"fmt"

	"github.com/katalvlaran/econlab/deprec"
)

func ExampleBooks() {
	for book := range deprec.Books(deprec.NewSumOfYearsDigits(92000, 19000, 4)) {
		fmt.Println(book)
	}
	// Output:
	// 92000
	// 62800
	// 40900
	// 26300
	// 19000
}

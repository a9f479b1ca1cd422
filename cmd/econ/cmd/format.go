package cmd

import (
	"io"
	"math"
	"strconv"
	"text/tabwriter"

	"github.com/shopspring/decimal"
)

// money renders x in cents. Non-finite values are printed as-is.
func money(x float64) string {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return strconv.FormatFloat(x, 'g', -1, 64)
	}

	return decimal.NewFromFloat(x).StringFixed(2)
}

// periods renders a period count to four significant digits.
func periods(x float64) string {
	return strconv.FormatFloat(x, 'g', 4, 64)
}

// rate renders a rate as a percentage with four decimals.
func rate(r float64) string {
	return decimal.NewFromFloat(r * 100).StringFixed(4) + "%"
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

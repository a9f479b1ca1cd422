package interest

import "math"

// AF is the sinking fund factor (A/F, i, n).
func AF(i, n float64) float64 {
	return i / (FP(i, n) - 1)
}

// AG is the arithmetic gradient to annuity factor (A/G, i, n).
func AG(i, n float64) float64 {
	return 1/i - n/(FP(i, n)-1)
}

// AP is the capital recovery factor (A/P, i, n).
func AP(i, n float64) float64 {
	f := FP(i, n)

	return i * f / (f - 1)
}

// FA is the uniform series compound amount factor (F/A, i, n).
func FA(i, n float64) float64 {
	return (FP(i, n) - 1) / i
}

// FP is the compound amount factor (F/P, i, n) = (1+i)^n.
func FP(i, n float64) float64 {
	return math.Pow(1+i, n)
}

// PA is the series present worth factor (P/A, i, n).
func PA(i, n float64) float64 {
	f := FP(i, n)

	return (f - 1) / (i * f)
}

// PAGeometric is the geometric gradient to present worth factor (P/A, g, i, n)
// for a series growing at rate g per period.
func PAGeometric(i, n, g float64) float64 {
	return PA((1+i)/(1+g)-1, n) / (1 + g)
}

// PF is the present worth factor (P/F, i, n) = (1+i)^-n.
func PF(i, n float64) float64 {
	return math.Pow(1+i, -n)
}

// PG is the arithmetic gradient to present worth factor (P/G, i, n).
func PG(i, n float64) float64 {
	return 1 / (i * i) * (1 - (1+i*n)/FP(i, n))
}

// Perpetuity is the capitalised cost factor (P/A, i, ∞) = 1/i.
func Perpetuity(i float64) float64 {
	return 1 / i
}

package calc

import (
	"fmt"
	"math"

	"github.com/katalvlaran/econlab/seq"
)

// Derivative approximates f'(x) with the central difference
// (f(x+eps) - f(x-eps)) / 2eps.
func Derivative(f func(float64) float64, x, eps float64) float64 {
	return (f(x+eps) - f(x-eps)) / (2 * eps)
}

// Root finds x with |f(x)| < eps by Newton's method, starting at x and using
// Derivative(f, x, eps) as the slope.
//
// Errors:
//   - ErrOptionViolation for an invalid option.
//   - ErrNoConvergence once WithMaxIter steps are spent.
//   - ctx.Err() once the WithContext context is done.
func Root(f func(float64) float64, x, eps float64, opts ...Option) (float64, error) {
	o := buildOptions(opts)
	if o.err != nil {
		return x, o.err
	}

	for step := 0; ; step++ {
		y := f(x)
		if math.Abs(y) < eps {
			return x, nil
		}
		if o.MaxIter > 0 && step >= o.MaxIter {
			return x, fmt.Errorf("Root: after %d steps at x=%g: %w", step, x, ErrNoConvergence)
		}
		if err := o.Ctx.Err(); err != nil {
			return x, fmt.Errorf("Root: %w", err)
		}
		x -= y / Derivative(f, x, eps)
	}
}

// Integrate approximates ∫f over [lo, hi) with the left-rectangle rule on n
// equal subdivisions. The sample points come from seq.Arange, so they carry
// its accumulation drift. n <= 0 selects DefaultSteps.
func Integrate(f func(float64) float64, lo, hi float64, n int) float64 {
	if n <= 0 {
		n = DefaultSteps
	}
	dx := (hi - lo) / float64(n)

	sum := 0.0
	for x := range seq.Arange(lo, hi, dx) {
		sum += dx * f(x)
	}

	return sum
}

// Interpolate evaluates at x the straight line through (xs[0], ys[0]) and
// (xs[1], ys[1]).
func Interpolate(x float64, xs, ys [2]float64) float64 {
	return (x-xs[0])/(xs[1]-xs[0])*(ys[1]-ys[0]) + ys[0]
}

package seq

import "iter"

// Arange yields start, start+step, start+step+step, ... while the running
// value stays strictly below stop.
//
// Values are accumulated, not computed as start+k*step, so the sequence carries
// the usual floating-point drift of repeated addition. A non-positive step with
// start < stop never terminates on its own; the consumer must stop ranging.
func Arange(start, stop, step float64) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for x := start; x < stop; x += step {
			if !yield(x) {
				return
			}
		}
	}
}

// ArangeTo is Arange(0, stop, 1).
func ArangeTo(stop float64) iter.Seq[float64] {
	return Arange(0, stop, 1)
}

// ArangeFrom is Arange(start, stop, 1).
func ArangeFrom(start, stop float64) iter.Seq[float64] {
	return Arange(start, stop, 1)
}

// Linspace yields n values from start towards stop in equal increments
// (stop excluded). A non-positive n yields nothing.
func Linspace(start, stop float64, n int) iter.Seq[float64] {
	if n <= 0 {
		return func(func(float64) bool) {}
	}

	return Arange(start, stop, (stop-start)/float64(n))
}

// SeriesSum returns the sum of an arithmetic series of n terms running from
// start to stop, i.e. floor((start+stop)*n/2).
func SeriesSum(start, stop, n int) int {
	return floorDiv((start+stop)*n, 2)
}

// SeriesSumTo sums every integer between 0 and stop inclusive.
// SeriesSumTo(4) == 10 and SeriesSumTo(-5) == -15.
func SeriesSumTo(stop int) int {
	return SeriesSumBetween(0, stop)
}

// SeriesSumBetween sums every integer between start and stop inclusive.
func SeriesSumBetween(start, stop int) int {
	n := stop - start
	if n < 0 {
		n = -n
	}

	return SeriesSum(start, stop, n+1)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}

	return q
}

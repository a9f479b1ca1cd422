package stats

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/katalvlaran/econlab/seq"
)

// ErrEmptyInput is returned when there is nothing to summarise.
var ErrEmptyInput = errors.New("stats: empty input")

// TrimmedMean sorts a copy of values, drops floor(n*pct) elements from each
// end and returns the mean of the rest.
func TrimmedMean(values []float64, pct float64) (float64, error) {
	sorted := slices.Clone(values)
	slices.Sort(sorted)

	kept := seq.Trimmed(sorted, pct)
	if len(kept) == 0 {
		return 0, fmt.Errorf("TrimmedMean: %w", ErrEmptyInput)
	}
	sum := 0.0
	for _, v := range kept {
		sum += v
	}

	return sum / float64(len(kept)), nil
}

// Range returns max(values) - min(values).
func Range(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, fmt.Errorf("Range: %w", ErrEmptyInput)
	}

	return slices.Max(values) - slices.Min(values), nil
}

// Shuffled returns a shuffled copy of values. A nil r uses the global source.
func Shuffled[T any](values []T, r *rand.Rand) []T {
	out := slices.Clone(values)
	swap := func(i, j int) { out[i], out[j] = out[j], out[i] }
	if r == nil {
		rand.Shuffle(len(out), swap)
	} else {
		r.Shuffle(len(out), swap)
	}

	return out
}

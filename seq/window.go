package seq

import (
	"iter"
	"slices"
)

const (
	opWindowed = "Windowed"
	opAfter    = "After"
)

// Windowed returns sliding views of s, each width elements long, starting at
// indices 0, step, 2*step, ...
//
// With partial == false only full windows are produced. With partial == true
// a window starts at every step below len(s) and the trailing windows shrink
// as they run past the end of s. Each yielded window is a fresh copy.
//
// Errors: ErrInvalidArgument if step <= 0 or width < 0.
func Windowed[T any](s []T, width, step int, partial bool) (iter.Seq[[]T], error) {
	if step <= 0 || width < 0 {
		return nil, seqErrorf(opWindowed, ErrInvalidArgument)
	}

	limit := len(s) - width + 1
	if partial {
		limit = len(s)
	}

	return func(yield func([]T) bool) {
		for i := 0; i < limit; i += step {
			window := slices.Clone(s[i:min(i+width, len(s))])
			if !yield(window) {
				return
			}
		}
	}, nil
}

// Chunked splits s into consecutive chunks of width elements; the last chunk
// may be shorter. Errors: ErrInvalidArgument if width <= 0.
func Chunked[T any](s []T, width int) (iter.Seq[[]T], error) {
	return Windowed(s, width, width, true)
}

// Trimmed drops floor(len(s)*pct) elements from each end of s. The caller is
// expected to have sorted s. A negative pct trims nothing. The result aliases s.
func Trimmed[T any](s []T, pct float64) []T {
	n := max(0, int(float64(len(s))*pct))
	if 2*n >= len(s) {
		return s[:0]
	}

	return s[n : len(s)-n]
}

// Rotated returns a copy of s rotated left by index. Negative indices count
// from the end; indices beyond the bounds are clamped.
func Rotated[T any](s []T, index int) []T {
	n := len(s)
	if index < 0 {
		index += n
	}
	index = max(0, min(index, n))

	out := make([]T, 0, n)
	out = append(out, s[index:]...)
	return append(out, s[:index]...)
}

// After returns the element following the first occurrence of v in s.
// With loop set, the successor of the last element is the first one.
//
// Errors: ErrNotFound if v is absent, ErrLastElement if v is last and loop is false.
func After[T comparable](s []T, v T, loop bool) (T, error) {
	var zero T

	i := slices.Index(s, v)
	if i < 0 {
		return zero, seqErrorf(opAfter, ErrNotFound)
	}
	i++
	if loop {
		i %= len(s)
	}
	if i >= len(s) {
		return zero, seqErrorf(opAfter, ErrLastElement)
	}

	return s[i], nil
}

// Concat chains the sequences one after another.
func Concat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, s := range seqs {
			for v := range s {
				if !yield(v) {
					return
				}
			}
		}
	}
}

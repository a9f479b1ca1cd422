package seq

import (
	"cmp"
	"iter"
)

// Number lists the element types Product can multiply.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

const (
	opBind    = "Bind"
	opProduct = "Product"
	opGet     = "Get"
)

// IterEqual reports whether a and b yield the same elements in the same order.
func IterEqual[T comparable](a, b iter.Seq[T]) bool {
	nextB, stop := iter.Pull(b)
	defer stop()

	for x := range a {
		y, ok := nextB()
		if !ok || x != y {
			return false
		}
	}
	_, more := nextB()

	return !more
}

// Const reports whether all elements of s are equal. An empty s is constant.
func Const[T comparable](s iter.Seq[T]) bool {
	var (
		head    T
		started bool
	)
	for v := range s {
		if !started {
			head, started = v, true
			continue
		}
		if v != head {
			return false
		}
	}

	return true
}

// Unique reports whether no two elements of s are equal. An empty s is unique.
func Unique[T comparable](s []T) bool {
	set := make(map[T]struct{}, len(s))
	for _, v := range s {
		if _, dup := set[v]; dup {
			return false
		}
		set[v] = struct{}{}
	}

	return true
}

// UniqueFunc is Unique for element types that are not comparable, using eq
// for pairwise equality. It runs in O(n²).
func UniqueFunc[T any](s []T, eq func(a, b T) bool) bool {
	for i := range s {
		for j := i + 1; j < len(s); j++ {
			if eq(s[i], s[j]) {
				return false
			}
		}
	}

	return true
}

// Empty reports whether s yields no element.
func Empty[T any](s iter.Seq[T]) bool {
	for range s {
		return false
	}

	return true
}

// Bind clamps v into [lower, upper].
// Errors: ErrInvalidRange if upper < lower.
func Bind[T cmp.Ordered](v, lower, upper T) (T, error) {
	if upper < lower {
		return v, seqErrorf(opBind, ErrInvalidRange)
	}

	return min(max(v, lower), upper), nil
}

// Product multiplies the elements of values.
// Errors: ErrEmptyInput if values yields nothing.
func Product[T Number](values iter.Seq[T]) (T, error) {
	var (
		acc  T
		seen bool
	)
	for v := range values {
		if !seen {
			acc, seen = v, true
			continue
		}
		acc *= v
	}
	if !seen {
		return acc, seqErrorf(opProduct, ErrEmptyInput)
	}

	return acc, nil
}

// ProductFrom multiplies start by every element of values.
func ProductFrom[T Number](start T, values iter.Seq[T]) T {
	for v := range values {
		start *= v
	}

	return start
}

// NextOrZero returns the first element of s, or the zero value and false
// when s is empty.
func NextOrZero[T any](s iter.Seq[T]) (T, bool) {
	for v := range s {
		return v, true
	}
	var zero T

	return zero, false
}

// Default returns *p, or d when p is nil.
func Default[T any](p *T, d T) T {
	if p == nil {
		return d
	}

	return *p
}

// Get dereferences p. Errors: ErrNilValue if p is nil.
func Get[T any](p *T) (T, error) {
	if p == nil {
		var zero T
		return zero, seqErrorf(opGet, ErrNilValue)
	}

	return *p, nil
}

// SPDX-License-Identifier: MIT

package linalg

import "slices"

// Full returns a vector of size copies of value.
func Full(size int, value float64) Vector {
	out := make(Vector, size)
	for i := range out {
		out[i] = value
	}

	return out
}

// Zeros returns a zero vector of the given size.
func Zeros(size int) Vector { return Full(size, 0) }

// Ones returns a vector of ones of the given size.
func Ones(size int) Vector { return Full(size, 1) }

// Deleted returns a copy of v without the element at index.
//
// Errors: ErrOutOfRange if index is not in [0, len(v)).
func Deleted(v Vector, index int) (Vector, error) {
	if err := validateIndex(index, len(v)); err != nil {
		return nil, linalgErrorf(opDeleted, err)
	}

	return slices.Delete(v.Clone(), index, index+1), nil
}

// Inserted returns a copy of v with value inserted before index.
// index == len(v) appends.
//
// Errors: ErrOutOfRange if index is not in [0, len(v)].
func Inserted(v Vector, index int, value float64) (Vector, error) {
	if err := validateIndex(index, len(v)+1); err != nil {
		return nil, linalgErrorf(opInserted, err)
	}

	return slices.Insert(v.Clone(), index, value), nil
}

// Replaced returns a copy of v with the element at index set to value.
//
// Errors: ErrOutOfRange if index is not in [0, len(v)).
func Replaced(v Vector, index int, value float64) (Vector, error) {
	if err := validateIndex(index, len(v)); err != nil {
		return nil, linalgErrorf(opReplaced, err)
	}
	out := v.Clone()
	out[index] = value

	return out, nil
}

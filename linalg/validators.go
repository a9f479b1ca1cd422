// SPDX-License-Identifier: MIT
// Package: linalg
//
// Purpose:
//   - Single source of truth for the shape checks shared by the vector and
//     matrix kernels.
//   - Return plain sentinels; the calling facade wraps them with its op tag.

package linalg

// ValidateSameLen ensures two vectors have the same length.
//
// Returns ErrDimensionMismatch otherwise.
// Complexity: O(1).
func ValidateSameLen(a, b Vector) error {
	if len(a) != len(b) {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidateRectangular ensures every row of m has the same length and
// reports that length (0 for an empty matrix).
//
// Complexity: O(rows).
func ValidateRectangular(m Matrix) (cols int, err error) {
	if len(m) == 0 {
		return 0, nil
	}
	cols = len(m[0])
	for _, row := range m[1:] {
		if len(row) != cols {
			return 0, ErrDimensionMismatch
		}
	}

	return cols, nil
}

// ValidateSquareSystem ensures m is n×n and y has n entries.
//
// Errors: ErrNonSquare for a non-square m, ErrDimensionMismatch when y does
// not match.
func ValidateSquareSystem(m Matrix, y Vector) error {
	for _, row := range m {
		if len(row) != len(m) {
			return ErrNonSquare
		}
	}
	if len(y) != len(m) {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidateNotNil ensures the Dense reference is non-nil.
//
// Returns ErrNilMatrix if d == nil.
func ValidateNotNil(d *Dense) error {
	if d == nil {
		return ErrNilMatrix
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions. Both must be
// non-nil.
//
// Returns ErrDimensionMismatch otherwise.
// Complexity: O(1).
func ValidateSameShape(a, b *Dense) error {
	if a.r != b.r || a.c != b.c {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidateMulCompatible ensures both operands are non-nil and a.Cols == b.Rows.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func ValidateMulCompatible(a, b *Dense) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.c != b.r {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidateVecLen ensures len(x) == n.
func ValidateVecLen(x Vector, n int) error {
	if len(x) != n {
		return ErrDimensionMismatch
	}

	return nil
}

// validateIndex ensures 0 <= i < n.
func validateIndex(i, n int) error {
	if i < 0 || i >= n {
		return ErrOutOfRange
	}

	return nil
}

// SPDX-License-Identifier: MIT
// Dense kernels.
//
// Purpose:
//   - Elementwise sum and difference, the matrix product, transpose, scalar
//     scaling and the matrix-vector product over flat row-major storage.
//   - Validation happens once at the top of each exported kernel; the inner
//     loops index the backing slices directly.
//
// Determinism:
//   - Flat walks run 0..n-1; nested walks run rows before columns.
//   - Results are fresh allocations; operands are never mutated.

package linalg

import "fmt"

// addSub computes out = a + sign*b for sign ∈ {+1, -1}.
//
// Implementation:
//   - Stage 1: ValidateNotNil on both operands, then ValidateSameShape.
//   - Stage 2: allocate the result and walk the backing slices once.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, both wrapped with tag.
// Complexity: Time O(r*c), Space O(r*c).
func addSub(a, b *Dense, sign float64, tag string) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, linalgErrorf(tag, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, linalgErrorf(tag, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, linalgErrorf(tag, err)
	}

	res := &Dense{r: a.r, c: a.c, data: make([]float64, len(a.data))}
	for idx := range res.data {
		res.data[idx] = a.data[idx] + sign*b.data[idx]
	}

	return res, nil
}

// Add computes the elementwise sum C = A + B.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*c), Space O(r*c).
func Add(a, b *Dense) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the elementwise difference C = A - B.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*c), Space O(r*c).
func Sub(a, b *Dense) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Mul computes the matrix product C = A × B.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible (both non-nil, A.Cols == B.Rows).
//   - Stage 2: i→k→j over the row-major strides of A and B, skipping zero
//     A[i,k] so a sparse row costs only its non-zeros.
//
// Inputs:
//   - a: left operand with shape (r × n).
//   - b: right operand with shape (n × c).
//
// Returns:
//   - *Dense: a new (r × c) result.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*n*c), Space O(r*c).
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, linalgErrorf(opMul, err)
	}

	res := &Dense{r: a.r, c: b.c, data: make([]float64, a.r*b.c)}
	var rowA, rowB, rowR int
	var av float64
	for i := 0; i < a.r; i++ {
		rowA = i * a.c
		rowR = i * b.c
		for k := 0; k < a.c; k++ {
			av = a.data[rowA+k]
			if av == 0 {
				continue
			}
			rowB = k * b.c
			for j := 0; j < b.c; j++ {
				res.data[rowR+j] += av * b.data[rowB+j]
			}
		}
	}

	return res, nil
}

// Transpose returns Aᵀ with the dimensions flipped.
//
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r*c).
func Transpose(a *Dense) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, linalgErrorf(opTranspose, err)
	}

	res := &Dense{r: a.c, c: a.r, data: make([]float64, len(a.data))}
	var base int
	for i := 0; i < a.r; i++ {
		base = i * a.c
		for j := 0; j < a.c; j++ {
			res.data[j*a.r+i] = a.data[base+j]
		}
	}

	return res, nil
}

// Scale returns alpha·A.
//
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r*c).
func Scale(a *Dense, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, linalgErrorf(opScale, err)
	}

	return scale(a, alpha), nil
}

// scale assumes a is non-nil.
func scale(a *Dense, alpha float64) *Dense {
	res := &Dense{r: a.r, c: a.c, data: make([]float64, len(a.data))}
	for idx, v := range a.data {
		res.data[idx] = v * alpha
	}

	return res
}

// MatVec computes y = A·x, one row-major dot product per row.
//
// Implementation:
//   - Stage 1: ValidateNotNil, then ValidateVecLen(x, A.Cols).
//   - Stage 2: accumulate each row against x, skipping zero x[j].
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*c), Space O(r).
func MatVec(a *Dense, x Vector) (Vector, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, linalgErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, a.c); err != nil {
		return nil, linalgErrorf(opMatVec, fmt.Errorf("%d columns: %w", a.c, err))
	}

	y := make(Vector, a.r)
	var base int
	var acc float64
	for i := 0; i < a.r; i++ {
		acc = 0
		base = i * a.c
		for j, xv := range x {
			if xv != 0 {
				acc += a.data[base+j] * xv
			}
		}
		y[i] = acc
	}

	return y, nil
}

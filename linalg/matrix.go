// SPDX-License-Identifier: MIT
// Matrix kernels.
//
// The row form is the public surface. Rectangular arithmetic converts through
// Dense and back, so results are fresh allocations and operands are never
// mutated.

package linalg

import "fmt"

// Matrix is a mutable row-major sequence of Vector rows.
type Matrix []Vector

// Dims returns the number of rows and the length of the first row.
func (m Matrix) Dims() (rows, cols int) {
	if len(m) == 0 {
		return 0, 0
	}

	return len(m), len(m[0])
}

// Clone returns a deep copy of m.
func (m Matrix) Clone() Matrix {
	out := make(Matrix, len(m))
	for i, row := range m {
		out[i] = row.Clone()
	}

	return out
}

// Neg returns -m.
func (m Matrix) Neg() Matrix {
	return m.Scale(-1)
}

// Scale returns m multiplied by the scalar k. Rectangular matrices go
// through Dense; ragged rows are scaled one by one.
func (m Matrix) Scale(k float64) Matrix {
	if d, err := DenseOf(m); err == nil {
		return scale(d, k).Matrix()
	}

	out := make(Matrix, len(m))
	for i, row := range m {
		out[i] = row.Scale(k)
	}

	return out
}

// Div returns m divided by the scalar k.
func (m Matrix) Div(k float64) Matrix {
	out := make(Matrix, len(m))
	for i, row := range m {
		out[i] = row.Div(k)
	}

	return out
}

// Add returns the elementwise sum m + o.
//
// Implementation:
//   - Stage 1: both operands are copied into Dense, which rejects ragged rows.
//   - Stage 2: the Dense kernel checks the shapes and adds the backing slices.
//
// Errors: ErrDimensionMismatch on a ragged operand or unequal shapes.
// Complexity: O(r*c).
func (m Matrix) Add(o Matrix) (Matrix, error) {
	return m.addSub(o, Add, opAdd)
}

// Sub returns the elementwise difference m - o.
//
// Errors: ErrDimensionMismatch on a ragged operand or unequal shapes.
// Complexity: O(r*c).
func (m Matrix) Sub(o Matrix) (Matrix, error) {
	return m.addSub(o, Sub, opSub)
}

func (m Matrix) addSub(o Matrix, kernel func(a, b *Dense) (*Dense, error), tag string) (Matrix, error) {
	a, b, err := densePair(m, o)
	if err != nil {
		return nil, linalgErrorf(tag, err)
	}
	res, err := kernel(a, b)
	if err != nil {
		return nil, err
	}

	return res.Matrix(), nil
}

// densePair converts both operands.
func densePair(m, o Matrix) (*Dense, *Dense, error) {
	a, err := DenseOf(m)
	if err != nil {
		return nil, nil, err
	}
	b, err := DenseOf(o)
	if err != nil {
		return nil, nil, err
	}

	return a, b, nil
}

// MulVec returns the matrix-vector product m·v: one dot product per row.
//
// Errors: ErrDimensionMismatch if m is empty, ragged, or its width differs
// from len(v).
// Complexity: O(r*c).
func (m Matrix) MulVec(v Vector) (Vector, error) {
	if len(m) == 0 {
		return nil, linalgErrorf(opMulVec, ErrDimensionMismatch)
	}
	d, err := DenseOf(m)
	if err != nil {
		return nil, linalgErrorf(opMulVec, err)
	}

	return MatVec(d, v)
}

// Mul returns the matrix product m·o.
//
// Implementation:
//   - Stage 1: m must be non-empty; both operands are copied into Dense.
//   - Stage 2: the Dense kernel checks m's width against o's height and
//     multiplies in i→k→j order.
//
// Errors: ErrDimensionMismatch on any shape violation.
// Complexity: O(r*c*k) time, O(r*k) for the result.
func (m Matrix) Mul(o Matrix) (Matrix, error) {
	if len(m) == 0 {
		return nil, linalgErrorf(opMul, ErrDimensionMismatch)
	}
	a, b, err := densePair(m, o)
	if err != nil {
		return nil, linalgErrorf(opMul, err)
	}
	res, err := Mul(a, b)
	if err != nil {
		return nil, err
	}

	return res.Matrix(), nil
}

// Dot returns Σ m[i]·o[i], the sum of the row-wise inner products.
//
// Errors: ErrDimensionMismatch if the row counts or any row pair differ.
func (m Matrix) Dot(o Matrix) (float64, error) {
	if len(m) != len(o) {
		return 0, linalgErrorf(opDot, ErrDimensionMismatch)
	}
	sum := 0.0
	for i := range m {
		d, err := m[i].Dot(o[i])
		if err != nil {
			return 0, linalgErrorf(opDot, fmt.Errorf("row %d: %w", i, err))
		}
		sum += d
	}

	return sum, nil
}

// Transposed returns mᵀ.
//
// Errors: ErrDimensionMismatch if m is ragged.
// Complexity: O(r*c).
func (m Matrix) Transposed() (Matrix, error) {
	d, err := DenseOf(m)
	if err != nil {
		return nil, linalgErrorf(opTransposed, err)
	}
	res, err := Transpose(d)
	if err != nil {
		return nil, linalgErrorf(opTransposed, err)
	}

	return res.Matrix(), nil
}

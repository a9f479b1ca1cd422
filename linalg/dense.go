// SPDX-License-Identifier: MIT
// Dense is the flat row-major storage behind the Matrix kernels.
//
// Matrix keeps the ergonomic [][]float64 surface; every rectangular operation
// converts through Dense so the arithmetic runs over one contiguous slice.

package linalg

import "fmt"

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int
	data []float64
}

// NewDense creates an r×c Dense matrix initialized to zeros. Zero rows or
// columns are allowed; an empty Matrix converts to a 0×0 Dense.
//
// Errors: ErrBadShape if rows or cols is negative.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, linalgErrorf(opNewDense, fmt.Errorf("%d×%d: %w", rows, cols, ErrBadShape))
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// DenseOf copies m into a fresh Dense.
//
// Errors: ErrDimensionMismatch if m is ragged.
// Complexity: O(r*c).
func DenseOf(m Matrix) (*Dense, error) {
	cols, err := ValidateRectangular(m)
	if err != nil {
		return nil, linalgErrorf(opDenseOf, err)
	}
	d := &Dense{r: len(m), c: cols, data: make([]float64, len(m)*cols)}
	for i, row := range m {
		copy(d.data[i*cols:], row)
	}

	return d, nil
}

// Rows returns the number of rows.
func (d *Dense) Rows() int { return d.r }

// Cols returns the number of columns.
func (d *Dense) Cols() int { return d.c }

// indexOf computes the flat index for (row, col).
func (d *Dense) indexOf(tag string, row, col int) (int, error) {
	if err := validateIndex(row, d.r); err != nil {
		return 0, linalgErrorf(tag, fmt.Errorf("(%d,%d): %w", row, col, err))
	}
	if err := validateIndex(col, d.c); err != nil {
		return 0, linalgErrorf(tag, fmt.Errorf("(%d,%d): %w", row, col, err))
	}

	return row*d.c + col, nil
}

// At returns the element at (row, col).
//
// Errors: ErrOutOfRange.
func (d *Dense) At(row, col int) (float64, error) {
	idx, err := d.indexOf(opAt, row, col)
	if err != nil {
		return 0, err
	}

	return d.data[idx], nil
}

// Set assigns v at (row, col).
//
// Errors: ErrOutOfRange.
func (d *Dense) Set(row, col int, v float64) error {
	idx, err := d.indexOf(opSet, row, col)
	if err != nil {
		return err
	}
	d.data[idx] = v

	return nil
}

// Clone returns a deep copy of d.
func (d *Dense) Clone() *Dense {
	data := make([]float64, len(d.data))
	copy(data, d.data)

	return &Dense{r: d.r, c: d.c, data: data}
}

// Matrix copies d back into row form. The result shares no storage with d.
func (d *Dense) Matrix() Matrix {
	out := make(Matrix, d.r)
	for i := range out {
		out[i] = make(Vector, d.c)
		copy(out[i], d.data[i*d.c:(i+1)*d.c])
	}

	return out
}

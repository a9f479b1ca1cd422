// SPDX-License-Identifier: MIT
// Package linalg: sentinel error set.
// Every algorithm returns one of these sentinels, wrapped with the operation
// tag via linalgErrorf. Tests match them with errors.Is.

package linalg

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch indicates incompatible operand lengths, e.g. Add on
	// vectors of different size or Mul where the inner dimensions differ.
	ErrDimensionMismatch = errors.New("linalg: unequal lengths between operands")

	// ErrBadShape is returned when a requested shape is invalid (negative rows
	// or columns).
	ErrBadShape = errors.New("linalg: invalid shape")

	// ErrNilMatrix indicates that a nil *Dense was passed to a kernel.
	ErrNilMatrix = errors.New("linalg: nil matrix")

	// ErrOutOfRange indicates that an index is outside valid bounds.
	ErrOutOfRange = errors.New("linalg: index out of range")

	// ErrNonSquare signals that Solve received a non-square coefficient matrix.
	ErrNonSquare = errors.New("linalg: matrix is not square")

	// ErrSingular is returned when the system has no unique solution.
	ErrSingular = errors.New("linalg: singular matrix")

	// ErrNotImplemented marks systems larger than 2×2.
	ErrNotImplemented = errors.New("linalg: operation not implemented")
)

// Operation tags for error wrapping.
const (
	opAdd        = "Add"
	opSub        = "Sub"
	opDot        = "Dot"
	opMulVec     = "MulVec"
	opMatVec     = "MatVec"
	opMul        = "Mul"
	opScale      = "Scale"
	opTranspose  = "Transpose"
	opTransposed = "Transposed"
	opNewDense   = "NewDense"
	opDenseOf    = "DenseOf"
	opAt         = "At"
	opSet        = "Set"
	opDeleted    = "Deleted"
	opInserted   = "Inserted"
	opReplaced   = "Replaced"
	opSolve      = "Solve"
)

// zeroDeterminant marks a system without a unique solution.
const zeroDeterminant = 0.0

// linalgErrorf wraps err with the operation tag.
func linalgErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// SPDX-License-Identifier: MIT
// Package linalg provides a small dense linear-algebra toolkit for the
// closed-form problems that appear in engineering economics.
//
// The linalg package provides:
//
//   - Vector, a mutable []float64 with elementwise Add/Sub, scalar Scale/Div,
//     Neg, Clone and the Dot product.
//   - Matrix, a row-major []Vector with the same elementwise surface plus
//     MulVec (matrix × vector), Mul (matrix × matrix), Dot (Σ row·row) and
//     Transposed.
//   - Dense, the flat row-major storage the rectangular Matrix operations run
//     on, with the kernels Add, Sub, Mul, Transpose, Scale and MatVec.
//   - Copying constructors: Full, Zeros, Ones, Deleted, Inserted, Replaced.
//   - Solve, a closed-form solver for systems of size 0, 1 and 2.
//
// All binary operations validate their operands first and fail with
// ErrDimensionMismatch instead of panicking. Operands are never mutated; every
// result is a fresh allocation.
//
// Solve intentionally stops at 2×2: larger systems return ErrNotImplemented.
package linalg

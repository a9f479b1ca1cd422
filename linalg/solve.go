// SPDX-License-Identifier: MIT

package linalg

// Solve solves M·x = y for x in closed form.
//
// Implementation:
//   - n = 0: empty solution.
//   - n = 1: x₀ = y₀ / m₀₀.
//   - n = 2: Cramer's rule, x = (det₀/det, det₁/det).
//   - n > 2: ErrNotImplemented.
//
// Inputs:
//   - m: n×n coefficient matrix.
//   - y: right-hand side with n entries.
//
// Errors:
//   - ErrNonSquare, ErrDimensionMismatch (shape).
//   - ErrSingular when the determinant (or the 1×1 pivot) is zero.
//   - ErrNotImplemented for n > 2.
//
// Complexity: O(1).
func Solve(m Matrix, y Vector) (Vector, error) {
	if err := ValidateSquareSystem(m, y); err != nil {
		return nil, linalgErrorf(opSolve, err)
	}

	switch len(m) {
	case 0:
		return Vector{}, nil
	case 1:
		if m[0][0] == zeroDeterminant {
			return nil, linalgErrorf(opSolve, ErrSingular)
		}

		return Vector{y[0] / m[0][0]}, nil
	case 2:
		det := m[0][0]*m[1][1] - m[0][1]*m[1][0]
		if det == zeroDeterminant {
			return nil, linalgErrorf(opSolve, ErrSingular)
		}
		x0 := (y[0]*m[1][1] - m[0][1]*y[1]) / det
		x1 := (m[0][0]*y[1] - y[0]*m[1][0]) / det

		return Vector{x0, x1}, nil
	default:
		return nil, linalgErrorf(opSolve, ErrNotImplemented)
	}
}

// SPDX-License-Identifier: MIT

package linalg

// Vector is a mutable sequence of float64 values.
type Vector []float64

// Clone returns a copy of v (the unary plus).
func (v Vector) Clone() Vector {
	out := make(Vector, len(v))
	copy(out, v)

	return out
}

// Neg returns -v.
func (v Vector) Neg() Vector {
	return v.Scale(-1)
}

// Add returns the elementwise sum v + w.
//
// Errors: ErrDimensionMismatch if len(v) != len(w).
// Complexity: O(n).
func (v Vector) Add(w Vector) (Vector, error) {
	return v.addSub(w, 1, opAdd)
}

// Sub returns the elementwise difference v - w.
//
// Errors: ErrDimensionMismatch if len(v) != len(w).
// Complexity: O(n).
func (v Vector) Sub(w Vector) (Vector, error) {
	return v.addSub(w, -1, opSub)
}

// addSub computes out = v + sign*w.
func (v Vector) addSub(w Vector, sign float64, tag string) (Vector, error) {
	if err := ValidateSameLen(v, w); err != nil {
		return nil, linalgErrorf(tag, err)
	}
	out := make(Vector, len(v))
	for i := range v {
		out[i] = v[i] + sign*w[i]
	}

	return out, nil
}

// Scale returns v multiplied by the scalar k.
func (v Vector) Scale(k float64) Vector {
	out := make(Vector, len(v))
	for i, x := range v {
		out[i] = x * k
	}

	return out
}

// Div returns v divided by the scalar k. Division by zero follows IEEE-754.
func (v Vector) Div(k float64) Vector {
	out := make(Vector, len(v))
	for i, x := range v {
		out[i] = x / k
	}

	return out
}

// Dot returns the inner product Σ v[i]*w[i].
//
// Errors: ErrDimensionMismatch if len(v) != len(w).
func (v Vector) Dot(w Vector) (float64, error) {
	if err := ValidateSameLen(v, w); err != nil {
		return 0, linalgErrorf(opDot, err)
	}

	return dot(v, w), nil
}

// dot assumes equal lengths.
func dot(v, w Vector) float64 {
	sum := 0.0
	for i := range v {
		sum += v[i] * w[i]
	}

	return sum
}

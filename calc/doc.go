// Package calc implements the numerical calculus primitives used by the
// cash-flow engine: a central-difference Derivative, a Newton's-method Root
// finder, a left-rectangle Integrate and a two-point linear Interpolate.
//
// Root iterates until |f(x)| drops below eps and has no step limit by
// default, so a non-convergent function keeps it spinning. Callers that need
// a bound pass WithMaxIter or WithContext:
//
//	x, err := calc.Root(f, guess, calc.Epsilon, calc.WithMaxIter(1000))
//
// Without options the returned error is always nil.
package calc

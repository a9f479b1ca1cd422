package calc

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrNoConvergence is returned by Root when the iteration budget runs out.
	ErrNoConvergence = errors.New("calc: root did not converge")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("calc: invalid option supplied")
)

// Epsilon is the conventional accuracy for Root and the tolerance used for
// inclusive time bounds.
const Epsilon = 1e-9

// DefaultSteps is the subdivision count Integrate falls back to.
const DefaultSteps = 100

// Option configures Root via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by Root.
type Option func(*Options)

// Options holds the knobs of the root finder.
type Options struct {
	// Ctx is checked before every Newton step.
	Ctx context.Context

	// MaxIter, if > 0, caps the number of Newton steps.
	// 0 means unbounded.
	MaxIter int

	err error
}

// DefaultOptions returns unbounded iteration under context.Background().
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		MaxIter: 0,
	}
}

// WithContext sets a context whose cancellation stops Root.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxIter caps the number of Newton steps.
//
//	n > 0: at most n steps, then ErrNoConvergence
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxIter(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxIter cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxIter = n
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

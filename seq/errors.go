package seq

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned when a width or step is out of its domain.
	ErrInvalidArgument = errors.New("seq: invalid argument")

	// ErrInvalidRange indicates that a lower bound exceeds its upper bound.
	ErrInvalidRange = errors.New("seq: lower bound is greater than the upper bound")

	// ErrEmptyInput is returned by reducers that have no identity to fall back on.
	ErrEmptyInput = errors.New("seq: empty input")

	// ErrNotFound indicates that a searched value is absent.
	ErrNotFound = errors.New("seq: value not found")

	// ErrLastElement is returned by After when the value has no successor.
	ErrLastElement = errors.New("seq: value is the last element")

	// ErrNilValue is returned by Get for an absent optional.
	ErrNilValue = errors.New("seq: the checked value is nil")
)

// seqErrorf tags err with the operation that produced it.
func seqErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

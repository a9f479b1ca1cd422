package instrument

import (
	"errors"
	"fmt"
)

var (
	// ErrLifeMismatch is returned by Project.Sub for projects of different life.
	ErrLifeMismatch = errors.New("instrument: projects have different lives")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("instrument: invalid option supplied")
)

const (
	opSub         = "Project.Sub"
	opIRRTable    = "IRRTable"
	opDeFactoMARR = "DeFactoMARR"
	opNewMortgage = "NewMortgage"
)

func instrumentErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

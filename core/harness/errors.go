package harness

import (
	"errors"
	"fmt"

	"github.com/kilianp07/shiftcheck/core/model"
)

// ErrMismatch indicates two solvers returned different results.
var ErrMismatch = errors.New("solver results differ")

// MismatchError carries the instance on which two solvers disagreed.
type MismatchError struct {
	Trial          int
	Reference      string
	Other          string
	ReferenceValue int
	OtherValue     int
	Units          model.Units
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("trial %d: %s got %d while %s got %d",
		e.Trial, e.Reference, e.ReferenceValue, e.Other, e.OtherValue)
}

// Unwrap allows errors.Is(err, ErrMismatch).
func (e *MismatchError) Unwrap() error { return ErrMismatch }

package model

import "errors"

// Shape fixes the horizon length and the contiguous shift length of a problem.
// It is passed by value and never modified after construction.
type Shape struct {
	NumUnits    int `json:"num_units" yaml:"num_units"`
	ShiftLength int `json:"shift_length" yaml:"shift_length"`
}

// Validate checks that the shape describes a schedulable horizon.
func (s Shape) Validate() error {
	if s.ShiftLength <= 0 {
		return errors.New("shift_length must be positive")
	}
	if s.NumUnits < 0 {
		return errors.New("num_units must not be negative")
	}
	return nil
}

// Windows returns the number of possible shift start positions.
func (s Shape) Windows() int {
	if s.NumUnits < s.ShiftLength {
		return 0
	}
	return s.NumUnits - s.ShiftLength + 1
}

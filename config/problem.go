package config

import (
	"fmt"

	"github.com/kilianp07/shiftcheck/core/generator"
	"github.com/kilianp07/shiftcheck/core/model"
)

// Defaults of a standard run: four weeks of hourly units, day-long shifts.
const (
	DefaultNumUnits        = 672
	DefaultShiftLength     = 24
	DefaultMinAvailability = 1
	DefaultMaxAvailability = 8
	DefaultNumTests        = 100
)

// ProblemConfig describes the generated instances.
type ProblemConfig struct {
	NumUnits        int `json:"num_units"`
	ShiftLength     int `json:"shift_length"`
	MinAvailability int `json:"min_availability"`
	MaxAvailability int `json:"max_availability"`
}

// Shape returns the immutable problem shape.
func (c ProblemConfig) Shape() model.Shape {
	return model.Shape{NumUnits: c.NumUnits, ShiftLength: c.ShiftLength}
}

// Generator returns the instance generator settings.
func (c ProblemConfig) Generator() generator.Config {
	return generator.Config{
		NumUnits:        c.NumUnits,
		MinAvailability: c.MinAvailability,
		MaxAvailability: c.MaxAvailability,
	}
}

// Validate checks the configuration ranges.
func (c ProblemConfig) Validate() error {
	if err := c.Shape().Validate(); err != nil {
		return err
	}
	if c.ShiftLength > c.NumUnits {
		return fmt.Errorf("shift_length %d exceeds num_units %d", c.ShiftLength, c.NumUnits)
	}
	return c.Generator().Validate()
}

package scenarios

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kilianp07/shiftcheck/core/model"
)

type Expected struct {
	Shifts int `yaml:"shifts"`
}

// Scenario is a hand-crafted instance with a known optimum.
type Scenario struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description,omitempty"`
	ShiftLength int      `yaml:"shift_length"`
	Units       []int    `yaml:"units"`
	Solvers     []string `yaml:"solvers,omitempty"`
	Expected    Expected `yaml:"expected"`
}

func (s Scenario) Instance() model.Units { return model.Units(s.Units).Clone() }

func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, err
	}
	if err := sc.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &sc, nil
}

func (s Scenario) validate() error {
	if s.Name == "" {
		return fmt.Errorf("scenario without name")
	}
	shape := model.Shape{NumUnits: len(s.Units), ShiftLength: s.ShiftLength}
	if err := shape.Validate(); err != nil {
		return err
	}
	if !model.Units(s.Units).Valid() {
		return fmt.Errorf("negative availability in %v", s.Units)
	}
	if s.Expected.Shifts < 0 {
		return fmt.Errorf("negative expected shifts")
	}
	return nil
}

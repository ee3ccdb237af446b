package shift

import (
	"context"
	"errors"
	"fmt"

	"github.com/kilianp07/shiftcheck/core/factory"
	"github.com/kilianp07/shiftcheck/core/model"
)

// Registered solver names.
const (
	NameExhaustive = "exhaustive"
	NameGreedy     = "greedy"
	NameLP         = "lp"
)

var (
	// ErrInvalidLength indicates a non-positive shift length.
	ErrInvalidLength = errors.New("shift length must be positive")
	// ErrNegativeUnits indicates a vector with a negative availability.
	ErrNegativeUnits = errors.New("availability vector has negative entries")
)

// Result is the outcome of a solver run.
type Result struct {
	// Shifts is the number of shifts scheduled.
	Shifts int
	// Nodes counts the search steps visited.
	Nodes int64
}

// Solver computes the number of schedulable shifts for a vector.
// Implementations never modify units.
type Solver interface {
	Name() string
	Solve(ctx context.Context, units model.Units) (Result, error)
}

// Options configure solver construction.
type Options struct {
	ShiftLength int
	Parallel    bool
}

var registry = factory.NewRegistry[Solver, Options]()

func init() {
	mustRegister(NameExhaustive, func(o Options) (Solver, error) {
		return Exhaustive{ShiftLength: o.ShiftLength, Parallel: o.Parallel}, nil
	})
	mustRegister(NameGreedy, func(o Options) (Solver, error) {
		return Greedy{ShiftLength: o.ShiftLength}, nil
	})
	mustRegister(NameLP, func(o Options) (Solver, error) {
		return LPBound{ShiftLength: o.ShiftLength}, nil
	})
}

func mustRegister(name string, f factory.Factory[Solver, Options]) {
	if err := registry.Register(name, f); err != nil {
		panic(err)
	}
}

// NewSolver builds the solver registered under name.
func NewSolver(name string, opts Options) (Solver, error) {
	if opts.ShiftLength <= 0 {
		return nil, ErrInvalidLength
	}
	s, err := registry.Create(name, opts)
	if err != nil {
		return nil, fmt.Errorf("solver %q: %w", name, err)
	}
	return s, nil
}

// Known reports whether name refers to a registered solver.
func Known(name string) bool { return registry.Has(name) }

// Names lists the registered solvers.
func Names() []string { return registry.Names() }

func validate(units model.Units, length int) error {
	if length <= 0 {
		return ErrInvalidLength
	}
	if !units.Valid() {
		return ErrNegativeUnits
	}
	return nil
}

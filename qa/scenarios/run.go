package scenarios

import (
	"context"
	"io"
	"testing"

	"github.com/kilianp07/shiftcheck/core/harness"
	"github.com/kilianp07/shiftcheck/core/model"
	"github.com/kilianp07/shiftcheck/core/shift"
)

// fixedSource replays the scenario instance on every trial.
type fixedSource struct{ units model.Units }

func (f fixedSource) Generate() model.Units { return f.units.Clone() }

func RunScenario(t *testing.T, sc *Scenario) {
	names := sc.Solvers
	if len(names) == 0 {
		names = shift.Names()
	}
	opts := shift.Options{ShiftLength: sc.ShiftLength}
	ctx := context.Background()

	for _, name := range names {
		s, err := shift.NewSolver(name, opts)
		if err != nil {
			t.Fatalf("solver %s: %v", name, err)
		}
		units := sc.Instance()
		res, err := s.Solve(ctx, units)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if res.Shifts != sc.Expected.Shifts {
			t.Errorf("%s got %d shifts, expected %d on %s", name, res.Shifts, sc.Expected.Shifts, units)
		}
		if units.String() != model.Units(sc.Units).String() {
			t.Errorf("%s mutated its input: %s", name, units)
		}
	}

	ref, err := shift.NewSolver(shift.NameExhaustive, opts)
	if err != nil {
		t.Fatal(err)
	}
	cand, err := shift.NewSolver(shift.NameGreedy, opts)
	if err != nil {
		t.Fatal(err)
	}
	bound, err := shift.NewSolver(shift.NameLP, opts)
	if err != nil {
		t.Fatal(err)
	}
	h, err := harness.New(fixedSource{units: sc.Instance()}, ref, cand,
		harness.WithTrials(2),
		harness.WithBound(bound),
		harness.WithOutput(io.Discard),
		harness.WithShiftLength(sc.ShiftLength),
	)
	if err != nil {
		t.Fatalf("harness: %v", err)
	}
	sum, err := h.Run(ctx)
	if err != nil {
		t.Fatalf("harness run: %v", err)
	}
	if sum.Agreed != 2 {
		t.Errorf("expected 2 agreeing trials, got %d", sum.Agreed)
	}
}

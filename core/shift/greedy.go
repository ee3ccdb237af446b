package shift

import (
	"context"

	"github.com/kilianp07/shiftcheck/core/model"
)

// SolveGreedy takes as many shifts as possible at each located window and
// moves the cursor one unit forward. Its optimality is conjectured, not
// proven; the harness exists to look for counterexamples.
func SolveGreedy(units model.Units, length, from int) int {
	total := 0
	for {
		start, ok := FindWindow(units, length, from)
		if !ok {
			return total
		}
		k := units.Min(start, length)
		units = Reduce(units, start, length, k)
		total += k
		from = start + 1
	}
}

// Greedy is the heuristic solver under test.
type Greedy struct {
	ShiftLength int
}

// Name implements Solver.
func (Greedy) Name() string { return NameGreedy }

// Solve implements Solver.
func (g Greedy) Solve(ctx context.Context, units model.Units) (Result, error) {
	if err := validate(units, g.ShiftLength); err != nil {
		return Result{}, err
	}
	res := Result{}
	from := 0
	for {
		res.Nodes++
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		start, ok := FindWindow(units, g.ShiftLength, from)
		if !ok {
			return res, nil
		}
		k := units.Min(start, g.ShiftLength)
		units = Reduce(units, start, g.ShiftLength, k)
		res.Shifts += k
		from = start + 1
	}
}

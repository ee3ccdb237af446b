package shift

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/kilianp07/shiftcheck/core/model"
)

// cancelCheckMask controls how often the search polls its context.
const cancelCheckMask = 1<<10 - 1

// SolveExhaustive returns the maximum number of shifts of the given length
// that fit into units, considering only windows starting at or after from.
//
// At the earliest window it tries every count from zero to the window
// minimum and keeps the best total. The cost is exponential.
func SolveExhaustive(units model.Units, length, from int) int {
	start, ok := FindWindow(units, length, from)
	if !ok {
		return 0
	}
	maxK := units.Min(start, length)
	best := 0
	for k := 0; k <= maxK; k++ {
		total := k + SolveExhaustive(Reduce(units, start, length, k), length, start+1)
		if total > best {
			best = total
		}
	}
	return best
}

// Exhaustive is the branch-and-bound reference solver.
type Exhaustive struct {
	ShiftLength int
	// Parallel evaluates the branches of the first window concurrently.
	Parallel bool
}

// Name implements Solver.
func (Exhaustive) Name() string { return NameExhaustive }

// Solve implements Solver. It returns ctx.Err() if the context ends before
// the search completes.
func (e Exhaustive) Solve(ctx context.Context, units model.Units) (Result, error) {
	if err := validate(units, e.ShiftLength); err != nil {
		return Result{}, err
	}
	if e.Parallel {
		return e.solveParallel(ctx, units)
	}
	s := &search{ctx: ctx, length: e.ShiftLength}
	n, err := s.solve(units, 0)
	if err != nil {
		return Result{}, err
	}
	return Result{Shifts: n, Nodes: s.nodes}, nil
}

func (e Exhaustive) solveParallel(ctx context.Context, units model.Units) (Result, error) {
	start, ok := FindWindow(units, e.ShiftLength, 0)
	if !ok {
		return Result{Nodes: 1}, nil
	}
	maxK := units.Min(start, e.ShiftLength)
	totals := make([]int, maxK+1)
	nodes := make([]int64, maxK+1)

	g, gctx := errgroup.WithContext(ctx)
	for k := 0; k <= maxK; k++ {
		g.Go(func() error {
			s := &search{ctx: gctx, length: e.ShiftLength}
			n, err := s.solve(Reduce(units, start, e.ShiftLength, k), start+1)
			totals[k] = k + n
			nodes[k] = s.nodes
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	res := Result{Nodes: 1}
	for k := range totals {
		if totals[k] > res.Shifts {
			res.Shifts = totals[k]
		}
		res.Nodes += nodes[k]
	}
	return res, nil
}

// search carries the per-call state of one exhaustive run. Vectors are
// never shared between branches.
type search struct {
	ctx    context.Context
	length int
	nodes  int64
}

func (s *search) solve(units model.Units, from int) (int, error) {
	s.nodes++
	if s.nodes&cancelCheckMask == 0 {
		if err := s.ctx.Err(); err != nil {
			return 0, err
		}
	}
	start, ok := FindWindow(units, s.length, from)
	if !ok {
		return 0, nil
	}
	maxK := units.Min(start, s.length)
	best := 0
	for k := 0; k <= maxK; k++ {
		sub, err := s.solve(Reduce(units, start, s.length, k), start+1)
		if err != nil {
			return 0, err
		}
		if k+sub > best {
			best = k + sub
		}
	}
	return best, nil
}

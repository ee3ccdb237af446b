package shift

import (
	"context"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/kilianp07/shiftcheck/core/model"
)

// lpTolerance is passed to the simplex solver.
const lpTolerance = 1e-9

// SolveLP returns the optimum of the linear relaxation
//
//	max  sum x_s
//	s.t. sum over windows s covering u of x_s <= units[u]
//	     x >= 0
//
// Each column of the constraint matrix is a run of consecutive ones, so the
// matrix is totally unimodular and the optimum is integral.
func SolveLP(units model.Units, length int) (int, error) {
	if err := validate(units, length); err != nil {
		return 0, err
	}
	n := len(units)
	windows := n - length + 1
	if windows <= 0 {
		return 0, nil
	}

	// Standard form: one column per window plus one slack per unit.
	cols := windows + n
	a := mat.NewDense(n, cols, nil)
	c := make([]float64, cols)
	b := make([]float64, n)
	basic := make([]int, n)
	for s := 0; s < windows; s++ {
		c[s] = -1
		for u := s; u < s+length; u++ {
			a.Set(u, s, 1)
		}
	}
	for u := 0; u < n; u++ {
		a.Set(u, windows+u, 1)
		b[u] = float64(units[u])
		basic[u] = windows + u
	}

	opt, _, err := lpSimplex(c, a, b, lpTolerance, basic)
	if err != nil {
		return 0, fmt.Errorf("simplex: %w", err)
	}
	return int(math.Round(-opt)), nil
}

// lpSimplex points to the simplex implementation. Tests override it to
// simulate solver failures.
var lpSimplex = lp.Simplex

// LPBound solves the linear relaxation of the shift packing problem.
type LPBound struct {
	ShiftLength int
}

// Name implements Solver.
func (LPBound) Name() string { return NameLP }

// Solve implements Solver. The simplex run is not interruptible; the context
// is only checked before it starts.
func (l LPBound) Solve(ctx context.Context, units model.Units) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	n, err := SolveLP(units, l.ShiftLength)
	if err != nil {
		return Result{}, err
	}
	return Result{Shifts: n, Nodes: 1}, nil
}

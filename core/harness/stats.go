package harness

import (
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"

	coremetrics "github.com/kilianp07/shiftcheck/core/metrics"
)

// Summary describes a finished run.
type Summary struct {
	RunID    string
	Trials   int
	Agreed   int
	TimedOut int
	// Speedups holds the rounded reference/candidate time ratio of every
	// agreeing trial.
	Speedups []float64
	Mismatch *MismatchError
	Events   []coremetrics.TrialEvent
	Duration time.Duration
}

// SpeedupStats aggregates the speedups of agreeing trials.
type SpeedupStats struct {
	Count  int
	Mean   float64
	Median float64
	StdDev float64
}

// Stats computes speedup statistics. StdDev is zero for fewer than two
// samples.
func (s Summary) Stats() SpeedupStats {
	n := len(s.Speedups)
	if n == 0 {
		return SpeedupStats{}
	}
	sorted := append([]float64(nil), s.Speedups...)
	sort.Float64s(sorted)
	// The empirical quantile picks the lower middle sample; average it with
	// the upper one so even counts get the midpoint.
	st := SpeedupStats{
		Count:  n,
		Median: (stat.Quantile(0.5, stat.Empirical, sorted, nil) + sorted[n/2]) / 2,
	}
	if n == 1 {
		st.Mean = sorted[0]
		return st
	}
	st.Mean, st.StdDev = stat.MeanStdDev(sorted, nil)
	return st
}

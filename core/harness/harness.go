package harness

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	coremetrics "github.com/kilianp07/shiftcheck/core/metrics"
	"github.com/kilianp07/shiftcheck/core/model"
	"github.com/kilianp07/shiftcheck/core/shift"
	"github.com/kilianp07/shiftcheck/infra/logger"
	"github.com/kilianp07/shiftcheck/pkg/export"
)

// DefaultTrials matches the number of trials of a standard run.
const DefaultTrials = 100

// Source produces problem instances.
type Source interface {
	Generate() model.Units
}

// Harness compares a candidate solver against a reference solver.
type Harness struct {
	src         Source
	ref         shift.Solver
	cand        shift.Solver
	bound       shift.Solver
	trials      int
	workers     int
	timeout     time.Duration
	out         io.Writer
	log         logger.Logger
	sink        Sink
	dumpPath    string
	shiftLength int
	runID       string
}

// New creates a Harness. Without options it runs DefaultTrials trials
// sequentially and reports to stdout.
func New(src Source, ref, cand shift.Solver, opts ...Option) (*Harness, error) {
	if src == nil || ref == nil || cand == nil {
		return nil, errors.New("source, reference and candidate are required")
	}
	h := &Harness{
		src:     src,
		ref:     ref,
		cand:    cand,
		trials:  DefaultTrials,
		workers: 1,
		out:     os.Stdout,
		log:     logger.NopLogger{},
		sink:    coremetrics.NopSink{},
		runID:   uuid.NewString(),
	}
	for _, opt := range opts {
		if err := opt(h); err != nil {
			return nil, err
		}
	}
	return h, nil
}

// RunID returns the identifier attached to events of this harness.
func (h *Harness) RunID() string { return h.runID }

// trial holds the outcome of solving one instance.
type trial struct {
	index    int
	units    model.Units
	ref      shift.Result
	cand     shift.Result
	bound    *shift.Result
	refTime  time.Duration
	candTime time.Duration
	err      error
}

// Run executes the configured trials. It returns a *MismatchError when two
// solvers disagree and ctx.Err() when the context ends first; the summary
// covers the trials reported until then.
func (h *Harness) Run(ctx context.Context) (Summary, error) {
	start := time.Now()
	sum := Summary{RunID: h.runID}
	h.log.Infow("run started", map[string]any{
		"run_id":    h.runID,
		"trials":    h.trials,
		"workers":   h.workers,
		"reference": h.ref.Name(),
		"candidate": h.cand.Name(),
	})

	var err error
	if h.workers > 1 {
		err = h.runParallel(ctx, &sum)
	} else {
		err = h.runSequential(ctx, &sum)
	}
	sum.Duration = time.Since(start)

	if err == nil {
		h.printf("No differences found after running %d tests\n", sum.Agreed)
		if sum.TimedOut > 0 {
			h.printf("%d trials timed out\n", sum.TimedOut)
		}
		if st := sum.Stats(); st.Count > 0 {
			h.printf("Speedup mean:%.1fx median:%.1fx stddev:%.1fx\n", st.Mean, st.Median, st.StdDev)
		}
	}

	ev := coremetrics.RunEvent{
		RunID:       h.runID,
		Trials:      sum.Trials,
		Agreed:      sum.Agreed,
		TimedOut:    sum.TimedOut,
		Mismatch:    sum.Mismatch != nil,
		MeanSpeedup: sum.Stats().Mean,
		Duration:    sum.Duration,
		Time:        time.Now(),
	}
	if rerr := h.sink.RecordRun(ev); rerr != nil {
		h.log.Warnf("record run: %v", rerr)
	}
	h.log.Infow("run finished", map[string]any{
		"run_id":    h.runID,
		"trials":    sum.Trials,
		"agreed":    sum.Agreed,
		"timed_out": sum.TimedOut,
		"mismatch":  sum.Mismatch != nil,
		"duration":  sum.Duration.String(),
	})
	return sum, err
}

func (h *Harness) runSequential(ctx context.Context, sum *Summary) error {
	for i := 0; i < h.trials; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		units := h.src.Generate()
		if err := h.report(ctx, sum, h.runTrial(ctx, i, units)); err != nil {
			return err
		}
	}
	return nil
}

// runParallel draws every instance up front so a seeded source yields the
// same instances as a sequential run, then solves them concurrently and
// reports in trial order.
func (h *Harness) runParallel(ctx context.Context, sum *Summary) error {
	instances := make([]model.Units, h.trials)
	for i := range instances {
		instances[i] = h.src.Generate()
	}
	results := make([]chan trial, len(instances))
	for i := range results {
		results[i] = make(chan trial, 1)
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	var g errgroup.Group
	g.SetLimit(h.workers)
	dispatched := make(chan struct{})
	go func() {
		defer close(dispatched)
		for i, units := range instances {
			if err := runCtx.Err(); err != nil {
				results[i] <- trial{index: i, units: units, err: err}
				continue
			}
			g.Go(func() error {
				results[i] <- h.runTrial(runCtx, i, units)
				return nil
			})
		}
	}()

	var err error
	for i := range results {
		if err = h.report(ctx, sum, <-results[i]); err != nil {
			break
		}
	}
	cancel()
	<-dispatched
	_ = g.Wait()
	return err
}

func (h *Harness) runTrial(ctx context.Context, i int, units model.Units) trial {
	tr := trial{index: i, units: units}
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	t0 := time.Now()
	tr.ref, tr.err = h.ref.Solve(ctx, units.Clone())
	tr.refTime = time.Since(t0)
	if tr.err != nil {
		return tr
	}

	t1 := time.Now()
	tr.cand, tr.err = h.cand.Solve(ctx, units.Clone())
	tr.candTime = time.Since(t1)
	if tr.err != nil {
		return tr
	}

	if h.bound != nil {
		res, err := h.bound.Solve(ctx, units.Clone())
		if err != nil {
			tr.err = err
			return tr
		}
		tr.bound = &res
	}
	return tr
}

// report prints the trial line and updates sum. A non-nil error stops the run.
func (h *Harness) report(ctx context.Context, sum *Summary, tr trial) error {
	ev := coremetrics.TrialEvent{
		RunID:     h.runID,
		Trial:     tr.index,
		Reference: h.ref.Name(),
		Candidate: h.cand.Name(),
		RefTime:   tr.refTime,
		CandTime:  tr.candTime,
		RefNodes:  tr.ref.Nodes,
		CandNodes: tr.cand.Nodes,
		Time:      time.Now(),
	}

	if tr.err != nil {
		if errors.Is(tr.err, context.DeadlineExceeded) && ctx.Err() == nil {
			sum.Trials++
			sum.TimedOut++
			h.printf("Trial %d timed out after %s\n", tr.index, h.timeout)
			h.log.Warnf("trial %d timed out after %s", tr.index, h.timeout)
			ev.Outcome = coremetrics.OutcomeTimeout
			h.record(ev, sum)
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("trial %d: %w", tr.index, tr.err)
	}

	sum.Trials++
	ev.RefShifts = tr.ref.Shifts
	ev.CandShifts = tr.cand.Shifts

	if mm := h.mismatch(tr); mm != nil {
		sum.Mismatch = mm
		h.printf("Different solutions: %s got %d while %s got %d\n", mm.Reference, mm.ReferenceValue, mm.Other, mm.OtherValue)
		h.printf("Units: %s\n", tr.units)
		if tr.cand.Shifts > tr.ref.Shifts {
			h.log.Errorf("trial %d: %s exceeds reference %s, the reference is not optimal", tr.index, h.cand.Name(), h.ref.Name())
		}
		h.log.Errorf("%v", mm)
		h.dump(tr)
		ev.Outcome = coremetrics.OutcomeMismatch
		h.record(ev, sum)
		return mm
	}

	ev.Outcome = coremetrics.OutcomeAgree
	ev.Speedup = speedup(tr.refTime, tr.candTime)
	sum.Agreed++
	sum.Speedups = append(sum.Speedups, ev.Speedup)
	h.printf("Solutions same (%d)\t%s:%.2fs %s:%.2fs speedup:%dx\n",
		tr.cand.Shifts, h.ref.Name(), tr.refTime.Seconds(), h.cand.Name(), tr.candTime.Seconds(), int64(ev.Speedup))
	h.log.Debugw("trial agreed", map[string]any{
		"run_id":     h.runID,
		"trial":      tr.index,
		"shifts":     tr.cand.Shifts,
		"ref_nodes":  tr.ref.Nodes,
		"cand_nodes": tr.cand.Nodes,
	})
	h.record(ev, sum)
	return nil
}

func (h *Harness) mismatch(tr trial) *MismatchError {
	if tr.ref.Shifts != tr.cand.Shifts {
		return &MismatchError{
			Trial:          tr.index,
			Reference:      h.ref.Name(),
			Other:          h.cand.Name(),
			ReferenceValue: tr.ref.Shifts,
			OtherValue:     tr.cand.Shifts,
			Units:          tr.units,
		}
	}
	if tr.bound != nil && tr.bound.Shifts != tr.ref.Shifts {
		return &MismatchError{
			Trial:          tr.index,
			Reference:      h.ref.Name(),
			Other:          h.bound.Name(),
			ReferenceValue: tr.ref.Shifts,
			OtherValue:     tr.bound.Shifts,
			Units:          tr.units,
		}
	}
	return nil
}

func (h *Harness) dump(tr trial) {
	if h.dumpPath == "" {
		return
	}
	inst := export.Instance{ShiftLength: h.shiftLength, Units: tr.units}
	if err := export.WriteFile(h.dumpPath, inst); err != nil {
		h.log.Errorf("dump instance: %v", err)
		return
	}
	h.log.Infof("mismatching instance written to %s", h.dumpPath)
}

func (h *Harness) record(ev coremetrics.TrialEvent, sum *Summary) {
	sum.Events = append(sum.Events, ev)
	if err := h.sink.RecordTrial(ev); err != nil {
		h.log.Warnf("record trial %d: %v", ev.Trial, err)
	}
}

func (h *Harness) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(h.out, format, args...); err != nil {
		h.log.Errorf("write report: %v", err)
	}
}

// speedup returns ref/cand rounded to the nearest integer, or 0 when the
// candidate took no measurable time.
func speedup(ref, cand time.Duration) float64 {
	if cand <= 0 {
		return 0
	}
	return math.Round(float64(ref) / float64(cand))
}

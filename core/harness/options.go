package harness

import (
	"fmt"
	"io"
	"time"

	coremetrics "github.com/kilianp07/shiftcheck/core/metrics"
	"github.com/kilianp07/shiftcheck/core/shift"
	"github.com/kilianp07/shiftcheck/infra/logger"
)

// Option configures a Harness.
type Option func(*Harness) error

// WithTrials sets the number of trials.
func WithTrials(n int) Option {
	return func(h *Harness) error {
		if n < 0 {
			return fmt.Errorf("trials must not be negative: %d", n)
		}
		h.trials = n
		return nil
	}
}

// WithWorkers sets how many trials may run at once.
func WithWorkers(n int) Option {
	return func(h *Harness) error {
		if n < 1 {
			return fmt.Errorf("workers must be at least 1: %d", n)
		}
		h.workers = n
		return nil
	}
}

// WithTrialTimeout bounds the time spent solving one instance. Zero disables
// the limit.
func WithTrialTimeout(d time.Duration) Option {
	return func(h *Harness) error {
		if d < 0 {
			return fmt.Errorf("trial timeout must not be negative: %s", d)
		}
		h.timeout = d
		return nil
	}
}

// WithBound adds a third solver whose result must equal the reference.
func WithBound(s shift.Solver) Option {
	return func(h *Harness) error {
		h.bound = s
		return nil
	}
}

// WithOutput sets the writer receiving the console report.
func WithOutput(w io.Writer) Option {
	return func(h *Harness) error {
		if w == nil {
			return fmt.Errorf("output writer is nil")
		}
		h.out = w
		return nil
	}
}

// WithLogger sets the structured logger.
func WithLogger(l logger.Logger) Option {
	return func(h *Harness) error {
		if l != nil {
			h.log = l
		}
		return nil
	}
}

// WithSink sets the metrics sink receiving trial and run events.
func WithSink(s Sink) Option {
	return func(h *Harness) error {
		if s != nil {
			h.sink = s
		}
		return nil
	}
}

// WithDumpPath makes the harness store a mismatching instance at path.
func WithDumpPath(path string) Option {
	return func(h *Harness) error {
		h.dumpPath = path
		return nil
	}
}

// WithShiftLength records the shift length in dumped instances.
func WithShiftLength(n int) Option {
	return func(h *Harness) error {
		h.shiftLength = n
		return nil
	}
}

// WithRunID overrides the generated run identifier.
func WithRunID(id string) Option {
	return func(h *Harness) error {
		if id == "" {
			return fmt.Errorf("run id is empty")
		}
		h.runID = id
		return nil
	}
}

// Sink records harness events.
type Sink interface {
	coremetrics.TrialRecorder
	coremetrics.RunRecorder
}

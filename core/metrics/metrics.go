package metrics

import "time"

// Outcome classifies a finished trial.
type Outcome string

const (
	OutcomeAgree    Outcome = "agree"
	OutcomeMismatch Outcome = "mismatch"
	OutcomeTimeout  Outcome = "timeout"
)

// TrialEvent describes one solved instance.
type TrialEvent struct {
	RunID     string
	Trial     int
	Outcome   Outcome
	Reference string
	Candidate string
	// RefShifts and CandShifts are the solver results; both are zero for a
	// timed out trial.
	RefShifts  int
	CandShifts int
	RefTime    time.Duration
	CandTime   time.Duration
	Speedup    float64
	RefNodes   int64
	CandNodes  int64
	Time       time.Time
}

// TrialRecorder records trial outcomes.
type TrialRecorder interface {
	RecordTrial(ev TrialEvent) error
}

// RunEvent summarizes a finished harness run.
type RunEvent struct {
	RunID       string
	Trials      int
	Agreed      int
	TimedOut    int
	Mismatch    bool
	MeanSpeedup float64
	Duration    time.Duration
	Time        time.Time
}

// RunRecorder records run summaries.
type RunRecorder interface {
	RecordRun(ev RunEvent) error
}

// InstanceEvent captures a generated instance.
type InstanceEvent struct {
	Units int
	Total int
	Time  time.Time
}

// InstanceRecorder records generated instances.
type InstanceRecorder interface {
	RecordInstance(ev InstanceEvent) error
}

// NopSink implements every recorder with no-op methods.
type NopSink struct{}

func (NopSink) RecordTrial(TrialEvent) error       { return nil }
func (NopSink) RecordRun(RunEvent) error           { return nil }
func (NopSink) RecordInstance(InstanceEvent) error { return nil }

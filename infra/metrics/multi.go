package metrics

import coremetrics "github.com/kilianp07/shiftcheck/core/metrics"

// Sink is implemented by every metrics backend.
type Sink interface {
	coremetrics.TrialRecorder
	coremetrics.RunRecorder
	coremetrics.InstanceRecorder
}

// MultiSink fans events out to multiple sinks.
type MultiSink struct {
	Sinks []Sink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...Sink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordTrial forwards the event to all sinks, returning the first error encountered.
func (m *MultiSink) RecordTrial(ev coremetrics.TrialEvent) error {
	for _, s := range m.Sinks {
		if err := s.RecordTrial(ev); err != nil {
			return err
		}
	}
	return nil
}

// RecordRun forwards run summaries.
func (m *MultiSink) RecordRun(ev coremetrics.RunEvent) error {
	for _, s := range m.Sinks {
		if err := s.RecordRun(ev); err != nil {
			return err
		}
	}
	return nil
}

// RecordInstance forwards instance events.
func (m *MultiSink) RecordInstance(ev coremetrics.InstanceEvent) error {
	for _, s := range m.Sinks {
		if err := s.RecordInstance(ev); err != nil {
			return err
		}
	}
	return nil
}

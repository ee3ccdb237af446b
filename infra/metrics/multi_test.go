package metrics

import (
	"errors"
	"testing"

	coremetrics "github.com/kilianp07/shiftcheck/core/metrics"
)

type recordSink struct {
	count int
	err   error
}

func (r *recordSink) RecordTrial(coremetrics.TrialEvent) error {
	r.count++
	return r.err
}

func (r *recordSink) RecordRun(coremetrics.RunEvent) error {
	r.count++
	return r.err
}

func (r *recordSink) RecordInstance(coremetrics.InstanceEvent) error {
	r.count++
	return r.err
}

func TestMultiSink(t *testing.T) {
	s1 := &recordSink{}
	s2 := &recordSink{}
	m := NewMultiSink(s1, s2)
	if err := m.RecordTrial(coremetrics.TrialEvent{}); err != nil {
		t.Fatalf("record trial: %v", err)
	}
	if err := m.RecordRun(coremetrics.RunEvent{}); err != nil {
		t.Fatalf("record run: %v", err)
	}
	if err := m.RecordInstance(coremetrics.InstanceEvent{}); err != nil {
		t.Fatalf("record instance: %v", err)
	}
	if s1.count != 3 || s2.count != 3 {
		t.Fatalf("events not forwarded")
	}
}

func TestMultiSinkStopsOnError(t *testing.T) {
	boom := errors.New("boom")
	s1 := &recordSink{err: boom}
	s2 := &recordSink{}
	m := NewMultiSink(s1, s2)
	if err := m.RecordTrial(coremetrics.TrialEvent{}); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if s2.count != 0 {
		t.Fatalf("second sink should not be called after an error")
	}
}

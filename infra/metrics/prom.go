package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/kilianp07/shiftcheck/core/metrics"
)

// PromSink records harness events in Prometheus metrics.
type PromSink struct {
	trials   *prometheus.CounterVec
	duration *prometheus.HistogramVec
	nodes    *prometheus.CounterVec
	speedup  prometheus.Histogram
	runs     *prometheus.CounterVec
	instance prometheus.Gauge
}

// NewPromSink registers harness metrics on the default Prometheus registerer.
// The metrics endpoint is served separately by StartPromServer.
func NewPromSink() (*PromSink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	trials := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "shift_trials_total",
		Help: "Total number of harness trials by outcome",
	}, []string{"outcome"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "shift_solver_duration_seconds",
		Help:    "Time spent by a solver on one instance",
		Buckets: prometheus.ExponentialBuckets(0.0001, 4, 12),
	}, []string{"solver"})
	nodes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "shift_solver_nodes_total",
		Help: "Search nodes visited by each solver",
	}, []string{"solver"})
	speedup := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "shift_trial_speedup",
		Help:    "Reference to candidate time ratio of agreeing trials",
		Buckets: prometheus.ExponentialBuckets(1, 2, 16),
	})
	runs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "shift_runs_total",
		Help: "Finished harness runs by result",
	}, []string{"result"})
	instance := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "shift_instance_availability_total",
		Help: "Total availability of the last generated instance",
	})

	var err error
	if trials, err = register(reg, trials); err != nil {
		return nil, err
	}
	if duration, err = register(reg, duration); err != nil {
		return nil, err
	}
	if nodes, err = register(reg, nodes); err != nil {
		return nil, err
	}
	if speedup, err = register(reg, speedup); err != nil {
		return nil, err
	}
	if runs, err = register(reg, runs); err != nil {
		return nil, err
	}
	if instance, err = register(reg, instance); err != nil {
		return nil, err
	}
	return &PromSink{trials: trials, duration: duration, nodes: nodes, speedup: speedup, runs: runs, instance: instance}, nil
}

// register adds c to reg, reusing an identical collector registered before.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// RecordTrial counts the trial and observes solver durations.
func (s *PromSink) RecordTrial(ev coremetrics.TrialEvent) error {
	s.trials.WithLabelValues(string(ev.Outcome)).Inc()
	if ev.Outcome == coremetrics.OutcomeTimeout {
		return nil
	}
	s.duration.WithLabelValues(ev.Reference).Observe(ev.RefTime.Seconds())
	s.duration.WithLabelValues(ev.Candidate).Observe(ev.CandTime.Seconds())
	s.nodes.WithLabelValues(ev.Reference).Add(float64(ev.RefNodes))
	s.nodes.WithLabelValues(ev.Candidate).Add(float64(ev.CandNodes))
	if ev.Outcome == coremetrics.OutcomeAgree {
		s.speedup.Observe(ev.Speedup)
	}
	return nil
}

// RecordRun counts finished runs.
func (s *PromSink) RecordRun(ev coremetrics.RunEvent) error {
	result := "pass"
	if ev.Mismatch {
		result = "mismatch"
	}
	s.runs.WithLabelValues(result).Inc()
	return nil
}

// RecordInstance tracks the size of the last instance.
func (s *PromSink) RecordInstance(ev coremetrics.InstanceEvent) error {
	s.instance.Set(float64(ev.Total))
	return nil
}

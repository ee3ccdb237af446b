package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/kilianp07/shiftcheck/core/metrics"
)

// NewSink builds the sinks enabled in cfg. It returns a NopSink when none is
// enabled and a MultiSink when several are.
func NewSink(cfg coremetrics.Config, reg prometheus.Registerer) (Sink, error) {
	var sinks []Sink
	if cfg.PrometheusEnabled {
		s, err := NewPromSinkWithRegistry(reg)
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		sinks = append(sinks, s)
	}
	if cfg.InfluxEnabled {
		sinks = append(sinks, NewInfluxSinkWithFallback(cfg))
	}
	switch len(sinks) {
	case 0:
		return coremetrics.NopSink{}, nil
	case 1:
		return sinks[0], nil
	default:
		return NewMultiSink(sinks...), nil
	}
}

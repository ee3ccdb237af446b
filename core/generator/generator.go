// Package generator draws random availability vectors for the harness.
package generator

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/kilianp07/shiftcheck/core/logger"
	coremetrics "github.com/kilianp07/shiftcheck/core/metrics"
	"github.com/kilianp07/shiftcheck/core/model"
	infralogger "github.com/kilianp07/shiftcheck/infra/logger"
)

// Config bounds the generated instances. Availability is drawn uniformly
// from [MinAvailability, MaxAvailability].
type Config struct {
	NumUnits        int
	MinAvailability int
	MaxAvailability int
}

// Validate checks the configuration ranges.
func (c Config) Validate() error {
	if c.NumUnits < 0 {
		return fmt.Errorf("num_units must not be negative")
	}
	if c.MinAvailability < 0 {
		return fmt.Errorf("min_availability must not be negative")
	}
	if c.MinAvailability > c.MaxAvailability {
		return fmt.Errorf("min_availability > max_availability")
	}
	return nil
}

var (
	instancesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "shift_generator_instances_total",
		Help: "Total availability vectors generated",
	})
	availabilitySum = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "shift_generator_availability_sum",
		Help: "Sum of generated availability across all units",
	})
)

func init() {
	prometheus.MustRegister(instancesTotal, availabilitySum)
}

// Generator produces random availability vectors from an explicit source.
// It is not safe for concurrent use.
type Generator struct {
	cfg  Config
	rand *rand.Rand
	sink coremetrics.InstanceRecorder
	log  logger.Logger
}

// Option customizes a Generator.
type Option func(*Generator)

// WithLogger sets the logger used to report sink failures.
func WithLogger(l logger.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.log = l
		}
	}
}

// New creates a Generator. A nil src is seeded from the clock and a nil sink
// discards instance events.
func New(cfg Config, src *rand.Rand, sink coremetrics.InstanceRecorder, opts ...Option) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		src = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if sink == nil {
		sink = coremetrics.NopSink{}
	}
	g := &Generator{cfg: cfg, rand: src, sink: sink, log: infralogger.NopLogger{}}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// NewSeeded creates a Generator whose output is fully determined by seed.
func NewSeeded(cfg Config, seed int64, sink coremetrics.InstanceRecorder, opts ...Option) (*Generator, error) {
	return New(cfg, rand.New(rand.NewSource(seed)), sink, opts...)
}

// Generate returns a fresh vector of cfg.NumUnits units.
func (g *Generator) Generate() model.Units {
	units := make(model.Units, g.cfg.NumUnits)
	span := g.cfg.MaxAvailability - g.cfg.MinAvailability + 1
	for i := range units {
		units[i] = g.cfg.MinAvailability + g.rand.Intn(span)
	}
	total := units.Sum()
	instancesTotal.Inc()
	availabilitySum.Add(float64(total))
	// A failing sink never blocks generation.
	if err := g.sink.RecordInstance(coremetrics.InstanceEvent{Units: len(units), Total: total, Time: time.Now()}); err != nil {
		g.log.Warnf("record instance: %v", err)
	}
	return units
}

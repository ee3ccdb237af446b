package app

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/kilianp07/shiftcheck/config"
	"github.com/kilianp07/shiftcheck/core/generator"
	"github.com/kilianp07/shiftcheck/core/harness"
	"github.com/kilianp07/shiftcheck/core/shift"
	"github.com/kilianp07/shiftcheck/infra/logger"
	"github.com/kilianp07/shiftcheck/infra/metrics"
	"github.com/kilianp07/shiftcheck/pkg/export"
)

// Service wires the generator, the solvers and the harness from configuration.
type Service struct {
	Harness     *harness.Harness
	cfg         *config.Config
	sink        metrics.Sink
	log         logger.Logger
	promEnabled bool
	promPort    string
}

// New creates a Service writing its report to out.
func New(cfg *config.Config, out io.Writer) (*Service, error) {
	if err := logger.Configure(logger.Options{Level: cfg.Logging.Level, Format: cfg.Logging.Format}); err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	logg := logger.New("service")

	sink, err := metrics.NewSink(cfg.Metrics, prometheus.DefaultRegisterer)
	if err != nil {
		return nil, err
	}

	seed := cfg.Harness.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	gen, err := generator.New(cfg.Problem.Generator(), rand.New(rand.NewSource(seed)), sink,
		generator.WithLogger(logger.New("generator")))
	if err != nil {
		return nil, fmt.Errorf("generator: %w", err)
	}

	opts := shift.Options{ShiftLength: cfg.Problem.ShiftLength, Parallel: cfg.Harness.ParallelExhaustive}
	ref, err := shift.NewSolver(cfg.Harness.Reference, opts)
	if err != nil {
		return nil, err
	}
	cand, err := shift.NewSolver(cfg.Harness.Candidate, opts)
	if err != nil {
		return nil, err
	}

	hopts := []harness.Option{
		harness.WithTrials(cfg.Harness.NumTests),
		harness.WithWorkers(cfg.Harness.Workers),
		harness.WithTrialTimeout(cfg.Harness.TrialTimeout()),
		harness.WithOutput(out),
		harness.WithLogger(logger.New("harness")),
		harness.WithSink(sink),
		harness.WithDumpPath(cfg.Harness.DumpPath),
		harness.WithShiftLength(cfg.Problem.ShiftLength),
	}
	if cfg.Harness.LPCheck && cfg.Harness.Reference != shift.NameLP && cfg.Harness.Candidate != shift.NameLP {
		bound, err := shift.NewSolver(shift.NameLP, opts)
		if err != nil {
			return nil, err
		}
		hopts = append(hopts, harness.WithBound(bound))
	}
	h, err := harness.New(gen, ref, cand, hopts...)
	if err != nil {
		return nil, fmt.Errorf("harness: %w", err)
	}
	logg.Infow("service configured", map[string]any{
		"run_id":       h.RunID(),
		"seed":         seed,
		"num_units":    cfg.Problem.NumUnits,
		"shift_length": cfg.Problem.ShiftLength,
	})

	return &Service{
		Harness:     h,
		cfg:         cfg,
		sink:        sink,
		log:         logg,
		promEnabled: cfg.Metrics.PrometheusEnabled,
		promPort:    cfg.Metrics.PrometheusPort,
	}, nil
}

// Run executes the harness and blocks until it finishes or ctx is canceled.
func (s *Service) Run(ctx context.Context) error {
	if s.promEnabled {
		promCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		go func() {
			if err := metrics.StartPromServer(promCtx, s.promPort, prometheus.DefaultGatherer); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}

	sum, err := s.Harness.Run(ctx)
	if werr := s.writeTrials(sum); werr != nil {
		s.log.Errorf("write trials: %v", werr)
	}
	return err
}

func (s *Service) writeTrials(sum harness.Summary) (err error) {
	path := s.cfg.Harness.TrialsCSV
	if path == "" {
		return nil
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return export.WriteTrialsCSV(f, sum.Events)
}

// Close releases resources held by the service.
func (s *Service) Close() error {
	if c, ok := s.sink.(interface{ Close() }); ok {
		c.Close()
	}
	if m, ok := s.sink.(*metrics.MultiSink); ok {
		for _, sub := range m.Sinks {
			if c, ok := sub.(interface{ Close() }); ok {
				c.Close()
			}
		}
	}
	return nil
}

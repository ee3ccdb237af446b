package config

import (
	"fmt"
	"time"

	"github.com/kilianp07/shiftcheck/core/shift"
)

// HarnessConfig controls the comparison runs.
type HarnessConfig struct {
	NumTests int `json:"num_tests"`
	// Seed makes runs reproducible; 0 seeds from the clock.
	Seed    int64 `json:"seed"`
	Workers int   `json:"workers"`
	// TrialTimeoutSeconds bounds one trial; 0 disables the limit.
	TrialTimeoutSeconds float64 `json:"trial_timeout_seconds"`
	LPCheck             bool    `json:"lp_check"`
	ParallelExhaustive  bool    `json:"parallel_exhaustive"`
	Reference           string  `json:"reference"`
	Candidate           string  `json:"candidate"`
	DumpPath            string  `json:"dump_path"`
	TrialsCSV           string  `json:"trials_csv"`
}

// SetDefaults applies fallback values for optional fields.
func (c *HarnessConfig) SetDefaults() {
	if c.Workers == 0 {
		c.Workers = 1
	}
	if c.Reference == "" {
		c.Reference = shift.NameExhaustive
	}
	if c.Candidate == "" {
		c.Candidate = shift.NameGreedy
	}
}

// Validate checks the configuration ranges.
func (c HarnessConfig) Validate() error {
	if c.NumTests < 0 {
		return fmt.Errorf("num_tests must not be negative")
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1")
	}
	if c.TrialTimeoutSeconds < 0 {
		return fmt.Errorf("trial_timeout_seconds must not be negative")
	}
	for _, name := range []string{c.Reference, c.Candidate} {
		if !shift.Known(name) {
			return fmt.Errorf("unknown solver %s", name)
		}
	}
	if c.Reference == c.Candidate {
		return fmt.Errorf("reference and candidate are both %s", c.Reference)
	}
	return nil
}

// TrialTimeout returns the per-trial limit, zero when disabled.
func (c HarnessConfig) TrialTimeout() time.Duration {
	return time.Duration(c.TrialTimeoutSeconds * float64(time.Second))
}

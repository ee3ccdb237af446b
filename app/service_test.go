package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/shiftcheck/config"
)

func smallConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Problem.NumUnits = 12
	cfg.Problem.ShiftLength = 3
	cfg.Problem.MinAvailability = 0
	cfg.Problem.MaxAvailability = 2
	cfg.Harness.NumTests = 5
	cfg.Harness.Seed = 3
	cfg.Logging.Level = "disabled"
	require.NoError(t, cfg.Validate())
	return &cfg
}

func TestServiceRun(t *testing.T) {
	cfg := smallConfig(t)
	cfg.Harness.TrialsCSV = filepath.Join(t.TempDir(), "trials.csv")
	cfg.Harness.LPCheck = true
	var out bytes.Buffer
	svc, err := New(cfg, &out)
	require.NoError(t, err)
	defer func() { assert.NoError(t, svc.Close()) }()

	require.NoError(t, svc.Run(context.Background()))
	assert.Contains(t, out.String(), "No differences found after running 5 tests")

	data, err := os.ReadFile(cfg.Harness.TrialsCSV)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, 6)
}

func TestServiceParallelExhaustive(t *testing.T) {
	cfg := smallConfig(t)
	cfg.Harness.Workers = 3
	cfg.Harness.ParallelExhaustive = true
	var out bytes.Buffer
	svc, err := New(cfg, &out)
	require.NoError(t, err)
	require.NoError(t, svc.Run(context.Background()))
	assert.Equal(t, 5, strings.Count(out.String(), "Solutions same"))
}

func TestServiceRejectsBadLogging(t *testing.T) {
	cfg := smallConfig(t)
	cfg.Logging.Format = "xml"
	_, err := New(cfg, &bytes.Buffer{})
	assert.Error(t, err)
}

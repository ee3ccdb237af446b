package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/shiftcheck/config"
	"github.com/kilianp07/shiftcheck/pkg/export"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestSolveUnits(t *testing.T) {
	out, err := execute(t, "solve", "--units", "2,2,2,0,2,2,2", "--shift-length", "3", "--solvers", "exhaustive,greedy,lp")
	require.NoError(t, err)
	assert.Contains(t, out, "exhaustive: 4 shifts")
	assert.Contains(t, out, "greedy: 4 shifts")
	assert.Contains(t, out, "lp: 4 shifts")
}

func TestSolveFileAndGenerate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "inst.json")
	require.NoError(t, export.WriteFile(path, export.Instance{ShiftLength: 2, Units: []int{1, 2, 2, 1}}))

	out, err := execute(t, "solve", "--units", "", "--file", path, "--shift-length", "2", "--solvers", "greedy")
	require.NoError(t, err)
	assert.Contains(t, out, "greedy: 3 shifts")

	gen := filepath.Join(dir, "gen.csv")
	_, err = execute(t, "generate", "--format", "csv", "--out", gen, "--seed", "7")
	require.NoError(t, err)
	inst, err := export.ReadFile(gen)
	require.NoError(t, err)
	assert.Len(t, inst.Units, config.DefaultNumUnits)
	for _, v := range inst.Units {
		assert.GreaterOrEqual(t, v, config.DefaultMinAvailability)
		assert.LessOrEqual(t, v, config.DefaultMaxAvailability)
	}
}

func TestGenerateRejectsFormat(t *testing.T) {
	_, err := execute(t, "generate", "--format", "xml", "--out", "", "--seed", "1")
	assert.Error(t, err)
}

func TestApplyFlags(t *testing.T) {
	c := &cobra.Command{}
	c.Flags().Int("tests", 0, "")
	c.Flags().Int64("seed", 0, "")
	c.Flags().Int("workers", 0, "")
	c.Flags().Bool("lp-check", false, "")
	require.NoError(t, c.Flags().Parse([]string{"--tests", "5", "--seed", "42", "--workers", "3", "--lp-check"}))

	cfg := config.Default()
	require.NoError(t, applyFlags(c, &cfg))
	assert.Equal(t, 5, cfg.Harness.NumTests)
	assert.Equal(t, int64(42), cfg.Harness.Seed)
	assert.Equal(t, 3, cfg.Harness.Workers)
	assert.True(t, cfg.Harness.LPCheck)

	require.NoError(t, c.Flags().Parse([]string{"--workers", "0"}))
	assert.Error(t, applyFlags(c, &cfg))
}

package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/kilianp07/shiftcheck/config"
	"github.com/kilianp07/shiftcheck/core/model"
	"github.com/kilianp07/shiftcheck/core/shift"
	"github.com/kilianp07/shiftcheck/pkg/export"
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve one availability vector with the selected solvers",
	Example: `  shiftcheck solve --units 2,2,2,0,2,2,2 --shift-length 3
  shiftcheck solve --file mismatch.json --solvers greedy,lp`,
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().String("units", "", "comma separated availability vector")
	solveCmd.Flags().String("file", "", "instance file (json or csv)")
	solveCmd.Flags().Int("shift-length", 0, "shift length (defaults to the instance or configuration value)")
	solveCmd.Flags().StringSlice("solvers", []string{shift.NameExhaustive, shift.NameGreedy}, "solvers to run: "+strings.Join(shift.Names(), ", "))
	solveCmd.Flags().Bool("parallel", false, "evaluate the exhaustive branches concurrently")
	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	inst, err := loadInstance(cmd)
	if err != nil {
		return err
	}
	names, err := cmd.Flags().GetStringSlice("solvers")
	if err != nil {
		return err
	}
	parallel, err := cmd.Flags().GetBool("parallel")
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	opts := shift.Options{ShiftLength: inst.ShiftLength, Parallel: parallel}
	for _, name := range names {
		s, err := shift.NewSolver(strings.TrimSpace(name), opts)
		if err != nil {
			return err
		}
		start := time.Now()
		res, err := s.Solve(ctx, inst.Units)
		if err != nil {
			return fmt.Errorf("%s: %w", s.Name(), err)
		}
		if _, err := fmt.Fprintf(out, "%s: %d shifts (%.3fs, %d nodes)\n", s.Name(), res.Shifts, time.Since(start).Seconds(), res.Nodes); err != nil {
			return err
		}
	}
	return nil
}

// loadInstance resolves the vector from --units or --file and the shift
// length from the flag, the file or the configuration, in that order.
func loadInstance(cmd *cobra.Command) (export.Instance, error) {
	flags := cmd.Flags()
	unitsFlag, _ := flags.GetString("units")
	fileFlag, _ := flags.GetString("file")

	var inst export.Instance
	switch {
	case unitsFlag != "" && fileFlag != "":
		return inst, fmt.Errorf("--units and --file are mutually exclusive")
	case unitsFlag != "":
		units, err := model.ParseUnits(unitsFlag)
		if err != nil {
			return inst, err
		}
		inst.Units = units
	case fileFlag != "":
		loaded, err := export.ReadFile(fileFlag)
		if err != nil {
			return inst, fmt.Errorf("read instance: %w", err)
		}
		inst = loaded
	default:
		return inst, fmt.Errorf("one of --units or --file is required")
	}

	if flags.Changed("shift-length") {
		n, err := flags.GetInt("shift-length")
		if err != nil {
			return inst, err
		}
		inst.ShiftLength = n
	}
	if inst.ShiftLength == 0 {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return inst, fmt.Errorf("load config: %w", err)
		}
		inst.ShiftLength = cfg.Problem.ShiftLength
	}
	return inst, nil
}

package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kilianp07/shiftcheck/app"
	"github.com/kilianp07/shiftcheck/config"
	"github.com/kilianp07/shiftcheck/infra/logger"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "shiftcheck",
	Short: "Compare exhaustive and greedy shift scheduling on random instances",
	Long: `shiftcheck draws random availability vectors and checks that the greedy
solver schedules as many shifts as the exhaustive search. The run stops at
the first disagreement and prints the offending instance.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "configuration file (yaml or json)")
	rootCmd.Flags().Int("tests", 0, "number of trials (overrides harness.num_tests)")
	rootCmd.Flags().Int64("seed", 0, "random seed (overrides harness.seed)")
	rootCmd.Flags().Int("workers", 0, "concurrent trials (overrides harness.workers)")
	rootCmd.Flags().Bool("lp-check", false, "also compare the exhaustive result with the LP bound")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

func run(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := applyFlags(cmd, cfg); err != nil {
		return err
	}
	svc, err := app.New(cfg, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer func() {
		if err := svc.Close(); err != nil {
			logger.New("main").Errorf("service close: %v", err)
		}
	}()
	return svc.Run(ctx)
}

// applyFlags copies explicitly set flags over the loaded configuration.
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("tests") {
		n, err := flags.GetInt("tests")
		if err != nil {
			return err
		}
		cfg.Harness.NumTests = n
	}
	if flags.Changed("seed") {
		s, err := flags.GetInt64("seed")
		if err != nil {
			return err
		}
		cfg.Harness.Seed = s
	}
	if flags.Changed("workers") {
		w, err := flags.GetInt("workers")
		if err != nil {
			return err
		}
		cfg.Harness.Workers = w
	}
	if flags.Changed("lp-check") {
		b, err := flags.GetBool("lp-check")
		if err != nil {
			return err
		}
		cfg.Harness.LPCheck = b
	}
	return cfg.Validate()
}

// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/solsafe/cli/pkg/advisor"
	"github.com/solsafe/cli/pkg/binutils"
	"github.com/solsafe/cli/pkg/config"
	"github.com/solsafe/cli/pkg/constants"
	"github.com/solsafe/cli/pkg/utils"
	"github.com/solsafe/cli/pkg/ux"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var Version = "0.1.0"

type rootFlags struct {
	logLevel string
	debug    bool
	cfgFile  string
	planOut  string
}

// NewRootCmd builds the command. runner is the external CLI runner; nil
// means a real os/exec runner.
func NewRootCmd(runner binutils.Runner, stdout, stderr io.Writer) *cobra.Command {
	flags := &rootFlags{}
	rootCmd := &cobra.Command{
		Use:   "solsafe-init",
		Short: "Print the runbook for initializing SolSafe on devnet",
		Long: `solsafe-init prints the steps for initializing the SolSafe program on devnet.

It reads the operator wallet from 'solana address', lists the validator set
and prints what to run in Solana Playground: the initialize instruction with
quorum and min jurors, then sync_validators with the printed list.

Nothing is sent to the network.`,
		Args:          cobra.NoArgs,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, flags, runner, stdout, stderr)
		},
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	rootCmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", constants.DefaultLogLevel, "log level for the application")
	rootCmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "Show debug output (debug level logs)")
	rootCmd.PersistentFlags().StringVar(&flags.cfgFile, "config", "", "deployment config file overriding the built-in devnet values")
	rootCmd.PersistentFlags().StringVar(&flags.planOut, "plan-out", "", "also write the initialization plan as JSON to this file")

	return rootCmd
}

func run(cmd *cobra.Command, flags *rootFlags, runner binutils.Runner, stdout, stderr io.Writer) error {
	log, err := setupLogging(flags, stderr)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	cfg := config.Default()
	if flags.cfgFile != "" {
		cfg, err = config.Load(flags.cfgFile)
		if err != nil {
			return err
		}
		log.Debug("using config file", zap.String("config-file", flags.cfgFile))
	}

	if runner == nil {
		runner = binutils.NewRunner(log)
	}

	a := advisor.New(cfg, runner, ux.New(log, stdout), log)
	report, err := a.Run(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed printing runbook: %w", err)
	}
	if report.Err != nil || flags.planOut == "" {
		return nil
	}
	if err := utils.WriteJSON(flags.planOut, a.Plan(report.Wallet)); err != nil {
		return err
	}
	log.Info("wrote initialization plan", zap.String("path", flags.planOut))
	return nil
}

func setupLogging(flags *rootFlags, stderr io.Writer) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(flags.logLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", flags.logLevel, err)
	}
	if flags.debug {
		lvl = zapcore.DebugLevel
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.AddSync(stderr),
		lvl,
	)
	return zap.New(core).Named("solsafe"), nil
}

// Execute runs the root command against the real stdout, stderr and
// os/exec. This is called by main.main().
func Execute() {
	rootCmd := NewRootCmd(nil, os.Stdout, os.Stderr)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\nERROR: %s\n", err)
		os.Exit(1)
	}
}

// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package advisor prints the manual runbook for bringing the SolSafe
// program up on devnet. Program invocation itself happens out of band,
// in Solana Playground, driven by a human.
package advisor

import (
	"context"
	"errors"
	"strings"

	"github.com/solsafe/cli/pkg/binutils"
	"github.com/solsafe/cli/pkg/config"
	"github.com/solsafe/cli/pkg/constants"
	"github.com/solsafe/cli/pkg/ux"
	"go.uber.org/zap"
)

// ErrWalletUnavailable is recorded when the wallet CLI fails. Run reports it
// to the user and still returns nil.
var ErrWalletUnavailable = errors.New("wallet address retrieval failed")

// InitPlan is the machine readable counterpart of the printed runbook
type InitPlan struct {
	ProgramID   string   `json:"program_id"`
	RPCEndpoint string   `json:"rpc_endpoint"`
	Wallet      string   `json:"wallet"`
	Quorum      int      `json:"quorum"`
	MinJurors   int      `json:"min_jurors"`
	ConfigSeed  string   `json:"config_seed"`
	Validators  []string `json:"validators"`
}

// Report is what a Run produced
type Report struct {
	Wallet string
	// Err is ErrWalletUnavailable when the runbook was not printed
	Err error
}

type Advisor struct {
	cfg    *config.Config
	runner binutils.Runner
	out    *ux.UserLog
	log    *zap.Logger
}

func New(cfg *config.Config, runner binutils.Runner, out *ux.UserLog, log *zap.Logger) *Advisor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Advisor{
		cfg:    cfg,
		runner: runner,
		out:    out,
		log:    log,
	}
}

// Run walks Start -> FetchWallet -> {Fail | PrintRunbook} -> End.
// A failing wallet CLI is not an error: the user gets a single line,
// Report.Err is set and the returned error is nil. Errors are only
// returned for output failures.
func (a *Advisor) Run(ctx context.Context) (Report, error) {
	if err := a.printBanner(); err != nil {
		return Report{}, err
	}

	wallet, err := a.fetchWallet(ctx)
	if err != nil {
		var walletErr *walletError
		if errors.As(err, &walletErr) {
			if walletErr.spawnErr != nil {
				a.out.Info("wallet CLI could not be started: %v", walletErr.spawnErr)
			} else {
				a.out.Info("wallet lookup failed with exit code %d", walletErr.exitCode)
			}
			return Report{Err: ErrWalletUnavailable}, a.out.PrintToUser("❌ Failed to get wallet: %s", walletErr.stderr)
		}
		return Report{}, err
	}

	a.log.Debug("wallet resolved", zap.String("wallet", wallet))
	if err := a.out.PrintToUser("✅ Wallet: %s\n", wallet); err != nil {
		return Report{}, err
	}
	if err := a.printValidators(); err != nil {
		return Report{}, err
	}
	if err := a.printNextSteps(); err != nil {
		return Report{}, err
	}
	if err := a.out.PrintToUser("\n📝 Validator list JSON:"); err != nil {
		return Report{}, err
	}
	if err := a.out.PrintJSON(a.cfg.Validators()); err != nil {
		return Report{}, err
	}
	return Report{Wallet: wallet}, nil
}

// Plan describes the initialization for the given wallet
func (a *Advisor) Plan(wallet string) InitPlan {
	return InitPlan{
		ProgramID:   a.cfg.ProgramID(),
		RPCEndpoint: a.cfg.RPCEndpoint(),
		Wallet:      wallet,
		Quorum:      a.cfg.Quorum(),
		MinJurors:   a.cfg.MinJurors(),
		ConfigSeed:  constants.ConfigSeed,
		Validators:  a.cfg.Validators(),
	}
}

type walletError struct {
	exitCode int
	stderr   string
	spawnErr error
}

func (e *walletError) Error() string {
	return "wallet CLI failed: " + e.stderr
}

func (a *Advisor) fetchWallet(ctx context.Context) (string, error) {
	res := a.runner.Run(ctx, constants.WalletCLI, constants.WalletAddressArgs...)
	if res.ExitCode != 0 {
		werr := &walletError{exitCode: res.ExitCode, stderr: strings.TrimRight(res.Stderr, "\r\n")}
		if !res.Spawned() {
			werr.spawnErr = res.SpawnErr
		}
		return "", werr
	}
	return strings.TrimSpace(res.Stdout), nil
}

func (a *Advisor) printBanner() error {
	lines := []string{
		"🚀 SolSafe Devnet Initialization",
		"Program ID: " + a.cfg.ProgramID(),
		"RPC: " + a.cfg.RPCEndpoint() + "\n",
	}
	return a.printLines(lines)
}

func (a *Advisor) printValidators() error {
	if err := a.out.PrintToUser("📋 Validator List:"); err != nil {
		return err
	}
	for i, v := range a.cfg.Validators() {
		if err := a.out.PrintToUser("  %d. %s", i+1, v); err != nil {
			return err
		}
	}
	return nil
}

func (a *Advisor) printNextSteps() error {
	return a.printLines([]string{
		"\n⏳ Next Steps:",
		"1. Use Solana Playground to call initialize instruction",
		QuorumLine(a.cfg.Quorum()),
		MinJurorsLine(a.cfg.Quorum(), a.cfg.MinJurors()),
		"\n2. Call sync_validators with the validator list above",
		"\n3. Submit a test case and vote with validators",
	})
}

func (a *Advisor) printLines(lines []string) error {
	for _, l := range lines {
		if err := a.out.PrintToUser("%s", l); err != nil {
			return err
		}
	}
	return nil
}

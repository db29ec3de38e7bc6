// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package binutils

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Result is the captured outcome of one external command.
// When the process could not be started, ExitCode is 1, Stdout is empty,
// Stderr carries the spawn error text and SpawnErr the error itself.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
	SpawnErr error
}

// Spawned reports whether the process actually ran
func (r Result) Spawned() bool {
	return r.SpawnErr == nil
}

// Runner runs external CLIs without a shell
type Runner interface {
	// Run never returns an error for a non-zero exit: inspect Result instead.
	Run(ctx context.Context, name string, args ...string) Result
}

type execRunner struct {
	log *zap.Logger
}

// NewRunner creates a Runner backed by os/exec. No timeout is applied;
// ctx is only the caller's cancellation path.
func NewRunner(log *zap.Logger) Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &execRunner{log: log}
}

func (r *execRunner) Run(ctx context.Context, name string, args ...string) Result {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	elapsed := time.Since(start)
	cmdLine := strings.Join(append([]string{name}, args...), " ")

	if err == nil {
		r.log.Debug("command finished", zap.String("cmd", cmdLine), zap.Int("exit-code", 0), zap.Duration("elapsed", elapsed))
		return Result{Stdout: stdout.String(), Stderr: stderr.String()}
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() >= 0 {
		r.log.Debug("command failed", zap.String("cmd", cmdLine), zap.Int("exit-code", exitErr.ExitCode()), zap.Duration("elapsed", elapsed))
		return Result{
			ExitCode: exitErr.ExitCode(),
			Stdout:   stdout.String(),
			Stderr:   stderr.String(),
		}
	}

	// not found, permission denied, killed by signal or ctx cancellation
	r.log.Debug("command could not run", zap.String("cmd", cmdLine), zap.Error(err))
	return Result{
		ExitCode: 1,
		Stderr:   err.Error(),
		SpawnErr: err,
	}
}

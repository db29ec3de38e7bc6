// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package binutils

import (
	"context"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/require"
)

func requireSh(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestRunCapturesOutput(t *testing.T) {
	requireSh(t)
	tests := []struct {
		name     string
		script   string
		exitCode int
		stdout   string
		stderr   string
	}{
		{
			name:   "success",
			script: "printf '  wallet\\n'",
			stdout: "  wallet\n",
		},
		{
			name:     "non-zero exit",
			script:   "printf 'partial'; printf 'boom' >&2; exit 3",
			exitCode: 3,
			stdout:   "partial",
			stderr:   "boom",
		},
		{
			name:     "exit one",
			script:   "echo 'command not found' >&2; exit 1",
			exitCode: 1,
			stderr:   "command not found\n",
		},
	}

	r := NewRunner(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			res := r.Run(context.Background(), "sh", "-c", tt.script)
			require.True(res.Spawned())
			require.NoError(res.SpawnErr)
			require.Equal(tt.exitCode, res.ExitCode)
			require.Equal(tt.stdout, res.Stdout)
			require.Equal(tt.stderr, res.Stderr)
		})
	}
}

func TestRunArgsAreNotShellInterpreted(t *testing.T) {
	requireSh(t)
	res := NewRunner(nil).Run(context.Background(), "sh", "-c", `printf '%s' "$1"`, "sh", "$(echo injected); rm -rf /")
	require.Equal(t, 0, res.ExitCode)
	require.Equal(t, "$(echo injected); rm -rf /", res.Stdout)
}

func TestRunSpawnError(t *testing.T) {
	require := require.New(t)
	res := NewRunner(nil).Run(context.Background(), "solsafe-definitely-missing-binary")

	require.False(res.Spawned())
	require.Error(res.SpawnErr)
	require.Equal(1, res.ExitCode)
	require.Empty(res.Stdout)
	require.Equal(res.SpawnErr.Error(), res.Stderr)
	require.Contains(res.Stderr, "solsafe-definitely-missing-binary")
}

func TestRunCancelledContext(t *testing.T) {
	requireSh(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := NewRunner(nil).Run(ctx, "sh", "-c", "sleep 5")
	require.Equal(t, 1, res.ExitCode)
	require.Error(t, res.SpawnErr)
}

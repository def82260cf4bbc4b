package shell_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cloister/internal/adapters/shell"
	"go.trai.ch/cloister/internal/core/domain"
	"go.trai.ch/cloister/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newSystem(t *testing.T) *shell.System {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	return shell.NewSystem(log)
}

func TestRun_CapturesOutput(t *testing.T) {
	sys := newSystem(t)

	result, err := sys.Run(context.Background(), "sh", "-c", "echo out; echo err >&2")
	require.NoError(t, err)
	assert.Equal(t, 0, result.ExitCode)
	assert.Equal(t, "out\n", result.Stdout)
	assert.Equal(t, "err\n", result.Stderr)
}

func TestRun_NonZeroExit(t *testing.T) {
	sys := newSystem(t)

	result, err := sys.Run(context.Background(), "sh", "-c", "exit 3")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCommandFailed)
	assert.Equal(t, 3, result.ExitCode)
}

func TestRunUnchecked_NonZeroExitIsNotAnError(t *testing.T) {
	sys := newSystem(t)

	result, err := sys.RunUnchecked(context.Background(), "sh", "-c", "exit 3")
	require.NoError(t, err)
	assert.Equal(t, 3, result.ExitCode)
}

func TestRunUnchecked_MissingBinary(t *testing.T) {
	sys := newSystem(t)

	result, err := sys.RunUnchecked(context.Background(), "definitely-not-a-binary-cloister")
	require.Error(t, err)
	assert.Equal(t, -1, result.ExitCode)
}

func TestStart_DoesNotWaitForExit(t *testing.T) {
	sys := newSystem(t)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	// A command that never finishes on its own returns immediately.
	require.NoError(t, sys.Start(ctx, "sleep", "60"))
}

func TestStart_MissingBinary(t *testing.T) {
	sys := newSystem(t)

	err := sys.Start(context.Background(), "definitely-not-a-binary-cloister")
	assert.Error(t, err)
}

func TestWriteFile_CreatesParentsAndSetsMode(t *testing.T) {
	sys := newSystem(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "autostart")

	require.NoError(t, sys.WriteFile(path, []byte("#!/bin/bash\n"), true))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&0o111)

	// Overwriting with executable=false drops the bit.
	require.NoError(t, sys.WriteFile(path, []byte("plain"), false))
	info, err = os.Stat(path)
	require.NoError(t, err)
	assert.Zero(t, info.Mode()&0o111)
}

func TestMkdirAll_Idempotent(t *testing.T) {
	sys := newSystem(t)
	path := filepath.Join(t.TempDir(), "a", "b")

	require.NoError(t, sys.MkdirAll(path))
	require.NoError(t, sys.MkdirAll(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

// Package shell provides the system-operations adapter backed by os/exec.
package shell

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"

	"go.trai.ch/cloister/internal/core/domain"
	"go.trai.ch/cloister/internal/core/ports"
	"go.trai.ch/zerr"
)

// System implements ports.System using os/exec and the os package.
type System struct {
	logger ports.Logger
}

// NewSystem creates a new System adapter.
func NewSystem(logger ports.Logger) *System {
	return &System{
		logger: logger,
	}
}

// Run executes a command synchronously and captures stdout/stderr.
// A non-zero exit is returned as an error wrapping domain.ErrCommandFailed.
func (s *System) Run(ctx context.Context, name string, args ...string) (domain.RunResult, error) {
	result, err := s.RunUnchecked(ctx, name, args...)
	if err != nil {
		return result, err
	}
	if result.ExitCode != 0 {
		return result, zerr.With(zerr.With(domain.ErrCommandFailed, "command", name),
			"exit_code", result.ExitCode)
	}
	return result, nil
}

// RunUnchecked executes a command synchronously without treating a non-zero
// exit as an error. Callers inspect the returned ExitCode.
func (s *System) RunUnchecked(ctx context.Context, name string, args ...string) (domain.RunResult, error) {
	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec // commands are assembled by the provisioner

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := domain.RunResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		// The command never ran: binary missing, context canceled, etc.
		result.ExitCode = -1
		return result, zerr.Wrap(err, "failed to start command")
	}

	return result, nil
}

// Start launches a command without waiting for it to exit. Used for daemon
// processes that never terminate on their own.
func (s *System) Start(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec // commands are assembled by the provisioner

	if err := cmd.Start(); err != nil {
		return zerr.Wrap(err, "failed to start command")
	}

	// Reap the process when it eventually exits.
	go func() {
		_ = cmd.Wait()
	}()

	return nil
}

// WriteFile creates or overwrites path, creating parent directories and
// setting the executable bit when requested.
func (s *System) WriteFile(path string, content []byte, executable bool) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return zerr.Wrap(err, "failed to create parent directory")
	}

	perm := os.FileMode(0o644)
	if executable {
		perm = 0o755
	}

	//nolint:gosec // session scripts are intentionally world-readable
	if err := os.WriteFile(path, content, perm); err != nil {
		return zerr.Wrap(err, "failed to write file")
	}

	// os.WriteFile does not chmod an existing file, so re-provisioning must
	// apply the mode explicitly.
	if err := os.Chmod(path, perm); err != nil {
		return zerr.Wrap(err, "failed to set file mode")
	}

	return nil
}

// FileExists reports whether path exists.
func (s *System) FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// MkdirAll creates a directory and its parents, idempotently.
func (s *System) MkdirAll(path string) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return zerr.Wrap(err, "failed to create directory")
	}
	return nil
}

// EnableService enables a systemd unit if it is not already enabled.
func (s *System) EnableService(ctx context.Context, name string) error {
	if s.serviceEnabled(ctx, name) {
		return nil
	}
	s.logger.Info("enabling service " + name)
	if _, err := s.Run(ctx, "systemctl", "enable", name); err != nil {
		return zerr.Wrap(err, "failed to enable service")
	}
	return nil
}

// DisableService disables a systemd unit if it is currently enabled.
func (s *System) DisableService(ctx context.Context, name string) error {
	if !s.serviceEnabled(ctx, name) {
		return nil
	}
	s.logger.Info("disabling service " + name)
	if _, err := s.Run(ctx, "systemctl", "disable", name); err != nil {
		return zerr.Wrap(err, "failed to disable service")
	}
	return nil
}

func (s *System) serviceEnabled(ctx context.Context, name string) bool {
	result, err := s.RunUnchecked(ctx, "systemctl", "is-enabled", "--quiet", name)
	return err == nil && result.ExitCode == 0
}

// CreateUser creates a login user with a home directory if it does not
// already exist.
func (s *System) CreateUser(ctx context.Context, name string) error {
	result, err := s.RunUnchecked(ctx, "id", "-u", name)
	if err == nil && result.ExitCode == 0 {
		return nil
	}

	s.logger.Info("creating user " + name)
	if _, err := s.Run(ctx, "useradd", "-m", "-s", "/bin/bash", name); err != nil {
		return zerr.Wrap(err, "failed to create user")
	}
	return nil
}

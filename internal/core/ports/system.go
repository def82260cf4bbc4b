// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/cloister/internal/core/domain"
)

// System is the system-operations collaborator. Everything that mutates the
// host (package installs, user creation, file writes, service toggles) goes
// through this interface so the provisioning core stays testable and the
// fixed-effect shell invocations stay in one adapter.
//
//go:generate go run go.uber.org/mock/mockgen -source=system.go -destination=mocks/mock_system.go -package=mocks
type System interface {
	// Run executes a command synchronously and captures its output. A
	// non-zero exit is returned as an error wrapping domain.ErrCommandFailed.
	Run(ctx context.Context, name string, args ...string) (domain.RunResult, error)

	// RunUnchecked executes a command synchronously but does not treat a
	// non-zero exit as an error; callers inspect the result's ExitCode.
	RunUnchecked(ctx context.Context, name string, args ...string) (domain.RunResult, error)

	// Start launches a command without waiting for it to exit. Used for
	// daemon processes that never terminate on their own.
	Start(ctx context.Context, name string, args ...string) error

	// WriteFile creates or overwrites path with content, creating parent
	// directories as needed and setting the executable bit when requested.
	WriteFile(path string, content []byte, executable bool) error

	// MkdirAll creates a directory and its parents, idempotently.
	MkdirAll(path string) error

	// FileExists reports whether path exists.
	FileExists(path string) bool

	// EnableService enables a systemd unit; no-op if already enabled.
	EnableService(ctx context.Context, name string) error

	// DisableService disables a systemd unit; no-op if already disabled.
	DisableService(ctx context.Context, name string) error

	// CreateUser creates a login user with a home directory; no-op if the
	// user already exists.
	CreateUser(ctx context.Context, name string) error
}

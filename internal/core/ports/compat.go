package ports

import (
	"context"

	"go.trai.ch/cloister/internal/core/domain"
)

// CompatibilityProvisioner ensures a compatibility runtime environment
// exists for the session user when the classified binary needs one.
//
//go:generate go run go.uber.org/mock/mockgen -source=compat.go -destination=mocks/mock_compat.go -package=mocks
type CompatibilityProvisioner interface {
	// Ensure is idempotent: initialization runs at most once per user,
	// guarded by a marker inside the prefix. For a non-foreign verdict it
	// returns the explicit no-op environment (Enabled=false) so callers
	// branch on the absence of a compatibility layer deliberately.
	Ensure(ctx context.Context, settings domain.Settings, verdict domain.PlatformVerdict) (domain.CompatibilityEnvironment, error)
}

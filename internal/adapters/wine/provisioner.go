// Package wine provisions the per-user compatibility environment for
// foreign (Windows PE) game binaries.
package wine

import (
	"context"
	"path/filepath"

	"go.trai.ch/cloister/internal/core/domain"
	"go.trai.ch/cloister/internal/core/ports"
	"go.trai.ch/zerr"
)

// initMarker is written into the prefix after a successful wineboot so a
// second provisioning pass skips the expensive initialization.
const initMarker = ".cloister-initialized"

// Provisioner implements ports.CompatibilityProvisioner using wine.
type Provisioner struct {
	sys    ports.System
	logger ports.Logger
}

// NewProvisioner creates a new Provisioner.
func NewProvisioner(sys ports.System, logger ports.Logger) *Provisioner {
	return &Provisioner{
		sys:    sys,
		logger: logger,
	}
}

// Ensure sets up the kiosk user's wine prefix for a foreign binary. For any
// other verdict it returns the explicit no-op environment so the caller's
// decision not to install a compatibility layer stays visible.
//
// Initialization runs at most once per user: a marker inside the prefix
// records completion and short-circuits later passes.
func (p *Provisioner) Ensure(ctx context.Context, settings domain.Settings, verdict domain.PlatformVerdict) (domain.CompatibilityEnvironment, error) {
	if verdict != domain.PlatformForeign {
		return domain.CompatibilityEnvironment{}, nil
	}

	env := domain.CompatibilityEnvironment{
		User:    settings.User,
		Prefix:  settings.WinePrefix(),
		Enabled: true,
	}

	marker := filepath.Join(env.Prefix, initMarker)
	if p.sys.FileExists(marker) {
		env.Initialized = true
		return env, nil
	}

	p.logger.Info("preparing wine prefix for user " + settings.User)

	// wine needs the 32-bit multilib architecture even for 64-bit prefixes.
	if _, err := p.sys.Run(ctx, "dpkg", "--add-architecture", "i386"); err != nil {
		return env, zerr.Wrap(domain.ErrCompatibilityInitFailed, err.Error())
	}

	if err := p.sys.MkdirAll(env.Prefix); err != nil {
		return env, zerr.Wrap(domain.ErrCompatibilityInitFailed, err.Error())
	}

	// wineboot must run as the session user so the prefix it creates is
	// owned and usable by that user.
	if _, err := p.sys.Run(ctx, "sudo", "-u", settings.User,
		"WINEPREFIX="+env.Prefix, "wineboot", "--init"); err != nil {
		return env, zerr.Wrap(domain.ErrCompatibilityInitFailed, err.Error())
	}

	if err := p.sys.WriteFile(marker, []byte("wineboot completed\n"), false); err != nil {
		return env, zerr.Wrap(domain.ErrCompatibilityInitFailed, err.Error())
	}

	env.Initialized = true
	return env, nil
}

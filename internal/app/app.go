// Package app implements the application layer for cloister.
package app

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/cloister/internal/core/domain"
	"go.trai.ch/cloister/internal/core/ports"
	"go.trai.ch/cloister/internal/engine/display"
	"go.trai.ch/cloister/internal/engine/supervisor"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	loader     ports.ConfigLoader
	sys        ports.System
	classifier ports.Classifier
	compat     ports.CompatibilityProvisioner
	resolver   *display.Resolver
	store      ports.RecordStore
	logger     ports.Logger
	tracer     ports.Tracer
	now        func() time.Time
}

// ProvisionOptions carries the per-invocation provisioning inputs.
type ProvisionOptions struct {
	// BinaryPath is the game binary to provision the machine for.
	BinaryPath string
	// Width and Height force the base resolution; both zero means
	// auto-detect from the primary output.
	Width  int
	Height int
	// Offline skips every step that would reach the network, leaving a
	// foreign binary's compatibility layer uninitialized.
	Offline bool
	// Args are extra arguments passed to the game on every launch.
	Args []string
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	sys ports.System,
	classifier ports.Classifier,
	compat ports.CompatibilityProvisioner,
	resolver *display.Resolver,
	store ports.RecordStore,
	logger ports.Logger,
	tracer ports.Tracer,
) *App {
	return &App{
		loader:     loader,
		sys:        sys,
		classifier: classifier,
		compat:     compat,
		resolver:   resolver,
		store:      store,
		logger:     logger,
		tracer:     tracer,
		now:        time.Now,
	}
}

// Provision runs the full provisioning sequence: classify the binary,
// negotiate the resolution plan, ensure the compatibility layer, then
// materialize the session onto the host. Nothing is written to the host
// before classification and resolution both succeed, and the autostart
// script is written last so a partially provisioned machine never
// supervises a half-configured session.
func (a *App) Provision(ctx context.Context, opts ProvisionOptions) error {
	settings, err := a.loader.Load()
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	target, err := domain.NewExecutableTarget(opts.BinaryPath)
	if err != nil {
		return zerr.Wrap(err, "failed to validate game binary")
	}

	if filepath.Dir(target.Path()) != settings.GameDir {
		a.logger.Warn("game binary lives outside " + settings.GameDir + ", provisioning it in place")
	}

	ctx, root := a.tracer.Start(ctx, "provision "+target.Name())
	defer root.End()
	root.SetAttribute("binary", target.Path())

	var verdict domain.PlatformVerdict
	if err := a.step(ctx, "classify "+target.Name(), func(ctx context.Context, span ports.Span) error {
		verdict, err = a.classifier.Classify(target)
		if err != nil {
			return err
		}
		span.SetAttribute("platform", string(verdict))
		return nil
	}); err != nil {
		return err
	}
	a.logger.Info("classified " + target.Name() + " as " + string(verdict))

	var plan domain.ResolutionPlan
	if err := a.step(ctx, "resolve display layout", func(ctx context.Context, span ports.Span) error {
		plan, err = a.resolver.Resolve(ctx, opts.Width, opts.Height)
		if err != nil {
			return err
		}
		width, height := plan.Base()
		span.SetAttribute("resolution", fmt.Sprintf("%dx%d", width, height))
		return nil
	}); err != nil {
		return err
	}

	compat, err := a.ensureCompatibility(ctx, settings, verdict, opts.Offline)
	if err != nil {
		return err
	}

	spec := supervisor.BuildLaunchSpec(target, verdict, compat, plan, settings.RestartDelay, opts.Args...)

	if err := a.materialize(ctx, settings, target, verdict, compat, plan, spec); err != nil {
		return err
	}

	a.logger.Info("provisioning completed successfully")
	return nil
}

// ensureCompatibility delegates to the provisioner, except in offline mode,
// where a foreign binary's layer is deliberately left uninitialized and the
// degraded state is surfaced rather than hidden.
func (a *App) ensureCompatibility(
	ctx context.Context,
	settings domain.Settings,
	verdict domain.PlatformVerdict,
	offline bool,
) (domain.CompatibilityEnvironment, error) {
	if offline && verdict == domain.PlatformForeign {
		a.logger.Warn("offline mode: skipping compatibility layer setup, the game will not run until it is provisioned online")
		return domain.CompatibilityEnvironment{
			User:    settings.User,
			Prefix:  settings.WinePrefix(),
			Offline: true,
		}, nil
	}

	var compat domain.CompatibilityEnvironment
	err := a.step(ctx, "ensure compatibility layer", func(ctx context.Context, span ports.Span) error {
		var err error
		compat, err = a.compat.Ensure(ctx, settings, verdict)
		if err != nil {
			return err
		}
		span.SetAttribute("layer", compat.Layer())
		return nil
	})
	return compat, err
}

// materialize writes the session onto the host in dependency order. Every
// step is idempotent, so a failed pass is repaired by running again.
func (a *App) materialize(
	ctx context.Context,
	settings domain.Settings,
	target domain.ExecutableTarget,
	verdict domain.PlatformVerdict,
	compat domain.CompatibilityEnvironment,
	plan domain.ResolutionPlan,
	spec domain.LaunchSpec,
) error {
	modeset := supervisor.RenderModesetScript(plan)
	autostart := supervisor.RenderAutostartScript(spec, settings)

	steps := []struct {
		name string
		run  func(context.Context, ports.Span) error
	}{
		{"create session user", func(ctx context.Context, _ ports.Span) error {
			if err := a.sys.CreateUser(ctx, settings.User); err != nil {
				return err
			}
			_, err := a.sys.Run(ctx, "passwd", "-d", settings.User)
			return err
		}},
		{"configure autologin", func(ctx context.Context, _ ports.Span) error {
			conf := filepath.Join("/etc", "greetd", "config.toml")
			if err := a.sys.WriteFile(conf, []byte(RenderGreetdConfig(settings)), false); err != nil {
				return err
			}
			if err := a.sys.DisableService(ctx, "sddm.service"); err != nil {
				return err
			}
			return a.sys.EnableService(ctx, "greetd.service")
		}},
		{"hide bootloader menu", func(ctx context.Context, _ ports.Span) error {
			_, err := a.sys.Run(ctx, "bootctl", "set-timeout", "0")
			return err
		}},
		{"create game directory", func(ctx context.Context, _ ports.Span) error {
			return a.sys.MkdirAll(settings.GameDir)
		}},
		{"create screenshots directory", func(ctx context.Context, _ ports.Span) error {
			if err := a.sys.MkdirAll(settings.ScreenshotsDir); err != nil {
				return err
			}
			_, err := a.sys.Run(ctx, "chmod", "777", settings.ScreenshotsDir)
			return err
		}},
		{"configure session environment", func(ctx context.Context, _ ports.Span) error {
			xinitrc := filepath.Join(settings.Home(), ".xinitrc")
			return a.sys.WriteFile(xinitrc, []byte(RenderXinitrc()), true)
		}},
		{"configure keybindings", func(ctx context.Context, _ ports.Span) error {
			rc := filepath.Join(settings.OpenboxDir(), "rc.xml")
			return a.sys.WriteFile(rc, []byte(RenderKeybindings(settings)), false)
		}},
		{"write screen layout script", func(ctx context.Context, span ports.Span) error {
			_, _ = span.Write([]byte(modeset))
			return a.sys.WriteFile(settings.ModesetScriptPath(), []byte(modeset), true)
		}},
		{"record provisioning", func(ctx context.Context, span ports.Span) error {
			record := domain.ProvisionRecord{
				Binary:             target.Path(),
				Platform:           string(verdict),
				CompatibilityLayer: compat.Layer(),
				ModesetDigest:      artifactDigest(modeset),
				AutostartDigest:    artifactDigest(autostart),
				Timestamp:          a.now(),
			}
			previous, err := a.store.Get(target.Path())
			if err != nil {
				a.logger.Warn("could not read previous provisioning record: " + err.Error())
			}
			if previous != nil &&
				previous.ModesetDigest == record.ModesetDigest &&
				previous.AutostartDigest == record.AutostartDigest {
				span.SetAttribute("unchanged", true)
				a.logger.Info("session artifacts unchanged since last provisioning")
			}
			return a.store.Put(record)
		}},
		{"write autostart script", func(ctx context.Context, span ports.Span) error {
			_, _ = span.Write([]byte(autostart))
			return a.sys.WriteFile(settings.AutostartPath(), []byte(autostart), true)
		}},
		{"fix home ownership", func(ctx context.Context, _ ports.Span) error {
			_, err := a.sys.Run(ctx, "chown", "-R", settings.User+":"+settings.User, settings.Home())
			return err
		}},
	}

	names := make([]string, len(steps))
	for i, s := range steps {
		names[i] = s.name
	}
	a.tracer.EmitPlan(ctx, names)

	for _, s := range steps {
		if err := a.step(ctx, s.name, s.run); err != nil {
			return err
		}
	}
	return nil
}

// step runs one provisioning step inside its own span.
func (a *App) step(ctx context.Context, name string, fn func(context.Context, ports.Span) error) error {
	ctx, span := a.tracer.Start(ctx, name)
	defer span.End()
	if err := fn(ctx, span); err != nil {
		span.RecordError(err)
		return zerr.Wrap(err, "failed to "+name)
	}
	return nil
}

func artifactDigest(content string) string {
	return fmt.Sprintf("xxh64:%016x", xxhash.Sum64String(content))
}

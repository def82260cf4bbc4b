package supervisor

import (
	"context"

	"go.trai.ch/cloister/internal/core/domain"
	"go.trai.ch/cloister/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

// SuppressChrome runs the session-start chrome-suppression commands:
// power-management screen-off, screensaver, and blanking all disabled, the
// mode-set script applied, the cursor hidden, and the font cache pre-warmed.
// The commands are independent of each other and run concurrently, mirroring
// the autostart script backgrounding each one. Runs once per session start,
// never per restart iteration.
func SuppressChrome(ctx context.Context, sys ports.System, settings domain.Settings) error {
	// unclutter is a daemon that never exits, so it is started and left
	// running rather than waited on.
	if err := sys.Start(ctx, "unclutter", "-idle", "0.01", "-root"); err != nil {
		return err
	}

	commands := [][]string{
		{"xset", "-dpms"},
		{"xset", "s", "off"},
		{"xset", "s", "noblank"},
		{settings.ModesetScriptPath()},
		{"fc-cache", "-fv"},
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, argv := range commands {
		g.Go(func() error {
			_, err := sys.Run(ctx, argv[0], argv[1:]...)
			return err
		})
	}
	return g.Wait()
}

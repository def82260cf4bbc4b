// Package supervisor composes the final launch specification and the
// session scripts, and implements the restart-on-exit supervision loop.
package supervisor

import (
	"fmt"
	"time"

	"go.trai.ch/cloister/internal/core/domain"
)

// BuildLaunchSpec composes the classified target, its compatibility
// environment, and the resolution plan into the supervised invocation. It
// is pure composition: errors surface only from its inputs.
func BuildLaunchSpec(
	target domain.ExecutableTarget,
	verdict domain.PlatformVerdict,
	compat domain.CompatibilityEnvironment,
	plan domain.ResolutionPlan,
	delay time.Duration,
	args ...string,
) domain.LaunchSpec {
	invocation := append([]string{target.Path()}, args...)

	wrapped := false
	if verdict == domain.PlatformForeign {
		// Run the game inside an isolated wine virtual desktop sized to the
		// negotiated base resolution, so a crashing fullscreen game cannot
		// wedge the real display.
		w, h := plan.Base()
		wrapper := []string{"wine", "explorer", fmt.Sprintf("/desktop=Arcade,%dx%d", w, h)}
		if compat.Prefix != "" {
			wrapper = append([]string{"env", "WINEPREFIX=" + compat.Prefix}, wrapper...)
		}
		invocation = append(wrapper, invocation...)
		wrapped = true
	}

	if delay <= 0 {
		delay = domain.DefaultRestartDelay
	}

	return domain.LaunchSpec{
		Invocation: invocation,
		Wrapped:    wrapped,
		Plan:       plan,
		Restart:    domain.RestartPolicy{Delay: delay},
	}
}

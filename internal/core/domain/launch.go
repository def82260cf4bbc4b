package domain

import "time"

// DefaultRestartDelay is the fixed pause between a game exit and its relaunch.
const DefaultRestartDelay = time.Second

// RestartPolicy is the supervision policy for the kiosk session: every exit
// is relaunched after a fixed delay. There is deliberately no backoff, no
// retry cap, and no exit-code branching; a kiosk must never present a bare
// shell, so intentional quits restart the game too.
type RestartPolicy struct {
	Delay time.Duration
}

// LaunchSpec is the final provisioning artifact: the supervised invocation,
// the resolution plan, and the restart policy. It is written once per
// provisioning run and consumed by the session's autostart mechanism.
type LaunchSpec struct {
	// Invocation is the full argv, wine-wrapped when the binary is foreign.
	Invocation []string
	// Wrapped reports whether Invocation runs inside the compatibility layer.
	Wrapped bool
	Plan    ResolutionPlan
	Restart RestartPolicy
}

package domain

import (
	"fmt"
	"sort"
)

// Output is one display connection point as reported by the display
// subsystem at enumeration time.
type Output struct {
	Name      string
	Connected bool
	Primary   bool
	// Width and Height hold the output's current mode when one is active,
	// zero otherwise.
	Width  int
	Height int
}

// OutputMode is the negotiated mode for a single connected output.
type OutputMode struct {
	Output  string
	Width   int
	Height  int
	Refresh int
}

// Mode returns the xrandr-style WxH string for the mode.
func (m OutputMode) Mode() string {
	return fmt.Sprintf("%dx%d", m.Width, m.Height)
}

// ResolutionPlan is one OutputMode per connected output. Order carries no
// meaning but is sorted by output name so repeated resolution on an
// unchanged system renders byte-identical scripts.
type ResolutionPlan struct {
	Modes []OutputMode
}

// NewResolutionPlan builds a deterministic plan from the given modes.
func NewResolutionPlan(modes []OutputMode) ResolutionPlan {
	sorted := make([]OutputMode, len(modes))
	copy(sorted, modes)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Output < sorted[j].Output
	})
	return ResolutionPlan{Modes: sorted}
}

// Base returns the shared resolution of the plan. Every mode in a plan is
// produced from one base resolution decision, so the first entry is
// representative.
func (p ResolutionPlan) Base() (width, height int) {
	if len(p.Modes) == 0 {
		return 0, 0
	}
	return p.Modes[0].Width, p.Modes[0].Height
}

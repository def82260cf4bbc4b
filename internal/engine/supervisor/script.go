package supervisor

import (
	"fmt"
	"strconv"
	"strings"

	"go.trai.ch/cloister/internal/core/domain"
)

// RenderModesetScript renders the mode-set script: a single xrandr
// invocation assigning the negotiated mode and refresh rate to every output
// in the plan. Plans are name-sorted, so the rendered script is
// byte-for-byte reproducible for an unchanged hardware state.
func RenderModesetScript(plan domain.ResolutionPlan) string {
	var b strings.Builder
	b.WriteString("#!/bin/bash\n")
	b.WriteString("xrandr")
	for _, m := range plan.Modes {
		fmt.Fprintf(&b, " --output %s --mode %s --rate %d", m.Output, m.Mode(), m.Refresh)
	}
	b.WriteString("\n")
	return b.String()
}

// RenderAutostartScript renders the session autostart script: the
// chrome-suppression block runs once at session start, then the script
// enters the unconditional restart loop around the game invocation. Every
// exit relaunches after the fixed delay; there is no exit-code branching
// and no way out short of the session ending.
func RenderAutostartScript(spec domain.LaunchSpec, settings domain.Settings) string {
	var b strings.Builder
	b.WriteString("#!/bin/bash\n")
	b.WriteString("# Disable DPMS\n")
	b.WriteString("xset -dpms &\n")
	b.WriteString("# Disable screensaver\n")
	b.WriteString("xset s off &\n")
	b.WriteString("# Disable screen blanking\n")
	b.WriteString("xset s noblank &\n")
	b.WriteString("# Apply the resolution\n")
	b.WriteString(settings.ModesetScriptPath() + " &\n")
	b.WriteString("# Hide the cursor\n")
	b.WriteString("unclutter -idle 0.01 -root &\n")
	b.WriteString("# Cache all fonts to prevent the system from hanging on initial font load\n")
	b.WriteString("fc-cache -fv &\n")
	b.WriteString("# Relaunch the game after every exit, regardless of status\n")
	b.WriteString("while true; do\n")
	b.WriteString("    " + shellJoin(spec.Invocation) + "\n")
	fmt.Fprintf(&b, "    sleep %s\n", formatSeconds(spec.Restart.Delay.Seconds()))
	b.WriteString("done\n")
	return b.String()
}

// shellJoin renders an argv as a shell command line, quoting arguments that
// need it.
func shellJoin(argv []string) string {
	parts := make([]string, 0, len(argv))
	for _, arg := range argv {
		parts = append(parts, shellQuote(arg))
	}
	return strings.Join(parts, " ")
}

func shellQuote(arg string) string {
	if arg != "" && !strings.ContainsAny(arg, " \t\"'`$&|;<>()*?#~") {
		return arg
	}
	return `"` + strings.NewReplacer(`\`, `\\`, `"`, `\"`, "`", "\\`", `$`, `\$`).Replace(arg) + `"`
}

func formatSeconds(s float64) string {
	return strconv.FormatFloat(s, 'f', -1, 64)
}

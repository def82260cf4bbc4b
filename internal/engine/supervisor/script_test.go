package supervisor_test

import (
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/cloister/internal/core/domain"
	"go.trai.ch/cloister/internal/engine/supervisor"
)

func TestRenderModesetScript(t *testing.T) {
	plan := domain.NewResolutionPlan([]domain.OutputMode{
		{Output: "VGA-1", Width: 1280, Height: 1024, Refresh: 60},
		{Output: "HDMI-1", Width: 1280, Height: 1024, Refresh: 60},
	})

	got := supervisor.RenderModesetScript(plan)

	g := goldie.New(t)
	g.Assert(t, "modeset", []byte(got))
}

func TestRenderModesetScript_Reproducible(t *testing.T) {
	modes := []domain.OutputMode{
		{Output: "eDP-1", Width: 1920, Height: 1080, Refresh: 60},
		{Output: "HDMI-1", Width: 1920, Height: 1080, Refresh: 60},
	}
	reversed := []domain.OutputMode{modes[1], modes[0]}

	first := supervisor.RenderModesetScript(domain.NewResolutionPlan(modes))
	second := supervisor.RenderModesetScript(domain.NewResolutionPlan(reversed))

	assert.Equal(t, first, second)
}

func TestRenderAutostartScript(t *testing.T) {
	settings := domain.DefaultSettings()
	spec := domain.LaunchSpec{
		Invocation: []string{"/opt/game/game", "--fullscreen"},
		Plan:       testPlan(),
		Restart:    domain.RestartPolicy{Delay: time.Second},
	}

	got := supervisor.RenderAutostartScript(spec, settings)

	g := goldie.New(t)
	g.Assert(t, "autostart", []byte(got))
}

func TestRenderAutostartScript_QuotesArguments(t *testing.T) {
	spec := domain.LaunchSpec{
		Invocation: []string{"/opt/game/my game.exe", "--title", `Arcade "Deluxe"`},
		Plan:       testPlan(),
		Restart:    domain.RestartPolicy{Delay: 1500 * time.Millisecond},
	}

	got := supervisor.RenderAutostartScript(spec, domain.DefaultSettings())

	assert.Contains(t, got, "    \"/opt/game/my game.exe\" --title \"Arcade \\\"Deluxe\\\"\"\n")
	assert.Contains(t, got, "    sleep 1.5\n")
}

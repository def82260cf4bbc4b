package xrandr_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cloister/internal/adapters/xrandr"
	"go.trai.ch/cloister/internal/core/domain"
	"go.trai.ch/cloister/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

const queryFixture = `Screen 0: minimum 320 x 200, current 3200 x 1080, maximum 16384 x 16384
eDP-1 connected primary 1920x1080+0+0 (normal left inverted right x axis y axis) 344mm x 194mm
   1920x1080     60.01*+  59.97    59.96    59.93
   1680x1050     59.95    59.88
HDMI-1 connected 1280x720+1920+0 (normal left inverted right x axis y axis) 509mm x 286mm
   1280x720      60.00*   50.00    59.94
   1920x1080     60.00    50.00
VGA-1 disconnected (normal left inverted right x axis y axis)
DP-1 disconnected (normal left inverted right x axis y axis)
`

func TestOutputs_ParsesConnectionStateAndModes(t *testing.T) {
	ctrl := gomock.NewController(t)
	sys := mocks.NewMockSystem(ctrl)
	sys.EXPECT().Run(gomock.Any(), "xrandr", "--query").
		Return(domain.RunResult{Stdout: queryFixture}, nil)

	q := xrandr.NewQuery(sys)
	outputs, err := q.Outputs(context.Background())
	require.NoError(t, err)
	require.Len(t, outputs, 4)

	assert.Equal(t, domain.Output{
		Name: "eDP-1", Connected: true, Primary: true, Width: 1920, Height: 1080,
	}, outputs[0])
	assert.Equal(t, domain.Output{
		Name: "HDMI-1", Connected: true, Width: 1280, Height: 720,
	}, outputs[1])
	assert.Equal(t, domain.Output{Name: "VGA-1"}, outputs[2])
	assert.Equal(t, domain.Output{Name: "DP-1"}, outputs[3])
}

func TestOutputs_NoPrimaryMarker(t *testing.T) {
	fixture := `HDMI-1 connected 1280x720+0+0 (normal) 509mm x 286mm
   1280x720      60.00*
`
	ctrl := gomock.NewController(t)
	sys := mocks.NewMockSystem(ctrl)
	sys.EXPECT().Run(gomock.Any(), "xrandr", "--query").
		Return(domain.RunResult{Stdout: fixture}, nil)

	outputs, err := xrandr.NewQuery(sys).Outputs(context.Background())
	require.NoError(t, err)
	require.Len(t, outputs, 1)
	assert.False(t, outputs[0].Primary)
	assert.Equal(t, 1280, outputs[0].Width)
}

func TestOutputs_ToolingUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	sys := mocks.NewMockSystem(ctrl)
	sys.EXPECT().Run(gomock.Any(), "xrandr", "--query").
		Return(domain.RunResult{ExitCode: -1}, zerr.New("exec: xrandr: not found"))

	_, err := xrandr.NewQuery(sys).Outputs(context.Background())
	assert.ErrorIs(t, err, domain.ErrDisplayToolingUnavailable)
}

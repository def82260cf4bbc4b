package supervisor_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cloister/internal/core/domain"
	"go.trai.ch/cloister/internal/core/ports/mocks"
	"go.trai.ch/cloister/internal/engine/supervisor"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func TestSuppressChrome(t *testing.T) {
	ctrl := gomock.NewController(t)
	sys := mocks.NewMockSystem(ctrl)
	settings := domain.DefaultSettings()

	sys.EXPECT().Start(gomock.Any(), "unclutter", "-idle", "0.01", "-root").Return(nil)
	sys.EXPECT().Run(gomock.Any(), "xset", "-dpms").Return(domain.RunResult{}, nil)
	sys.EXPECT().Run(gomock.Any(), "xset", "s", "off").Return(domain.RunResult{}, nil)
	sys.EXPECT().Run(gomock.Any(), "xset", "s", "noblank").Return(domain.RunResult{}, nil)
	sys.EXPECT().Run(gomock.Any(), settings.ModesetScriptPath()).Return(domain.RunResult{}, nil)
	sys.EXPECT().Run(gomock.Any(), "fc-cache", "-fv").Return(domain.RunResult{}, nil)

	require.NoError(t, supervisor.SuppressChrome(context.Background(), sys, settings))
}

func TestSuppressChrome_PropagatesFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	sys := mocks.NewMockSystem(ctrl)
	settings := domain.DefaultSettings()
	failure := zerr.New("xset missing")

	sys.EXPECT().Start(gomock.Any(), "unclutter", "-idle", "0.01", "-root").Return(nil)
	sys.EXPECT().Run(gomock.Any(), "xset", "-dpms").Return(domain.RunResult{}, failure)
	sys.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.RunResult{}, nil).AnyTimes()

	err := supervisor.SuppressChrome(context.Background(), sys, settings)
	assert.ErrorIs(t, err, failure)
}

func TestSuppressChrome_CursorHideStartFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	sys := mocks.NewMockSystem(ctrl)
	failure := zerr.New("unclutter missing")

	sys.EXPECT().Start(gomock.Any(), "unclutter", "-idle", "0.01", "-root").Return(failure)

	err := supervisor.SuppressChrome(context.Background(), sys, domain.DefaultSettings())
	assert.ErrorIs(t, err, failure)
}

package app_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cloister/internal/adapters/telemetry"
	"go.trai.ch/cloister/internal/app"
	"go.trai.ch/cloister/internal/core/domain"
	"go.trai.ch/cloister/internal/core/ports/mocks"
	"go.trai.ch/cloister/internal/engine/display"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

type harness struct {
	loader     *mocks.MockConfigLoader
	sys        *mocks.MockSystem
	classifier *mocks.MockClassifier
	compat     *mocks.MockCompatibilityProvisioner
	query      *mocks.MockDisplayQuery
	store      *mocks.MockRecordStore
	logger     *mocks.MockLogger
	app        *app.App
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)
	h := &harness{
		loader:     mocks.NewMockConfigLoader(ctrl),
		sys:        mocks.NewMockSystem(ctrl),
		classifier: mocks.NewMockClassifier(ctrl),
		compat:     mocks.NewMockCompatibilityProvisioner(ctrl),
		query:      mocks.NewMockDisplayQuery(ctrl),
		store:      mocks.NewMockRecordStore(ctrl),
		logger:     mocks.NewMockLogger(ctrl),
	}
	h.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	h.logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	resolver := display.NewResolver(h.query, h.logger)
	h.app = app.New(
		h.loader, h.sys, h.classifier, h.compat,
		resolver, h.store, h.logger, telemetry.NewNoOpTracer())
	return h
}

func writeGameBinary(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte("\x7fELF"), 0o755))
	return path
}

func connectedPrimary() []domain.Output {
	return []domain.Output{
		{Name: "HDMI-1", Connected: true, Primary: true, Width: 1920, Height: 1080},
	}
}

func TestApp_Provision_UnsupportedWritesNothing(t *testing.T) {
	h := newHarness(t)
	binary := writeGameBinary(t, "game.bin")

	h.loader.EXPECT().Load().Return(domain.DefaultSettings(), nil)
	h.classifier.EXPECT().Classify(gomock.Any()).
		Return(domain.PlatformUnsupported, zerr.Wrap(domain.ErrUnsupportedPlatform, "unknown signature"))

	err := h.app.Provision(context.Background(), app.ProvisionOptions{BinaryPath: binary})

	// Strict mocks: any host mutation would fail the test as an
	// unexpected call.
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnsupportedPlatform)
}

func TestApp_Provision_MissingBinary(t *testing.T) {
	h := newHarness(t)

	h.loader.EXPECT().Load().Return(domain.DefaultSettings(), nil)

	err := h.app.Provision(context.Background(), app.ProvisionOptions{
		BinaryPath: filepath.Join(t.TempDir(), "missing"),
	})

	assert.ErrorIs(t, err, domain.ErrInvalidTarget)
}

func TestApp_Provision_NativePipeline(t *testing.T) {
	h := newHarness(t)
	binary := writeGameBinary(t, "game")
	settings := domain.DefaultSettings()

	h.loader.EXPECT().Load().Return(settings, nil)
	h.classifier.EXPECT().Classify(gomock.Any()).Return(domain.PlatformNative, nil)
	h.query.EXPECT().Outputs(gomock.Any()).Return(connectedPrimary(), nil)
	h.compat.EXPECT().Ensure(gomock.Any(), settings, domain.PlatformNative).
		Return(domain.CompatibilityEnvironment{}, nil)

	h.sys.EXPECT().CreateUser(gomock.Any(), "arcade").Return(nil)
	h.sys.EXPECT().Run(gomock.Any(), "passwd", "-d", "arcade").Return(domain.RunResult{}, nil)
	h.sys.EXPECT().WriteFile("/etc/greetd/config.toml", gomock.Any(), false).Return(nil)
	h.sys.EXPECT().DisableService(gomock.Any(), "sddm.service").Return(nil)
	h.sys.EXPECT().EnableService(gomock.Any(), "greetd.service").Return(nil)
	h.sys.EXPECT().Run(gomock.Any(), "bootctl", "set-timeout", "0").Return(domain.RunResult{}, nil)
	h.sys.EXPECT().MkdirAll("/opt/game").Return(nil)
	h.sys.EXPECT().MkdirAll("/opt/screenshots").Return(nil)
	h.sys.EXPECT().Run(gomock.Any(), "chmod", "777", "/opt/screenshots").Return(domain.RunResult{}, nil)
	h.sys.EXPECT().WriteFile("/home/arcade/.xinitrc", gomock.Any(), true).Return(nil)
	h.sys.EXPECT().WriteFile("/home/arcade/.config/openbox/rc.xml", gomock.Any(), false).Return(nil)

	var record domain.ProvisionRecord
	h.store.EXPECT().Get(binary).Return(nil, nil)
	gomock.InOrder(
		h.sys.EXPECT().WriteFile(settings.ModesetScriptPath(), gomock.Any(), true).
			DoAndReturn(func(_ string, content []byte, _ bool) error {
				assert.Contains(t, string(content), "--output HDMI-1 --mode 1920x1080 --rate 60")
				return nil
			}),
		h.store.EXPECT().Put(gomock.Any()).
			DoAndReturn(func(r domain.ProvisionRecord) error {
				record = r
				return nil
			}),
		// The autostart script goes down after the record, and the session
		// only becomes launchable once it exists.
		h.sys.EXPECT().WriteFile(settings.AutostartPath(), gomock.Any(), true).
			DoAndReturn(func(_ string, content []byte, _ bool) error {
				assert.Contains(t, string(content), "while true; do\n    "+binary+"\n")
				return nil
			}),
		h.sys.EXPECT().Run(gomock.Any(), "chown", "-R", "arcade:arcade", "/home/arcade").
			Return(domain.RunResult{}, nil),
	)

	err := h.app.Provision(context.Background(), app.ProvisionOptions{BinaryPath: binary})

	require.NoError(t, err)
	assert.Equal(t, binary, record.Binary)
	assert.Equal(t, "native", record.Platform)
	assert.Equal(t, "none", record.CompatibilityLayer)
	assert.NotEmpty(t, record.ModesetDigest)
	assert.NotEmpty(t, record.AutostartDigest)
	assert.False(t, record.Timestamp.IsZero())
}

func TestApp_Provision_OfflineForeignSkipsCompatibility(t *testing.T) {
	h := newHarness(t)
	binary := writeGameBinary(t, "game.exe")
	settings := domain.DefaultSettings()

	h.loader.EXPECT().Load().Return(settings, nil)
	h.classifier.EXPECT().Classify(gomock.Any()).Return(domain.PlatformForeign, nil)
	h.query.EXPECT().Outputs(gomock.Any()).Return(connectedPrimary(), nil)

	h.sys.EXPECT().CreateUser(gomock.Any(), "arcade").Return(nil)
	h.sys.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.RunResult{}, nil).AnyTimes()
	h.sys.EXPECT().WriteFile(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	h.sys.EXPECT().DisableService(gomock.Any(), "sddm.service").Return(nil)
	h.sys.EXPECT().EnableService(gomock.Any(), "greetd.service").Return(nil)
	h.sys.EXPECT().MkdirAll(gomock.Any()).Return(nil).Times(2)

	var record domain.ProvisionRecord
	h.store.EXPECT().Get(binary).Return(nil, nil)
	h.store.EXPECT().Put(gomock.Any()).DoAndReturn(func(r domain.ProvisionRecord) error {
		record = r
		return nil
	})

	err := h.app.Provision(context.Background(), app.ProvisionOptions{
		BinaryPath: binary,
		Offline:    true,
	})

	// Ensure was never expected on the compatibility mock, so reaching it
	// would have failed the test.
	require.NoError(t, err)
	assert.Equal(t, "foreign", record.Platform)
	assert.Equal(t, "none (offline)", record.CompatibilityLayer)
}

func TestApp_Provision_RerunProducesSameArtifacts(t *testing.T) {
	h := newHarness(t)
	binary := writeGameBinary(t, "game")
	settings := domain.DefaultSettings()

	h.loader.EXPECT().Load().Return(settings, nil).Times(2)
	h.classifier.EXPECT().Classify(gomock.Any()).Return(domain.PlatformNative, nil).Times(2)
	h.query.EXPECT().Outputs(gomock.Any()).Return(connectedPrimary(), nil).Times(2)
	h.compat.EXPECT().Ensure(gomock.Any(), settings, domain.PlatformNative).
		Return(domain.CompatibilityEnvironment{}, nil).Times(2)

	h.sys.EXPECT().CreateUser(gomock.Any(), "arcade").Return(nil).Times(2)
	h.sys.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.RunResult{}, nil).AnyTimes()
	h.sys.EXPECT().WriteFile(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	h.sys.EXPECT().DisableService(gomock.Any(), "sddm.service").Return(nil).Times(2)
	h.sys.EXPECT().EnableService(gomock.Any(), "greetd.service").Return(nil).Times(2)
	h.sys.EXPECT().MkdirAll(gomock.Any()).Return(nil).Times(4)

	var records []domain.ProvisionRecord
	// The second pass sees the first record and detects unchanged artifacts.
	h.store.EXPECT().Get(binary).DoAndReturn(func(string) (*domain.ProvisionRecord, error) {
		if len(records) == 0 {
			return nil, nil
		}
		return &records[0], nil
	}).Times(2)
	h.store.EXPECT().Put(gomock.Any()).DoAndReturn(func(r domain.ProvisionRecord) error {
		records = append(records, r)
		return nil
	}).Times(2)

	opts := app.ProvisionOptions{BinaryPath: binary}
	require.NoError(t, h.app.Provision(context.Background(), opts))
	require.NoError(t, h.app.Provision(context.Background(), opts))

	require.Len(t, records, 2)
	assert.Equal(t, records[0].ModesetDigest, records[1].ModesetDigest)
	assert.Equal(t, records[0].AutostartDigest, records[1].AutostartDigest)
}

func TestApp_Provision_ResolveFailureStopsBeforeWrites(t *testing.T) {
	h := newHarness(t)
	binary := writeGameBinary(t, "game")

	h.loader.EXPECT().Load().Return(domain.DefaultSettings(), nil)
	h.classifier.EXPECT().Classify(gomock.Any()).Return(domain.PlatformNative, nil)
	h.query.EXPECT().Outputs(gomock.Any()).
		Return([]domain.Output{{Name: "HDMI-1", Connected: true}}, nil)

	err := h.app.Provision(context.Background(), app.ProvisionOptions{BinaryPath: binary})

	assert.ErrorIs(t, err, domain.ErrNoPrimaryOutput)
}

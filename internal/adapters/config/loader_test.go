package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cloister/internal/adapters/config"
	"go.trai.ch/cloister/internal/core/domain"
)

func writeConfig(t *testing.T, content string) *config.FileConfigLoader {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cloister.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return &config.FileConfigLoader{Path: path}
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	loader := &config.FileConfigLoader{Path: filepath.Join(t.TempDir(), "absent.yaml")}

	settings, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), settings)
}

func TestLoad_OverlaysOnDefaults(t *testing.T) {
	loader := writeConfig(t, `
user: kiosk
restartDelay: 2s
`)

	settings, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, "kiosk", settings.User)
	assert.Equal(t, 2*time.Second, settings.RestartDelay)
	// Untouched fields keep their defaults.
	assert.Equal(t, "/opt/game", settings.GameDir)
	assert.Equal(t, "qterminal", settings.Terminal)
	// Derived paths follow the configured user.
	assert.Equal(t, "/home/kiosk/.wine", settings.WinePrefix())
	assert.Equal(t, "/home/kiosk/.config/openbox/autostart", settings.AutostartPath())
}

func TestLoad_InvalidYAML(t *testing.T) {
	loader := writeConfig(t, "user: [broken")

	_, err := loader.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoad_InvalidDelay(t *testing.T) {
	loader := writeConfig(t, "restartDelay: soon")
	_, err := loader.Load()
	require.Error(t, err)

	loader = writeConfig(t, "restartDelay: -1s")
	_, err = loader.Load()
	require.Error(t, err)
}

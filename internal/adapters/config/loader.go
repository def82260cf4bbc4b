// Package config provides the configuration loader for cloister.
package config

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"go.trai.ch/cloister/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where a host-wide kiosk configuration lives.
const DefaultPath = "/etc/cloister.yaml"

// FileConfigLoader implements ports.ConfigLoader using a YAML file. A
// missing file is not an error: the kiosk defaults apply.
type FileConfigLoader struct {
	Path string
}

// NewLoader creates a loader reading from the default host path.
func NewLoader() *FileConfigLoader {
	return &FileConfigLoader{Path: DefaultPath}
}

// Load reads the configuration file and overlays it on the defaults.
func (l *FileConfigLoader) Load() (domain.Settings, error) {
	settings := domain.DefaultSettings()

	data, err := os.ReadFile(l.Path) //nolint:gosec // path is fixed or test-provided
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return settings, nil
		}
		return settings, zerr.Wrap(err, "failed to read config file")
	}

	var file Cloisterfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return settings, zerr.Wrap(err, "failed to parse config file")
	}

	if file.User != "" {
		settings.User = file.User
	}
	if file.GameDir != "" {
		settings.GameDir = file.GameDir
	}
	if file.ScreenshotsDir != "" {
		settings.ScreenshotsDir = file.ScreenshotsDir
	}
	if file.Terminal != "" {
		settings.Terminal = file.Terminal
	}
	if file.StateFile != "" {
		settings.StateFile = file.StateFile
	}
	if file.RestartDelay != "" {
		delay, err := time.ParseDuration(file.RestartDelay)
		if err != nil {
			return settings, zerr.Wrap(err, "invalid restartDelay")
		}
		if delay <= 0 {
			return settings, zerr.With(zerr.New("restartDelay must be positive"), "value", file.RestartDelay)
		}
		settings.RestartDelay = delay
	}

	return settings, nil
}

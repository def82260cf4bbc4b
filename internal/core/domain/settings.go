package domain

import (
	"path/filepath"
	"time"
)

// Settings holds the kiosk-wide configuration. Values come from
// cloister.yaml when present; the zero-config defaults match the classic
// arcade layout.
type Settings struct {
	// User is the dedicated kiosk session account.
	User string
	// GameDir is where game binaries are installed.
	GameDir string
	// ScreenshotsDir receives scrot captures from the screenshot keybinding.
	ScreenshotsDir string
	// Terminal is the maintenance terminal bound to the service keybindings.
	Terminal string
	// RestartDelay is the fixed supervised-relaunch pause.
	RestartDelay time.Duration
	// StateFile is where the provision audit record is stored.
	StateFile string
}

// DefaultSettings returns the built-in kiosk configuration.
func DefaultSettings() Settings {
	return Settings{
		User:           "arcade",
		GameDir:        "/opt/game",
		ScreenshotsDir: "/opt/screenshots",
		Terminal:       "qterminal",
		RestartDelay:   DefaultRestartDelay,
		StateFile:      "/var/lib/cloister/provision.json",
	}
}

// Home returns the kiosk user's home directory.
func (s Settings) Home() string {
	return filepath.Join("/home", s.User)
}

// WinePrefix returns the kiosk user's compatibility root.
func (s Settings) WinePrefix() string {
	return filepath.Join(s.Home(), ".wine")
}

// ScreenLayoutDir returns the directory holding the mode-set script.
func (s Settings) ScreenLayoutDir() string {
	return filepath.Join(s.Home(), ".screenlayout")
}

// ModesetScriptPath returns the absolute path of the mode-set script.
func (s Settings) ModesetScriptPath() string {
	return filepath.Join(s.ScreenLayoutDir(), "arcade_resolution.sh")
}

// OpenboxDir returns the kiosk user's openbox configuration directory.
func (s Settings) OpenboxDir() string {
	return filepath.Join(s.Home(), ".config", "openbox")
}

// AutostartPath returns the absolute path of the session autostart script.
func (s Settings) AutostartPath() string {
	return filepath.Join(s.OpenboxDir(), "autostart")
}

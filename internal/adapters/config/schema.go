package config

// Cloisterfile represents the structure of the cloister.yaml configuration
// file. Every field is optional; absent fields keep their defaults.
type Cloisterfile struct {
	User           string `yaml:"user"`
	GameDir        string `yaml:"gameDir"`
	ScreenshotsDir string `yaml:"screenshotsDir"`
	Terminal       string `yaml:"terminal"`
	RestartDelay   string `yaml:"restartDelay"`
	StateFile      string `yaml:"stateFile"`
}

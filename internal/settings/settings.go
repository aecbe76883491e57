// Package settings loads the operator-editable TOML file that configures
// the application shell: where state lives, how fast playback starts, and
// terminal behavior.
package settings

import (
	"errors"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// Settings is the launch-time configuration. Everything here has a working
// default so the file is optional.
type Settings struct {
	DataDir      string  `toml:"data_dir"`
	DefaultSpeed float64 `toml:"default_speed"`
	AltScreen    bool    `toml:"alt_screen"`
	FrameRate    int     `toml:"frame_rate"`
}

// Default returns the settings used when no file is present.
func Default() Settings {
	return Settings{
		DataDir:      defaultDataDir(),
		DefaultSpeed: 1,
		AltScreen:    true,
		FrameRate:    30,
	}
}

// Load reads the settings file at path. A missing file yields defaults; a
// malformed one yields defaults plus the parse error so callers can warn
// without refusing to start.
func Load(path string) (Settings, error) {
	s := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return s, err
	}
	if err := toml.Unmarshal(data, &s); err != nil {
		return Default(), err
	}
	if s.DataDir == "" {
		s.DataDir = defaultDataDir()
	}
	if s.DefaultSpeed <= 0 {
		s.DefaultSpeed = 1
	}
	if s.FrameRate <= 0 {
		s.FrameRate = 30
	}
	return s, nil
}

// DefaultPath is the conventional settings location under the user config
// dir.
func DefaultPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "teleprompt", "settings.toml")
	}
	return filepath.Join(base, "teleprompt", "settings.toml")
}

func defaultDataDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "teleprompt", "state")
	}
	return filepath.Join(base, "teleprompt", "state")
}

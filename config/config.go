// Package config loads the game configuration from a TOML file under
// the XDG config directory, creating it with defaults on first run.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the on-disk game configuration. CLI flags override these
// values after loading.
type Config struct {
	// Sound enables drop feedback tones.
	Sound bool `toml:"sound"`
	// Seed fixes the hidden-answer roll; 0 means a fresh roll per run.
	Seed int64 `toml:"seed"`
	// Debug writes a debug log under the XDG state directory.
	Debug bool `toml:"debug"`
	// Radius caps the circle radius in columns; 0 fits the screen.
	Radius int `toml:"radius"`
	// MarginX and MarginY keep columns and rows clear around the
	// diagram.
	MarginX int `toml:"margin_x"`
	MarginY int `toml:"margin_y"`
}

// Default returns the configuration written on first run.
func Default() Config {
	return Config{Sound: true, MarginX: 2}
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or its default path.
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetXDGStateHome returns XDG_STATE_HOME or its default path. Debug
// logs live here.
func GetXDGStateHome() string {
	if xdgState := os.Getenv("XDG_STATE_HOME"); xdgState != "" {
		return xdgState
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".local", "state")
}

// GetConfigFilePath returns the path to the config file.
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "venndrop", "config.toml")
}

// GetLogFilePath returns the path of the debug log file.
func GetLogFilePath() string {
	return filepath.Join(GetXDGStateHome(), "venndrop", "debug.log")
}

// Load reads the config file, creating it with defaults if missing.
func Load() (Config, error) {
	configPath := GetConfigFilePath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig()
	}

	var cfg Config
	if _, err := toml.DecodeFile(configPath, &cfg); err != nil {
		return Config{}, fmt.Errorf("error decoding config file: %w", err)
	}
	return cfg, nil
}

func createDefaultConfig() (Config, error) {
	configPath := GetConfigFilePath()
	cfg := Default()

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return Config{}, fmt.Errorf("error creating config directory: %w", err)
	}
	f, err := os.Create(configPath)
	if err != nil {
		return Config{}, fmt.Errorf("error creating config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return Config{}, fmt.Errorf("error writing default config: %w", err)
	}
	return cfg, nil
}

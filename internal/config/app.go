package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Launcher defaults
const (
	DefaultConfigPath     = "tracker-launcher.yaml"
	DefaultTrackerPath    = "./build/tracker"
	DefaultSettingsPath   = "last_settings.json"
	DefaultPickerStartDir = "/home/"
	DefaultLogLevel       = "info"
	DefaultWindowWidth    = 700
	DefaultWindowHeight   = 400

	// ConfigPathEnv overrides the location of the launcher config file
	ConfigPathEnv = "TRACKER_LAUNCHER_CONFIG"
)

// Window describes the main window geometry
type Window struct {
	Width     float32 `yaml:"width"`
	Height    float32 `yaml:"height"`
	Resizable bool    `yaml:"resizable"`
}

// App holds the launcher wiring: where the tracker lives, where the
// settings record is kept and how the pickers start.
type App struct {
	TrackerPath    string        `yaml:"tracker_path"`
	SettingsPath   string        `yaml:"settings_path"`
	PickerStartDir string        `yaml:"picker_start_dir"`
	LogLevel       string        `yaml:"log_level"`
	Timeout        time.Duration `yaml:"timeout"` // 0 means wait for the tracker indefinitely
	Window         Window        `yaml:"window"`
}

// DefaultApp returns the launcher configuration used when no file is present
func DefaultApp() *App {
	return &App{
		TrackerPath:    DefaultTrackerPath,
		SettingsPath:   DefaultSettingsPath,
		PickerStartDir: DefaultPickerStartDir,
		LogLevel:       DefaultLogLevel,
		Window: Window{
			Width:  DefaultWindowWidth,
			Height: DefaultWindowHeight,
		},
	}
}

// ConfigPath returns the config file location, honouring ConfigPathEnv
func ConfigPath() string {
	if path := os.Getenv(ConfigPathEnv); path != "" {
		return path
	}
	return DefaultConfigPath
}

// LoadApp reads the launcher config from path. A missing file yields the
// defaults; keys absent from the file keep their default values.
func LoadApp(path string) (*App, error) {
	cfg := DefaultApp()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks values that cannot be repaired by defaults
func (c *App) Validate() error {
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative: %s", c.Timeout)
	}
	if c.Window.Width < 0 || c.Window.Height < 0 {
		return fmt.Errorf("window size must not be negative: %.0fx%.0f", c.Window.Width, c.Window.Height)
	}
	return nil
}

// applyDefaults fills values left blank in the file
func (c *App) applyDefaults() {
	if c.TrackerPath == "" {
		c.TrackerPath = DefaultTrackerPath
	}
	if c.SettingsPath == "" {
		c.SettingsPath = DefaultSettingsPath
	}
	if c.PickerStartDir == "" {
		c.PickerStartDir = DefaultPickerStartDir
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.Window.Width == 0 {
		c.Window.Width = DefaultWindowWidth
	}
	if c.Window.Height == 0 {
		c.Window.Height = DefaultWindowHeight
	}
}

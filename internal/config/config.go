// Package config handles loading and managing pomobar configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config represents the pomobar configuration file.
type Config struct {
	Durations DurationsConfig `yaml:"durations" mapstructure:"durations"`
	Render    RenderConfig    `yaml:"render" mapstructure:"render"`
	Socket    SocketConfig    `yaml:"socket" mapstructure:"socket"`
	Notify    NotifyConfig    `yaml:"notify" mapstructure:"notify"`

	// Internal: path to the config file
	configPath string
}

// DurationsConfig holds the phase lengths.
type DurationsConfig struct {
	Work  time.Duration `yaml:"work" mapstructure:"work"`
	Break time.Duration `yaml:"break" mapstructure:"break"`
}

// MarshalYAML writes durations in their human form ("25m0s"), not as
// nanosecond integers.
func (d DurationsConfig) MarshalYAML() (interface{}, error) {
	return struct {
		Work  string `yaml:"work"`
		Break string `yaml:"break"`
	}{d.Work.String(), d.Break.String()}, nil
}

// RenderConfig holds the status-line appearance and the loop cadence.
// Tick is the bounded wait window per cycle; it sets both the render
// cadence and the worst-case command latency.
type RenderConfig struct {
	WorkGlyph   string        `yaml:"work_glyph" mapstructure:"work_glyph"`
	BreakGlyph  string        `yaml:"break_glyph" mapstructure:"break_glyph"`
	PausedGlyph string        `yaml:"paused_glyph" mapstructure:"paused_glyph"`
	Tick        time.Duration `yaml:"tick" mapstructure:"tick"`
}

// MarshalYAML writes the tick in its human form.
func (r RenderConfig) MarshalYAML() (interface{}, error) {
	return struct {
		WorkGlyph   string `yaml:"work_glyph"`
		BreakGlyph  string `yaml:"break_glyph"`
		PausedGlyph string `yaml:"paused_glyph"`
		Tick        string `yaml:"tick"`
	}{r.WorkGlyph, r.BreakGlyph, r.PausedGlyph, r.Tick.String()}, nil
}

// SocketConfig holds the control socket override. An empty path means
// the runtime-directory default.
type SocketConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// NotifyConfig holds desktop notification settings.
type NotifyConfig struct {
	Disabled  bool          `yaml:"disabled" mapstructure:"disabled"`
	WorkDone  MessageConfig `yaml:"work_done" mapstructure:"work_done"`
	BreakDone MessageConfig `yaml:"break_done" mapstructure:"break_done"`
}

// MessageConfig is the text of one notification.
type MessageConfig struct {
	Summary string `yaml:"summary" mapstructure:"summary"`
	Body    string `yaml:"body" mapstructure:"body"`
}

// ConfigFilename is the name of the config file inside the pomobar
// config directory.
const ConfigFilename = "config.yaml"

// DefaultConfigPath returns the standard config file location,
// honoring $XDG_CONFIG_HOME through os.UserConfigDir.
func DefaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config directory: %w", err)
	}
	return filepath.Join(dir, "pomobar", ConfigFilename), nil
}

// Load reads the config file from the standard location.
func Load() (*Config, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath loads configuration from a specific path.
func LoadFromPath(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.configPath = configPath
	return MergeWithDefaults(&cfg), nil
}

// LoadOrDefault tries to load config, returns defaults if not found.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return DefaultConfig()
	}
	return cfg
}

// ConfigPath returns the path to the loaded config file, or empty when
// running on defaults.
func (c *Config) ConfigPath() string {
	return c.configPath
}

// Save writes the configuration to path as yaml, creating parent
// directories as needed.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	header := []byte("# pomobar configuration\n")
	if err := os.WriteFile(path, append(header, data...), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

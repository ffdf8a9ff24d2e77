package core

import (
	"fmt"

	"github.com/spf13/viper"
)

// ColorMode controls when the table renderer emits colored cells.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Config holds the session settings read from .tasklistrc.
type Config struct {
	DataFile      string
	ColorMode     ColorMode
	EventsEnabled bool
	EventsFile    string
}

// ConfigurationManager defines the interface for loading the .tasklistrc
// configuration file.
type ConfigurationManager interface {
	LoadConfig() (*Config, error)
}

// viperConfigManager implements ConfigurationManager using Viper for
// reading the YAML configuration file.
type viperConfigManager struct {
	// basePath is the directory where .tasklistrc resides.
	basePath string
}

// NewConfigurationManager creates a ConfigurationManager that reads the
// configuration file relative to basePath.
func NewConfigurationManager(basePath string) ConfigurationManager {
	return &viperConfigManager{basePath: basePath}
}

// defaultConfig returns a Config populated with sensible defaults.
func defaultConfig() *Config {
	return &Config{
		DataFile:      "tasklist.json",
		ColorMode:     ColorAuto,
		EventsEnabled: true,
		EventsFile:    ".tasklist_events.jsonl",
	}
}

// LoadConfig reads the .tasklistrc file from the base path using Viper.
// If the file does not exist, sensible defaults are returned.
func (cm *viperConfigManager) LoadConfig() (*Config, error) {
	cfg := defaultConfig()

	v := viper.New()
	v.SetConfigName(".tasklistrc")
	v.SetConfigType("yaml")
	v.AddConfigPath(cm.basePath)

	// Set Viper defaults so missing keys fall back gracefully.
	v.SetDefault("data.file", cfg.DataFile)
	v.SetDefault("color.mode", string(cfg.ColorMode))
	v.SetDefault("events.enabled", cfg.EventsEnabled)
	v.SetDefault("events.file", cfg.EventsFile)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// No config file found — return defaults.
			return cfg, nil
		}
		return nil, fmt.Errorf("reading .tasklistrc: %w", err)
	}

	cfg.DataFile = v.GetString("data.file")
	cfg.EventsEnabled = v.GetBool("events.enabled")
	cfg.EventsFile = v.GetString("events.file")

	switch mode := ColorMode(v.GetString("color.mode")); mode {
	case ColorAuto, ColorAlways, ColorNever:
		cfg.ColorMode = mode
	default:
		return nil, fmt.Errorf("reading .tasklistrc: color.mode must be auto, always, or never, got %q", mode)
	}

	return cfg, nil
}

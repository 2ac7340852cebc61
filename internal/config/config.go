// Package config loads weavesolve settings from an optional YAML file.
//
// Precedence, lowest to highest: Default(), the config file, command-line
// flags (applied by the caller after Load).
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// EnvPath names a config file when no --config flag is given.
const EnvPath = "WEAVESOLVE_CONFIG"

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ErrInvalid is returned by Validate.
var ErrInvalid = errors.New("config: invalid value")

// Config is the full set of user-tunable settings.
type Config struct {
	// Dictionary is "embedded", "system", or a path to a word file.
	Dictionary string `yaml:"dictionary"`

	// Length selects the word length for the system dictionary.
	// 0 means the embedded length.
	Length int `yaml:"length"`

	// Color is one of auto, always, never.
	Color string `yaml:"color"`

	// MaxDepth bounds ladder length in steps; 0 disables the bound.
	MaxDepth int `yaml:"max_depth"`

	Log       LogConfig       `yaml:"log"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// LogConfig controls the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// TelemetryConfig selects the OpenTelemetry exporter.
type TelemetryConfig struct {
	Exporter string `yaml:"exporter"` // none, stdout
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Dictionary: "embedded",
		Color:      ColorAuto,
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
		Telemetry: TelemetryConfig{
			Exporter: "none",
		},
	}
}

// Load reads path over Default(). An empty path falls back to $WEAVESOLVE_CONFIG;
// if that is empty too, the defaults are returned unchanged.
//
// Load does not validate: callers overlay flags first and then call Validate
// on the merged result, so a flag can correct a bad file value.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = os.Getenv(EnvPath)
	}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks enumerated fields and ranges.
func (c Config) Validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%w: color %q (want auto, always or never)", ErrInvalid, c.Color)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q", ErrInvalid, c.Log.Format)
	}
	switch c.Telemetry.Exporter {
	case "none", "stdout":
	default:
		return fmt.Errorf("%w: telemetry.exporter %q", ErrInvalid, c.Telemetry.Exporter)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("%w: max_depth %d", ErrInvalid, c.MaxDepth)
	}
	if c.Length < 0 {
		return fmt.Errorf("%w: length %d", ErrInvalid, c.Length)
	}
	if c.Dictionary == "" {
		return fmt.Errorf("%w: dictionary is empty", ErrInvalid)
	}
	return nil
}

// Marshal renders c as YAML, e.g. for a starter config file.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

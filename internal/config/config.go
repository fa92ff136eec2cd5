// Package config loads tinyc settings from TOML or YAML files.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config holds the complete tinyc configuration
type Config struct {
	Parse  ParseConfig  `toml:"parse" yaml:"parse"`
	Symtab SymtabConfig `toml:"symtab" yaml:"symtab"`
	Output OutputConfig `toml:"output" yaml:"output"`
	Log    LogConfig    `toml:"log" yaml:"log"`
	Trace  bool         `toml:"trace" yaml:"trace"`
	Verify bool         `toml:"verify" yaml:"verify"`
}

// ParseConfig holds parser settings
type ParseConfig struct {
	Strict bool `toml:"strict" yaml:"strict"`
}

// SymtabConfig holds symbol table settings
type SymtabConfig struct {
	FirstLocation int `toml:"first_location" yaml:"first_location"`
}

// OutputConfig holds output settings
type OutputConfig struct {
	Format string `toml:"format" yaml:"format"` // text, json or yaml
	Color  string `toml:"color" yaml:"color"`   // auto, always or never
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string `toml:"level" yaml:"level"` // debug, info, warn or error
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Parse:  ParseConfig{Strict: true},
		Output: OutputConfig{Format: "text", Color: "auto"},
		Log:    LogConfig{Level: "warn"},
	}
}

// Load loads configuration from a TOML (.toml) or YAML (.yaml, .yml) file.
// Settings missing from the file keep their default values.
func Load(path string) (*Config, error) {
	// Expand environment variables in path
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	cfg := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q: use .toml, .yaml or .yml", ext)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyDefaults sets default values for settings left empty
func (c *Config) applyDefaults() {
	if c.Output.Format == "" {
		c.Output.Format = "text"
	}
	if c.Output.Color == "" {
		c.Output.Color = "auto"
	}
	if c.Log.Level == "" {
		c.Log.Level = "warn"
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if !oneOf(c.Output.Format, "text", "json", "yaml") {
		return fmt.Errorf("invalid output.format %q: want text, json or yaml", c.Output.Format)
	}
	if !oneOf(c.Output.Color, "auto", "always", "never") {
		return fmt.Errorf("invalid output.color %q: want auto, always or never", c.Output.Color)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	if c.Symtab.FirstLocation < 0 {
		return fmt.Errorf("invalid symtab.first_location %d: must not be negative", c.Symtab.FirstLocation)
	}
	return nil
}

// SlogLevel returns the configured log level.
// It assumes the configuration has been validated.
func (c *Config) SlogLevel() slog.Level {
	level, _ := ParseLevel(c.Log.Level)
	return level
}

// ParseLevel converts a level name to a slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("invalid log.level %q: want debug, info, warn or error", name)
}

func oneOf(s string, choices ...string) bool {
	for _, c := range choices {
		if s == c {
			return true
		}
	}
	return false
}

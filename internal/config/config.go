// Package config loads cmd/sketchsolve's optional settings file,
// grounded on the cogentcore example's tomlx package: a direct
// go-toml/v2 Unmarshal over a plain struct, no schema validation layer.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the settings cmd/sketchsolve reads from an optional
// sketchsolve.toml file. CLI flags override these; these override the
// defaults returned by [Default].
type Config struct {
	Epsilon      float64 `toml:"epsilon"`
	LogLevel     string  `toml:"log_level"`
	LogDir       string  `toml:"log_dir"`
	OutputFormat string  `toml:"output_format"`
}

// Default returns the built-in settings used when no config file is
// present and no flags override them.
func Default() Config {
	return Config{
		Epsilon:      1e-3,
		LogLevel:     "info",
		LogDir:       ".",
		OutputFormat: "json",
	}
}

// Load reads and parses the TOML file at path, layering its fields over
// [Default]. A missing file is not an error: it simply returns the
// defaults, since the settings file is optional.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports an error for settings that would make the CLI
// misbehave (a non-positive epsilon, or an unrecognized output format).
func (c Config) Validate() error {
	if c.Epsilon <= 0 {
		return fmt.Errorf("config: epsilon must be positive, got %g", c.Epsilon)
	}
	switch c.OutputFormat {
	case "json", "table":
	default:
		return fmt.Errorf("config: output_format must be %q or %q, got %q", "json", "table", c.OutputFormat)
	}
	return nil
}

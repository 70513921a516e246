package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up in the working directory.
const DefaultPath = "steptree.yaml"

// Output formats understood by the run command.
const (
	FormatAuto     = "auto"
	FormatText     = "text"
	FormatColor    = "color"
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
)

// Config is the content of steptree.yaml. Every key is optional.
type Config struct {
	Prefix      string `yaml:"prefix"`
	Passthrough bool   `yaml:"passthrough"`
	Lenient     bool   `yaml:"lenient"`
	Format      string `yaml:"format"`
	Indent      int    `yaml:"indent"`
	MaxLevel    uint8  `yaml:"max_level"`
	MetricsAddr string `yaml:"metrics_addr"`
	Debug       bool   `yaml:"debug"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Format: FormatAuto,
		Indent: 2,
	}
}

// Load reads the YAML file at path over the defaults.
// A missing file is not an error unless required is set.
func Load(path string, required bool) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks values that cannot be fixed up silently.
func (c Config) Validate() error {
	switch c.Format {
	case FormatAuto, FormatText, FormatColor, FormatMarkdown, FormatJSON:
	default:
		return fmt.Errorf("unknown format %q", c.Format)
	}
	if c.Indent < 0 {
		return fmt.Errorf("indent must not be negative, got %d", c.Indent)
	}
	return nil
}

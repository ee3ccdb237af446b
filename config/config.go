package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/kilianp07/shiftcheck/core/metrics"
)

// EnvPrefix marks environment variables that override file settings.
// Nested keys are separated by a double underscore, e.g.
// SC_HARNESS__NUM_TESTS=10.
const EnvPrefix = "SC_"

type Config struct {
	Problem ProblemConfig  `json:"problem"`
	Harness HarnessConfig  `json:"harness"`
	Metrics metrics.Config `json:"metrics"`
	Logging LoggingConfig  `json:"logging"`
}

// Default returns the configuration of a standard run.
func Default() Config {
	cfg := Config{
		Problem: ProblemConfig{
			NumUnits:        DefaultNumUnits,
			ShiftLength:     DefaultShiftLength,
			MinAvailability: DefaultMinAvailability,
			MaxAvailability: DefaultMaxAvailability,
		},
		Harness: HarnessConfig{NumTests: DefaultNumTests, Workers: 1},
	}
	cfg.SetDefaults()
	return cfg
}

// SetDefaults fills unset optional fields of every section.
func (c *Config) SetDefaults() {
	c.Harness.SetDefaults()
	c.Metrics.SetDefaults()
	c.Logging.SetDefaults()
}

// Validate checks every section.
func (c Config) Validate() error {
	if err := c.Problem.Validate(); err != nil {
		return fmt.Errorf("problem: %w", err)
	}
	if err := c.Harness.Validate(); err != nil {
		return fmt.Errorf("harness: %w", err)
	}
	if err := c.Metrics.Validate(); err != nil {
		return fmt.Errorf("metrics: %w", err)
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	return nil
}

// Load reads the configuration file at path, applies environment overrides
// and validates the result. An empty path uses the defaults plus environment.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	if path != "" {
		ext := strings.ToLower(filepath.Ext(path))
		var parser koanf.Parser
		switch ext {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		default:
			return nil, fmt.Errorf("unsupported config format: %s", ext)
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, err
		}
	}
	// Optional environment overrides
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), strings.ToLower(EnvPrefix))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	cfg := Default()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

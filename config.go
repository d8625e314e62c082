package paralg

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// WorkersEnv is the environment variable that overrides Config.Workers.
const WorkersEnv = "PARALG_WORKERS"

// Config holds the process-wide settings of this module.
type Config struct {
	// Workers is the degree of parallelism used by the default executor.
	// 0 selects DefaultWorkers.
	Workers int `yaml:"workers"`
}

// DefaultConfig returns a Config that uses runtime.GOMAXPROCS(0) workers.
func DefaultConfig() Config {
	return Config{}
}

// Validate checks the configuration for invalid values.
func (c Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must be >= 0, got %d", ErrInvalidWorkers, c.Workers)
	}
	return nil
}

// ParseConfig decodes a YAML document into a Config, applies the
// PARALG_WORKERS environment override, and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and parses the YAML configuration file at path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(data)
}

func (c *Config) applyEnv() error {
	value, ok := os.LookupEnv(WorkersEnv)
	if !ok || value == "" {
		return nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("%w: %s=%q", ErrInvalidWorkers, WorkersEnv, value)
	}
	c.Workers = n
	return nil
}

// Configure applies cfg to the process-wide settings. Like SetWorkers, it
// succeeds at most once, before the degree of parallelism is first read.
func Configure(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	return SetWorkers(cfg.Workers)
}

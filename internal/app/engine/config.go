package engine

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// EngineMock is the only engine currently shipped.
const EngineMock = "mock"

// Config selects which transcription engine to run and carries its settings.
type Config struct {
	Engine   string            `yaml:"engine"`
	Settings map[string]string `yaml:"settings,omitempty"`
}

// DefaultConfig returns the configuration used when no config file is given:
// the mock engine with its built-in placeholder text.
func DefaultConfig() *Config {
	return &Config{Engine: EngineMock}
}

// LoadConfig reads an engine configuration from a YAML file. An empty path
// returns DefaultConfig.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}

	path = os.ExpandEnv(path)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read engine config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse engine config: %w", err)
	}
	if cfg.Engine == "" {
		cfg.Engine = EngineMock
	}
	return &cfg, nil
}

// New constructs the engine selected by the configuration.
func New(cfg *Config) (Engine, error) {
	switch cfg.Engine {
	case EngineMock:
		return NewMockEngine(cfg.Settings["template"]), nil
	default:
		return nil, fmt.Errorf("unknown engine %q", cfg.Engine)
	}
}

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cdchapman/rdf/errors"
)

// Config is the canonicalizer service configuration.
type Config struct {
	// NATS holds the connection and stream settings.
	NATS NATSConfig `yaml:"nats"`

	// MetricsAddr is the listen address for the Prometheus endpoint.
	MetricsAddr string `yaml:"metrics_addr"`

	// StrictValidation rejects records whose literal fails its datatype
	// grammar. When false, invalid literals pass through unchanged.
	StrictValidation bool `yaml:"strict_validation"`
}

// NATSConfig holds the NATS and JetStream settings.
type NATSConfig struct {
	URL           string `yaml:"url"`
	Stream        string `yaml:"stream"`
	Subject       string `yaml:"subject"`
	OutputSubject string `yaml:"output_subject"`
	Durable       string `yaml:"durable"`
}

// DefaultConfig returns a configuration suitable for local development.
func DefaultConfig() Config {
	return Config{
		NATS: NATSConfig{
			URL:           "nats://localhost:4222",
			Stream:        "LITERALS",
			Subject:       "literals.raw",
			OutputSubject: "literals.canonical",
			Durable:       "rdf-canonicalizer",
		},
		MetricsAddr:      ":9090",
		StrictValidation: true,
	}
}

// Load reads a YAML configuration file, applying defaults for absent
// fields.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.WrapFatal(err, "Config", "Load", "read config file")
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.WrapFatal(err, "Config", "Load", "parse YAML")
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the configuration for missing required fields.
func (c Config) Validate() error {
	if c.NATS.URL == "" {
		return errors.WrapFatal(
			fmt.Errorf("nats.url: %w", errors.ErrMissingConfig),
			"Config", "Validate", "check NATS settings")
	}
	if c.NATS.Stream == "" {
		return errors.WrapFatal(
			fmt.Errorf("nats.stream: %w", errors.ErrMissingConfig),
			"Config", "Validate", "check NATS settings")
	}
	if c.NATS.Subject == "" {
		return errors.WrapFatal(
			fmt.Errorf("nats.subject: %w", errors.ErrMissingConfig),
			"Config", "Validate", "check NATS settings")
	}
	if c.NATS.OutputSubject == "" {
		return errors.WrapFatal(
			fmt.Errorf("nats.output_subject: %w", errors.ErrMissingConfig),
			"Config", "Validate", "check NATS settings")
	}
	if c.NATS.Subject == c.NATS.OutputSubject {
		return errors.WrapFatal(
			fmt.Errorf("nats.subject and nats.output_subject must differ: %w",
				errors.ErrInvalidConfig),
			"Config", "Validate", "check NATS settings")
	}
	return nil
}

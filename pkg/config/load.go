package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/XiaoConstantine/evo-go/pkg/errors"
)

// Load reads, defaults, and validates a YAML configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithFields(
			errors.Wrap(err, errors.InvalidConfig, "failed to read config file"),
			errors.Fields{"path": path})
	}
	return Parse(data)
}

// Parse decodes YAML bytes into a defaulted, validated Config.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, errors.InvalidConfig, "failed to parse config")
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the config's field constraints.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		if invalid, ok := err.(validator.ValidationErrors); ok && len(invalid) > 0 {
			first := invalid[0]
			return errors.WithFields(
				errors.New(errors.ValidationFailed, "invalid configuration value"),
				errors.Fields{
					"field":      first.Namespace(),
					"constraint": first.Tag(),
				})
		}
		return errors.Wrap(err, errors.ValidationFailed, "config validation failed")
	}
	return nil
}

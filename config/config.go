// Package config holds the settings shared by the voevent commands, read
// from a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/signadot/go-voevent/coerce"
	"github.com/signadot/go-voevent/format"
	"github.com/signadot/go-voevent/voevent"
)

var ErrConfig = errors.New("invalid configuration")

// Config represents the configuration file structure.
//
//	conversion: given
//	stripWhitespace: false
//	format: yaml
//	indent: 4
//	color: false
//	filter: role == "observation"
type Config struct {
	// Conversion is the coercion mode for flattened values and What Params.
	Conversion coerce.Mode `yaml:"conversion"`

	// StripWhitespace trims element text before coercion.
	StripWhitespace *bool `yaml:"stripWhitespace,omitempty"`

	// Format selects the output of the flatten command.
	Format format.Format `yaml:"format"`

	Indent int `yaml:"indent"`

	// Color forces colored output on or off.  Unset means color when
	// writing to a terminal.
	Color *bool `yaml:"color,omitempty"`

	// Filter is an expression documents must satisfy to be reported.
	Filter string `yaml:"filter,omitempty"`
}

// LoadConfig loads a configuration file.  Fields absent from the file keep
// their DefaultConfig values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.UnmarshalWithOptions(data, cfg, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func DefaultConfig() *Config {
	strip := true
	return &Config{
		Conversion:      coerce.ForceMode,
		StripWhitespace: &strip,
		Format:          format.JSONFormat,
		Indent:          2,
	}
}

// Strip reports whether element text is trimmed.
func (c *Config) Strip() bool {
	return c.StripWhitespace == nil || *c.StripWhitespace
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Indent < 0 || c.Indent > 16 {
		return fmt.Errorf("%w: indent %d out of range [0, 16]", ErrConfig, c.Indent)
	}
	if _, err := c.Conversion.MarshalText(); err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}
	if _, err := c.Format.MarshalText(); err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}
	if c.Filter != "" {
		if _, err := voevent.CompileFilter(c.Filter); err != nil {
			return fmt.Errorf("%w: %w", ErrConfig, err)
		}
	}
	return nil
}

// YAML renders c as a configuration file.
func (c *Config) YAML() ([]byte, error) {
	return yaml.MarshalWithOptions(c, yaml.Indent(2))
}

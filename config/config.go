// Package config loads toolkit configuration from config.yml and .env
// files with environment variable overrides.
package config

import (
	"fmt"

	"github.com/kbukum/regkit/logger"
	"github.com/kbukum/regkit/validation"
)

// RegistryConfig contains registration-layer knobs.
type RegistryConfig struct {
	// CapacityHint pre-sizes new service collections.
	CapacityHint int `yaml:"capacity_hint" mapstructure:"capacity_hint" validate:"min=0"`
	// WarnOnReplace logs a warning when an Add call registers a (key,
	// service type) pair that already exists, since the later entry will
	// shadow the earlier one at resolution time.
	WarnOnReplace bool `yaml:"warn_on_replace" mapstructure:"warn_on_replace"`
}

// ServiceConfig contains the essential configuration fields a service
// using the toolkit needs. Projects extend it by embedding it in their own
// config structs.
//
// Example:
//
//	type MyConfig struct {
//	    config.ServiceConfig `yaml:",inline" mapstructure:",squash"`
//	    Database DatabaseConfig `yaml:"database" mapstructure:"database"`
//	}
type ServiceConfig struct {
	Name        string         `yaml:"name" mapstructure:"name" validate:"required"`
	Environment string         `yaml:"environment" mapstructure:"environment" validate:"oneof=development staging production"`
	Version     string         `yaml:"version" mapstructure:"version"`
	Debug       bool           `yaml:"debug" mapstructure:"debug"`
	Logging     logger.Config  `yaml:"logging" mapstructure:"logging"`
	Registry    RegistryConfig `yaml:"registry" mapstructure:"registry"`
}

// GetServiceConfig returns the base ServiceConfig. When embedded in a
// larger config struct, this method is promoted so the embedding struct
// automatically satisfies the Config interface.
func (c *ServiceConfig) GetServiceConfig() *ServiceConfig {
	return c
}

// ApplyDefaults applies default values to the base configuration.
// Override this in embedding structs and call
// c.ServiceConfig.ApplyDefaults() first.
func (c *ServiceConfig) ApplyDefaults() {
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Environment == "development" {
		c.Debug = true
	}
	if c.Logging.ServiceName == "" && c.Name != "" {
		c.Logging.ServiceName = c.Name
	}
	c.Logging.ApplyDefaults()
}

// Validate validates the base configuration fields.
// Override this in embedding structs and call c.ServiceConfig.Validate()
// first.
func (c *ServiceConfig) Validate() error {
	if err := validation.Struct(c); err != nil {
		return err
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("config.logging: %w", err)
	}
	return nil
}

// Config is satisfied by any struct embedding ServiceConfig.
type Config interface {
	GetServiceConfig() *ServiceConfig
	ApplyDefaults()
	Validate() error
}

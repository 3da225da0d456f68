package main

import (
	"github.com/StarQTius/Little-Type-Library/config"
	"github.com/StarQTius/Little-Type-Library/observability"
	"github.com/StarQTius/Little-Type-Library/recipe"
	"github.com/StarQTius/Little-Type-Library/validation"
	"github.com/StarQTius/Little-Type-Library/version"
)

// AppConfig is the configuration of the ltl command.
type AppConfig struct {
	config.ServiceConfig `yaml:",inline" mapstructure:",squash"`
	Recipe               recipe.Config        `yaml:"recipe" mapstructure:"recipe"`
	Observability        observability.Config `yaml:"observability" mapstructure:"observability"`
}

// ApplyDefaults fills every section. The version defaults to the binary's.
func (c *AppConfig) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "ltl"
	}
	if c.Version == "" {
		c.Version = version.GetShortVersion()
	}
	c.ServiceConfig.ApplyDefaults()
	c.Recipe.ApplyDefaults()

	if c.Observability.ServiceName == "" {
		c.Observability.ServiceName = c.Name
	}
	if c.Observability.ServiceVersion == "" {
		c.Observability.ServiceVersion = c.Version
	}
	if c.Observability.Environment == "" {
		c.Observability.Environment = c.Environment
	}
	c.Observability.ApplyDefaults()
}

// Validate reports the problems of every section at once.
func (c *AppConfig) Validate() error {
	v := validation.New().
		Merge("service", c.ServiceConfig.Validate()).
		Merge("recipe", c.Recipe.Validate()).
		Merge("observability", c.Observability.Validate())
	if appErr := v.Validate(); appErr != nil {
		return appErr
	}
	return nil
}

package bootstrap

import (
	"github.com/StarQTius/Little-Type-Library/config"
)

// Config is the interface constraint for application configuration types.
// Any struct that embeds config.ServiceConfig satisfies it through promoted
// methods; structs with more sections override ApplyDefaults and Validate
// and call the embedded ones.
//
//	type AppConfig struct {
//	    config.ServiceConfig `yaml:",inline" mapstructure:",squash"`
//	    Recipe recipe.Config `yaml:"recipe" mapstructure:"recipe"`
//	}
type Config interface {
	GetServiceConfig() *config.ServiceConfig
	ApplyDefaults()
	Validate() error
}

package logger

import (
	"slices"

	"github.com/StarQTius/Little-Type-Library/errors"
)

// Config contains logging configuration.
type Config struct {
	Level       string `yaml:"level" mapstructure:"level"`
	Format      string `yaml:"format" mapstructure:"format"`
	Output      string `yaml:"output" mapstructure:"output"`
	NoColor     bool   `yaml:"no_color" mapstructure:"no_color"`
	Timestamp   bool   `yaml:"timestamp" mapstructure:"timestamp"`
	Caller      bool   `yaml:"caller" mapstructure:"caller"`
	ServiceName string `yaml:"service_name" mapstructure:"service_name"`
}

var (
	validLevels  = []string{"trace", "debug", "info", "warn", "error", "fatal"}
	validFormats = []string{"json", "console", FormatPretty}
	validOutputs = []string{"stdout", "stderr"}
)

// ApplyDefaults applies default values to logging configuration.
// Logs go to stderr by default so that command output on stdout stays clean.
func (c *Config) ApplyDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
	if c.Format == "" {
		c.Format = "console"
	}
	if c.Output == "" {
		c.Output = "stderr"
	}
	c.Timestamp = true
}

// Validate validates logging configuration.
func (c *Config) Validate() error {
	if !slices.Contains(validLevels, c.Level) {
		return errors.InvalidInput("logging.level", "must be one of "+joinQuoted(validLevels)+", got "+c.Level)
	}
	if !slices.Contains(validFormats, c.Format) {
		return errors.InvalidInput("logging.format", "must be one of "+joinQuoted(validFormats)+", got "+c.Format)
	}
	if !slices.Contains(validOutputs, c.Output) {
		return errors.InvalidInput("logging.output", "must be one of "+joinQuoted(validOutputs)+", got "+c.Output)
	}
	return nil
}

func joinQuoted(vals []string) string {
	s := "["
	for i, v := range vals {
		if i > 0 {
			s += " "
		}
		s += v
	}
	return s + "]"
}

package recipe

import (
	"slices"

	"github.com/StarQTius/Little-Type-Library/ranges"
	"github.com/StarQTius/Little-Type-Library/validation"
)

// Range is a numeric source: start, start+step, ... stopping before end.
type Range struct {
	Start int `yaml:"start" mapstructure:"start"`
	End   int `yaml:"end" mapstructure:"end"`
	Step  int `yaml:"step" mapstructure:"step" validate:"ne=0"`
}

// Config describes one recipe.
type Config struct {
	Name   string   `yaml:"name" mapstructure:"name" validate:"required"`
	RunID  string   `yaml:"run_id,omitempty" mapstructure:"run_id" validate:"omitempty,uuid"`
	Source []int    `yaml:"source,omitempty" mapstructure:"source"`
	Range  *Range   `yaml:"range,omitempty" mapstructure:"range"`
	Steps  []string `yaml:"steps" mapstructure:"steps" validate:"dive,ltlstep"`
}

// ApplyDefaults sets a unit step on ranges that have none.
func (c *Config) ApplyDefaults() {
	if c.Range != nil && c.Range.Step == 0 {
		c.Range.Step = 1
	}
}

// Validate checks the tags and that exactly one source is configured.
func (c *Config) Validate() error {
	v := validation.New().Merge("recipe", validation.Validate(c))
	v.Custom(len(c.Source) > 0 || c.Range != nil, "source", "either source or range is required")
	v.Custom(len(c.Source) == 0 || c.Range == nil, "range", "cannot be combined with source")
	if appErr := v.Validate(); appErr != nil {
		return appErr
	}
	return nil
}

// SourceView returns the configured source. Explicit values are copied so
// the config is never written through the view.
func (c *Config) SourceView() ranges.View[int] {
	if c.Range != nil {
		return ranges.SteppedRange(c.Range.Start, c.Range.End, c.Range.Step)
	}
	return ranges.Of(slices.Clone(c.Source))
}

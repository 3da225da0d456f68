// Package validation validates command and recipe configuration.
//
// It supports struct tag validation (using the validator library) and
// programmatic validation with error collection. Both report failures as an
// INVALID_INPUT *errors.AppError whose "fields" detail lists each FieldError.
//
// # Struct Tag Validation
//
//	type Config struct {
//	    Name  string   `mapstructure:"name" validate:"required"`
//	    Steps []string `mapstructure:"steps" validate:"dive,ltlstep"`
//	}
//	err := validation.Validate(cfg)
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.Custom(step != 0, "range.step", "must not be zero")
//	err := v.Validate()
package validation

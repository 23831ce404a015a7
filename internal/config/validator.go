package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks the loaded values against the struct tags
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return fmt.Errorf("%s: %w", ErrMsgValidation, err)
		}

		fields := make([]string, 0, len(validationErrors))
		for _, fe := range validationErrors {
			fields = append(fields, fmt.Sprintf("%s (%s=%s)", fe.Field(), fe.Tag(), fe.Param()))
		}
		return fmt.Errorf("%s: %s", ErrMsgValidation, strings.Join(fields, ", "))
	}
	return nil
}

// Warnings returns non-fatal issues with the configuration
func (c *Config) Warnings() []string {
	var warnings []string

	isProd := c.Environment == "prod" || c.Environment == "production"

	if !c.UsesDatabase() && isProd {
		warnings = append(warnings, WarnMsgMemoryStoreInProd)
	}

	if c.APIKey == "" && isProd {
		warnings = append(warnings, WarnMsgNoAPIKeyInProd)
	}

	if c.DayTickInterval == 0 {
		warnings = append(warnings, WarnMsgSchedulerDisabled)
	}

	return warnings
}

package config

import (
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/lucasb-eyer/go-colorful"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	fieldNamePattern = regexp.MustCompile(`^[a-z][a-z0-9_-]*$`)
	iconClassPattern = regexp.MustCompile(`^icon-[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("field_name", func(fl validator.FieldLevel) bool {
			return fieldNamePattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("icon_class", func(fl validator.FieldLevel) bool {
			return iconClassPattern.MatchString(fl.Field().String())
		})

		// Only the forms colorful can parse: #rgb and #rrggbb.
		_ = v.RegisterValidation("color_hex", func(fl validator.FieldLevel) bool {
			_, err := colorful.Hex(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("regexp", func(fl validator.FieldLevel) bool {
			_, err := regexp.Compile(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns a configured validator instance for use outside the config package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}

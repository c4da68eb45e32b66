package config

import (
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/gallery/internal/theme"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	storageKeyPattern = regexp.MustCompile(`^[A-Za-z0-9._-]{1,64}$`)
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("theme", func(fl validator.FieldLevel) bool {
			_, err := theme.Parse(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("storage_key", func(fl validator.FieldLevel) bool {
			return storageKeyPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

package validator

import (
	"ctchen222/Tic-Tac-Toe-CPU/internal/bot"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	// Initialize validation
	validate = validator.New(validator.WithRequiredStructEnabled())
	if err := validate.RegisterValidation("difficulty", validateDifficulty); err != nil {
		panic(err)
	}
}

func GetValidator() *validator.Validate {
	return validate
}

// validateDifficulty accepts any spelling bot.ParseDifficulty understands.
func validateDifficulty(fl validator.FieldLevel) bool {
	_, err := bot.ParseDifficulty(fl.Field().String())
	return err == nil
}

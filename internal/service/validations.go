package service

import (
	"errors"
	"slices"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
	errorvalues "github.com/limbo/lifeos/internal/error_values"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

// Moods in the order that defines their score.
var Moods = []string{"Happy", "Neutral", "Sad", "Stressed", "Calm"}

var themeColors = []string{"green", "blue", "purple", "pink", "orange", "red", "slate"}

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("alphanum_underscore", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			for i, char := range value {
				// Cannot be started with a digit or underscore
				if i == 0 && (unicode.IsDigit(char) || char == '_') {
					return false
				}
				// Digits, letters or underscore
				if !unicode.IsLetter(char) && !unicode.IsDigit(char) && char != '_' {
					return false
				}
			}
			return true
		})
		validate.RegisterValidation("mood", func(fl validator.FieldLevel) bool {
			return MoodScore(fl.Field().String()) > 0
		})
		validate.RegisterValidation("theme_color", func(fl validator.FieldLevel) bool {
			return slices.Contains(themeColors, strings.ToLower(fl.Field().String()))
		})
	})
}

// MoodScore is the 1-based position of mood in Moods, 0 for unknown moods.
func MoodScore(mood string) int {
	return slices.Index(Moods, mood) + 1
}

// validateStruct joins field errors under ErrValidation.
func validateStruct(req any) error {
	InitValidator()
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		joined := []error{errorvalues.ErrValidation}
		for _, fieldErr := range validationErrors {
			joined = append(joined, fieldErr)
		}
		return errors.Join(joined...)
	}
	return errors.New("validation unexpected error: " + err.Error())
}

func validateVar(value any, tag string) error {
	InitValidator()
	if err := validate.Var(value, tag); err != nil {
		return errors.Join(errorvalues.ErrValidation, err)
	}
	return nil
}

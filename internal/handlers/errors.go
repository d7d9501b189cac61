package handlers

import (
	"errors"
	"strings"

	"github.com/classtrack-dev/classtrack/internal/apperrors"
	"github.com/go-playground/validator/v10"
)

// bindingError turns gin binding failures into a Validation error whose
// message names every violated field, using the handler-supplied per-field
// messages keyed by struct field name.
func bindingError(err error, fieldMessages map[string]string) *apperrors.Error {
	var validationErrs validator.ValidationErrors

	if errors.As(err, &validationErrs) {
		messages := make([]string, 0, len(validationErrs))

		for _, fieldErr := range validationErrs {
			if msg, ok := fieldMessages[fieldErr.Field()]; ok {
				messages = append(messages, msg)
			}
		}

		if len(messages) > 0 {
			return apperrors.Validation(strings.Join(messages, ", "))
		}
	}

	return apperrors.Validation("Invalid request body.")
}

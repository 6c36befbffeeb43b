package http

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// validationFields convierte los errores de validator en un mapa campo -> regla incumplida.
func validationFields(err error) map[string]string {
	fields := make(map[string]string)
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return fields
	}
	for _, ve := range validationErrors {
		fields[ve.Field()] = ve.Tag()
	}
	return fields
}

package dto

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/rutaviva/eventos-backend/internal/domain/entities"
)

// RegisterCustomValidators registra las validaciones de dominio sobre el
// motor de binding de Gin. Debe llamarse una vez durante el bootstrap.
func RegisterCustomValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}

	return v.RegisterValidation("nivel_dificultad", func(fl validator.FieldLevel) bool {
		_, err := entities.ParseNivelDificultad(fl.Field().String())
		return err == nil
	})
}

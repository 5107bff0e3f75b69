package entities

import (
	"errors"
	"time"

	"github.com/rutaviva/eventos-backend/internal/domain/valueobjects"
)

// TipoUsuario representa el tipo de cuenta de un usuario
type TipoUsuario string

const (
	TipoEstandar TipoUsuario = "ESTANDAR"
	TipoCorredor TipoUsuario = "CORREDOR"
)

// IsValid verifica que el tipo de usuario sea uno de los conocidos
func (t TipoUsuario) IsValid() bool {
	return t == TipoEstandar || t == TipoCorredor
}

// User representa un usuario registrado en la plataforma
type User struct {
	ID              string
	Nombre          string
	Apellidos       string
	Email           valueobjects.Email
	PasswordHash    string
	Genero          *string
	TipoUsuario     TipoUsuario
	Nivel           int
	Participaciones []Participacion
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Validate valida las reglas de negocio de la entidad User
func (u *User) Validate() error {
	if u.Email.String() == "" {
		return errors.New("email is required")
	}

	if u.Nombre == "" {
		return errors.New("nombre is required")
	}

	if u.Apellidos == "" {
		return errors.New("apellidos is required")
	}

	if !u.TipoUsuario.IsValid() {
		return errors.New("invalid tipo de usuario")
	}

	if u.Nivel < 0 {
		return errors.New("nivel must not be negative")
	}

	return nil
}

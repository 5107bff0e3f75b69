package dto

import (
	"time"

	"github.com/rutaviva/eventos-backend/internal/domain/entities"
)

// RegisterRequest representa la petición de registro de un usuario
type RegisterRequest struct {
	Nombre      string  `json:"nombre" binding:"required,min=2,max=100"`
	Apellidos   string  `json:"apellidos" binding:"required,min=2,max=100"`
	Email       string  `json:"email" binding:"required,email"`
	Password    string  `json:"password" binding:"required,min=8,max=72"`
	Genero      *string `json:"genero" binding:"omitempty,max=50"`
	TipoUsuario string  `json:"tipoUsuario" binding:"omitempty,oneof=ESTANDAR CORREDOR"`
	Nivel       int     `json:"nivel" binding:"omitempty,min=0"`
}

// LoginRequest representa la petición de inicio de sesión
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserResponse representa la respuesta de un usuario.
// El hash de contraseña nunca se serializa.
type UserResponse struct {
	ID              string                  `json:"id"`
	Nombre          string                  `json:"nombre"`
	Apellidos       string                  `json:"apellidos"`
	Email           string                  `json:"email"`
	Genero          *string                 `json:"genero,omitempty"`
	TipoUsuario     string                  `json:"tipoUsuario"`
	Nivel           int                     `json:"nivel"`
	Participaciones []ParticipacionResponse `json:"participaciones,omitempty"`
	CreatedAt       time.Time               `json:"createdAt"`
}

// UsuarioResumenResponse es la proyección restringida de un usuario que
// acompaña a las inscripciones de un evento
type UsuarioResumenResponse struct {
	ID        string  `json:"id"`
	Nombre    string  `json:"nombre"`
	Apellidos string  `json:"apellidos"`
	Email     string  `json:"email"`
	Genero    *string `json:"genero,omitempty"`
	Nivel     int     `json:"nivel"`
}

// AuthResponse representa la respuesta de registro/login con token
type AuthResponse struct {
	Message string       `json:"message,omitempty"`
	User    UserResponse `json:"user"`
	Token   string       `json:"token"`
}

// ToUserResponse convierte una entidad User a UserResponse
func ToUserResponse(user *entities.User) UserResponse {
	response := UserResponse{
		ID:          user.ID,
		Nombre:      user.Nombre,
		Apellidos:   user.Apellidos,
		Email:       user.Email.String(),
		Genero:      user.Genero,
		TipoUsuario: string(user.TipoUsuario),
		Nivel:       user.Nivel,
		CreatedAt:   user.CreatedAt,
	}

	for i := range user.Participaciones {
		response.Participaciones = append(response.Participaciones, ToParticipacionResponse(&user.Participaciones[i]))
	}

	return response
}

// ToUserResponses convierte una lista de entidades User
func ToUserResponses(users []*entities.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i, user := range users {
		responses[i] = ToUserResponse(user)
	}
	return responses
}

// ToUsuarioResumen convierte una entidad User a su proyección restringida
func ToUsuarioResumen(user *entities.User) UsuarioResumenResponse {
	return UsuarioResumenResponse{
		ID:        user.ID,
		Nombre:    user.Nombre,
		Apellidos: user.Apellidos,
		Email:     user.Email.String(),
		Genero:    user.Genero,
		Nivel:     user.Nivel,
	}
}

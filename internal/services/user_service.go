package services

import (
	"context"
	"strings"

	"github.com/rutaviva/eventos-backend/internal/domain/entities"
	"github.com/rutaviva/eventos-backend/internal/domain/errors"
	"github.com/rutaviva/eventos-backend/internal/domain/ports"
	"github.com/rutaviva/eventos-backend/internal/domain/repositories"
	"github.com/rutaviva/eventos-backend/internal/domain/valueobjects"
)

// UserService contiene la lógica de negocio del directorio de usuarios
type UserService struct {
	userRepo repositories.UserRepository
	auth     *AuthService
	logger   ports.Logger
}

// NewUserService crea un nuevo UserService
func NewUserService(
	userRepo repositories.UserRepository,
	auth *AuthService,
	logger ports.Logger,
) *UserService {
	return &UserService{
		userRepo: userRepo,
		auth:     auth,
		logger:   logger,
	}
}

// CreateUserInput representa los datos para crear un usuario
type CreateUserInput struct {
	Nombre      string
	Apellidos   string
	Email       string
	Password    string
	Genero      *string
	TipoUsuario string
	Nivel       int
}

// CreateUser crea un nuevo usuario con la contraseña hasheada.
// Falla con ErrEmailAlreadyExists si el email ya está registrado.
func (s *UserService) CreateUser(ctx context.Context, input CreateUserInput) (*entities.User, error) {
	email, err := valueobjects.NewEmail(input.Email)
	if err != nil {
		return nil, errors.ErrInvalidEmail
	}

	tipo := entities.TipoUsuario(strings.ToUpper(strings.TrimSpace(input.TipoUsuario)))
	if tipo == "" {
		tipo = entities.TipoEstandar
	}

	existing, err := s.userRepo.FindByEmail(ctx, email.String())
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.ErrEmailAlreadyExists
	}

	hash, err := s.auth.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		Nombre:       input.Nombre,
		Apellidos:    input.Apellidos,
		Email:        email,
		PasswordHash: hash,
		Genero:       input.Genero,
		TipoUsuario:  tipo,
		Nivel:        input.Nivel,
	}

	if err := user.Validate(); err != nil {
		return nil, errors.ErrCamposRequeridos
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user created", "user_id", user.ID, "email", email.String())
	return user, nil
}

// GetUserByEmail busca un usuario por su email
func (s *UserService) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}
	return user, nil
}

// GetUserByID busca un usuario por ID, con sus participaciones
func (s *UserService) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}
	return user, nil
}

// ListUsers lista todos los usuarios
func (s *UserService) ListUsers(ctx context.Context) ([]*entities.User, error) {
	return s.userRepo.List(ctx)
}

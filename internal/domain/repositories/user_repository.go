package repositories

import (
	"context"

	"github.com/rutaviva/eventos-backend/internal/domain/entities"
)

// UserRepository define la interfaz para persistencia de usuarios.
// Los Find* retornan (nil, nil) cuando el registro no existe.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	FindByID(ctx context.Context, id string) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	List(ctx context.Context) ([]*entities.User, error)
}

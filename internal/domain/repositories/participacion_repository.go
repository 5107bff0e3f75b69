package repositories

import (
	"context"

	"github.com/rutaviva/eventos-backend/internal/domain/entities"
)

// ParticipacionRepository define la interfaz para persistencia de
// inscripciones. La búsqueda es por clave compuesta (userID, eventoID);
// el ID propio de la inscripción solo se usa internamente para borrar.
type ParticipacionRepository interface {
	Create(ctx context.Context, participacion *entities.Participacion) error
	FindByUserAndEvento(ctx context.Context, userID, eventoID string) (*entities.Participacion, error)
	FindByUser(ctx context.Context, userID string) ([]*entities.Participacion, error)
	FindByEvento(ctx context.Context, eventoID string) ([]*entities.Participacion, error)
	Delete(ctx context.Context, id string) error
}

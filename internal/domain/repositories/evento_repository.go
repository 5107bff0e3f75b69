package repositories

import (
	"context"
	"time"

	"github.com/rutaviva/eventos-backend/internal/domain/entities"
)

// EventoFilters contiene los criterios combinables de filtrado y búsqueda.
// Todos los predicados son opcionales y se combinan con AND.
type EventoFilters struct {
	Nombre          *string
	Ciudad          *string
	NivelDificultad *entities.NivelDificultad
	Destacado       *bool
	OrdenarPor      string // nombre | fecha | ciudad | nivelDificultad
	Orden           string // asc | desc
}

// EventoPatch describe una actualización parcial de un evento.
// Solo los campos no-nil se aplican sobre el registro.
type EventoPatch struct {
	Nombre          *string
	Descripcion     *string
	Ciudad          *string
	Fecha           *time.Time
	NivelDificultad *entities.NivelDificultad
	ImagenURL       *string
	Destacado       *bool
}

// EventoRepository define la interfaz para persistencia de eventos.
// Los Find* retornan (nil, nil) cuando el registro no existe.
type EventoRepository interface {
	Create(ctx context.Context, evento *entities.Evento) error
	FindByID(ctx context.Context, id string) (*entities.Evento, error)
	FindAll(ctx context.Context) ([]*entities.Evento, error)
	Update(ctx context.Context, id string, patch EventoPatch) error
	Delete(ctx context.Context, id string) error
	SearchByNombre(ctx context.Context, nombre string) ([]*entities.Evento, error)
	FindByNivelDificultad(ctx context.Context, nivel entities.NivelDificultad) ([]*entities.Evento, error)
	FindByCiudad(ctx context.Context, ciudad string) ([]*entities.Evento, error)
	FindOrderedByNombre(ctx context.Context, orden string) ([]*entities.Evento, error)
	FindWithFilters(ctx context.Context, filters EventoFilters) ([]*entities.Evento, error)
	FindProximos(ctx context.Context, desde time.Time, limit int) ([]*entities.Evento, error)
	DistinctNiveles(ctx context.Context) ([]string, error)
	DistinctCiudades(ctx context.Context) ([]string, error)
}

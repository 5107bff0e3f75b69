package services

import (
	"context"
	"time"

	"github.com/rutaviva/eventos-backend/internal/domain/entities"
	"github.com/rutaviva/eventos-backend/internal/domain/errors"
	"github.com/rutaviva/eventos-backend/internal/domain/ports"
	"github.com/rutaviva/eventos-backend/internal/domain/repositories"
)

// DefaultProximosCantidad es el límite por defecto del listado de
// próximos eventos
const DefaultProximosCantidad = 6

// camposOrdenValidos son los campos aceptados para ordenar resultados
var camposOrdenValidos = map[string]bool{
	"nombre":          true,
	"fecha":           true,
	"ciudad":          true,
	"nivelDificultad": true,
}

// EventoService contiene la lógica de negocio del catálogo de eventos
type EventoService struct {
	eventoRepo repositories.EventoRepository
	logger     ports.Logger
}

// NewEventoService crea un nuevo EventoService
func NewEventoService(eventoRepo repositories.EventoRepository, logger ports.Logger) *EventoService {
	return &EventoService{
		eventoRepo: eventoRepo,
		logger:     logger,
	}
}

// CreateEventoInput representa los datos para crear un evento
type CreateEventoInput struct {
	Nombre          string
	Descripcion     *string
	Ciudad          string
	Fecha           time.Time
	NivelDificultad string
	ImagenURL       string
	Destacado       bool
}

// Create crea un nuevo evento. Nombre, ciudad, fecha y nivel de
// dificultad son obligatorios; destacado e imagenUrl tienen defaults.
func (s *EventoService) Create(ctx context.Context, input CreateEventoInput) (*entities.Evento, error) {
	nivel, err := entities.ParseNivelDificultad(input.NivelDificultad)
	if err != nil {
		return nil, errors.ErrInvalidNivelDificultad
	}

	evento := &entities.Evento{
		Nombre:          input.Nombre,
		Descripcion:     input.Descripcion,
		Ciudad:          input.Ciudad,
		Fecha:           input.Fecha,
		NivelDificultad: nivel,
		ImagenURL:       input.ImagenURL,
		Destacado:       input.Destacado,
	}

	if err := evento.Validate(); err != nil {
		return nil, errors.ErrCamposRequeridos
	}

	if err := s.eventoRepo.Create(ctx, evento); err != nil {
		return nil, err
	}

	s.logger.Info("evento created", "evento_id", evento.ID, "nombre", evento.Nombre)
	return evento, nil
}

// GetByID busca un evento por ID, con sus participantes
func (s *EventoService) GetByID(ctx context.Context, id string) (*entities.Evento, error) {
	evento, err := s.eventoRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if evento == nil {
		return nil, errors.ErrEventoNotFound
	}
	return evento, nil
}

// List retorna todos los eventos con sus participantes
func (s *EventoService) List(ctx context.Context) ([]*entities.Evento, error) {
	return s.eventoRepo.FindAll(ctx)
}

// Update aplica una actualización parcial sobre un evento existente.
// Solo los campos no-nil del patch se modifican.
func (s *EventoService) Update(ctx context.Context, id string, patch repositories.EventoPatch) (*entities.Evento, error) {
	existing, err := s.eventoRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, errors.ErrEventoNotFound
	}

	if patch.NivelDificultad != nil && !patch.NivelDificultad.IsValid() {
		return nil, errors.ErrInvalidNivelDificultad
	}

	if err := s.eventoRepo.Update(ctx, id, patch); err != nil {
		return nil, err
	}

	return s.eventoRepo.FindByID(ctx, id)
}

// Delete elimina un evento. Retorna false cuando no existe.
// El borrado del archivo de imagen asociado es responsabilidad del
// boundary HTTP, no de este servicio.
func (s *EventoService) Delete(ctx context.Context, id string) (bool, error) {
	existing, err := s.eventoRepo.FindByID(ctx, id)
	if err != nil {
		return false, err
	}
	if existing == nil {
		return false, nil
	}

	if err := s.eventoRepo.Delete(ctx, id); err != nil {
		return false, err
	}

	s.logger.Info("evento deleted", "evento_id", id)
	return true, nil
}

// SearchByNombre busca eventos cuyo nombre contenga el término
func (s *EventoService) SearchByNombre(ctx context.Context, nombre string) ([]*entities.Evento, error) {
	return s.eventoRepo.SearchByNombre(ctx, nombre)
}

// FilterByDificultad filtra eventos por nivel de dificultad exacto.
// El caller valida el enum antes de invocar.
func (s *EventoService) FilterByDificultad(ctx context.Context, nivel entities.NivelDificultad) ([]*entities.Evento, error) {
	return s.eventoRepo.FindByNivelDificultad(ctx, nivel)
}

// FilterByCiudad filtra eventos cuya ciudad contenga el término
func (s *EventoService) FilterByCiudad(ctx context.Context, ciudad string) ([]*entities.Evento, error) {
	return s.eventoRepo.FindByCiudad(ctx, ciudad)
}

// OrderByNombre retorna todos los eventos ordenados por nombre
func (s *EventoService) OrderByNombre(ctx context.Context, orden string) ([]*entities.Evento, error) {
	return s.eventoRepo.FindOrderedByNombre(ctx, orden)
}

// FilterAndSearch compone todos los criterios opcionales con AND.
// Un campo de ordenamiento desconocido cae silenciosamente a nombre.
func (s *EventoService) FilterAndSearch(ctx context.Context, filters repositories.EventoFilters) ([]*entities.Evento, error) {
	if !camposOrdenValidos[filters.OrdenarPor] {
		filters.OrdenarPor = "nombre"
	}
	if filters.Orden != "desc" {
		filters.Orden = "asc"
	}

	return s.eventoRepo.FindWithFilters(ctx, filters)
}

// Proximos retorna los eventos con fecha mayor o igual a la actual,
// ascendente por fecha, limitado a cantidad (default 6)
func (s *EventoService) Proximos(ctx context.Context, cantidad int) ([]*entities.Evento, error) {
	if cantidad <= 0 {
		cantidad = DefaultProximosCantidad
	}
	return s.eventoRepo.FindProximos(ctx, time.Now(), cantidad)
}

// OpcionesDeFiltro enumera las facetas de filtrado disponibles
func (s *EventoService) OpcionesDeFiltro(ctx context.Context) (niveles, ciudades []string, err error) {
	niveles, err = s.eventoRepo.DistinctNiveles(ctx)
	if err != nil {
		return nil, nil, err
	}

	ciudades, err = s.eventoRepo.DistinctCiudades(ctx)
	if err != nil {
		return nil, nil, err
	}

	return niveles, ciudades, nil
}

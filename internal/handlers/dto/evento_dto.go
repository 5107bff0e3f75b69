package dto

import (
	"time"

	"github.com/rutaviva/eventos-backend/internal/domain/entities"
	"github.com/rutaviva/eventos-backend/internal/domain/repositories"
)

// fechaLayouts son los formatos aceptados para el campo fecha
var fechaLayouts = []string{
	time.RFC3339,
	"2006-01-02",
}

// ParseFecha interpreta una fecha en RFC 3339 o como fecha simple
func ParseFecha(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range fechaLayouts {
		fecha, err := time.Parse(layout, value)
		if err == nil {
			return fecha, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// CreateEventoRequest representa la petición para crear un evento.
// Acepta JSON o multipart form (con archivo de imagen opcional).
type CreateEventoRequest struct {
	Nombre          string  `json:"nombre" form:"nombre" binding:"required,min=2,max=255"`
	Descripcion     *string `json:"descripcion" form:"descripcion"`
	Ciudad          string  `json:"ciudad" form:"ciudad" binding:"required,max=255"`
	Fecha           string  `json:"fecha" form:"fecha" binding:"required"`
	NivelDificultad string  `json:"nivelDificultad" form:"nivelDificultad" binding:"required,nivel_dificultad"`
	Destacado       *bool   `json:"destacado" form:"destacado"`
}

// UpdateEventoRequest representa una actualización parcial de un evento.
// Cada campo es un opcional explícito; solo los presentes se aplican.
type UpdateEventoRequest struct {
	Nombre          *string `json:"nombre" binding:"omitempty,min=2,max=255"`
	Descripcion     *string `json:"descripcion"`
	Ciudad          *string `json:"ciudad" binding:"omitempty,max=255"`
	Fecha           *string `json:"fecha"`
	NivelDificultad *string `json:"nivelDificultad" binding:"omitempty,nivel_dificultad"`
	ImagenURL       *string `json:"imagenUrl"`
	Destacado       *bool   `json:"destacado"`
}

// ToPatch convierte la petición en un patch de repositorio
func (r *UpdateEventoRequest) ToPatch() (repositories.EventoPatch, error) {
	patch := repositories.EventoPatch{
		Nombre:      r.Nombre,
		Descripcion: r.Descripcion,
		Ciudad:      r.Ciudad,
		ImagenURL:   r.ImagenURL,
		Destacado:   r.Destacado,
	}

	if r.Fecha != nil {
		fecha, err := ParseFecha(*r.Fecha)
		if err != nil {
			return repositories.EventoPatch{}, err
		}
		patch.Fecha = &fecha
	}

	if r.NivelDificultad != nil {
		nivel, err := entities.ParseNivelDificultad(*r.NivelDificultad)
		if err != nil {
			return repositories.EventoPatch{}, err
		}
		patch.NivelDificultad = &nivel
	}

	return patch, nil
}

// FiltrarEventosQuery representa los criterios combinables de /buscar
type FiltrarEventosQuery struct {
	Nombre          string `form:"nombre"`
	Ciudad          string `form:"ciudad"`
	NivelDificultad string `form:"nivelDificultad" binding:"omitempty,nivel_dificultad"`
	Destacado       string `form:"destacado" binding:"omitempty,oneof=true false"`
	OrdenarPor      string `form:"ordenarPor"`
	Orden           string `form:"orden" binding:"omitempty,oneof=asc desc"`
}

// ToFilters convierte la query en filtros de repositorio
func (q *FiltrarEventosQuery) ToFilters() repositories.EventoFilters {
	filters := repositories.EventoFilters{
		OrdenarPor: q.OrdenarPor,
		Orden:      q.Orden,
	}

	if q.Nombre != "" {
		filters.Nombre = &q.Nombre
	}
	if q.Ciudad != "" {
		filters.Ciudad = &q.Ciudad
	}
	if q.NivelDificultad != "" {
		nivel := entities.NivelDificultad(q.NivelDificultad)
		filters.NivelDificultad = &nivel
	}
	if q.Destacado != "" {
		destacado := q.Destacado == "true"
		filters.Destacado = &destacado
	}

	return filters
}

// EventoResponse representa la respuesta de un evento
type EventoResponse struct {
	ID              string                  `json:"id"`
	Nombre          string                  `json:"nombre"`
	Descripcion     *string                 `json:"descripcion,omitempty"`
	Ciudad          string                  `json:"ciudad"`
	Fecha           time.Time               `json:"fecha"`
	NivelDificultad string                  `json:"nivelDificultad"`
	ImagenURL       string                  `json:"imagenUrl"`
	Destacado       bool                    `json:"destacado"`
	Participantes   []ParticipacionResponse `json:"participantes,omitempty"`
	CreatedAt       time.Time               `json:"createdAt"`
	UpdatedAt       time.Time               `json:"updatedAt"`
}

// FiltrosOpcionesResponse enumera las facetas de filtrado disponibles
type FiltrosOpcionesResponse struct {
	NivelesDificultad []string `json:"nivelesDificultad"`
	Ciudades          []string `json:"ciudades"`
}

// ToEventoResponse convierte una entidad Evento a EventoResponse
func ToEventoResponse(evento *entities.Evento) EventoResponse {
	response := EventoResponse{
		ID:              evento.ID,
		Nombre:          evento.Nombre,
		Descripcion:     evento.Descripcion,
		Ciudad:          evento.Ciudad,
		Fecha:           evento.Fecha,
		NivelDificultad: string(evento.NivelDificultad),
		ImagenURL:       evento.ImagenURL,
		Destacado:       evento.Destacado,
		CreatedAt:       evento.CreatedAt,
		UpdatedAt:       evento.UpdatedAt,
	}

	for i := range evento.Participantes {
		response.Participantes = append(response.Participantes, ToParticipacionResponse(&evento.Participantes[i]))
	}

	return response
}

// ToEventoResponses convierte una lista de entidades Evento
func ToEventoResponses(eventos []*entities.Evento) []EventoResponse {
	responses := make([]EventoResponse, len(eventos))
	for i, evento := range eventos {
		responses[i] = ToEventoResponse(evento)
	}
	return responses
}

package dto

import (
	"time"

	"github.com/rutaviva/eventos-backend/internal/domain/entities"
)

// InscribirRequest representa la petición de inscripción a un evento
type InscribirRequest struct {
	UserID   string `json:"userId" binding:"required"`
	EventoID string `json:"eventoId" binding:"required"`
}

// ParticipacionResponse representa una inscripción, opcionalmente unida
// con el usuario (proyección restringida) y el evento
type ParticipacionResponse struct {
	ID               string                  `json:"id"`
	UserID           string                  `json:"userId"`
	EventoID         string                  `json:"eventoId"`
	FechaInscripcion time.Time               `json:"fechaInscripcion"`
	Usuario          *UsuarioResumenResponse `json:"usuario,omitempty"`
	Evento           *EventoResponse         `json:"evento,omitempty"`
}

// VerificarResponse representa el resultado de la verificación de inscripción
type VerificarResponse struct {
	Inscrito bool `json:"inscrito"`
}

// ToParticipacionResponse convierte una entidad Participacion
func ToParticipacionResponse(participacion *entities.Participacion) ParticipacionResponse {
	response := ParticipacionResponse{
		ID:               participacion.ID,
		UserID:           participacion.UserID,
		EventoID:         participacion.EventoID,
		FechaInscripcion: participacion.FechaInscripcion,
	}

	if participacion.Usuario != nil {
		resumen := ToUsuarioResumen(participacion.Usuario)
		response.Usuario = &resumen
	}

	if participacion.Evento != nil {
		evento := ToEventoResponse(participacion.Evento)
		response.Evento = &evento
	}

	return response
}

// ToParticipacionResponses convierte una lista de inscripciones
func ToParticipacionResponses(participaciones []*entities.Participacion) []ParticipacionResponse {
	responses := make([]ParticipacionResponse, len(participaciones))
	for i, participacion := range participaciones {
		responses[i] = ToParticipacionResponse(participacion)
	}
	return responses
}

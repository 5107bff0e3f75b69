package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rutaviva/eventos-backend/internal/domain/ports"
	"github.com/rutaviva/eventos-backend/internal/handlers/dto"
	"github.com/rutaviva/eventos-backend/internal/services"
)

// ParticipacionHandler atiende las peticiones de inscripciones
type ParticipacionHandler struct {
	participacionService *services.ParticipacionService
	logger               ports.Logger
}

// NewParticipacionHandler crea un nuevo ParticipacionHandler
func NewParticipacionHandler(participacionService *services.ParticipacionService, logger ports.Logger) *ParticipacionHandler {
	return &ParticipacionHandler{
		participacionService: participacionService,
		logger:               logger,
	}
}

// Inscribir inscribe un usuario a un evento.
// 404 si el usuario o el evento no existen; 409 si ya está inscrito.
func (h *ParticipacionHandler) Inscribir(c *gin.Context) {
	var req dto.InscribirRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponseI18n(c, dto.ValidationErrorsFromBinding(err)))
		return
	}

	participacion, err := h.participacionService.Inscribir(c.Request.Context(), req.UserID, req.EventoID)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToParticipacionResponse(participacion))
}

// Cancelar elimina la inscripción identificada por (userId, eventoId)
func (h *ParticipacionHandler) Cancelar(c *gin.Context) {
	userID := c.Param("userId")
	eventoID := c.Param("eventoId")

	cancelled, err := h.participacionService.Cancelar(c.Request.Context(), userID, eventoID)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	if !cancelled {
		c.JSON(http.StatusNotFound, dto.NotFoundErrorResponseI18n(c, "error.enrollment_not_found"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": dto.T(c, "msg.enrollment_cancelled"),
	})
}

// PorUsuario lista las inscripciones de un usuario, con sus eventos
func (h *ParticipacionHandler) PorUsuario(c *gin.Context) {
	participaciones, err := h.participacionService.InscripcionesPorUsuario(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToParticipacionResponses(participaciones))
}

// PorEvento lista las inscripciones de un evento, con el resumen de
// cada usuario inscrito
func (h *ParticipacionHandler) PorEvento(c *gin.Context) {
	participaciones, err := h.participacionService.InscripcionesPorEvento(c.Request.Context(), c.Param("eventoId"))
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToParticipacionResponses(participaciones))
}

// Verificar indica si un usuario está inscrito en un evento
func (h *ParticipacionHandler) Verificar(c *gin.Context) {
	inscrito, err := h.participacionService.EstaInscrito(c.Request.Context(), c.Param("userId"), c.Param("eventoId"))
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.VerificarResponse{Inscrito: inscrito})
}

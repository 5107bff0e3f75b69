package http

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rutaviva/eventos-backend/internal/domain/entities"
	"github.com/rutaviva/eventos-backend/internal/domain/ports"
	"github.com/rutaviva/eventos-backend/internal/handlers/dto"
	"github.com/rutaviva/eventos-backend/internal/infrastructure/config"
	"github.com/rutaviva/eventos-backend/internal/services"
)

// imagenFormField es el nombre del campo multipart que lleva la imagen
const imagenFormField = "imagenUrl"

// tiposImagenPermitidos son los content types aceptados para la imagen
var tiposImagenPermitidos = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// camposOrdenPermitidos son los valores aceptados en el query param ordenarPor
var camposOrdenPermitidos = map[string]bool{
	"nombre":          true,
	"fecha":           true,
	"ciudad":          true,
	"nivelDificultad": true,
}

// EventoHandler atiende las peticiones del catálogo de eventos
type EventoHandler struct {
	eventoService *services.EventoService
	uploads       config.UploadsConfig
	logger        ports.Logger
}

// NewEventoHandler crea un nuevo EventoHandler
func NewEventoHandler(eventoService *services.EventoService, uploads config.UploadsConfig, logger ports.Logger) *EventoHandler {
	return &EventoHandler{
		eventoService: eventoService,
		uploads:       uploads,
		logger:        logger,
	}
}

// List lista todos los eventos con sus participantes
func (h *EventoHandler) List(c *gin.Context) {
	eventos, err := h.eventoService.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventoResponses(eventos))
}

// GetByID busca un evento por su ID
func (h *EventoHandler) GetByID(c *gin.Context) {
	evento, err := h.eventoService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventoResponse(evento))
}

// Create crea un evento. Acepta multipart form con un archivo de imagen
// opcional en el campo imagenUrl; el archivo se guarda en el directorio
// de uploads y el evento referencia su URL pública.
func (h *EventoHandler) Create(c *gin.Context) {
	var req dto.CreateEventoRequest

	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponseI18n(c, dto.ValidationErrorsFromBinding(err)))
		return
	}

	fecha, err := dto.ParseFecha(req.Fecha)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.BadRequestErrorResponseI18n(c, "error.invalid_date"))
		return
	}

	imagenURL := ""
	if file, err := c.FormFile(imagenFormField); err == nil && file != nil {
		imagenURL, err = h.guardarImagen(c, file)
		if err != nil {
			return // guardarImagen ya respondió
		}
	}

	destacado := false
	if req.Destacado != nil {
		destacado = *req.Destacado
	}

	evento, err := h.eventoService.Create(c.Request.Context(), services.CreateEventoInput{
		Nombre:          req.Nombre,
		Descripcion:     req.Descripcion,
		Ciudad:          req.Ciudad,
		Fecha:           fecha,
		NivelDificultad: req.NivelDificultad,
		ImagenURL:       imagenURL,
		Destacado:       destacado,
	})
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventoResponse(evento))
}

// Update aplica una actualización parcial sobre un evento
func (h *EventoHandler) Update(c *gin.Context) {
	var req dto.UpdateEventoRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponseI18n(c, dto.ValidationErrorsFromBinding(err)))
		return
	}

	patch, err := req.ToPatch()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.BadRequestErrorResponseI18n(c, "error.invalid_date"))
		return
	}

	evento, err := h.eventoService.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventoResponse(evento))
}

// Delete elimina un evento y su archivo de imagen asociado, si existe
func (h *EventoHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	evento, err := h.eventoService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	h.eliminarImagen(evento)

	deleted, err := h.eventoService.Delete(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, dto.NotFoundErrorResponseI18n(c, "error.event_not_found"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": dto.T(c, "msg.event_deleted"),
	})
}

// SearchNombre busca eventos por término en el nombre
func (h *EventoHandler) SearchNombre(c *gin.Context) {
	nombre := strings.TrimSpace(c.Query("nombre"))
	if nombre == "" {
		c.JSON(http.StatusBadRequest, dto.BadRequestErrorResponseI18n(c, "error.search_term_required"))
		return
	}

	eventos, err := h.eventoService.SearchByNombre(c.Request.Context(), nombre)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventoResponses(eventos))
}

// FilterDificultad filtra eventos por nivel de dificultad
func (h *EventoHandler) FilterDificultad(c *gin.Context) {
	nivel, err := entities.ParseNivelDificultad(c.Query("nivel"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.BadRequestErrorResponseI18n(c, "error.invalid_difficulty_level"))
		return
	}

	eventos, err := h.eventoService.FilterByDificultad(c.Request.Context(), nivel)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventoResponses(eventos))
}

// FilterCiudad filtra eventos por ciudad
func (h *EventoHandler) FilterCiudad(c *gin.Context) {
	ciudad := strings.TrimSpace(c.Query("ciudad"))
	if ciudad == "" {
		c.JSON(http.StatusBadRequest, dto.BadRequestErrorResponseI18n(c, "error.city_required"))
		return
	}

	eventos, err := h.eventoService.FilterByCiudad(c.Request.Context(), ciudad)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventoResponses(eventos))
}

// OrderNombre lista todos los eventos ordenados por nombre
func (h *EventoHandler) OrderNombre(c *gin.Context) {
	orden := c.DefaultQuery("orden", "asc")
	if orden != "asc" && orden != "desc" {
		c.JSON(http.StatusBadRequest, dto.BadRequestErrorResponseI18n(c, "error.invalid_sort_order"))
		return
	}

	eventos, err := h.eventoService.OrderByNombre(c.Request.Context(), orden)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventoResponses(eventos))
}

// Buscar combina filtros, búsqueda y ordenamiento en una sola consulta
func (h *EventoHandler) Buscar(c *gin.Context) {
	var query dto.FiltrarEventosQuery

	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponseI18n(c, dto.ValidationErrorsFromBinding(err)))
		return
	}

	if query.OrdenarPor != "" && !camposOrdenPermitidos[query.OrdenarPor] {
		c.JSON(http.StatusBadRequest, dto.BadRequestErrorResponseI18n(c, "error.invalid_sort_field"))
		return
	}

	eventos, err := h.eventoService.FilterAndSearch(c.Request.Context(), query.ToFilters())
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventoResponses(eventos))
}

// Proximos lista los próximos eventos por fecha ascendente.
// Una cantidad no numérica o no positiva cae al default.
func (h *EventoHandler) Proximos(c *gin.Context) {
	cantidad, err := strconv.Atoi(c.DefaultQuery("cantidad", "6"))
	if err != nil {
		cantidad = services.DefaultProximosCantidad
	}

	eventos, err := h.eventoService.Proximos(c.Request.Context(), cantidad)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventoResponses(eventos))
}

// Opciones enumera las facetas de filtrado disponibles
func (h *EventoHandler) Opciones(c *gin.Context) {
	niveles, ciudades, err := h.eventoService.OpcionesDeFiltro(c.Request.Context())
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.FiltrosOpcionesResponse{
		NivelesDificultad: niveles,
		Ciudades:          ciudades,
	})
}

// guardarImagen valida y persiste el archivo subido, retornando su URL
// pública. Si falla, responde el error y retorna err no-nil.
func (h *EventoHandler) guardarImagen(c *gin.Context, file *multipart.FileHeader) (string, error) {
	if file.Size > h.uploads.MaxSizeMB*1024*1024 {
		c.JSON(http.StatusBadRequest, dto.BadRequestErrorResponseI18n(c, "error.file_too_large"))
		return "", fmt.Errorf("file too large: %d bytes", file.Size)
	}

	contentType := file.Header.Get("Content-Type")
	if !tiposImagenPermitidos[contentType] {
		c.JSON(http.StatusBadRequest, dto.BadRequestErrorResponseI18n(c, "error.invalid_file_type"))
		return "", fmt.Errorf("invalid file type: %s", contentType)
	}

	filename := fmt.Sprintf("%d_%s", time.Now().UnixMilli(),
		strings.ReplaceAll(filepath.Base(file.Filename), " ", "_"))

	if err := os.MkdirAll(h.uploads.Dir, 0o755); err != nil {
		h.logger.Error("failed to create uploads dir", "dir", h.uploads.Dir, "error", err)
		c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
		return "", err
	}

	if err := c.SaveUploadedFile(file, filepath.Join(h.uploads.Dir, filename)); err != nil {
		h.logger.Error("failed to save uploaded file", "filename", filename, "error", err)
		c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
		return "", err
	}

	return h.uploads.PublicPath + "/" + filename, nil
}

// eliminarImagen borra del disco la imagen asociada al evento.
// Un fallo aquí no impide el borrado del evento.
func (h *EventoHandler) eliminarImagen(evento *entities.Evento) {
	if evento.ImagenURL == "" {
		return
	}

	filename := path.Base(evento.ImagenURL)
	if filename == "." || filename == "/" {
		return
	}

	if err := os.Remove(filepath.Join(h.uploads.Dir, filename)); err != nil && !os.IsNotExist(err) {
		h.logger.Warn("failed to remove evento image", "filename", filename, "error", err)
	}
}

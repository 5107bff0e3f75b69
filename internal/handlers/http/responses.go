package http

import (
	errs "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rutaviva/eventos-backend/internal/domain/errors"
	"github.com/rutaviva/eventos-backend/internal/domain/ports"
	"github.com/rutaviva/eventos-backend/internal/handlers/dto"
)

// respondServiceError traduce un error de dominio a su status HTTP.
// Los handlers son el único punto de traducción; los errores inesperados
// se loguean y el detalle interno nunca llega al cliente.
func respondServiceError(c *gin.Context, logger ports.Logger, err error) {
	switch {
	case errs.Is(err, errors.ErrUserNotFound),
		errs.Is(err, errors.ErrEventoNotFound),
		errs.Is(err, errors.ErrInscripcionNotFound):
		c.JSON(http.StatusNotFound, dto.NotFoundErrorResponseI18n(c, err.Error()))

	case errs.Is(err, errors.ErrEmailAlreadyExists),
		errs.Is(err, errors.ErrYaInscrito):
		c.JSON(http.StatusConflict, dto.ConflictErrorResponseI18n(c, err.Error()))

	case errs.Is(err, errors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c, err.Error()))

	case errs.Is(err, errors.ErrInvalidEmail),
		errs.Is(err, errors.ErrCamposRequeridos),
		errs.Is(err, errors.ErrInvalidNivelDificultad):
		c.JSON(http.StatusBadRequest, dto.BadRequestErrorResponseI18n(c, err.Error()))

	default:
		logger.Error("unexpected error handling request",
			"path", c.Request.URL.Path,
			"error", err,
		)
		c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
	}
}

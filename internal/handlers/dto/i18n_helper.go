package dto

import (
	"github.com/gin-gonic/gin"

	"github.com/rutaviva/eventos-backend/internal/handlers/middleware"
	"github.com/rutaviva/eventos-backend/internal/infrastructure/i18n"
)

// T es un helper para traducir mensajes en el contexto de Gin.
// Uso: dto.T(c, "error.not_found.detail", map[string]interface{}{"Resource": "Evento"})
func T(c *gin.Context, key string, params ...map[string]interface{}) string {
	i18nService, exists := c.Get(middleware.I18nServiceContextKey)
	if !exists {
		// Fallback: retornar la clave si el servicio no está disponible
		return key
	}

	service, ok := i18nService.(*i18n.Service)
	if !ok {
		return key
	}

	return service.T(GetLanguage(c), key, params...)
}

// GetLanguage retorna el idioma configurado en el contexto de la petición
func GetLanguage(c *gin.Context) string {
	lang, exists := c.Get(middleware.LanguageContextKey)
	if !exists {
		return "es"
	}

	langStr, ok := lang.(string)
	if !ok {
		return "es"
	}

	return langStr
}

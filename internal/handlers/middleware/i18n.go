package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rutaviva/eventos-backend/internal/infrastructure/i18n"
)

const (
	// LanguageContextKey es la clave usada para almacenar el idioma en el contexto de Gin
	LanguageContextKey = "language"
	// I18nServiceContextKey es la clave usada para almacenar el servicio i18n en el contexto
	I18nServiceContextKey = "i18n_service"
)

// I18nMiddleware gestiona la detección de idioma en las peticiones
type I18nMiddleware struct {
	i18nService *i18n.Service
}

// NewI18nMiddleware crea un nuevo middleware de i18n
func NewI18nMiddleware(i18nService *i18n.Service) *I18nMiddleware {
	return &I18nMiddleware{
		i18nService: i18nService,
	}
}

// DetectLanguage detecta y configura el idioma de la petición.
// Prioridad:
// 1. Query parameter ?lang=en (override explícito)
// 2. Header Accept-Language (preferencia del navegador)
// 3. Idioma por defecto (fallback)
func (m *I18nMiddleware) DetectLanguage() gin.HandlerFunc {
	return func(c *gin.Context) {
		var lang string

		if queryLang := c.Query("lang"); queryLang != "" {
			if m.i18nService.IsLanguageSupported(queryLang) {
				lang = queryLang
			}
		}

		if lang == "" {
			lang = m.parseAcceptLanguage(c.GetHeader("Accept-Language"))
		}

		if lang == "" {
			lang = m.i18nService.GetDefaultLanguage()
		}

		c.Set(LanguageContextKey, lang)
		c.Set(I18nServiceContextKey, m.i18nService)

		c.Next()
	}
}

// parseAcceptLanguage analiza el header Accept-Language y retorna el
// mejor idioma soportado.
// Ejemplo: "es-ES,es;q=0.9,en;q=0.8" -> "es"
func (m *I18nMiddleware) parseAcceptLanguage(acceptLang string) string {
	if acceptLang == "" {
		return ""
	}

	for _, lang := range strings.Split(acceptLang, ",") {
		lang = strings.TrimSpace(lang)
		if idx := strings.Index(lang, ";"); idx != -1 {
			lang = lang[:idx]
		}

		if m.i18nService.IsLanguageSupported(lang) {
			return lang
		}

		// Variante sin región (es-ES -> es)
		if idx := strings.Index(lang, "-"); idx != -1 {
			baseLang := lang[:idx]
			if m.i18nService.IsLanguageSupported(baseLang) {
				return baseLang
			}
		}
	}

	return ""
}

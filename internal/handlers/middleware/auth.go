package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/moogar0880/problems"

	"github.com/rutaviva/eventos-backend/internal/domain/errors"
	"github.com/rutaviva/eventos-backend/internal/infrastructure/i18n"
	"github.com/rutaviva/eventos-backend/internal/services"
)

const (
	// UserContextKey es la clave del contexto donde viven los claims del usuario
	UserContextKey = "user"
	// TokenCookieName es el nombre de la cookie de sesión
	TokenCookieName = "token"
)

// AuthMiddleware verifica el token JWT de las peticiones autenticadas
type AuthMiddleware struct {
	auth *services.AuthService
}

// NewAuthMiddleware crea un nuevo middleware de autenticación
func NewAuthMiddleware(auth *services.AuthService) *AuthMiddleware {
	return &AuthMiddleware{auth: auth}
}

// RequireAuth exige un token válido (cookie o header Authorization) y
// adjunta la identidad del usuario al contexto.
// Sin token: 401. Token inválido o expirado: 403.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)

		if token == "" {
			abortWithProblem(c, http.StatusUnauthorized, errors.ProblemTypeUnauthorized,
				"error.unauthorized.title", "error.unauthorized")
			return
		}

		claims := m.auth.VerifyToken(token)
		if claims == nil {
			abortWithProblem(c, http.StatusForbidden, errors.ProblemTypeForbidden,
				"error.forbidden.title", "error.forbidden")
			return
		}

		c.Set(UserContextKey, claims)
		c.Next()
	}
}

// extractToken obtiene el token de la cookie o del header Bearer
func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(TokenCookieName); err == nil && cookie != "" {
		return cookie
	}

	authHeader := c.GetHeader("Authorization")
	if after, ok := strings.CutPrefix(authHeader, "Bearer "); ok {
		return strings.TrimSpace(after)
	}

	return ""
}

// CurrentUser retorna los claims del usuario autenticado, si existen
func CurrentUser(c *gin.Context) *services.TokenClaims {
	value, exists := c.Get(UserContextKey)
	if !exists {
		return nil
	}

	claims, ok := value.(*services.TokenClaims)
	if !ok {
		return nil
	}

	return claims
}

// abortWithProblem responde un error RFC 7807 traducido y corta la cadena
func abortWithProblem(c *gin.Context, status int, problemType, titleKey, detailKey string) {
	baseURL := c.GetString("base_url")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	title, detail := titleKey, detailKey
	if value, exists := c.Get(I18nServiceContextKey); exists {
		if service, ok := value.(*i18n.Service); ok {
			lang, _ := c.Get(LanguageContextKey)
			langStr, _ := lang.(string)
			title = service.T(langStr, titleKey)
			detail = service.T(langStr, detailKey)
		}
	}

	c.AbortWithStatusJSON(status, problems.DefaultProblem{
		Type:     baseURL + problemType,
		Title:    title,
		Status:   status,
		Detail:   detail,
		Instance: c.Request.URL.Path,
	})
}

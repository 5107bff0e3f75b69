package http

import (
	errs "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rutaviva/eventos-backend/internal/domain/errors"
	"github.com/rutaviva/eventos-backend/internal/domain/ports"
	"github.com/rutaviva/eventos-backend/internal/handlers/dto"
	"github.com/rutaviva/eventos-backend/internal/handlers/middleware"
	"github.com/rutaviva/eventos-backend/internal/services"
)

// tokenCookieMaxAge coincide con la expiración del JWT (7 días)
const tokenCookieMaxAge = 7 * 24 * 60 * 60

// AuthHandler atiende las peticiones de registro, login y sesión
type AuthHandler struct {
	userService   *services.UserService
	authService   *services.AuthService
	logger        ports.Logger
	secureCookies bool
}

// NewAuthHandler crea un nuevo AuthHandler
func NewAuthHandler(
	userService *services.UserService,
	authService *services.AuthService,
	logger ports.Logger,
	secureCookies bool,
) *AuthHandler {
	return &AuthHandler{
		userService:   userService,
		authService:   authService,
		logger:        logger,
		secureCookies: secureCookies,
	}
}

// ListUsers lista todos los usuarios registrados
func (h *AuthHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponses(users))
}

// Register crea un usuario, emite el token JWT y configura la cookie de sesión
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponseI18n(c, dto.ValidationErrorsFromBinding(err)))
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), services.CreateUserInput{
		Nombre:      req.Nombre,
		Apellidos:   req.Apellidos,
		Email:       req.Email,
		Password:    req.Password,
		Genero:      req.Genero,
		TipoUsuario: req.TipoUsuario,
		Nivel:       req.Nivel,
	})
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	token, err := h.authService.GenerateToken(user)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	h.setTokenCookie(c, token)

	c.JSON(http.StatusCreated, dto.AuthResponse{
		User:  dto.ToUserResponse(user),
		Token: token,
	})
}

// Login valida credenciales, emite el token y establece la cookie de sesión
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponseI18n(c, dto.ValidationErrorsFromBinding(err)))
		return
	}

	user, token, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	h.setTokenCookie(c, token)

	c.JSON(http.StatusOK, dto.AuthResponse{
		Message: dto.T(c, "msg.login_success"),
		User:    dto.ToUserResponse(user),
		Token:   token,
	})
}

// Logout cierra la sesión eliminando la cookie del token
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.TokenCookieName, "", -1, "/", "", h.secureCookies, true)

	c.JSON(http.StatusOK, gin.H{
		"message": dto.T(c, "msg.logout_success"),
	})
}

// Me retorna los datos completos del usuario autenticado
func (h *AuthHandler) Me(c *gin.Context) {
	claims := middleware.CurrentUser(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c, "error.unauthorized"))
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), claims.UserID)
	if err != nil {
		if errs.Is(err, errors.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, dto.NotFoundErrorResponseI18n(c, err.Error()))
			return
		}
		respondServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// setTokenCookie configura la cookie httpOnly con el token de sesión
func (h *AuthHandler) setTokenCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.TokenCookieName, token, tokenCookieMaxAge, "/", "", h.secureCookies, true)
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rutaviva/eventos-backend/internal/domain/entities"
	"github.com/rutaviva/eventos-backend/internal/domain/valueobjects"
	"github.com/rutaviva/eventos-backend/internal/infrastructure/logging"
	"github.com/rutaviva/eventos-backend/internal/services"
)

func setupAuthTest(t *testing.T) (*AuthMiddleware, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := logging.NewSlogLogger("error")
	auth := services.NewAuthService(nil, logger, "test-secret", time.Hour, 4)

	email, err := valueobjects.NewEmail("ana@example.com")
	if err != nil {
		t.Fatalf("failed to build email: %v", err)
	}

	token, err := auth.GenerateToken(&entities.User{
		ID:          "user-1",
		Email:       email,
		TipoUsuario: entities.TipoCorredor,
	})
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	return NewAuthMiddleware(auth), token
}

func performProtectedRequest(middleware *AuthMiddleware, mutate func(*http.Request)) (*httptest.ResponseRecorder, *services.TokenClaims) {
	var claims *services.TokenClaims

	router := gin.New()
	router.GET("/protegido", middleware.RequireAuth(), func(c *gin.Context) {
		claims = CurrentUser(c)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protegido", nil)
	if mutate != nil {
		mutate(req)
	}
	router.ServeHTTP(w, req)

	return w, claims
}

func TestAuthMiddleware_RequireAuth(t *testing.T) {
	t.Run("sin token responde 401", func(t *testing.T) {
		middleware, _ := setupAuthTest(t)

		w, _ := performProtectedRequest(middleware, nil)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("esperaba status 401, obtuve %d", w.Code)
		}
	})

	t.Run("token inválido responde 403", func(t *testing.T) {
		middleware, _ := setupAuthTest(t)

		w, _ := performProtectedRequest(middleware, func(req *http.Request) {
			req.Header.Set("Authorization", "Bearer no-es-un-jwt")
		})

		if w.Code != http.StatusForbidden {
			t.Errorf("esperaba status 403, obtuve %d", w.Code)
		}
	})

	t.Run("token expirado responde 403", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		logger := logging.NewSlogLogger("error")
		expiredAuth := services.NewAuthService(nil, logger, "test-secret", time.Nanosecond, 4)

		email, err := valueobjects.NewEmail("ana@example.com")
		if err != nil {
			t.Fatalf("failed to build email: %v", err)
		}
		token, err := expiredAuth.GenerateToken(&entities.User{ID: "user-1", Email: email, TipoUsuario: entities.TipoEstandar})
		if err != nil {
			t.Fatalf("failed to generate token: %v", err)
		}
		time.Sleep(time.Millisecond)

		w, _ := performProtectedRequest(NewAuthMiddleware(expiredAuth), func(req *http.Request) {
			req.Header.Set("Authorization", "Bearer "+token)
		})

		if w.Code != http.StatusForbidden {
			t.Errorf("esperaba status 403, obtuve %d", w.Code)
		}
	})

	t.Run("token válido en el header Bearer permite el acceso", func(t *testing.T) {
		middleware, token := setupAuthTest(t)

		w, claims := performProtectedRequest(middleware, func(req *http.Request) {
			req.Header.Set("Authorization", "Bearer "+token)
		})

		if w.Code != http.StatusOK {
			t.Fatalf("esperaba status 200, obtuve %d", w.Code)
		}

		if claims == nil {
			t.Fatal("los claims no fueron definidos en el contexto")
		}
		if claims.UserID != "user-1" {
			t.Errorf("esperaba user id 'user-1', obtuve '%s'", claims.UserID)
		}
		if claims.Email != "ana@example.com" {
			t.Errorf("esperaba email 'ana@example.com', obtuve '%s'", claims.Email)
		}
		if claims.TipoUsuario != "CORREDOR" {
			t.Errorf("esperaba tipo 'CORREDOR', obtuve '%s'", claims.TipoUsuario)
		}
	})

	t.Run("token válido en la cookie permite el acceso", func(t *testing.T) {
		middleware, token := setupAuthTest(t)

		w, claims := performProtectedRequest(middleware, func(req *http.Request) {
			req.AddCookie(&http.Cookie{Name: TokenCookieName, Value: token})
		})

		if w.Code != http.StatusOK {
			t.Fatalf("esperaba status 200, obtuve %d", w.Code)
		}
		if claims == nil || claims.UserID != "user-1" {
			t.Error("los claims del token de la cookie no fueron definidos")
		}
	})
}

func TestCurrentUser(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("retorna nil cuando no hay usuario en el contexto", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())

		if CurrentUser(c) != nil {
			t.Error("esperaba nil sin usuario en el contexto")
		}
	})

	t.Run("retorna nil cuando el valor tiene otro tipo", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Set(UserContextKey, "no-son-claims")

		if CurrentUser(c) != nil {
			t.Error("esperaba nil para un valor de tipo incorrecto")
		}
	})
}

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rutaviva/eventos-backend/internal/handlers/dto"
	httphandlers "github.com/rutaviva/eventos-backend/internal/handlers/http"
	"github.com/rutaviva/eventos-backend/internal/handlers/middleware"
	"github.com/rutaviva/eventos-backend/internal/infrastructure/config"
	"github.com/rutaviva/eventos-backend/internal/infrastructure/i18n"
	"github.com/rutaviva/eventos-backend/internal/infrastructure/logging"
	"github.com/rutaviva/eventos-backend/internal/infrastructure/persistence/postgres"
	"github.com/rutaviva/eventos-backend/internal/services"
)

func main() {
	// Cargar configuración
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting eventos backend",
		"env", cfg.Env,
		"version", "dev",
	)

	// Conectar a la base de datos
	db, err := postgres.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}
	defer postgres.Close(db)

	// Migraciones
	if err := postgres.Migrate(db); err != nil {
		logger.Error("failed to run migrations", "error", err)
		log.Fatal(err)
	}

	// Inicializar i18n
	i18nService, err := i18n.NewService("es")
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		log.Fatal(err)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	// Validadores custom del binding
	if err := dto.RegisterCustomValidators(); err != nil {
		logger.Error("failed to register validators", "error", err)
		log.Fatal(err)
	}

	// Directorio de uploads
	if err := os.MkdirAll(cfg.Uploads.Dir, 0o755); err != nil {
		logger.Error("failed to create uploads dir", "dir", cfg.Uploads.Dir, "error", err)
		log.Fatal(err)
	}

	// Inicializar repositories
	userRepo := postgres.NewUserRepository(db)
	eventoRepo := postgres.NewEventoRepository(db)
	participacionRepo := postgres.NewParticipacionRepository(db)
	uow := postgres.NewUnitOfWork(db)

	// Inicializar services
	authService := services.NewAuthService(userRepo, logger, cfg.JWT.Secret, cfg.JWT.Expiry, cfg.Auth.BcryptCost)
	userService := services.NewUserService(userRepo, authService, logger)
	eventoService := services.NewEventoService(eventoRepo, logger)
	participacionService := services.NewParticipacionService(participacionRepo, userRepo, eventoRepo, uow, logger)

	// Inicializar handlers
	secureCookies := cfg.Env == "production"
	authHandler := httphandlers.NewAuthHandler(userService, authService, logger, secureCookies)
	eventoHandler := httphandlers.NewEventoHandler(eventoService, cfg.Uploads, logger)
	participacionHandler := httphandlers.NewParticipacionHandler(participacionService, logger)

	// Setup Gin
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// Middleware global para agregar la base URL al contexto
	router.Use(func(c *gin.Context) {
		c.Set("base_url", cfg.Server.BaseURL)
		c.Next()
	})

	// Middleware i18n
	i18nMiddleware := middleware.NewI18nMiddleware(i18nService)
	router.Use(i18nMiddleware.DetectLanguage())

	// Middleware CORS
	router.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Middleware de autenticación
	authMiddleware := middleware.NewAuthMiddleware(authService)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"env":    cfg.Env,
		})
	})

	// Archivos subidos
	router.Static(cfg.Uploads.PublicPath, cfg.Uploads.Dir)

	// API routes
	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.GET("", authHandler.ListUsers)
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", authMiddleware.RequireAuth(), authHandler.Me)
		}

		eventos := v1.Group("/eventos")
		{
			eventos.GET("", eventoHandler.List)
			eventos.GET("/proximos", eventoHandler.Proximos)
			eventos.GET("/filtros/opciones", eventoHandler.Opciones)
			eventos.GET("/buscar/nombre", eventoHandler.SearchNombre)
			eventos.GET("/filtrar/dificultad", eventoHandler.FilterDificultad)
			eventos.GET("/filtrar/ciudad", eventoHandler.FilterCiudad)
			eventos.GET("/ordenar/nombre", eventoHandler.OrderNombre)
			eventos.GET("/buscar", eventoHandler.Buscar)
			eventos.GET("/:id", eventoHandler.GetByID)
			eventos.POST("", eventoHandler.Create)
			eventos.PUT("/:id", eventoHandler.Update)
			eventos.DELETE("/:id", eventoHandler.Delete)
		}

		participaciones := v1.Group("/participaciones")
		{
			participaciones.POST("/inscribir", participacionHandler.Inscribir)
			participaciones.DELETE("/:userId/:eventoId", participacionHandler.Cancelar)
			participaciones.GET("/usuario/:userId", participacionHandler.PorUsuario)
			participaciones.GET("/evento/:eventoId", participacionHandler.PorEvento)
			participaciones.GET("/verificar/:userId/:eventoId", participacionHandler.Verificar)
		}
	}

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}

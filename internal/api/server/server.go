package server

import (
	"log/slog"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/develop-y-minami/v-spa/internal/api"
	"github.com/develop-y-minami/v-spa/internal/api/handlers"
	"github.com/develop-y-minami/v-spa/internal/api/middleware"
	"github.com/develop-y-minami/v-spa/internal/config"
	database "github.com/develop-y-minami/v-spa/internal/db"
	"github.com/develop-y-minami/v-spa/internal/repository"
	"github.com/develop-y-minami/v-spa/internal/service"
	"github.com/develop-y-minami/v-spa/internal/validation"
)

type Server struct {
	cfg    *config.Config
	db     *database.Client
	router *gin.Engine
}

// New wires the whole request path by hand: repositories, services,
// validator and handlers are built here and passed down. No container.
func New(cfg *config.Config, db *database.Client) *Server {
	if cfg.Server.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode) // Set to Release for production
	}

	s := &Server{
		cfg:    cfg,
		db:     db,
		router: gin.New(),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(gin.Logger())

	// Whatever blew up stays in the server log; the client sees the
	// generic envelope only.
	s.router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		slog.Error("panic recovered", "path", c.Request.URL.Path, "panic", recovered)
		c.Abort()
		api.Error(c, http.StatusInternalServerError, "An unexpected error occurred")
	}))

	s.router.Use(middleware.RequireSupportedProto())
	s.router.Use(middleware.Metrics())

	// CORS Configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}

	s.router.Use(cors.New(corsConfig))
}

func (s *Server) setupRoutes() {
	// Explicit construction, leaf to root
	userRepo := repository.NewUserRepository(s.db.DB)
	roleCodeRepo := repository.NewRoleCodeRepository(s.db.DB)

	userHandler := handlers.NewUserHandler(
		service.NewUserService(userRepo),
		validation.NewUserValidator(s.db.DB),
	)
	roleCodeHandler := handlers.NewRoleCodeHandler(
		service.NewRoleCodeService(roleCodeRepo),
	)

	// Health Check
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "v-spa"})
	})

	apiGroup := s.router.Group("/api")
	{
		apiGroup.GET("/users", userHandler.List)
		apiGroup.POST("/users", userHandler.Create)
		apiGroup.DELETE("/users/:id", userHandler.Delete)

		apiGroup.GET("/role-codes", roleCodeHandler.List)
		apiGroup.GET("/role-codes/:id", roleCodeHandler.Show)
	}

	s.router.NoRoute(func(c *gin.Context) {
		api.Error(c, http.StatusNotFound, "Resource not found")
	})
}

// Router exposes the gin engine, mainly for httptest.
func (s *Server) Router() *gin.Engine {
	return s.router
}

func (s *Server) Start(port string) error {
	return s.router.Run(port)
}

package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/dpatel-fit/smart-health-advisor/backend/config"
	"github.com/dpatel-fit/smart-health-advisor/backend/internal/api"
	"github.com/dpatel-fit/smart-health-advisor/backend/internal/catalog"
	"github.com/dpatel-fit/smart-health-advisor/backend/internal/database"
	"github.com/dpatel-fit/smart-health-advisor/backend/internal/middleware"
	"github.com/dpatel-fit/smart-health-advisor/backend/internal/service"
)

// Server wires the services and handlers over one router.
type Server struct {
	router *gin.Engine
	http   *http.Server
	db     *gorm.DB
}

// New builds the server from its dependencies. The catalog snapshot is
// loaded once by the caller and shared read-only by every request. A
// nil S3 config leaves animation URLs unresolvable but the rest of the
// surface working.
func New(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, s3Cfg *config.S3Config, cat *catalog.Catalog) *Server {
	router := gin.Default()
	router.Use(middleware.CORS())

	auth := service.NewAuthService(db, redisClient, cfg.JWTSecret)
	profile := service.NewProfileService(db)
	plans := service.NewPlanService(db, cat)
	assets := service.NewAssetService(s3Cfg, cat)
	tracking := service.NewTrackingService(db, cat)

	v1 := router.Group("/api/v1")
	api.NewAuthHandler(auth).RegisterRoutes(v1)
	api.NewProfileHandler(profile, auth).RegisterRoutes(v1)
	api.NewPlanHandler(plans, assets, auth).RegisterRoutes(v1)
	api.NewTrackingHandler(tracking, auth).RegisterRoutes(v1)

	router.GET("/health", func(c *gin.Context) {
		if err := database.HealthCheck(c.Request.Context(), db); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return &Server{
		router: router,
		http: &http.Server{
			Addr:    cfg.ServerHost + ":" + cfg.ServerPort,
			Handler: router,
		},
		db: db,
	}
}

// Router exposes the underlying handler, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Start starts the server
func (s *Server) Start() error {
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

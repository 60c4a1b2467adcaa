// Package server assembles the HTTP API.
package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"rentorbuy/internal/config"
	"rentorbuy/internal/handlers"
	"rentorbuy/internal/middleware"
	"rentorbuy/internal/services"
	"rentorbuy/internal/validator"

	_ "rentorbuy/internal/docs" // Import swagger docs
)

// Banner is the plain greeting served at the root path.
const Banner = "Rent vs Buy Simulator API is running"

// Dependencies are the services the router hands to its handlers.
type Dependencies struct {
	Config            *config.Config
	SimulationService services.SimulationServicer
	AuditService      services.AuditServicer
	// RateLimiter may be nil to disable per-client limiting.
	RateLimiter *middleware.RateLimiter
}

// NewRouter builds the Gin engine with every route registered.
func NewRouter(deps Dependencies) *gin.Engine {
	validator.Register()

	simulationHandler := handlers.NewSimulationHandler(deps.SimulationService, deps.AuditService)
	auditHandler := handlers.NewAuditHandler(deps.AuditService)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(cors.New(corsConfig(deps.Config.AllowedOrigins)))
	router.NoRoute(middleware.NotFound())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": Banner})
	})

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	limited := middleware.RateLimit(deps.RateLimiter)

	// Legacy path kept for existing clients.
	router.POST("/simulate", limited, simulationHandler.Simulate)

	// API v1 group
	v1 := router.Group("/api/v1")
	v1.GET("/defaults", simulationHandler.Defaults)
	v1.POST("/simulate", limited, simulationHandler.Simulate)
	v1.POST("/schedule", limited, simulationHandler.Schedule)

	admin := v1.Group("/admin")
	admin.Use(middleware.AdminAPIKey(deps.Config.AdminAPIKey))
	admin.GET("/audit-logs", auditHandler.ListAuditLogs)

	return router
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "X-API-Key", "X-Request-ID"},
		ExposeHeaders: []string{"X-Request-ID", "Retry-After"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

// Package http wires the HTTP layer: repositories, use cases, handlers and
// middleware.
package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	vehicleusecases "pitstop/internal/application/vehicle/usecases"
	warrantyusecases "pitstop/internal/application/warranty/usecases"
	"pitstop/internal/domain/warranty"
	"pitstop/internal/infrastructure/config"
	"pitstop/internal/infrastructure/repository"
	"pitstop/internal/interfaces/http/handlers"
	"pitstop/internal/interfaces/http/middleware"
	"pitstop/internal/shared/db"
	"pitstop/internal/shared/logger"
)

// Router represents the HTTP router configuration
type Router struct {
	engine          *gin.Engine
	warrantyHandler *handlers.WarrantyHandler
	vehicleHandler  *handlers.VehicleHandler
	rateLimiter     *middleware.RateLimiter
	allowedOrigins  []string
	log             logger.Interface
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(database *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	vehicleRepo := repository.NewVehicleRepository(database)
	catalogRepo := repository.NewComponentCatalogRepository(database)
	defaultsRepo := repository.NewCoverageDefaultsRepository(database)
	assignmentRepo := repository.NewCoverageAssignmentRepository(database)

	txManager := db.NewTransactionManager(database)
	resolver := warranty.NewAssignmentResolver(warranty.BaselineMatrix(), cfg.Warranty.MaxOverrideYears)
	evaluator := warranty.NewStatusEvaluator(cfg.Warranty.ExpiringSoonThreshold)

	activateUC := warrantyusecases.NewActivateWarrantyUseCase(
		vehicleRepo, catalogRepo, defaultsRepo, assignmentRepo, resolver, txManager, log)
	statusUC := warrantyusecases.NewGetVehicleWarrantyStatusUseCase(
		vehicleRepo, catalogRepo, assignmentRepo, evaluator, log)
	listComponentsUC := warrantyusecases.NewListComponentsUseCase(catalogRepo, log)
	getVehicleUC := vehicleusecases.NewGetVehicleUseCase(vehicleRepo, log)

	warrantyHandler := handlers.NewWarrantyHandler(activateUC, statusUC, listComponentsUC, log)
	vehicleHandler := handlers.NewVehicleHandler(getVehicleUC, log)

	var rateLimiter *middleware.RateLimiter
	if redisClient != nil {
		rateLimiter = middleware.NewRateLimiter(
			redisClient, cfg.RateLimit.RequestsPerMinute, time.Minute)
	}

	return &Router{
		engine:          engine,
		warrantyHandler: warrantyHandler,
		vehicleHandler:  vehicleHandler,
		rateLimiter:     rateLimiter,
		allowedOrigins:  cfg.Server.AllowedOrigins,
		log:             log,
	}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.RequestLogger(r.log))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(r.allowedOrigins))
	if r.rateLimiter != nil {
		r.engine.Use(r.rateLimiter.Limit())
	}

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.engine.Group("/api/v1")
	{
		vehicles := v1.Group("/vehicles")
		{
			vehicles.GET("/:id", r.vehicleHandler.GetVehicle)
			vehicles.GET("/:id/warranty", r.warrantyHandler.GetWarrantyStatus)
			vehicles.POST("/:id/warranty/activations", r.warrantyHandler.ActivateWarranty)
		}

		v1.GET("/warranty/components", r.warrantyHandler.ListComponents)
	}
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

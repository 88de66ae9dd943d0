// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"cadastro/internal/notifications"
	"cadastro/internal/registrants"
	"cadastro/internal/shared/config"
	"cadastro/internal/shared/database"
	"cadastro/pkg/cache"
)

// Router holds all route dependencies
type Router struct {
	config   *config.Config
	db       *database.DB
	producer notifications.Producer
}

// NewRouter creates a new router instance. producer may be nil when Kafka is
// disabled or unreachable.
func NewRouter(cfg *config.Config, db *database.DB, producer notifications.Producer) *Router {
	return &Router{
		config:   cfg,
		db:       db,
		producer: producer,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	// Health check and basic info endpoints
	r.setupHealthRoutes(engine)

	// Landing page
	engine.StaticFile("/", "./public/index.html")

	// Registration and lookup routes
	r.setupRegistrantRoutes(engine)
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "cadastro",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "cadastro",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})
}

// setupRegistrantRoutes configures the registrant module
func (r *Router) setupRegistrantRoutes(engine *gin.Engine) {
	var cacheSvc cache.Service
	if client := r.db.GetRedisClient(); client != nil {
		cacheSvc = cache.NewService(client)
	}

	repo := registrants.NewRepository(r.db.GetPostgreSQL())
	service := registrants.NewService(repo, cacheSvc, r.config.Redis.CacheTTL, r.producer)
	controller := registrants.NewController(service)
	registrantRouter := registrants.NewRouter(controller)

	registrantRouter.SetupRoutes(engine)
}

package http

import (
	"github.com/gin-gonic/gin"
	"github.com/pawpick/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	// Service banner and health check
	router.GET("/", handler.Root)
	router.GET("/health", handler.HealthCheck)

	// API routes
	api := router.Group("/api")
	{
		api.GET("/search", handler.Search)
		api.GET("/recommend", handler.Recommend)
		api.GET("/products", handler.Products)
		api.GET("/product/:product_id", handler.Product)
		api.GET("/categories", handler.Categories)
	}

	return router
}

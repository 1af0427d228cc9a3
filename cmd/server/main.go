package main

import (
	"fmt"
	"log"
	"os"

	"github.com/pawpick/backend/config"
	httpDelivery "github.com/pawpick/backend/internal/delivery/http"
	"github.com/pawpick/backend/internal/domain"
	"github.com/pawpick/backend/internal/infrastructure/cache"
	"github.com/pawpick/backend/internal/infrastructure/petbacker"
	"github.com/pawpick/backend/internal/infrastructure/petexpress"
	"github.com/pawpick/backend/internal/infrastructure/tavily"
	"github.com/pawpick/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting PawPick Backend v1.1.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Catalog: %s", cfg.Catalog.BaseURL)

	// Initialize infrastructure dependencies
	memoryCache := cache.NewMemoryCache()
	log.Printf("Search cache TTL: %s", cfg.Cache.TTL)

	catalogClient := petexpress.NewClient(cfg.Catalog.BaseURL, cfg.Catalog.Timeout, cfg.Catalog.RequestsPerMinute)

	// Enable debug mode in development environment
	if cfg.Server.Environment == "development" {
		catalogClient.SetDebug(true)
		log.Printf("Catalog client debug mode enabled")
	}

	reviewClient := tavily.NewClient(cfg.Reviews.APIKey, cfg.Reviews.BaseURL, cfg.Reviews.Timeout)
	if reviewClient.Configured() {
		log.Printf("Review search configured: %s", cfg.Reviews.BaseURL)
	} else {
		log.Printf("WARNING: Review search API key not set - recommendations will score without review evidence")
	}

	var groomerDirectory domain.GroomerDirectory
	if cfg.Groomers.Enabled {
		groomerDirectory = petbacker.NewClient(cfg.Groomers.BaseURL, cfg.Catalog.Timeout)
		log.Printf("Groomer directory: %s", cfg.Groomers.BaseURL)
	}

	// Initialize usecase layer
	searchService := usecase.NewSearchService(catalogClient, memoryCache, cfg.Cache.TTL)
	recommendService := usecase.NewRecommendationService(
		searchService,
		reviewClient,
		groomerDirectory,
		usecase.RecommendationConfig{
			MaxReviewsPerItem:    cfg.Reviews.MaxPerItem,
			MaxConcurrentFetches: cfg.Recommend.MaxConcurrentFetches,
			FetchTimeout:         cfg.Reviews.Timeout,
			GroomersEnabled:      cfg.Groomers.Enabled,
			GroomerLocation:      cfg.Groomers.Location,
			MaxGroomers:          cfg.Groomers.MaxResults,
		},
	)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(searchService, recommendService)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}

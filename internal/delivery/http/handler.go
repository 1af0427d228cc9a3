package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pawpick/backend/internal/domain"
	"github.com/pawpick/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	search    *usecase.SearchService
	recommend *usecase.RecommendationService
}

// NewHandler creates a new HTTP handler
func NewHandler(search *usecase.SearchService, recommend *usecase.RecommendationService) *Handler {
	return &Handler{
		search:    search,
		recommend: recommend,
	}
}

// errorDetail writes the standard error body shape: {"detail": "<message>"}.
func errorDetail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"detail": message})
}

// abortOnDomainError maps domain errors to HTTP statuses. Returns true when
// a response was written.
func abortOnDomainError(c *gin.Context, err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, domain.ErrInvalidRequest):
		errorDetail(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrProductNotFound):
		errorDetail(c, http.StatusNotFound, "Product not found")
	default:
		errorDetail(c, http.StatusInternalServerError, err.Error())
	}
	return true
}

// intQuery parses an integer query parameter with a default and inclusive
// bounds. A value outside the bounds is a validation error, not a silent
// clamp.
func intQuery(c *gin.Context, name string, defaultValue, min, max int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", name)
	}
	if value < min || value > max {
		return 0, fmt.Errorf("%s must be between %d and %d", name, min, max)
	}
	return value, nil
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "pawpick-backend",
		"version": "1.1.0",
	})
}

// Root returns a small service banner listing the available endpoints.
func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to the PawPick API",
		"endpoints": []string{
			"/api/search?query={search_term}",
			"/api/recommend?query={search_term}&dog_breed={breed}&age={puppy|adult}",
			"/api/products",
			"/api/product/{product_id}",
			"/api/categories",
		},
	})
}

// Search handles plain catalog search with relevance ranking.
// GET /api/search?query&page&limit
func (h *Handler) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("query"))
	if query == "" {
		errorDetail(c, http.StatusBadRequest, "query parameter is required")
		return
	}

	page, err := intQuery(c, "page", 1, 1, 1000000)
	if err != nil {
		errorDetail(c, http.StatusBadRequest, err.Error())
		return
	}
	limit, err := intQuery(c, "limit", 20, 1, 100)
	if err != nil {
		errorDetail(c, http.StatusBadRequest, err.Error())
		return
	}

	results, err := h.search.Search(c.Request.Context(), query, page, limit)
	if abortOnDomainError(c, err) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"query":   query,
		"count":   len(results),
		"page":    page,
		"limit":   limit,
		"data":    results,
	})
}

// Recommend handles breed/age-aware product recommendations.
// GET /api/recommend?query&dog_breed&age&page&limit&max_recommendations&include_groomers
func (h *Handler) Recommend(c *gin.Context) {
	query := strings.TrimSpace(c.Query("query"))
	if query == "" {
		errorDetail(c, http.StatusBadRequest, "query parameter is required")
		return
	}

	breed := strings.TrimSpace(c.Query("dog_breed"))
	if breed == "" {
		errorDetail(c, http.StatusBadRequest, "dog_breed parameter is required")
		return
	}

	age := strings.ToLower(strings.TrimSpace(c.Query("age")))
	if age != "puppy" && age != "adult" {
		errorDetail(c, http.StatusBadRequest, "age must be one of: puppy, adult")
		return
	}

	page, err := intQuery(c, "page", 1, 1, 1000000)
	if err != nil {
		errorDetail(c, http.StatusBadRequest, err.Error())
		return
	}
	limit, err := intQuery(c, "limit", 10, 1, 20)
	if err != nil {
		errorDetail(c, http.StatusBadRequest, err.Error())
		return
	}
	maxRecommendations, err := intQuery(c, "max_recommendations", 5, 1, 10)
	if err != nil {
		errorDetail(c, http.StatusBadRequest, err.Error())
		return
	}

	includeGroomers := true
	if raw := c.Query("include_groomers"); raw != "" {
		includeGroomers, err = strconv.ParseBool(raw)
		if err != nil {
			errorDetail(c, http.StatusBadRequest, "include_groomers must be a boolean")
			return
		}
	}

	result, err := h.recommend.Recommend(c.Request.Context(), query, breed, age, page, limit, maxRecommendations)
	if abortOnDomainError(c, err) {
		return
	}

	response := gin.H{
		"success":         true,
		"query":           result.Query,
		"dog_breed":       result.DogBreed,
		"age":             result.Age,
		"count":           len(result.Recommendations),
		"recommendations": result.Recommendations,
		"summary":         result.Summary,
	}

	if includeGroomers {
		groomers, groomerSummary := h.recommend.RecommendGroomers(c.Request.Context(), breed)
		if len(groomers) > 0 {
			response["groomer_count"] = len(groomers)
			response["groomer_recommendations"] = groomers
			response["groomer_summary"] = groomerSummary
		}
	}

	c.JSON(http.StatusOK, response)
}

// Products lists catalog items, optionally filtered by category.
// GET /api/products?category&page&limit
func (h *Handler) Products(c *gin.Context) {
	page, err := intQuery(c, "page", 1, 1, 1000000)
	if err != nil {
		errorDetail(c, http.StatusBadRequest, err.Error())
		return
	}
	limit, err := intQuery(c, "limit", 20, 1, 100)
	if err != nil {
		errorDetail(c, http.StatusBadRequest, err.Error())
		return
	}

	items, err := h.search.Products(c.Request.Context(), c.Query("category"), page, limit)
	if abortOnDomainError(c, err) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(items),
		"page":    page,
		"limit":   limit,
		"data":    items,
	})
}

// Product fetches details for one product.
// GET /api/product/{product_id}
func (h *Handler) Product(c *gin.Context) {
	productID := c.Param("product_id")

	details, err := h.search.ProductDetails(c.Request.Context(), productID)
	if abortOnDomainError(c, err) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    details,
	})
}

// Categories lists the storefront navigation categories.
// GET /api/categories
func (h *Handler) Categories(c *gin.Context) {
	categories, err := h.search.Categories(c.Request.Context())
	if abortOnDomainError(c, err) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(categories),
		"data":    categories,
	})
}

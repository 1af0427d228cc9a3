package domain

import (
	"context"
	"time"
)

// CatalogClient defines the interface for the external product catalog.
type CatalogClient interface {
	Search(ctx context.Context, query string) ([]CatalogItem, error)
	Products(ctx context.Context, category string, page int) ([]CatalogItem, error)
	ProductDetails(ctx context.Context, productID string) (*ProductDetails, error)
	Categories(ctx context.Context) ([]Category, error)
}

// ReviewSearcher defines the interface for the external web-search service
// used to gather review text. Implementations report whether they are
// configured so callers can degrade gracefully instead of erroring.
type ReviewSearcher interface {
	Configured() bool
	Search(ctx context.Context, query string, maxResults int) ([]ReviewSnippet, error)
}

// GroomerDirectory defines the interface for the external groomer listing.
type GroomerDirectory interface {
	SearchGroomers(ctx context.Context, breed, location string, maxResults int) ([]GroomerProfile, error)
}

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

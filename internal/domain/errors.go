package domain

import "errors"

var (
	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrProductNotFound is returned when a product page does not exist
	ErrProductNotFound = errors.New("product not found")

	// ErrUpstreamUnavailable is returned when the catalog source is
	// unreachable or returns a malformed page
	ErrUpstreamUnavailable = errors.New("catalog source unavailable")

	// ErrReviewSearchUnavailable is returned by the review transport when
	// the web-search service cannot be reached; callers absorb it into an
	// empty snippet list
	ErrReviewSearchUnavailable = errors.New("review search unavailable")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")
)

package domain

import "errors"

var (
	// ErrNoSafeMeals is returned when allergy/medical filtering leaves zero
	// candidates even at maximum relaxation. This is the one domain failure
	// that must never be papered over by picking an unsafe meal.
	ErrNoSafeMeals = errors.New("no safe meals available for the requested constraints")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrMealNotFound is returned when a catalog lookup by id fails
	ErrMealNotFound = errors.New("meal not found in catalog")

	// ErrCatalogInvalid is returned when the catalog data fails validation at load
	ErrCatalogInvalid = errors.New("invalid meal catalog")

	// ErrRateLimited is returned when rate limit is exceeded
	ErrRateLimited = errors.New("rate limit exceeded")
)

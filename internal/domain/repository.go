package domain

import (
	"context"
	"time"
)

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// MealCatalog is the read-only view of the meal catalog the planner consumes.
// Implementations load once at process start and never mutate afterwards.
type MealCatalog interface {
	// All returns every catalog record in catalog order.
	All() []MealRecord
	// ByType returns the records of one meal type in catalog order.
	ByType(t MealType) []MealRecord
	// DietStyles returns the set of diet-style labels present in the catalog.
	DietStyles() map[string]bool
	// Get looks a record up by id.
	Get(id string) (*MealRecord, error)
}

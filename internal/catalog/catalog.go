package catalog

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/Gaz2600/bitetrak/internal/domain"
)

// Catalog is the in-memory meal catalog. It is built once at process start
// and read-only afterwards, so it is safe to share across requests without
// locking.
type Catalog struct {
	meals      []domain.MealRecord
	byType     map[domain.MealType][]domain.MealRecord
	byID       map[string]*domain.MealRecord
	dietStyles map[string]bool
}

// Load builds a catalog from the embedded dataset, or from an external JSON
// file when path is non-empty.
func Load(path string) (*Catalog, error) {
	data := embeddedMeals
	source := "embedded"
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog file: %w", err)
		}
		data = b
		source = path
	}

	var meals []domain.MealRecord
	if err := json.Unmarshal(data, &meals); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogInvalid, err)
	}

	c, err := New(meals)
	if err != nil {
		return nil, err
	}

	log.Printf("[CATALOG] Loaded %d meals from %s (%d diet styles)",
		len(c.meals), source, len(c.dietStyles))
	return c, nil
}

// New validates the given records and builds the lookup indexes.
func New(meals []domain.MealRecord) (*Catalog, error) {
	if len(meals) == 0 {
		return nil, fmt.Errorf("%w: catalog is empty", domain.ErrCatalogInvalid)
	}

	c := &Catalog{
		meals:      meals,
		byType:     make(map[domain.MealType][]domain.MealRecord),
		byID:       make(map[string]*domain.MealRecord, len(meals)),
		dietStyles: make(map[string]bool),
	}

	for i := range c.meals {
		m := &c.meals[i]
		if m.ID == "" {
			return nil, fmt.Errorf("%w: meal %d has no id", domain.ErrCatalogInvalid, i)
		}
		if _, dup := c.byID[m.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate meal id %q", domain.ErrCatalogInvalid, m.ID)
		}
		if !domain.ValidMealType(m.MealType) {
			return nil, fmt.Errorf("%w: meal %q has unknown meal type %q", domain.ErrCatalogInvalid, m.ID, m.MealType)
		}
		if m.BaseCalories <= 0 {
			return nil, fmt.Errorf("%w: meal %q has non-positive calories", domain.ErrCatalogInvalid, m.ID)
		}

		c.byID[m.ID] = m
		c.byType[m.MealType] = append(c.byType[m.MealType], *m)
		for _, style := range m.DietStyles {
			c.dietStyles[style] = true
		}
	}

	return c, nil
}

// All returns every catalog record in catalog order.
func (c *Catalog) All() []domain.MealRecord {
	return c.meals
}

// ByType returns the records of one meal type in catalog order.
func (c *Catalog) ByType(t domain.MealType) []domain.MealRecord {
	return c.byType[t]
}

// DietStyles returns the set of diet-style labels present in the catalog.
func (c *Catalog) DietStyles() map[string]bool {
	return c.dietStyles
}

// Get looks a record up by id.
func (c *Catalog) Get(id string) (*domain.MealRecord, error) {
	m, ok := c.byID[id]
	if !ok {
		return nil, domain.ErrMealNotFound
	}
	return m, nil
}

// Size returns the number of records in the catalog.
func (c *Catalog) Size() int {
	return len(c.meals)
}

package usecase

import (
	"github.com/Gaz2600/bitetrak/internal/domain"
)

// PoolBuilder produces the progressively relaxed candidate pools for one
// meal-type slot. Allergy and medical screens are applied to the base pool
// and never relaxed; diet style and safety flags are dropped in a fixed
// order when the stricter pools come up empty.
type PoolBuilder struct {
	catalog          domain.MealCatalog
	balancedMatchAny bool
}

// NewPoolBuilder creates a pool builder over the given catalog.
// balancedMatchAny controls whether a meal tagged "balanced" satisfies any
// requested diet (policy knob; the historical variants disagreed).
func NewPoolBuilder(catalog domain.MealCatalog, balancedMatchAny bool) *PoolBuilder {
	return &PoolBuilder{catalog: catalog, balancedMatchAny: balancedMatchAny}
}

// dietMatches applies the diet-style policy for one meal.
func (b *PoolBuilder) dietMatches(m *domain.MealRecord, diet string) bool {
	if diet == DietBalanced {
		return true
	}
	if m.HasDietStyle(diet) {
		return true
	}
	return b.balancedMatchAny && m.HasDietStyle(DietBalanced)
}

// flagsMatch reports whether the meal carries every required safety flag.
func flagsMatch(m *domain.MealRecord, want domain.SafetyFlags) bool {
	if want.IBSSafe && !m.Flags.IBSSafe {
		return false
	}
	if want.GlutenFree && !m.Flags.GlutenFree {
		return false
	}
	if want.ImmuneSafe && !m.Flags.ImmuneSafe {
		return false
	}
	return true
}

// BasePool returns every meal of the given type that passes the inviolable
// allergy and medical screens. An empty result means the catalog simply has
// no safe meal of this type for the request.
func (b *PoolBuilder) BasePool(mealType domain.MealType, req *domain.PlanRequest) []domain.MealRecord {
	var out []domain.MealRecord
	for _, m := range b.catalog.ByType(mealType) {
		if hardConstraintsSafe(&m, req) {
			out = append(out, m)
		}
	}
	return out
}

// BuildPools returns the non-empty candidate pools for the slot, most
// specific first:
//
//  1. strict: diet style AND all required safety flags
//  2. relaxed-diet: required safety flags only
//  3. relaxed-all: the base pool itself
//
// Every pool is a subset of the allergy/medical-safe base pool. An empty
// slice means even the base pool was empty and the selector must fall
// through to its last-resort logic.
func (b *PoolBuilder) BuildPools(mealType domain.MealType, req *domain.PlanRequest) [][]domain.MealRecord {
	base := b.BasePool(mealType, req)
	if len(base) == 0 {
		return nil
	}

	var strict, relaxedDiet []domain.MealRecord
	for _, m := range base {
		if !flagsMatch(&m, req.Flags) {
			continue
		}
		relaxedDiet = append(relaxedDiet, m)
		if b.dietMatches(&m, req.DietStyle) {
			strict = append(strict, m)
		}
	}

	pools := make([][]domain.MealRecord, 0, 3)
	if len(strict) > 0 {
		pools = append(pools, strict)
	}
	if len(relaxedDiet) > 0 {
		pools = append(pools, relaxedDiet)
	}
	pools = append(pools, base)
	return pools
}

package usecase

import (
	"math"
	"sort"

	"github.com/Gaz2600/bitetrak/internal/domain"
)

// Selector defaults.
const (
	defaultMaxPerWeek = 2  // weekly repetition cap per meal
	defaultTopK       = 10 // candidates kept after scoring before the random pick
)

// SlotSelector chooses one meal for a (day, slot) pair, honoring repetition
// limits and calorie proximity with graceful degradation.
type SlotSelector struct {
	catalog    domain.MealCatalog
	rng        RandSource
	maxPerWeek int
	topK       int
}

// NewSlotSelector creates a selector. maxPerWeek and topK fall back to the
// defaults (2 and 10) when non-positive.
func NewSlotSelector(catalog domain.MealCatalog, rng RandSource, maxPerWeek, topK int) *SlotSelector {
	if maxPerWeek <= 0 {
		maxPerWeek = defaultMaxPerWeek
	}
	if topK <= 0 {
		topK = defaultTopK
	}
	return &SlotSelector{catalog: catalog, rng: rng, maxPerWeek: maxPerWeek, topK: topK}
}

// usageState is the per-generation repetition bookkeeping, threaded through
// the orchestration explicitly rather than kept in ambient globals.
type usageState struct {
	weekly  map[string]int  // meal id -> times selected this week
	dayUsed map[string]bool // meal ids already selected today
}

func newUsageState() *usageState {
	return &usageState{
		weekly:  make(map[string]int),
		dayUsed: make(map[string]bool),
	}
}

// resetDay clears the same-day exclusion set at each new weekday.
func (u *usageState) resetDay() {
	u.dayUsed = make(map[string]bool)
}

// record marks a chosen meal in both counters. Must be called after every
// successful pick, before the next slot is filled.
func (u *usageState) record(id string) {
	u.weekly[id]++
	u.dayUsed[id] = true
}

// Pick selects one meal for the slot. pools come from the PoolBuilder in
// strict-to-relaxed order; slotTarget is the calorie budget for this slot.
//
// Relaxation ladder, returning on first success:
//  1. each pool, excluding same-day repeats and meals at the weekly cap
//  2. each pool, excluding same-day repeats only
//  3. any allergy/medical-safe meal of the requested type, uniform random
//  4. any allergy/medical-safe meal at all, uniform random
//
// If step 4 finds nothing the request is unsatisfiable: allergy and medical
// constraints are never relaxed.
func (s *SlotSelector) Pick(
	mealType domain.MealType,
	pools [][]domain.MealRecord,
	req *domain.PlanRequest,
	slotTarget float64,
	usage *usageState,
) (*domain.MealRecord, error) {
	// Step 1: repetition-aware pass.
	for _, pool := range pools {
		candidates := filterPool(pool, func(m *domain.MealRecord) bool {
			return !usage.dayUsed[m.ID] && usage.weekly[m.ID] < s.maxPerWeek
		})
		if len(candidates) > 0 {
			return s.scoreAndPick(candidates, slotTarget, usage), nil
		}
	}

	// Step 2: relax the weekly cap, keep same-day exclusion.
	for _, pool := range pools {
		candidates := filterPool(pool, func(m *domain.MealRecord) bool {
			return !usage.dayUsed[m.ID]
		})
		if len(candidates) > 0 {
			return s.scoreAndPick(candidates, slotTarget, usage), nil
		}
	}

	// Step 3: any safe meal of this type, ignoring diet, flags and repetition.
	if m := s.uniformSafePick(s.catalog.ByType(mealType), req); m != nil {
		return m, nil
	}

	// Step 4: any safe meal at all.
	if m := s.uniformSafePick(s.catalog.All(), req); m != nil {
		return m, nil
	}

	return nil, domain.ErrNoSafeMeals
}

func filterPool(pool []domain.MealRecord, keep func(*domain.MealRecord) bool) []domain.MealRecord {
	var out []domain.MealRecord
	for _, m := range pool {
		if keep(&m) {
			out = append(out, m)
		}
	}
	return out
}

// scoreAndPick sorts candidates by (calorie distance to target, weekly
// usage), then picks uniformly among the top K. The bounded randomness keeps
// plans from being fully deterministic while still favoring calorie accuracy
// and variety.
func (s *SlotSelector) scoreAndPick(candidates []domain.MealRecord, slotTarget float64, usage *usageState) *domain.MealRecord {
	sort.SliceStable(candidates, func(i, j int) bool {
		di := math.Abs(float64(candidates[i].BaseCalories) - slotTarget)
		dj := math.Abs(float64(candidates[j].BaseCalories) - slotTarget)
		if di != dj {
			return di < dj
		}
		return usage.weekly[candidates[i].ID] < usage.weekly[candidates[j].ID]
	})

	k := s.topK
	if len(candidates) < k {
		k = len(candidates)
	}
	pick := candidates[s.rng.Intn(k)]
	return &pick
}

// uniformSafePick picks uniformly at random among the meals passing the
// inviolable allergy/medical screens, or nil when none pass.
func (s *SlotSelector) uniformSafePick(meals []domain.MealRecord, req *domain.PlanRequest) *domain.MealRecord {
	safe := filterPool(meals, func(m *domain.MealRecord) bool {
		return hardConstraintsSafe(m, req)
	})
	if len(safe) == 0 {
		return nil
	}
	pick := safe[s.rng.Intn(len(safe))]
	return &pick
}

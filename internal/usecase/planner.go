package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/Gaz2600/bitetrak/internal/domain"
	"github.com/google/uuid"
)

// weekDays is the fixed plan horizon, Monday through Sunday.
var weekDays = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// slotDef maps one slot position to its display label and meal type.
type slotDef struct {
	label    string
	mealType domain.MealType
}

// slotLayout returns the slot sequence for a day. 3-meal mode uses named
// slots; 5-meal mode numbers them and interleaves small meals.
func slotLayout(mealsPerDay int) []slotDef {
	if mealsPerDay == 5 {
		return []slotDef{
			{"Meal 1", domain.MealTypeBreakfast},
			{"Meal 2", domain.MealTypeSmallMeal},
			{"Meal 3", domain.MealTypeLunch},
			{"Meal 4", domain.MealTypeSmallMeal},
			{"Meal 5", domain.MealTypeDinner},
		}
	}
	return []slotDef{
		{"Breakfast", domain.MealTypeBreakfast},
		{"Lunch", domain.MealTypeLunch},
		{"Dinner", domain.MealTypeDinner},
	}
}

// PlanServiceConfig holds the tunables for plan generation.
type PlanServiceConfig struct {
	MaxPerWeek       int           // weekly repetition cap, default 2
	TopK             int           // scored candidates kept for the random pick, default 10
	BalancedMatchAny bool          // whether "balanced" meals satisfy any requested diet
	CacheTTL         time.Duration // response cache TTL; 0 disables caching
}

// PlanService generates weekly meal plans. One generation is a pure pass
// over the catalog plus the injected random source; all repetition counters
// are scoped to the single call, so the service is safe to use from
// concurrent requests.
type PlanService struct {
	catalog  domain.MealCatalog
	cache    domain.CacheRepository
	pools    *PoolBuilder
	selector *SlotSelector
	cacheTTL time.Duration
}

// NewPlanService wires a plan service. cache may be nil to disable
// duplicate-submission dedupe.
func NewPlanService(catalog domain.MealCatalog, cache domain.CacheRepository, rng RandSource, cfg PlanServiceConfig) *PlanService {
	if rng == nil {
		rng = NewRandSource()
	}
	return &PlanService{
		catalog:  catalog,
		cache:    cache,
		pools:    NewPoolBuilder(catalog, cfg.BalancedMatchAny),
		selector: NewSlotSelector(catalog, rng, cfg.MaxPerWeek, cfg.TopK),
		cacheTTL: cfg.CacheTTL,
	}
}

// GeneratePlan normalizes the raw request and produces a full 7-day plan
// with its shopping list. The only domain error is domain.ErrNoSafeMeals,
// returned when the hard allergy/medical constraints cannot be satisfied by
// any catalog meal.
func (s *PlanService) GeneratePlan(ctx context.Context, raw *domain.GeneratePlanRequest) (*domain.PlanResponse, error) {
	req := NormalizeRequest(raw, s.catalog.DietStyles())

	cacheKey := requestFingerprint(&req)
	if cached := s.getCachedPlan(ctx, cacheKey); cached != nil {
		log.Printf("[PLAN] %s served from cache", cached.PlanID)
		return cached, nil
	}

	layout := slotLayout(req.MealsPerDay)

	// Prebuild the relaxation pools once per distinct meal type.
	poolsByType := make(map[domain.MealType][][]domain.MealRecord)
	for _, slot := range layout {
		if _, ok := poolsByType[slot.mealType]; !ok {
			poolsByType[slot.mealType] = s.pools.BuildPools(slot.mealType, &req)
		}
	}

	usage := newUsageState()
	week := make([]domain.DayPlan, 0, len(weekDays))

	for _, dayName := range weekDays {
		usage.resetDay()
		remaining := float64(req.TargetDailyCalories)

		day := domain.DayPlan{Day: dayName, Meals: make([]domain.SelectedMeal, 0, len(layout))}
		for slotIdx, slot := range layout {
			// Later slots adapt to however far earlier picks drifted.
			slotTarget := remaining / float64(len(layout)-slotIdx)

			meal, err := s.selector.Pick(slot.mealType, poolsByType[slot.mealType], &req, slotTarget, usage)
			if err != nil {
				return nil, err
			}
			usage.record(meal.ID)
			remaining -= float64(meal.BaseCalories)

			day.Meals = append(day.Meals, domain.SelectedMeal{
				Label:  slot.label,
				Name:   meal.Name,
				Kcal:   meal.BaseCalories,
				Tag:    BuildTagString(meal, req.Flags),
				Recipe: meal.Recipe,
			})
		}

		// Recompute the total from the picks rather than trusting the
		// running remainder.
		total := 0
		for _, m := range day.Meals {
			total += m.Kcal
		}
		day.TotalCalories = total
		week = append(week, day)
	}

	resp := &domain.PlanResponse{
		PlanID:       uuid.New().String(),
		Calories:     req.TargetDailyCalories,
		Diet:         req.DietStyle,
		Flags:        BuildFlagStrings(&req),
		MealsPerDay:  req.MealsPerDay,
		Week:         week,
		ShoppingList: BuildShoppingList(week),
	}

	s.setCachedPlan(ctx, cacheKey, resp)
	log.Printf("[PLAN] %s generated: diet=%s kcal=%d meals/day=%d constraints=%v",
		resp.PlanID, resp.Diet, resp.Calories, resp.MealsPerDay, resp.Flags)
	return resp, nil
}

// requestFingerprint builds the cache key for a normalized request. Two
// requests that normalize identically share a fingerprint.
func requestFingerprint(req *domain.PlanRequest) string {
	return fmt.Sprintf("plan:%d:%d:%s:%t%t%t:%s:%t%t%t",
		req.TargetDailyCalories,
		req.MealsPerDay,
		req.DietStyle,
		req.Flags.IBSSafe, req.Flags.GlutenFree, req.Flags.ImmuneSafe,
		strings.Join(req.Allergies, ","),
		req.Medical.LowHistamine, req.Medical.LowOxalate, req.Medical.GERDFriendly,
	)
}

func (s *PlanService) getCachedPlan(ctx context.Context, key string) *domain.PlanResponse {
	if s.cache == nil || s.cacheTTL <= 0 {
		return nil
	}
	value, err := s.cache.Get(ctx, key)
	if err != nil {
		return nil
	}
	resp, ok := value.(*domain.PlanResponse)
	if !ok {
		return nil
	}
	return resp
}

func (s *PlanService) setCachedPlan(ctx context.Context, key string, resp *domain.PlanResponse) {
	if s.cache == nil || s.cacheTTL <= 0 {
		return
	}
	if err := s.cache.Set(ctx, key, resp, s.cacheTTL); err != nil {
		log.Printf("[PLAN] cache store failed: %v", err)
	}
}

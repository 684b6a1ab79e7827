package usecase

import (
	"errors"
	"testing"

	"github.com/Gaz2600/bitetrak/internal/catalog"
	"github.com/Gaz2600/bitetrak/internal/domain"
	"github.com/stretchr/testify/require"
)

// firstPick always returns 0, so scoreAndPick yields the best-scored
// candidate and uniform picks yield the first safe meal.
type firstPick struct{}

func (firstPick) Intn(int) int { return 0 }

func TestSlotSelector_PrefersCalorieProximity(t *testing.T) {
	c := newFixtureCatalog(t)
	sel := NewSlotSelector(c, firstPick{}, 2, 1)

	req := &domain.PlanRequest{DietStyle: DietBalanced}
	pools := NewPoolBuilder(c, false).BuildPools(domain.MealTypeLunch, req)
	usage := newUsageState()

	// Targets sit exactly on two different lunches.
	meal, err := sel.Pick(domain.MealTypeLunch, pools, req, 600, usage)
	require.NoError(t, err)
	require.Equal(t, "keto-lunch", meal.ID)

	usage = newUsageState()
	meal, err = sel.Pick(domain.MealTypeLunch, pools, req, 500, usage)
	require.NoError(t, err)
	require.Equal(t, "balanced-ibs-lunch", meal.ID)
}

func TestSlotSelector_WeeklyUsageBreaksTies(t *testing.T) {
	c, err := catalog.New([]domain.MealRecord{
		fixtureMeal("lunch-a", domain.MealTypeLunch, 500, []string{"balanced"}, domain.SafetyFlags{}, "rice"),
		fixtureMeal("lunch-b", domain.MealTypeLunch, 500, []string{"balanced"}, domain.SafetyFlags{}, "pasta"),
	})
	require.NoError(t, err)

	sel := NewSlotSelector(c, firstPick{}, 5, 1)
	req := &domain.PlanRequest{DietStyle: DietBalanced}
	pools := NewPoolBuilder(c, false).BuildPools(domain.MealTypeLunch, req)

	usage := newUsageState()
	usage.weekly["lunch-a"] = 2

	meal, err := sel.Pick(domain.MealTypeLunch, pools, req, 500, usage)
	require.NoError(t, err)
	require.Equal(t, "lunch-b", meal.ID, "equal calorie distance should fall back to the less-used meal")
}

func TestSlotSelector_SameDayExclusion(t *testing.T) {
	c := newFixtureCatalog(t)
	sel := NewSlotSelector(c, firstPick{}, 2, 1)

	req := &domain.PlanRequest{DietStyle: DietBalanced}
	pools := NewPoolBuilder(c, false).BuildPools(domain.MealTypeLunch, req)

	usage := newUsageState()
	usage.record("keto-lunch")

	meal, err := sel.Pick(domain.MealTypeLunch, pools, req, 600, usage)
	require.NoError(t, err)
	require.NotEqual(t, "keto-lunch", meal.ID)
}

func TestSlotSelector_WeeklyCapRelaxedBeforeFailing(t *testing.T) {
	// One single lunch in the catalog: once it hits the weekly cap, step 2
	// cannot help on the same day, but a fresh day must still pick it via the
	// cap-relaxed pass.
	c, err := catalog.New([]domain.MealRecord{
		fixtureMeal("only-lunch", domain.MealTypeLunch, 500, []string{"balanced"}, domain.SafetyFlags{}, "rice"),
	})
	require.NoError(t, err)

	sel := NewSlotSelector(c, firstPick{}, 2, 1)
	req := &domain.PlanRequest{DietStyle: DietBalanced}
	pools := NewPoolBuilder(c, false).BuildPools(domain.MealTypeLunch, req)

	usage := newUsageState()
	usage.weekly["only-lunch"] = 2 // at cap
	usage.resetDay()

	meal, err := sel.Pick(domain.MealTypeLunch, pools, req, 500, usage)
	require.NoError(t, err)
	require.Equal(t, "only-lunch", meal.ID)
}

func TestSlotSelector_FallsBackToOtherMealTypes(t *testing.T) {
	// No small-meal rows at all: the selector must reach step 4 and borrow
	// from another type rather than fail.
	c, err := catalog.New([]domain.MealRecord{
		fixtureMeal("lunch", domain.MealTypeLunch, 500, []string{"balanced"}, domain.SafetyFlags{}, "rice"),
	})
	require.NoError(t, err)

	sel := NewSlotSelector(c, firstPick{}, 2, 1)
	req := &domain.PlanRequest{DietStyle: DietBalanced}

	meal, err := sel.Pick(domain.MealTypeSmallMeal, nil, req, 200, newUsageState())
	require.NoError(t, err)
	require.Equal(t, "lunch", meal.ID)
}

func TestSlotSelector_HardConstraintsNeverRelaxed(t *testing.T) {
	c, err := catalog.New([]domain.MealRecord{
		fixtureMeal("dairy-lunch", domain.MealTypeLunch, 500, []string{"balanced"}, domain.SafetyFlags{}, "cheese"),
		fixtureMeal("dairy-snack", domain.MealTypeSmallMeal, 200, []string{"balanced"}, domain.SafetyFlags{}, "yogurt"),
	})
	require.NoError(t, err)

	sel := NewSlotSelector(c, firstPick{}, 2, 1)
	req := &domain.PlanRequest{DietStyle: DietBalanced, Allergies: []string{"dairy"}}
	pools := NewPoolBuilder(c, false).BuildPools(domain.MealTypeLunch, req)
	require.Nil(t, pools)

	_, err = sel.Pick(domain.MealTypeLunch, pools, req, 500, newUsageState())
	require.True(t, errors.Is(err, domain.ErrNoSafeMeals))
}

func TestSlotSelector_SeededDeterminism(t *testing.T) {
	c := newFixtureCatalog(t)
	req := &domain.PlanRequest{DietStyle: DietBalanced}
	pools := NewPoolBuilder(c, false).BuildPools(domain.MealTypeLunch, req)

	run := func(seed int64) []string {
		sel := NewSlotSelector(c, NewSeededRandSource(seed), 2, 10)
		usage := newUsageState()
		var picks []string
		for i := 0; i < 3; i++ {
			meal, err := sel.Pick(domain.MealTypeLunch, pools, req, 550, usage)
			require.NoError(t, err)
			usage.record(meal.ID)
			picks = append(picks, meal.ID)
		}
		return picks
	}

	require.Equal(t, run(42), run(42), "same seed must reproduce the same picks")
}

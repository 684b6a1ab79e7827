package usecase

import (
	"testing"

	"github.com/Gaz2600/bitetrak/internal/domain"
	"github.com/stretchr/testify/assert"
)

func dayWithRecipes(recipes ...*domain.Recipe) domain.DayPlan {
	day := domain.DayPlan{Day: "Monday"}
	for _, r := range recipes {
		day.Meals = append(day.Meals, domain.SelectedMeal{Name: "meal", Kcal: 500, Recipe: r})
	}
	return day
}

func TestBuildShoppingList_MergesOnNameAndUnit(t *testing.T) {
	week := []domain.DayPlan{
		dayWithRecipes(&domain.Recipe{Ingredients: []domain.Ingredient{
			{Name: "Olive oil", Unit: "tbsp", Quantity: 1},
			{Name: "Rice", Unit: "g", Quantity: 80},
		}}),
		dayWithRecipes(&domain.Recipe{Ingredients: []domain.Ingredient{
			{Name: "olive oil", Unit: "tbsp", Quantity: 2},
			{Name: "Rice", Unit: "cup", Quantity: 1},
		}}),
	}

	list := BuildShoppingList(week)

	assert.Len(t, list, 3)
	assert.Equal(t, "Olive oil", list[0].Name, "first spelling seen wins")
	assert.Equal(t, float64(3), list[0].Quantity)

	// Same name with different units stays separate.
	assert.Equal(t, "Rice", list[1].Name)
	assert.Equal(t, "Rice", list[2].Name)
	assert.NotEqual(t, list[1].Unit, list[2].Unit)
}

func TestBuildShoppingList_SortedCaseInsensitive(t *testing.T) {
	week := []domain.DayPlan{
		dayWithRecipes(&domain.Recipe{Ingredients: []domain.Ingredient{
			{Name: "zucchini", Unit: "piece", Quantity: 1},
			{Name: "Apple", Unit: "piece", Quantity: 2},
			{Name: "carrot", Unit: "piece", Quantity: 3},
		}}),
	}

	list := BuildShoppingList(week)

	names := make([]string, len(list))
	for i, item := range list {
		names[i] = item.Name
	}
	assert.Equal(t, []string{"Apple", "carrot", "zucchini"}, names)
}

func TestBuildShoppingList_SkipsMealsWithoutRecipe(t *testing.T) {
	week := []domain.DayPlan{
		dayWithRecipes(nil, &domain.Recipe{Ingredients: []domain.Ingredient{
			{Name: "oats", Unit: "g", Quantity: 50},
		}}),
	}

	list := BuildShoppingList(week)
	assert.Len(t, list, 1)
	assert.Equal(t, "oats", list[0].Name)
}

func TestBuildShoppingList_MissingQuantityCountsAsZero(t *testing.T) {
	week := []domain.DayPlan{
		dayWithRecipes(&domain.Recipe{Ingredients: []domain.Ingredient{
			{Name: "salt", Unit: "pinch"},
			{Name: "salt", Unit: "pinch", Quantity: 2},
		}}),
	}

	list := BuildShoppingList(week)
	assert.Len(t, list, 1)
	assert.Equal(t, float64(2), list[0].Quantity)
}

func TestBuildShoppingList_EmptyWeek(t *testing.T) {
	assert.Empty(t, BuildShoppingList(nil))
}

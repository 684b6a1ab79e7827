package domain

// MealType is the catalog category a meal belongs to. Each plan slot maps to
// exactly one meal type.
type MealType string

const (
	MealTypeBreakfast MealType = "breakfast"
	MealTypeLunch     MealType = "lunch"
	MealTypeDinner    MealType = "dinner"
	MealTypeSmallMeal MealType = "small-meal"
)

// ValidMealType reports whether t is one of the four known catalog categories.
func ValidMealType(t MealType) bool {
	switch t {
	case MealTypeBreakfast, MealTypeLunch, MealTypeDinner, MealTypeSmallMeal:
		return true
	}
	return false
}

// SafetyFlags are the hard boolean safety properties a meal either has or lacks.
type SafetyFlags struct {
	IBSSafe    bool `json:"ibsSafe"`
	GlutenFree bool `json:"glutenFree"`
	ImmuneSafe bool `json:"immuneSafe"`
}

// Ingredient is one line of a recipe. Unit and Quantity are optional; a
// missing quantity counts as zero when the shopping list is aggregated.
type Ingredient struct {
	Name     string  `json:"name"`
	Unit     string  `json:"unit,omitempty"`
	Quantity float64 `json:"quantity,omitempty"`
}

// Recipe is an ordered ingredient list plus free-text preparation steps.
type Recipe struct {
	Ingredients []Ingredient `json:"ingredients"`
	Steps       []string     `json:"steps"`
}

// MealRecord is one immutable row of the meal catalog.
type MealRecord struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	MealType     MealType    `json:"mealType"`
	BaseCalories int         `json:"baseCalories"`
	DietStyles   []string    `json:"dietStyles"`
	Flags        SafetyFlags `json:"flags"`
	Recipe       *Recipe     `json:"recipe,omitempty"`
	Description  string      `json:"description,omitempty"`
}

// HasDietStyle reports whether the meal carries the given diet label.
func (m *MealRecord) HasDietStyle(style string) bool {
	for _, s := range m.DietStyles {
		if s == style {
			return true
		}
	}
	return false
}

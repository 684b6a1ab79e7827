package domain

// Allergy keys accepted from the wizard. Unknown values are dropped during
// normalization.
const (
	AllergyDairy     = "dairy"
	AllergyEggs      = "eggs"
	AllergyNuts      = "nuts"
	AllergyShellfish = "shellfish"
	AllergySoy       = "soy"
)

// KnownAllergies lists the accepted allergy keys in display order.
var KnownAllergies = []string{
	AllergyDairy, AllergyEggs, AllergyNuts, AllergyShellfish, AllergySoy,
}

// MedicalConstraints are the extra keyword-screened restrictions beyond the
// three boolean safety flags.
type MedicalConstraints struct {
	LowHistamine bool `json:"lowHistamine"`
	LowOxalate   bool `json:"lowOxalate"`
	GERDFriendly bool `json:"gerdFriendly"`
}

// Any reports whether at least one constraint is requested.
func (m MedicalConstraints) Any() bool {
	return m.LowHistamine || m.LowOxalate || m.GERDFriendly
}

// GeneratePlanRequest is the raw wizard payload. Fields are loosely typed on
// purpose: the normalizer coerces whatever the browser sends instead of
// rejecting it.
type GeneratePlanRequest struct {
	Calories     any `json:"calories"`
	Diet         any `json:"diet"`
	MealsPerDay  any `json:"mealsPerDay"`
	IBSSafe      any `json:"ibsSafe"`
	GlutenFree   any `json:"glutenFree"`
	ImmuneSafe   any `json:"immuneSafe"`
	Allergies    any `json:"allergies"`
	LowHistamine any `json:"lowHistamine"`
	LowOxalate   any `json:"lowOxalate"`
	GERDFriendly any `json:"gerdFriendly"`
}

// PlanRequest is the normalized, well-typed form of a generation request.
// It lives for exactly one generation call.
type PlanRequest struct {
	TargetDailyCalories int
	MealsPerDay         int
	DietStyle           string
	Flags               SafetyFlags
	Allergies           []string
	Medical             MedicalConstraints
}

// SelectedMeal is one chosen slot in a day plan. Fields are copied out of the
// catalog record at selection time; the response holds no live reference back
// into the catalog.
type SelectedMeal struct {
	Label  string  `json:"label"`
	Name   string  `json:"name"`
	Kcal   int     `json:"kcal"`
	Tag    string  `json:"tag"`
	Recipe *Recipe `json:"recipe,omitempty"`
}

// DayPlan is one weekday of the generated plan.
type DayPlan struct {
	Day           string         `json:"day"`
	TotalCalories int            `json:"totalCalories"`
	Meals         []SelectedMeal `json:"meals"`
}

// ShoppingItem is one aggregated grocery line. Items merge on
// (lowercased name, unit).
type ShoppingItem struct {
	Name     string  `json:"name"`
	Unit     string  `json:"unit,omitempty"`
	Quantity float64 `json:"quantity"`
}

// PlanResponse is the full payload returned from POST /api/generate-plan.
type PlanResponse struct {
	PlanID       string         `json:"planId"`
	Calories     int            `json:"calories"`
	Diet         string         `json:"diet"`
	Flags        []string       `json:"flags"`
	MealsPerDay  int            `json:"mealsPerDay"`
	Week         []DayPlan      `json:"week"`
	ShoppingList []ShoppingItem `json:"shoppingList"`
}

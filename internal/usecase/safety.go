package usecase

import (
	"strings"

	"github.com/Gaz2600/bitetrak/internal/domain"
)

// Keyword screening is a deliberate heuristic, not an allergen database.
// A meal is flagged when any keyword appears as a substring of the lowercased
// meal name plus all recipe ingredient names. False positives (such as
// "eggplant" tripping the egg list) are an accepted cost of the approach.

// allergyKeywords maps each accepted allergy key to its trigger words.
var allergyKeywords = map[string][]string{
	domain.AllergyDairy: {
		"milk", "cheese", "yogurt", "butter", "cream", "whey", "casein",
		"mozzarella", "parmesan", "feta", "ricotta", "ghee", "halloumi",
	},
	domain.AllergyEggs: {
		"egg", "omelette", "omelet", "mayonnaise", "mayo", "frittata", "meringue",
	},
	domain.AllergyNuts: {
		"almond", "peanut", "cashew", "walnut", "pecan", "hazelnut",
		"pistachio", "macadamia", "pine nut", "nut butter",
	},
	domain.AllergyShellfish: {
		"shrimp", "prawn", "crab", "lobster", "clam", "mussel", "oyster",
		"scallop", "crayfish",
	},
	domain.AllergySoy: {
		"soy", "tofu", "edamame", "tempeh", "miso", "tamari",
	},
}

// Trigger lists for the extra medical constraints.
var (
	lowHistamineTriggers = []string{
		"tomato", "spinach", "avocado", "fermented", "aged", "cured",
		"smoked", "vinegar", "sauerkraut", "kimchi", "soy sauce", "tuna",
		"mackerel", "sardine", "anchov", "salami", "bacon", "wine", "leftover",
	}
	lowOxalateTriggers = []string{
		"spinach", "beet", "rhubarb", "almond", "cashew", "peanut",
		"sweet potato", "chard", "chocolate", "cocoa",
	}
	gerdTriggers = []string{
		"tomato", "orange", "lemon", "lime", "grapefruit", "citrus",
		"chili", "chilli", "spicy", "fried", "garlic", "onion", "coffee",
		"chocolate", "peppermint", "vinegar",
	}
)

// mealHaystack builds the lowercased search text for a meal: its name plus
// every recipe ingredient name.
func mealHaystack(m *domain.MealRecord) string {
	var b strings.Builder
	b.WriteString(m.Name)
	if m.Recipe != nil {
		for _, ing := range m.Recipe.Ingredients {
			b.WriteString(" ")
			b.WriteString(ing.Name)
		}
	}
	return strings.ToLower(b.String())
}

func containsAny(haystack string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(haystack, kw) {
			return true
		}
	}
	return false
}

// AllergySafe reports whether the meal is free of trigger words for every
// requested allergy. Unknown allergy keys never match anything and are
// effectively ignored.
func AllergySafe(m *domain.MealRecord, allergies []string) bool {
	if len(allergies) == 0 {
		return true
	}
	haystack := mealHaystack(m)
	for _, allergy := range allergies {
		if containsAny(haystack, allergyKeywords[allergy]) {
			return false
		}
	}
	return true
}

// MedicalSafe reports whether the meal passes the keyword screen for every
// requested medical constraint.
func MedicalSafe(m *domain.MealRecord, mc domain.MedicalConstraints) bool {
	if !mc.Any() {
		return true
	}
	haystack := mealHaystack(m)
	if mc.LowHistamine && containsAny(haystack, lowHistamineTriggers) {
		return false
	}
	if mc.LowOxalate && containsAny(haystack, lowOxalateTriggers) {
		return false
	}
	if mc.GERDFriendly && containsAny(haystack, gerdTriggers) {
		return false
	}
	return true
}

// hardConstraintsSafe combines both inviolable screens.
func hardConstraintsSafe(m *domain.MealRecord, req *domain.PlanRequest) bool {
	return AllergySafe(m, req.Allergies) && MedicalSafe(m, req.Medical)
}

package usecase

import (
	"math"
	"strings"

	"github.com/Gaz2600/bitetrak/internal/domain"
)

// Normalization defaults. The wizard may send anything; the normalizer never
// rejects, it only coerces.
const (
	DefaultDailyCalories = 2100
	DefaultMealsPerDay   = 3
	DietBalanced         = "balanced"
)

// NormalizeRequest converts the raw wizard payload into a well-typed
// PlanRequest. knownDiets is the set of diet-style labels actually present in
// the catalog; a diet outside it falls back to "balanced". Pure function of
// its inputs.
//
// Every boolean flag, including ibsSafe, defaults to false when absent.
func NormalizeRequest(raw *domain.GeneratePlanRequest, knownDiets map[string]bool) domain.PlanRequest {
	req := domain.PlanRequest{
		TargetDailyCalories: DefaultDailyCalories,
		MealsPerDay:         DefaultMealsPerDay,
		DietStyle:           DietBalanced,
	}
	if raw == nil {
		return req
	}

	if kcal, ok := asNumber(raw.Calories); ok && kcal > 0 {
		req.TargetDailyCalories = int(math.Round(kcal))
	}

	if n, ok := asNumber(raw.MealsPerDay); ok && (n == 3 || n == 5) {
		req.MealsPerDay = int(n)
	}

	if diet, ok := raw.Diet.(string); ok && knownDiets[diet] {
		req.DietStyle = diet
	}

	req.Flags = domain.SafetyFlags{
		IBSSafe:    truthy(raw.IBSSafe),
		GlutenFree: truthy(raw.GlutenFree),
		ImmuneSafe: truthy(raw.ImmuneSafe),
	}
	req.Medical = domain.MedicalConstraints{
		LowHistamine: truthy(raw.LowHistamine),
		LowOxalate:   truthy(raw.LowOxalate),
		GERDFriendly: truthy(raw.GERDFriendly),
	}
	req.Allergies = normalizeAllergies(raw.Allergies)

	return req
}

// asNumber extracts a float from a decoded JSON value. Only actual JSON
// numbers count; numeric strings do not.
func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	}
	return 0, false
}

// truthy mirrors the coercion the original frontend relied on: booleans pass
// through, numbers are truthy when non-zero, strings when non-empty, and
// everything else (including absent fields) is false.
func truthy(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case float64:
		return t != 0
	case int:
		return t != 0
	case string:
		return t != ""
	}
	return false
}

// normalizeAllergies lower-cases the input list, keeps only known allergy
// keys and drops duplicates, preserving first-seen order.
func normalizeAllergies(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}

	known := make(map[string]bool, len(domain.KnownAllergies))
	for _, a := range domain.KnownAllergies {
		known[a] = true
	}

	var out []string
	seen := make(map[string]bool)
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			continue
		}
		s = strings.ToLower(strings.TrimSpace(s))
		if !known[s] || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

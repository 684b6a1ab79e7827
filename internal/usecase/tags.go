package usecase

import (
	"strings"

	"github.com/Gaz2600/bitetrak/internal/domain"
)

// primaryDietOrder decides which diet label headlines a meal's tag string.
// Order matters: the first label the meal carries wins.
var primaryDietOrder = []string{
	"balanced", "high-protein", "keto", "mediterranean", "low-fodmap",
	"vegan", "vegetarian", "plant-based",
}

// allergyLabels are the human-readable forms used in the response flags list.
var allergyLabels = map[string]string{
	domain.AllergyDairy:     "No dairy",
	domain.AllergyEggs:      "No eggs",
	domain.AllergyNuts:      "No nuts",
	domain.AllergyShellfish: "No shellfish",
	domain.AllergySoy:       "No soy",
}

// BuildFlagStrings renders the active hard constraints as the display labels
// the wizard shows above the plan.
func BuildFlagStrings(req *domain.PlanRequest) []string {
	out := []string{}
	if req.Flags.IBSSafe {
		out = append(out, "IBS-safe")
	}
	if req.Flags.GlutenFree {
		out = append(out, "Gluten-free")
	}
	if req.Flags.ImmuneSafe {
		out = append(out, "Immune-conscious")
	}
	for _, a := range req.Allergies {
		if label, ok := allergyLabels[a]; ok {
			out = append(out, label)
		}
	}
	if req.Medical.LowHistamine {
		out = append(out, "Low-histamine")
	}
	if req.Medical.LowOxalate {
		out = append(out, "Low-oxalate")
	}
	if req.Medical.GERDFriendly {
		out = append(out, "GERD-friendly")
	}
	return out
}

// BuildTagString renders the per-meal tag shown on each plan card: a primary
// diet label plus whichever requested safety flags the meal satisfies,
// joined with a bullet.
func BuildTagString(m *domain.MealRecord, want domain.SafetyFlags) string {
	var bits []string

	for _, style := range primaryDietOrder {
		if m.HasDietStyle(style) {
			bits = append(bits, strings.ReplaceAll(style, "-", " "))
			break
		}
	}

	if want.IBSSafe && m.Flags.IBSSafe {
		bits = append(bits, "IBS-safe")
	}
	if want.GlutenFree && m.Flags.GlutenFree {
		bits = append(bits, "Gluten-free")
	}
	if want.ImmuneSafe && m.Flags.ImmuneSafe {
		bits = append(bits, "Immune-conscious")
	}

	if len(bits) == 0 && len(m.DietStyles) > 0 {
		bits = append(bits, strings.ReplaceAll(m.DietStyles[0], "-", " "))
	}

	return strings.Join(bits, " • ")
}

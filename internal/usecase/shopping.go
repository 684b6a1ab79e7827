package usecase

import (
	"sort"
	"strings"

	"github.com/Gaz2600/bitetrak/internal/domain"
)

// BuildShoppingList reduces every selected meal's recipe ingredients across
// the week into one consolidated list. Ingredients merge on
// (lowercased name, unit); quantities sum, with a missing quantity counting
// as zero. Meals without a recipe contribute nothing. The result is sorted
// by name, case-insensitive ascending.
func BuildShoppingList(week []domain.DayPlan) []domain.ShoppingItem {
	type key struct {
		name string
		unit string
	}

	totals := make(map[key]*domain.ShoppingItem)
	var order []key

	for _, day := range week {
		for _, meal := range day.Meals {
			if meal.Recipe == nil {
				continue
			}
			for _, ing := range meal.Recipe.Ingredients {
				k := key{name: strings.ToLower(ing.Name), unit: ing.Unit}
				if item, ok := totals[k]; ok {
					item.Quantity += ing.Quantity
					continue
				}
				totals[k] = &domain.ShoppingItem{
					Name:     ing.Name,
					Unit:     ing.Unit,
					Quantity: ing.Quantity,
				}
				order = append(order, k)
			}
		}
	}

	out := make([]domain.ShoppingItem, 0, len(order))
	for _, k := range order {
		out = append(out, *totals[k])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out
}

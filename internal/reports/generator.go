package reports

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/Gaz2600/bitetrak/internal/domain"
	"github.com/jung-kurt/gofpdf"
)

// Report formats
const (
	FormatPDF = "pdf"
	FormatCSV = "csv"
)

// Generator renders a generated plan into print-friendly documents: the full
// plan as a PDF (weekly grid, grocery list, recipes) or the grocery list
// alone as CSV.
type Generator struct{}

// NewGenerator creates a new report generator
func NewGenerator() *Generator {
	return &Generator{}
}

// Render produces the requested format for the plan.
func (g *Generator) Render(plan *domain.PlanResponse, format string) ([]byte, string, error) {
	switch format {
	case FormatPDF:
		data, err := g.GeneratePlanPDF(plan)
		return data, "application/pdf", err
	case FormatCSV:
		data, err := g.GenerateShoppingCSV(plan)
		return data, "text/csv", err
	default:
		return nil, "", fmt.Errorf("unsupported format: %s", format)
	}
}

// GeneratePlanPDF renders the weekly grid, the grocery list and every
// distinct recipe of the plan into one A4 document.
func (g *Generator) GeneratePlanPDF(plan *domain.PlanResponse) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)

	g.writeWeekPages(pdf, plan)
	g.writeShoppingPage(pdf, plan)
	g.writeRecipePages(pdf, plan)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func (g *Generator) writeWeekPages(pdf *gofpdf.Fpdf, plan *domain.PlanResponse) {
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "Weekly Meal Plan")
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 11)
	summary := fmt.Sprintf("Diet: %s | Target: %d kcal/day | %d meals/day", plan.Diet, plan.Calories, plan.MealsPerDay)
	pdf.Cell(0, 7, summary)
	pdf.Ln(6)
	if len(plan.Flags) > 0 {
		flags := "Constraints: "
		for i, f := range plan.Flags {
			if i > 0 {
				flags += ", "
			}
			flags += f
		}
		pdf.Cell(0, 7, flags)
		pdf.Ln(6)
	}
	pdf.Ln(4)

	for _, day := range plan.Week {
		pdf.SetFont("Arial", "B", 13)
		pdf.Cell(0, 8, fmt.Sprintf("%s - %d kcal", day.Day, day.TotalCalories))
		pdf.Ln(7)

		pdf.SetFont("Arial", "", 10)
		for _, meal := range day.Meals {
			line := fmt.Sprintf("%s: %s (%d kcal)", meal.Label, meal.Name, meal.Kcal)
			if meal.Tag != "" {
				line += "  [" + meal.Tag + "]"
			}
			pdf.Cell(0, 6, line)
			pdf.Ln(5)
		}
		pdf.Ln(4)
	}
}

func (g *Generator) writeShoppingPage(pdf *gofpdf.Fpdf, plan *domain.PlanResponse) {
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "Grocery List")
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 10)
	for _, item := range plan.ShoppingList {
		line := item.Name
		if item.Quantity > 0 {
			line = fmt.Sprintf("%s - %s", item.Name, formatQuantity(item.Quantity))
			if item.Unit != "" {
				line += " " + item.Unit
			}
		}
		pdf.Cell(0, 6, line)
		pdf.Ln(5)
	}
}

func (g *Generator) writeRecipePages(pdf *gofpdf.Fpdf, plan *domain.PlanResponse) {
	type namedRecipe struct {
		name   string
		recipe *domain.Recipe
	}
	var recipes []namedRecipe
	seen := make(map[string]bool)
	for _, day := range plan.Week {
		for _, meal := range day.Meals {
			if meal.Recipe == nil || seen[meal.Name] {
				continue
			}
			seen[meal.Name] = true
			recipes = append(recipes, namedRecipe{name: meal.Name, recipe: meal.Recipe})
		}
	}
	if len(recipes) == 0 {
		return
	}

	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "Recipes")
	pdf.Ln(10)

	for _, r := range recipes {
		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(0, 8, r.name)
		pdf.Ln(7)

		pdf.SetFont("Arial", "", 10)
		for _, ing := range r.recipe.Ingredients {
			line := "- " + ing.Name
			if ing.Quantity > 0 {
				line = fmt.Sprintf("- %s %s %s", formatQuantity(ing.Quantity), ing.Unit, ing.Name)
			}
			pdf.Cell(0, 5, line)
			pdf.Ln(4)
		}
		pdf.Ln(2)
		for i, step := range r.recipe.Steps {
			pdf.MultiCell(0, 5, fmt.Sprintf("%d. %s", i+1, step), "", "L", false)
		}
		pdf.Ln(5)
	}
}

// GenerateShoppingCSV renders the grocery list as CSV with a header row.
func (g *Generator) GenerateShoppingCSV(plan *domain.PlanResponse) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"name", "unit", "quantity"}); err != nil {
		return nil, err
	}
	for _, item := range plan.ShoppingList {
		row := []string{item.Name, item.Unit, formatQuantity(item.Quantity)}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// formatQuantity trims trailing zeros so "2" stays "2" and "1.5" stays "1.5".
func formatQuantity(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}

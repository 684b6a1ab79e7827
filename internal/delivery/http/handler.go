package http

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sort"

	"github.com/Gaz2600/bitetrak/internal/domain"
	"github.com/Gaz2600/bitetrak/internal/reports"
	"github.com/gin-gonic/gin"
)

// PlanGenerator is the slice of the planner the HTTP layer consumes.
type PlanGenerator interface {
	GeneratePlan(ctx context.Context, raw *domain.GeneratePlanRequest) (*domain.PlanResponse, error)
}

// Fixed user-facing error strings. The frontend matches on the invalid-body
// message, so keep it stable.
const (
	errInvalidJSONBody = "Invalid JSON body"
	errNoSafeMeals     = "No meals in the catalog satisfy the requested constraints. Loosen the restrictions or extend the meal catalog."
	errInternal        = "Something went wrong while generating the plan"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	planner  PlanGenerator
	catalog  domain.MealCatalog
	exporter *reports.Generator
}

// NewHandler creates a new HTTP handler
func NewHandler(planner PlanGenerator, catalog domain.MealCatalog, exporter *reports.Generator) *Handler {
	return &Handler{
		planner:  planner,
		catalog:  catalog,
		exporter: exporter,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "bitetrak-backend",
		"version": "1.0.0",
	})
}

// GeneratePlan handles POST /api/generate-plan.
func (h *Handler) GeneratePlan(c *gin.Context) {
	plan, ok := h.generateFromBody(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, plan)
}

// ExportPlan handles POST /api/generate-plan/export. It generates a plan
// from the same request body and streams it back as a printable document.
// Format is selected with ?format=pdf|csv (default pdf); csv carries the
// grocery list only.
func (h *Handler) ExportPlan(c *gin.Context) {
	format := c.DefaultQuery("format", reports.FormatPDF)
	if format != reports.FormatPDF && format != reports.FormatCSV {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unsupported format: %s", format)})
		return
	}

	plan, ok := h.generateFromBody(c)
	if !ok {
		return
	}

	data, contentType, err := h.exporter.Render(plan, format)
	if err != nil {
		log.Printf("[HTTP] export failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternal})
		return
	}

	filename := "meal-plan." + format
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, data)
}

// ListDiets handles GET /api/diets: the diet-style labels present in the
// catalog, sorted, for the wizard's diet picker.
func (h *Handler) ListDiets(c *gin.Context) {
	styles := make([]string, 0, len(h.catalog.DietStyles()))
	for style := range h.catalog.DietStyles() {
		styles = append(styles, style)
	}
	sort.Strings(styles)
	c.JSON(http.StatusOK, gin.H{"diets": styles})
}

// generateFromBody binds the request body and runs plan generation, writing
// the error response itself when something fails.
func (h *Handler) generateFromBody(c *gin.Context) (*domain.PlanResponse, bool) {
	var raw domain.GeneratePlanRequest
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidJSONBody})
		return nil, false
	}

	plan, err := h.planner.GeneratePlan(c.Request.Context(), &raw)
	if err != nil {
		if errors.Is(err, domain.ErrNoSafeMeals) {
			c.JSON(http.StatusBadRequest, gin.H{"error": errNoSafeMeals})
			return nil, false
		}
		log.Printf("[HTTP] plan generation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternal})
		return nil, false
	}
	return plan, true
}

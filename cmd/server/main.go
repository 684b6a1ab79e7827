package main

import (
	"fmt"
	"log"
	"os"

	"github.com/Gaz2600/bitetrak/config"
	"github.com/Gaz2600/bitetrak/internal/catalog"
	httpDelivery "github.com/Gaz2600/bitetrak/internal/delivery/http"
	"github.com/Gaz2600/bitetrak/internal/infrastructure/cache"
	"github.com/Gaz2600/bitetrak/internal/reports"
	"github.com/Gaz2600/bitetrak/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting BiteTrak Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)

	// Load the meal catalog (embedded dataset unless a path is configured)
	mealCatalog, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		log.Fatalf("Failed to load meal catalog: %v", err)
	}

	// Initialize infrastructure dependencies
	planCache := cache.NewMemoryCache()
	log.Printf("Plan cache TTL: %s", cfg.Planner.CacheTTL)

	// Initialize usecase layer
	planService := usecase.NewPlanService(
		mealCatalog,
		planCache,
		usecase.NewRandSource(),
		usecase.PlanServiceConfig{
			MaxPerWeek:       cfg.Planner.MaxPerWeek,
			TopK:             cfg.Planner.TopK,
			BalancedMatchAny: cfg.Planner.BalancedMatchAny,
			CacheTTL:         cfg.Planner.CacheTTL,
		},
	)

	log.Printf("Planner: max_per_week=%d top_k=%d balanced_match_any=%v",
		cfg.Planner.MaxPerWeek, cfg.Planner.TopK, cfg.Planner.BalancedMatchAny)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(planService, mealCatalog, reports.NewGenerator())

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}

// Package routes wires each service's dependencies and registers its HTTP
// routes.
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"fraudguard/internal/config"
	"fraudguard/internal/handlers"
	"fraudguard/internal/repositories/cache"
	"fraudguard/internal/services/assessment"
	"fraudguard/internal/services/coordinator"
	"fraudguard/internal/services/geo"
	"fraudguard/internal/services/merchant"
	"fraudguard/internal/services/pattern"
	"fraudguard/internal/services/risk"
)

// SetupPatternRoutes wires the pattern analysis agent.
func SetupPatternRoutes(app *fiber.App, ref *config.ReferenceData) {
	estimator := geo.NewAirTravelEstimator(ref.CityCoordinates)
	service := pattern.NewService(geo.NewChecker(estimator))
	handler := handlers.NewPatternHandler(service)

	app.Get("/health", handlers.HealthCheck("pattern_analysis"))
	app.Post("/analyze_patterns", handler.AnalyzePatterns)
}

// SetupRiskRoutes wires the risk assessment agent.
func SetupRiskRoutes(app *fiber.App, ref *config.ReferenceData) {
	service := assessment.NewService(risk.NewService(ref), merchant.NewService(ref))
	handler := handlers.NewRiskHandler(service)

	app.Get("/health", handlers.HealthCheck("risk_assessment"))
	app.Post("/assess_risk", handler.AssessRisk)
}

// SetupCoordinatorRoutes wires the coordinator against its specialists and
// the optional result cache.
func SetupCoordinatorRoutes(app *fiber.App, cfg config.CoordinatorConfig, metrics coordinator.MetricsCollector) {
	riskClient := coordinator.NewRiskClient(cfg.RiskAgentURL, cfg.SpecialistTimeout)
	patternClient := coordinator.NewPatternClient(cfg.PatternAgentURL, cfg.SpecialistTimeout)

	var results cache.ResultCache = cache.NewMemoryCache()
	if cfg.RedisAddr != "" {
		results = cache.NewRedisCache(cache.NewRedisClient(cache.RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		}))
		log.Printf("result cache backed by redis at %s", cfg.RedisAddr)
	}

	service := coordinator.NewService(riskClient, patternClient, results, cfg.ResultCacheTTL, metrics)
	handler := handlers.NewCoordinatorHandler(service)

	app.Get("/health", handlers.CoordinatorHealth("fraud_coordinator", map[string]string{
		coordinator.AgentRiskAssessment:  cfg.RiskAgentURL,
		coordinator.AgentPatternAnalysis: cfg.PatternAgentURL,
	}))
	app.Post("/analyze_transaction", handler.AnalyzeTransaction)
}

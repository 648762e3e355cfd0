// Package main starts the fraud coordination service. It fans incoming
// analysis requests out to the pattern analysis and risk assessment agents
// and renders the final decision.
package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"fraudguard/internal/config"
	"fraudguard/internal/routes"
	"fraudguard/internal/services/coordinator"
)

func main() {
	config.LoadEnv()

	cfg := config.LoadCoordinatorConfig()
	if _, err := config.LoadReferenceData(); err != nil {
		log.Fatalf("reference data invalid: %v", err)
	}

	app := fiber.New()

	app.Use(cors.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use("/analyze_transaction", limiter.New(limiter.Config{
		Max:        120,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(429).JSON(fiber.Map{
				"error": "Too many requests. Please try again later.",
			})
		},
	}))

	routes.SetupCoordinatorRoutes(app, cfg, coordinator.NewCounterMetrics())

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Println("shutting down coordinator")
		if err := app.Shutdown(); err != nil {
			log.Printf("shutdown error: %v", err)
		}
	}()

	log.Printf("fraud coordinator listening on :%s (risk=%s pattern=%s)", cfg.Port, cfg.RiskAgentURL, cfg.PatternAgentURL)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

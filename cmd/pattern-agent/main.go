// Package main starts the pattern analysis agent: anomaly detection and
// geographic feasibility over transaction batches.
package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"fraudguard/internal/config"
	"fraudguard/internal/routes"
)

func main() {
	config.LoadEnv()

	ref, err := config.LoadReferenceData()
	if err != nil {
		log.Fatalf("reference data invalid: %v", err)
	}

	app := fiber.New()
	app.Use(cors.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	routes.SetupPatternRoutes(app, ref)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Println("shutting down pattern agent")
		if err := app.Shutdown(); err != nil {
			log.Printf("shutdown error: %v", err)
		}
	}()

	port := config.GetEnv("PATTERN_AGENT_PORT", "8001")
	log.Printf("pattern analysis agent listening on :%s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

// Package main starts the risk assessment agent: weighted risk scoring and
// merchant reputation checks for single transactions.
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

	routes.SetupRiskRoutes(app, ref)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Println("shutting down risk agent")
		if err := app.Shutdown(); err != nil {
			log.Printf("shutdown error: %v", err)
		}
	}()

	port := config.GetEnv("RISK_AGENT_PORT", "8002")
	log.Printf("risk assessment agent listening on :%s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

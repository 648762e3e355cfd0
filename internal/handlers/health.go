package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
)

// HealthCheck reports liveness for an agent process. It always succeeds while
// the process is up.
func HealthCheck(agent string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"agent":  agent,
		})
	}
}

// CoordinatorHealth reports the coordinator's own liveness plus the
// reachability of each specialist. An unreachable specialist never fails the
// probe; it is reported as such.
func CoordinatorHealth(agent string, specialists map[string]string) fiber.Handler {
	client := &http.Client{Timeout: 2 * time.Second}
	return func(c *fiber.Ctx) error {
		statuses := make(fiber.Map, len(specialists))
		for name, baseURL := range specialists {
			statuses[name] = probe(client, baseURL+"/health")
		}
		return c.JSON(fiber.Map{
			"status":      "healthy",
			"agent":       agent,
			"specialists": statuses,
		})
	}
}

func probe(client *http.Client, url string) string {
	resp, err := client.Get(url)
	if err != nil {
		return "unreachable"
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "unreachable"
	}
	return "healthy"
}

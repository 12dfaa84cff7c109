package handlers

import "github.com/gofiber/fiber/v2"

// HealthCheck handles GET /health. No database, no auth; load balancers and
// container probes hit this to see the server is alive.
func HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

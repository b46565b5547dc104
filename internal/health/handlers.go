package health

import (
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// Handlers bundles health endpoints.
type Handlers struct {
	Rdb *redis.Client
	DB  DBPinger
}

// Root GET / returns a minimal liveness response.
func (h *Handlers) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"service": "fairway-backend",
		"status":  "up",
	})
}

// JSON GET /health/json returns the full dependency and traffic report.
func (h *Handlers) JSON(c *fiber.Ctx) error {
	return c.JSON(CollectHealth(c.Context(), h.Rdb, h.DB))
}

package stats

import (
	"fairway-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// Handlers bundles statistics HTTP handlers.
type Handlers struct {
	Service *Service
}

// GetStats GET /api/v1/users/:id/stats
func (h *Handlers) GetStats(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("id")
	if err != nil || userID < 1 {
		return response.Error(c, "Invalid user ID", fiber.StatusBadRequest)
	}
	agg, err := h.Service.ForUser(c.Context(), uint(userID))
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Stats fetched successfully", agg)
}

// GetHandicap GET /api/v1/users/:id/handicap
func (h *Handlers) GetHandicap(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("id")
	if err != nil || userID < 1 {
		return response.Error(c, "Invalid user ID", fiber.StatusBadRequest)
	}
	handicap, err := h.Service.Handicap(c.Context(), uint(userID))
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Handicap fetched successfully", fiber.Map{"handicap": handicap})
}

package holes

import (
	"fairway-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// Handlers bundles hole HTTP handlers.
type Handlers struct {
	Service *Service
}

// Patch PATCH /api/v1/rounds/:roundId/holes/:holeNumber
func (h *Handlers) Patch(c *fiber.Ctx) error {
	roundID, err := c.ParamsInt("roundId")
	if err != nil || roundID < 1 {
		return response.Error(c, "Invalid round ID", fiber.StatusBadRequest)
	}
	holeNumber, err := c.ParamsInt("holeNumber")
	if err != nil {
		return response.Error(c, "Invalid hole number", fiber.StatusBadRequest)
	}

	var upd Update
	if err := c.BodyParser(&upd); err != nil {
		return response.Error(c, "Invalid hole data", fiber.StatusBadRequest)
	}

	hole, err := h.Service.Apply(c.Context(), uint(roundID), holeNumber, upd)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Hole updated successfully", hole)
}

package rounds

import (
	"fairway-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// Handlers bundles round HTTP handlers.
type Handlers struct {
	Service *Service
}

// Create POST /api/v1/rounds
func (h *Handlers) Create(c *fiber.Ctx) error {
	var req CreateRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, "Invalid round data", fiber.StatusBadRequest)
	}
	round, err := h.Service.Create(c.Context(), req)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.SuccessCreated(c, "Round created successfully", round)
}

// GetByID GET /api/v1/rounds/:id
func (h *Handlers) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.Error(c, "Invalid round ID", fiber.StatusBadRequest)
	}
	round, err := h.Service.Get(c.Context(), uint(id))
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Round fetched successfully", round)
}

// ListForUser GET /api/v1/users/:id/rounds
func (h *Handlers) ListForUser(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("id")
	if err != nil || userID < 1 {
		return response.Error(c, "Invalid user ID", fiber.StatusBadRequest)
	}
	rounds, err := h.Service.ListByUser(c.Context(), uint(userID))
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Rounds fetched successfully", rounds)
}

// ActiveForUser GET /api/v1/users/:id/active-round
func (h *Handlers) ActiveForUser(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("id")
	if err != nil || userID < 1 {
		return response.Error(c, "Invalid user ID", fiber.StatusBadRequest)
	}
	round, err := h.Service.Active(c.Context(), uint(userID))
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Active round fetched successfully", round)
}

// Delete DELETE /api/v1/rounds/:id
func (h *Handlers) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.Error(c, "Invalid round ID", fiber.StatusBadRequest)
	}
	if err := h.Service.Delete(c.Context(), uint(id)); err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Round deleted successfully", nil)
}

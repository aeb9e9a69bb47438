package handler

import (
	"balanceai/internal/dto"
	"balanceai/internal/service"

	"github.com/gofiber/fiber/v2"
)

// WellnessHandler handles goals, plans, and the combined plan view.
type WellnessHandler struct {
	wellnessService service.WellnessService
}

// NewWellnessHandler creates a new WellnessHandler instance.
func NewWellnessHandler(wellnessService service.WellnessService) *WellnessHandler {
	return &WellnessHandler{wellnessService: wellnessService}
}

// GetGoals handles GET /api/wellness-goals.
func (h *WellnessHandler) GetGoals(c *fiber.Ctx) error {
	if c.Query("id") != "" {
		id, err := requiredIDQuery(c)
		if err != nil {
			return err
		}
		goal, err := h.wellnessService.GetGoal(c.Context(), id)
		if err != nil {
			return err
		}
		return c.JSON(goal)
	}

	userID, err := optionalInt64Query(c, "userId")
	if err != nil {
		return err
	}
	limit, offset, err := paginationQuery(c, 0)
	if err != nil {
		return err
	}

	goals, err := h.wellnessService.ListGoals(c.Context(), userID, limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(goals)
}

// CreateGoal handles POST /api/wellness-goals.
func (h *WellnessHandler) CreateGoal(c *fiber.Ctx) error {
	var req dto.CreateWellnessGoalRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	goal, err := h.wellnessService.CreateGoal(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(goal)
}

// UpdateGoal handles PUT /api/wellness-goals?id=.
func (h *WellnessHandler) UpdateGoal(c *fiber.Ctx) error {
	id, err := requiredIDQuery(c)
	if err != nil {
		return err
	}

	var req dto.UpdateWellnessGoalRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	goal, err := h.wellnessService.UpdateGoal(c.Context(), id, &req)
	if err != nil {
		return err
	}
	return c.JSON(goal)
}

// DeleteGoal handles DELETE /api/wellness-goals?id=.
func (h *WellnessHandler) DeleteGoal(c *fiber.Ctx) error {
	id, err := requiredIDQuery(c)
	if err != nil {
		return err
	}

	if err := h.wellnessService.DeleteGoal(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(dto.DeleteResponse{Message: "wellness goal deleted"})
}

// GetPlans handles GET /api/wellness-plans.
func (h *WellnessHandler) GetPlans(c *fiber.Ctx) error {
	if c.Query("id") != "" {
		id, err := requiredIDQuery(c)
		if err != nil {
			return err
		}
		plan, err := h.wellnessService.GetPlan(c.Context(), id)
		if err != nil {
			return err
		}
		return c.JSON(plan)
	}

	userID, err := optionalInt64Query(c, "userId")
	if err != nil {
		return err
	}
	limit, offset, err := paginationQuery(c, 0)
	if err != nil {
		return err
	}

	plans, err := h.wellnessService.ListPlans(c.Context(), userID, limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(plans)
}

// CreatePlan handles POST /api/wellness-plans.
func (h *WellnessHandler) CreatePlan(c *fiber.Ctx) error {
	var req dto.CreateWellnessPlanRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	plan, err := h.wellnessService.CreatePlan(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(plan)
}

// UpdatePlan handles PUT /api/wellness-plans?id=.
func (h *WellnessHandler) UpdatePlan(c *fiber.Ctx) error {
	id, err := requiredIDQuery(c)
	if err != nil {
		return err
	}

	var req dto.UpdateWellnessPlanRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	plan, err := h.wellnessService.UpdatePlan(c.Context(), id, &req)
	if err != nil {
		return err
	}
	return c.JSON(plan)
}

// DeletePlan handles DELETE /api/wellness-plans?id=.
func (h *WellnessHandler) DeletePlan(c *fiber.Ctx) error {
	id, err := requiredIDQuery(c)
	if err != nil {
		return err
	}

	if err := h.wellnessService.DeletePlan(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(dto.DeleteResponse{Message: "wellness plan deleted"})
}

// GetWellnessPlanView handles GET /api/users/:id/wellness-plan.
func (h *WellnessHandler) GetWellnessPlanView(c *fiber.Ctx) error {
	userID, err := requiredIDParam(c, "id")
	if err != nil {
		return err
	}

	view, err := h.wellnessService.GetWellnessPlanView(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(view)
}

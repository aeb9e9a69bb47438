package handler

import (
	"balanceai/internal/dto"
	"balanceai/internal/service"

	"github.com/gofiber/fiber/v2"
)

// UserHandler handles user account requests plus the per-user dashboard.
type UserHandler struct {
	userService      service.UserService
	dashboardService service.DashboardService
}

// NewUserHandler creates a new UserHandler instance.
func NewUserHandler(userService service.UserService, dashboardService service.DashboardService) *UserHandler {
	return &UserHandler{
		userService:      userService,
		dashboardService: dashboardService,
	}
}

// GetUsers handles GET /api/users. With ?id= it returns one user,
// otherwise a page of users.
func (h *UserHandler) GetUsers(c *fiber.Ctx) error {
	if c.Query("id") != "" {
		id, err := requiredIDQuery(c)
		if err != nil {
			return err
		}
		user, err := h.userService.GetUser(c.Context(), id)
		if err != nil {
			return err
		}
		return c.JSON(user)
	}

	limit, offset, err := paginationQuery(c, 0)
	if err != nil {
		return err
	}
	users, err := h.userService.ListUsers(c.Context(), limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(users)
}

// CreateUser handles POST /api/users.
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	user, err := h.userService.CreateUser(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// UpdateUser handles PUT /api/users?id=.
func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	id, err := requiredIDQuery(c)
	if err != nil {
		return err
	}

	var req dto.UpdateUserRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	user, err := h.userService.UpdateUser(c.Context(), id, &req)
	if err != nil {
		return err
	}
	return c.JSON(user)
}

// DeleteUser handles DELETE /api/users?id=.
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := requiredIDQuery(c)
	if err != nil {
		return err
	}

	if err := h.userService.DeleteUser(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(dto.DeleteResponse{Message: "user deleted"})
}

// GetDashboard handles GET /api/users/:id/dashboard.
func (h *UserHandler) GetDashboard(c *fiber.Ctx) error {
	userID, err := requiredIDParam(c, "id")
	if err != nil {
		return err
	}

	dashboard, err := h.dashboardService.GetDashboard(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(dashboard)
}

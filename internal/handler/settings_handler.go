package handler

import (
	"balanceai/internal/dto"
	"balanceai/internal/service"

	"github.com/gofiber/fiber/v2"
)

// SettingsHandler handles user preference requests.
type SettingsHandler struct {
	settingsService service.SettingsService
}

// NewSettingsHandler creates a new SettingsHandler instance.
func NewSettingsHandler(settingsService service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// GetSettings handles GET /api/user-settings. With ?id= it returns one
// row; ?userId= filters the listing.
func (h *SettingsHandler) GetSettings(c *fiber.Ctx) error {
	if c.Query("id") != "" {
		id, err := requiredIDQuery(c)
		if err != nil {
			return err
		}
		settings, err := h.settingsService.GetSettings(c.Context(), id)
		if err != nil {
			return err
		}
		return c.JSON(settings)
	}

	userID, err := optionalInt64Query(c, "userId")
	if err != nil {
		return err
	}
	limit, offset, err := paginationQuery(c, 0)
	if err != nil {
		return err
	}

	settings, err := h.settingsService.ListSettings(c.Context(), userID, limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(settings)
}

// CreateSettings handles POST /api/user-settings.
func (h *SettingsHandler) CreateSettings(c *fiber.Ctx) error {
	var req dto.CreateUserSettingsRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	settings, err := h.settingsService.CreateSettings(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(settings)
}

// UpdateSettings handles PUT /api/user-settings?id=.
func (h *SettingsHandler) UpdateSettings(c *fiber.Ctx) error {
	id, err := requiredIDQuery(c)
	if err != nil {
		return err
	}

	var req dto.UpdateUserSettingsRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	settings, err := h.settingsService.UpdateSettings(c.Context(), id, &req)
	if err != nil {
		return err
	}
	return c.JSON(settings)
}

// DeleteSettings handles DELETE /api/user-settings?id=.
func (h *SettingsHandler) DeleteSettings(c *fiber.Ctx) error {
	id, err := requiredIDQuery(c)
	if err != nil {
		return err
	}

	if err := h.settingsService.DeleteSettings(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(dto.DeleteResponse{Message: "settings deleted"})
}

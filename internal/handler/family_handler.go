package handler

import (
	"balanceai/internal/dto"
	"balanceai/internal/service"

	"github.com/gofiber/fiber/v2"
)

// FamilyHandler handles family group membership requests.
type FamilyHandler struct {
	familyService service.FamilyService
}

// NewFamilyHandler creates a new FamilyHandler instance.
func NewFamilyHandler(familyService service.FamilyService) *FamilyHandler {
	return &FamilyHandler{familyService: familyService}
}

// GetGroupMembers handles GET /api/family/:groupId/members. Each member is
// joined with their user profile.
func (h *FamilyHandler) GetGroupMembers(c *fiber.Ctx) error {
	groupID := c.Params("groupId")

	group, err := h.familyService.GetGroupMembers(c.Context(), groupID)
	if err != nil {
		return err
	}
	return c.JSON(group)
}

// GetMembers handles GET /api/family-members.
func (h *FamilyHandler) GetMembers(c *fiber.Ctx) error {
	if c.Query("id") != "" {
		id, err := requiredIDQuery(c)
		if err != nil {
			return err
		}
		member, err := h.familyService.GetMember(c.Context(), id)
		if err != nil {
			return err
		}
		return c.JSON(member)
	}

	groupID := optionalStringQuery(c, "familyGroupId")
	userID, err := optionalInt64Query(c, "userId")
	if err != nil {
		return err
	}
	limit, offset, err := paginationQuery(c, 0)
	if err != nil {
		return err
	}

	members, err := h.familyService.ListMembers(c.Context(), groupID, userID, limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(members)
}

// CreateMember handles POST /api/family-members.
func (h *FamilyHandler) CreateMember(c *fiber.Ctx) error {
	var req dto.CreateFamilyMemberRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	member, err := h.familyService.CreateMember(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(member)
}

// UpdateMember handles PUT /api/family-members?id=.
func (h *FamilyHandler) UpdateMember(c *fiber.Ctx) error {
	id, err := requiredIDQuery(c)
	if err != nil {
		return err
	}

	var req dto.UpdateFamilyMemberRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	member, err := h.familyService.UpdateMember(c.Context(), id, &req)
	if err != nil {
		return err
	}
	return c.JSON(member)
}

// DeleteMember handles DELETE /api/family-members?id=.
func (h *FamilyHandler) DeleteMember(c *fiber.Ctx) error {
	id, err := requiredIDQuery(c)
	if err != nil {
		return err
	}

	if err := h.familyService.DeleteMember(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(dto.DeleteResponse{Message: "family member deleted"})
}

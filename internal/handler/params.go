package handler

import (
	"strconv"

	"balanceai/internal/domain"

	"github.com/gofiber/fiber/v2"
)

// Single-record CRUD operations address rows with an ?id= query parameter.

func requiredIDQuery(c *fiber.Ctx) (int64, error) {
	raw := c.Query("id")
	if raw == "" {
		return 0, domain.ValidationErrors{domain.NewMissingFieldError("id")}
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ValidationErrors{domain.NewInvalidFieldError("id", "id must be a positive integer")}
	}
	return id, nil
}

func requiredIDParam(c *fiber.Ctx, name string) (int64, error) {
	raw := c.Params(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ValidationErrors{domain.NewInvalidFieldError(name, name + " must be a positive integer")}
	}
	return id, nil
}

func optionalInt64Query(c *fiber.Ctx, name string) (*int64, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v <= 0 {
		return nil, domain.ValidationErrors{domain.NewInvalidFieldError(name, name + " must be a positive integer")}
	}
	return &v, nil
}

func optionalStringQuery(c *fiber.Ctx, name string) *string {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	return &raw
}

// paginationQuery parses limit/offset without range checks; the service
// layer decides whether to clamp or reject.
func paginationQuery(c *fiber.Ctx, defaultLimit int) (int, int, error) {
	limit := defaultLimit
	if raw := c.Query("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, domain.ValidationErrors{
				domain.NewFieldError("limit", string(domain.CodeInvalidLimit), "limit must be an integer"),
			}
		}
		limit = v
	}

	offset := 0
	if raw := c.Query("offset"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, domain.ValidationErrors{
				domain.NewFieldError("offset", string(domain.CodeInvalidOffset), "offset must be an integer"),
			}
		}
		offset = v
	}

	return limit, offset, nil
}

func parseBody(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return domain.NewError(domain.CodeValidation, "request body is not valid JSON", err)
	}
	return nil
}

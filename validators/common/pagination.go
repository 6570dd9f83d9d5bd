package commonValidator

import (
	"strconv"

	"github.com/AdamLouly/quizzapp/middleware"

	"github.com/gofiber/fiber/v2"
)

// Pagination validates the offset/limit query parameters shared by every
// listing endpoint. Defaults are 0/10, limit is capped at 100.
func Pagination() fiber.Handler {
	return func(c *fiber.Ctx) error {
		offset := 0
		limit := 10

		errors := make(map[string]string)

		if raw := c.Query("offset"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 0 {
				errors["offset"] = "Offset must be a non-negative integer!"
			} else {
				offset = parsed
			}
		}

		if raw := c.Query("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 || parsed > 100 {
				errors["limit"] = "Limit must be between 1 and 100!"
			} else {
				limit = parsed
			}
		}

		if len(errors) > 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Validation failed!", errors)
		}

		c.Locals("offset", offset)
		c.Locals("limit", limit)
		return c.Next()
	}
}

package quizReportValidator

import (
	"strconv"

	"github.com/AdamLouly/quizzapp/middleware"

	"github.com/gofiber/fiber/v2"
)

// ReportQuery validates classId/quizId query parameters for the report
// endpoints. classId is mandatory, quizId optional.
func ReportQuery() fiber.Handler {
	return func(c *fiber.Ctx) error {
		errors := make(map[string]string)

		classID, err := strconv.Atoi(c.Query("classId"))
		if c.Query("classId") == "" || err != nil || classID < 1 {
			errors["classId"] = "classId must be provided!"
		}

		quizID := 0
		if raw := c.Query("quizId"); raw != "" {
			quizID, err = strconv.Atoi(raw)
			if err != nil || quizID < 1 {
				errors["quizId"] = "quizId must be a positive integer!"
			}
		}

		if len(errors) > 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Validation failed!", errors)
		}

		c.Locals("classId", uint(classID))
		c.Locals("quizId", uint(quizID))
		return c.Next()
	}
}

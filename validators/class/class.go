package classValidator

import (
	"github.com/AdamLouly/quizzapp/middleware"
	commonValidator "github.com/AdamLouly/quizzapp/validators/common"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// CreateClassRequest is the POST /classes body
type CreateClassRequest struct {
	Name       string `json:"name" validate:"required,min=2"`
	TeacherID  uint   `json:"teacher_id" validate:"required"`
	StudentIDs []uint `json:"student_ids"`
}

// UpdateClassRequest is the PUT /classes/:id body. A non-nil StudentIDs
// replaces the whole roster.
type UpdateClassRequest struct {
	Name       string  `json:"name"`
	TeacherID  uint    `json:"teacher_id"`
	StudentIDs *[]uint `json:"student_ids"`
}

// CreateClass validator middleware
func CreateClass() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateClassRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := commonValidator.ValidationErrors(validate.Struct(reqData)); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedClass", reqData)
		return c.Next()
	}
}

// UpdateClass validator middleware
func UpdateClass() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateClassRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		c.Locals("validatedClassUpdate", reqData)
		return c.Next()
	}
}

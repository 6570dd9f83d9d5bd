package clientValidator

import (
	"github.com/AdamLouly/quizzapp/middleware"
	commonValidator "github.com/AdamLouly/quizzapp/validators/common"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// CreateClientRequest is the POST /clients body
type CreateClientRequest struct {
	Name         string `json:"name" validate:"required,min=2"`
	ContactEmail string `json:"contact_email" validate:"omitempty,email"`
	ContactPhone string `json:"contact_phone"`
	Address      string `json:"address"`
}

// UpdateClientRequest is the PUT /clients/:id body
type UpdateClientRequest struct {
	Name         string `json:"name"`
	ContactEmail string `json:"contact_email" validate:"omitempty,email"`
	ContactPhone string `json:"contact_phone"`
	Address      string `json:"address"`
}

// CreateClient validator middleware
func CreateClient() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateClientRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := commonValidator.ValidationErrors(validate.Struct(reqData)); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedClient", reqData)
		return c.Next()
	}
}

// UpdateClient validator middleware
func UpdateClient() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateClientRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := commonValidator.ValidationErrors(validate.Struct(reqData)); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedClientUpdate", reqData)
		return c.Next()
	}
}

package quizResultValidator

import (
	"github.com/AdamLouly/quizzapp/middleware"
	commonValidator "github.com/AdamLouly/quizzapp/validators/common"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// SubmitResultRequest is the POST /quiz-results body. Answers carry the chosen
// choice index per question, in question order, as strings (the dashboard
// submits them that way).
type SubmitResultRequest struct {
	PublishedQuizID uint     `json:"publishedQuizId" validate:"required"`
	QuizID          uint     `json:"quizId" validate:"required"`
	Answers         []string `json:"answers" validate:"required"`
}

// SubmitResult validator middleware
func SubmitResult() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SubmitResultRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := commonValidator.ValidationErrors(validate.Struct(reqData)); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSubmit", reqData)
		return c.Next()
	}
}

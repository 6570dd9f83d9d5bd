package publishedQuizValidator

import (
	"time"

	"github.com/AdamLouly/quizzapp/middleware"
	commonValidator "github.com/AdamLouly/quizzapp/validators/common"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// PublishQuizRequest is the POST /published-quizzes body
type PublishQuizRequest struct {
	QuizID    uint      `json:"quizId" validate:"required"`
	ClassID   uint      `json:"classId" validate:"required"`
	DueDate   time.Time `json:"dueDate" validate:"required"`
	TimeLimit *int      `json:"timeLimit" validate:"omitempty,gt=0"`
}

// PublishQuiz validator middleware
func PublishQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(PublishQuizRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := commonValidator.ValidationErrors(validate.Struct(reqData))

		if !reqData.DueDate.IsZero() && reqData.DueDate.Before(time.Now()) {
			errors["dueDate"] = "Due date must be in the future!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedPublish", reqData)
		return c.Next()
	}
}

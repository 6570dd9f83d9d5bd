package quizValidator

import (
	"strings"

	"github.com/AdamLouly/quizzapp/middleware"
	"github.com/AdamLouly/quizzapp/models"
	commonValidator "github.com/AdamLouly/quizzapp/validators/common"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// CreateQuizRequest is the POST /quizzes body. Content is the raw text the
// question generation service works from.
type CreateQuizRequest struct {
	Title   string `json:"title" validate:"required,min=3"`
	Content string `json:"content" validate:"required,min=20"`
}

// UpdateQuizRequest is the PUT /quizzes/:id body
type UpdateQuizRequest struct {
	Title     string            `json:"title"`
	Questions []models.Question `json:"questions"`
}

// CreateQuiz validator middleware
func CreateQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateQuizRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := commonValidator.ValidationErrors(validate.Struct(reqData)); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedQuiz", reqData)
		return c.Next()
	}
}

// UpdateQuiz validator middleware
func UpdateQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateQuizRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Every question must keep its correct answer inside the choice list
		for _, q := range reqData.Questions {
			if strings.TrimSpace(q.Question) == "" {
				errors["questions"] = "Question text is required!"
				break
			}
			if len(q.Answers) < 2 {
				errors["questions"] = "Each question needs at least two answer choices!"
				break
			}
			if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Answers) {
				errors["questions"] = "Correct answer index is out of bounds!"
				break
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedQuizUpdate", reqData)
		return c.Next()
	}
}

package quizRoutes

import (
	quizControllers "github.com/AdamLouly/quizzapp/controllers/quizzes"
	"github.com/AdamLouly/quizzapp/middleware"
	commonValidators "github.com/AdamLouly/quizzapp/validators/common"
	quizValidators "github.com/AdamLouly/quizzapp/validators/quiz"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupQuizRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := quizControllers.New(db)

	quizGroup := app.Group("/quizzes", middleware.JWTMiddleware)

	quizGroup.Get("/", middleware.RequireRole(db, "ADMIN", "TEACHER", "STUDENT"), commonValidators.Pagination(), ctrl.ListQuizzes)
	quizGroup.Get("/:id", middleware.RequireRole(db, "ADMIN", "TEACHER", "STUDENT"), ctrl.GetQuiz)
	quizGroup.Post("/", middleware.RequireRole(db, "ADMIN", "TEACHER"), quizValidators.CreateQuiz(), ctrl.CreateQuiz)
	quizGroup.Put("/:id", middleware.RequireRole(db, "ADMIN", "TEACHER"), quizValidators.UpdateQuiz(), ctrl.UpdateQuiz)
	quizGroup.Delete("/:id", middleware.RequireRole(db, "ADMIN", "TEACHER"), ctrl.DeleteQuiz)
}

package quizResultRoutes

import (
	quizResultControllers "github.com/AdamLouly/quizzapp/controllers/quizResults"
	"github.com/AdamLouly/quizzapp/middleware"
	commonValidators "github.com/AdamLouly/quizzapp/validators/common"
	quizResultValidators "github.com/AdamLouly/quizzapp/validators/quizResult"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupQuizResultRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := quizResultControllers.New(db)

	resultGroup := app.Group("/quiz-results", middleware.JWTMiddleware)

	resultGroup.Get("/", middleware.RequireRole(db, "ADMIN", "TEACHER", "STUDENT"), commonValidators.Pagination(), ctrl.ListResults)
	resultGroup.Get("/:id", middleware.RequireRole(db, "ADMIN", "TEACHER", "STUDENT"), ctrl.GetResult)
	resultGroup.Post("/", middleware.RequireRole(db, "STUDENT"), quizResultValidators.SubmitResult(), ctrl.SubmitResult)
}

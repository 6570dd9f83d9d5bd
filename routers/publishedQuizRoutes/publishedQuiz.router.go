package publishedQuizRoutes

import (
	publishedQuizControllers "github.com/AdamLouly/quizzapp/controllers/publishedQuizzes"
	"github.com/AdamLouly/quizzapp/middleware"
	commonValidators "github.com/AdamLouly/quizzapp/validators/common"
	publishedQuizValidators "github.com/AdamLouly/quizzapp/validators/publishedQuiz"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupPublishedQuizRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := publishedQuizControllers.New(db)

	publishedGroup := app.Group("/published-quizzes", middleware.JWTMiddleware)

	publishedGroup.Get("/", middleware.RequireRole(db, "ADMIN", "TEACHER", "STUDENT"), commonValidators.Pagination(), ctrl.ListPublished)
	publishedGroup.Get("/:id", middleware.RequireRole(db, "ADMIN", "TEACHER", "STUDENT"), ctrl.GetPublished)
	publishedGroup.Post("/", middleware.RequireRole(db, "ADMIN", "TEACHER"), publishedQuizValidators.PublishQuiz(), ctrl.Publish)
	publishedGroup.Delete("/:id", middleware.RequireRole(db, "ADMIN", "TEACHER"), ctrl.DeletePublished)
}

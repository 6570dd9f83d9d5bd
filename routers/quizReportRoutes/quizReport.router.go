package quizReportRoutes

import (
	quizReportControllers "github.com/AdamLouly/quizzapp/controllers/quizReports"
	"github.com/AdamLouly/quizzapp/middleware"
	commonValidators "github.com/AdamLouly/quizzapp/validators/common"
	quizReportValidators "github.com/AdamLouly/quizzapp/validators/quizReport"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupQuizReportRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := quizReportControllers.New(db)

	reportGroup := app.Group("/quiz-reports", middleware.JWTMiddleware, middleware.RequireRole(db, "ADMIN", "TEACHER"))

	reportGroup.Get("/", quizReportValidators.ReportQuery(), commonValidators.Pagination(), ctrl.GetReport)
	reportGroup.Get("/absentees", quizReportValidators.ReportQuery(), commonValidators.Pagination(), ctrl.GetAbsentees)
	reportGroup.Get("/quizzes", quizReportValidators.ReportQuery(), ctrl.GetClassQuizzes)
}

package dashboardRoutes

import (
	dashboardControllers "github.com/AdamLouly/quizzapp/controllers/dashboard"
	"github.com/AdamLouly/quizzapp/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupDashboardRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := dashboardControllers.New(db)

	dashboardGroup := app.Group("/dashboard", middleware.JWTMiddleware)

	dashboardGroup.Get("/admin", middleware.RequireRole(db, "ADMIN"), ctrl.AdminDashboard)
	dashboardGroup.Get("/teacher", middleware.RequireRole(db, "TEACHER"), ctrl.TeacherDashboard)
}

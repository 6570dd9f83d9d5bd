package userRoutes

import (
	userControllers "github.com/AdamLouly/quizzapp/controllers/users"
	"github.com/AdamLouly/quizzapp/middleware"
	commonValidators "github.com/AdamLouly/quizzapp/validators/common"
	userValidators "github.com/AdamLouly/quizzapp/validators/user"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupUserRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := userControllers.New(db)

	userGroup := app.Group("/users", middleware.JWTMiddleware)

	userGroup.Get("/", middleware.RequireRole(db, "ADMIN"), commonValidators.Pagination(), ctrl.ListUsers)
	userGroup.Get("/:id", middleware.RequireRole(db, "ADMIN"), ctrl.GetUser)
	userGroup.Post("/", middleware.RequireRole(db, "ADMIN"), userValidators.CreateUser(), ctrl.CreateUser)
	userGroup.Put("/:id", middleware.RequireRole(db, "ADMIN"), userValidators.UpdateUser(), ctrl.UpdateUser)
	userGroup.Delete("/:id", middleware.RequireRole(db, "ADMIN"), ctrl.DeleteUser)

	teacherGroup := app.Group("/teachers", middleware.JWTMiddleware)
	teacherGroup.Get("/", middleware.RequireRole(db, "ADMIN"), commonValidators.Pagination(), ctrl.ListTeachers)

	studentGroup := app.Group("/students", middleware.JWTMiddleware)
	studentGroup.Get("/", middleware.RequireRole(db, "ADMIN", "TEACHER"), commonValidators.Pagination(), ctrl.ListStudents)
}

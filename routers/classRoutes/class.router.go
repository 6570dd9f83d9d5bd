package classRoutes

import (
	classControllers "github.com/AdamLouly/quizzapp/controllers/classes"
	"github.com/AdamLouly/quizzapp/middleware"
	classValidators "github.com/AdamLouly/quizzapp/validators/class"
	commonValidators "github.com/AdamLouly/quizzapp/validators/common"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupClassRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := classControllers.New(db)

	classGroup := app.Group("/classes", middleware.JWTMiddleware)

	classGroup.Get("/", middleware.RequireRole(db, "ADMIN", "TEACHER"), commonValidators.Pagination(), ctrl.ListClasses)
	classGroup.Get("/:id", middleware.RequireRole(db, "ADMIN", "TEACHER"), ctrl.GetClass)
	classGroup.Post("/", middleware.RequireRole(db, "ADMIN"), classValidators.CreateClass(), ctrl.CreateClass)
	classGroup.Put("/:id", middleware.RequireRole(db, "ADMIN"), classValidators.UpdateClass(), ctrl.UpdateClass)
	classGroup.Delete("/:id", middleware.RequireRole(db, "ADMIN"), ctrl.DeleteClass)
}

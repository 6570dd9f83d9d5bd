package clientRoutes

import (
	clientControllers "github.com/AdamLouly/quizzapp/controllers/clients"
	"github.com/AdamLouly/quizzapp/middleware"
	clientValidators "github.com/AdamLouly/quizzapp/validators/client"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupClientRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := clientControllers.New(db)

	clientGroup := app.Group("/clients", middleware.JWTMiddleware)

	clientGroup.Get("/", middleware.RequireRole(db, "ADMIN", "TEACHER", "STUDENT"), ctrl.GetOwnClient)
	clientGroup.Get("/:id", middleware.RequireRole(db, "ADMIN"), ctrl.GetClient)
	clientGroup.Post("/", middleware.RequireRole(db, "ADMIN"), clientValidators.CreateClient(), ctrl.CreateClient)
	clientGroup.Put("/:id", middleware.RequireRole(db, "ADMIN"), clientValidators.UpdateClient(), ctrl.UpdateClient)
	clientGroup.Delete("/:id", middleware.RequireRole(db, "ADMIN"), ctrl.DeleteClient)
}

package authRoutes

import (
	authControllers "github.com/AdamLouly/quizzapp/controllers/auth"
	authValidators "github.com/AdamLouly/quizzapp/validators/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := authControllers.New(db)

	authGroup := app.Group("/auth")

	authGroup.Post("/register", authValidators.Register(), ctrl.Register)
	authGroup.Post("/login", authValidators.Login(), ctrl.Login)
	authGroup.Get("/verify-email", ctrl.VerifyEmail)
	authGroup.Post("/forgot-password", authValidators.ForgotPassword(), ctrl.ForgotPassword)
	authGroup.Post("/reset-password", authValidators.ResetPassword(), ctrl.ResetPassword)
}

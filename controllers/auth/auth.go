package authController

import (
	"log"
	"strings"
	"time"

	"github.com/AdamLouly/quizzapp/config"
	"github.com/AdamLouly/quizzapp/middleware"
	"github.com/AdamLouly/quizzapp/models"
	"github.com/AdamLouly/quizzapp/utils"
	authValidator "github.com/AdamLouly/quizzapp/validators/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Controller struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Controller {
	return &Controller{DB: db}
}

// Register creates a student or teacher account and sends a verification email
func (ctrl *Controller) Register(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRegister").(*authValidator.RegisterRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Check if email already exists
	if err := ctrl.DB.Where("email = ?", reqData.Email).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
	}

	// Check if username already exists
	if err := ctrl.DB.Where("username = ?", reqData.Username).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Username is already taken!", nil)
	}

	// Hash Password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	newUser := models.User{
		FirstName:         reqData.FirstName,
		LastName:          reqData.LastName,
		Username:          reqData.Username,
		Email:             reqData.Email,
		Password:          string(hashedPassword),
		Role:              strings.ToUpper(reqData.Role),
		VerificationToken: uuid.NewString(),
	}

	if err := ctrl.DB.Create(&newUser).Error; err != nil {
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register user!", nil)
	}

	go func(user models.User) {
		if err := utils.SendVerificationEmail(user.FirstName, user.Email, user.VerificationToken); err != nil {
			log.Printf("Error sending verification email to %s: %v", user.Email, err)
		}
	}(newUser)

	// Clean Response
	newUser.Password = ""

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User registered successfully!", newUser)
}

// Login verifies credentials and returns a signed JWT
func (ctrl *Controller) Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*authValidator.LoginRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var user models.User
	if err := ctrl.DB.Where("email = ? AND is_deleted = ?", reqData.Email, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid email or password!", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid email or password!", nil)
	}

	if user.Status != "ACTIVE" {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Your account is not active!", nil)
	}

	token, err := middleware.GenerateJWT(user.ID, user.Username, user.Role, user.ClientID)
	if err != nil {
		log.Printf("Error generating JWT: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	user.LastLogin = time.Now()
	ctrl.DB.Save(&user)

	user.Password = ""

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful!", fiber.Map{
		"token": token,
		"user":  user,
	})
}

// VerifyEmail activates an account from the emailed verification link
func (ctrl *Controller) VerifyEmail(c *fiber.Ctx) error {
	token := c.Query("token")
	if token == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Verification token is required!", nil)
	}

	var user models.User
	if err := ctrl.DB.Where("verification_token = ? AND is_deleted = ?", token, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid verification token!", nil)
	}

	user.IsEmailVerified = true
	user.VerificationToken = ""
	if err := ctrl.DB.Save(&user).Error; err != nil {
		log.Printf("Error verifying email for user %d: %v", user.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to verify email!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Email verified successfully!", nil)
}

// ForgotPassword stores a reset token and emails the reset link. The response
// is the same whether or not the email exists.
func (ctrl *Controller) ForgotPassword(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedForgotPassword").(*authValidator.ForgotPasswordRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	genericMsg := "If the email is associated with an account, a reset password link has been sent."

	var user models.User
	if err := ctrl.DB.Where("email = ? AND is_deleted = ?", reqData.Email, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusOK, true, genericMsg, nil)
	}

	expires := time.Now().Add(24 * time.Hour)
	user.ResetPasswordToken = uuid.NewString()
	user.ResetPasswordExpires = &expires

	if err := ctrl.DB.Save(&user).Error; err != nil {
		log.Printf("Error storing reset token for user %d: %v", user.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	go func(user models.User) {
		if err := utils.SendPasswordResetEmail(user.FirstName, user.Email, user.ResetPasswordToken, user.ID); err != nil {
			log.Printf("Error sending reset email to %s: %v", user.Email, err)
		}
	}(user)

	return middleware.JsonResponse(c, fiber.StatusOK, true, genericMsg, nil)
}

// ResetPassword sets a new password from a valid, unexpired reset token
func (ctrl *Controller) ResetPassword(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedResetPassword").(*authValidator.ResetPasswordRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var user models.User
	if err := ctrl.DB.Where("id = ? AND reset_password_token = ? AND is_deleted = ?", reqData.ID, reqData.Token, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid or expired reset token!", nil)
	}

	if user.ResetPasswordToken == "" || user.ResetPasswordExpires == nil || user.ResetPasswordExpires.Before(time.Now()) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid or expired reset token!", nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	user.Password = string(hashedPassword)
	user.ResetPasswordToken = ""
	user.ResetPasswordExpires = nil

	if err := ctrl.DB.Save(&user).Error; err != nil {
		log.Printf("Error resetting password for user %d: %v", user.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to reset password!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Password reset successfully!", nil)
}

package userController

import (
	"log"
	"strings"

	"github.com/AdamLouly/quizzapp/config"
	"github.com/AdamLouly/quizzapp/middleware"
	"github.com/AdamLouly/quizzapp/models"
	userValidator "github.com/AdamLouly/quizzapp/validators/user"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Controller struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Controller {
	return &Controller{DB: db}
}

// ListUsers lists the tenant's non-admin users for admin management screens
func (ctrl *Controller) ListUsers(c *fiber.Ctx) error {
	admin := middleware.AuthUser(c)
	offset := c.Locals("offset").(int)
	limit := c.Locals("limit").(int)

	var users []models.User
	var total int64

	db := ctrl.DB.Model(&models.User{}).
		Where("client_id = ? AND role <> ? AND is_deleted = ?", admin.ClientID, "ADMIN", false)
	db.Count(&total)

	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&users).Error; err != nil {
		log.Printf("Error fetching users: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch users!", nil)
	}

	for i := range users {
		users[i].Password = ""
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Users fetched successfully!", fiber.Map{
		"users":      users,
		"totalCount": total,
		"offset":     offset,
		"limit":      limit,
	})
}

// GetUser fetches one user within the admin's tenant
func (ctrl *Controller) GetUser(c *fiber.Ctx) error {
	admin := middleware.AuthUser(c)

	userID, err := c.ParamsInt("id")
	if err != nil || userID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user id!", nil)
	}

	var user models.User
	if err := ctrl.DB.Where("id = ? AND client_id = ? AND is_deleted = ?", userID, admin.ClientID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	user.Password = ""
	return middleware.JsonResponse(c, fiber.StatusOK, true, "User fetched successfully!", user)
}

// CreateUser provisions a teacher or student inside the admin's tenant
func (ctrl *Controller) CreateUser(c *fiber.Ctx) error {
	admin := middleware.AuthUser(c)

	reqData, ok := c.Locals("validatedUser").(*userValidator.CreateUserRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if err := ctrl.DB.Where("email = ?", reqData.Email).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
	}
	if err := ctrl.DB.Where("username = ?", reqData.Username).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Username is already taken!", nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	// Tenant comes from the principal, never from the body
	newUser := models.User{
		FirstName: reqData.FirstName,
		LastName:  reqData.LastName,
		Username:  reqData.Username,
		Email:     reqData.Email,
		Password:  string(hashedPassword),
		Role:      strings.ToUpper(reqData.Role),
		ClientID:  admin.ClientID,
	}

	if err := ctrl.DB.Create(&newUser).Error; err != nil {
		log.Printf("Error creating user: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create user!", nil)
	}

	newUser.Password = ""
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User created successfully!", newUser)
}

// UpdateUser updates profile fields; the password is rehashed only when supplied
func (ctrl *Controller) UpdateUser(c *fiber.Ctx) error {
	admin := middleware.AuthUser(c)

	userID, err := c.ParamsInt("id")
	if err != nil || userID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user id!", nil)
	}

	var user models.User
	if err := ctrl.DB.Where("id = ? AND client_id = ? AND is_deleted = ?", userID, admin.ClientID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedUserUpdate").(*userValidator.UpdateUserRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Update only provided fields
	if reqData.FirstName != "" {
		user.FirstName = reqData.FirstName
	}
	if reqData.LastName != "" {
		user.LastName = reqData.LastName
	}
	if reqData.Username != "" {
		user.Username = reqData.Username
	}
	if reqData.Email != "" {
		user.Email = reqData.Email
	}
	if reqData.Status != "" {
		user.Status = reqData.Status
	}
	if reqData.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
		if err != nil {
			log.Printf("Error hashing password: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
		}
		user.Password = string(hashedPassword)
	}

	if err := ctrl.DB.Save(&user).Error; err != nil {
		log.Printf("Error updating user %d: %v", user.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update user!", nil)
	}

	user.Password = ""
	return middleware.JsonResponse(c, fiber.StatusOK, true, "User updated successfully!", user)
}

// DeleteUser soft deletes a user within the admin's tenant
func (ctrl *Controller) DeleteUser(c *fiber.Ctx) error {
	admin := middleware.AuthUser(c)

	userID, err := c.ParamsInt("id")
	if err != nil || userID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user id!", nil)
	}

	var user models.User
	if err := ctrl.DB.Where("id = ? AND client_id = ? AND is_deleted = ?", userID, admin.ClientID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	user.IsDeleted = true
	if err := ctrl.DB.Save(&user).Error; err != nil {
		log.Printf("Error deleting user %d: %v", user.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User deleted successfully!", nil)
}

// ListTeachers lists the tenant's teachers
func (ctrl *Controller) ListTeachers(c *fiber.Ctx) error {
	return ctrl.listByRole(c, "TEACHER", "teachers", "Teachers fetched successfully!")
}

// ListStudents lists the tenant's students
func (ctrl *Controller) ListStudents(c *fiber.Ctx) error {
	return ctrl.listByRole(c, "STUDENT", "students", "Students fetched successfully!")
}

func (ctrl *Controller) listByRole(c *fiber.Ctx, role, key, message string) error {
	user := middleware.AuthUser(c)
	offset := c.Locals("offset").(int)
	limit := c.Locals("limit").(int)

	var users []models.User
	var total int64

	db := ctrl.DB.Model(&models.User{}).
		Where("client_id = ? AND role = ? AND is_deleted = ?", user.ClientID, role, false)
	db.Count(&total)

	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&users).Error; err != nil {
		log.Printf("Error fetching %s: %v", key, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch "+key+"!", nil)
	}

	for i := range users {
		users[i].Password = ""
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, message, fiber.Map{
		key:          users,
		"totalCount": total,
		"offset":     offset,
		"limit":      limit,
	})
}

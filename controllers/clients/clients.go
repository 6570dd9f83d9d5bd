package clientController

import (
	"log"

	"github.com/AdamLouly/quizzapp/middleware"
	"github.com/AdamLouly/quizzapp/models"
	clientValidator "github.com/AdamLouly/quizzapp/validators/client"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type Controller struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Controller {
	return &Controller{DB: db}
}

// GetOwnClient returns the caller's tenant record
func (ctrl *Controller) GetOwnClient(c *fiber.Ctx) error {
	user := middleware.AuthUser(c)

	var client models.Client
	if err := ctrl.DB.Where("id = ? AND is_deleted = ?", user.ClientID, false).First(&client).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Client not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Client fetched successfully!", client)
}

// GetClient fetches one tenant by id; callers may only read their own tenant
func (ctrl *Controller) GetClient(c *fiber.Ctx) error {
	user := middleware.AuthUser(c)

	clientID, err := c.ParamsInt("id")
	if err != nil || clientID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid client id!", nil)
	}

	// A valid foreign-tenant id must look like a missing record
	if uint(clientID) != user.ClientID {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Client not found!", nil)
	}

	var client models.Client
	if err := ctrl.DB.Where("id = ? AND is_deleted = ?", clientID, false).First(&client).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Client not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Client fetched successfully!", client)
}

// CreateClient registers a new tenant
func (ctrl *Controller) CreateClient(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedClient").(*clientValidator.CreateClientRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	client := models.Client{
		Name:         reqData.Name,
		ContactEmail: reqData.ContactEmail,
		ContactPhone: reqData.ContactPhone,
		Address:      reqData.Address,
	}

	if err := ctrl.DB.Create(&client).Error; err != nil {
		log.Printf("Error creating client: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create client!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Client created successfully!", client)
}

// UpdateClient updates the caller's own tenant record
func (ctrl *Controller) UpdateClient(c *fiber.Ctx) error {
	user := middleware.AuthUser(c)

	clientID, err := c.ParamsInt("id")
	if err != nil || clientID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid client id!", nil)
	}

	if uint(clientID) != user.ClientID {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Client not found!", nil)
	}

	var client models.Client
	if err := ctrl.DB.Where("id = ? AND is_deleted = ?", clientID, false).First(&client).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Client not found!", nil)
	}

	reqData, ok := c.Locals("validatedClientUpdate").(*clientValidator.UpdateClientRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Name != "" {
		client.Name = reqData.Name
	}
	if reqData.ContactEmail != "" {
		client.ContactEmail = reqData.ContactEmail
	}
	if reqData.ContactPhone != "" {
		client.ContactPhone = reqData.ContactPhone
	}
	if reqData.Address != "" {
		client.Address = reqData.Address
	}

	if err := ctrl.DB.Save(&client).Error; err != nil {
		log.Printf("Error updating client %d: %v", client.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update client!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Client updated successfully!", client)
}

// DeleteClient soft deletes the caller's own tenant
func (ctrl *Controller) DeleteClient(c *fiber.Ctx) error {
	user := middleware.AuthUser(c)

	clientID, err := c.ParamsInt("id")
	if err != nil || clientID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid client id!", nil)
	}

	if uint(clientID) != user.ClientID {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Client not found!", nil)
	}

	var client models.Client
	if err := ctrl.DB.Where("id = ? AND is_deleted = ?", clientID, false).First(&client).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Client not found!", nil)
	}

	client.IsDeleted = true
	if err := ctrl.DB.Save(&client).Error; err != nil {
		log.Printf("Error deleting client %d: %v", client.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete client!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Client deleted successfully!", nil)
}

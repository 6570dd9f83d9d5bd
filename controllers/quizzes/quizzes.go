package quizController

import (
	"log"

	"github.com/AdamLouly/quizzapp/middleware"
	"github.com/AdamLouly/quizzapp/models"
	"github.com/AdamLouly/quizzapp/utils"
	quizValidator "github.com/AdamLouly/quizzapp/validators/quiz"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type Controller struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Controller {
	return &Controller{DB: db}
}

// CreateQuiz creates a quiz from raw content: the question generation service
// turns the content into multiple-choice questions, and the correct choice is
// stored as its index among the options.
func (ctrl *Controller) CreateQuiz(c *fiber.Ctx) error {
	user := middleware.AuthUser(c)

	reqData, ok := c.Locals("validatedQuiz").(*quizValidator.CreateQuizRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// One title per teacher per tenant
	var existing models.Quiz
	if err := ctrl.DB.Where("title = ? AND created_by = ? AND client_id = ? AND is_deleted = ?",
		reqData.Title, user.ID, user.ClientID, false).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Quiz with this title already exists!", nil)
	}

	questions, err := utils.GenerateQuestions(reqData.Content)
	if err != nil {
		log.Printf("Error generating questions: %v", err)
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Failed to generate quiz questions!", nil)
	}

	quiz := models.Quiz{
		Title:     reqData.Title,
		Content:   reqData.Content,
		Questions: questions,
		CreatedBy: user.ID,
		ClientID:  user.ClientID,
	}

	if err := ctrl.DB.Create(&quiz).Error; err != nil {
		log.Printf("Error creating quiz: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Quiz created successfully!", quiz)
}

// ListQuizzes lists quizzes for the caller's role: teachers see their own,
// students and admins see the tenant's.
func (ctrl *Controller) ListQuizzes(c *fiber.Ctx) error {
	user := middleware.AuthUser(c)
	offset := c.Locals("offset").(int)
	limit := c.Locals("limit").(int)

	db := ctrl.DB.Model(&models.Quiz{}).Where("client_id = ? AND is_deleted = ?", user.ClientID, false)
	if user.Role == "TEACHER" {
		db = db.Where("created_by = ?", user.ID)
	}

	var total int64
	db.Count(&total)

	var quizzes []models.Quiz
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&quizzes).Error; err != nil {
		log.Printf("Error fetching quizzes: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch quizzes!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quizzes fetched successfully!", fiber.Map{
		"quizzes":    quizzes,
		"totalCount": total,
		"offset":     offset,
		"limit":      limit,
	})
}

// GetQuiz fetches one quiz within the caller's tenant
func (ctrl *Controller) GetQuiz(c *fiber.Ctx) error {
	user := middleware.AuthUser(c)

	quizID, err := c.ParamsInt("id")
	if err != nil || quizID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid quiz id!", nil)
	}

	var quiz models.Quiz
	if err := ctrl.DB.Where("id = ? AND client_id = ? AND is_deleted = ?", quizID, user.ClientID, false).First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz fetched successfully!", quiz)
}

// UpdateQuiz edits a quiz's title or questions. Only the creating teacher or
// an admin may edit.
func (ctrl *Controller) UpdateQuiz(c *fiber.Ctx) error {
	user := middleware.AuthUser(c)

	quizID, err := c.ParamsInt("id")
	if err != nil || quizID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid quiz id!", nil)
	}

	var quiz models.Quiz
	if err := ctrl.DB.Where("id = ? AND client_id = ? AND is_deleted = ?", quizID, user.ClientID, false).First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	if user.Role != "ADMIN" && quiz.CreatedBy != user.ID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not own this quiz!", nil)
	}

	reqData, ok := c.Locals("validatedQuizUpdate").(*quizValidator.UpdateQuizRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Title != "" {
		quiz.Title = reqData.Title
	}
	if len(reqData.Questions) > 0 {
		quiz.Questions = reqData.Questions
	}

	if err := ctrl.DB.Save(&quiz).Error; err != nil {
		log.Printf("Error updating quiz %d: %v", quiz.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz updated successfully!", quiz)
}

// DeleteQuiz soft deletes a quiz. Only the creating teacher or an admin may delete.
func (ctrl *Controller) DeleteQuiz(c *fiber.Ctx) error {
	user := middleware.AuthUser(c)

	quizID, err := c.ParamsInt("id")
	if err != nil || quizID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid quiz id!", nil)
	}

	var quiz models.Quiz
	if err := ctrl.DB.Where("id = ? AND client_id = ? AND is_deleted = ?", quizID, user.ClientID, false).First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	if user.Role != "ADMIN" && quiz.CreatedBy != user.ID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not own this quiz!", nil)
	}

	quiz.IsDeleted = true
	if err := ctrl.DB.Save(&quiz).Error; err != nil {
		log.Printf("Error deleting quiz %d: %v", quiz.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz deleted successfully!", nil)
}

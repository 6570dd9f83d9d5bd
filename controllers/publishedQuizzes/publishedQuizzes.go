package publishedQuizController

import (
	"log"
	"time"

	"github.com/AdamLouly/quizzapp/middleware"
	"github.com/AdamLouly/quizzapp/models"
	publishedQuizValidator "github.com/AdamLouly/quizzapp/validators/publishedQuiz"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type Controller struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Controller {
	return &Controller{DB: db}
}

// Publish assigns a quiz to a class with a due date. Quiz and class must both
// live in the caller's tenant. Republishing the same pair is allowed.
func (ctrl *Controller) Publish(c *fiber.Ctx) error {
	user := middleware.AuthUser(c)

	reqData, ok := c.Locals("validatedPublish").(*publishedQuizValidator.PublishQuizRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var quiz models.Quiz
	if err := ctrl.DB.Where("id = ? AND client_id = ? AND is_deleted = ?", reqData.QuizID, user.ClientID, false).First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	var class models.Class
	if err := ctrl.DB.Where("id = ? AND client_id = ? AND is_deleted = ?", reqData.ClassID, user.ClientID, false).First(&class).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Class not found!", nil)
	}

	// A teacher may only publish to classes they teach
	if user.Role == "TEACHER" && class.TeacherID != user.ID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not teach this class!", nil)
	}

	published := models.PublishedQuiz{
		QuizID:    quiz.ID,
		ClassID:   class.ID,
		DueDate:   reqData.DueDate,
		TimeLimit: reqData.TimeLimit,
		CreatedBy: user.ID,
		ClientID:  user.ClientID,
	}

	if err := ctrl.DB.Create(&published).Error; err != nil {
		log.Printf("Error publishing quiz %d to class %d: %v", quiz.ID, class.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to publish quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Quiz published successfully!", published)
}

// ListPublished lists publications for the caller's role. Students see only
// publications they are still eligible to attempt: their class, due date not
// passed, and no recorded result yet. Teachers see open publications for the
// classes they teach. Admins see everything in the tenant.
func (ctrl *Controller) ListPublished(c *fiber.Ctx) error {
	user := middleware.AuthUser(c)
	offset := c.Locals("offset").(int)
	limit := c.Locals("limit").(int)

	db := ctrl.DB.Model(&models.PublishedQuiz{}).
		Where("published_quizzes.client_id = ? AND published_quizzes.is_deleted = ?", user.ClientID, false)

	switch user.Role {
	case "STUDENT":
		db = db.
			Joins("JOIN class_students ON class_students.class_id = published_quizzes.class_id").
			Where("class_students.user_id = ?", user.ID).
			Where("published_quizzes.due_date >= ?", time.Now()).
			Where("published_quizzes.id NOT IN (?)",
				ctrl.DB.Model(&models.QuizResult{}).Select("published_quiz_id").Where("student_id = ?", user.ID))
	case "TEACHER":
		db = db.
			Joins("JOIN classes ON classes.id = published_quizzes.class_id").
			Where("classes.teacher_id = ? AND classes.is_deleted = ?", user.ID, false).
			Where("published_quizzes.due_date >= ?", time.Now())
	}

	var total int64
	db.Count(&total)

	var published []models.PublishedQuiz
	if err := db.Offset(offset).Limit(limit).Order("published_quizzes.created_at desc").Find(&published).Error; err != nil {
		log.Printf("Error fetching published quizzes: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch published quizzes!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Published quizzes fetched successfully!", fiber.Map{
		"quizzes":    published,
		"totalCount": total,
		"offset":     offset,
		"limit":      limit,
	})
}

// GetPublished fetches one publication together with its quiz
func (ctrl *Controller) GetPublished(c *fiber.Ctx) error {
	user := middleware.AuthUser(c)

	publishedID, err := c.ParamsInt("id")
	if err != nil || publishedID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid published quiz id!", nil)
	}

	var published models.PublishedQuiz
	if err := ctrl.DB.Where("id = ? AND client_id = ? AND is_deleted = ?", publishedID, user.ClientID, false).First(&published).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Published quiz not found!", nil)
	}

	var quiz models.Quiz
	if err := ctrl.DB.Where("id = ? AND is_deleted = ?", published.QuizID, false).First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Published quiz fetched successfully!", fiber.Map{
		"publishedQuiz": published,
		"quiz":          quiz,
	})
}

// DeletePublished soft deletes a publication. Only its creator or an admin may delete.
func (ctrl *Controller) DeletePublished(c *fiber.Ctx) error {
	user := middleware.AuthUser(c)

	publishedID, err := c.ParamsInt("id")
	if err != nil || publishedID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid published quiz id!", nil)
	}

	var published models.PublishedQuiz
	if err := ctrl.DB.Where("id = ? AND client_id = ? AND is_deleted = ?", publishedID, user.ClientID, false).First(&published).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Published quiz not found!", nil)
	}

	if user.Role != "ADMIN" && published.CreatedBy != user.ID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You did not publish this quiz!", nil)
	}

	published.IsDeleted = true
	if err := ctrl.DB.Save(&published).Error; err != nil {
		log.Printf("Error deleting published quiz %d: %v", published.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete published quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Published quiz deleted successfully!", nil)
}

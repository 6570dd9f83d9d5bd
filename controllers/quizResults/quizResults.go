package quizResultController

import (
	"errors"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/AdamLouly/quizzapp/middleware"
	"github.com/AdamLouly/quizzapp/models"
	quizResultValidator "github.com/AdamLouly/quizzapp/validators/quizResult"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type Controller struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Controller {
	return &Controller{DB: db}
}

// SubmitResult scores a student's answers against the published quiz and
// records the result. A student gets exactly one result per publication: a
// duplicate submission is rejected before insert, and the compound unique
// index turns a lost race into the same 409.
func (ctrl *Controller) SubmitResult(c *fiber.Ctx) error {
	student := middleware.AuthUser(c)

	reqData, ok := c.Locals("validatedSubmit").(*quizResultValidator.SubmitResultRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var published models.PublishedQuiz
	if err := ctrl.DB.Where("id = ? AND client_id = ? AND is_deleted = ?",
		reqData.PublishedQuizID, student.ClientID, false).First(&published).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Published quiz not found!", nil)
	}

	// Guard against a client submitting against the wrong quiz version
	if reqData.QuizID != published.QuizID {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Requested quizId does not match the published quiz!", nil)
	}

	var quiz models.Quiz
	if err := ctrl.DB.Where("id = ? AND is_deleted = ?", published.QuizID, false).First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	if len(quiz.Questions) == 0 {
		log.Printf("Data integrity warning: quiz %d has no questions to score", quiz.ID)
		return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Quiz has no questions to score!", nil)
	}

	var existing models.QuizResult
	if err := ctrl.DB.Where("student_id = ? AND published_quiz_id = ?", student.ID, published.ID).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "You have already submitted this quiz!", nil)
	}

	score := scoreAnswers(quiz.Questions, reqData.Answers)
	percentage := float64(score) / float64(len(quiz.Questions)) * 100

	result := models.QuizResult{
		PublishedQuizID: published.ID,
		QuizID:          quiz.ID,
		StudentID:       student.ID,
		ClientID:        student.ClientID,
		Answers:         reqData.Answers,
		Score:           score,
		PercentageScore: percentage,
		CompletedAt:     time.Now(),
	}

	if err := ctrl.DB.Create(&result).Error; err != nil {
		if isDuplicateKeyError(err) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "You have already submitted this quiz!", nil)
		}
		log.Printf("Error saving quiz result for student %d: %v", student.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save quiz result!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Quiz submitted successfully!", result)
}

// ListResults lists results for the caller's role: students see their own,
// teachers see results for the classes they teach, admins see the tenant's.
func (ctrl *Controller) ListResults(c *fiber.Ctx) error {
	user := middleware.AuthUser(c)
	offset := c.Locals("offset").(int)
	limit := c.Locals("limit").(int)

	db := ctrl.DB.Model(&models.QuizResult{}).
		Where("quiz_results.client_id = ?", user.ClientID)

	switch user.Role {
	case "STUDENT":
		db = db.Where("quiz_results.student_id = ?", user.ID)
	case "TEACHER":
		db = db.
			Joins("JOIN published_quizzes ON published_quizzes.id = quiz_results.published_quiz_id").
			Joins("JOIN classes ON classes.id = published_quizzes.class_id").
			Where("classes.teacher_id = ? AND classes.is_deleted = ?", user.ID, false)
	}

	var total int64
	db.Count(&total)

	var results []models.QuizResult
	if err := db.Offset(offset).Limit(limit).Order("quiz_results.created_at desc").Find(&results).Error; err != nil {
		log.Printf("Error fetching quiz results: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch quiz results!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz results fetched successfully!", fiber.Map{
		"results":    results,
		"totalCount": total,
		"offset":     offset,
		"limit":      limit,
	})
}

// GetResult fetches one result. Students may only read their own.
func (ctrl *Controller) GetResult(c *fiber.Ctx) error {
	user := middleware.AuthUser(c)

	resultID, err := c.ParamsInt("id")
	if err != nil || resultID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid quiz result id!", nil)
	}

	var result models.QuizResult
	if err := ctrl.DB.Where("id = ? AND client_id = ?", resultID, user.ClientID).First(&result).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz result not found!", nil)
	}

	if user.Role == "STUDENT" && result.StudentID != user.ID {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz result not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz result fetched successfully!", result)
}

// scoreAnswers counts the positions where the submitted choice matches the
// stored correct index. Submitted values are trimmed and compared against the
// canonical decimal form of the index, so "2" matches index 2 but "02" does
// not. Missing answers count as incorrect and extras beyond the question
// count are ignored.
func scoreAnswers(questions []models.Question, answers []string) int {
	score := 0
	for i, q := range questions {
		if i >= len(answers) {
			break
		}
		if strings.TrimSpace(answers[i]) == strconv.Itoa(q.CorrectAnswer) {
			score++
		}
	}
	return score
}

// isDuplicateKeyError detects a unique index violation across drivers
func isDuplicateKeyError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint")
}

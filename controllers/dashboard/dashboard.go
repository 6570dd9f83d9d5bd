package dashboardController

import (
	"log"
	"time"

	"github.com/AdamLouly/quizzapp/middleware"
	"github.com/AdamLouly/quizzapp/models"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
	"gorm.io/gorm"
)

type Controller struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Controller {
	return &Controller{DB: db}
}

type registrationBucket struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// AdminDashboard aggregates tenant-wide totals: users per role, a 7-day
// registration series, quiz and class counts, and the average attempt score.
func (ctrl *Controller) AdminDashboard(c *fiber.Ctx) error {
	user := middleware.AuthUser(c)

	counts := make(map[string]int64)
	for _, role := range []string{"ADMIN", "TEACHER", "STUDENT"} {
		var n int64
		if err := ctrl.DB.Model(&models.User{}).
			Where("client_id = ? AND role = ? AND is_deleted = ?", user.ClientID, role, false).
			Count(&n).Error; err != nil {
			log.Printf("Error counting %s users: %v", role, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to build dashboard!", nil)
		}
		counts[role] = n
	}

	registrations, err := ctrl.registrationSeries(user.ClientID, 7)
	if err != nil {
		log.Printf("Error building registration series: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to build dashboard!", nil)
	}

	var quizCount, classCount, attemptCount int64
	ctrl.DB.Model(&models.Quiz{}).Where("client_id = ? AND is_deleted = ?", user.ClientID, false).Count(&quizCount)
	ctrl.DB.Model(&models.Class{}).Where("client_id = ? AND is_deleted = ?", user.ClientID, false).Count(&classCount)
	ctrl.DB.Model(&models.QuizResult{}).Where("client_id = ?", user.ClientID).Count(&attemptCount)

	var avgScore float64
	if attemptCount > 0 {
		row := ctrl.DB.Model(&models.QuizResult{}).
			Where("client_id = ?", user.ClientID).
			Select("AVG(percentage_score)").
			Row()
		if err := row.Scan(&avgScore); err != nil {
			log.Printf("Error computing average score: %v", err)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched successfully!", fiber.Map{
		"totalUsers":        counts["ADMIN"] + counts["TEACHER"] + counts["STUDENT"],
		"totalAdmins":       counts["ADMIN"],
		"totalTeachers":     counts["TEACHER"],
		"totalStudents":     counts["STUDENT"],
		"totalQuizzes":      quizCount,
		"totalClasses":      classCount,
		"totalAttempts":     attemptCount,
		"averageScore":      avgScore,
		"userRegistrations": registrations,
	})
}

// TeacherDashboard scopes the same aggregates to the classes and quizzes the
// authenticated teacher owns.
func (ctrl *Controller) TeacherDashboard(c *fiber.Ctx) error {
	user := middleware.AuthUser(c)

	var classCount, quizCount, publishedCount int64
	ctrl.DB.Model(&models.Class{}).
		Where("teacher_id = ? AND client_id = ? AND is_deleted = ?", user.ID, user.ClientID, false).
		Count(&classCount)
	ctrl.DB.Model(&models.Quiz{}).
		Where("created_by = ? AND client_id = ? AND is_deleted = ?", user.ID, user.ClientID, false).
		Count(&quizCount)
	ctrl.DB.Model(&models.PublishedQuiz{}).
		Where("created_by = ? AND client_id = ? AND is_deleted = ?", user.ID, user.ClientID, false).
		Count(&publishedCount)

	var studentCount int64
	if err := ctrl.DB.Model(&models.User{}).
		Joins("JOIN class_students ON class_students.user_id = users.id").
		Joins("JOIN classes ON classes.id = class_students.class_id").
		Where("classes.teacher_id = ? AND classes.is_deleted = ?", user.ID, false).
		Distinct("users.id").
		Count(&studentCount).Error; err != nil {
		log.Printf("Error counting taught students: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to build dashboard!", nil)
	}

	var attemptCount int64
	var avgScore float64
	ctrl.DB.Model(&models.QuizResult{}).
		Joins("JOIN published_quizzes ON published_quizzes.id = quiz_results.published_quiz_id").
		Where("published_quizzes.created_by = ?", user.ID).
		Count(&attemptCount)
	if attemptCount > 0 {
		row := ctrl.DB.Model(&models.QuizResult{}).
			Joins("JOIN published_quizzes ON published_quizzes.id = quiz_results.published_quiz_id").
			Where("published_quizzes.created_by = ?", user.ID).
			Select("AVG(quiz_results.percentage_score)").
			Row()
		if err := row.Scan(&avgScore); err != nil {
			log.Printf("Error computing average score: %v", err)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched successfully!", fiber.Map{
		"totalClasses":        classCount,
		"totalQuizzes":        quizCount,
		"totalPublished":      publishedCount,
		"totalStudentsTaught": studentCount,
		"totalAttempts":       attemptCount,
		"averageScore":        avgScore,
	})
}

// registrationSeries buckets tenant sign-ups per calendar day for the last n
// days, zero-filling days without registrations.
func (ctrl *Controller) registrationSeries(clientID uint, days int) ([]registrationBucket, error) {
	series := make([]registrationBucket, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := now.With(time.Now().AddDate(0, 0, -i))
		var n int64
		if err := ctrl.DB.Model(&models.User{}).
			Where("client_id = ? AND is_deleted = ? AND created_at BETWEEN ? AND ?",
				clientID, false, day.BeginningOfDay(), day.EndOfDay()).
			Count(&n).Error; err != nil {
			return nil, err
		}
		series = append(series, registrationBucket{
			Date:  day.BeginningOfDay().Format("2006-01-02"),
			Count: n,
		})
	}
	return series, nil
}

package quizReportController

import (
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/AdamLouly/quizzapp/middleware"
	"github.com/AdamLouly/quizzapp/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type Controller struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Controller {
	return &Controller{DB: db}
}

// ReportRow is one line of a participation report. Attempted says whether the
// student submitted at all; Passed is the score-threshold judgement and is
// only meaningful when Attempted is true.
type ReportRow struct {
	StudentID       uint       `json:"student_id"`
	FirstName       string     `json:"firstname"`
	LastName        string     `json:"lastname"`
	Username        string     `json:"username"`
	Score           int        `json:"score"`
	PercentageScore float64    `json:"percentage_score"`
	Attempted       bool       `json:"attempted"`
	Passed          bool       `json:"passed"`
	CompletedAt     *time.Time `json:"completed_at"`
	DueDate         time.Time  `json:"due_date"`
}

const passThreshold = 50.0

// GetReport returns the paginated attempted rows for a (class, quiz) pair
// together with the class participation percentage. Students who never
// submitted are served separately by GetAbsentees so both sets paginate
// consistently.
func (ctrl *Controller) GetReport(c *fiber.Ctx) error {
	user := middleware.AuthUser(c)
	classID := c.Locals("classId").(uint)
	quizID := c.Locals("quizId").(uint)
	offset := c.Locals("offset").(int)
	limit := c.Locals("limit").(int)

	class, publications, err := ctrl.resolveScope(user, classID, quizID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Class not found!", nil)
	}

	pubIDs := publicationIDs(publications)

	var total int64
	var results []models.QuizResult
	if len(pubIDs) > 0 {
		db := ctrl.DB.Model(&models.QuizResult{}).Where("published_quiz_id IN ?", pubIDs)
		db.Count(&total)
		if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&results).Error; err != nil {
			log.Printf("Error fetching quiz results for report: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to build quiz report!", nil)
		}
	}

	attempted, err := ctrl.attemptedStudentIDs(pubIDs)
	if err != nil {
		log.Printf("Error counting attempted students: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to build quiz report!", nil)
	}

	rows, err := ctrl.attemptedRows(results, publications)
	if err != nil {
		log.Printf("Error building report rows: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to build quiz report!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz report fetched successfully!", fiber.Map{
		"quizResults":             rows,
		"participationPercentage": ParticipationPercentage(len(attempted), len(class.Students)),
		"totalCount":              total,
		"offset":                  offset,
		"limit":                   limit,
	})
}

// GetAbsentees returns the paginated synthesized rows for roster students who
// never submitted against any matching publication.
func (ctrl *Controller) GetAbsentees(c *fiber.Ctx) error {
	user := middleware.AuthUser(c)
	classID := c.Locals("classId").(uint)
	quizID := c.Locals("quizId").(uint)
	offset := c.Locals("offset").(int)
	limit := c.Locals("limit").(int)

	class, publications, err := ctrl.resolveScope(user, classID, quizID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Class not found!", nil)
	}

	pubIDs := publicationIDs(publications)

	attempted, err := ctrl.attemptedStudentIDs(pubIDs)
	if err != nil {
		log.Printf("Error counting attempted students: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to build quiz report!", nil)
	}

	absentees := AbsenteeRows(class.Students, attempted, publications)

	total := len(absentees)
	page := paginateRows(absentees, offset, limit)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz report absentees fetched successfully!", fiber.Map{
		"quizResults":             page,
		"participationPercentage": ParticipationPercentage(len(attempted), len(class.Students)),
		"totalCount":              total,
		"offset":                  offset,
		"limit":                   limit,
	})
}

// GetClassQuizzes lists the quizzes that have been published to a class
func (ctrl *Controller) GetClassQuizzes(c *fiber.Ctx) error {
	user := middleware.AuthUser(c)
	classID := c.Locals("classId").(uint)

	var class models.Class
	if err := ctrl.DB.Where("id = ? AND client_id = ? AND is_deleted = ?", classID, user.ClientID, false).First(&class).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Class not found!", nil)
	}

	var quizIDs []uint
	if err := ctrl.DB.Model(&models.PublishedQuiz{}).
		Where("class_id = ? AND client_id = ? AND is_deleted = ?", classID, user.ClientID, false).
		Distinct("quiz_id").
		Pluck("quiz_id", &quizIDs).Error; err != nil {
		log.Printf("Error fetching published quiz ids for class %d: %v", classID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch class quizzes!", nil)
	}

	var quizzes []models.Quiz
	if len(quizIDs) > 0 {
		if err := ctrl.DB.Where("id IN ? AND is_deleted = ?", quizIDs, false).Find(&quizzes).Error; err != nil {
			log.Printf("Error fetching quizzes for class %d: %v", classID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch class quizzes!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Class quizzes fetched successfully!", fiber.Map{
		"quizzes": quizzes,
	})
}

// resolveScope loads the tenant-scoped class with roster and the publications
// matching the (class, quiz) filter. A teacher only reaches classes they teach.
func (ctrl *Controller) resolveScope(user *models.User, classID, quizID uint) (*models.Class, []models.PublishedQuiz, error) {
	var class models.Class
	db := ctrl.DB.Preload("Students").Where("id = ? AND client_id = ? AND is_deleted = ?", classID, user.ClientID, false)
	if user.Role == "TEACHER" {
		db = db.Where("teacher_id = ?", user.ID)
	}
	if err := db.First(&class).Error; err != nil {
		return nil, nil, err
	}

	pubQuery := ctrl.DB.Where("class_id = ? AND client_id = ? AND is_deleted = ?", classID, user.ClientID, false)
	if quizID != 0 {
		pubQuery = pubQuery.Where("quiz_id = ?", quizID)
	}

	var publications []models.PublishedQuiz
	if err := pubQuery.Order("created_at asc").Find(&publications).Error; err != nil {
		return nil, nil, err
	}

	return &class, publications, nil
}

// attemptedStudentIDs returns the distinct students with a result against any
// of the given publications
func (ctrl *Controller) attemptedStudentIDs(pubIDs []uint) (map[uint]bool, error) {
	attempted := make(map[uint]bool)
	if len(pubIDs) == 0 {
		return attempted, nil
	}
	var studentIDs []uint
	if err := ctrl.DB.Model(&models.QuizResult{}).
		Where("published_quiz_id IN ?", pubIDs).
		Distinct("student_id").
		Pluck("student_id", &studentIDs).Error; err != nil {
		return nil, err
	}
	for _, id := range studentIDs {
		attempted[id] = true
	}
	return attempted, nil
}

// attemptedRows joins the result page with student identities
func (ctrl *Controller) attemptedRows(results []models.QuizResult, publications []models.PublishedQuiz) ([]ReportRow, error) {
	rows := make([]ReportRow, 0, len(results))
	if len(results) == 0 {
		return rows, nil
	}

	studentIDs := make([]uint, 0, len(results))
	for _, r := range results {
		studentIDs = append(studentIDs, r.StudentID)
	}

	var students []models.User
	if err := ctrl.DB.Where("id IN ?", studentIDs).Find(&students).Error; err != nil {
		return nil, err
	}
	byID := make(map[uint]models.User, len(students))
	for _, s := range students {
		byID[s.ID] = s
	}

	dueDates := make(map[uint]time.Time, len(publications))
	for _, p := range publications {
		dueDates[p.ID] = p.DueDate
	}

	for _, r := range results {
		student := byID[r.StudentID]
		completed := r.CompletedAt
		rows = append(rows, ReportRow{
			StudentID:       r.StudentID,
			FirstName:       student.FirstName,
			LastName:        student.LastName,
			Username:        student.Username,
			Score:           r.Score,
			PercentageScore: r.PercentageScore,
			Attempted:       true,
			Passed:          r.PercentageScore >= passThreshold,
			CompletedAt:     &completed,
			DueDate:         dueDates[r.PublishedQuizID],
		})
	}
	return rows, nil
}

// AbsenteeRows synthesizes placeholder rows for roster students without a
// result, carrying the due date of the first matching publication. Rows come
// back ordered by student id so pagination is stable.
func AbsenteeRows(roster []models.User, attempted map[uint]bool, publications []models.PublishedQuiz) []ReportRow {
	var dueDate time.Time
	if len(publications) > 0 {
		dueDate = publications[0].DueDate
	}

	rows := make([]ReportRow, 0)
	for _, student := range roster {
		if attempted[student.ID] {
			continue
		}
		rows = append(rows, ReportRow{
			StudentID: student.ID,
			FirstName: student.FirstName,
			LastName:  student.LastName,
			Username:  student.Username,
			Attempted: false,
			Passed:    false,
			DueDate:   dueDate,
		})
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].StudentID < rows[j].StudentID })
	return rows
}

// ParticipationPercentage formats attempted/roster as a two-decimal
// percentage, guarding the empty-roster case explicitly.
func ParticipationPercentage(attemptedCount, rosterSize int) string {
	if rosterSize == 0 {
		return "0.00"
	}
	return fmt.Sprintf("%.2f", float64(attemptedCount)/float64(rosterSize)*100)
}

func publicationIDs(publications []models.PublishedQuiz) []uint {
	ids := make([]uint, 0, len(publications))
	for _, p := range publications {
		ids = append(ids, p.ID)
	}
	return ids
}

func paginateRows(rows []ReportRow, offset, limit int) []ReportRow {
	if offset >= len(rows) {
		return []ReportRow{}
	}
	end := offset + limit
	if end > len(rows) {
		end = len(rows)
	}
	return rows[offset:end]
}

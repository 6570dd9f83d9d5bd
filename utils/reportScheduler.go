package utils

import (
	"fmt"
	"log"
	"time"

	"github.com/AdamLouly/quizzapp/models"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// InitializeReportScheduler sets up the daily participation digest scheduler
func InitializeReportScheduler(db *gorm.DB) {
	log.Println("[REPORT-SCHEDULER] Initializing participation digest scheduler...")

	c := cron.New()

	// Run daily at 7 AM to send digests for publications that closed in the last day
	c.AddFunc("0 7 * * *", func() {
		log.Println("[REPORT-SCHEDULER] Running daily participation digest...")
		SendParticipationDigests(db)
	})

	c.Start()
	log.Println("[REPORT-SCHEDULER] Participation digest scheduler started - runs daily at 7 AM")
}

// SendParticipationDigests emails each class teacher a participation summary
// for publications whose due date passed within the last 24 hours
func SendParticipationDigests(db *gorm.DB) {
	now := time.Now()
	oneDayAgo := now.AddDate(0, 0, -1)

	var closedPublications []models.PublishedQuiz
	if err := db.
		Where("is_deleted = false AND due_date BETWEEN ? AND ?", oneDayAgo, now).
		Find(&closedPublications).Error; err != nil {
		log.Printf("[REPORT-SCHEDULER] Error fetching closed publications: %v", err)
		return
	}

	log.Printf("[REPORT-SCHEDULER] Found %d publications closed in the last day", len(closedPublications))

	for _, pub := range closedPublications {
		var class models.Class
		if err := db.Preload("Students").Where("id = ? AND is_deleted = ?", pub.ClassID, false).First(&class).Error; err != nil {
			log.Printf("[REPORT-SCHEDULER] Class %d not found for publication %d: %v", pub.ClassID, pub.ID, err)
			continue
		}

		var teacher models.User
		if err := db.Where("id = ? AND is_deleted = ?", class.TeacherID, false).First(&teacher).Error; err != nil {
			log.Printf("[REPORT-SCHEDULER] Teacher %d not found for class %d: %v", class.TeacherID, class.ID, err)
			continue
		}

		var quiz models.Quiz
		if err := db.Where("id = ? AND is_deleted = ?", pub.QuizID, false).First(&quiz).Error; err != nil {
			continue
		}

		var attempted int64
		db.Model(&models.QuizResult{}).
			Distinct("student_id").
			Where("published_quiz_id = ?", pub.ID).
			Count(&attempted)

		rosterSize := len(class.Students)
		participation := "0.00"
		if rosterSize > 0 {
			participation = fmt.Sprintf("%.2f", float64(attempted)/float64(rosterSize)*100)
		}

		body := emailTemplate("Quiz Participation Digest", fmt.Sprintf(`
			<h2>Hello, %s</h2>
			<p>The quiz <strong>%s</strong> for class <strong>%s</strong> closed on %s.</p>
			<p>%d of %d students attempted it (%s%% participation).</p>`,
			teacher.FirstName, quiz.Title, class.Name,
			pub.DueDate.Format("Jan 2, 2006"), attempted, rosterSize, participation))

		if err := SendEmail(teacher.FirstName, teacher.Email, "Quiz participation digest: "+quiz.Title, body); err != nil {
			log.Printf("[REPORT-SCHEDULER] Failed to email teacher %s: %v", teacher.Email, err)
		}
	}
}

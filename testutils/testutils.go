package testutils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/AdamLouly/quizzapp/config"
	"github.com/AdamLouly/quizzapp/database"
	"github.com/AdamLouly/quizzapp/middleware"
	"github.com/AdamLouly/quizzapp/models"
	authRoutes "github.com/AdamLouly/quizzapp/routers/authRoutes"
	classRoutes "github.com/AdamLouly/quizzapp/routers/classRoutes"
	clientRoutes "github.com/AdamLouly/quizzapp/routers/clientRoutes"
	dashboardRoutes "github.com/AdamLouly/quizzapp/routers/dashboardRoutes"
	publishedQuizRoutes "github.com/AdamLouly/quizzapp/routers/publishedQuizRoutes"
	quizReportRoutes "github.com/AdamLouly/quizzapp/routers/quizReportRoutes"
	quizResultRoutes "github.com/AdamLouly/quizzapp/routers/quizResultRoutes"
	quizRoutes "github.com/AdamLouly/quizzapp/routers/quizRoutes"
	userRoutes "github.com/AdamLouly/quizzapp/routers/userRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var seq uint64

func nextSeq() uint64 {
	return atomic.AddUint64(&seq, 1)
}

// SetupTestDB opens an in-memory SQLite database with the full schema
// migrated. The pool is pinned to one connection so every query sees the same
// in-memory database.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	if config.AppConfig == nil {
		config.AppConfig = &config.Config{
			JWTKey:    "test-secret",
			SaltRound: bcrypt.MinCost,
		}
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	database.RunMigrations(db)
	return db
}

// SetupApp wires the full route surface against a fresh test database.
func SetupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db := SetupTestDB(t)
	app := fiber.New()

	authRoutes.SetupAuthRoutes(app, db)
	userRoutes.SetupUserRoutes(app, db)
	clientRoutes.SetupClientRoutes(app, db)
	classRoutes.SetupClassRoutes(app, db)
	quizRoutes.SetupQuizRoutes(app, db)
	publishedQuizRoutes.SetupPublishedQuizRoutes(app, db)
	quizResultRoutes.SetupQuizResultRoutes(app, db)
	quizReportRoutes.SetupQuizReportRoutes(app, db)
	dashboardRoutes.SetupDashboardRoutes(app, db)

	return app, db
}

func CreateClient(t *testing.T, db *gorm.DB, name string) *models.Client {
	t.Helper()

	client := models.Client{Name: name, ContactEmail: fmt.Sprintf("contact%d@school.test", nextSeq())}
	require.NoError(t, db.Create(&client).Error)
	return &client
}

// CreateUser seeds a user with a unique username/email and the password
// "password123".
func CreateUser(t *testing.T, db *gorm.DB, role string, clientID uint) *models.User {
	t.Helper()

	n := nextSeq()
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{
		FirstName:       fmt.Sprintf("First%d", n),
		LastName:        fmt.Sprintf("Last%d", n),
		Username:        fmt.Sprintf("user%d", n),
		Email:           fmt.Sprintf("user%d@school.test", n),
		Password:        string(hashed),
		Role:            role,
		ClientID:        clientID,
		Status:          "ACTIVE",
		IsEmailVerified: true,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func CreateClass(t *testing.T, db *gorm.DB, teacher *models.User, students ...*models.User) *models.Class {
	t.Helper()

	roster := make([]models.User, 0, len(students))
	for _, s := range students {
		roster = append(roster, *s)
	}
	class := models.Class{
		Name:      fmt.Sprintf("Class %d", nextSeq()),
		TeacherID: teacher.ID,
		ClientID:  teacher.ClientID,
		Students:  roster,
	}
	require.NoError(t, db.Create(&class).Error)
	return &class
}

func CreateQuiz(t *testing.T, db *gorm.DB, creator *models.User, questions []models.Question) *models.Quiz {
	t.Helper()

	quiz := models.Quiz{
		Title:     fmt.Sprintf("Quiz %d", nextSeq()),
		Content:   "Generated source text for a quiz that exercises the scoring engine.",
		Questions: questions,
		CreatedBy: creator.ID,
		ClientID:  creator.ClientID,
	}
	require.NoError(t, db.Create(&quiz).Error)
	return &quiz
}

func PublishQuiz(t *testing.T, db *gorm.DB, quiz *models.Quiz, class *models.Class, creator *models.User, dueDate time.Time) *models.PublishedQuiz {
	t.Helper()

	published := models.PublishedQuiz{
		QuizID:    quiz.ID,
		ClassID:   class.ID,
		DueDate:   dueDate,
		CreatedBy: creator.ID,
		ClientID:  creator.ClientID,
	}
	require.NoError(t, db.Create(&published).Error)
	return &published
}

func Token(t *testing.T, user *models.User) string {
	t.Helper()

	token, err := middleware.GenerateJWT(user.ID, user.Username, user.Role, user.ClientID)
	require.NoError(t, err)
	return token
}

// DoRequest issues a JSON request against the app with an optional bearer
// token and returns the response.
func DoRequest(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// DecodeBody unmarshals a response envelope into a generic map.
func DecodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()

	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

// TwoQuestionQuiz returns the canonical two-question fixture used across the
// scoring tests: correct option indices 2 and 0.
func TwoQuestionQuiz() []models.Question {
	return []models.Question{
		{
			Question:      "What is the capital of France?",
			Answers:       []string{"Berlin", "Madrid", "Paris", "Rome"},
			CorrectAnswer: 2,
		},
		{
			Question:      "Which planet is closest to the sun?",
			Answers:       []string{"Mercury", "Venus", "Earth", "Mars"},
			CorrectAnswer: 0,
		},
	}
}

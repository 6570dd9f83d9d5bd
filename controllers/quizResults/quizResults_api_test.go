package quizResultController_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/AdamLouly/quizzapp/models"
	"github.com/AdamLouly/quizzapp/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitResultScoresAndPersists(t *testing.T) {
	app, db := testutils.SetupApp(t)

	client := testutils.CreateClient(t, db, "Springfield High")
	teacher := testutils.CreateUser(t, db, "TEACHER", client.ID)
	student := testutils.CreateUser(t, db, "STUDENT", client.ID)
	class := testutils.CreateClass(t, db, teacher, student)
	quiz := testutils.CreateQuiz(t, db, teacher, testutils.TwoQuestionQuiz())
	published := testutils.PublishQuiz(t, db, quiz, class, teacher, time.Now().Add(24*time.Hour))

	resp := testutils.DoRequest(t, app, "POST", "/quiz-results", testutils.Token(t, student), map[string]interface{}{
		"publishedQuizId": published.ID,
		"quizId":          quiz.ID,
		"answers":         []string{"2", "0"},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	body := testutils.DecodeBody(t, resp)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(2), data["score"])
	assert.Equal(t, float64(100), data["percentage_score"])

	var saved models.QuizResult
	require.NoError(t, db.Where("student_id = ? AND published_quiz_id = ?", student.ID, published.ID).First(&saved).Error)
	assert.Equal(t, 2, saved.Score)
	assert.Equal(t, 100.0, saved.PercentageScore)
}

func TestSubmitResultPartialScore(t *testing.T) {
	app, db := testutils.SetupApp(t)

	client := testutils.CreateClient(t, db, "Springfield High")
	teacher := testutils.CreateUser(t, db, "TEACHER", client.ID)
	student := testutils.CreateUser(t, db, "STUDENT", client.ID)
	class := testutils.CreateClass(t, db, teacher, student)
	quiz := testutils.CreateQuiz(t, db, teacher, testutils.TwoQuestionQuiz())
	published := testutils.PublishQuiz(t, db, quiz, class, teacher, time.Now().Add(24*time.Hour))

	resp := testutils.DoRequest(t, app, "POST", "/quiz-results", testutils.Token(t, student), map[string]interface{}{
		"publishedQuizId": published.ID,
		"quizId":          quiz.ID,
		"answers":         []string{"1", "0"},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	body := testutils.DecodeBody(t, resp)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["score"])
	assert.Equal(t, float64(50), data["percentage_score"])
}

func TestSubmitResultDuplicateIsRejected(t *testing.T) {
	app, db := testutils.SetupApp(t)

	client := testutils.CreateClient(t, db, "Springfield High")
	teacher := testutils.CreateUser(t, db, "TEACHER", client.ID)
	student := testutils.CreateUser(t, db, "STUDENT", client.ID)
	class := testutils.CreateClass(t, db, teacher, student)
	quiz := testutils.CreateQuiz(t, db, teacher, testutils.TwoQuestionQuiz())
	published := testutils.PublishQuiz(t, db, quiz, class, teacher, time.Now().Add(24*time.Hour))

	payload := map[string]interface{}{
		"publishedQuizId": published.ID,
		"quizId":          quiz.ID,
		"answers":         []string{"2", "0"},
	}

	resp := testutils.DoRequest(t, app, "POST", "/quiz-results", testutils.Token(t, student), payload)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = testutils.DoRequest(t, app, "POST", "/quiz-results", testutils.Token(t, student), payload)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	var count int64
	db.Model(&models.QuizResult{}).Where("student_id = ? AND published_quiz_id = ?", student.ID, published.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestSubmitResultQuizMismatch(t *testing.T) {
	app, db := testutils.SetupApp(t)

	client := testutils.CreateClient(t, db, "Springfield High")
	teacher := testutils.CreateUser(t, db, "TEACHER", client.ID)
	student := testutils.CreateUser(t, db, "STUDENT", client.ID)
	class := testutils.CreateClass(t, db, teacher, student)
	quiz := testutils.CreateQuiz(t, db, teacher, testutils.TwoQuestionQuiz())
	otherQuiz := testutils.CreateQuiz(t, db, teacher, testutils.TwoQuestionQuiz())
	published := testutils.PublishQuiz(t, db, quiz, class, teacher, time.Now().Add(24*time.Hour))

	resp := testutils.DoRequest(t, app, "POST", "/quiz-results", testutils.Token(t, student), map[string]interface{}{
		"publishedQuizId": published.ID,
		"quizId":          otherQuiz.ID,
		"answers":         []string{"2", "0"},
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSubmitResultQuizWithoutQuestions(t *testing.T) {
	app, db := testutils.SetupApp(t)

	client := testutils.CreateClient(t, db, "Springfield High")
	teacher := testutils.CreateUser(t, db, "TEACHER", client.ID)
	student := testutils.CreateUser(t, db, "STUDENT", client.ID)
	class := testutils.CreateClass(t, db, teacher, student)
	quiz := testutils.CreateQuiz(t, db, teacher, []models.Question{})
	published := testutils.PublishQuiz(t, db, quiz, class, teacher, time.Now().Add(24*time.Hour))

	resp := testutils.DoRequest(t, app, "POST", "/quiz-results", testutils.Token(t, student), map[string]interface{}{
		"publishedQuizId": published.ID,
		"quizId":          quiz.ID,
		"answers":         []string{},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var count int64
	db.Model(&models.QuizResult{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestSubmitResultForeignTenantPublication(t *testing.T) {
	app, db := testutils.SetupApp(t)

	client := testutils.CreateClient(t, db, "Springfield High")
	otherClient := testutils.CreateClient(t, db, "Shelbyville High")
	teacher := testutils.CreateUser(t, db, "TEACHER", client.ID)
	student := testutils.CreateUser(t, db, "STUDENT", client.ID)
	class := testutils.CreateClass(t, db, teacher, student)
	quiz := testutils.CreateQuiz(t, db, teacher, testutils.TwoQuestionQuiz())
	published := testutils.PublishQuiz(t, db, quiz, class, teacher, time.Now().Add(24*time.Hour))

	outsider := testutils.CreateUser(t, db, "STUDENT", otherClient.ID)

	resp := testutils.DoRequest(t, app, "POST", "/quiz-results", testutils.Token(t, outsider), map[string]interface{}{
		"publishedQuizId": published.ID,
		"quizId":          quiz.ID,
		"answers":         []string{"2", "0"},
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSubmitResultRequiresStudentRole(t *testing.T) {
	app, db := testutils.SetupApp(t)

	client := testutils.CreateClient(t, db, "Springfield High")
	teacher := testutils.CreateUser(t, db, "TEACHER", client.ID)

	resp := testutils.DoRequest(t, app, "POST", "/quiz-results", testutils.Token(t, teacher), map[string]interface{}{
		"publishedQuizId": 1,
		"quizId":          1,
		"answers":         []string{"0"},
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestSubmitResultRequiresToken(t *testing.T) {
	app, _ := testutils.SetupApp(t)

	resp := testutils.DoRequest(t, app, "POST", "/quiz-results", "", map[string]interface{}{
		"publishedQuizId": 1,
		"quizId":          1,
		"answers":         []string{"0"},
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestListResultsStudentSeesOnlyOwn(t *testing.T) {
	app, db := testutils.SetupApp(t)

	client := testutils.CreateClient(t, db, "Springfield High")
	teacher := testutils.CreateUser(t, db, "TEACHER", client.ID)
	alice := testutils.CreateUser(t, db, "STUDENT", client.ID)
	bob := testutils.CreateUser(t, db, "STUDENT", client.ID)
	class := testutils.CreateClass(t, db, teacher, alice, bob)
	quiz := testutils.CreateQuiz(t, db, teacher, testutils.TwoQuestionQuiz())
	published := testutils.PublishQuiz(t, db, quiz, class, teacher, time.Now().Add(24*time.Hour))

	for _, s := range []*models.User{alice, bob} {
		resp := testutils.DoRequest(t, app, "POST", "/quiz-results", testutils.Token(t, s), map[string]interface{}{
			"publishedQuizId": published.ID,
			"quizId":          quiz.ID,
			"answers":         []string{"2", "0"},
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp := testutils.DoRequest(t, app, "GET", "/quiz-results", testutils.Token(t, alice), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := testutils.DecodeBody(t, resp)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["totalCount"])

	resp = testutils.DoRequest(t, app, "GET", "/quiz-results", testutils.Token(t, teacher), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body = testutils.DecodeBody(t, resp)
	data = body["data"].(map[string]interface{})
	assert.Equal(t, float64(2), data["totalCount"])
}

package quizController_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AdamLouly/quizzapp/config"
	"github.com/AdamLouly/quizzapp/models"
	"github.com/AdamLouly/quizzapp/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const quizContent = "Photosynthesis converts light energy into chemical energy stored in glucose."

// fakeGenerator stands in for the MCQ generation service
func fakeGenerator(t *testing.T, handler http.HandlerFunc) func() {
	t.Helper()

	server := httptest.NewServer(handler)
	previous := config.AppConfig.QuizGenerationApiURL
	config.AppConfig.QuizGenerationApiURL = server.URL
	return func() {
		config.AppConfig.QuizGenerationApiURL = previous
		server.Close()
	}
}

func mcqResponse(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprint(w, `{"mcq":{"questions":[
		{"question":"What does photosynthesis produce?","options":["Water","Glucose","Salt"],"answer":"Glucose"}
	]}}`)
}

func TestCreateQuizGeneratesQuestions(t *testing.T) {
	app, db := testutils.SetupApp(t)
	defer fakeGenerator(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/generate_mcq", r.URL.Path)
		mcqResponse(w)
	})()

	client := testutils.CreateClient(t, db, "Springfield High")
	teacher := testutils.CreateUser(t, db, "TEACHER", client.ID)

	resp := testutils.DoRequest(t, app, "POST", "/quizzes", testutils.Token(t, teacher), map[string]interface{}{
		"title":   "Photosynthesis",
		"content": quizContent,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var quiz models.Quiz
	require.NoError(t, db.Where("title = ?", "Photosynthesis").First(&quiz).Error)
	require.Len(t, quiz.Questions, 1)
	assert.Equal(t, 1, quiz.Questions[0].CorrectAnswer) // index of "Glucose"
	assert.Equal(t, teacher.ID, quiz.CreatedBy)
}

func TestCreateQuizDuplicateTitle(t *testing.T) {
	app, db := testutils.SetupApp(t)
	defer fakeGenerator(t, func(w http.ResponseWriter, r *http.Request) { mcqResponse(w) })()

	client := testutils.CreateClient(t, db, "Springfield High")
	teacher := testutils.CreateUser(t, db, "TEACHER", client.ID)

	payload := map[string]interface{}{"title": "Photosynthesis", "content": quizContent}

	resp := testutils.DoRequest(t, app, "POST", "/quizzes", testutils.Token(t, teacher), payload)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = testutils.DoRequest(t, app, "POST", "/quizzes", testutils.Token(t, teacher), payload)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestCreateQuizGeneratorFailure(t *testing.T) {
	app, db := testutils.SetupApp(t)
	defer fakeGenerator(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})()

	client := testutils.CreateClient(t, db, "Springfield High")
	teacher := testutils.CreateUser(t, db, "TEACHER", client.ID)

	resp := testutils.DoRequest(t, app, "POST", "/quizzes", testutils.Token(t, teacher), map[string]interface{}{
		"title":   "Photosynthesis",
		"content": quizContent,
	})
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)

	var count int64
	db.Model(&models.Quiz{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestListQuizzesTeacherSeesOnlyOwn(t *testing.T) {
	app, db := testutils.SetupApp(t)

	client := testutils.CreateClient(t, db, "Springfield High")
	teacherA := testutils.CreateUser(t, db, "TEACHER", client.ID)
	teacherB := testutils.CreateUser(t, db, "TEACHER", client.ID)
	testutils.CreateQuiz(t, db, teacherA, testutils.TwoQuestionQuiz())
	testutils.CreateQuiz(t, db, teacherB, testutils.TwoQuestionQuiz())

	resp := testutils.DoRequest(t, app, "GET", "/quizzes", testutils.Token(t, teacherA), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := testutils.DecodeBody(t, resp)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["totalCount"])
}

func TestUpdateQuizOnlyOwnerOrAdmin(t *testing.T) {
	app, db := testutils.SetupApp(t)

	client := testutils.CreateClient(t, db, "Springfield High")
	owner := testutils.CreateUser(t, db, "TEACHER", client.ID)
	other := testutils.CreateUser(t, db, "TEACHER", client.ID)
	admin := testutils.CreateUser(t, db, "ADMIN", client.ID)
	quiz := testutils.CreateQuiz(t, db, owner, testutils.TwoQuestionQuiz())

	path := fmt.Sprintf("/quizzes/%d", quiz.ID)
	payload := map[string]interface{}{"title": "Renamed Quiz"}

	resp := testutils.DoRequest(t, app, "PUT", path, testutils.Token(t, other), payload)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = testutils.DoRequest(t, app, "PUT", path, testutils.Token(t, admin), payload)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated models.Quiz
	require.NoError(t, db.First(&updated, quiz.ID).Error)
	assert.Equal(t, "Renamed Quiz", updated.Title)
}

func TestUpdateQuizRejectsOutOfBoundsAnswer(t *testing.T) {
	app, db := testutils.SetupApp(t)

	client := testutils.CreateClient(t, db, "Springfield High")
	owner := testutils.CreateUser(t, db, "TEACHER", client.ID)
	quiz := testutils.CreateQuiz(t, db, owner, testutils.TwoQuestionQuiz())

	resp := testutils.DoRequest(t, app, "PUT", fmt.Sprintf("/quizzes/%d", quiz.ID), testutils.Token(t, owner), map[string]interface{}{
		"questions": []map[string]interface{}{
			{"question": "Broken?", "answers": []string{"a", "b"}, "correct_answer": 5},
		},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestGetQuizForeignTenant(t *testing.T) {
	app, db := testutils.SetupApp(t)

	client := testutils.CreateClient(t, db, "Springfield High")
	otherClient := testutils.CreateClient(t, db, "Shelbyville High")
	owner := testutils.CreateUser(t, db, "TEACHER", client.ID)
	outsider := testutils.CreateUser(t, db, "TEACHER", otherClient.ID)
	quiz := testutils.CreateQuiz(t, db, owner, testutils.TwoQuestionQuiz())

	resp := testutils.DoRequest(t, app, "GET", fmt.Sprintf("/quizzes/%d", quiz.ID), testutils.Token(t, outsider), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

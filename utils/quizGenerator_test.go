package utils

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AdamLouly/quizzapp/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withGenerator(t *testing.T, handler http.HandlerFunc) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	if config.AppConfig == nil {
		config.AppConfig = &config.Config{}
	}
	previous := config.AppConfig.QuizGenerationApiURL
	config.AppConfig.QuizGenerationApiURL = server.URL
	config.AppConfig.QuizGenerationApiKey = "test-key"
	t.Cleanup(func() { config.AppConfig.QuizGenerationApiURL = previous })
}

func TestGenerateQuestionsMapsAnswerToIndex(t *testing.T) {
	withGenerator(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("X-Secret-Key"))
		fmt.Fprint(w, `{"mcq":{"questions":[
			{"question":"Largest ocean?","options":["Atlantic","Pacific","Indian"],"answer":"Pacific"},
			{"question":"Smallest prime?","options":["2","1","3"],"answer":"2"}
		]}}`)
	})

	questions, err := GenerateQuestions("some source content about oceans and primes")
	require.NoError(t, err)
	require.Len(t, questions, 2)

	assert.Equal(t, 1, questions[0].CorrectAnswer)
	assert.Equal(t, []string{"Atlantic", "Pacific", "Indian"}, questions[0].Answers)
	assert.Equal(t, 0, questions[1].CorrectAnswer)
}

func TestGenerateQuestionsAnswerNotAmongOptions(t *testing.T) {
	withGenerator(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"mcq":{"questions":[
			{"question":"Broken?","options":["a","b"],"answer":"c"}
		]}}`)
	})

	_, err := GenerateQuestions("content")
	assert.Error(t, err)
}

func TestGenerateQuestionsEmptyResult(t *testing.T) {
	withGenerator(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"mcq":{"questions":[]}}`)
	})

	_, err := GenerateQuestions("content")
	assert.Error(t, err)
}

func TestGenerateQuestionsUpstreamError(t *testing.T) {
	withGenerator(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := GenerateQuestions("content")
	assert.Error(t, err)
}

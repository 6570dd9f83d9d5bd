package utils

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/AdamLouly/quizzapp/config"
	"github.com/AdamLouly/quizzapp/models"

	"github.com/go-resty/resty/v2"
)

// GenerateQuestions sends the raw quiz content to the external MCQ generation
// service and converts its output into stored questions. The service returns
// the correct choice as a string, so the index is located positionally among
// the options.
func GenerateQuestions(content string) ([]models.Question, error) {
	client := resty.New()
	resp, err := client.R().
		SetHeader("X-Secret-Key", config.AppConfig.QuizGenerationApiKey).
		SetBody(map[string]string{"text": content}).
		Post(config.AppConfig.QuizGenerationApiURL + "/generate_mcq")
	if err != nil {
		log.Printf("Error calling quiz generation API: %v", err)
		return nil, err
	}
	if resp.StatusCode() != 200 {
		log.Printf("Quiz generation API returned status %d: %s", resp.StatusCode(), resp.String())
		return nil, fmt.Errorf("quiz generation failed with status %d", resp.StatusCode())
	}

	var genResp struct {
		MCQ struct {
			Questions []struct {
				Question string   `json:"question"`
				Options  []string `json:"options"`
				Answer   string   `json:"answer"`
			} `json:"questions"`
		} `json:"mcq"`
	}
	if err := json.Unmarshal(resp.Body(), &genResp); err != nil {
		return nil, fmt.Errorf("invalid quiz generation response: %w", err)
	}

	if len(genResp.MCQ.Questions) == 0 {
		return nil, fmt.Errorf("quiz generation returned no questions")
	}

	questions := make([]models.Question, 0, len(genResp.MCQ.Questions))
	for _, q := range genResp.MCQ.Questions {
		correct := indexOf(q.Options, q.Answer)
		if correct < 0 {
			return nil, fmt.Errorf("generated answer %q is not among its options", q.Answer)
		}
		questions = append(questions, models.Question{
			Question:      q.Question,
			Answers:       q.Options,
			CorrectAnswer: correct,
		})
	}

	return questions, nil
}

func indexOf(options []string, answer string) int {
	for i, opt := range options {
		if opt == answer {
			return i
		}
	}
	return -1
}

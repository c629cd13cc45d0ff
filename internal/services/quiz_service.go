package services

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"study-assistant/internal/metrics"
	"study-assistant/internal/models"

	"github.com/google/uuid"
)

const quizTemperature = 0.1

const quizSystemPrompt = "You are a helpful assistant that generates quiz questions for a given document."

var quizPrompt = strings.TrimSpace(`
Generate 10 quiz questions for the given document.
The questions are single-choice questions with 4 options.
The questions should be like in an exam, meaning they shouldn't contain details that nobody cares about.
Those questions will prepare students for an exam.
Make sure that the whole slide is covered by the questions.
`)

// QuizService generates multiple-choice questions over a document's raw content
type QuizService struct {
	documentClient DocumentClientInterface
	genaiClient    GenaiClientInterface
	collector      metrics.Collector
	modelName      string
	logger         *log.Logger
}

// NewQuizService creates a new quiz service
func NewQuizService(
	documentClient DocumentClientInterface,
	genaiClient GenaiClientInterface,
	collector metrics.Collector,
	modelName string,
	logger *log.Logger,
) *QuizService {
	if modelName == "" {
		modelName = DefaultGeminiModel
	}
	return &QuizService{
		documentClient: documentClient,
		genaiClient:    genaiClient,
		collector:      collector,
		modelName:      modelName,
		logger:         logger,
	}
}

// GenerateQuiz downloads the document and asks the gateway for
// schema-constrained quiz questions. Unlike chat and summary there is no
// well-formed empty quiz, so every failure propagates.
func (s *QuizService) GenerateQuiz(ctx context.Context, documentID string) ([]models.QuizQuestion, error) {
	documentBytes := s.documentClient.DownloadDocument(ctx, documentID)
	if documentBytes == nil {
		return nil, &models.NotFoundError{DocumentID: documentID}
	}

	response, err := s.genaiClient.GenerateContent(ctx, &GenerateRequest{
		Files:          [][]byte{documentBytes},
		Messages:       []string{quizPrompt},
		SystemPrompt:   quizSystemPrompt,
		Temperature:    quizTemperature,
		ResponseSchema: models.QuizResponseSchema(),
	})
	if err != nil {
		s.collector.RecordRequest(s.modelName, "failed")
		return nil, err
	}

	text, err := response.FirstText()
	if err != nil {
		s.collector.RecordRequest(s.modelName, "failed")
		return nil, err
	}

	var generated []models.LLMQuizQuestion
	if err := json.Unmarshal([]byte(text), &generated); err != nil {
		s.collector.RecordRequest(s.modelName, "failed")
		return nil, &models.MalformedOutputError{Reason: "quiz output is not a JSON array", Err: err}
	}

	questions := make([]models.QuizQuestion, 0, len(generated))
	for _, question := range generated {
		if err := question.Validate(); err != nil {
			s.collector.RecordRequest(s.modelName, "failed")
			return nil, &models.MalformedOutputError{Reason: "invalid quiz question", Err: err}
		}
		questions = append(questions, models.QuizQuestion{
			ID:       uuid.New().String(),
			Question: question.Question,
			Options: []string{
				question.Option1,
				question.Option2,
				question.Option3,
				question.Option4,
			},
			CorrectAnswer: question.CorrectAnswer,
			Explanation:   question.Explanation,
		})
	}

	s.collector.RecordRequest(s.modelName, "success")
	s.logger.Printf("Generated %d quiz questions for document %s", len(questions), documentID)

	return questions, nil
}

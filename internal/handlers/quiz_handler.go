package handlers

import (
	"errors"
	"log"
	"net/http"

	"study-assistant/internal/models"
	"study-assistant/internal/services"

	"github.com/gorilla/mux"
)

// QuizHandler handles HTTP requests for the quiz service
type QuizHandler struct {
	quizService *services.QuizService
	logger      *log.Logger
}

// NewQuizHandler creates a new quiz handler
func NewQuizHandler(quizService *services.QuizService, logger *log.Logger) *QuizHandler {
	return &QuizHandler{
		quizService: quizService,
		logger:      logger,
	}
}

// Generate handles quiz generation requests
// @Summary Generate quiz questions
// @Description Generate multiple-choice quiz questions covering a document
// @Tags quiz
// @Produce json
// @Param document_id path string true "Document ID"
// @Success 200 {array} models.QuizQuestion
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/quiz/{document_id} [post]
func (h *QuizHandler) Generate(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	documentID := vars["document_id"]

	questions, err := h.quizService.GenerateQuiz(r.Context(), documentID)
	if err != nil {
		var notFoundErr *models.NotFoundError
		var configErr *models.ConfigurationError
		switch {
		case errors.As(err, &notFoundErr):
			sendError(w, http.StatusNotFound, "Document not found")
		case errors.As(err, &configErr):
			sendError(w, http.StatusServiceUnavailable, "Quiz service temporarily unavailable. Please try again later.")
		default:
			h.logger.Printf("Quiz generation failed for document %s: %v", documentID, err)
			sendError(w, http.StatusInternalServerError, "Failed to generate quiz questions")
		}
		return
	}

	sendJSON(w, http.StatusOK, questions)
}

// Health reports quiz service liveness
// @Summary Quiz service health
// @Tags quiz
// @Produce json
// @Success 200 {object} ServiceHealthResponse
// @Router /api/quiz/health [get]
func (h *QuizHandler) Health(w http.ResponseWriter, r *http.Request) {
	sendJSON(w, http.StatusOK, ServiceHealthResponse{
		Status:  "healthy",
		Service: "quiz-service",
	})
}

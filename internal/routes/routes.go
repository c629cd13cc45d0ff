package routes

import (
	"net/http"

	"study-assistant/internal/handlers"

	"github.com/gorilla/mux"
)

// Handlers groups every handler the router needs
type Handlers struct {
	Health  http.HandlerFunc
	Home    http.HandlerFunc
	Chat    *handlers.ChatHandler
	Summary *handlers.SummaryHandler
	Quiz    *handlers.QuizHandler
	Genai   *handlers.GenaiHandler
	Metrics *handlers.MetricsHandler
}

// RegisterRoutes sets up all application routes
func RegisterRoutes(router *mux.Router, h *Handlers) {
	// Server-level endpoints
	router.HandleFunc("/health", h.Health).Methods(http.MethodGet)
	router.HandleFunc("/metrics", h.Metrics.Metrics).Methods(http.MethodGet)

	// Chat service
	router.HandleFunc("/api/chat", h.Chat.Chat).Methods(http.MethodPost, http.MethodOptions)
	router.HandleFunc("/api/chat/health", h.Chat.Health).Methods(http.MethodGet)
	router.HandleFunc("/api/documents/{id}", h.Chat.GetDocument).Methods(http.MethodGet)

	// Summary service
	router.HandleFunc("/api/summary", h.Summary.Summarize).Methods(http.MethodPost, http.MethodOptions)
	router.HandleFunc("/api/summary/health", h.Summary.Health).Methods(http.MethodGet)

	// Quiz service
	router.HandleFunc("/api/quiz/health", h.Quiz.Health).Methods(http.MethodGet)
	router.HandleFunc("/api/quiz/{document_id}", h.Quiz.Generate).Methods(http.MethodPost, http.MethodOptions)

	// GenAI gateway
	router.HandleFunc("/api/genai/generate-content", h.Genai.GenerateContent).Methods(http.MethodPost, http.MethodOptions)
	router.HandleFunc("/api/genai/health", h.Genai.Health).Methods(http.MethodGet)

	// Home last so it doesn't shadow the API routes
	router.HandleFunc("/", h.Home).Methods(http.MethodGet)
}

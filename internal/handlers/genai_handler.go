package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"study-assistant/internal/models"
	"study-assistant/internal/services"
)

// GenaiHandler exposes the generation gateway over HTTP
type GenaiHandler struct {
	gemini *services.GeminiService
	logger *log.Logger
}

// NewGenaiHandler creates a new genai handler
func NewGenaiHandler(gemini *services.GeminiService, logger *log.Logger) *GenaiHandler {
	return &GenaiHandler{
		gemini: gemini,
		logger: logger,
	}
}

// GenerateContent handles generation requests
// @Summary Generate content
// @Description Forward a generation request to the model provider and return the first candidate's content
// @Tags genai
// @Accept json
// @Produce json
// @Param request body models.GenerateContentRequest true "Generation request"
// @Success 200 {object} models.GenerateContentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/genai/generate-content [post]
func (h *GenaiHandler) GenerateContent(w http.ResponseWriter, r *http.Request) {
	// Temperature defaults to 1.0 when the caller leaves it out
	request := models.GenerateContentRequest{Temperature: 1.0}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		sendError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := request.Validate(); err != nil {
		sendError(w, http.StatusBadRequest, err.Error())
		return
	}

	content, err := h.gemini.GenerateContent(r.Context(), &request)
	if err != nil {
		var configErr *models.ConfigurationError
		if errors.As(err, &configErr) {
			sendError(w, http.StatusServiceUnavailable, "Generation unavailable: "+configErr.Error())
			return
		}
		h.logger.Printf("Error generating content: %v", err)
		sendError(w, http.StatusInternalServerError, err.Error())
		return
	}

	sendJSON(w, http.StatusOK, models.GenerateContentResponse{Content: *content})
}

// Health reports gateway liveness and configuration state
// @Summary GenAI gateway health
// @Description Healthy when the model provider API key is configured, degraded otherwise
// @Tags genai
// @Produce json
// @Success 200 {object} ServiceHealthResponse
// @Failure 503 {object} ServiceHealthResponse
// @Router /api/genai/health [get]
func (h *GenaiHandler) Health(w http.ResponseWriter, r *http.Request) {
	if !h.gemini.Ready() {
		sendJSON(w, http.StatusServiceUnavailable, ServiceHealthResponse{
			Status:  "degraded",
			Service: "genai-service",
		})
		return
	}

	sendJSON(w, http.StatusOK, ServiceHealthResponse{
		Status:  "healthy",
		Service: "genai-service",
	})
}

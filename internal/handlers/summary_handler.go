package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"study-assistant/internal/models"
	"study-assistant/internal/services"
)

// SummaryHandler handles HTTP requests for the summary service
type SummaryHandler struct {
	summaryService *services.SummaryService
	logger         *log.Logger
}

// NewSummaryHandler creates a new summary handler
func NewSummaryHandler(summaryService *services.SummaryService, logger *log.Logger) *SummaryHandler {
	return &SummaryHandler{
		summaryService: summaryService,
		logger:         logger,
	}
}

// Summarize handles summary requests
// @Summary Summarize a document
// @Description Generate a markdown summary of a document from its stored chunks
// @Tags summary
// @Accept json
// @Produce json
// @Param request body models.SummaryRequest true "Summary request with document id"
// @Success 200 {object} models.SummaryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/summary [post]
func (h *SummaryHandler) Summarize(w http.ResponseWriter, r *http.Request) {
	var request models.SummaryRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		sendError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	response, err := h.summaryService.Summarize(r.Context(), request.DocumentID)
	if err != nil {
		var validationErr *models.ValidationError
		if errors.As(err, &validationErr) {
			sendError(w, http.StatusBadRequest, validationErr.Error())
			return
		}
		h.logger.Printf("Summary request failed for document %s: %v", request.DocumentID, err)
		sendError(w, http.StatusInternalServerError, "Internal server error while processing summary request")
		return
	}

	sendJSON(w, http.StatusOK, response)
}

// Health reports summary service liveness
// @Summary Summary service health
// @Tags summary
// @Produce json
// @Success 200 {object} ServiceHealthResponse
// @Router /api/summary/health [get]
func (h *SummaryHandler) Health(w http.ResponseWriter, r *http.Request) {
	sendJSON(w, http.StatusOK, ServiceHealthResponse{
		Status:  "healthy",
		Service: "summary-service",
	})
}

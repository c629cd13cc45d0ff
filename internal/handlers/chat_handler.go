package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"study-assistant/internal/models"
	"study-assistant/internal/services"

	"github.com/gorilla/mux"
)

// ChatHandler handles HTTP requests for the chat service
type ChatHandler struct {
	chatService    *services.ChatService
	documentClient services.DocumentClientInterface
	logger         *log.Logger
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatService *services.ChatService, documentClient services.DocumentClientInterface, logger *log.Logger) *ChatHandler {
	return &ChatHandler{
		chatService:    chatService,
		documentClient: documentClient,
		logger:         logger,
	}
}

// Chat handles chat requests
// @Summary Chat about document content
// @Description Answer a question using retrieved document chunks and the document's conversation history
// @Tags chat
// @Accept json
// @Produce json
// @Param request body models.ChatRequest true "Chat request with message and optional document id"
// @Success 200 {object} models.ChatResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/chat [post]
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var request models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		sendError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	response, err := h.chatService.Chat(r.Context(), &request)
	if err != nil {
		var validationErr *models.ValidationError
		if errors.As(err, &validationErr) {
			sendError(w, http.StatusBadRequest, validationErr.Error())
			return
		}
		h.logger.Printf("Chat request failed: %v", err)
		sendError(w, http.StatusInternalServerError, "Failed to process chat request")
		return
	}

	sendJSON(w, http.StatusOK, response)
}

// GetDocument relays a document lookup to the document store
// @Summary Get document
// @Description Fetch document metadata and conversation history from the document store
// @Tags chat
// @Produce json
// @Param id path string true "Document ID"
// @Success 200 {object} models.Document
// @Failure 404 {object} ErrorResponse
// @Router /api/documents/{id} [get]
func (h *ChatHandler) GetDocument(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	documentID := vars["id"]

	document := h.documentClient.GetDocumentByID(r.Context(), documentID)
	if document == nil {
		sendError(w, http.StatusNotFound, "Document not found")
		return
	}

	sendJSON(w, http.StatusOK, document)
}

// Health reports chat service liveness
// @Summary Chat service health
// @Tags chat
// @Produce json
// @Success 200 {object} ServiceHealthResponse
// @Router /api/chat/health [get]
func (h *ChatHandler) Health(w http.ResponseWriter, r *http.Request) {
	sendJSON(w, http.StatusOK, ServiceHealthResponse{
		Status:  "healthy",
		Service: "chat-service",
	})
}

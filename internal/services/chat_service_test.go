package services

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"testing"

	"study-assistant/internal/metrics"
	"study-assistant/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// ============================================================================
// Test Setup
// ============================================================================

func setupTestChatService(t *testing.T) (*ChatService, *MockDocumentClient, *MockGenaiClient, *metrics.InMemoryCollector) {
	mockDocs := new(MockDocumentClient)
	mockGenai := new(MockGenaiClient)
	collector := metrics.NewInMemoryCollector()

	logger := log.New(os.Stdout, "[TEST] ", log.LstdFlags)
	service := NewChatService(mockDocs, mockGenai, collector, "", logger)

	return service, mockDocs, mockGenai, collector
}

func createTestChunks() []models.DocumentChunk {
	return []models.DocumentChunk{
		{
			Text:             "Paris is the capital of France",
			DocumentID:       1,
			DocumentName:     "geography.pdf",
			OriginalFilename: "geography.pdf",
			ChunkIndex:       0,
		},
	}
}

// ============================================================================
// GenerateRAGResponse Tests
// ============================================================================

func TestGenerateRAGResponseNoContent(t *testing.T) {
	service, _, mockGenai, collector := setupTestChatService(t)

	response := service.GenerateRAGResponse(context.Background(), "any question", nil, nil)

	assert.Equal(t, NoInformationMessage, response)
	mockGenai.AssertNotCalled(t, "GenerateContent")

	snapshot := collector.Snapshot()
	key := fmt.Sprintf("ai_requests_total{model=%q,status=%q}", DefaultGeminiModel, "no_content")
	assert.Equal(t, int64(1), snapshot[key])
}

func TestGenerateRAGResponseWithChunks(t *testing.T) {
	service, _, mockGenai, _ := setupTestChatService(t)

	mockGenai.On("GenerateContent", mock.Anything, mock.MatchedBy(func(req *GenerateRequest) bool {
		return len(req.Messages) == 1 &&
			strings.Contains(req.Messages[0], "Paris is the capital of France") &&
			strings.Contains(req.Messages[0], "What is the capital of France?")
	})).Return(textContent("The capital of France is Paris."), nil).Once()

	response := service.GenerateRAGResponse(context.Background(), "What is the capital of France?", createTestChunks(), nil)

	assert.Equal(t, "The capital of France is Paris.", response)
	mockGenai.AssertExpectations(t)
}

func TestGenerateRAGResponsePromptPlaceholders(t *testing.T) {
	service, _, mockGenai, _ := setupTestChatService(t)

	history := []models.ConversationMessage{
		{MessageIndex: 0, MessageType: "HUMAN", Content: "Hello"},
	}

	var prompt string
	mockGenai.On("GenerateContent", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			prompt = args.Get(1).(*GenerateRequest).Messages[0]
		}).
		Return(textContent("Hi!"), nil)

	service.GenerateRAGResponse(context.Background(), "question", nil, history)

	// No chunks but history exists: the document block is a placeholder
	assert.Contains(t, prompt, "No relevant document content found for this specific question.")
	assert.Contains(t, prompt, "Human: Hello")
}

func TestGenerateRAGResponseHistoryTrimming(t *testing.T) {
	service, _, mockGenai, _ := setupTestChatService(t)

	history := make([]models.ConversationMessage, 0, 15)
	for i := 0; i < 15; i++ {
		history = append(history, models.ConversationMessage{
			MessageIndex: i,
			MessageType:  "HUMAN",
			Content:      fmt.Sprintf("message %d", i),
		})
	}

	var prompt string
	mockGenai.On("GenerateContent", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			prompt = args.Get(1).(*GenerateRequest).Messages[0]
		}).
		Return(textContent("ok"), nil)

	service.GenerateRAGResponse(context.Background(), "question", nil, history)

	// Only the 10 most recent messages survive, in original order
	assert.NotContains(t, prompt, "message 4\n")
	assert.Contains(t, prompt, "message 5")
	assert.Contains(t, prompt, "message 14")
	assert.Less(t, strings.Index(prompt, "message 5"), strings.Index(prompt, "message 14"))
}

func TestGenerateRAGResponseGatewayFailure(t *testing.T) {
	service, _, mockGenai, collector := setupTestChatService(t)

	mockGenai.On("GenerateContent", mock.Anything, mock.Anything).
		Return(nil, &models.UpstreamError{Service: "genai gateway", Status: 500})

	response := service.GenerateRAGResponse(context.Background(), "question", createTestChunks(), nil)

	assert.Contains(t, response, "I apologize")

	snapshot := collector.Snapshot()
	key := fmt.Sprintf("ai_requests_total{model=%q,status=%q}", DefaultGeminiModel, "failed")
	assert.Equal(t, int64(1), snapshot[key])
}

// ============================================================================
// Chat Tests
// ============================================================================

func TestChatWithoutDocument(t *testing.T) {
	service, mockDocs, mockGenai, _ := setupTestChatService(t)

	mockDocs.On("SearchSimilarChunks", mock.Anything, "What is the capital of France?", DefaultMaxChunks).
		Return(createTestChunks())
	mockGenai.On("GenerateContent", mock.Anything, mock.Anything).
		Return(textContent("Paris."), nil)

	response, err := service.Chat(context.Background(), &models.ChatRequest{
		Message: "What is the capital of France?",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Paris.", response.Response)
	assert.Equal(t, 1, response.ChunkCount)
	assert.Equal(t, []string{"geography.pdf"}, response.Sources)
	assert.Nil(t, response.Document)
	mockDocs.AssertNotCalled(t, "AddMessageToConversation")
}

func TestChatNoRelevantChunks(t *testing.T) {
	service, mockDocs, mockGenai, _ := setupTestChatService(t)

	mockDocs.On("SearchSimilarChunks", mock.Anything, "unrelated question", DefaultMaxChunks).
		Return([]models.DocumentChunk{})

	response, err := service.Chat(context.Background(), &models.ChatRequest{
		Message: "unrelated question",
	})

	assert.NoError(t, err)
	assert.Equal(t, NoInformationMessage, response.Response)
	assert.Equal(t, 0, response.ChunkCount)
	mockGenai.AssertNotCalled(t, "GenerateContent")
}

func TestChatWithDocumentRecordsConversation(t *testing.T) {
	service, mockDocs, mockGenai, _ := setupTestChatService(t)

	document := &models.Document{
		ID:   42,
		Name: "lecture.pdf",
		Conversation: []models.ConversationMessage{
			{MessageIndex: 0, MessageType: "HUMAN", Content: "earlier question"},
		},
	}

	mockDocs.On("GetDocumentByID", mock.Anything, "42").Return(document)
	mockDocs.On("SearchSimilarChunks", mock.Anything, "follow-up", DefaultMaxChunks).
		Return(createTestChunks())
	mockGenai.On("GenerateContent", mock.Anything, mock.Anything).
		Return(textContent("the answer"), nil)
	mockDocs.On("AddMessageToConversation", mock.Anything, "42", "HUMAN", "follow-up").Return(true)
	mockDocs.On("AddMessageToConversation", mock.Anything, "42", "AI", "the answer").Return(true)

	response, err := service.Chat(context.Background(), &models.ChatRequest{
		Message:    "follow-up",
		DocumentID: "42",
	})

	assert.NoError(t, err)
	assert.Equal(t, "the answer", response.Response)
	assert.NotNil(t, response.Document)
	mockDocs.AssertExpectations(t)
}

func TestChatEmptyMessage(t *testing.T) {
	service, _, _, _ := setupTestChatService(t)

	_, err := service.Chat(context.Background(), &models.ChatRequest{Message: ""})

	var validationErr *models.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestChatDocumentFetchFailureDegrades(t *testing.T) {
	service, mockDocs, mockGenai, _ := setupTestChatService(t)

	// Store failures degrade to absent, the request still succeeds
	mockDocs.On("GetDocumentByID", mock.Anything, "missing").Return(nil)
	mockDocs.On("SearchSimilarChunks", mock.Anything, "question", DefaultMaxChunks).
		Return(createTestChunks())
	mockGenai.On("GenerateContent", mock.Anything, mock.Anything).
		Return(textContent("answer"), nil)
	mockDocs.On("AddMessageToConversation", mock.Anything, "missing", mock.Anything, mock.Anything).Return(false)

	response, err := service.Chat(context.Background(), &models.ChatRequest{
		Message:    "question",
		DocumentID: "missing",
	})

	assert.NoError(t, err)
	assert.Equal(t, "answer", response.Response)
	assert.Nil(t, response.Document)
}

package services

import (
	"context"

	"study-assistant/internal/models"

	"github.com/stretchr/testify/mock"
)

// ============================================================================
// Shared mocks for service tests
// ============================================================================

type MockDocumentClient struct {
	mock.Mock
}

func (m *MockDocumentClient) GetDocumentByID(ctx context.Context, documentID string) *models.Document {
	args := m.Called(ctx, documentID)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*models.Document)
}

func (m *MockDocumentClient) SearchSimilarChunks(ctx context.Context, query string, limit int) []models.DocumentChunk {
	args := m.Called(ctx, query, limit)
	return args.Get(0).([]models.DocumentChunk)
}

func (m *MockDocumentClient) GetAllChunks(ctx context.Context, documentID string) []models.DocumentChunk {
	args := m.Called(ctx, documentID)
	return args.Get(0).([]models.DocumentChunk)
}

func (m *MockDocumentClient) DownloadDocument(ctx context.Context, documentID string) []byte {
	args := m.Called(ctx, documentID)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]byte)
}

func (m *MockDocumentClient) AddMessageToConversation(ctx context.Context, documentID, messageType, content string) bool {
	args := m.Called(ctx, documentID, messageType, content)
	return args.Bool(0)
}

type MockGenaiClient struct {
	mock.Mock
}

func (m *MockGenaiClient) GenerateContent(ctx context.Context, req *GenerateRequest) (*models.Content, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Content), args.Error(1)
}

func textContent(text string) *models.Content {
	return &models.Content{Parts: []models.Part{{Text: text}}}
}

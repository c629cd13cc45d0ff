package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"study-assistant/internal/models"
)

// DocumentClientInterface defines the contract for document store access.
// Every read operation is best-effort: a fetch failure degrades to an
// absent/empty result instead of an error, so callers must treat empty
// results as a valid outcome.
type DocumentClientInterface interface {
	GetDocumentByID(ctx context.Context, documentID string) *models.Document
	SearchSimilarChunks(ctx context.Context, query string, limit int) []models.DocumentChunk
	GetAllChunks(ctx context.Context, documentID string) []models.DocumentChunk
	DownloadDocument(ctx context.Context, documentID string) []byte
	AddMessageToConversation(ctx context.Context, documentID, messageType, content string) bool
}

// DocumentClient handles communication with the document service
type DocumentClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *log.Logger
}

// NewDocumentClient creates a document client with default settings
func NewDocumentClient(baseURL string, logger *log.Logger) *DocumentClient {
	return NewDocumentClientWithTimeout(baseURL, 60*time.Second, logger)
}

// NewDocumentClientWithTimeout creates a document client with a custom timeout
func NewDocumentClientWithTimeout(baseURL string, timeout time.Duration, logger *log.Logger) *DocumentClient {
	return &DocumentClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		logger: logger,
	}
}

// similarChunkResponse mirrors the document service's similarity search items
type similarChunkResponse struct {
	DocumentID int64  `json:"documentId"`
	ChunkIndex int    `json:"chunkIndex"`
	Text       string `json:"text"`
}

// conversationMessageRequest is the body for appending a conversation turn
type conversationMessageRequest struct {
	MessageType string `json:"messageType"`
	Content     string `json:"content"`
}

// GetDocumentByID fetches document metadata and conversation history.
// Returns nil when the document does not exist or the store is unreachable.
func (c *DocumentClient) GetDocumentByID(ctx context.Context, documentID string) *models.Document {
	var document models.Document
	endpoint := "/api/documents/" + url.PathEscape(documentID)
	if err := c.getJSON(ctx, endpoint, &document); err != nil {
		c.logger.Printf("Error fetching document %s: %v", documentID, err)
		return nil
	}

	c.logger.Printf("Successfully fetched document: %s", document.Name)
	return &document
}

// SearchSimilarChunks retrieves up to limit chunks ranked by the store's
// similarity search, enriched with document metadata. Returns an empty
// slice on any failure.
func (c *DocumentClient) SearchSimilarChunks(ctx context.Context, query string, limit int) []models.DocumentChunk {
	c.logger.Printf("Searching similar chunks for query: %q (limit: %d)", query, limit)

	endpoint := "/api/documents/search/similar?q=" + url.QueryEscape(query) + "&limit=" + strconv.Itoa(limit)

	var results []similarChunkResponse
	if err := c.getJSON(ctx, endpoint, &results); err != nil {
		c.logger.Printf("Error searching similar chunks for query %q: %v", query, err)
		return []models.DocumentChunk{}
	}

	// Document metadata is looked up once per distinct document in the results
	documentCache := make(map[int64]*models.Document)

	chunks := make([]models.DocumentChunk, 0, len(results))
	for _, result := range results {
		document, cached := documentCache[result.DocumentID]
		if !cached {
			document = c.GetDocumentByID(ctx, strconv.FormatInt(result.DocumentID, 10))
			documentCache[result.DocumentID] = document
		}

		chunk := models.DocumentChunk{
			Text:             result.Text,
			DocumentID:       result.DocumentID,
			DocumentName:     fmt.Sprintf("Document %d", result.DocumentID),
			OriginalFilename: "Unknown",
			ChunkIndex:       result.ChunkIndex,
		}
		if document != nil {
			chunk.DocumentName = document.Name
			chunk.OriginalFilename = document.OriginalFilename
		}
		chunks = append(chunks, chunk)
	}

	c.logger.Printf("Retrieved %d chunks from similarity search", len(chunks))
	return chunks
}

// GetAllChunks fetches every chunk of a document, used for summaries.
// Returns an empty slice on any failure.
func (c *DocumentClient) GetAllChunks(ctx context.Context, documentID string) []models.DocumentChunk {
	c.logger.Printf("Fetching all chunks for document: %s", documentID)

	endpoint := "/api/documents/" + url.PathEscape(documentID) + "/chunks"

	var results []similarChunkResponse
	if err := c.getJSON(ctx, endpoint, &results); err != nil {
		c.logger.Printf("Error fetching chunks for document %s: %v", documentID, err)
		return []models.DocumentChunk{}
	}

	chunks := make([]models.DocumentChunk, 0, len(results))
	for _, result := range results {
		chunks = append(chunks, models.DocumentChunk{
			Text:             result.Text,
			DocumentID:       result.DocumentID,
			DocumentName:     "Document " + documentID,
			OriginalFilename: "Unknown",
			ChunkIndex:       result.ChunkIndex,
		})
	}

	c.logger.Printf("Retrieved %d chunks for document %s", len(chunks), documentID)
	return chunks
}

// DownloadDocument fetches the raw bytes of a document.
// Returns nil when the document does not exist or the store is unreachable.
func (c *DocumentClient) DownloadDocument(ctx context.Context, documentID string) []byte {
	endpoint := "/api/documents/" + url.PathEscape(documentID) + "/download"

	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+endpoint, nil)
	if err != nil {
		c.logger.Printf("Error creating download request for document %s: %v", documentID, err)
		return nil
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Printf("Error downloading document %s: %v", documentID, err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Printf("Document service returned status %d for download of %s", resp.StatusCode, documentID)
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Printf("Error reading document %s: %v", documentID, err)
		return nil
	}

	return data
}

// AddMessageToConversation appends one conversation turn to a document.
// This is a side effect the main response never waits on for correctness:
// failure is logged and swallowed.
func (c *DocumentClient) AddMessageToConversation(ctx context.Context, documentID, messageType, content string) bool {
	body, err := json.Marshal(conversationMessageRequest{
		MessageType: messageType,
		Content:     content,
	})
	if err != nil {
		c.logger.Printf("Error encoding conversation message for document %s: %v", documentID, err)
		return false
	}

	endpoint := "/api/documents/" + url.PathEscape(documentID) + "/conversation"
	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+endpoint, bytes.NewBuffer(body))
	if err != nil {
		c.logger.Printf("Error creating conversation request for document %s: %v", documentID, err)
		return false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Printf("Error adding %s message to document %s: %v", messageType, documentID, err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Printf("Document service returned status %d adding message to document %s", resp.StatusCode, documentID)
		return false
	}

	c.logger.Printf("Added %s message to document %s", messageType, documentID)
	return true
}

// getJSON performs a single GET request and decodes the JSON response.
// Each call is attempted exactly once; there is no retry loop.
func (c *DocumentClient) getJSON(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to connect to document service: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("document service returned status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	return nil
}

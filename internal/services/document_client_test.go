package services

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
)

// ============================================================================
// Test Helpers
// ============================================================================

func setupDocumentClient(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *DocumentClient) {
	server := httptest.NewServer(handler)
	logger := log.New(os.Stdout, "[TEST] ", log.LstdFlags)
	client := NewDocumentClient(server.URL, logger)
	return server, client
}

// ============================================================================
// GetDocumentByID Tests
// ============================================================================

func TestGetDocumentByID(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/documents/42" {
			t.Errorf("Expected path /api/documents/42, got %s", r.URL.Path)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":               42,
			"name":             "lecture.pdf",
			"originalFilename": "lecture.pdf",
			"contentType":      "application/pdf",
			"fileSize":         1024,
			"createdAt":        "2025-01-01T00:00:00",
			"chunkCount":       3,
			"conversation": []map[string]interface{}{
				{"messageIndex": 0, "messageType": "HUMAN", "content": "hi", "createdAt": "2025-01-01T00:00:00"},
			},
		})
	}

	server, client := setupDocumentClient(t, handler)
	defer server.Close()

	document := client.GetDocumentByID(context.Background(), "42")
	if document == nil {
		t.Fatal("Expected document, got nil")
	}
	if document.Name != "lecture.pdf" {
		t.Errorf("Expected name 'lecture.pdf', got %s", document.Name)
	}
	if len(document.Conversation) != 1 {
		t.Errorf("Expected 1 conversation message, got %d", len(document.Conversation))
	}
}

func TestGetDocumentByIDNotFound(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}

	server, client := setupDocumentClient(t, handler)
	defer server.Close()

	document := client.GetDocumentByID(context.Background(), "missing")
	if document != nil {
		t.Errorf("Expected nil for missing document, got %+v", document)
	}
}

func TestGetDocumentByIDUnreachable(t *testing.T) {
	logger := log.New(os.Stdout, "[TEST] ", log.LstdFlags)
	client := NewDocumentClient("http://127.0.0.1:1", logger)

	document := client.GetDocumentByID(context.Background(), "42")
	if document != nil {
		t.Errorf("Expected nil when store is unreachable, got %+v", document)
	}
}

// ============================================================================
// SearchSimilarChunks Tests
// ============================================================================

func TestSearchSimilarChunks(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		switch r.URL.Path {
		case "/api/documents/search/similar":
			if r.URL.Query().Get("q") != "capital of France" {
				t.Errorf("Expected query 'capital of France', got %s", r.URL.Query().Get("q"))
			}
			if r.URL.Query().Get("limit") != "5" {
				t.Errorf("Expected limit 5, got %s", r.URL.Query().Get("limit"))
			}
			json.NewEncoder(w).Encode([]map[string]interface{}{
				{"documentId": 1, "chunkIndex": 0, "text": "Paris is the capital of France"},
				{"documentId": 1, "chunkIndex": 3, "text": "France is in Europe"},
			})
		case "/api/documents/1":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"id": 1, "name": "geography.pdf", "originalFilename": "geo.pdf",
				"contentType": "application/pdf", "fileSize": 10, "createdAt": "2025-01-01T00:00:00", "chunkCount": 4,
			})
		default:
			t.Errorf("Unexpected path %s", r.URL.Path)
		}
	}

	server, client := setupDocumentClient(t, handler)
	defer server.Close()

	chunks := client.SearchSimilarChunks(context.Background(), "capital of France", 5)
	if len(chunks) != 2 {
		t.Fatalf("Expected 2 chunks, got %d", len(chunks))
	}
	if chunks[0].Text != "Paris is the capital of France" {
		t.Errorf("Unexpected chunk text: %s", chunks[0].Text)
	}
	if chunks[0].DocumentName != "geography.pdf" {
		t.Errorf("Expected enriched document name, got %s", chunks[0].DocumentName)
	}
	if chunks[1].ChunkIndex != 3 {
		t.Errorf("Expected chunk index 3, got %d", chunks[1].ChunkIndex)
	}
}

func TestSearchSimilarChunksFailureReturnsEmpty(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}

	server, client := setupDocumentClient(t, handler)
	defer server.Close()

	chunks := client.SearchSimilarChunks(context.Background(), "anything", 5)
	if len(chunks) != 0 {
		t.Errorf("Expected empty result on failure, got %d chunks", len(chunks))
	}
}

// ============================================================================
// GetAllChunks Tests
// ============================================================================

func TestGetAllChunks(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/documents/7/chunks" {
			t.Errorf("Expected path /api/documents/7/chunks, got %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]map[string]interface{}{
			{"documentId": 7, "chunkIndex": 0, "text": "first"},
			{"documentId": 7, "chunkIndex": 1, "text": "second"},
		})
	}

	server, client := setupDocumentClient(t, handler)
	defer server.Close()

	chunks := client.GetAllChunks(context.Background(), "7")
	if len(chunks) != 2 {
		t.Fatalf("Expected 2 chunks, got %d", len(chunks))
	}
	if chunks[1].Text != "second" {
		t.Errorf("Expected second chunk text 'second', got %s", chunks[1].Text)
	}
}

// ============================================================================
// DownloadDocument Tests
// ============================================================================

func TestDownloadDocument(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/documents/7/download" {
			t.Errorf("Expected path /api/documents/7/download, got %s", r.URL.Path)
		}
		w.Write([]byte("raw pdf bytes"))
	}

	server, client := setupDocumentClient(t, handler)
	defer server.Close()

	data := client.DownloadDocument(context.Background(), "7")
	if string(data) != "raw pdf bytes" {
		t.Errorf("Unexpected download content: %q", string(data))
	}
}

func TestDownloadDocumentNotFound(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}

	server, client := setupDocumentClient(t, handler)
	defer server.Close()

	data := client.DownloadDocument(context.Background(), "missing")
	if data != nil {
		t.Errorf("Expected nil for missing document, got %d bytes", len(data))
	}
}

// ============================================================================
// AddMessageToConversation Tests
// ============================================================================

func TestAddMessageToConversation(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/documents/7/conversation" {
			t.Errorf("Expected path /api/documents/7/conversation, got %s", r.URL.Path)
		}
		if r.Method != "POST" {
			t.Errorf("Expected POST, got %s", r.Method)
		}

		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("Failed to decode request: %v", err)
		}
		if body["messageType"] != "HUMAN" {
			t.Errorf("Expected messageType HUMAN, got %s", body["messageType"])
		}
		if body["content"] != "a question" {
			t.Errorf("Expected content 'a question', got %s", body["content"])
		}

		w.WriteHeader(http.StatusOK)
	}

	server, client := setupDocumentClient(t, handler)
	defer server.Close()

	if !client.AddMessageToConversation(context.Background(), "7", "HUMAN", "a question") {
		t.Error("Expected append to succeed")
	}
}

func TestAddMessageToConversationFailureSwallowed(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}

	server, client := setupDocumentClient(t, handler)
	defer server.Close()

	if client.AddMessageToConversation(context.Background(), "7", "AI", "answer") {
		t.Error("Expected append to report failure")
	}
}

package models

// ChatRequest represents the incoming chat request from the frontend
type ChatRequest struct {
	Message    string `json:"message"`               // The current user question
	DocumentID string `json:"document_id,omitempty"` // Optional document to chat about
}

// ChatResponse represents the response sent back to the frontend
type ChatResponse struct {
	Response   string    `json:"response"`           // The assistant's answer
	Document   *Document `json:"document,omitempty"` // Updated document including the new conversation turns
	Sources    []string  `json:"sources"`            // Names of the documents the answer drew from
	ChunkCount int       `json:"chunk_count"`        // Number of chunks used as context
}

// SummaryRequest represents a request to summarize a document
type SummaryRequest struct {
	DocumentID string `json:"document_id"`
}

// SummaryResponse represents a generated document summary
type SummaryResponse struct {
	DocumentID string `json:"document_id"`
	Summary    string `json:"summary"`
}

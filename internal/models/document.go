package models

// ConversationMessage is one turn of a document's conversation history.
// MessageType is either "HUMAN" or "AI".
type ConversationMessage struct {
	MessageIndex int    `json:"messageIndex"`
	MessageType  string `json:"messageType"`
	Content      string `json:"content"`
	CreatedAt    string `json:"createdAt,omitempty"`
}

// Document mirrors the document store's metadata payload. Timestamps stay
// strings because the store emits local datetimes without a zone offset.
type Document struct {
	ID               int64                 `json:"id"`
	Name             string                `json:"name"`
	OriginalFilename string                `json:"originalFilename"`
	ContentType      string                `json:"contentType"`
	FileSize         int64                 `json:"fileSize"`
	Description      string                `json:"description,omitempty"`
	OrganizationID   string                `json:"organizationId,omitempty"`
	CreatedAt        string                `json:"createdAt"`
	UpdatedAt        string                `json:"updatedAt,omitempty"`
	ChunkCount       int                   `json:"chunkCount"`
	Conversation     []ConversationMessage `json:"conversation,omitempty"`
}

// DocumentChunk is one retrieved piece of document text plus the metadata
// needed to attribute it in responses
type DocumentChunk struct {
	Text             string `json:"text"`
	DocumentID       int64  `json:"document_id"`
	DocumentName     string `json:"document_name"`
	OriginalFilename string `json:"original_filename"`
	ChunkIndex       int    `json:"chunk_index"`
}

// ValidationError reports a request field that failed validation
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

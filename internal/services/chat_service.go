package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"study-assistant/internal/metrics"
	"study-assistant/internal/models"
)

const (
	// DefaultMaxChunks bounds how many similar chunks one question retrieves
	DefaultMaxChunks = 5

	// maxHistoryMessages bounds how much conversation history enters the
	// prompt, keeping it inside the model's token budget
	maxHistoryMessages = 10

	chatTemperature = 0.1

	// NoInformationMessage is returned without calling the gateway when
	// neither chunks nor history are available
	NoInformationMessage = "I couldn't find any relevant information in the uploaded documents to answer your question. Please make sure your question is related to the content of the documents."

	chatErrorMessage = "I apologize, but I encountered an error while processing your question. Please try again."

	noDocumentContext = "No relevant document content found for this specific question."
	noHistoryContext  = "No previous conversation."

	chatSystemPrompt = "You are a helpful AI assistant that answers questions based on provided document content and conversation history. Use both sources to provide accurate answers. Never make up information not found in the sources."
)

// ragPromptTemplate constrains the model to answer only from the supplied
// context and history, stating explicitly when information is absent.
const ragPromptTemplate = `You are a helpful AI assistant that answers questions based on the provided document content and conversation history.

IMPORTANT INSTRUCTIONS:
1. Use information from both the provided documents and conversation history to answer questions
2. If the question cannot be answered from either the documents or conversation history, clearly state that you don't have that information
3. Do not make up or infer information not explicitly stated in the documents or conversation
4. Be concise and accurate
5. Use the conversation history to understand context
6. If no document content is available but conversation history exists, answer based on the conversation history

DOCUMENT CONTENT:
%s

CONVERSATION HISTORY:
%s

CURRENT QUESTION: %s

ANSWER:`

// ChatService answers questions over document content with
// retrieval-augmented generation
type ChatService struct {
	documentClient DocumentClientInterface
	genaiClient    GenaiClientInterface
	collector      metrics.Collector
	modelName      string
	logger         *log.Logger
}

// NewChatService creates a new chat service
func NewChatService(
	documentClient DocumentClientInterface,
	genaiClient GenaiClientInterface,
	collector metrics.Collector,
	modelName string,
	logger *log.Logger,
) *ChatService {
	if modelName == "" {
		modelName = DefaultGeminiModel
	}
	return &ChatService{
		documentClient: documentClient,
		genaiClient:    genaiClient,
		collector:      collector,
		modelName:      modelName,
		logger:         logger,
	}
}

// Chat handles one chat request end to end: retrieve chunks and history,
// generate the answer, and record the new turns on the document.
func (s *ChatService) Chat(ctx context.Context, request *models.ChatRequest) (*models.ChatResponse, error) {
	if request.Message == "" {
		return nil, &models.ValidationError{Field: "message", Message: "message is required"}
	}

	var history []models.ConversationMessage
	if request.DocumentID != "" {
		if document := s.documentClient.GetDocumentByID(ctx, request.DocumentID); document != nil {
			history = document.Conversation
		}
	}

	chunks := s.documentClient.SearchSimilarChunks(ctx, request.Message, DefaultMaxChunks)

	answer := s.GenerateRAGResponse(ctx, request.Message, chunks, history)

	response := &models.ChatResponse{
		Response:   answer,
		Sources:    chunkSources(chunks),
		ChunkCount: len(chunks),
	}

	// Record the exchange on the document and return the updated
	// conversation. Append failures are logged inside the client and do not
	// affect the answer.
	if request.DocumentID != "" {
		s.documentClient.AddMessageToConversation(ctx, request.DocumentID, "HUMAN", request.Message)
		s.documentClient.AddMessageToConversation(ctx, request.DocumentID, "AI", answer)
		response.Document = s.documentClient.GetDocumentByID(ctx, request.DocumentID)
	}

	return response, nil
}

// GenerateRAGResponse builds the RAG prompt from chunks and history and asks
// the gateway for an answer. When neither chunks nor history exist the
// gateway is not called at all.
func (s *ChatService) GenerateRAGResponse(
	ctx context.Context,
	query string,
	chunks []models.DocumentChunk,
	history []models.ConversationMessage,
) string {
	if len(chunks) == 0 && len(history) == 0 {
		s.collector.RecordRequest(s.modelName, "no_content")
		return NoInformationMessage
	}

	prompt := fmt.Sprintf(ragPromptTemplate,
		buildDocumentContext(chunks),
		buildConversationContext(history),
		query,
	)

	content, err := s.genaiClient.GenerateContent(ctx, &GenerateRequest{
		Messages:     []string{prompt},
		SystemPrompt: chatSystemPrompt,
		Temperature:  chatTemperature,
	})
	if err != nil {
		s.collector.RecordRequest(s.modelName, "failed")
		s.logger.Printf("Error generating AI response: %v", err)
		return chatErrorMessage
	}

	text, err := content.FirstText()
	if err != nil {
		s.collector.RecordRequest(s.modelName, "failed")
		s.logger.Printf("Error extracting AI response text: %v", err)
		return chatErrorMessage
	}

	s.collector.RecordRequest(s.modelName, "success")
	s.logger.Printf("AI request completed - Model: %s, Chunks: %d, History messages: %d",
		s.modelName, len(chunks), len(history))

	return text
}

// buildDocumentContext concatenates chunk texts in retrieval order, each
// terminated by a blank line
func buildDocumentContext(chunks []models.DocumentChunk) string {
	if len(chunks) == 0 {
		return noDocumentContext
	}

	var context strings.Builder
	for _, chunk := range chunks {
		context.WriteString(chunk.Text)
		context.WriteString("\n\n")
	}
	return context.String()
}

// buildConversationContext renders the most recent history turns, keeping
// their relative order
func buildConversationContext(history []models.ConversationMessage) string {
	if len(history) == 0 {
		return noHistoryContext
	}

	recent := history
	if len(recent) > maxHistoryMessages {
		recent = recent[len(recent)-maxHistoryMessages:]
	}

	var context strings.Builder
	for _, message := range recent {
		role := "Assistant"
		if message.MessageType == "HUMAN" {
			role = "Human"
		}
		context.WriteString(role)
		context.WriteString(": ")
		context.WriteString(message.Content)
		context.WriteString("\n")
	}
	return context.String()
}

// chunkSources lists the distinct document names behind the retrieved chunks
func chunkSources(chunks []models.DocumentChunk) []string {
	sources := make([]string, 0, len(chunks))
	seen := make(map[string]bool)
	for _, chunk := range chunks {
		if !seen[chunk.DocumentName] {
			seen[chunk.DocumentName] = true
			sources = append(sources, chunk.DocumentName)
		}
	}
	return sources
}

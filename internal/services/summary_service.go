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
	// NoSummaryContentMessage is returned when a document has no chunks to summarize
	NoSummaryContentMessage = "No content available to summarize for this document."

	summaryTemperature = 0.1

	// maxSummaryContentLength caps how much document text enters the prompt
	maxSummaryContentLength = 10000

	truncationMarker = "...\n\n[Content truncated due to length]"
)

const summaryPromptTemplate = `You are an expert document summarizer. Your task is to create a comprehensive, well-structured summary of the provided document content.

INSTRUCTIONS:
1. Create a concise but comprehensive summary that captures the main themes, key points, and important details
2. Use markdown formatting to structure your summary with clear sections, headings, and bullet points
3. Structure your response with the following format:
   - Start with a brief overview paragraph
   - Use ## headings for main sections
   - Use bullet points for key information within sections
   - Use **bold** for important terms or concepts
   - Use *italics* for emphasis where appropriate
4. Focus on the most important information and insights
5. Be objective and factual, avoiding personal opinions
6. Aim for a summary that is about 10-20%% of the original length but captures all essential information

DOCUMENT CONTENT:
%s

SUMMARY:`

// SummaryService generates whole-document summaries from stored chunks
type SummaryService struct {
	documentClient DocumentClientInterface
	genaiClient    GenaiClientInterface
	collector      metrics.Collector
	modelName      string
	logger         *log.Logger
}

// NewSummaryService creates a new summary service
func NewSummaryService(
	documentClient DocumentClientInterface,
	genaiClient GenaiClientInterface,
	collector metrics.Collector,
	modelName string,
	logger *log.Logger,
) *SummaryService {
	if modelName == "" {
		modelName = DefaultGeminiModel
	}
	return &SummaryService{
		documentClient: documentClient,
		genaiClient:    genaiClient,
		collector:      collector,
		modelName:      modelName,
		logger:         logger,
	}
}

// Summarize fetches every chunk of the document and generates a summary.
// A document without chunks yields the canned no-content message rather
// than a gateway call.
func (s *SummaryService) Summarize(ctx context.Context, documentID string) (*models.SummaryResponse, error) {
	if documentID == "" {
		return nil, &models.ValidationError{Field: "document_id", Message: "document ID is required"}
	}

	s.logger.Printf("Processing summary request for document: %s", documentID)

	chunks := s.documentClient.GetAllChunks(ctx, documentID)
	if len(chunks) == 0 {
		s.collector.RecordRequest(s.modelName, "no_chunks")
		return &models.SummaryResponse{
			DocumentID: documentID,
			Summary:    NoSummaryContentMessage,
		}, nil
	}

	documentName := "Document " + documentID
	summary := s.generateDocumentSummary(ctx, documentName, chunks)

	s.logger.Printf("Generated summary for document %s using %d chunks", documentID, len(chunks))

	return &models.SummaryResponse{
		DocumentID: documentID,
		Summary:    summary,
	}, nil
}

// generateDocumentSummary combines the chunk texts and asks the gateway for
// a markdown summary. Generation failure degrades to an apology message.
func (s *SummaryService) generateDocumentSummary(ctx context.Context, documentName string, chunks []models.DocumentChunk) string {
	var combined strings.Builder
	for _, chunk := range chunks {
		combined.WriteString(chunk.Text)
		combined.WriteString("\n\n")
	}

	content := combined.String()
	if len(content) > maxSummaryContentLength {
		content = content[:maxSummaryContentLength] + truncationMarker
	}

	systemPrompt := fmt.Sprintf("You are an expert document summarizer. Create a comprehensive summary of the document '%s'.", documentName)

	response, err := s.genaiClient.GenerateContent(ctx, &GenerateRequest{
		Messages:     []string{fmt.Sprintf(summaryPromptTemplate, content)},
		SystemPrompt: systemPrompt,
		Temperature:  summaryTemperature,
	})
	if err != nil {
		s.collector.RecordRequest(s.modelName, "failed")
		s.logger.Printf("Error generating AI summary for document %s: %v", documentName, err)
		return fmt.Sprintf("I apologize, but I encountered an error while generating the summary for '%s'. Please try again.", documentName)
	}

	text, err := response.FirstText()
	if err != nil {
		s.collector.RecordRequest(s.modelName, "failed")
		s.logger.Printf("Error extracting summary text for document %s: %v", documentName, err)
		return fmt.Sprintf("I apologize, but I encountered an error while generating the summary for '%s'. Please try again.", documentName)
	}

	s.collector.RecordRequest(s.modelName, "success")
	s.logger.Printf("AI summary request completed - Model: %s, Document: %s, Chunks: %d",
		s.modelName, documentName, len(chunks))

	return text
}

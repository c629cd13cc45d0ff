package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"study-assistant/internal/models"
)

const (
	GeminiBaseURL       = "https://generativelanguage.googleapis.com"
	DefaultGeminiModel  = "gemini-2.5-flash-lite-preview-06-17"
	DefaultSystemPrompt = "You are a helpful AI assistant."

	// Large documents can take a while to generate against
	geminiTimeout = 5 * time.Minute
)

// geminiInlineData is the provider's camelCase rendering of inline binary data
type geminiInlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

// geminiPart is one part of a content block on the provider wire
type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inlineData,omitempty"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	Temperature        float64                `json:"temperature"`
	ResponseMimeType   string                 `json:"responseMimeType,omitempty"`
	ResponseJSONSchema map[string]interface{} `json:"responseJsonSchema,omitempty"`
}

// geminiRequest represents the request format of the Gemini generateContent API
type geminiRequest struct {
	Contents          []geminiContent        `json:"contents"`
	SystemInstruction *geminiContent         `json:"systemInstruction,omitempty"`
	GenerationConfig  geminiGenerationConfig `json:"generationConfig"`
}

// geminiResponse represents the response from the Gemini generateContent API
type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// GeminiService wraps the Google Gemini REST API behind the uniform
// generate-content contract
type GeminiService struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
	logger     *log.Logger
}

// NewGeminiService creates a gateway service. An empty apiKey puts the
// service into degraded mode: health checks report it and every generation
// call fails with a configuration error.
func NewGeminiService(apiKey, model string, logger *log.Logger) *GeminiService {
	if model == "" {
		model = DefaultGeminiModel
	}
	return &GeminiService{
		baseURL: GeminiBaseURL,
		apiKey:  apiKey,
		model:   model,
		httpClient: &http.Client{
			Timeout: geminiTimeout,
		},
		logger: logger,
	}
}

// Ready reports whether the gateway has the configuration it needs
func (s *GeminiService) Ready() bool {
	return s.apiKey != ""
}

// GenerateContent forwards a generation request to Gemini and returns the
// first candidate's content. Transport failures and empty candidate lists
// are distinct hard failures; neither can be treated as "no content".
func (s *GeminiService) GenerateContent(ctx context.Context, request *models.GenerateContentRequest) (*models.Content, error) {
	if s.apiKey == "" {
		return nil, &models.ConfigurationError{Missing: "GEMINI_API_KEY"}
	}

	model := request.Model
	if model == "" {
		model = s.model
	}

	systemPrompt := request.SystemPrompt
	if systemPrompt == "" {
		systemPrompt = DefaultSystemPrompt
	}

	config := geminiGenerationConfig{Temperature: request.Temperature}
	if request.ResponseSchema != nil {
		config.ResponseMimeType = "application/json"
		config.ResponseJSONSchema = request.ResponseSchema
	}

	wireRequest := geminiRequest{
		Contents: toGeminiContents(request.Contents),
		SystemInstruction: &geminiContent{
			Parts: []geminiPart{{Text: systemPrompt}},
		},
		GenerationConfig: config,
	}

	jsonBody, err := json.Marshal(wireRequest)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", s.baseURL, model)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, &models.UpstreamError{Service: "Gemini API", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		s.logger.Printf("Gemini API returned status %d: %s", resp.StatusCode, string(body))
		return nil, &models.UpstreamError{Service: "Gemini API", Status: resp.StatusCode}
	}

	var wireResponse geminiResponse
	if err := json.Unmarshal(body, &wireResponse); err != nil {
		return nil, &models.MalformedOutputError{Reason: "unparsable Gemini response", Err: err}
	}

	if len(wireResponse.Candidates) == 0 {
		s.logger.Printf("Empty candidate list from Gemini API")
		return nil, &models.MalformedOutputError{Reason: "Gemini returned zero candidates"}
	}

	content := fromGeminiContent(wireResponse.Candidates[0].Content)
	return &content, nil
}

func toGeminiContents(contents []models.Content) []geminiContent {
	wire := make([]geminiContent, 0, len(contents))
	for _, content := range contents {
		parts := make([]geminiPart, 0, len(content.Parts))
		for _, part := range content.Parts {
			wirePart := geminiPart{Text: part.Text}
			if part.InlineData != nil {
				wirePart.InlineData = &geminiInlineData{
					MimeType: part.InlineData.MimeType,
					Data:     part.InlineData.Data,
				}
			}
			parts = append(parts, wirePart)
		}
		wire = append(wire, geminiContent{Parts: parts})
	}
	return wire
}

func fromGeminiContent(content geminiContent) models.Content {
	parts := make([]models.Part, 0, len(content.Parts))
	for _, part := range content.Parts {
		modelPart := models.Part{Text: part.Text}
		if part.InlineData != nil {
			modelPart.InlineData = &models.InlineData{
				MimeType: part.InlineData.MimeType,
				Data:     part.InlineData.Data,
			}
		}
		parts = append(parts, modelPart)
	}
	return models.Content{Parts: parts}
}

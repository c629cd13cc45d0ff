package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"study-assistant/internal/models"
)

// GenaiClientInterface defines the contract for calling the generation gateway
type GenaiClientInterface interface {
	GenerateContent(ctx context.Context, req *GenerateRequest) (*models.Content, error)
}

// GenerateRequest describes one generation call from a service's point of
// view: optional document files, text messages, and generation settings
type GenerateRequest struct {
	Files          [][]byte
	FileMimeType   string
	Messages       []string
	SystemPrompt   string
	Temperature    float64
	ResponseSchema map[string]interface{}
}

// GenaiClient calls the genai gateway over its HTTP contract
type GenaiClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewGenaiClient creates a genai gateway client. The timeout mirrors the
// gateway's own generation budget for large documents.
func NewGenaiClient(baseURL string) *GenaiClient {
	return &GenaiClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 5 * time.Minute,
		},
	}
}

// GenerateContent issues a single generate-content call and returns the
// generated content block. Every failure is a hard error here; degrading to
// a canned message is the caller's decision.
func (c *GenaiClient) GenerateContent(ctx context.Context, req *GenerateRequest) (*models.Content, error) {
	parts := make([]models.Part, 0, len(req.Files)+len(req.Messages))

	mimeType := req.FileMimeType
	if mimeType == "" {
		mimeType = "application/pdf"
	}
	for _, file := range req.Files {
		parts = append(parts, models.Part{
			InlineData: &models.InlineData{
				MimeType: mimeType,
				Data:     base64.StdEncoding.EncodeToString(file),
			},
		})
	}
	for _, message := range req.Messages {
		parts = append(parts, models.Part{Text: message})
	}

	gatewayRequest := models.GenerateContentRequest{
		Contents:       []models.Content{{Parts: parts}},
		SystemPrompt:   req.SystemPrompt,
		Temperature:    req.Temperature,
		ResponseSchema: req.ResponseSchema,
	}

	jsonBody, err := json.Marshal(gatewayRequest)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/api/genai/generate-content", bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &models.UpstreamError{Service: "genai gateway", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &models.UpstreamError{Service: "genai gateway", Status: resp.StatusCode}
	}

	var gatewayResponse models.GenerateContentResponse
	if err := json.Unmarshal(body, &gatewayResponse); err != nil {
		return nil, &models.MalformedOutputError{Reason: "unparsable gateway response", Err: err}
	}

	return &gatewayResponse.Content, nil
}

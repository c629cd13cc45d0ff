package models

// InlineData carries base64-encoded binary content with its mime type
type InlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

// Part is one piece of a generation content block: either text or inline binary data
type Part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *InlineData `json:"inline_data,omitempty"`
}

// Content is one logical message sent to or returned from the model
type Content struct {
	Parts []Part `json:"parts"`
}

// FirstText extracts the text of the first part of the content.
// A content with no text part means the model produced something the
// caller cannot use, so this is surfaced as a malformed-output error.
func (c *Content) FirstText() (string, error) {
	if len(c.Parts) == 0 {
		return "", &MalformedOutputError{Reason: "content has no parts"}
	}
	if c.Parts[0].Text == "" {
		return "", &MalformedOutputError{Reason: "first content part has no text"}
	}
	return c.Parts[0].Text, nil
}

// GenerateContentRequest is the uniform request shape of the generation gateway
type GenerateContentRequest struct {
	Contents       []Content              `json:"contents"`
	SystemPrompt   string                 `json:"system_prompt,omitempty"`
	Model          string                 `json:"model,omitempty"`
	Temperature    float64                `json:"temperature"`
	ResponseSchema map[string]interface{} `json:"response_schema,omitempty"`
}

// Validate checks if the generation request is well formed
func (r *GenerateContentRequest) Validate() error {
	if len(r.Contents) == 0 {
		return &ValidationError{Field: "contents", Message: "at least one content block is required"}
	}
	for _, content := range r.Contents {
		if len(content.Parts) == 0 {
			return &ValidationError{Field: "contents", Message: "every content block needs at least one part"}
		}
	}
	if r.Temperature < 0 || r.Temperature > 2 {
		return &ValidationError{Field: "temperature", Message: "temperature must be between 0 and 2"}
	}
	return nil
}

// GenerateContentResponse is the uniform response shape of the generation gateway
type GenerateContentResponse struct {
	Content Content `json:"content"`
}

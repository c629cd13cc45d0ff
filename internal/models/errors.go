package models

import "fmt"

// UpstreamError indicates that a downstream service (document store, genai
// gateway, model provider) was unreachable or answered with a non-2xx status
type UpstreamError struct {
	Service string
	Status  int
	Err     error
}

func (e *UpstreamError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s returned status %d", e.Service, e.Status)
	}
	return fmt.Sprintf("%s unreachable: %v", e.Service, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// NotFoundError indicates that the document store has no document with the given id
type NotFoundError struct {
	DocumentID string
}

func (e *NotFoundError) Error() string {
	return "document not found: " + e.DocumentID
}

// MalformedOutputError indicates the model produced output the caller cannot
// use: zero candidates, missing text parts, or unparsable structured JSON.
// There is no safe default for these, so they always surface to the caller.
type MalformedOutputError struct {
	Reason string
	Err    error
}

func (e *MalformedOutputError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed model output: %s: %v", e.Reason, e.Err)
	}
	return "malformed model output: " + e.Reason
}

func (e *MalformedOutputError) Unwrap() error {
	return e.Err
}

// ConfigurationError indicates the service is missing required configuration,
// such as the model provider API key
type ConfigurationError struct {
	Missing string
}

func (e *ConfigurationError) Error() string {
	return "missing configuration: " + e.Missing
}

// Package models defines the provider-neutral request, response and error types used by
// the chat console.
package models

import "context"

// GenerateRequest encapsulates all parameters for a generation request.
type GenerateRequest struct {
	// Prompt is the user's input for this turn
	Prompt string

	// SystemInstruction sets the assistant persona
	SystemInstruction string

	// Temperature is optional; nil uses the model default
	Temperature *float32
}

// GenerateResponse contains the model's response and metadata.
type GenerateResponse struct {
	Text     string
	Metadata ResponseMetadata
}

// ResponseMetadata contains information about the generation.
type ResponseMetadata struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
	ModelUsed        string
}

// Provider defines the interface for LLM backends.
type Provider interface {
	// Generate sends a request to the model and returns the response.
	Generate(ctx context.Context, req *GenerateRequest) (*GenerateResponse, error)

	// GetModel returns the currently active model name.
	GetModel() string
}

// Package gemini implements the chat provider on top of the Google Gemini API.
package gemini

import (
	"context"

	provider "github.com/Cyclone1070/cassette/internal/provider/models"
)

// GeminiProvider implements the Provider interface for Google Gemini.
type GeminiProvider struct {
	client    GeminiClient
	modelName string
}

// New creates a new GeminiProvider with the specified client and model.
func New(client GeminiClient, modelName string) *GeminiProvider {
	return &GeminiProvider{
		client:    client,
		modelName: modelName,
	}
}

// Generate sends a request to the Gemini API and returns the response.
func (p *GeminiProvider) Generate(ctx context.Context, req *provider.GenerateRequest) (*provider.GenerateResponse, error) {
	model := p.modelName

	contents := toGeminiContents(req.Prompt)
	config := toGeminiConfig(req)

	resp, err := p.client.GenerateContent(ctx, model, contents, config)
	if err != nil {
		return nil, mapGeminiError(ctx, err)
	}

	return fromGeminiResponse(resp, model)
}

// GetModel returns the model name requests are sent to.
func (p *GeminiProvider) GetModel() string {
	return p.modelName
}

package ai

import (
	"context"
	"errors"

	"github.com/expki/go-constructsim/ai/aicomms"
	_ "github.com/expki/go-constructsim/env"
)

// Embed generates vector embeddings from the input text provided in the request.
func (ai *ai) Embed(ctx context.Context, request aicomms.EmbedRequest) (response aicomms.EmbedResponse, err error) {
	if ai.ollama.CanEmbed() {
		return ai.ollama.Embed(ctx, request)
	}
	if ai.openai.CanEmbed() {
		return ai.openai.Embed(ctx, request)
	}
	return response, errors.New("no embed provider configured")
}

// Generate creates new content based on the prompt in a single response.
func (ai *ai) Generate(ctx context.Context, request aicomms.GenerateRequest) (response aicomms.GenerateResponse, err error) {
	if ai.ollama.CanGenerate() {
		return ai.ollama.Generate(ctx, request)
	}
	if ai.openai.CanGenerate() {
		return ai.openai.Generate(ctx, request)
	}
	return response, errors.New("no generate provider configured")
}

// EmbedModel returns the target model.
func (ai *ai) EmbedModel() (model string) {
	if ai.ollama.CanEmbed() {
		return ai.ollama.EmbedModel()
	}
	if ai.openai.CanEmbed() {
		return ai.openai.EmbedModel()
	}
	return
}

// GenerateModel returns the target model.
func (ai *ai) GenerateModel() (model string) {
	if ai.ollama.CanGenerate() {
		return ai.ollama.GenerateModel()
	}
	if ai.openai.CanGenerate() {
		return ai.openai.GenerateModel()
	}
	return
}

package ai

import (
	"context"

	"github.com/expki/go-constructsim/ai/aicomms"
	_ "github.com/expki/go-constructsim/env"
)

// AI represents an interface for interacting with various AI services.
type AI interface {
	// Embed generates one fixed-length vector per input text, order-preserving:
	// response embedding k corresponds to request input k.
	Embed(ctx context.Context, request aicomms.EmbedRequest) (response aicomms.EmbedResponse, err error)

	// Generate creates new content based on the prompt in a single response.
	Generate(ctx context.Context, request aicomms.GenerateRequest) (response aicomms.GenerateResponse, err error)

	// EmbedModel returns the configured embedding model name.
	EmbedModel() (model string)

	// GenerateModel returns the configured generation model name.
	GenerateModel() (model string)
}

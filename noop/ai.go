// Package noop provides a stand-in model provider for runs without a
// model server.
package noop

import (
	"context"
	"encoding/hex"
	"errors"
	"math/rand/v2"

	"github.com/expki/go-constructsim/ai"
	"github.com/expki/go-constructsim/ai/aicomms"
	_ "github.com/expki/go-constructsim/env"
)

const (
	embeddingVectorSize = 512
	generateMaxLength   = 512
)

type noai struct{}

// NoAI returns a stub provider producing random embeddings and hex
// generations. It lets a run be wired end to end without a model server.
// Safe for concurrent use, the shared rand source is already synchronized.
func NoAI() ai.AI {
	return noai{}
}

func (noai) Embed(_ context.Context, request aicomms.EmbedRequest) (response aicomms.EmbedResponse, err error) {
	if len(request.Input) == 0 {
		return response, errors.New("input is empty")
	}
	response.Model = "noop"
	response.Done = true
	response.Embeddings = make(aicomms.Embeddings, len(request.Input))
	for idx := range len(request.Input) {
		row := make(aicomms.Embedding, embeddingVectorSize)
		for i := range row {
			row[i] = rand.Float64()*2 - 1
		}
		response.Embeddings[idx] = row
	}
	return response, nil
}

func (noai) Generate(_ context.Context, _ aicomms.GenerateRequest) (response aicomms.GenerateResponse, err error) {
	raw := make([]byte, rand.IntN(generateMaxLength))
	for i := range raw {
		raw[i] = byte(rand.UintN(256))
	}
	response.Model = "noop"
	response.Response = hex.EncodeToString(raw)
	response.Done = true
	return response, nil
}

func (noai) EmbedModel() (model string) {
	return "noop"
}

func (noai) GenerateModel() (model string) {
	return "noop"
}

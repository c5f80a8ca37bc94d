package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/expki/go-constructsim/ai/aicomms"
	"github.com/expki/go-constructsim/ai/httpclient"
	_ "github.com/expki/go-constructsim/env"
)

// embeddingsRequest is the /v1/embeddings wire format.
type embeddingsRequest struct {
	Model string   `json:"model"`
	Input []string `json:"input"`
}

// embeddingsResponse is the /v1/embeddings wire format. Vectors arrive with
// an explicit index rather than in guaranteed order.
type embeddingsResponse struct {
	Model string `json:"model"`
	Data  []struct {
		Index     int       `json:"index"`
		Embedding []float64 `json:"embedding"`
	} `json:"data"`
	Usage struct {
		PromptTokens int `json:"prompt_tokens"`
		TotalTokens  int `json:"total_tokens"`
	} `json:"usage"`
}

func (ai *OpenAI) Embed(ctx context.Context, request aicomms.EmbedRequest) (response aicomms.EmbedResponse, err error) {
	// Create request body
	body, err := json.Marshal(embeddingsRequest{
		Model: request.Model,
		Input: request.Input,
	})
	if err != nil {
		return response, errors.Join(errors.New("failed to marshal request body"), err)
	}
	// Create request
	req, done, err := ai.embed.NewRequest(ctx, "/v1/embeddings", body)
	if err != nil {
		return response, err
	}
	defer done()
	// Send request
	client, clientDone := ai.clientManager.GetHttpClient(req.URL.Host)
	defer clientDone()
	resp, err := client.Do(req)
	if err == nil {
	} else if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) || errors.Is(err, os.ErrDeadlineExceeded) {
		return response, err
	} else {
		return response, errors.Join(errors.New("failed to send request"), err)
	}
	// Read response
	body, err = httpclient.ReadResponse(resp)
	if err != nil {
		return response, err
	}
	if resp.StatusCode != http.StatusOK {
		return response, fmt.Errorf("%s (%d): %s", req.URL.String(), resp.StatusCode, string(body))
	}
	// Decode response
	var wire embeddingsResponse
	err = json.Unmarshal(body, &wire)
	if err != nil {
		return response, errors.Join(errors.New("failed to unmarshal response"), err)
	}
	if len(wire.Data) != len(request.Input) {
		return response, fmt.Errorf("openai returned %d embeddings for %d inputs", len(wire.Data), len(request.Input))
	}
	// Restore input order from the wire index
	response.Model = wire.Model
	response.Done = true
	response.PromptEvalCount = wire.Usage.PromptTokens
	response.Embeddings = make(aicomms.Embeddings, len(wire.Data))
	for _, data := range wire.Data {
		if data.Index < 0 || data.Index >= len(wire.Data) {
			return response, fmt.Errorf("embedding index %d out of range", data.Index)
		}
		response.Embeddings[data.Index] = data.Embedding
	}
	return response, nil
}

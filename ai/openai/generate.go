package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/expki/go-constructsim/ai/aicomms"
	"github.com/expki/go-constructsim/ai/httpclient"
	_ "github.com/expki/go-constructsim/env"
)

// completionsRequest is the /v1/completions wire format.
type completionsRequest struct {
	Model     string  `json:"model"`
	Prompt    string  `json:"prompt"`
	Suffix    string  `json:"suffix,omitempty"`
	MaxTokens int     `json:"max_tokens,omitempty"`
	Stream    bool    `json:"stream"`
	N         int     `json:"n,omitempty"`
	Stop      *string `json:"stop,omitempty"`
}

// completionsResponse is the /v1/completions wire format.
type completionsResponse struct {
	Model   string `json:"model"`
	Created int64  `json:"created"`
	Choices []struct {
		Index        int    `json:"index"`
		Text         string `json:"text"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

func (ai *OpenAI) Generate(ctx context.Context, request aicomms.GenerateRequest) (response aicomms.GenerateResponse, err error) {
	// Create request body
	body, err := json.Marshal(completionsRequest{
		Model:  request.Model,
		Prompt: request.Prompt,
		Suffix: request.Suffix,
		Stream: false,
	})
	if err != nil {
		return response, errors.Join(errors.New("failed to marshal request body"), err)
	}
	// Create request
	req, done, err := ai.generate.NewRequest(ctx, "/v1/completions", body)
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
	var wire completionsResponse
	err = json.Unmarshal(body, &wire)
	if err != nil {
		return response, errors.Join(errors.New("failed to unmarshal response"), err)
	}
	if len(wire.Choices) == 0 {
		return response, errors.New("response contained no choices")
	}
	response.Model = wire.Model
	response.CreatedAt = time.Unix(wire.Created, 0)
	response.Response = wire.Choices[0].Text
	response.Done = true
	response.PromptEvalCount = wire.Usage.PromptTokens
	response.EvalCount = wire.Usage.CompletionTokens
	return response, nil
}

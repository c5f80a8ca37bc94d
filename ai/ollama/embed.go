package ollama

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

func (ai *Ollama) Embed(ctx context.Context, request aicomms.EmbedRequest) (response aicomms.EmbedResponse, err error) {
	if ai.embed.Cfg.NumCtx > 0 {
		if request.Options == nil {
			request.Options = map[string]any{
				"num_ctx": ai.embed.Cfg.NumCtx,
			}
		} else if _, ok := request.Options["num_ctx"]; !ok {
			request.Options["num_ctx"] = ai.embed.Cfg.NumCtx
		}
	}
	// Create request body
	body, err := json.Marshal(request)
	if err != nil {
		return response, errors.Join(errors.New("failed to marshal request body"), err)
	}
	// Create request
	req, done, err := ai.embed.NewRequest(ctx, "/api/embed", body)
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
	err = json.Unmarshal(body, &response)
	if err != nil {
		return response, errors.Join(errors.New("failed to unmarshal response"), err)
	}
	if len(response.Embeddings) != len(request.Input) {
		return response, fmt.Errorf("ollama returned %d embeddings for %d inputs", len(response.Embeddings), len(request.Input))
	}
	return response, nil
}

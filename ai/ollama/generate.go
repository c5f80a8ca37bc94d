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

func (ai *Ollama) Generate(ctx context.Context, request aicomms.GenerateRequest) (response aicomms.GenerateResponse, err error) {
	if ai.generate.Cfg.NumCtx > 0 {
		if request.Options == nil {
			request.Options = map[string]any{
				"num_ctx": ai.generate.Cfg.NumCtx,
			}
		} else if _, ok := request.Options["num_ctx"]; !ok {
			request.Options["num_ctx"] = ai.generate.Cfg.NumCtx
		}
	}
	// Create request body
	request.Stream = false
	body, err := json.Marshal(request)
	if err != nil {
		return response, errors.Join(errors.New("failed to marshal request body"), err)
	}
	// Create request
	req, done, err := ai.generate.NewRequest(ctx, "/api/generate", body)
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
	return response, nil
}

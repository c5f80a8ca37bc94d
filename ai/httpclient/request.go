package httpclient

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	_ "github.com/expki/go-constructsim/env"
)

// NewRequest builds a POST request against the least-loaded endpoint with
// compression and auth headers applied. The done function releases the
// endpoint slot and must be called once the response has been handled.
func (p *Provider) NewRequest(ctx context.Context, path string, body []byte) (req *http.Request, done func(), err error) {
	if p.Cfg.RequestCompression {
		body = Compress(body)
	}
	uri, done := p.Url()
	uri.Path = path
	req, err = http.NewRequestWithContext(ctx, http.MethodPost, uri.String(), bytes.NewReader(body))
	if err != nil {
		done()
		return nil, nil, errors.Join(errors.New("failed to create request"), err)
	}
	// Set headers
	req.Header.Set("Content-Type", "application/json")
	if p.Cfg.RequestCompression {
		req.Header.Set("Content-Encoding", "zstd")
	}
	req.Header.Set("Accept-Encoding", "zstd")
	if p.Token != "" {
		req.Header.Set("Authorization", "Bearer "+p.Token)
	}
	return req, done, nil
}

// ReadResponse drains and closes the response body, transparently
// decompressing a zstd encoded payload.
func ReadResponse(resp *http.Response) (body []byte, err error) {
	if resp.Body == nil {
		return nil, nil
	}
	defer resp.Body.Close()
	body, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Join(errors.New("failed to read response body"), err)
	}
	if strings.TrimSpace(strings.ToLower(resp.Header.Get("Content-Encoding"))) == "zstd" {
		body, err = Decompress(body)
		if err != nil {
			return nil, errors.Join(errors.New("failed to decompress response"), err)
		}
	}
	return body, nil
}

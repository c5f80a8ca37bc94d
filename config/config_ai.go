package config

import (
	"os"

	_ "github.com/expki/go-constructsim/env"
)

type AI struct {
	Embed    *Provider `json:"embed"`
	Generate *Provider `json:"generate"`
}

type Provider struct {
	Model              string                `json:"model"`
	ApiBase            SingleOrSlice[string] `json:"api_base"`
	ApiKey             string                `json:"api_key"`
	ApiKeyEnv          string                `json:"api_key_env"`
	NumCtx             int                   `json:"num_ctx"`
	RequestCompression bool                  `json:"request_compression"`
}

// Key resolves the api key, preferring the literal value over the
// environment indirection.
func (c Provider) Key() string {
	if c.ApiKey != "" {
		return c.ApiKey
	}
	if c.ApiKeyEnv != "" {
		return os.Getenv(c.ApiKeyEnv)
	}
	return ""
}

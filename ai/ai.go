package ai

import (
	"errors"

	"github.com/expki/go-constructsim/ai/ollama"
	"github.com/expki/go-constructsim/ai/openai"
	"github.com/expki/go-constructsim/config"
	_ "github.com/expki/go-constructsim/env"
)

type ai struct {
	ollama *ollama.Ollama
	openai *openai.OpenAI
}

// New wires the configured providers behind one AI surface. Requests route
// to whichever provider carries the capability, ollama first.
func New(ollamaCfg, openaiCfg config.AI) (AI, error) {
	ollamaClient, err := ollama.New(ollamaCfg)
	if err != nil {
		return nil, errors.Join(errors.New("ollama client"), err)
	}
	openaiClient, err := openai.New(openaiCfg)
	if err != nil {
		return nil, errors.Join(errors.New("openai client"), err)
	}
	client := &ai{
		ollama: ollamaClient,
		openai: openaiClient,
	}
	if !ollamaClient.CanEmbed() && !openaiClient.CanEmbed() &&
		!ollamaClient.CanGenerate() && !openaiClient.CanGenerate() {
		return nil, errors.New("no embed or generate provider configured")
	}
	return client, nil
}

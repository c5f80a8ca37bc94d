// Package ollama talks to an ollama server over its native REST api.
package ollama

import (
	"crypto/tls"
	"errors"
	"net"
	"time"

	"github.com/expki/go-constructsim/ai/httpclient"
	"github.com/expki/go-constructsim/config"
)

type Ollama struct {
	clientManager *httpclient.ClientManager
	embed         *httpclient.Provider
	generate      *httpclient.Provider
}

func New(cfg config.AI) (ai *Ollama, err error) {
	ai = &Ollama{
		clientManager: httpclient.NewClientManager(
			&tls.Config{
				InsecureSkipVerify: true,
			},
			&net.Dialer{
				Timeout:   5 * time.Second,
				KeepAlive: 30 * time.Second,
			},
		),
	}

	// Embed provider
	if cfg.Embed != nil {
		if ai.embed, err = httpclient.NewProvider(*cfg.Embed); err != nil {
			return ai, errors.Join(errors.New("embed config"), err)
		}
	}

	// Generate provider
	if cfg.Generate != nil {
		if ai.generate, err = httpclient.NewProvider(*cfg.Generate); err != nil {
			return ai, errors.Join(errors.New("generate config"), err)
		}
	}

	return ai, nil
}

func (ai *Ollama) CanEmbed() bool {
	return ai.embed != nil
}

func (ai *Ollama) CanGenerate() bool {
	return ai.generate != nil
}

func (ai *Ollama) EmbedModel() string {
	if ai.embed == nil {
		return ""
	}
	return ai.embed.Cfg.Model
}

func (ai *Ollama) GenerateModel() string {
	if ai.generate == nil {
		return ""
	}
	return ai.generate.Cfg.Model
}

package aicomms

import (
	"time"

	"github.com/expki/go-constructsim/config"
)

type EmbedRequest struct {
	// Standard params
	Model string                       `json:"model"`
	Input config.SingleOrSlice[string] `json:"input"`
	// Advanced params
	Truncate  *bool          `json:"truncate,omitempty"`
	Options   map[string]any `json:"options,omitempty"`
	KeepAlive *time.Duration `json:"keep_alive,omitempty"`
}

type EmbedResponse struct {
	Model           string     `json:"model"`
	Embeddings      Embeddings `json:"embeddings"`
	Done            bool       `json:"done"`
	TotalDuration   int64      `json:"total_duration"`
	LoadDuration    int64      `json:"load_duration"`
	PromptEvalCount int        `json:"prompt_eval_count"`
}

type Embeddings []Embedding

func (e Embeddings) Value() [][]float64 {
	value := make([][]float64, len(e))
	for i, v := range e {
		value[i] = v
	}
	return value
}

type Embedding []float64

func (e Embedding) Dims() int {
	return len(e)
}

func (e Embedding) Value() []float64 {
	return e
}

package config

import (
	_ "github.com/expki/go-constructsim/env"
)

type Pipeline struct {
	BatchSize   int  `json:"batch_size"`
	Concurrency int  `json:"concurrency"`
	EmbedCache  bool `json:"embed_cache"`
}

func (c Pipeline) GetBatchSize() int {
	if c.BatchSize <= 0 {
		return EMBED_BATCH_SIZE
	}
	return c.BatchSize
}

func (c Pipeline) GetConcurrency() int {
	if c.Concurrency <= 0 {
		return EMBED_CONCURRENCY
	}
	return c.Concurrency
}

package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/expki/go-constructsim/ai/aicomms"
	_ "github.com/expki/go-constructsim/env"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"
)

// embedTexts returns one embedding per text, in input order. Texts go out in
// batches over a bounded group; each batch writes into its own slice range so
// ordering never depends on scheduling.
func (p *Pipeline) embedTexts(ctx context.Context, texts []string) (vectors [][]float64, err error) {
	if len(texts) == 0 {
		return nil, errors.New("no texts to embed")
	}
	batchSize := p.cfg.Pipeline.GetBatchSize()
	vectors = make([][]float64, len(texts))
	bar := progressbar.Default(int64(len(texts)), "Embedding items...")
	eg, egctx := errgroup.WithContext(ctx)
	eg.SetLimit(p.cfg.Pipeline.GetConcurrency())
	for start := 0; start < len(texts); start += batchSize {
		end := min(start+batchSize, len(texts))
		eg.Go(func() error {
			batch := texts[start:end]
			embeddings, err := p.fetchBatch(egctx, batch)
			if err != nil {
				return err
			}
			if len(embeddings) != len(batch) {
				return fmt.Errorf("embedding count mismatch: got %d, want %d", len(embeddings), len(batch))
			}
			for idx, embedding := range embeddings {
				vectors[start+idx] = embedding
			}
			bar.Add(len(batch))
			return nil
		})
	}
	err = eg.Wait()
	bar.Finish()
	if err != nil {
		return nil, err
	}
	return vectors, nil
}

// fetchBatch embeds one batch, through the memoization cache when one is
// attached.
func (p *Pipeline) fetchBatch(ctx context.Context, batch []string) (aicomms.Embeddings, error) {
	fetch := func(missing []string) (aicomms.Embeddings, error) {
		response, err := p.ai.Embed(ctx, aicomms.EmbedRequest{
			Model: p.ai.EmbedModel(),
			Input: missing,
		})
		if err != nil {
			return nil, err
		}
		return response.Embeddings, nil
	}
	if p.cache == nil {
		return fetch(batch)
	}
	return p.cache.FetchEmbeddings(p.ai.EmbedModel(), batch, fetch)
}

package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/expki/go-constructsim/ai/aicomms"
	"github.com/expki/go-constructsim/config"
	"golang.org/x/sync/singleflight"
)

var embeddingSingleflight singleflight.Group

// FetchEmbeddings returns one embedding per text, in input order. Texts with
// a live cache entry are served from memory and only the remainder is passed
// to fetch, which must return exactly one embedding per missing text.
// Identical concurrent batches are collapsed into a single fetch.
func (c *Cache) FetchEmbeddings(model string, texts []string, fetch func(missing []string) (aicomms.Embeddings, error)) (values aicomms.Embeddings, err error) {
	if len(texts) == 0 {
		return nil, nil
	}

	// singleflight fetch
	valueAny, err, _ := embeddingSingleflight.Do(batchFingerprint(model, texts), func() (any, error) {
		results := make(aicomms.Embeddings, len(texts))
		var missingIdx []int
		var missingTexts []string

		// retrieve cached items
		now := time.Now()
		c.embeddingLock.RLock()
		for idx, text := range texts {
			key := embeddingKey{Model: model, Text: text}.String()
			cacheValue, ok := c.embedding[key]
			if ok && cacheValue.expiration.After(now) {
				results[idx] = cacheValue.value
				continue
			}
			missingIdx = append(missingIdx, idx)
			missingTexts = append(missingTexts, text)
		}
		c.embeddingLock.RUnlock()

		// return cached values if nothing is missing
		if len(missingTexts) == 0 {
			return results, nil
		}

		// fetch missing results
		fetched, err := fetch(missingTexts)
		if err != nil {
			return results, err
		}
		if len(fetched) != len(missingTexts) {
			return results, fmt.Errorf("embedding count mismatch: got %d, want %d", len(fetched), len(missingTexts))
		}

		// save new results
		expiration := time.Now().Add(config.CACHE_DURATION)
		c.embeddingLock.Lock()
		for n, idx := range missingIdx {
			key := embeddingKey{Model: model, Text: texts[idx]}.String()
			c.embedding[key] = &item[aicomms.Embedding]{
				expiration: expiration,
				value:      fetched[n],
			}
			results[idx] = fetched[n]
		}
		c.embeddingLock.Unlock()

		// return combined results
		return results, nil
	})
	if err != nil {
		return values, err
	}
	values, ok := valueAny.(aicomms.Embeddings)
	if !ok {
		return values, errors.New("failed to cast singleflight response value to type")
	}
	return values, nil
}

// batchFingerprint keys a batch by model and the digest of every text, so
// only byte-identical batches share a flight.
func batchFingerprint(model string, texts []string) string {
	digest := sha256.New()
	digest.Write([]byte(model))
	for _, text := range texts {
		sum := sha256.Sum256([]byte(text))
		digest.Write(sum[:])
	}
	return hex.EncodeToString(digest.Sum(nil))
}

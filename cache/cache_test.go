package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/expki/go-constructsim/ai/aicomms"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubEmbedding(text string) aicomms.Embedding {
	return aicomms.Embedding{float64(len(text)), 1}
}

func stubFetch(calls *int, fetched *[][]string) func(missing []string) (aicomms.Embeddings, error) {
	return func(missing []string) (aicomms.Embeddings, error) {
		*calls++
		*fetched = append(*fetched, missing)
		embeddings := make(aicomms.Embeddings, 0, len(missing))
		for _, text := range missing {
			embeddings = append(embeddings, stubEmbedding(text))
		}
		return embeddings, nil
	}
}

func TestFetchEmbeddings_FetchesOnceThenServesFromCache(t *testing.T) {
	cache := NewCache(context.Background())
	defer cache.Close()

	var calls int
	var fetched [][]string
	fetch := stubFetch(&calls, &fetched)

	texts := []string{"I am the life of the party", "I keep my belongings tidy"}
	first, err := cache.FetchEmbeddings("model-a", texts, fetch)
	require.NoError(t, err)
	require.Len(t, first, 2)
	assert.Equal(t, 1, calls)

	second, err := cache.FetchEmbeddings("model-a", texts, fetch)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, calls, "a fully cached batch must not fetch")
}

func TestFetchEmbeddings_FetchesOnlyMissing(t *testing.T) {
	cache := NewCache(context.Background())
	defer cache.Close()

	var calls int
	var fetched [][]string
	fetch := stubFetch(&calls, &fetched)

	_, err := cache.FetchEmbeddings("model-a", []string{"alpha", "beta"}, fetch)
	require.NoError(t, err)

	values, err := cache.FetchEmbeddings("model-a", []string{"alpha", "gamma", "beta"}, fetch)
	require.NoError(t, err)
	require.Equal(t, 2, calls)
	assert.Equal(t, []string{"gamma"}, fetched[1])

	// Results stay in input order regardless of which entries were cached.
	assert.Equal(t, stubEmbedding("alpha"), values[0])
	assert.Equal(t, stubEmbedding("gamma"), values[1])
	assert.Equal(t, stubEmbedding("beta"), values[2])
}

func TestFetchEmbeddings_ModelsDoNotShareEntries(t *testing.T) {
	cache := NewCache(context.Background())
	defer cache.Close()

	var calls int
	var fetched [][]string
	fetch := stubFetch(&calls, &fetched)

	_, err := cache.FetchEmbeddings("model-a", []string{"alpha"}, fetch)
	require.NoError(t, err)
	_, err = cache.FetchEmbeddings("model-b", []string{"alpha"}, fetch)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestFetchEmbeddings_FetchErrorIsNotCached(t *testing.T) {
	cache := NewCache(context.Background())
	defer cache.Close()

	var calls int
	fetch := func(missing []string) (aicomms.Embeddings, error) {
		calls++
		return nil, assert.AnError
	}

	_, err := cache.FetchEmbeddings("model-a", []string{"alpha"}, fetch)
	require.ErrorIs(t, err, assert.AnError)

	_, err = cache.FetchEmbeddings("model-a", []string{"alpha"}, fetch)
	require.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, 2, calls, "a failed fetch must not leave a cache entry behind")
}

func TestFetchEmbeddings_CountMismatch(t *testing.T) {
	cache := NewCache(context.Background())
	defer cache.Close()

	fetch := func(missing []string) (aicomms.Embeddings, error) {
		return aicomms.Embeddings{stubEmbedding("only one")}, nil
	}

	_, err := cache.FetchEmbeddings("model-a", []string{"alpha", "beta"}, fetch)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "count mismatch")
}

func TestFetchEmbeddings_EmptyInput(t *testing.T) {
	cache := NewCache(context.Background())
	defer cache.Close()

	values, err := cache.FetchEmbeddings("model-a", nil, func(missing []string) (aicomms.Embeddings, error) {
		t.Fatal("fetch must not be called for an empty batch")
		return nil, nil
	})
	require.NoError(t, err)
	assert.Empty(t, values)
}

func TestFetchEmbeddings_ConcurrentIdenticalBatchesCollapse(t *testing.T) {
	cache := NewCache(context.Background())
	defer cache.Close()

	var calls atomic.Int64
	fetch := func(missing []string) (aicomms.Embeddings, error) {
		calls.Add(1)
		time.Sleep(10 * time.Millisecond)
		embeddings := make(aicomms.Embeddings, 0, len(missing))
		for _, text := range missing {
			embeddings = append(embeddings, stubEmbedding(text))
		}
		return embeddings, nil
	}

	texts := []string{"alpha", "beta", "gamma"}
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			values, err := cache.FetchEmbeddings("model-a", texts, fetch)
			assert.NoError(t, err)
			assert.Len(t, values, 3)
		}()
	}
	wg.Wait()

	// Callers either share the in-flight fetch or hit the entries it stored.
	assert.Equal(t, int64(1), calls.Load())
}

package cache

import (
	"context"
	"sync"
	"time"

	"github.com/expki/go-constructsim/ai/aicomms"
	"github.com/expki/go-constructsim/config"
)

// NewCache creates an in-memory embedding cache whose expired entries are
// swept in the background until appCtx is done or Close is called.
func NewCache(appCtx context.Context) *Cache {
	c := &Cache{
		done:      make(chan struct{}),
		embedding: make(map[string]*item[aicomms.Embedding]),
	}
	go c.cleanupTask(appCtx)
	return c
}

func (c *Cache) Close() {
	close(c.done)
}

type Cache struct {
	done chan struct{}

	embeddingLock sync.RWMutex
	embedding     map[string]*item[aicomms.Embedding]
}

func (c *Cache) cleanupTask(appCtx context.Context) {
	ticker := time.NewTicker(config.CACHE_CLEANUP)
	for {
		select {
		case <-appCtx.Done():
			ticker.Stop()
			return
		case <-c.done:
			ticker.Stop()
			return
		case <-ticker.C:
			now := time.Now()

			// Cleanup embeddings
			c.embeddingLock.Lock()
			for key, value := range c.embedding {
				if value.expiration.Before(now) {
					delete(c.embedding, key)
				}
			}
			c.embeddingLock.Unlock()
		}
	}
}

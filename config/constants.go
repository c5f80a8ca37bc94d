package config

import "time"

const (
	EMBED_BATCH_SIZE  = 64
	EMBED_CONCURRENCY = 4

	CACHE_DURATION = 15 * time.Minute
	CACHE_CLEANUP  = time.Minute

	HTTP_CLIENT_MAX_REQUESTS uint64 = 500
)

package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

type embeddingKey struct {
	Model string
	Text  string
}

// String hashes the text so keys stay a fixed size no matter how long the
// item text is.
func (k embeddingKey) String() string {
	digest := sha256.Sum256([]byte(k.Text))
	return k.Model + ":" + hex.EncodeToString(digest[:])
}

type item[T any] struct {
	expiration time.Time
	value      T
}

// Package cache stores oracle responses keyed by document content, so
// resubmitting the same text does not trigger (and re-bill) another
// API call.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for caching
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key generates a cache key for one oracle call: the call kind
// ("termos", "resumo") plus the SHA-256 of the document text. Different
// kinds over the same text never collide.
func Key(kind, text string) string {
	hash := sha256.Sum256([]byte(kind + "\x00" + text))
	return "assistente:v1:" + kind + ":" + hex.EncodeToString(hash[:])
}

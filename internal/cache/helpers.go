package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// KeyBuilder joins a namespace and identifiers into a colon separated cache key
type KeyBuilder struct {
	namespace string
	parts     []string
}

// NewKeyBuilder starts a key under namespace
func NewKeyBuilder(namespace CacheKeyPrefix) *KeyBuilder {
	return &KeyBuilder{namespace: string(namespace)}
}

// Add appends an identifier; empty identifiers are skipped
func (b *KeyBuilder) Add(part string) *KeyBuilder {
	if part != "" {
		b.parts = append(b.parts, part)
	}
	return b
}

// Build returns "<namespace>:<part>:<part>..."
func (b *KeyBuilder) Build() string {
	if len(b.parts) == 0 {
		return b.namespace
	}
	if b.namespace == "" {
		return strings.Join(b.parts, ":")
	}
	return b.namespace + ":" + strings.Join(b.parts, ":")
}

// Hash keeps the namespace readable and replaces the identifiers with their sha256,
// for identifiers such as URLs that may contain ':' or be arbitrarily long.
func (b *KeyBuilder) Hash() string {
	sum := sha256.Sum256([]byte(strings.Join(b.parts, ":")))
	return b.namespace + ":hash:" + hex.EncodeToString(sum[:])
}

// LockKey returns the advisory lock key guarding population of key
func LockKey(key string) string {
	return NewKeyBuilder(KeyPrefixLock).Add(key).Build()
}

// CounterKey returns the key of a counter bucket, e.g. "counter:cache_hit:2024-05-01"
func CounterKey(metric, bucket string) string {
	return NewKeyBuilder(KeyPrefixCounter).Add(metric).Add(bucket).Build()
}

// ProbeCacheKey identifies the cached health snapshot of one upstream base URL
func ProbeCacheKey(baseURL string) string {
	return NewKeyBuilder(KeyPrefixHealthStatus).Add(baseURL).Hash()
}

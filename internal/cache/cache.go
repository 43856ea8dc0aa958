// Package cache stores serialized analysis results and fetched pages keyed by content hash.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMiss is returned by Get when the key is not present.
var ErrMiss = errors.New("cache miss")

// Cache is a byte-oriented key/value store with expiry handled by the implementation.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Key hashes the JSON encoding of v and prefixes it with namespace.
// Struct fields encode in declaration order, so equal values always produce equal keys.
func Key(namespace string, v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to encode cache key: %w", err)
	}
	sum := sha256.Sum256(data)
	return namespace + ":" + hex.EncodeToString(sum[:]), nil
}

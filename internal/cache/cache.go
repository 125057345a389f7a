package cache

import (
	"context"
	"errors"
	"fmt"
	"time"
)

const (
	RedisBackend  = "redis"
	MemoryBackend = "memory"
)

var (
	ErrCacheMiss      = errors.New("cache: key not found")
	ErrUnknownBackend = errors.New("cache: unknown backend")
)

// Cache is our generic cache interface.
type Cache[V any] interface {
	// Get returns the value or ErrCacheMiss.
	Get(ctx context.Context, key string) (V, error)
	// Set stores value under key, with TTL. Zero ttl = no expiration.
	Set(ctx context.Context, key string, value V, ttl time.Duration) error
	// Delete removes the key.
	Delete(ctx context.Context, key string) error
	// Ping reports whether the backend is reachable.
	Ping(ctx context.Context) error
	// Close releases background resources.
	Close() error
}

// NewCache builds the backend named by backend. The redis backend requires opts.
func NewCache[V any](backend string, opts *RedisOptions) (Cache[V], error) {
	switch backend {
	case RedisBackend:
		if opts == nil {
			return nil, fmt.Errorf("%w: redis options required", ErrUnknownBackend)
		}
		return NewRedisCache[V](opts), nil
	case MemoryBackend:
		return NewMemoryCache[V](), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}

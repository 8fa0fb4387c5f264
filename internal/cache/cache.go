package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// ErrMiss is returned when a key is absent or expired.
var ErrMiss = fmt.Errorf("cache miss")

// Provider is an explicit, caller-owned cache with per-entry TTLs. The
// engine core never holds one; collaborators that memoize (the schedule
// fetcher) receive a Provider and own its lifetime.
type Provider interface {
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Get(ctx context.Context, key string, dest interface{}) error
	Delete(ctx context.Context, key string) error
}

// RedisProvider backs a Provider with Redis, JSON-encoding values.
type RedisProvider struct {
	client    *redis.Client
	keyPrefix string
	logger    *logrus.Entry
}

// NewRedisProvider creates a Redis-backed cache. The prefix namespaces keys
// so several engines can share one database.
func NewRedisProvider(client *redis.Client, keyPrefix string) *RedisProvider {
	return &RedisProvider{
		client:    client,
		keyPrefix: keyPrefix,
		logger:    logrus.WithField("component", "redis_cache"),
	}
}

func (p *RedisProvider) key(key string) string {
	if p.keyPrefix == "" {
		return key
	}
	return p.keyPrefix + ":" + key
}

func (p *RedisProvider) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshaling cache value for %s: %w", key, err)
	}
	if err := p.client.Set(ctx, p.key(key), data, ttl).Err(); err != nil {
		p.logger.WithError(err).WithField("key", key).Error("Failed to set cache value")
		return err
	}
	return nil
}

func (p *RedisProvider) Get(ctx context.Context, key string, dest interface{}) error {
	result, err := p.client.Get(ctx, p.key(key)).Result()
	if err != nil {
		if err == redis.Nil {
			return ErrMiss
		}
		p.logger.WithError(err).WithField("key", key).Error("Failed to get cache value")
		return err
	}
	return json.Unmarshal([]byte(result), dest)
}

func (p *RedisProvider) Delete(ctx context.Context, key string) error {
	return p.client.Del(ctx, p.key(key)).Err()
}

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// MemoryProvider is an in-process Provider for tests and single-node
// deployments. Values round-trip through JSON so behavior matches the Redis
// implementation.
type MemoryProvider struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemoryProvider creates an empty in-memory cache.
func NewMemoryProvider() *MemoryProvider {
	return &MemoryProvider{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (p *MemoryProvider) Set(_ context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshaling cache value for %s: %w", key, err)
	}
	entry := memoryEntry{data: data}
	if ttl > 0 {
		entry.expiresAt = p.now().Add(ttl)
	}
	p.mu.Lock()
	p.entries[key] = entry
	p.mu.Unlock()
	return nil
}

func (p *MemoryProvider) Get(_ context.Context, key string, dest interface{}) error {
	p.mu.RLock()
	entry, ok := p.entries[key]
	p.mu.RUnlock()
	if !ok {
		return ErrMiss
	}
	if !entry.expiresAt.IsZero() && p.now().After(entry.expiresAt) {
		p.mu.Lock()
		delete(p.entries, key)
		p.mu.Unlock()
		return ErrMiss
	}
	return json.Unmarshal(entry.data, dest)
}

func (p *MemoryProvider) Delete(_ context.Context, key string) error {
	p.mu.Lock()
	delete(p.entries, key)
	p.mu.Unlock()
	return nil
}

package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// StoredResponse is a cached HTTP response kept for idempotent replay.
type StoredResponse struct {
	StatusCode int               `json:"status_code"`
	Headers    map[string]string `json:"headers,omitempty"`
	Body       []byte            `json:"body"`
	Timestamp  time.Time         `json:"timestamp"`
}

// ResponseStore persists responses keyed by idempotency cache key.
type ResponseStore interface {
	Get(ctx context.Context, key string) (*StoredResponse, bool, error)
	Set(ctx context.Context, key string, resp *StoredResponse) error
}

// MemoryResponseStore is an in-process ResponseStore used when Redis is not
// configured. Entries expire after the TTL; a background sweep reclaims them.
type MemoryResponseStore struct {
	mu    sync.RWMutex
	items map[string]*StoredResponse
	ttl   time.Duration
}

// NewMemoryResponseStore creates an in-memory response store.
func NewMemoryResponseStore(ttl time.Duration) *MemoryResponseStore {
	s := &MemoryResponseStore{
		items: make(map[string]*StoredResponse),
		ttl:   ttl,
	}
	go s.startCleanup()
	return s
}

// Get retrieves a stored response if it has not expired.
func (s *MemoryResponseStore) Get(_ context.Context, key string) (*StoredResponse, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	resp, ok := s.items[key]
	if !ok || time.Since(resp.Timestamp) > s.ttl {
		return nil, false, nil
	}
	return resp, true, nil
}

// Set stores a response.
func (s *MemoryResponseStore) Set(_ context.Context, key string, resp *StoredResponse) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	resp.Timestamp = time.Now()
	s.items[key] = resp
	return nil
}

func (s *MemoryResponseStore) startCleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		s.mu.Lock()
		now := time.Now()
		for key, resp := range s.items {
			if now.Sub(resp.Timestamp) > s.ttl {
				delete(s.items, key)
			}
		}
		s.mu.Unlock()
	}
}

// RedisResponseStore is a Redis-backed ResponseStore so idempotent replay
// works across service instances. Expiry is delegated to Redis TTLs.
type RedisResponseStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisResponseStore creates a Redis-backed response store.
func NewRedisResponseStore(client *redis.Client, ttl time.Duration) *RedisResponseStore {
	return &RedisResponseStore{client: client, ttl: ttl}
}

func redisKey(key string) string {
	return "idempotency:" + key
}

// Get retrieves a stored response. A missing key is not an error.
func (s *RedisResponseStore) Get(ctx context.Context, key string) (*StoredResponse, bool, error) {
	data, err := s.client.Get(ctx, redisKey(key)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("idempotency get: %w", err)
	}

	var resp StoredResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, false, fmt.Errorf("idempotency decode: %w", err)
	}
	return &resp, true, nil
}

// Set stores a response with the configured TTL.
func (s *RedisResponseStore) Set(ctx context.Context, key string, resp *StoredResponse) error {
	resp.Timestamp = time.Now()

	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("idempotency encode: %w", err)
	}

	if err := s.client.Set(ctx, redisKey(key), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("idempotency set: %w", err)
	}
	return nil
}

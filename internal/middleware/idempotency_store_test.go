//go:build !integration

package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func redisStore(t *testing.T, ttl time.Duration) (*RedisResponseStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = client.Close()
	})

	return NewRedisResponseStore(client, ttl), mr
}

func TestRedisResponseStore_SetGet(t *testing.T) {
	ctx := context.Background()
	store, _ := redisStore(t, time.Minute)

	stored := &StoredResponse{
		StatusCode: 200,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       []byte(`{"total":80}`),
	}
	require.NoError(t, store.Set(ctx, "abc", stored))

	got, ok, err := store.Get(ctx, "abc")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 200, got.StatusCode)
	assert.Equal(t, []byte(`{"total":80}`), got.Body)
	assert.Equal(t, "application/json", got.Headers["Content-Type"])
}

func TestRedisResponseStore_MissingKey(t *testing.T) {
	ctx := context.Background()
	store, _ := redisStore(t, time.Minute)

	_, ok, err := store.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisResponseStore_TTLExpiry(t *testing.T) {
	ctx := context.Background()
	store, mr := redisStore(t, time.Minute)

	require.NoError(t, store.Set(ctx, "abc", &StoredResponse{StatusCode: 200}))

	mr.FastForward(2 * time.Minute)

	_, ok, err := store.Get(ctx, "abc")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIdempotency_WithRedisStore(t *testing.T) {
	store, _ := redisStore(t, time.Minute)

	router := setupRouter()
	router.Use(Idempotency(IdempotencyConfig{Store: store, Enabled: true}))

	hits := 0
	router.POST("/process", func(c *gin.Context) {
		hits++
		c.JSON(http.StatusOK, gin.H{"run": hits})
	})

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/process", nil)
		req.Header.Set(IdempotencyKeyHeader, "same-key")
		router.ServeHTTP(httptest.NewRecorder(), req)
	}

	assert.Equal(t, 1, hits)
}

func TestIdempotency_RedisDownFallsThrough(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewRedisResponseStore(client, time.Minute)
	mr.Close()

	router := setupRouter()
	router.Use(RequestID(), Idempotency(IdempotencyConfig{Store: store, Enabled: true}))

	hits := 0
	router.POST("/process", func(c *gin.Context) {
		hits++
		c.JSON(http.StatusOK, gin.H{"run": hits})
	})

	req := httptest.NewRequest(http.MethodPost, "/process", nil)
	req.Header.Set(IdempotencyKeyHeader, "key")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, hits)
}

package advice

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

func TestMemoryCacheExpiry(t *testing.T) {
	now := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)
	cache := NewMemoryCache(func() time.Time { return now })
	ctx := context.Background()

	if err := cache.Set(ctx, "k", "v", time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := cache.Set(ctx, "forever", "v", 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got, ok, _ := cache.Get(ctx, "k"); !ok || got != "v" {
		t.Fatalf("expected hit, got %q %v", got, ok)
	}

	now = now.Add(time.Minute)
	if _, ok, _ := cache.Get(ctx, "k"); ok {
		t.Fatalf("expected expired entry to miss")
	}
	if _, ok, _ := cache.Get(ctx, "forever"); !ok {
		t.Fatalf("expected entry without ttl to persist")
	}
	if _, ok, _ := cache.Get(ctx, "missing"); ok {
		t.Fatalf("expected miss")
	}
}

func TestRedisCacheSurfacesConnectionErrors(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	cache := NewRedisCacheFromClient(client)
	t.Cleanup(func() { _ = cache.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if _, _, err := cache.Get(ctx, "k"); err == nil {
		t.Fatalf("expected connection error")
	}
	if err := cache.Set(ctx, "k", "v", time.Minute); err == nil {
		t.Fatalf("expected connection error")
	}
	if _, err := NewRedisCache(ctx, "redis://127.0.0.1:1/0"); err == nil {
		t.Fatalf("expected ping failure")
	}
}

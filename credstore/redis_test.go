package credstore

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestRedis(t *testing.T) *Redis {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis.Run failed: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store, err := NewRedis(client, "gosession-test")
	if err != nil {
		t.Fatalf("NewRedis failed: %v", err)
	}
	return store
}

func TestRedisRoundTrip(t *testing.T) {
	store := newTestRedis(t)

	if _, ok := store.Get(KeyAccessToken); ok {
		t.Fatal("fresh store should be empty")
	}

	if err := store.Set(KeyAccessToken, "tok-1"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if v, ok := store.Get(KeyAccessToken); !ok || v != "tok-1" {
		t.Fatalf("expected tok-1, got %q (present=%v)", v, ok)
	}

	if err := store.Clear(KeyAccessToken); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if _, ok := store.Get(KeyAccessToken); ok {
		t.Fatal("cleared key still present")
	}
}

func TestRedisKeysAreNamespaced(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis.Run failed: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store, err := NewRedis(client, "tenant-a")
	if err != nil {
		t.Fatalf("NewRedis failed: %v", err)
	}

	if err := store.Set(KeyRefreshToken, "ref-1"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, err := mr.Get("tenant-a:" + KeyRefreshToken)
	if err != nil || got != "ref-1" {
		t.Fatalf("expected namespaced key, got %q err=%v", got, err)
	}
}

func TestRedisRequiresClient(t *testing.T) {
	if _, err := NewRedis(nil, "x"); err == nil {
		t.Fatal("expected error for nil client")
	}
}

package cache

import (
	"context"
	"testing"
	"time"
)

func TestMemoryKeyValueStorePutGetDelete(t *testing.T) {
	store := NewMemoryKeyValueStore()
	ctx := context.Background()

	if err := store.Put(ctx, "k1", "v1", time.Minute); err != nil {
		t.Fatalf("put failed: %v", err)
	}
	val, ok, err := store.Get(ctx, "k1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if !ok || val != "v1" {
		t.Fatalf("want v1 got %q ok=%v", val, ok)
	}

	if err := store.Delete(ctx, "k1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	_, ok, err = store.Get(ctx, "k1")
	if err != nil {
		t.Fatalf("get after delete failed: %v", err)
	}
	if ok {
		t.Fatalf("want miss after delete")
	}
}

func TestMemoryKeyValueStoreExpiry(t *testing.T) {
	store := NewMemoryKeyValueStore()
	ctx := context.Background()

	current := time.Now()
	store.Now = func() time.Time { return current }

	if err := store.Put(ctx, "token", "m42", time.Hour); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	_, ok, err := store.Get(ctx, "token")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if !ok {
		t.Fatalf("want hit before expiry")
	}

	current = current.Add(time.Hour + time.Second)
	_, ok, err = store.Get(ctx, "token")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if ok {
		t.Fatalf("want miss after expiry")
	}
}

func TestMemoryKeyValueStoreZeroTTLNeverExpires(t *testing.T) {
	store := NewMemoryKeyValueStore()
	ctx := context.Background()

	current := time.Now()
	store.Now = func() time.Time { return current }

	if err := store.Put(ctx, "k", "v", 0); err != nil {
		t.Fatalf("put failed: %v", err)
	}
	current = current.Add(240 * time.Hour)
	val, ok, err := store.Get(ctx, "k")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if !ok || val != "v" {
		t.Fatalf("want v got %q ok=%v", val, ok)
	}
}

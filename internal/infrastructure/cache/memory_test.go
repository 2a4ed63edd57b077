package cache

import (
	"context"
	"testing"
	"time"
)

func TestMemoryStoreSetGet(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	if err := store.Set(ctx, "k", "v", time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, ok, err := store.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok || got != "v" {
		t.Errorf("Get = (%q, %v), want (%q, true)", got, ok, "v")
	}
}

func TestMemoryStoreMissOnUnknownKey(t *testing.T) {
	store := NewMemoryStore()

	if _, ok, err := store.Get(context.Background(), "missing"); err != nil || ok {
		t.Errorf("Get(missing) = (ok=%v, err=%v), want miss", ok, err)
	}
}

func TestMemoryStoreExpiration(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	if err := store.Set(ctx, "k", "v", 10*time.Millisecond); err != nil {
		t.Fatalf("Set: %v", err)
	}
	time.Sleep(20 * time.Millisecond)

	if _, ok, _ := store.Get(ctx, "k"); ok {
		t.Error("expired key must miss")
	}
}

func TestMemoryStoreDelete(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	store.Set(ctx, "k", "v", time.Minute)
	if err := store.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := store.Get(ctx, "k"); ok {
		t.Error("deleted key must miss")
	}
}

func TestMemoryStoreOverwrite(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	store.Set(ctx, "k", "old", time.Minute)
	store.Set(ctx, "k", "new", time.Minute)

	got, ok, _ := store.Get(ctx, "k")
	if !ok || got != "new" {
		t.Errorf("Get = (%q, %v), want (%q, true)", got, ok, "new")
	}
}

package cache

import (
	"context"
	"testing"
	"time"
)

func TestFileCacheSetGet(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache() error = %v", err)
	}
	defer c.Close()

	ctx := context.Background()

	if _, hit, err := c.Get(ctx, "missing"); err != nil || hit {
		t.Errorf("Get(missing) = hit=%v err=%v, want miss", hit, err)
	}

	if err := c.Set(ctx, "key", []byte("value"), 0); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !hit {
		t.Fatal("Get() = miss, want hit")
	}
	if string(data) != "value" {
		t.Errorf("Get() = %q, want %q", data, "value")
	}
}

func TestFileCacheExpiry(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache() error = %v", err)
	}
	defer c.Close()

	ctx := context.Background()

	if err := c.Set(ctx, "key", []byte("value"), time.Nanosecond); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	time.Sleep(10 * time.Millisecond)

	if _, hit, err := c.Get(ctx, "key"); err != nil || hit {
		t.Errorf("Get(expired) = hit=%v err=%v, want miss", hit, err)
	}
}

func TestFileCacheDelete(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache() error = %v", err)
	}
	defer c.Close()

	ctx := context.Background()

	if err := c.Set(ctx, "key", []byte("value"), 0); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, hit, _ := c.Get(ctx, "key"); hit {
		t.Error("Get() after Delete() = hit, want miss")
	}

	// Deleting a missing key is not an error.
	if err := c.Delete(ctx, "missing"); err != nil {
		t.Errorf("Delete(missing) error = %v", err)
	}
}

func TestNullCache(t *testing.T) {
	c := NewNullCache()
	ctx := context.Background()

	if err := c.Set(ctx, "key", []byte("value"), 0); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if _, hit, err := c.Get(ctx, "key"); err != nil || hit {
		t.Errorf("Get() = hit=%v err=%v, want miss", hit, err)
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete() error = %v", err)
	}
	if err := c.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestArtifactKey(t *testing.T) {
	type opts struct {
		Weights string `json:"weights"`
	}

	a := ArtifactKey("knapsack", "html", opts{Weights: "1,2"})
	b := ArtifactKey("knapsack", "html", opts{Weights: "1,2"})
	if a != b {
		t.Error("same inputs produced different keys")
	}

	if a == ArtifactKey("knapsack", "svg", opts{Weights: "1,2"}) {
		t.Error("format change did not change the key")
	}
	if a == ArtifactKey("knapsack", "html", opts{Weights: "1,3"}) {
		t.Error("input change did not change the key")
	}
	if a == ArtifactKey("targetsum", "html", opts{Weights: "1,2"}) {
		t.Error("problem change did not change the key")
	}
}

func TestHash(t *testing.T) {
	h := Hash([]byte("data"))
	if len(h) != 64 {
		t.Errorf("len(Hash()) = %d, want 64", len(h))
	}
	if h != Hash([]byte("data")) {
		t.Error("Hash() is not deterministic")
	}
	if h == Hash([]byte("other")) {
		t.Error("different inputs produced the same hash")
	}
}

package cache

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFileCacheRoundTrip(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	ctx := context.Background()
	if err := c.Set(ctx, "key", []byte("value"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}

	data, ok, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok {
		t.Fatal("expected cache hit")
	}
	if string(data) != "value" {
		t.Errorf("data = %q, want %q", data, "value")
	}
}

func TestFileCacheMiss(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	_, ok, err := c.Get(context.Background(), "absent")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Error("expected cache miss for absent key")
	}
}

func TestFileCacheExpiration(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	ctx := context.Background()
	if err := c.Set(ctx, "key", []byte("value"), time.Nanosecond); err != nil {
		t.Fatalf("Set: %v", err)
	}
	time.Sleep(10 * time.Millisecond)

	_, ok, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Error("expected expired entry to be a miss")
	}
}

func TestFileCacheCorruptEntryIsMiss(t *testing.T) {
	dir := t.TempDir()
	c, err := NewFileCache(dir)
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	fc := c.(*FileCache)
	path := fc.path("key")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(path, []byte("not json"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	_, ok, err := c.Get(context.Background(), "key")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Error("expected corrupt entry to be a miss")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("expected corrupt entry to be removed")
	}
}

func TestFileCacheDelete(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	ctx := context.Background()
	if err := c.Set(ctx, "key", []byte("value"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := c.Get(ctx, "key"); ok {
		t.Error("expected miss after delete")
	}

	// Deleting an absent key is a no-op.
	if err := c.Delete(ctx, "absent"); err != nil {
		t.Errorf("Delete absent: %v", err)
	}
}

func TestNullCache(t *testing.T) {
	c := NewNullCache()
	defer c.Close()

	ctx := context.Background()
	if err := c.Set(ctx, "key", []byte("value"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, ok, _ := c.Get(ctx, "key"); ok {
		t.Error("null cache should never hit")
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()

	a := k.PassageKey("web", "John 3:16")
	b := k.PassageKey("web", "John 3:16")
	if a != b {
		t.Errorf("same inputs produced different keys: %q vs %q", a, b)
	}

	if k.PassageKey("web", "John 3:16") == k.PassageKey("kjv", "John 3:16") {
		t.Error("different translations should produce different keys")
	}
	if k.PassageKey("web", "John 3:16") == k.PassageKey("web", "John 3:17") {
		t.Error("different references should produce different keys")
	}
}

func TestScopedKeyer(t *testing.T) {
	base := NewDefaultKeyer()
	scoped := NewScopedKeyer(base, "source:local:")

	got := scoped.PassageKey("web", "John 3:16")
	want := "source:local:" + base.PassageKey("web", "John 3:16")
	if got != want {
		t.Errorf("PassageKey = %q, want %q", got, want)
	}
}

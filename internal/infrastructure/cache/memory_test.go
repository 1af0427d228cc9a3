package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pawpick/backend/internal/domain"
)

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()

	t.Run("set and get round-trip", func(t *testing.T) {
		c := NewMemoryCache()
		items := []domain.CatalogItem{{ProductID: "dog-food", Title: "Dog Food"}}

		if err := c.Set(ctx, "search:dog food", items, time.Minute); err != nil {
			t.Fatalf("Set: %v", err)
		}
		got, err := c.Get(ctx, "search:dog food")
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		cached, ok := got.([]domain.CatalogItem)
		if !ok {
			t.Fatalf("cached value has type %T", got)
		}
		if len(cached) != 1 || cached[0].ProductID != "dog-food" {
			t.Errorf("cached = %+v", cached)
		}
	})

	t.Run("missing key is a cache miss", func(t *testing.T) {
		c := NewMemoryCache()
		_, err := c.Get(ctx, "nope")
		if !errors.Is(err, domain.ErrCacheMiss) {
			t.Errorf("err = %v, want ErrCacheMiss", err)
		}
	})

	t.Run("expired entry is a cache miss", func(t *testing.T) {
		c := NewMemoryCache()
		if err := c.Set(ctx, "k", "v", time.Millisecond); err != nil {
			t.Fatalf("Set: %v", err)
		}
		time.Sleep(5 * time.Millisecond)

		_, err := c.Get(ctx, "k")
		if !errors.Is(err, domain.ErrCacheMiss) {
			t.Errorf("err = %v, want ErrCacheMiss", err)
		}
		exists, err := c.Exists(ctx, "k")
		if err != nil {
			t.Fatalf("Exists: %v", err)
		}
		if exists {
			t.Error("expired key reported as existing")
		}
	})

	t.Run("delete removes the key", func(t *testing.T) {
		c := NewMemoryCache()
		if err := c.Set(ctx, "k", "v", time.Minute); err != nil {
			t.Fatalf("Set: %v", err)
		}
		if err := c.Delete(ctx, "k"); err != nil {
			t.Fatalf("Delete: %v", err)
		}
		if _, err := c.Get(ctx, "k"); !errors.Is(err, domain.ErrCacheMiss) {
			t.Errorf("err = %v, want ErrCacheMiss after delete", err)
		}
	})

	t.Run("clear empties the cache", func(t *testing.T) {
		c := NewMemoryCache()
		_ = c.Set(ctx, "a", 1, time.Minute)
		_ = c.Set(ctx, "b", 2, time.Minute)
		if c.Size() != 2 {
			t.Fatalf("Size = %d, want 2", c.Size())
		}
		c.Clear()
		if c.Size() != 0 {
			t.Errorf("Size = %d, want 0 after Clear", c.Size())
		}
	})
}

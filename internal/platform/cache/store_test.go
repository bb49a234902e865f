package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestStore_Fetch_SharesConcurrentMisses(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (any, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return "team-list", nil
	}

	const workers = 32
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)
	errCh := make(chan error, workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, err := store.Fetch(context.Background(), "teams:list", loader)
			if err != nil {
				errCh <- err
				return
			}
			if got, _ := v.(string); got != "team-list" {
				errCh <- errUnexpectedValue
			}
		}()
	}

	close(start)
	wg.Wait()
	close(errCh)
	for err := range errCh {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
	if stats := store.Stats(); stats.Loads != 1 || stats.Entries != 1 || stats.Hits+stats.Misses != workers {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestStore_ExpiresEntries(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	store.Set(context.Background(), "player:p1", "v1")
	if _, ok := store.Get(context.Background(), "player:p1"); !ok {
		t.Fatalf("expected fresh entry to be cached")
	}

	now = now.Add(2 * time.Minute)
	if _, ok := store.Get(context.Background(), "player:p1"); ok {
		t.Fatalf("expected expired entry to be evicted")
	}
}

func TestStore_InvalidatePrefix(t *testing.T) {
	t.Parallel()

	store := NewStore(0)
	ctx := context.Background()
	store.Set(ctx, "team:a", 1)
	store.Set(ctx, "team:b", 2)
	store.Set(ctx, "player:a", 3)

	store.InvalidatePrefix(ctx, "team:")

	if _, ok := store.Get(ctx, "team:a"); ok {
		t.Fatalf("team:a should be deleted")
	}
	if _, ok := store.Get(ctx, "player:a"); !ok {
		t.Fatalf("player:a should survive prefix delete")
	}
}

func TestStore_Fetch_DoesNotCacheErrors(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32
	loader := func(context.Context) (any, error) {
		if calls.Add(1) == 1 {
			return nil, errors.New("db down")
		}
		return "ok", nil
	}

	if _, err := store.Fetch(context.Background(), "k", loader); err == nil {
		t.Fatalf("expected first load to fail")
	}
	v, err := store.Fetch(context.Background(), "k", loader)
	if err != nil || v != "ok" {
		t.Fatalf("second load = %v, %v; want ok", v, err)
	}
}

func TestStore_Fetch_DropsLoadOverlappingInvalidation(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	ctx := context.Background()
	loading := make(chan struct{})
	finish := make(chan struct{})

	done := make(chan any, 1)
	go func() {
		v, _ := store.Fetch(ctx, "player:list", func(context.Context) (any, error) {
			close(loading)
			<-finish
			return "before-rename", nil
		})
		done <- v
	}()

	<-loading
	store.InvalidatePrefix(ctx, "player:")
	close(finish)

	if got := <-done; got != "before-rename" {
		t.Fatalf("in-flight caller got %v", got)
	}
	if _, ok := store.Get(ctx, "player:list"); ok {
		t.Fatalf("load that overlapped an invalidation must not be cached")
	}

	v, err := store.Fetch(ctx, "player:list", func(context.Context) (any, error) { return "after-rename", nil })
	if err != nil || v != "after-rename" {
		t.Fatalf("reload = %v, %v; want after-rename", v, err)
	}
	if _, ok := store.Get(ctx, "player:list"); !ok {
		t.Fatalf("reload should be cached")
	}
}

func TestStore_ZeroTTLNeverExpires(t *testing.T) {
	t.Parallel()

	store := NewStore(0)
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	store.Set(context.Background(), "series:ipl", "IPL")

	now = now.Add(365 * 24 * time.Hour)
	if _, ok := store.Get(context.Background(), "series:ipl"); !ok {
		t.Fatalf("zero ttl entry should not expire")
	}
}

var errUnexpectedValue = errors.New("unexpected loaded value")

package cache

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"
)

var errNilLoader = errors.New("cache: loader is required")

// Loader produces the value for a missed key.
type Loader func(context.Context) (any, error)

// Stats is a point-in-time view of how well a Store is serving reads.
type Stats struct {
	Entries int
	Hits    uint64
	Misses  uint64
	Loads   uint64
}

type item struct {
	value   any
	expires time.Time
}

func (i item) fresh(now time.Time) bool {
	return i.expires.IsZero() || now.Before(i.expires)
}

// Store keeps reference data (teams, players, series) in process memory. A
// zero TTL keeps items until they are invalidated. Concurrent misses for one
// key share a single load, and a load that overlaps an invalidation is
// returned to its callers but not kept.
type Store struct {
	mu    sync.RWMutex
	items map[string]item
	epoch uint64
	ttl   time.Duration
	group singleflight.Group
	now   func() time.Time

	hits   atomic.Uint64
	misses atomic.Uint64
	loads  atomic.Uint64
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		items: make(map[string]item),
		ttl:   ttl,
		now:   time.Now,
	}
}

func (s *Store) Get(_ context.Context, key string) (any, bool) {
	v, ok := s.lookup(key)
	if ok {
		s.hits.Add(1)
	} else {
		s.misses.Add(1)
	}
	return v, ok
}

func (s *Store) Set(_ context.Context, key string, value any) {
	if key == "" {
		return
	}
	s.mu.Lock()
	s.items[key] = s.newItem(value)
	s.mu.Unlock()
}

// Fetch returns the cached value for key, loading it on a miss.
func (s *Store) Fetch(ctx context.Context, key string, load Loader) (any, error) {
	if load == nil {
		return nil, errNilLoader
	}
	if key == "" {
		return load(ctx)
	}
	if v, ok := s.Get(ctx, key); ok {
		return v, nil
	}

	v, err, _ := s.group.Do(key, func() (any, error) {
		if v, ok := s.lookup(key); ok {
			return v, nil
		}
		started := s.currentEpoch()
		s.loads.Add(1)
		v, err := load(ctx)
		if err != nil {
			return nil, err
		}
		s.keepIfCurrent(key, v, started)
		return v, nil
	})
	return v, err
}

// InvalidatePrefix drops every key under prefix and discards loads that are
// still in flight.
func (s *Store) InvalidatePrefix(_ context.Context, prefix string) {
	if prefix == "" {
		return
	}
	s.mu.Lock()
	for key := range s.items {
		if strings.HasPrefix(key, prefix) {
			delete(s.items, key)
		}
	}
	s.epoch++
	s.mu.Unlock()
}

func (s *Store) Stats() Stats {
	s.mu.RLock()
	n := len(s.items)
	s.mu.RUnlock()
	return Stats{
		Entries: n,
		Hits:    s.hits.Load(),
		Misses:  s.misses.Load(),
		Loads:   s.loads.Load(),
	}
}

func (s *Store) lookup(key string) (any, bool) {
	if key == "" {
		return nil, false
	}

	s.mu.RLock()
	it, ok := s.items[key]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if it.fresh(s.now()) {
		return it.value, true
	}

	s.mu.Lock()
	if cur, ok := s.items[key]; ok && !cur.fresh(s.now()) {
		delete(s.items, key)
	}
	s.mu.Unlock()
	return nil, false
}

func (s *Store) currentEpoch() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.epoch
}

func (s *Store) keepIfCurrent(key string, value any, epoch uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.epoch != epoch {
		return
	}
	s.items[key] = s.newItem(value)
}

func (s *Store) newItem(value any) item {
	it := item{value: value}
	if s.ttl > 0 {
		it.expires = s.now().Add(s.ttl)
	}
	return it
}

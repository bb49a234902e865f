// Package keylock serializes work per key (an innings or a match) with a
// bounded wait.
package keylock

import (
	"context"
	"errors"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"
)

// ErrTimeout is returned when the lock could not be acquired before the
// configured wait elapsed.
var ErrTimeout = errors.New("keylock: timed out waiting for lock")

type slot struct {
	sem  *semaphore.Weighted
	refs int
}

type Locker struct {
	mu      sync.Mutex
	slots   map[string]*slot
	timeout time.Duration
}

func New(timeout time.Duration) *Locker {
	return &Locker{
		slots:   make(map[string]*slot),
		timeout: timeout,
	}
}

// Lock blocks until key is free, ctx is done, or the wait timeout elapses.
// The returned func releases the lock.
func (l *Locker) Lock(ctx context.Context, key string) (func(), error) {
	s := l.acquireSlot(key)

	waitCtx := ctx
	if l.timeout > 0 {
		var cancel context.CancelFunc
		waitCtx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}

	if err := s.sem.Acquire(waitCtx, 1); err != nil {
		l.releaseSlot(key, s)
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, ErrTimeout
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			s.sem.Release(1)
			l.releaseSlot(key, s)
		})
	}, nil
}

// Len reports how many keys are currently held or awaited.
func (l *Locker) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.slots)
}

func (l *Locker) acquireSlot(key string) *slot {
	l.mu.Lock()
	defer l.mu.Unlock()

	s, ok := l.slots[key]
	if !ok {
		s = &slot{sem: semaphore.NewWeighted(1)}
		l.slots[key] = s
	}
	s.refs++
	return s
}

func (l *Locker) releaseSlot(key string, s *slot) {
	l.mu.Lock()
	defer l.mu.Unlock()

	s.refs--
	if s.refs == 0 {
		delete(l.slots, key)
	}
}

package keylock

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestLocker_SerializesSameKey(t *testing.T) {
	t.Parallel()

	locker := New(5 * time.Second)
	var inside atomic.Int32
	var overlapped atomic.Bool

	const workers = 16
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			unlock, err := locker.Lock(context.Background(), "innings:1")
			if err != nil {
				t.Errorf("lock: %v", err)
				return
			}
			if inside.Add(1) > 1 {
				overlapped.Store(true)
			}
			time.Sleep(time.Millisecond)
			inside.Add(-1)
			unlock()
		}()
	}
	wg.Wait()

	if overlapped.Load() {
		t.Fatalf("two holders were inside the critical section at once")
	}
	if got := locker.Len(); got != 0 {
		t.Fatalf("expected all slots released, got %d", got)
	}
}

func TestLocker_DifferentKeysDoNotBlock(t *testing.T) {
	t.Parallel()

	locker := New(50 * time.Millisecond)
	unlockA, err := locker.Lock(context.Background(), "innings:a")
	if err != nil {
		t.Fatalf("lock a: %v", err)
	}
	defer unlockA()

	unlockB, err := locker.Lock(context.Background(), "innings:b")
	if err != nil {
		t.Fatalf("lock b should not wait on a: %v", err)
	}
	unlockB()
}

func TestLocker_TimesOut(t *testing.T) {
	t.Parallel()

	locker := New(20 * time.Millisecond)
	unlock, err := locker.Lock(context.Background(), "match:1")
	if err != nil {
		t.Fatalf("first lock: %v", err)
	}
	defer unlock()

	_, err = locker.Lock(context.Background(), "match:1")
	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("expected ErrTimeout, got %v", err)
	}
}

func TestLocker_UnlockIsIdempotent(t *testing.T) {
	t.Parallel()

	locker := New(time.Second)
	unlock, err := locker.Lock(context.Background(), "k")
	if err != nil {
		t.Fatalf("lock: %v", err)
	}
	unlock()
	unlock()

	unlock, err = locker.Lock(context.Background(), "k")
	if err != nil {
		t.Fatalf("relock: %v", err)
	}
	unlock()
}

package locking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func TestLocalLocker(t *testing.T) {
	t.Run("serializes writers", func(t *testing.T) {
		l := NewLocalLocker()
		var (
			mu      sync.Mutex
			inside  int
			maxSeen int
			wg      sync.WaitGroup
		)
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				release, err := l.Lock(context.Background(), []string{"catalog:towels", "supplier:acme"}, time.Second)
				if err != nil {
					t.Errorf("lock: %v", err)
					return
				}
				mu.Lock()
				inside++
				if inside > maxSeen {
					maxSeen = inside
				}
				mu.Unlock()
				time.Sleep(time.Millisecond)
				mu.Lock()
				inside--
				mu.Unlock()
				release()
			}()
		}
		wg.Wait()
		if maxSeen != 1 {
			t.Fatalf("expected exclusive access, saw %d holders", maxSeen)
		}
	})

	t.Run("context cancel releases partial locks", func(t *testing.T) {
		l := NewLocalLocker()
		release, err := l.Lock(context.Background(), []string{"b"}, time.Second)
		if err != nil {
			t.Fatalf("lock: %v", err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		if _, err := l.Lock(ctx, []string{"a", "b"}, time.Second); !errors.Is(err, context.DeadlineExceeded) {
			t.Fatalf("expected deadline exceeded, got %v", err)
		}

		release2, err := l.Lock(context.Background(), []string{"a"}, time.Second)
		if err != nil {
			t.Fatalf("key a should have been released: %v", err)
		}
		release2()
		release()
	})
}

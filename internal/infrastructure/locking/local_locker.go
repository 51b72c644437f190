package locking

import (
	"context"
	"sync"
	"time"

	"hotel_procurement/internal/usecase/interfaces"
)

// LocalLocker is the single-process fallback used when REDIS_ADDRESS is unset.
// The ttl is ignored; locks are held until released.
type LocalLocker struct {
	mu    sync.Mutex
	slots map[string]chan struct{}
}

var _ interfaces.IKeyLocker = (*LocalLocker)(nil)

func NewLocalLocker() *LocalLocker {
	return &LocalLocker{slots: map[string]chan struct{}{}}
}

func (l *LocalLocker) slot(key string) chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()
	ch, ok := l.slots[key]
	if !ok {
		ch = make(chan struct{}, 1)
		l.slots[key] = ch
	}
	return ch
}

func (l *LocalLocker) Lock(ctx context.Context, keys []string, _ time.Duration) (func(), error) {
	held := make([]chan struct{}, 0, len(keys))
	release := func() {
		for i := len(held) - 1; i >= 0; i-- {
			<-held[i]
		}
	}
	for _, k := range keys {
		ch := l.slot(k)
		select {
		case ch <- struct{}{}:
			held = append(held, ch)
		case <-ctx.Done():
			release()
			return nil, ctx.Err()
		}
	}
	return release, nil
}

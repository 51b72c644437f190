package interfaces

import (
	"context"
	"time"
)

// IKeyLocker serializes writers on registry keys. Keys are acquired in the
// given order; the returned release func frees all of them.
type IKeyLocker interface {
	Lock(ctx context.Context, keys []string, ttl time.Duration) (release func(), err error)
}

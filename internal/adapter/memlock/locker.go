// Package memlock serialises campaign passes inside one process.
package memlock

import (
	"context"
	"sync"
	"time"

	"spendguard/internal/core/port"
)

// Locker implements port.CampaignLocker with an in-memory key set. The ttl
// is ignored: a holder in the same process always releases.
type Locker struct {
	mu   sync.Mutex
	held map[string]struct{}
}

var _ port.CampaignLocker = (*Locker)(nil)

// New returns an empty locker.
func New() *Locker {
	return &Locker{held: make(map[string]struct{})}
}

// TryLock takes key if no other pass in this process holds it. The returned
// release func is safe to call more than once.
func (l *Locker) TryLock(_ context.Context, key string, _ time.Duration) (func(), bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.held[key]; ok {
		return nil, false, nil
	}
	l.held[key] = struct{}{}

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			delete(l.held, key)
			l.mu.Unlock()
		})
	}, true, nil
}

package port

import (
	"context"
	"time"
)

// CampaignLocker serialises evaluation passes for the same campaign across
// goroutines and processes.
type CampaignLocker interface {
	// TryLock acquires key for at most ttl without waiting. ok is false when
	// another holder owns the key. release must be called once when ok.
	TryLock(ctx context.Context, key string, ttl time.Duration) (release func(), ok bool, err error)
}

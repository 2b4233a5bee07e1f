package port

import (
	"context"

	"spendguard/internal/core/domain"
)

// StatusPublisher notifies downstream consumers that a campaign setting
// changed status. Delivery is best effort.
type StatusPublisher interface {
	PublishStatusChange(ctx context.Context, ev domain.StatusChange) error
}

package port

import (
	"time"

	"github.com/google/uuid"

	"spendguard/internal/core/domain"
)

// Metrics records control loop observations.
type Metrics interface {
	GatewayAttempt(endpoint string, status int, kind ErrorKind)
	Decision(action domain.Action, reason domain.Reason, applied bool)
	CampaignFailure(kind string)
	CredentialsUnauthorized(id uuid.UUID)
	Tick(d time.Duration, failedCredentials int)
}

// NopMetrics discards every observation.
type NopMetrics struct{}

func (NopMetrics) GatewayAttempt(string, int, ErrorKind) {}
func (NopMetrics) Decision(domain.Action, domain.Reason, bool) {}
func (NopMetrics) CampaignFailure(string) {}
func (NopMetrics) CredentialsUnauthorized(uuid.UUID) {}
func (NopMetrics) Tick(time.Duration, int) {}

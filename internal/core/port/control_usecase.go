package port

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ControlUseCase defines the operations exposed by the spend controller.
// This interface is the primary port used by the HTTP trigger surface and
// the settings change listener.
type ControlUseCase interface {
	// Tick runs one evaluation pass over every enabled credential set.
	Tick(ctx context.Context) (*TickReport, error)

	// RunCredentials evaluates a single credential set on demand. It returns
	// ErrCredentialsNotFound when the id is unknown or disabled.
	RunCredentials(ctx context.Context, id uuid.UUID) (*CredentialReport, error)
}

// TickReport summarises one control loop tick. It is a DTO used by the HTTP
// layer and logs.
type TickReport struct {
	TickID      uuid.UUID          `json:"tick_id"`
	StartedAt   time.Time          `json:"started_at"`
	Duration    time.Duration      `json:"duration"`
	Skipped     bool               `json:"skipped"`
	Credentials []CredentialReport `json:"credentials"`
}

// CredentialReport summarises the pass over one credential set. Evaluated
// counts campaigns whose evaluation completed, Applied those that received a
// platform call, Failed those with an error, Skipped those held by a
// concurrent pass and Abandoned those not started before the tick deadline.
type CredentialReport struct {
	CredentialsID uuid.UUID `json:"credentials_id"`
	Evaluated     int       `json:"evaluated"`
	Applied       int       `json:"applied"`
	Failed        int       `json:"failed"`
	Skipped       int       `json:"skipped"`
	Abandoned     int       `json:"abandoned"`
	Error         string    `json:"error,omitempty"`
}

package port

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"spendguard/internal/core/domain"
)

// ErrStaleWrite is returned when an evaluation write lost the race against a
// concurrent pass for the same campaign.
var ErrStaleWrite = errors.New("stale campaign setting write")

// SettingsRepository defines the persistence layer for credentials and
// campaign settings. It is an outbound port in hexagonal architecture.
// Implementations must be concurrency-safe and apply each SettingUpdate as a
// single atomic statement.
type SettingsRepository interface {
	// ListEnabledCredentials returns every credential set the control loop
	// should process.
	ListEnabledCredentials(ctx context.Context) ([]domain.Credentials, error)
	// GetCredentials returns a credential set by id, or nil when unknown.
	GetCredentials(ctx context.Context, id uuid.UUID) (*domain.Credentials, error)
	// ListCampaignSettings returns the settings bound to a credential set.
	ListCampaignSettings(ctx context.Context, credentialsID uuid.UUID) ([]domain.CampaignSetting, error)
	// SaveEvaluation persists the outcome of one evaluation. It returns
	// ErrStaleWrite when the stored version differs from ExpectedVersion.
	SaveEvaluation(ctx context.Context, upd domain.SettingUpdate) error
	// RecordFailure stores sticky error text for a setting without touching
	// its status or cache fields.
	RecordFailure(ctx context.Context, settingID int64, message string, at time.Time) error
}

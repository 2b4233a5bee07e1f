package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StatusChange is emitted after a setting has been persisted with a new
// control status.
type StatusChange struct {
	EventID       uuid.UUID       `json:"event_id"`
	SettingID     int64           `json:"setting_id"`
	UserID        uuid.UUID       `json:"user_id"`
	CredentialsID uuid.UUID       `json:"credentials_id"`
	CampaignID    string          `json:"campaign_id"`
	Action        Action          `json:"action"`
	Reason        Reason          `json:"reason"`
	FromStatus    ControlStatus   `json:"from_status"`
	ToStatus      ControlStatus   `json:"to_status"`
	OzonStatus    CampaignState   `json:"ozon_status"`
	DailySpend    decimal.Decimal `json:"daily_spend"`
	OccurredAt    time.Time       `json:"occurred_at"`
}

// SpendRecord is one statistics row: the amount spent by a campaign on a day.
type SpendRecord struct {
	CampaignID string
	Date       Date
	Amount     decimal.Decimal
}

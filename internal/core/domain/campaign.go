package domain

import "github.com/shopspring/decimal"

// CampaignState is the live state reported by the ad platform.
type CampaignState string

const (
	StateRunning         CampaignState = "CAMPAIGN_STATE_RUNNING"
	StatePlanned         CampaignState = "CAMPAIGN_STATE_PLANNED"
	StateStopped         CampaignState = "CAMPAIGN_STATE_STOPPED"
	StateInactive        CampaignState = "CAMPAIGN_STATE_INACTIVE"
	StateArchived        CampaignState = "CAMPAIGN_STATE_ARCHIVED"
	StateModerationDraft CampaignState = "CAMPAIGN_STATE_MODERATION_DRAFT"
	StateFinished        CampaignState = "CAMPAIGN_STATE_FINISHED"
	StateUnknown         CampaignState = "CAMPAIGN_STATE_UNKNOWN"
)

// Active reports whether the campaign is currently allowed to spend.
func (s CampaignState) Active() bool {
	return s == StateRunning
}

// Stopped reports whether the campaign definitely cannot spend. Planned,
// draft and unknown campaigns may start on their own, so they are not
// stopped.
func (s CampaignState) Stopped() bool {
	switch s {
	case StateInactive, StateStopped, StateArchived, StateFinished:
		return true
	}
	return false
}

// Campaign represents an advertising campaign as the platform sees it.
// DailyBudget is kept as reported; the platform may use zero for "unlimited".
type Campaign struct {
	ID          string
	Title       string
	State       CampaignState
	DailyBudget decimal.Decimal
}

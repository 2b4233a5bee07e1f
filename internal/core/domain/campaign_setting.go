package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ControlStatus is the state of the per-campaign control machine.
type ControlStatus string

const (
	StatusUserManaged      ControlStatus = "USER_MANAGED"
	StatusActiveControlled ControlStatus = "ACTIVE_CONTROLLED"
	StatusPausedByLimit    ControlStatus = "PAUSED_BY_LIMIT"
	StatusPausedBySchedule ControlStatus = "PAUSED_BY_SCHEDULE"
)

// Valid reports whether s is one of the known statuses.
func (s ControlStatus) Valid() bool {
	switch s {
	case StatusUserManaged, StatusActiveControlled, StatusPausedByLimit, StatusPausedBySchedule:
		return true
	}
	return false
}

// CampaignSetting is the persisted control configuration and cached state of
// one campaign, keyed by (UserID, CredentialsID, CampaignID).
type CampaignSetting struct {
	ID            int64
	UserID        uuid.UUID
	CredentialsID uuid.UUID
	CampaignID    string

	CustomDailyBudgetLimit decimal.NullDecimal
	BudgetControlEnabled   bool
	Status                 ControlStatus

	SchedulingEnabled bool
	// ScheduleStart, ScheduleEnd and ScheduleDays are nil when the column is
	// NULL; Merge fills the defaults.
	ScheduleStart *TimeOfDay
	ScheduleEnd   *TimeOfDay
	ScheduleDays  *WeekdaySet

	LastCheckedAt           *time.Time
	LastDailyLimitPauseDate *Date
	CachedDailySpend        decimal.NullDecimal
	CachedOzonStatus        string

	LastError   string
	LastErrorAt *time.Time

	// Version is bumped by every evaluation write and guards against stale
	// concurrent updates.
	Version int64
}

// ControlEnabled reports whether any kind of automated control is on.
func (s CampaignSetting) ControlEnabled() bool {
	return s.BudgetControlEnabled || s.SchedulingEnabled
}

// PausedForLimitOn reports whether a budget pause was recorded on day.
func (s CampaignSetting) PausedForLimitOn(day Date) bool {
	return s.LastDailyLimitPauseDate != nil && *s.LastDailyLimitPauseDate == day
}

// SettingUpdate is the single write issued after a successful evaluation.
// OzonStatus is always written; cached spend only when SpendFresh is set;
// LimitPauseDate only for budget pauses.
type SettingUpdate struct {
	SettingID       int64
	ExpectedVersion int64

	Status         ControlStatus
	CheckedAt      time.Time
	SpendFresh     bool
	DailySpend     decimal.Decimal
	OzonStatus     CampaignState
	LimitPauseDate *Date
}

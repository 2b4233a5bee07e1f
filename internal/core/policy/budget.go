package policy

import (
	"time"

	"github.com/shopspring/decimal"

	"spendguard/internal/core/domain"
)

// EvaluateBudget compares today's spend with the effective limit of the
// view. spend is invalid when it could not be determined this pass, in which
// case no budget action is taken.
//
// A pause is issued at most once per calendar day: once
// LastDailyLimitPauseDate equals today, further over-limit passes return
// ActionNone. On the first pass of a new day a campaign paused by limit is
// resumed while its spend is below the limit.
func EvaluateBudget(v domain.CombinedCampaignView, spend decimal.NullDecimal, now time.Time) domain.Decision {
	d := domain.Decision{CampaignID: v.CampaignID(), Action: domain.ActionNone, Reason: domain.ReasonUnchanged}
	if !v.Setting.BudgetControlEnabled || !v.HasLimit() {
		d.Reason = domain.ReasonUserManaged
		return d
	}
	if !spend.Valid {
		return d
	}
	today := domain.DateOf(now)
	pausedToday := v.Setting.PausedForLimitOn(today)
	over := spend.Decimal.GreaterThanOrEqual(v.EffectiveLimit)
	d.OverLimit = over

	switch {
	case over && !pausedToday:
		d.Action, d.Reason = domain.ActionPause, domain.ReasonBudgetExceeded
	case over:
		d.Reason = domain.ReasonBudgetExceeded
	case v.Setting.Status == domain.StatusPausedByLimit && !pausedToday:
		d.Action, d.Reason = domain.ActionResume, domain.ReasonScheduleOpen
	}
	return d
}

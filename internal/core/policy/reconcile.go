package policy

import "spendguard/internal/core/domain"

// Reconcile merges the schedule and budget intents for one campaign into a
// plan. Precedence, highest first:
//
//  1. both controls off: hand the campaign back to the user, no action;
//  2. budget pause: always wins and records the pause date;
//  3. day-rollover resume: becomes a schedule pause while the window is
//     closed, otherwise a resume;
//  4. schedule pause: skipped while paused by limit so the pause date stays;
//  5. schedule resume: suppressed while spend is over the limit;
//  6. budget control switched off while paused by limit: release.
//
// Without an action the current status is kept, except that USER_MANAGED
// becomes ACTIVE_CONTROLLED once any control is on.
func Reconcile(v domain.CombinedCampaignView, schedule, budget domain.Decision) domain.Plan {
	s := v.Setting
	keep := domain.Plan{
		Decision:     domain.Decision{CampaignID: v.CampaignID(), Action: domain.ActionNone, Reason: domain.ReasonUnchanged, OverLimit: budget.OverLimit},
		TargetStatus: s.Status,
	}

	if !s.ControlEnabled() {
		keep.Reason = domain.ReasonUserManaged
		keep.TargetStatus = domain.StatusUserManaged
		return keep
	}

	switch {
	case budget.Action == domain.ActionPause:
		return domain.Plan{Decision: budget, TargetStatus: domain.StatusPausedByLimit, MarkLimitPause: true}

	case budget.Action == domain.ActionResume:
		if schedule.Reason == domain.ReasonScheduleClosed {
			return plan(v, domain.ActionPause, domain.ReasonScheduleClosed, budget.OverLimit, domain.StatusPausedBySchedule)
		}
		return plan(v, domain.ActionResume, domain.ReasonScheduleOpen, budget.OverLimit, domain.StatusActiveControlled)

	case schedule.Action == domain.ActionPause:
		if s.Status == domain.StatusPausedByLimit {
			return keep
		}
		return plan(v, domain.ActionPause, domain.ReasonScheduleClosed, budget.OverLimit, domain.StatusPausedBySchedule)

	case schedule.Action == domain.ActionResume:
		if budget.OverLimit {
			return keep
		}
		return plan(v, domain.ActionResume, domain.ReasonScheduleOpen, budget.OverLimit, domain.StatusActiveControlled)

	case s.Status == domain.StatusPausedByLimit && (!s.BudgetControlEnabled || !v.HasLimit()):
		if schedule.Reason == domain.ReasonScheduleClosed {
			return plan(v, domain.ActionPause, domain.ReasonScheduleClosed, false, domain.StatusPausedBySchedule)
		}
		return plan(v, domain.ActionResume, domain.ReasonScheduleOpen, false, domain.StatusActiveControlled)
	}

	if s.Status == domain.StatusUserManaged {
		keep.TargetStatus = domain.StatusActiveControlled
	}
	return keep
}

func plan(v domain.CombinedCampaignView, a domain.Action, r domain.Reason, over bool, to domain.ControlStatus) domain.Plan {
	return domain.Plan{
		Decision:     domain.Decision{CampaignID: v.CampaignID(), Action: a, Reason: r, OverLimit: over},
		TargetStatus: to,
	}
}

package policy

import (
	"time"

	"spendguard/internal/core/domain"
)

// WithinSchedule reports whether the campaign may be active at now. With
// scheduling disabled there is no constraint.
func WithinSchedule(v domain.CombinedCampaignView, now time.Time) bool {
	if !v.Setting.SchedulingEnabled {
		return true
	}
	return windowOpen(v.Schedule, now)
}

func windowOpen(s domain.Schedule, now time.Time) bool {
	if s.End <= s.Start {
		return false
	}
	if !s.Days.Contains(now.Weekday()) {
		return false
	}
	clock := domain.ClockOf(now)
	return s.Start <= clock && clock < s.End
}

// EvaluateSchedule turns the gate into an intent. A closed window pauses a
// campaign that is not already paused by schedule; an open window resumes
// only campaigns this controller paused by schedule.
func EvaluateSchedule(v domain.CombinedCampaignView, now time.Time) domain.Decision {
	d := domain.Decision{CampaignID: v.CampaignID(), Action: domain.ActionNone, Reason: domain.ReasonUnchanged}
	if !v.Setting.SchedulingEnabled {
		if v.Setting.Status == domain.StatusPausedBySchedule {
			d.Action, d.Reason = domain.ActionResume, domain.ReasonScheduleOpen
		}
		return d
	}
	open := windowOpen(v.Schedule, now)
	switch {
	case !open:
		d.Reason = domain.ReasonScheduleClosed
		if v.Setting.Status != domain.StatusPausedBySchedule {
			d.Action = domain.ActionPause
		}
	case v.Setting.Status == domain.StatusPausedBySchedule:
		d.Action, d.Reason = domain.ActionResume, domain.ReasonScheduleOpen
	}
	return d
}

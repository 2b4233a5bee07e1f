package domain

// Action is the platform mutation a decision asks for.
type Action string

const (
	ActionNone   Action = "none"
	ActionPause  Action = "pause"
	ActionResume Action = "resume"
)

// Reason explains why a decision was taken.
type Reason string

const (
	ReasonBudgetExceeded Reason = "budget_exceeded"
	ReasonScheduleClosed Reason = "schedule_closed"
	ReasonScheduleOpen   Reason = "schedule_open"
	ReasonUserManaged    Reason = "user_managed"
	ReasonUnchanged      Reason = "unchanged"
)

// Decision is the intent produced by the schedule gate or budget evaluator.
type Decision struct {
	CampaignID string
	Action     Action
	Reason     Reason
	// OverLimit is set by the budget evaluator whenever known spend has
	// reached the effective limit, whether or not a pause is issued.
	OverLimit bool
}

// Plan is the reconciled outcome for one campaign: at most one platform
// action plus the status to persist.
type Plan struct {
	Decision
	TargetStatus   ControlStatus
	MarkLimitPause bool
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"spendguard/internal/core/domain"
	"spendguard/internal/core/policy"
	"spendguard/internal/core/port"
)

// ActionError reports a platform mutation that was decided but not
// confirmed by the platform. The setting keeps its previous status so the
// next pass retries the action.
type ActionError struct {
	CampaignID string
	Action     domain.Action
	Err        error
}

func (e *ActionError) Error() string {
	return fmt.Sprintf("campaign %s: %s: %v", e.CampaignID, e.Action, e.Err)
}

func (e *ActionError) Unwrap() error { return e.Err }

// Evaluation is the input of one campaign pass.
type Evaluation struct {
	Credentials domain.Credentials
	View        domain.CombinedCampaignView
	// Spend is invalid when today's spend is unknown this pass.
	Spend decimal.NullDecimal
	// SpendFresh marks Spend as fetched from the platform during this pass
	// rather than taken from the cache.
	SpendFresh bool
	// Now is expressed in the control timezone.
	Now time.Time
}

// Outcome describes what a pass did.
type Outcome struct {
	Plan       domain.Plan
	Applied    bool
	OzonStatus domain.CampaignState
	// Saved is false when nothing needed to be written.
	Saved bool
}

// Executor reconciles schedule and budget intents into one action, applies
// it on the platform and persists the result.
type Executor struct {
	platform     port.AdPlatform
	repo         port.SettingsRepository
	publisher    port.StatusPublisher
	metrics      port.Metrics
	logger       *slog.Logger
	writeTimeout time.Duration
}

// NewExecutor creates an executor. writeTimeout bounds every persistence
// write, which runs detached from the caller's cancellation.
func NewExecutor(platform port.AdPlatform, repo port.SettingsRepository, publisher port.StatusPublisher, metrics port.Metrics, logger *slog.Logger, writeTimeout time.Duration) *Executor {
	if writeTimeout <= 0 {
		writeTimeout = 5 * time.Second
	}
	return &Executor{
		platform:     platform,
		repo:         repo,
		publisher:    publisher,
		metrics:      metrics,
		logger:       logger,
		writeTimeout: writeTimeout,
	}
}

// ReconcileAndApply evaluates one configured campaign and applies at most
// one platform mutation followed by at most one settings write.
//
// The platform is only called when the live campaign state differs from the
// plan, so a pass after a lost write converges without a second mutation. A
// pause is skipped only for campaigns that are definitely stopped.
// On a failed platform call only the sticky error is recorded. On a failed
// write the platform may already have changed; the next pass re-derives the
// status from the live state.
func (e *Executor) ReconcileAndApply(ctx context.Context, ev Evaluation) (*Outcome, error) {
	v := ev.View
	s := v.Setting
	schedule := policy.EvaluateSchedule(v, ev.Now)
	budget := policy.EvaluateBudget(v, ev.Spend, ev.Now)
	p := policy.Reconcile(v, schedule, budget)

	out := &Outcome{Plan: p, OzonStatus: v.Campaign.State}
	log := e.logger.With(
		slog.String("credentials_id", ev.Credentials.ID.String()),
		slog.String("campaign_id", s.CampaignID),
		slog.String("action", string(p.Action)),
		slog.String("reason", string(p.Reason)),
	)

	state, applied, err := e.apply(ctx, ev.Credentials, p, v.Campaign)
	if err != nil {
		e.metrics.Decision(p.Action, p.Reason, false)
		e.recordFailure(ctx, log, s.ID, err, ev.Now)
		return nil, &ActionError{CampaignID: s.CampaignID, Action: p.Action, Err: err}
	}
	out.OzonStatus, out.Applied = state, applied
	e.metrics.Decision(p.Action, p.Reason, applied)
	if applied {
		log.Info("campaign state changed", slog.String("ozon_status", string(state)))
	}

	upd := domain.SettingUpdate{
		SettingID:       s.ID,
		ExpectedVersion: s.Version,
		Status:          p.TargetStatus,
		CheckedAt:       ev.Now,
		SpendFresh:      ev.SpendFresh,
		DailySpend:      ev.Spend.Decimal,
		OzonStatus:      state,
	}
	if p.MarkLimitPause {
		today := domain.DateOf(ev.Now)
		upd.LimitPauseDate = &today
	}
	if !upd.SpendFresh && upd.Status == s.Status && upd.LimitPauseDate == nil && string(state) == s.CachedOzonStatus {
		return out, nil
	}

	wctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), e.writeTimeout)
	defer cancel()
	if err = e.repo.SaveEvaluation(wctx, upd); err != nil {
		if errors.Is(err, port.ErrStaleWrite) {
			return out, err
		}
		if !errors.Is(err, port.ErrPersistence) {
			err = &port.PersistenceError{Op: "save evaluation", Err: err}
		}
		log.Error("evaluation not persisted", slog.Bool("platform_mutated", applied), slog.Any("error", err))
		return out, err
	}
	out.Saved = true

	if p.TargetStatus != s.Status {
		e.publish(context.WithoutCancel(ctx), log, ev, p, state)
	}
	return out, nil
}

// apply issues the platform call the plan needs, if any, and returns the
// resulting live state.
func (e *Executor) apply(ctx context.Context, creds domain.Credentials, p domain.Plan, c domain.Campaign) (domain.CampaignState, bool, error) {
	switch {
	case p.Action == domain.ActionPause && !c.State.Stopped():
		state, err := e.platform.DeactivateCampaign(ctx, creds, c.ID)
		return state, err == nil, err
	case p.Action == domain.ActionResume && !c.State.Active():
		state, err := e.platform.ActivateCampaign(ctx, creds, c.ID)
		return state, err == nil, err
	}
	return c.State, false, nil
}

func (e *Executor) recordFailure(ctx context.Context, log *slog.Logger, settingID int64, cause error, at time.Time) {
	log.Warn("campaign pass failed", slog.String("kind", string(port.KindOf(cause))), slog.Any("error", cause))
	wctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), e.writeTimeout)
	defer cancel()
	if err := e.repo.RecordFailure(wctx, settingID, cause.Error(), at); err != nil {
		log.Error("failed to record campaign error", slog.Any("error", err))
	}
}

func (e *Executor) publish(ctx context.Context, log *slog.Logger, ev Evaluation, p domain.Plan, state domain.CampaignState) {
	s := ev.View.Setting
	change := domain.StatusChange{
		EventID:       uuid.New(),
		SettingID:     s.ID,
		UserID:        s.UserID,
		CredentialsID: s.CredentialsID,
		CampaignID:    s.CampaignID,
		Action:        p.Action,
		Reason:        p.Reason,
		FromStatus:    s.Status,
		ToStatus:      p.TargetStatus,
		OzonStatus:    state,
		DailySpend:    ev.Spend.Decimal,
		OccurredAt:    ev.Now,
	}
	if err := e.publisher.PublishStatusChange(ctx, change); err != nil {
		log.Warn("status change not published", slog.Any("error", err))
	}
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"spendguard/internal/core/domain"
	"spendguard/internal/core/port"
)

// errMissingOnPlatform is recorded on settings whose campaign the platform
// no longer lists.
var errMissingOnPlatform = errors.New("campaign not found on platform")

// LoopConfig tunes a ControlLoop.
type LoopConfig struct {
	// Workers bounds concurrently processed credential sets.
	Workers int
	// CampaignWorkers bounds concurrently evaluated campaigns per set.
	CampaignWorkers int
	// TickDeadline stops a tick from starting new campaign evaluations.
	TickDeadline time.Duration
	LockTTL      time.Duration
	// DefaultDailyLimit applies when a setting has no positive custom limit.
	DefaultDailyLimit decimal.Decimal
	// Location fixes the calendar day and the clock for schedules.
	Location *time.Location
}

// ControlLoop runs evaluation passes over credential sets and their
// campaigns. Failures are isolated per campaign and per credential set.
type ControlLoop struct {
	repo     port.SettingsRepository
	platform port.AdPlatform
	spend    *SpendAggregator
	executor *Executor
	locker   port.CampaignLocker
	metrics  port.Metrics
	logger   *slog.Logger
	tracer   trace.Tracer
	cfg      LoopConfig

	now     func() time.Time
	running atomic.Bool
}

var _ port.ControlUseCase = (*ControlLoop)(nil)

// NewControlLoop wires a control loop. Zero config values fall back to one
// worker, a ten minute deadline, a two minute lock and the UTC day.
func NewControlLoop(
	repo port.SettingsRepository,
	platform port.AdPlatform,
	executor *Executor,
	locker port.CampaignLocker,
	metrics port.Metrics,
	logger *slog.Logger,
	cfg LoopConfig,
) *ControlLoop {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.CampaignWorkers <= 0 {
		cfg.CampaignWorkers = 1
	}
	if cfg.TickDeadline <= 0 {
		cfg.TickDeadline = 10 * time.Minute
	}
	if cfg.LockTTL <= 0 {
		cfg.LockTTL = 2 * time.Minute
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	return &ControlLoop{
		repo:     repo,
		platform: platform,
		spend:    NewSpendAggregator(platform),
		executor: executor,
		locker:   locker,
		metrics:  metrics,
		logger:   logger,
		tracer:   otel.Tracer("spendguard/internal/adapter/usecase"),
		cfg:      cfg,
		now:      time.Now,
	}
}

// Tick runs one pass over every enabled credential set. A tick that starts
// while another is running is skipped. Only a failure to list credentials
// is returned as an error; per-set failures are logged and reported.
func (l *ControlLoop) Tick(ctx context.Context) (*port.TickReport, error) {
	report := &port.TickReport{TickID: uuid.New(), StartedAt: l.now()}
	log := l.logger.With(slog.String("tick_id", report.TickID.String()))
	if !l.running.CompareAndSwap(false, true) {
		log.Info("tick skipped, previous tick still running")
		report.Skipped = true
		return report, nil
	}
	defer l.running.Store(false)

	ctx, span := l.tracer.Start(ctx, "control.tick", trace.WithAttributes(attribute.String("tick_id", report.TickID.String())))
	defer span.End()
	ctx, cancel := context.WithTimeout(ctx, l.cfg.TickDeadline)
	defer cancel()

	creds, err := l.repo.ListEnabledCredentials(ctx)
	if err != nil {
		if !errors.Is(err, port.ErrPersistence) {
			err = &port.PersistenceError{Op: "list credentials", Err: err}
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "list credentials")
		log.Error("tick aborted", slog.Any("error", err))
		return report, err
	}

	report.Credentials = make([]port.CredentialReport, len(creds))
	var g errgroup.Group
	g.SetLimit(l.cfg.Workers)
	for i, c := range creds {
		g.Go(func() error {
			rep, err := l.runCredentials(ctx, log, c)
			if err != nil {
				rep.Error = err.Error()
				log.Warn("credential set pass finished with errors",
					slog.String("credentials_id", c.ID.String()),
					slog.Any("error", err),
				)
			}
			report.Credentials[i] = rep
			return nil
		})
	}
	_ = g.Wait()

	report.Duration = l.now().Sub(report.StartedAt)
	failed := 0
	for _, r := range report.Credentials {
		if r.Error != "" {
			failed++
		}
	}
	l.metrics.Tick(report.Duration, failed)
	log.Info("tick finished",
		slog.Int("credentials", len(creds)),
		slog.Int("failed_credentials", failed),
		slog.Duration("duration", report.Duration),
	)
	return report, nil
}

// RunCredentials evaluates one credential set outside the periodic tick.
func (l *ControlLoop) RunCredentials(ctx context.Context, id uuid.UUID) (*port.CredentialReport, error) {
	creds, err := l.repo.GetCredentials(ctx, id)
	if err != nil {
		if !errors.Is(err, port.ErrPersistence) {
			err = &port.PersistenceError{Op: "get credentials", Err: err}
		}
		return nil, err
	}
	if creds == nil || !creds.Enabled {
		return nil, fmt.Errorf("%w: %s", port.ErrCredentialsNotFound, id)
	}

	ctx, cancel := context.WithTimeout(ctx, l.cfg.TickDeadline)
	defer cancel()
	rep, err := l.runCredentials(ctx, l.logger, *creds)
	if err != nil {
		rep.Error = err.Error()
	}
	return &rep, err
}

// runCredentials processes the campaigns of one credential set. The
// returned error aggregates every campaign failure.
func (l *ControlLoop) runCredentials(ctx context.Context, log *slog.Logger, creds domain.Credentials) (port.CredentialReport, error) {
	rep := port.CredentialReport{CredentialsID: creds.ID}
	log = log.With(slog.String("credentials_id", creds.ID.String()))
	if err := ctx.Err(); err != nil {
		return rep, fmt.Errorf("credential set not started: %w", err)
	}

	ctx, span := l.tracer.Start(ctx, "control.credentials", trace.WithAttributes(attribute.String("credentials_id", creds.ID.String())))
	defer span.End()

	settings, err := l.repo.ListCampaignSettings(ctx, creds.ID)
	if err != nil {
		if !errors.Is(err, port.ErrPersistence) {
			err = &port.PersistenceError{Op: "list campaign settings", Err: err}
		}
		span.RecordError(err)
		return rep, err
	}
	if len(settings) == 0 {
		return rep, nil
	}

	now := l.now().In(l.cfg.Location)
	today := domain.DateOf(now)

	campaigns, err := l.platform.ListCampaigns(ctx, creds)
	if err != nil {
		span.RecordError(err)
		return rep, l.credentialsFailed(ctx, log, creds, settings, err, now)
	}
	views := domain.MergeCampaigns(campaigns, settings, l.cfg.DefaultDailyLimit)

	ids := make([]string, 0, len(views))
	for _, v := range views {
		if v.Kind == domain.ViewConfigured {
			ids = append(ids, v.CampaignID())
		}
	}
	spend, spendErr := l.spend.TodaySpend(ctx, creds, ids, today)
	if spendErr != nil {
		if errors.Is(spendErr, port.ErrUnauthorized) {
			span.RecordError(spendErr)
			return rep, l.credentialsFailed(ctx, log, creds, settings, spendErr, now)
		}
		l.metrics.CampaignFailure("spend_" + string(port.KindOf(spendErr)))
		log.Warn("today's spend unavailable, using cache", slog.Any("error", spendErr))
	}

	var (
		mu   sync.Mutex
		merr *multierror.Error
		g    errgroup.Group
	)
	fail := func(err error) {
		mu.Lock()
		defer mu.Unlock()
		rep.Failed++
		merr = multierror.Append(merr, err)
	}
	g.SetLimit(l.cfg.CampaignWorkers)

	for _, v := range views {
		switch v.Kind {
		case domain.ViewUnconfigured:
			continue
		case domain.ViewMissingOnPlatform:
			l.executor.recordFailure(ctx, log.With(slog.String("campaign_id", v.CampaignID())), v.Setting.ID, errMissingOnPlatform, now)
			l.metrics.CampaignFailure(string(port.KindNotFound))
			fail(fmt.Errorf("campaign %s: %w", v.CampaignID(), errMissingOnPlatform))
			continue
		}

		ev := Evaluation{Credentials: creds, View: v, Now: now}
		ev.Spend, ev.SpendFresh = l.spendFor(v.Setting, spend, spendErr, today)
		g.Go(func() error {
			if ctx.Err() != nil {
				mu.Lock()
				rep.Abandoned++
				mu.Unlock()
				return nil
			}
			out, skipped, err := l.evaluate(ctx, log, ev)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case skipped:
				rep.Skipped++
			case err != nil:
				rep.Failed++
				merr = multierror.Append(merr, err)
			default:
				rep.Evaluated++
				if out.Applied {
					rep.Applied++
				}
			}
			return nil
		})
	}
	_ = g.Wait()

	if rep.Abandoned > 0 {
		log.Warn("tick deadline reached, campaigns abandoned", slog.Int("abandoned", rep.Abandoned))
	}
	return rep, merr.ErrorOrNil()
}

// evaluate runs one campaign pass under its lock. Once started, the pass is
// detached from the tick deadline and bounded by per-call timeouts instead.
func (l *ControlLoop) evaluate(ctx context.Context, log *slog.Logger, ev Evaluation) (*Outcome, bool, error) {
	ctx = context.WithoutCancel(ctx)
	key := ev.Credentials.ID.String() + ":" + ev.View.CampaignID()
	release, ok, err := l.locker.TryLock(ctx, key, l.cfg.LockTTL)
	if err != nil {
		l.metrics.CampaignFailure("lock")
		return nil, false, fmt.Errorf("campaign %s: lock: %w", ev.View.CampaignID(), err)
	}
	if !ok {
		log.Debug("campaign held by a concurrent pass", slog.String("campaign_id", ev.View.CampaignID()))
		return nil, true, nil
	}
	defer release()

	out, err := l.executor.ReconcileAndApply(ctx, ev)
	switch {
	case errors.Is(err, port.ErrStaleWrite):
		log.Info("campaign updated by a concurrent pass", slog.String("campaign_id", ev.View.CampaignID()))
		return out, true, nil
	case errors.Is(err, port.ErrUnauthorized):
		l.metrics.CampaignFailure(string(port.KindUnauthorized))
		l.metrics.CredentialsUnauthorized(ev.Credentials.ID)
		log.Error("credentials rejected by platform", slog.Bool("operator_attention", true), slog.Any("error", err))
		return nil, false, err
	case errors.Is(err, port.ErrPersistence):
		l.metrics.CampaignFailure("persistence")
		return out, false, err
	case err != nil:
		l.metrics.CampaignFailure(string(port.KindOf(err)))
		return nil, false, err
	}
	return out, false, nil
}

// spendFor picks the spend a campaign is evaluated with: fresh spend when
// the fetch succeeded, else spend cached earlier today, else unknown.
func (l *ControlLoop) spendFor(s domain.CampaignSetting, fresh map[string]decimal.Decimal, fetchErr error, today domain.Date) (decimal.NullDecimal, bool) {
	if fetchErr == nil {
		return decimal.NewNullDecimal(fresh[s.CampaignID]), true
	}
	if s.CachedDailySpend.Valid && s.LastCheckedAt != nil && domain.DateOf(s.LastCheckedAt.In(l.cfg.Location)) == today {
		return s.CachedDailySpend, false
	}
	return decimal.NullDecimal{}, false
}

// credentialsFailed handles a failure that stops a whole credential set.
// Rejected credentials are flagged for the operator and the error is stored
// on every setting of the set.
func (l *ControlLoop) credentialsFailed(ctx context.Context, log *slog.Logger, creds domain.Credentials, settings []domain.CampaignSetting, err error, now time.Time) error {
	if !errors.Is(err, port.ErrUnauthorized) {
		l.metrics.CampaignFailure(string(port.KindOf(err)))
		log.Warn("credential set skipped this tick", slog.String("kind", string(port.KindOf(err))), slog.Any("error", err))
		return err
	}

	l.metrics.CredentialsUnauthorized(creds.ID)
	log.Error("credentials rejected by platform",
		slog.Bool("operator_attention", true),
		slog.String("credentials_name", creds.Name),
		slog.Any("error", err),
	)
	msg := "credentials rejected by platform: " + err.Error()
	for _, s := range settings {
		wctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), l.executor.writeTimeout)
		if ferr := l.repo.RecordFailure(wctx, s.ID, msg, now); ferr != nil {
			log.Error("failed to record credential error", slog.String("campaign_id", s.CampaignID), slog.Any("error", ferr))
		}
		cancel()
	}
	return err
}

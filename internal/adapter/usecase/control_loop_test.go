package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"spendguard/internal/core/domain"
	"spendguard/internal/core/port"
	"spendguard/internal/core/port/mocks"
)

type recordingMetrics struct {
	port.NopMetrics

	mu           sync.Mutex
	unauthorized []uuid.UUID
	ticks        int
}

func (m *recordingMetrics) CredentialsUnauthorized(id uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.unauthorized = append(m.unauthorized, id)
}

func (m *recordingMetrics) Tick(time.Duration, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ticks++
}

type loopFixture struct {
	loop     *ControlLoop
	platform *mocks.MockAdPlatform
	repo     *mocks.MockSettingsRepository
	locker   *mocks.MockCampaignLocker
	pub      *mocks.MockStatusPublisher
	metrics  *recordingMetrics
}

func newLoopFixture(t *testing.T, cfg LoopConfig) *loopFixture {
	f := &loopFixture{
		platform: mocks.NewMockAdPlatform(t),
		repo:     mocks.NewMockSettingsRepository(t),
		locker:   mocks.NewMockCampaignLocker(t),
		pub:      mocks.NewMockStatusPublisher(t),
		metrics:  &recordingMetrics{},
	}
	if cfg.Location == nil {
		cfg.Location = msk
	}
	exec := NewExecutor(f.platform, f.repo, f.pub, f.metrics, discardLogger(), time.Second)
	f.loop = NewControlLoop(f.repo, f.platform, exec, f.locker, f.metrics, discardLogger(), cfg)
	f.loop.now = func() time.Time { return monday(12, 0) }
	return f
}

func (f *loopFixture) allowLocks() {
	f.locker.EXPECT().TryLock(mock.Anything, mock.Anything, mock.Anything).Return(func() {}, true, nil).Maybe()
}

// TestUnauthorizedCredentialsIsolated runs two credential sets where one is
// always rejected; the other is still evaluated and acted upon.
func TestUnauthorizedCredentialsIsolated(t *testing.T) {
	f := newLoopFixture(t, LoopConfig{Workers: 2, CampaignWorkers: 2})
	f.allowLocks()
	bad, good := testCreds("bad"), testCreds("good")
	badSetting := budgetSetting(bad, "1", 1000)
	badSetting.ID = 10
	goodSetting := budgetSetting(good, "2", 1000)
	goodSetting.ID = 20
	today := domain.DateOf(monday(12, 0))
	unauthorized := &port.PlatformError{Kind: port.KindUnauthorized, Status: 401, Attempts: 1}

	f.repo.EXPECT().ListEnabledCredentials(mock.Anything).Return([]domain.Credentials{bad, good}, nil)
	f.repo.EXPECT().ListCampaignSettings(mock.Anything, bad.ID).Return([]domain.CampaignSetting{badSetting}, nil)
	f.repo.EXPECT().ListCampaignSettings(mock.Anything, good.ID).Return([]domain.CampaignSetting{goodSetting}, nil)

	f.platform.EXPECT().ListCampaigns(mock.Anything, bad).Return(nil, unauthorized)
	f.repo.EXPECT().RecordFailure(mock.Anything, int64(10), mock.AnythingOfType("string"), mock.Anything).Return(nil).Once()

	f.platform.EXPECT().ListCampaigns(mock.Anything, good).
		Return([]domain.Campaign{{ID: "2", State: domain.StateRunning}}, nil)
	f.platform.EXPECT().DailySpend(mock.Anything, good, today, []string{"2"}).
		Return([]domain.SpendRecord{{CampaignID: "2", Date: today, Amount: decimal.NewFromInt(1500)}}, nil)
	f.platform.EXPECT().DeactivateCampaign(mock.Anything, good, "2").Return(domain.StateInactive, nil).Once()
	f.repo.EXPECT().SaveEvaluation(mock.Anything, mock.MatchedBy(func(upd domain.SettingUpdate) bool {
		return upd.SettingID == 20 && upd.Status == domain.StatusPausedByLimit
	})).Return(nil).Once()
	f.pub.EXPECT().PublishStatusChange(mock.Anything, mock.Anything).Return(nil).Once()

	report, err := f.loop.Tick(t.Context())
	require.NoError(t, err)
	require.Len(t, report.Credentials, 2)

	badReport, goodReport := report.Credentials[0], report.Credentials[1]
	assert.Equal(t, bad.ID, badReport.CredentialsID)
	assert.NotEmpty(t, badReport.Error)
	assert.Equal(t, good.ID, goodReport.CredentialsID)
	assert.Empty(t, goodReport.Error)
	assert.Equal(t, 1, goodReport.Evaluated)
	assert.Equal(t, 1, goodReport.Applied)

	assert.Equal(t, []uuid.UUID{bad.ID}, f.metrics.unauthorized)
	assert.Equal(t, 1, f.metrics.ticks)
}

// TestSpendFailureFallsBackToTodaysCache evaluates with spend cached
// earlier today and treats older cache as unknown.
func TestSpendFailureFallsBackToTodaysCache(t *testing.T) {
	f := newLoopFixture(t, LoopConfig{})
	f.allowLocks()
	creds := testCreds("a")
	morning := monday(8, 0)
	yesterday := monday(20, 0).AddDate(0, 0, -1)

	fresh := budgetSetting(creds, "1", 1000)
	fresh.ID = 1
	fresh.LastCheckedAt = &morning
	fresh.CachedDailySpend = amount(1200)

	stale := budgetSetting(creds, "2", 1000)
	stale.ID = 2
	stale.LastCheckedAt = &yesterday
	stale.CachedDailySpend = amount(5000)

	f.repo.EXPECT().GetCredentials(mock.Anything, creds.ID).Return(&creds, nil)
	f.repo.EXPECT().ListCampaignSettings(mock.Anything, creds.ID).Return([]domain.CampaignSetting{fresh, stale}, nil)
	f.platform.EXPECT().ListCampaigns(mock.Anything, creds).Return([]domain.Campaign{
		{ID: "1", State: domain.StateRunning},
		{ID: "2", State: domain.StateRunning},
	}, nil)
	f.platform.EXPECT().DailySpend(mock.Anything, creds, mock.Anything, []string{"1", "2"}).
		Return(nil, &port.PlatformError{Kind: port.KindRateLimited, Status: 429, Attempts: 3})

	f.platform.EXPECT().DeactivateCampaign(mock.Anything, creds, "1").Return(domain.StateInactive, nil).Once()
	f.repo.EXPECT().SaveEvaluation(mock.Anything, mock.MatchedBy(func(upd domain.SettingUpdate) bool {
		return upd.SettingID == 1 && !upd.SpendFresh && upd.Status == domain.StatusPausedByLimit
	})).Return(nil).Once()
	f.pub.EXPECT().PublishStatusChange(mock.Anything, mock.Anything).Return(nil).Once()

	rep, err := f.loop.RunCredentials(t.Context(), creds.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, rep.Evaluated)
	assert.Equal(t, 1, rep.Applied)
}

func TestTickSkippedWhileRunning(t *testing.T) {
	f := newLoopFixture(t, LoopConfig{})
	f.loop.running.Store(true)

	report, err := f.loop.Tick(t.Context())
	require.NoError(t, err)
	assert.True(t, report.Skipped)
	assert.Empty(t, report.Credentials)
}

func TestTickFailsWhenCredentialsUnavailable(t *testing.T) {
	f := newLoopFixture(t, LoopConfig{})
	f.repo.EXPECT().ListEnabledCredentials(mock.Anything).Return(nil, assert.AnError).Once()
	f.repo.EXPECT().ListEnabledCredentials(mock.Anything).Return(nil, nil).Once()

	_, err := f.loop.Tick(t.Context())
	assert.ErrorIs(t, err, port.ErrPersistence)

	// the running flag is released for the next tick
	report, err := f.loop.Tick(t.Context())
	require.NoError(t, err)
	assert.False(t, report.Skipped)
}

// TestTickDeadlineAbandonsPendingCampaigns holds the only campaign worker
// past the deadline so the second campaign is never started.
func TestTickDeadlineAbandonsPendingCampaigns(t *testing.T) {
	f := newLoopFixture(t, LoopConfig{CampaignWorkers: 1, TickDeadline: 20 * time.Millisecond})
	creds := testCreds("a")
	first := budgetSetting(creds, "1", 1000)
	second := budgetSetting(creds, "2", 1000)
	second.ID = 2

	f.repo.EXPECT().GetCredentials(mock.Anything, creds.ID).Return(&creds, nil)
	f.repo.EXPECT().ListCampaignSettings(mock.Anything, creds.ID).Return([]domain.CampaignSetting{first, second}, nil)
	f.platform.EXPECT().ListCampaigns(mock.Anything, creds).Return([]domain.Campaign{
		{ID: "1", State: domain.StateRunning},
		{ID: "2", State: domain.StateRunning},
	}, nil)
	f.platform.EXPECT().DailySpend(mock.Anything, creds, mock.Anything, []string{"1", "2"}).Return(nil, nil)

	f.locker.EXPECT().TryLock(mock.Anything, creds.ID.String()+":1", mock.Anything).
		RunAndReturn(func(ctx context.Context, _ string, _ time.Duration) (func(), bool, error) {
			time.Sleep(60 * time.Millisecond)
			return func() {}, true, ctx.Err()
		}).Once()
	f.repo.EXPECT().SaveEvaluation(mock.Anything, mock.MatchedBy(func(upd domain.SettingUpdate) bool {
		return upd.SettingID == 1
	})).Return(nil).Once()

	rep, err := f.loop.RunCredentials(t.Context(), creds.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, rep.Evaluated)
	assert.Equal(t, 1, rep.Abandoned)
}

func TestLockedCampaignIsSkipped(t *testing.T) {
	f := newLoopFixture(t, LoopConfig{})
	creds := testCreds("a")
	s := budgetSetting(creds, "1", 1000)

	f.repo.EXPECT().GetCredentials(mock.Anything, creds.ID).Return(&creds, nil)
	f.repo.EXPECT().ListCampaignSettings(mock.Anything, creds.ID).Return([]domain.CampaignSetting{s}, nil)
	f.platform.EXPECT().ListCampaigns(mock.Anything, creds).Return([]domain.Campaign{{ID: "1", State: domain.StateRunning}}, nil)
	f.platform.EXPECT().DailySpend(mock.Anything, creds, mock.Anything, []string{"1"}).Return(nil, nil)
	f.locker.EXPECT().TryLock(mock.Anything, mock.Anything, mock.Anything).Return(nil, false, nil).Once()

	rep, err := f.loop.RunCredentials(t.Context(), creds.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, rep.Skipped)
	assert.Zero(t, rep.Evaluated)
}

func TestMissingCampaignIsFlagged(t *testing.T) {
	f := newLoopFixture(t, LoopConfig{})
	f.allowLocks()
	creds := testCreds("a")
	kept := budgetSetting(creds, "1", 1000)
	gone := budgetSetting(creds, "3", 1000)
	gone.ID = 3

	f.repo.EXPECT().GetCredentials(mock.Anything, creds.ID).Return(&creds, nil)
	f.repo.EXPECT().ListCampaignSettings(mock.Anything, creds.ID).Return([]domain.CampaignSetting{kept, gone}, nil)
	f.platform.EXPECT().ListCampaigns(mock.Anything, creds).Return([]domain.Campaign{
		{ID: "1", State: domain.StateRunning},
		{ID: "7", State: domain.StateRunning},
	}, nil)
	f.platform.EXPECT().DailySpend(mock.Anything, creds, mock.Anything, []string{"1"}).Return(nil, nil)
	f.repo.EXPECT().RecordFailure(mock.Anything, int64(3), errMissingOnPlatform.Error(), monday(12, 0)).Return(nil).Once()
	f.repo.EXPECT().SaveEvaluation(mock.Anything, mock.MatchedBy(func(upd domain.SettingUpdate) bool {
		return upd.SettingID == 1
	})).Return(nil).Once()

	rep, err := f.loop.RunCredentials(t.Context(), creds.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "campaign 3")
	assert.Equal(t, 1, rep.Evaluated)
	assert.Equal(t, 1, rep.Failed)
}

func TestRunCredentialsUnknown(t *testing.T) {
	f := newLoopFixture(t, LoopConfig{})
	disabled := testCreds("off")
	disabled.Enabled = false
	unknown := uuid.New()

	f.repo.EXPECT().GetCredentials(mock.Anything, unknown).Return(nil, nil)
	f.repo.EXPECT().GetCredentials(mock.Anything, disabled.ID).Return(&disabled, nil)

	_, err := f.loop.RunCredentials(t.Context(), unknown)
	assert.ErrorIs(t, err, port.ErrCredentialsNotFound)
	_, err = f.loop.RunCredentials(t.Context(), disabled.ID)
	assert.ErrorIs(t, err, port.ErrCredentialsNotFound)
}

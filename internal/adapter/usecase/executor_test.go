package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"spendguard/internal/core/domain"
	"spendguard/internal/core/port"
)

// TestBudgetPauseIssuedOncePerDay covers the first over-limit pass of a day:
// one deactivate call and the pause date set to today.
func TestBudgetPauseIssuedOncePerDay(t *testing.T) {
	exec, platform, repo, pub := newTestExecutor(t)
	creds := testCreds("a")
	s := budgetSetting(creds, "1", 1000)
	now := monday(12, 0)

	platform.EXPECT().DeactivateCampaign(mock.Anything, creds, "1").Return(domain.StateInactive, nil).Once()

	var saved domain.SettingUpdate
	repo.EXPECT().SaveEvaluation(mock.Anything, mock.AnythingOfType("domain.SettingUpdate")).
		Run(func(_ context.Context, upd domain.SettingUpdate) { saved = upd }).
		Return(nil).Once()

	var event domain.StatusChange
	pub.EXPECT().PublishStatusChange(mock.Anything, mock.AnythingOfType("domain.StatusChange")).
		Run(func(_ context.Context, ev domain.StatusChange) { event = ev }).
		Return(nil).Once()

	out, err := exec.ReconcileAndApply(t.Context(), Evaluation{
		Credentials: creds,
		View:        configured(s, domain.StateRunning),
		Spend:       amount(1200),
		SpendFresh:  true,
		Now:         now,
	})
	require.NoError(t, err)
	assert.True(t, out.Applied)
	assert.True(t, out.Saved)
	assert.Equal(t, domain.ActionPause, out.Plan.Action)
	assert.Equal(t, domain.ReasonBudgetExceeded, out.Plan.Reason)

	require.NotNil(t, saved.LimitPauseDate)
	assert.Equal(t, domain.DateOf(now), *saved.LimitPauseDate)
	assert.Equal(t, domain.StatusPausedByLimit, saved.Status)
	assert.Equal(t, domain.StateInactive, saved.OzonStatus)
	assert.Equal(t, int64(3), saved.ExpectedVersion)
	assert.True(t, saved.DailySpend.Equal(decimal.NewFromInt(1200)))

	assert.Equal(t, domain.StatusActiveControlled, event.FromStatus)
	assert.Equal(t, domain.StatusPausedByLimit, event.ToStatus)
	assert.Equal(t, "1", event.CampaignID)
}

// TestBudgetPauseIdempotentWithinDay re-runs the pass after the pause was
// recorded: no platform call, no new pause date.
func TestBudgetPauseIdempotentWithinDay(t *testing.T) {
	exec, _, repo, _ := newTestExecutor(t)
	creds := testCreds("a")
	now := monday(15, 0)
	today := domain.DateOf(now)
	s := budgetSetting(creds, "1", 1000)
	s.Status = domain.StatusPausedByLimit
	s.LastDailyLimitPauseDate = &today

	repo.EXPECT().SaveEvaluation(mock.Anything, mock.MatchedBy(func(upd domain.SettingUpdate) bool {
		return upd.Status == domain.StatusPausedByLimit && upd.LimitPauseDate == nil && upd.SpendFresh
	})).Return(nil).Times(3)

	for range 3 {
		out, err := exec.ReconcileAndApply(t.Context(), Evaluation{
			Credentials: creds,
			View:        configured(s, domain.StateInactive),
			Spend:       amount(1500),
			SpendFresh:  true,
			Now:         now,
		})
		require.NoError(t, err)
		assert.False(t, out.Applied)
		assert.Equal(t, domain.ActionNone, out.Plan.Action)
	}
}

// TestNoActionRefreshesCacheOnly checks that a none decision calls nothing on
// the platform, keeps status and pause date, and refreshes the cache.
func TestNoActionRefreshesCacheOnly(t *testing.T) {
	exec, _, repo, _ := newTestExecutor(t)
	creds := testCreds("a")
	yesterday := domain.DateOf(monday(12, 0).AddDate(0, 0, -1))
	s := budgetSetting(creds, "1", 1000)
	s.LastDailyLimitPauseDate = &yesterday

	var saved domain.SettingUpdate
	repo.EXPECT().SaveEvaluation(mock.Anything, mock.AnythingOfType("domain.SettingUpdate")).
		Run(func(_ context.Context, upd domain.SettingUpdate) { saved = upd }).
		Return(nil).Once()

	out, err := exec.ReconcileAndApply(t.Context(), Evaluation{
		Credentials: creds,
		View:        configured(s, domain.StateRunning),
		Spend:       amount(250),
		SpendFresh:  true,
		Now:         monday(12, 0),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ActionNone, out.Plan.Action)
	assert.False(t, out.Applied)
	assert.Equal(t, domain.StatusActiveControlled, saved.Status)
	assert.Nil(t, saved.LimitPauseDate)
	assert.True(t, saved.SpendFresh)
	assert.True(t, saved.DailySpend.Equal(decimal.NewFromInt(250)))
	assert.Equal(t, domain.StateRunning, saved.OzonStatus)
	assert.Equal(t, monday(12, 0), saved.CheckedAt)
}

func TestNoActionWithoutFreshSpendWritesNothing(t *testing.T) {
	exec, _, _, _ := newTestExecutor(t)
	creds := testCreds("a")

	out, err := exec.ReconcileAndApply(t.Context(), Evaluation{
		Credentials: creds,
		View:        configured(budgetSetting(creds, "1", 1000), domain.StateRunning),
		Now:         monday(12, 0),
	})
	require.NoError(t, err)
	assert.False(t, out.Saved)
}

// TestControlDisabledNeverMutatesPlatform hands a previously paused
// campaign back to the user without touching the platform.
func TestControlDisabledNeverMutatesPlatform(t *testing.T) {
	exec, _, repo, pub := newTestExecutor(t)
	creds := testCreds("a")
	s := budgetSetting(creds, "1", 1000)
	s.BudgetControlEnabled = false
	s.Status = domain.StatusPausedByLimit

	repo.EXPECT().SaveEvaluation(mock.Anything, mock.MatchedBy(func(upd domain.SettingUpdate) bool {
		return upd.Status == domain.StatusUserManaged
	})).Return(nil).Once()
	pub.EXPECT().PublishStatusChange(mock.Anything, mock.AnythingOfType("domain.StatusChange")).Return(nil).Once()

	out, err := exec.ReconcileAndApply(t.Context(), Evaluation{
		Credentials: creds,
		View:        configured(s, domain.StateInactive),
		Spend:       amount(5000),
		SpendFresh:  true,
		Now:         monday(12, 0),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ReasonUserManaged, out.Plan.Reason)
	assert.False(t, out.Applied)
}

// TestGatewayFailureLeavesSettingUntouched records only the sticky error so
// the next pass retries the pause.
func TestGatewayFailureLeavesSettingUntouched(t *testing.T) {
	exec, platform, repo, _ := newTestExecutor(t)
	creds := testCreds("a")
	s := budgetSetting(creds, "1", 1000)
	now := monday(12, 0)
	perr := &port.PlatformError{Kind: port.KindServerError, Status: 503, Attempts: 3}

	platform.EXPECT().DeactivateCampaign(mock.Anything, creds, "1").Return(domain.CampaignState(""), perr).Once()
	repo.EXPECT().RecordFailure(mock.Anything, int64(1), perr.Error(), now).Return(nil).Once()

	out, err := exec.ReconcileAndApply(t.Context(), Evaluation{
		Credentials: creds,
		View:        configured(s, domain.StateRunning),
		Spend:       amount(1200),
		SpendFresh:  true,
		Now:         now,
	})
	assert.Nil(t, out)
	var aerr *ActionError
	require.ErrorAs(t, err, &aerr)
	assert.Equal(t, domain.ActionPause, aerr.Action)
	assert.ErrorIs(t, err, port.ErrServerError)
}

// TestLiveStateAlreadyMatches skips the platform call when the campaign is
// already stopped, e.g. after a pause whose write was lost.
func TestLiveStateAlreadyMatches(t *testing.T) {
	exec, _, repo, pub := newTestExecutor(t)
	creds := testCreds("a")
	s := budgetSetting(creds, "1", 1000)

	repo.EXPECT().SaveEvaluation(mock.Anything, mock.MatchedBy(func(upd domain.SettingUpdate) bool {
		return upd.Status == domain.StatusPausedByLimit && upd.LimitPauseDate != nil
	})).Return(nil).Once()
	pub.EXPECT().PublishStatusChange(mock.Anything, mock.Anything).Return(nil).Once()

	out, err := exec.ReconcileAndApply(t.Context(), Evaluation{
		Credentials: creds,
		View:        configured(s, domain.StateInactive),
		Spend:       amount(1200),
		SpendFresh:  true,
		Now:         monday(12, 0),
	})
	require.NoError(t, err)
	assert.False(t, out.Applied)
	assert.Equal(t, domain.ActionPause, out.Plan.Action)
}

func TestScheduleResumeActivates(t *testing.T) {
	exec, platform, repo, pub := newTestExecutor(t)
	creds := testCreds("a")
	start, end := domain.TimeOfDay(9*60), domain.TimeOfDay(18*60)
	s := domain.CampaignSetting{
		ID:                7,
		CredentialsID:     creds.ID,
		CampaignID:        "5",
		SchedulingEnabled: true,
		ScheduleStart:     &start,
		ScheduleEnd:       &end,
		Status:            domain.StatusPausedBySchedule,
	}

	platform.EXPECT().ActivateCampaign(mock.Anything, creds, "5").Return(domain.StateRunning, nil).Once()
	repo.EXPECT().SaveEvaluation(mock.Anything, mock.MatchedBy(func(upd domain.SettingUpdate) bool {
		return upd.Status == domain.StatusActiveControlled && upd.OzonStatus == domain.StateRunning
	})).Return(nil).Once()
	pub.EXPECT().PublishStatusChange(mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()

	out, err := exec.ReconcileAndApply(t.Context(), Evaluation{
		Credentials: creds,
		View:        configured(s, domain.StateInactive),
		Spend:       amount(0),
		SpendFresh:  true,
		Now:         monday(10, 0),
	})
	require.NoError(t, err)
	assert.True(t, out.Applied)
	assert.Equal(t, domain.ReasonScheduleOpen, out.Plan.Reason)
}

func TestPersistenceFailureAfterPlatformCall(t *testing.T) {
	exec, platform, repo, _ := newTestExecutor(t)
	creds := testCreds("a")
	s := budgetSetting(creds, "1", 1000)

	platform.EXPECT().DeactivateCampaign(mock.Anything, creds, "1").Return(domain.StateInactive, nil).Once()
	repo.EXPECT().SaveEvaluation(mock.Anything, mock.Anything).Return(errors.New("connection reset")).Once()

	out, err := exec.ReconcileAndApply(t.Context(), Evaluation{
		Credentials: creds,
		View:        configured(s, domain.StateRunning),
		Spend:       amount(1200),
		SpendFresh:  true,
		Now:         monday(12, 0),
	})
	require.ErrorIs(t, err, port.ErrPersistence)
	assert.True(t, out.Applied)
	assert.False(t, out.Saved)
}

func TestPersistenceWriteOutlivesCancelledCaller(t *testing.T) {
	exec, _, repo, _ := newTestExecutor(t)
	creds := testCreds("a")
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	repo.EXPECT().SaveEvaluation(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ domain.SettingUpdate) error { return ctx.Err() }).Once()

	_, err := exec.ReconcileAndApply(ctx, Evaluation{
		Credentials: creds,
		View:        configured(budgetSetting(creds, "1", 1000), domain.StateRunning),
		Spend:       amount(10),
		SpendFresh:  true,
		Now:         monday(12, 0),
	})
	require.NoError(t, err)
}

func TestStaleWriteIsReported(t *testing.T) {
	exec, _, repo, _ := newTestExecutor(t)
	creds := testCreds("a")

	repo.EXPECT().SaveEvaluation(mock.Anything, mock.Anything).Return(port.ErrStaleWrite).Once()

	_, err := exec.ReconcileAndApply(t.Context(), Evaluation{
		Credentials: creds,
		View:        configured(budgetSetting(creds, "1", 1000), domain.StateRunning),
		Spend:       amount(10),
		SpendFresh:  true,
		Now:         monday(12, 0).Add(time.Minute),
	})
	assert.ErrorIs(t, err, port.ErrStaleWrite)
}

// TestSchedulePauseWithoutFreshSpendStoresLiveStatus pauses on a closed
// window while statistics are unavailable: the confirmed platform status is
// stored, the spend cache is left alone.
func TestSchedulePauseWithoutFreshSpendStoresLiveStatus(t *testing.T) {
	exec, platform, repo, pub := newTestExecutor(t)
	creds := testCreds("a")
	start, end := domain.TimeOfDay(9*60), domain.TimeOfDay(18*60)
	days := domain.NewWeekdaySet(time.Monday)
	s := budgetSetting(creds, "1", 1000)
	s.SchedulingEnabled = true
	s.ScheduleStart, s.ScheduleEnd, s.ScheduleDays = &start, &end, &days

	platform.EXPECT().DeactivateCampaign(mock.Anything, creds, "1").Return(domain.StateInactive, nil).Once()

	var saved domain.SettingUpdate
	repo.EXPECT().SaveEvaluation(mock.Anything, mock.AnythingOfType("domain.SettingUpdate")).
		Run(func(_ context.Context, upd domain.SettingUpdate) { saved = upd }).
		Return(nil).Once()
	pub.EXPECT().PublishStatusChange(mock.Anything, mock.Anything).Return(nil).Once()

	out, err := exec.ReconcileAndApply(t.Context(), Evaluation{
		Credentials: creds,
		View:        configured(s, domain.StateRunning),
		Spend:       amount(100),
		SpendFresh:  false,
		Now:         monday(20, 0),
	})
	require.NoError(t, err)
	assert.True(t, out.Applied)
	assert.Equal(t, domain.ReasonScheduleClosed, out.Plan.Reason)

	assert.Equal(t, domain.StatusPausedBySchedule, saved.Status)
	assert.Equal(t, domain.StateInactive, saved.OzonStatus)
	assert.False(t, saved.SpendFresh)
	assert.Nil(t, saved.LimitPauseDate)
}

// TestLiveStatusDriftIsStored writes the platform status even when nothing
// else changed and spend is not fresh.
func TestLiveStatusDriftIsStored(t *testing.T) {
	exec, _, repo, pub := newTestExecutor(t)
	creds := testCreds("a")
	s := budgetSetting(creds, "1", 1000)

	repo.EXPECT().SaveEvaluation(mock.Anything, mock.MatchedBy(func(upd domain.SettingUpdate) bool {
		return upd.OzonStatus == domain.StatePlanned && !upd.SpendFresh && upd.Status == domain.StatusActiveControlled
	})).Return(nil).Once()

	out, err := exec.ReconcileAndApply(t.Context(), Evaluation{
		Credentials: creds,
		View:        configured(s, domain.StatePlanned),
		Now:         monday(12, 0),
	})
	require.NoError(t, err)
	assert.True(t, out.Saved)
	pub.AssertNotCalled(t, "PublishStatusChange", mock.Anything, mock.Anything)
}

// TestBudgetPauseOnPlannedCampaign stops a campaign that has not started yet
// so it cannot start later the same day over the limit.
func TestBudgetPauseOnPlannedCampaign(t *testing.T) {
	exec, platform, repo, pub := newTestExecutor(t)
	creds := testCreds("a")
	s := budgetSetting(creds, "1", 1000)

	platform.EXPECT().DeactivateCampaign(mock.Anything, creds, "1").Return(domain.StateInactive, nil).Once()
	repo.EXPECT().SaveEvaluation(mock.Anything, mock.MatchedBy(func(upd domain.SettingUpdate) bool {
		return upd.Status == domain.StatusPausedByLimit && upd.LimitPauseDate != nil && upd.OzonStatus == domain.StateInactive
	})).Return(nil).Once()
	pub.EXPECT().PublishStatusChange(mock.Anything, mock.Anything).Return(nil).Once()

	out, err := exec.ReconcileAndApply(t.Context(), Evaluation{
		Credentials: creds,
		View:        configured(s, domain.StatePlanned),
		Spend:       amount(1200),
		SpendFresh:  true,
		Now:         monday(12, 0),
	})
	require.NoError(t, err)
	assert.True(t, out.Applied)
}

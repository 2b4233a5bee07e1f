package postgres

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"spendguard/internal/core/domain"
	"spendguard/internal/core/port"
	"spendguard/internal/core/port/mocks"
)

func ptr(s string) *string { return &s }

func TestSettingRowApply(t *testing.T) {
	raw := settingRow{
		limit:     ptr("1500.50"),
		spend:     ptr("0.00"),
		start:     ptr("09:00"),
		end:       ptr("24:00"),
		days:      []string{"Mon", "Wed"},
		pauseDate: ptr("2026-10-12"),
	}
	var s domain.CampaignSetting
	require.NoError(t, raw.apply(&s))

	assert.True(t, s.CustomDailyBudgetLimit.Valid)
	assert.True(t, s.CustomDailyBudgetLimit.Decimal.Equal(decimal.RequireFromString("1500.5")))
	assert.True(t, s.CachedDailySpend.Valid)
	require.NotNil(t, s.ScheduleStart)
	assert.Equal(t, domain.TimeOfDay(9*60), *s.ScheduleStart)
	require.NotNil(t, s.ScheduleEnd)
	assert.Equal(t, domain.EndOfDay, *s.ScheduleEnd)
	require.NotNil(t, s.ScheduleDays)
	assert.True(t, s.ScheduleDays.Contains(time.Wednesday))
	assert.False(t, s.ScheduleDays.Contains(time.Tuesday))
	require.NotNil(t, s.LastDailyLimitPauseDate)
	assert.Equal(t, domain.Date{Year: 2026, Month: time.October, Day: 12}, *s.LastDailyLimitPauseDate)
}

func TestSettingRowApplyNulls(t *testing.T) {
	var s domain.CampaignSetting
	require.NoError(t, settingRow{}.apply(&s))

	assert.False(t, s.CustomDailyBudgetLimit.Valid)
	assert.False(t, s.CachedDailySpend.Valid)
	assert.Nil(t, s.ScheduleStart)
	assert.Nil(t, s.ScheduleEnd)
	assert.Nil(t, s.ScheduleDays)
	assert.Nil(t, s.LastDailyLimitPauseDate)
}

func TestSettingRowApplyRejectsGarbage(t *testing.T) {
	cases := map[string]settingRow{
		"limit": {limit: ptr("lots")},
		"start": {start: ptr("9am")},
		"days":  {days: []string{"Someday"}},
		"date":  {pauseDate: ptr("12/10/2026")},
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			var s domain.CampaignSetting
			assert.Error(t, raw.apply(&s))
		})
	}
}

func TestSettingsListenerRunsChangedCredentials(t *testing.T) {
	control := mocks.NewMockControlUseCase(t)
	l := NewSettingsListener("", control, slog.New(slog.NewTextHandler(io.Discard, nil)))
	id := uuid.New()

	control.EXPECT().RunCredentials(mock.Anything, id).Return(&port.CredentialReport{CredentialsID: id, Evaluated: 2}, nil).Once()

	l.handle(t.Context(), &pq.Notification{Channel: SettingsChangedChannel, Extra: id.String()})
	l.handle(t.Context(), &pq.Notification{Channel: SettingsChangedChannel, Extra: "not-a-uuid"})
	l.handle(t.Context(), nil)
}

func TestSettingsListenerIgnoresUnknownCredentials(t *testing.T) {
	control := mocks.NewMockControlUseCase(t)
	l := NewSettingsListener("", control, slog.New(slog.NewTextHandler(io.Discard, nil)))
	id := uuid.New()

	control.EXPECT().RunCredentials(mock.Anything, id).Return(nil, port.ErrCredentialsNotFound).Once()

	l.handle(t.Context(), &pq.Notification{Channel: SettingsChangedChannel, Extra: id.String()})
}

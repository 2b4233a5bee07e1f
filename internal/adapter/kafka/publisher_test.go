package kafka

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spendguard/internal/core/domain"
)

type fakeWriter struct {
	msgs []kafka.Message
	err  error
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if _, ok := ctx.Deadline(); !ok {
		panic("write without deadline")
	}
	w.msgs = append(w.msgs, msgs...)
	return w.err
}

func (w *fakeWriter) Close() error { return nil }

func TestPublishStatusChange(t *testing.T) {
	w := &fakeWriter{}
	p := &Publisher{writer: w}
	ev := domain.StatusChange{
		EventID:       uuid.New(),
		SettingID:     7,
		CredentialsID: uuid.New(),
		CampaignID:    "42",
		Action:        domain.ActionPause,
		Reason:        domain.ReasonBudgetExceeded,
		FromStatus:    domain.StatusActiveControlled,
		ToStatus:      domain.StatusPausedByLimit,
		OzonStatus:    domain.StateInactive,
		DailySpend:    decimal.RequireFromString("1200.50"),
		OccurredAt:    time.Date(2026, 10, 12, 12, 0, 0, 0, time.FixedZone("MSK", 3*3600)),
	}

	require.NoError(t, p.PublishStatusChange(t.Context(), ev))
	require.Len(t, w.msgs, 1)

	msg := w.msgs[0]
	assert.Equal(t, ev.CredentialsID.String()+":42", string(msg.Key))
	assert.Equal(t, time.UTC, msg.Time.Location())

	var body map[string]any
	require.NoError(t, json.Unmarshal(msg.Value, &body))
	assert.Equal(t, "PAUSED_BY_LIMIT", body["to_status"])
	assert.Equal(t, "budget_exceeded", body["reason"])
	assert.Equal(t, "1200.5", body["daily_spend"])
}

func TestNewPublisherNeedsBrokers(t *testing.T) {
	_, err := NewPublisher(nil, "topic")
	assert.Error(t, err)
}

package postgres

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"spendguard/internal/core/port"
)

// SettingsChangedChannel is notified by a trigger on campaign_settings with
// the credentials id whenever a user-controlled column changes.
const SettingsChangedChannel = "campaign_settings_changed"

// SettingsListener re-evaluates a credential set as soon as its settings
// change instead of waiting for the next tick.
type SettingsListener struct {
	connStr string
	control port.ControlUseCase
	logger  *slog.Logger
}

// NewSettingsListener creates a listener on connStr.
func NewSettingsListener(connStr string, control port.ControlUseCase, logger *slog.Logger) *SettingsListener {
	return &SettingsListener{connStr: connStr, control: control, logger: logger}
}

// Run listens until ctx is cancelled. Connection loss is handled by the
// driver, which reconnects and delivers a nil notification afterwards.
func (l *SettingsListener) Run(ctx context.Context) error {
	listener := pq.NewListener(l.connStr, time.Second, time.Minute, func(ev pq.ListenerEventType, err error) {
		switch ev {
		case pq.ListenerEventConnectionAttemptFailed, pq.ListenerEventDisconnected:
			l.logger.Warn("settings listener connection lost", slog.Any("error", err))
		case pq.ListenerEventReconnected:
			l.logger.Info("settings listener reconnected")
		}
	})
	defer listener.Close()

	if err := listener.Listen(SettingsChangedChannel); err != nil {
		return err
	}
	l.logger.Info("settings listener started", slog.String("channel", SettingsChangedChannel))

	for {
		select {
		case <-ctx.Done():
			return nil
		case n := <-listener.Notify:
			l.handle(ctx, n)
		case <-time.After(90 * time.Second):
			if err := listener.Ping(); err != nil {
				l.logger.Warn("settings listener ping failed", slog.Any("error", err))
			}
		}
	}
}

func (l *SettingsListener) handle(ctx context.Context, n *pq.Notification) {
	if n == nil {
		return
	}
	id, err := uuid.Parse(n.Extra)
	if err != nil {
		l.logger.Warn("malformed settings notification", slog.String("payload", n.Extra))
		return
	}
	rep, err := l.control.RunCredentials(ctx, id)
	switch {
	case errors.Is(err, port.ErrCredentialsNotFound):
		l.logger.Debug("settings changed for disabled credentials", slog.String("credentials_id", id.String()))
	case err != nil:
		l.logger.Warn("re-evaluation after settings change failed", slog.String("credentials_id", id.String()), slog.Any("error", err))
	default:
		l.logger.Info("re-evaluated after settings change",
			slog.String("credentials_id", id.String()),
			slog.Int("evaluated", rep.Evaluated),
			slog.Int("applied", rep.Applied),
		)
	}
}

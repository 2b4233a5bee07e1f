package usecase

import (
	"context"
	"log/slog"
	"time"

	"spendguard/internal/core/port"
)

// Scheduler drives control loop ticks on a fixed interval.
type Scheduler struct {
	control  port.ControlUseCase
	interval time.Duration
	logger   *slog.Logger
}

// NewScheduler creates a scheduler. A non-positive interval defaults to
// fifteen minutes.
func NewScheduler(control port.ControlUseCase, interval time.Duration, logger *slog.Logger) *Scheduler {
	if interval <= 0 {
		interval = 15 * time.Minute
	}
	return &Scheduler{control: control, interval: interval, logger: logger}
}

// Run ticks once immediately and then every interval until ctx is
// cancelled. Ticks run sequentially; an interval elapsing during a long tick
// is dropped. It returns nil on cancellation.
func (s *Scheduler) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started", slog.Duration("interval", s.interval))
	for {
		if _, err := s.control.Tick(ctx); err != nil {
			s.logger.Error("tick failed", slog.Any("error", err))
		}

		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return nil
		case <-ticker.C:
		}
	}
}

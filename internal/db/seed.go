package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// demoUser owns every seeded row so reseeding is idempotent.
var demoUser = uuid.MustParse("00000000-0000-4000-8000-000000000001")

type seedSetting struct {
	campaignID string
	limit      *string
	budget     bool
	scheduling bool
	start, end *string
	days       []string
}

func strp(s string) *string { return &s }

// Seed inserts a demo credential set and a spread of campaign settings
// covering budget control, scheduling, both and neither. Existing rows are
// left untouched.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	credsID := uuid.NewSHA1(demoUser, []byte("demo-credentials"))

	return pgx.BeginFunc(ctx, db, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `INSERT INTO performance_credentials
    (id, user_id, name, client_id, client_secret, enabled)
VALUES ($1, $2, $3, $4, $5, TRUE) ON CONFLICT DO NOTHING`,
			credsID, demoUser, "Demo store", "demo-client-id@advertising.performance.ozon.ru", "demo-client-secret")
		if err != nil {
			return fmt.Errorf("seed credentials: %w", err)
		}

		settings := []seedSetting{
			{campaignID: "1000001", limit: strp("1500.00"), budget: true},
			{campaignID: "1000002", scheduling: true, start: strp("09:00"), end: strp("21:00"), days: []string{"Mon", "Tue", "Wed", "Thu", "Fri"}},
			{campaignID: "1000003", limit: strp("800.00"), budget: true, scheduling: true, start: strp("10:00"), end: strp("18:00")},
			{campaignID: "1000004"},
		}
		for _, s := range settings {
			_, err = tx.Exec(ctx, `INSERT INTO campaign_settings
    (user_id, credentials_id, ozon_campaign_id, custom_daily_budget_limit, is_budget_control_enabled,
     scheduling_enabled, schedule_start_time, schedule_end_time, schedule_days)
VALUES ($1, $2, $3, $4::numeric, $5, $6, $7::time, $8::time, $9) ON CONFLICT DO NOTHING`,
				demoUser, credsID, s.campaignID, s.limit, s.budget, s.scheduling, s.start, s.end, s.days)
			if err != nil {
				return fmt.Errorf("seed campaign %s: %w", s.campaignID, err)
			}
		}
		return nil
	})
}

package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"spendguard/internal/core/domain"
	"spendguard/internal/core/port"
)

// SettingsRepository implements port.SettingsRepository using pgxpool for
// PostgreSQL.
type SettingsRepository struct {
	pool *pgxpool.Pool
}

var _ port.SettingsRepository = (*SettingsRepository)(nil)

// NewSettingsRepository returns a new repository instance.
func NewSettingsRepository(pool *pgxpool.Pool) *SettingsRepository {
	return &SettingsRepository{pool: pool}
}

const credentialsColumns = `id, user_id, name, client_id, client_secret, enabled`

// ListEnabledCredentials returns every enabled credential set.
func (r *SettingsRepository) ListEnabledCredentials(ctx context.Context) ([]domain.Credentials, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+credentialsColumns+` FROM performance_credentials WHERE enabled ORDER BY created_at, id`)
	if err != nil {
		return nil, &port.PersistenceError{Op: "list credentials", Err: err}
	}
	creds, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Credentials, error) {
		return scanCredentials(row)
	})
	if err != nil {
		return nil, &port.PersistenceError{Op: "list credentials", Err: err}
	}
	return creds, nil
}

// GetCredentials returns a credential set by id, or nil when it does not
// exist.
func (r *SettingsRepository) GetCredentials(ctx context.Context, id uuid.UUID) (*domain.Credentials, error) {
	c, err := scanCredentials(r.pool.QueryRow(ctx, `SELECT `+credentialsColumns+` FROM performance_credentials WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, &port.PersistenceError{Op: "get credentials", Err: err}
	}
	return &c, nil
}

func scanCredentials(row pgx.Row) (domain.Credentials, error) {
	var c domain.Credentials
	err := row.Scan(&c.ID, &c.UserID, &c.Name, &c.ClientID, &c.ClientSecret, &c.Enabled)
	return c, err
}

// ListCampaignSettings returns the settings bound to a credential set,
// ordered by campaign id. Money, time-of-day and date columns are read as
// text and parsed into domain types.
func (r *SettingsRepository) ListCampaignSettings(ctx context.Context, credentialsID uuid.UUID) ([]domain.CampaignSetting, error) {
	query := `
        SELECT
            id,
            user_id,
            credentials_id,
            ozon_campaign_id,
            custom_daily_budget_limit::text,
            is_budget_control_enabled,
            app_controlled_status,
            scheduling_enabled,
            to_char(schedule_start_time, 'HH24:MI'),
            to_char(schedule_end_time, 'HH24:MI'),
            schedule_days,
            last_checked_at,
            to_char(last_daily_limit_pause_date, 'YYYY-MM-DD'),
            cached_daily_spend::text,
            cached_ozon_status,
            last_error,
            last_error_at,
            version
        FROM campaign_settings
        WHERE credentials_id = $1
        ORDER BY ozon_campaign_id`
	rows, err := r.pool.Query(ctx, query, credentialsID)
	if err != nil {
		return nil, &port.PersistenceError{Op: "list campaign settings", Err: err}
	}
	settings, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CampaignSetting, error) {
		var (
			raw    settingRow
			s      domain.CampaignSetting
			status string
		)
		err := row.Scan(
			&s.ID,
			&s.UserID,
			&s.CredentialsID,
			&s.CampaignID,
			&raw.limit,
			&s.BudgetControlEnabled,
			&status,
			&s.SchedulingEnabled,
			&raw.start,
			&raw.end,
			&raw.days,
			&s.LastCheckedAt,
			&raw.pauseDate,
			&raw.spend,
			&s.CachedOzonStatus,
			&s.LastError,
			&s.LastErrorAt,
			&s.Version,
		)
		if err != nil {
			return s, err
		}
		s.Status = domain.ControlStatus(status)
		if err = raw.apply(&s); err != nil {
			return s, fmt.Errorf("campaign setting %d: %w", s.ID, err)
		}
		return s, nil
	})
	if err != nil {
		return nil, &port.PersistenceError{Op: "list campaign settings", Err: err}
	}
	return settings, nil
}

// settingRow holds the nullable text columns of a campaign_settings row.
type settingRow struct {
	limit, spend *string
	start, end   *string
	days         []string
	pauseDate    *string
}

func (r settingRow) apply(s *domain.CampaignSetting) error {
	var err error
	if s.CustomDailyBudgetLimit, err = nullDecimal(r.limit); err != nil {
		return fmt.Errorf("custom_daily_budget_limit: %w", err)
	}
	if s.CachedDailySpend, err = nullDecimal(r.spend); err != nil {
		return fmt.Errorf("cached_daily_spend: %w", err)
	}
	if s.ScheduleStart, err = timeOfDay(r.start); err != nil {
		return fmt.Errorf("schedule_start_time: %w", err)
	}
	if s.ScheduleEnd, err = timeOfDay(r.end); err != nil {
		return fmt.Errorf("schedule_end_time: %w", err)
	}
	if r.days != nil {
		set, err := domain.ParseWeekdays(r.days)
		if err != nil {
			return fmt.Errorf("schedule_days: %w", err)
		}
		s.ScheduleDays = &set
	}
	if r.pauseDate != nil {
		d, err := domain.ParseDate(*r.pauseDate)
		if err != nil {
			return fmt.Errorf("last_daily_limit_pause_date: %w", err)
		}
		s.LastDailyLimitPauseDate = &d
	}
	return nil
}

func nullDecimal(s *string) (decimal.NullDecimal, error) {
	if s == nil {
		return decimal.NullDecimal{}, nil
	}
	d, err := decimal.NewFromString(*s)
	if err != nil {
		return decimal.NullDecimal{}, err
	}
	return decimal.NewNullDecimal(d), nil
}

func timeOfDay(s *string) (*domain.TimeOfDay, error) {
	if s == nil {
		return nil, nil
	}
	t, err := domain.ParseTimeOfDay(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// SaveEvaluation applies one evaluation in a single statement guarded by the
// row version. The live platform status is always stored. Cached spend and
// last_checked_at change only when the spend is fresh, which also clears the
// sticky error. The pause date changes only
// for budget pauses.
func (r *SettingsRepository) SaveEvaluation(ctx context.Context, upd domain.SettingUpdate) error {
	var pauseDate *string
	if upd.LimitPauseDate != nil {
		d := upd.LimitPauseDate.String()
		pauseDate = &d
	}
	tag, err := r.pool.Exec(ctx, `
        UPDATE campaign_settings SET
            app_controlled_status       = $2,
            last_checked_at             = CASE WHEN $3::boolean THEN $4::timestamptz ELSE last_checked_at END,
            cached_daily_spend          = CASE WHEN $3::boolean THEN $5::numeric ELSE cached_daily_spend END,
            cached_ozon_status          = $6::text,
            last_error                  = CASE WHEN $3::boolean THEN '' ELSE last_error END,
            last_error_at               = CASE WHEN $3::boolean THEN NULL ELSE last_error_at END,
            last_daily_limit_pause_date = COALESCE($7::date, last_daily_limit_pause_date),
            version                     = version + 1,
            updated_at                  = now()
        WHERE id = $1 AND version = $8`,
		upd.SettingID,
		string(upd.Status),
		upd.SpendFresh,
		upd.CheckedAt,
		upd.DailySpend.String(),
		string(upd.OzonStatus),
		pauseDate,
		upd.ExpectedVersion,
	)
	if err != nil {
		return &port.PersistenceError{Op: "save evaluation", Err: err}
	}
	// A missing row is reported the same way: the pass worked on a setting
	// that no longer matches the store.
	if tag.RowsAffected() == 0 {
		return port.ErrStaleWrite
	}
	return nil
}

// RecordFailure stores sticky error text without touching status, cache or
// version.
func (r *SettingsRepository) RecordFailure(ctx context.Context, settingID int64, message string, at time.Time) error {
	_, err := r.pool.Exec(ctx, `UPDATE campaign_settings SET last_error = $2, last_error_at = $3, updated_at = now() WHERE id = $1`, settingID, message, at)
	if err != nil {
		return &port.PersistenceError{Op: "record failure", Err: err}
	}
	return nil
}

package configs

import (
	"fmt"
	"time"
	_ "time/tzdata"

	"github.com/shopspring/decimal"
)

// Control configures the control loop. Timezone fixes the single calendar
// day boundary used for spend statistics, the once-per-day pause guard and
// schedule windows.
type Control struct {
	// Enabled runs the built-in ticker. When false ticks only come from the
	// HTTP trigger.
	Enabled      bool          `env:"ENABLED" envDefault:"true"`
	Interval     time.Duration `env:"INTERVAL" envDefault:"15m"`
	TickDeadline time.Duration `env:"TICK_DEADLINE" envDefault:"10m"`
	// Workers bounds how many credential sets are processed concurrently.
	Workers int `env:"WORKERS" envDefault:"4"`
	// CampaignWorkers bounds concurrent campaigns within one credential set.
	CampaignWorkers int           `env:"CAMPAIGN_WORKERS" envDefault:"2"`
	LockTTL         time.Duration `env:"LOCK_TTL" envDefault:"2m"`
	// DefaultDailyLimit applies to campaigns without a custom limit. Zero
	// disables budget control for them.
	DefaultDailyLimit decimal.Decimal `env:"DEFAULT_DAILY_LIMIT" envDefault:"0"`
	Timezone          string          `env:"TIMEZONE" envDefault:"Europe/Moscow"`
}

// Location loads the configured time zone.
func (c Control) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load control timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

package configs

import "time"

// Ozon configures the resilient gateway to the Ozon Performance API.
// MaxAttempts counts every attempt including the first one; the delay
// before attempt n+1 is min(InitialDelay*2^(n-1), MaxDelay).
type Ozon struct {
	BaseURL           string        `env:"BASE_URL" envDefault:"https://api-performance.ozon.ru"`
	CallTimeout       time.Duration `env:"CALL_TIMEOUT" envDefault:"30s"`
	MaxAttempts       int           `env:"MAX_ATTEMPTS" envDefault:"3"`
	InitialDelay      time.Duration `env:"INITIAL_DELAY" envDefault:"1s"`
	MaxDelay          time.Duration `env:"MAX_DELAY" envDefault:"30s"`
	TransientStatuses []int         `env:"TRANSIENT_STATUSES" envDefault:"408,429,500,502,503,504"`
	// StatsBatchSize caps the number of campaign ids per statistics request.
	StatsBatchSize int `env:"STATS_BATCH_SIZE" envDefault:"10"`
}

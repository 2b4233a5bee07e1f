// Package metrics exposes control loop observations to Prometheus.
package metrics

import (
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"spendguard/internal/core/domain"
	"spendguard/internal/core/port"
)

const namespace = "spendguard"

// Recorder implements port.Metrics with Prometheus collectors.
type Recorder struct {
	gatewayAttempts *prometheus.CounterVec
	decisions       *prometheus.CounterVec
	failures        *prometheus.CounterVec
	unauthorized    *prometheus.CounterVec
	tickDuration    prometheus.Histogram
	failedCreds     prometheus.Gauge
	lastTick        prometheus.Gauge
}

var _ port.Metrics = (*Recorder)(nil)

// NewRecorder creates the collectors and registers them on reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		gatewayAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "gateway",
			Name:      "attempts_total",
			Help:      "Ad platform HTTP attempts by endpoint, status and error kind.",
		}, []string{"endpoint", "status", "kind"}),
		decisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "decisions_total",
			Help:      "Campaign decisions by action and reason, and whether the platform was called.",
		}, []string{"action", "reason", "applied"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "campaign_failures_total",
			Help:      "Failed campaign passes by failure kind.",
		}, []string{"kind"}),
		unauthorized: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "credentials_unauthorized_total",
			Help:      "Passes where the platform rejected a credential set.",
		}, []string{"credentials_id"}),
		tickDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "tick_duration_seconds",
			Help:      "Duration of control loop ticks.",
			Buckets:   []float64{1, 5, 15, 30, 60, 120, 300, 600},
		}),
		failedCreds: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "tick_failed_credentials",
			Help:      "Credential sets that finished the last tick with errors.",
		}),
		lastTick: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_tick_timestamp_seconds",
			Help:      "Unix time the last tick finished.",
		}),
	}
	reg.MustRegister(r.gatewayAttempts, r.decisions, r.failures, r.unauthorized, r.tickDuration, r.failedCreds, r.lastTick)
	return r
}

func (r *Recorder) GatewayAttempt(endpoint string, status int, kind port.ErrorKind) {
	k := string(kind)
	if k == "" {
		k = "ok"
	}
	r.gatewayAttempts.WithLabelValues(endpoint, strconv.Itoa(status), k).Inc()
}

func (r *Recorder) Decision(action domain.Action, reason domain.Reason, applied bool) {
	r.decisions.WithLabelValues(string(action), string(reason), strconv.FormatBool(applied)).Inc()
}

func (r *Recorder) CampaignFailure(kind string) {
	if kind == "" {
		kind = "unknown"
	}
	r.failures.WithLabelValues(kind).Inc()
}

func (r *Recorder) CredentialsUnauthorized(id uuid.UUID) {
	r.unauthorized.WithLabelValues(id.String()).Inc()
}

func (r *Recorder) Tick(d time.Duration, failedCredentials int) {
	r.tickDuration.Observe(d.Seconds())
	r.failedCreds.Set(float64(failedCredentials))
	r.lastTick.SetToCurrentTime()
}

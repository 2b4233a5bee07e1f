// Package ozon is the outbound adapter to the Ozon Performance API. Gateway
// wraps every call with credential injection, failure classification and
// bounded exponential retries; the endpoint methods build on it to implement
// port.AdPlatform.
package ozon

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/oauth2"

	"spendguard/internal/config/configs"
	"spendguard/internal/core/domain"
	"spendguard/internal/core/port"
)

// HTTPDoer is the transport used by the gateway. *http.Client satisfies it.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

const maxErrorBody = 64 << 10

// RetryPolicy decides which responses are retried and how long to wait.
// MaxAttempts counts every attempt including the first.
type RetryPolicy struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Transient    map[int]bool
}

// NewRetryPolicy builds a policy from the gateway configuration.
func NewRetryPolicy(cfg configs.Ozon) RetryPolicy {
	p := RetryPolicy{
		MaxAttempts:  cfg.MaxAttempts,
		InitialDelay: cfg.InitialDelay,
		MaxDelay:     cfg.MaxDelay,
		Transient:    make(map[int]bool, len(cfg.TransientStatuses)),
	}
	if p.MaxAttempts < 1 {
		p.MaxAttempts = 1
	}
	for _, s := range cfg.TransientStatuses {
		p.Transient[s] = true
	}
	return p
}

// Delay returns the wait after the given failed attempt (1-based):
// min(InitialDelay * 2^(attempt-1), MaxDelay).
func (p RetryPolicy) Delay(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	d := p.InitialDelay
	for i := 1; i < attempt; i++ {
		d *= 2
		if p.MaxDelay > 0 && d >= p.MaxDelay {
			return p.MaxDelay
		}
	}
	if p.MaxDelay > 0 && d > p.MaxDelay {
		return p.MaxDelay
	}
	return d
}

// Request describes one platform call. Route is the path template used as a
// low-cardinality label in metrics and traces.
type Request struct {
	Method string
	Path   string
	Route  string
	Query  url.Values
	Body   any
}

// Gateway is the resilient client for the ad platform. It is safe for
// concurrent use; retry state lives on each call's stack.
type Gateway struct {
	httpc       HTTPDoer
	baseURL     string
	policy      RetryPolicy
	callTimeout time.Duration
	batchSize   int
	logger      *slog.Logger
	metrics     port.Metrics
	tracer      trace.Tracer

	mu     sync.Mutex
	tokens map[uuid.UUID]oauth2.TokenSource
}

// NewGateway creates a gateway. A nil metrics recorder discards observations.
func NewGateway(httpc HTTPDoer, cfg configs.Ozon, logger *slog.Logger, metrics port.Metrics) *Gateway {
	if metrics == nil {
		metrics = port.NopMetrics{}
	}
	batch := cfg.StatsBatchSize
	if batch <= 0 {
		batch = 10
	}
	return &Gateway{
		httpc:       httpc,
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		policy:      NewRetryPolicy(cfg),
		callTimeout: cfg.CallTimeout,
		batchSize:   batch,
		logger:      logger,
		metrics:     metrics,
		tracer:      otel.Tracer("spendguard/internal/adapter/ozon"),
		tokens:      make(map[uuid.UUID]oauth2.TokenSource),
	}
}

// Call performs an authenticated request and decodes a 2xx JSON body into
// out when out is non-nil. The call is bounded by the per-call timeout and is
// not cancelled by ctx, so a started mutation is never abandoned halfway.
func (g *Gateway) Call(ctx context.Context, creds domain.Credentials, req Request, out any) error {
	ctx, cancel := g.callContext(ctx)
	defer cancel()

	ctx, span := g.tracer.Start(ctx, "ozon "+req.Route, trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", req.Method),
			attribute.String("ozon.route", req.Route),
			attribute.String("credentials.id", creds.ID.String()),
		))
	defer span.End()

	err := g.do(ctx, req, out, func(r *http.Request) error {
		tok, err := g.tokenSource(creds).Token()
		if err != nil {
			return err
		}
		tok.SetAuthHeader(r)
		return nil
	})
	if err != nil {
		if port.KindOf(err) == port.KindUnauthorized {
			g.dropToken(creds.ID)
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, string(port.KindOf(err)))
	}
	return err
}

func (g *Gateway) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	ctx = context.WithoutCancel(ctx)
	if g.callTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, g.callTimeout)
}

// do runs the retry loop. authorize is invoked before every attempt.
func (g *Gateway) do(ctx context.Context, req Request, out any, authorize func(*http.Request) error) error {
	var body []byte
	if req.Body != nil {
		b, err := json.Marshal(req.Body)
		if err != nil {
			return fmt.Errorf("encode %s body: %w", req.Route, err)
		}
		body = b
	}

	var last *port.PlatformError
	for attempt := 1; attempt <= g.policy.MaxAttempts; attempt++ {
		status, err := g.attempt(ctx, req, body, out, authorize)
		if err == nil {
			g.metrics.GatewayAttempt(req.Route, status, port.KindNone)
			return nil
		}
		var af authFailure
		if errors.As(err, &af) {
			return af.err
		}
		var pe *port.PlatformError
		if !errors.As(err, &pe) {
			return err
		}
		pe.Attempts = attempt
		last = pe
		g.metrics.GatewayAttempt(req.Route, pe.Status, pe.Kind)

		if !g.retryable(pe) || attempt == g.policy.MaxAttempts || ctx.Err() != nil {
			break
		}
		wait := g.policy.Delay(attempt)
		g.logger.WarnContext(ctx, "platform call failed; retrying",
			slog.String("route", req.Route),
			slog.Int("attempt", attempt),
			slog.Int("status", pe.Status),
			slog.String("kind", string(pe.Kind)),
			slog.Duration("backoff", wait),
		)
		if err := sleep(ctx, wait); err != nil {
			break
		}
	}
	return last
}

func (g *Gateway) retryable(pe *port.PlatformError) bool {
	if pe.Kind == port.KindNetworkError {
		return true
	}
	return pe.Status != 0 && g.policy.Transient[pe.Status]
}

func (g *Gateway) attempt(ctx context.Context, req Request, body []byte, out any, authorize func(*http.Request) error) (int, error) {
	u := g.baseURL + req.Path
	if len(req.Query) > 0 {
		u += "?" + req.Query.Encode()
	}
	var rd io.Reader
	if body != nil {
		rd = bytes.NewReader(body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, u, rd)
	if err != nil {
		return 0, fmt.Errorf("build %s request: %w", req.Route, err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if authorize != nil {
		if err := authorize(httpReq); err != nil {
			return 0, authFailure{err: err}
		}
	}

	resp, err := g.httpc.Do(httpReq)
	if err != nil {
		return 0, &port.PlatformError{Kind: port.KindNetworkError, Method: req.Method, Endpoint: req.Route, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return resp.StatusCode, &port.PlatformError{
			Kind:     classify(resp.StatusCode),
			Method:   req.Method,
			Endpoint: req.Route,
			Status:   resp.StatusCode,
			Detail:   detail(b),
		}
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return resp.StatusCode, nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return resp.StatusCode, &port.PlatformError{
			Kind:     port.KindServerError,
			Method:   req.Method,
			Endpoint: req.Route,
			Status:   resp.StatusCode,
			Err:      fmt.Errorf("decode response: %w", err),
		}
	}
	return resp.StatusCode, nil
}

// authFailure carries a token error out of the retry loop untouched; token
// requests run their own retries.
type authFailure struct{ err error }

func (a authFailure) Error() string { return a.err.Error() }

func classify(status int) port.ErrorKind {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return port.KindUnauthorized
	case status == http.StatusTooManyRequests:
		return port.KindRateLimited
	case status == http.StatusNotFound:
		return port.KindNotFound
	case status == http.StatusRequestTimeout || status >= 500:
		return port.KindServerError
	default:
		return port.KindInvalidRequest
	}
}

// detail keeps a JSON error payload as is and quotes anything else.
func detail(b []byte) json.RawMessage {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return nil
	}
	if json.Valid(b) {
		return json.RawMessage(b)
	}
	q, _ := json.Marshal(string(b))
	return q
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

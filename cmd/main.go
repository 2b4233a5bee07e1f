package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"spendguard/internal/adapter/http"
	"spendguard/internal/adapter/kafka"
	"spendguard/internal/adapter/memlock"
	"spendguard/internal/adapter/metrics"
	"spendguard/internal/adapter/ozon"
	"spendguard/internal/adapter/postgres"
	"spendguard/internal/adapter/redislock"
	"spendguard/internal/adapter/usecase"
	"spendguard/internal/config"
	"spendguard/internal/core/port"
	"spendguard/internal/db"
	"spendguard/internal/telemetry"
)

// main is the entry point of spendguard. It loads configuration, optionally
// runs database migrations and the demo seed, wires the gateway, settings
// store, lock and publisher into the control loop, then runs the scheduler,
// the settings listener and the HTTP server until a termination signal.
func main() {
	os.Exit(run())
}

func run() int {
	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return 1
	}

	logger := slog.New(cfg.Log.NewHandler(os.Stdout)).With(slog.String("env", cfg.Env))
	slog.SetDefault(logger)

	loc, err := cfg.Control.Location()
	if err != nil {
		logger.Error("invalid control timezone", slog.Any("error", err))
		return 1
	}

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
			return 1
		}
		logger.Info("migrations applied successfully")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	shutdownTracing, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		logger.Error("tracing setup error", slog.Any("error", err))
		return 1
	}
	defer func() {
		if err := shutdownTracing(context.WithoutCancel(ctx)); err != nil {
			logger.Warn("tracing shutdown error", slog.Any("error", err))
		}
	}()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		return 1
	}
	defer pool.Close()

	if cfg.Psql.Seed {
		if err = db.Seed(ctx, pool); err != nil {
			logger.Error("seed error", slog.Any("error", err))
			return 1
		}
		logger.Info("demo data seeded")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	recorder := metrics.NewRecorder(registry)

	var locker port.CampaignLocker = memlock.New()
	if cfg.Redis.Address != "" {
		client, err := redislock.Connect(ctx, cfg.Redis.Address)
		if err != nil {
			logger.Error("redis config error", slog.Any("error", err))
			return 1
		}
		defer client.Close()
		if err = client.Ping(ctx).Err(); err != nil {
			logger.Error("redis connection error", slog.Any("error", err))
			return 1
		}
		locker = redislock.New(client, cfg.Redis.KeyPrefix)
	}

	var publisher port.StatusPublisher = kafka.Discard{}
	if len(cfg.Kafka.Brokers) > 0 {
		p, err := kafka.NewPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		if err != nil {
			logger.Error("kafka config error", slog.Any("error", err))
			return 1
		}
		defer p.Close()
		publisher = p
	}

	repo := postgres.NewSettingsRepository(pool)
	gateway := ozon.NewGateway(&http.Client{}, cfg.Ozon, logger, recorder)
	executor := usecase.NewExecutor(gateway, repo, publisher, recorder, logger, cfg.Psql.WriteTimeout)
	loop := usecase.NewControlLoop(repo, gateway, executor, locker, recorder, logger, usecase.LoopConfig{
		Workers:           cfg.Control.Workers,
		CampaignWorkers:   cfg.Control.CampaignWorkers,
		TickDeadline:      cfg.Control.TickDeadline,
		LockTTL:           cfg.Control.LockTTL,
		DefaultDailyLimit: cfg.Control.DefaultDailyLimit,
		Location:          loc,
	})

	handler := httpadapter.NewHandler(loop, pool, promhttp.HandlerFor(registry, promhttp.HandlerOpts{}), logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		sctx, scancel := context.WithTimeout(context.WithoutCancel(gctx), cfg.HTTP.ShutdownTimeout)
		defer scancel()
		if err := srv.Shutdown(sctx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		logger.Info("server gracefully stopped")
		return nil
	})
	if cfg.Control.Enabled {
		g.Go(func() error {
			return usecase.NewScheduler(loop, cfg.Control.Interval, logger).Run(gctx)
		})
	}
	if cfg.Psql.ListenChanges {
		g.Go(func() error {
			return postgres.NewSettingsListener(cfg.Psql.Addr.String(), loop, logger).Run(gctx)
		})
	}

	if err = g.Wait(); err != nil {
		logger.Error("shutdown with error", slog.Any("error", err))
		return 1
	}
	return 0
}

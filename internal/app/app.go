package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/myenglish-srs/internal/auth"
	"github.com/heartmarshall/myenglish-srs/internal/config"
	"github.com/heartmarshall/myenglish-srs/internal/service/analytics"
	"github.com/heartmarshall/myenglish-srs/internal/service/settings"
	"github.com/heartmarshall/myenglish-srs/internal/service/study"
	"github.com/heartmarshall/myenglish-srs/internal/transport/graphql"
	"github.com/heartmarshall/myenglish-srs/internal/transport/middleware"
	"github.com/heartmarshall/myenglish-srs/internal/transport/rest"
)

// Run is the server entry point. It loads configuration, opens storage,
// wires services into the HTTP router and serves until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("storage", cfg.Storage.Driver),
	)

	store, err := OpenStorage(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	limiter := middleware.NewRateLimiter(cfg.RateLimit)
	defer limiter.Stop()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      NewHandler(cfg, store, limiter, logger),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("stopped")
	return nil
}

// NewHandler builds the services over store and returns the full HTTP handler.
// limiter may be nil.
func NewHandler(cfg *config.Config, store *Storage, limiter *middleware.RateLimiter, logger *slog.Logger) http.Handler {
	studySvc := study.NewService(logger, store.Sessions, store.Activity, store.Stats, store.Settings, store.Tx, cfg.SRS)
	analyticsSvc := analytics.NewService(logger, store.Sessions, store.Activity, store.Stats, cfg.SRS)
	settingsSvc := settings.NewService(logger, store.Settings, cfg.SRS)

	return rest.NewRouter(rest.RouterDeps{
		Study:       rest.NewStudyHandler(studySvc, logger),
		Analytics:   rest.NewAnalyticsHandler(analyticsSvc, logger),
		Settings:    rest.NewSettingsHandler(settingsSvc, logger),
		Health:      rest.NewHealthHandler(store, store.Driver, Version),
		GraphQL:     graphql.NewHandler(studySvc, analyticsSvc, logger),
		Tokens:      auth.NewJWTManager(cfg.Auth),
		RateLimiter: limiter,
		CORS:        cfg.CORS,
		Logger:      logger,
	})
}

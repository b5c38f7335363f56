// Command cleanup removes activity events older than the configured retention
// period. It is intended to be invoked by an external cron job, not as an
// in-process goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/myenglish-srs/internal/app"
	"github.com/heartmarshall/myenglish-srs/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	store, err := app.OpenStorage(ctx, cfg, logger)
	if err != nil {
		logger.Error("open storage", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer store.Close()

	threshold := time.Now().UTC().Add(-cfg.SRS.ActivityRetention)

	deleted, err := store.Activity.DeleteOlderThan(ctx, threshold)
	if err != nil {
		logger.Error("activity cleanup failed",
			slog.String("error", err.Error()),
			slog.Time("threshold", threshold),
		)
		os.Exit(1)
	}

	logger.Info("activity cleanup completed",
		slog.Int("deleted", deleted),
		slog.Time("threshold", threshold),
		slog.String("storage", store.Driver),
	)
}

package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/myenglish-srs/internal/adapter/postgres"
	"github.com/heartmarshall/myenglish-srs/internal/adapter/postgres/activity"
	"github.com/heartmarshall/myenglish-srs/internal/adapter/postgres/dailystats"
	"github.com/heartmarshall/myenglish-srs/internal/adapter/postgres/reviewsession"
	pgsettings "github.com/heartmarshall/myenglish-srs/internal/adapter/postgres/settings"
	"github.com/heartmarshall/myenglish-srs/internal/adapter/sqlite"
	"github.com/heartmarshall/myenglish-srs/internal/config"
	"github.com/heartmarshall/myenglish-srs/internal/domain"
)

// SessionStore is everything the services need from review session storage.
type SessionStore interface {
	Create(ctx context.Context, sessions []domain.ReviewSession) error
	UpdateState(ctx context.Context, s domain.ReviewSession) error
	DeactivateByItem(ctx context.Context, ownerID, itemID uuid.UUID, now time.Time) (int, error)
	DeleteByOwner(ctx context.Context, ownerID uuid.UUID) (int, error)
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.ReviewSession, error)
	GetByIDForUpdate(ctx context.Context, ownerID, id uuid.UUID) (*domain.ReviewSession, error)
	ListDue(ctx context.Context, ownerID uuid.UUID, asOf time.Time, limit int) ([]domain.ReviewSession, error)
	ListActive(ctx context.Context, ownerID uuid.UUID) ([]domain.ReviewSession, error)
	CountByLevel(ctx context.Context, ownerID uuid.UUID) (domain.MasteryLevelCounts, error)
	CountActive(ctx context.Context, ownerID uuid.UUID) (int, error)
	CountDue(ctx context.Context, ownerID uuid.UUID, asOf time.Time) (int, error)
	Totals(ctx context.Context, ownerID uuid.UUID) (domain.ReviewTotals, error)
}

// ActivityStore is the bounded per-owner activity log.
type ActivityStore interface {
	Append(ctx context.Context, e domain.ActivityEvent, keep int) error
	ListRecent(ctx context.Context, ownerID uuid.UUID, limit int) ([]domain.ActivityEvent, error)
	DeleteByOwner(ctx context.Context, ownerID uuid.UUID) (int, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error)
}

// DailyStatsStore holds per-owner, per-day study counters.
type DailyStatsStore interface {
	Add(ctx context.Context, d domain.DailyStats) error
	ListRange(ctx context.Context, ownerID uuid.UUID, from, to time.Time) ([]domain.DailyStats, error)
	DeleteByOwner(ctx context.Context, ownerID uuid.UUID) (int, error)
}

// SettingsStore holds per-owner interval tables.
type SettingsStore interface {
	Get(ctx context.Context, ownerID uuid.UUID) (*domain.StudySettings, error)
	Upsert(ctx context.Context, s domain.StudySettings) error
}

// TxRunner runs fn inside a single storage transaction.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Storage is an opened persistence backend with its repositories.
type Storage struct {
	Driver   string
	Sessions SessionStore
	Activity ActivityStore
	Stats    DailyStatsStore
	Settings SettingsStore
	Tx       TxRunner

	ping  func(ctx context.Context) error
	close func()
}

// Ping checks that the backend answers.
func (s *Storage) Ping(ctx context.Context) error { return s.ping(ctx) }

// Close releases the backend's connections.
func (s *Storage) Close() { s.close() }

// OpenStorage connects to the backend selected by cfg.Storage.Driver.
// SQLite migrations are applied on open; PostgreSQL expects `srsctl migrate up`
// to have run.
func OpenStorage(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Storage, error) {
	switch cfg.Storage.Driver {
	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLite)
		if err != nil {
			return nil, fmt.Errorf("open sqlite %s: %w", cfg.SQLite.Path, err)
		}
		logger.Info("storage ready", slog.String("driver", config.DriverSQLite), slog.String("path", cfg.SQLite.Path))

		return &Storage{
			Driver:   config.DriverSQLite,
			Sessions: sqlite.NewReviewSessionRepo(db),
			Activity: sqlite.NewActivityRepo(db),
			Stats:    sqlite.NewDailyStatsRepo(db),
			Settings: sqlite.NewSettingsRepo(db),
			Tx:       sqlite.NewTxManager(db),
			ping:     db.PingContext,
			close:    func() { db.Close() },
		}, nil

	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.Database, logger)
		if err != nil {
			return nil, fmt.Errorf("connect to postgres: %w", err)
		}
		logger.Info("storage ready", slog.String("driver", config.DriverPostgres))

		return &Storage{
			Driver:   config.DriverPostgres,
			Sessions: reviewsession.New(pool),
			Activity: activity.New(pool),
			Stats:    dailystats.New(pool),
			Settings: pgsettings.New(pool),
			Tx:       postgres.NewTxManager(pool),
			ping:     pool.Ping,
			close:    pool.Close,
		}, nil
	}

	return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
}

// OpenMigrations returns a goose provider for the configured backend and a
// function that closes its connection.
func OpenMigrations(ctx context.Context, cfg *config.Config) (*goose.Provider, func() error, error) {
	var (
		db  *sql.DB
		err error
	)

	switch cfg.Storage.Driver {
	case config.DriverSQLite:
		db, err = sqlite.Connect(ctx, cfg.SQLite)
	case config.DriverPostgres:
		db, err = postgres.OpenMigrationDB(ctx, cfg.Database.DSN)
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
	if err != nil {
		return nil, nil, err
	}

	var provider *goose.Provider
	if cfg.Storage.Driver == config.DriverSQLite {
		provider, err = sqlite.NewMigrationProvider(db)
	} else {
		provider, err = postgres.NewMigrationProvider(db)
	}
	if err != nil {
		db.Close()
		return nil, nil, err
	}

	return provider, db.Close, nil
}

// Package testhelper provides a shared, migrated PostgreSQL database for
// repository integration tests.
//
// TEST_DATABASE_DSN points the tests at an existing database; otherwise a
// throwaway container is started once per test binary. Without either the
// tests are skipped.
package testhelper

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/heartmarshall/myenglish-srs/internal/adapter/postgres"
)

const (
	postgresImage = "postgres:17-alpine"
	dbUser        = "srs"
	dbPassword    = "srs"
	dbName        = "srs_test"
)

var (
	once    sync.Once
	dsn     string
	initErr error
)

// SetupTestDB returns a pool on the shared database. The pool is closed via
// t.Cleanup; the database itself outlives the test.
func SetupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	if testing.Short() {
		t.Skip("testhelper: skipping PostgreSQL integration test in -short mode")
	}

	once.Do(func() {
		dsn, initErr = prepare()
	})
	if initErr != nil {
		t.Skipf("testhelper: PostgreSQL unavailable: %v", initErr)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("testhelper: create pool: %v", err)
	}
	t.Cleanup(pool.Close)

	return pool
}

func prepare() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	target := os.Getenv("TEST_DATABASE_DSN")
	if target == "" {
		var err error
		if target, err = startContainer(ctx); err != nil {
			return "", err
		}
	}

	if err := migrate(ctx, target); err != nil {
		return "", err
	}
	return target, nil
}

func startContainer(ctx context.Context) (_ string, err error) {
	// testcontainers panics when no Docker host can be resolved.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("start container: %v", r)
		}
	}()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        postgresImage,
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     dbUser,
				"POSTGRES_PASSWORD": dbPassword,
				"POSTGRES_DB":       dbName,
			},
			// The server restarts once after init, hence two occurrences.
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	if err != nil {
		return "", fmt.Errorf("start container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return "", fmt.Errorf("container host: %w", err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return "", fmt.Errorf("container port: %w", err)
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", dbUser, dbPassword, host, port.Port(), dbName), nil
}

func migrate(ctx context.Context, target string) error {
	db, err := postgres.OpenMigrationDB(ctx, target)
	if err != nil {
		return err
	}
	defer db.Close()

	provider, err := postgres.NewMigrationProvider(db)
	if err != nil {
		return err
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}

package testhelpers

import (
	"context"
	"os"
	"testing"
	"time"

	"mediahub/pkg/database"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDB holds the database connection for testing
type TestDB struct {
	Pool    *pgxpool.Pool
	Cleanup func()
}

// SetupTestDB returns a migrated database. TEST_DATABASE_URL selects an existing
// server; otherwise a throwaway PostgreSQL container is started.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()
	ctx := context.Background()

	connString := os.Getenv("TEST_DATABASE_URL")
	terminate := func() {}
	if connString == "" {
		pgContainer, err := postgres.Run(ctx,
			"postgres:16-alpine",
			postgres.WithDatabase("mediahub_test"),
			postgres.WithUsername("mediahub"),
			postgres.WithPassword("mediahub"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(60*time.Second)),
		)
		if err != nil {
			t.Fatalf("Failed to start PostgreSQL container: %v", err)
		}
		terminate = func() {
			if err := pgContainer.Terminate(ctx); err != nil {
				t.Logf("Failed to terminate container: %v", err)
			}
		}

		connString, err = pgContainer.ConnectionString(ctx, "sslmode=disable")
		if err != nil {
			terminate()
			t.Fatalf("Failed to get connection string: %v", err)
		}
	}

	pool, err := database.NewPool(ctx, connString, 5)
	if err != nil {
		terminate()
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	if _, err := database.Migrate(ctx, pool, zerolog.Nop()); err != nil {
		pool.Close()
		terminate()
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return &TestDB{
		Pool: pool,
		Cleanup: func() {
			pool.Close()
			terminate()
		},
	}
}

// Truncate empties every application table between tests
func (db *TestDB) Truncate(t *testing.T) {
	t.Helper()
	_, err := db.Pool.Exec(context.Background(),
		"TRUNCATE product_images, product_links, products, users RESTART IDENTITY CASCADE")
	if err != nil {
		t.Fatalf("Failed to truncate tables: %v", err)
	}
}

// Package testinternals holds helpers for repo tests that run against a live postgres.
package testinternals

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/2beens/gymweeks/internal/db"
)

// NewTestDBPool connects to GYMWEEKS_POSTGRES_HOST (default localhost) and makes
// sure the schema exists. The pool is closed on test cleanup.
func NewTestDBPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	timeoutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	host := os.Getenv("GYMWEEKS_POSTGRES_HOST")
	if host == "" {
		host = "localhost"
	}
	port := os.Getenv("GYMWEEKS_POSTGRES_PORT")
	if port == "" {
		port = "5432"
	}
	dbName := os.Getenv("GYMWEEKS_POSTGRES_DB")
	if dbName == "" {
		dbName = "gymweeks_test"
	}
	t.Logf("using postgres: %s:%s/%s", host, port, dbName)

	dbPool, err := db.NewDBPool(timeoutCtx, db.NewDBPoolParams{
		DBHost:     host,
		DBPort:     port,
		DBName:     dbName,
		DBPassword: os.Getenv("GYMWEEKS_POSTGRES_PASS"),
	})
	require.NoError(t, err)
	t.Cleanup(dbPool.Close)

	require.NoError(t, db.Migrate(timeoutCtx, dbPool))
	return dbPool
}

// AddTestUser inserts a USER with fake, unique data and returns its id.
func AddTestUser(t *testing.T, dbPool *pgxpool.Pool) int {
	t.Helper()

	var id int
	err := dbPool.QueryRow(
		context.Background(),
		`INSERT INTO app_user (email, username, password_hash, first_name, last_name)
			VALUES ($1, $2, 'not-a-hash', $3, $4)
		RETURNING id`,
		gofakeit.UUID()+"@"+gofakeit.DomainName(),
		gofakeit.Username(),
		gofakeit.FirstName(),
		gofakeit.LastName(),
	).Scan(&id)
	require.NoError(t, err)
	return id
}

// UniqueName returns a fake name that is very unlikely to collide with earlier runs.
func UniqueName(prefix string) string {
	return prefix + " " + gofakeit.Name() + " " + gofakeit.UUID()[:8]
}

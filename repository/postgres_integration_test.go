//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"

	"github.com/cppla/qaserver/config"
	"github.com/cppla/qaserver/errorz"
	"github.com/cppla/qaserver/models"
)

// setupPostgres starts a PostgreSQL container with the schema created.
func setupPostgres(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:alpine",
		postgres.WithDatabase("qa"),
		postgres.WithUsername("qa"),
		postgres.WithPassword("qa"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = pgContainer.Terminate(context.Background())
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := config.InitDatabase(config.AppConfig{DBType: "postgres", DatabaseURI: connStr, LogLevel: "silent"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = config.CloseDatabase(db) })
	return db
}

func TestPostgresConstraints(t *testing.T) {
	db := setupPostgres(t)

	user, err := users.Create(db, uuid.New(), "alice", "alice@example.com", "hash")
	require.NoError(t, err)
	q, err := questions.Create(db, "Q1")
	require.NoError(t, err)

	t.Run("missing question is NotFound", func(t *testing.T) {
		err := db.Transaction(func(tx *gorm.DB) error {
			_, err := answers.Create(tx, 9999, user.ID, "x")
			return err
		})
		assert.True(t, errorz.Is(err, errorz.KindNotFound), "got %v", err)
	})

	t.Run("missing user is Conflict", func(t *testing.T) {
		_, err := answers.Create(db, q.ID, uuid.New(), "x")
		assert.True(t, errorz.Is(err, errorz.KindConflict), "got %v", err)
	})

	t.Run("duplicate email is Conflict", func(t *testing.T) {
		_, err := users.Create(db, uuid.New(), "bob", "alice@example.com", "hash")
		assert.True(t, errorz.Is(err, errorz.KindConflict), "got %v", err)
	})

	t.Run("user with answers is restricted, question cascades", func(t *testing.T) {
		_, err := answers.Create(db, q.ID, user.ID, "A1")
		require.NoError(t, err)

		err = db.Transaction(func(tx *gorm.DB) error {
			return users.Delete(tx, user)
		})
		assert.True(t, errorz.Is(err, errorz.KindConflict), "got %v", err)

		require.NoError(t, questions.Delete(db, q))
		var n int64
		require.NoError(t, db.Model(&models.Answer{}).Count(&n).Error)
		assert.Zero(t, n)
		require.NoError(t, users.Delete(db, user))
	})
}

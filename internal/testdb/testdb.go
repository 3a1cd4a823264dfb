// Package testdb opens throwaway SQLite databases with the application schema for tests.
package testdb

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/cppla/qaserver/config"
)

// New returns an empty in-memory database with foreign keys enforced. It is closed when the test ends.
func New(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := config.OpenDatabase(config.AppConfig{
		DBType:      "sqlite",
		DatabaseURI: "file:" + uuid.NewString() + "?mode=memory&cache=shared",
		LogLevel:    "silent",
	})
	require.NoError(t, err)
	require.NoError(t, config.CreateTables(db))

	t.Cleanup(func() {
		_ = config.CloseDatabase(db)
	})
	return db
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"

	"github.com/cppla/qaserver/models"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	reset()
	t.Cleanup(reset)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)
	assert.Equal(t, "8000", cfg.AppPort)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.Equal(t, 30, cfg.ShutdownTimeout)
	assert.Equal(t, "postgres", cfg.DBType)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 100, cfg.LogMaxSizeMB)
	assert.Equal(t, 15, cfg.DBMaxOpenConns)
}

func TestLoadFileThenEnv(t *testing.T) {
	reset()
	t.Cleanup(reset)

	path := writeConfig(t, `{
		"app": {"port": "9000", "allowed_origins": ["https://a.example", " https://b.example "]},
		"database": {"type": "sqlite", "sqlite_path": "x.db"},
		"log": {"level": "DEBUG", "compress": true}
	}`)
	t.Setenv("APP_PORT", "9100")
	t.Setenv("DB_MAX_OPEN_CONNS", "3")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "9100", cfg.AppPort)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.Equal(t, "sqlite", cfg.DBType)
	assert.Equal(t, "x.db", cfg.DBSQLitePath)
	assert.Equal(t, 3, cfg.DBMaxOpenConns)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.LogCompress)
}

func TestLoadOriginsFromEnv(t *testing.T) {
	reset()
	t.Cleanup(reset)
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
}

func TestLoadIsCached(t *testing.T) {
	reset()
	t.Cleanup(reset)

	first, err := Load(writeConfig(t, `{"app": {"port": "1111"}}`))
	require.NoError(t, err)
	second, err := Load(writeConfig(t, `{"app": {"port": "2222"}}`))
	require.NoError(t, err)
	assert.Equal(t, "1111", first.AppPort)
	assert.Equal(t, first.AppPort, second.AppPort)
}

func TestLoadRejects(t *testing.T) {
	t.Cleanup(reset)

	reset()
	t.Setenv("DB_TYPE", "oracle")
	_, err := Load("")
	assert.ErrorContains(t, err, "unsupported database type")

	reset()
	t.Setenv("DB_TYPE", "sqlite")
	_, err = Load(writeConfig(t, `{"app": `))
	assert.Error(t, err)
}

func TestOpenDatabaseSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "qa.db")
	db, err := OpenDatabase(AppConfig{DBType: "sqlite", DBSQLitePath: path, LogLevel: "silent"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = CloseDatabase(db) })

	require.NoError(t, CreateTables(db))
	for _, m := range models.All() {
		assert.True(t, db.Migrator().HasTable(m), "%T", m)
	}
	// a second bootstrap leaves existing tables alone
	require.NoError(t, CreateTables(db))

	var fk int
	require.NoError(t, db.Raw("PRAGMA foreign_keys").Scan(&fk).Error)
	assert.Equal(t, 1, fk)

	require.NoError(t, DropTables(db))
	for _, m := range models.All() {
		assert.False(t, db.Migrator().HasTable(m), "%T", m)
	}
}

func TestDialectorRejectsUnknownType(t *testing.T) {
	_, err := OpenDatabase(AppConfig{DBType: "oracle"})
	assert.ErrorContains(t, err, "unsupported database type")
}

func TestWithForeignKeys(t *testing.T) {
	assert.Equal(t, "a.db?_foreign_keys=on", withForeignKeys("a.db"))
	assert.Equal(t, "file:x?mode=memory&_foreign_keys=on", withForeignKeys("file:x?mode=memory"))
	assert.Equal(t, "a.db?_fk=1", withForeignKeys("a.db?_fk=1"))
}

func TestToGormLogLevel(t *testing.T) {
	assert.Equal(t, logger.Info, toGormLogLevel("debug"))
	assert.Equal(t, logger.Warn, toGormLogLevel("info"))
	assert.Equal(t, logger.Error, toGormLogLevel("error"))
	assert.Equal(t, logger.Silent, toGormLogLevel("silent"))
	assert.Equal(t, logger.Warn, toGormLogLevel("bogus"))
}

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// AppConfig holds environment driven configuration values.
// Sensitive data should never have defaults inside code and must be provided via config files or the environment.
type AppConfig struct {
	AppPort         string
	AllowedOrigins  []string
	ShutdownTimeout int
	// Gin framework configuration
	GinMode string
	GinPath string
	// Database
	DBType         string
	DatabaseURI    string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBSQLitePath   string
	DBMaxIdleConns int
	DBMaxOpenConns int
	// Logging configuration
	LogLevel      string
	LogPath       string
	LogMaxSizeMB  int
	LogMaxBackups int
	LogMaxAgeDays int
	LogCompress   bool
}

// DefaultConfigPath is used when no --config flag is given.
var DefaultConfigPath = filepath.Join("config", "config.json")

var (
	cfg    AppConfig
	loaded bool
	mu     sync.Mutex
)

// key -> environment variable. Keys follow the grouped layout of config.json.
var envBindings = map[string]string{
	"app.port":                "APP_PORT",
	"app.allowed_origins":     "CORS_ALLOWED_ORIGINS",
	"app.shutdown_timeout":    "SHUTDOWN_TIMEOUT_SEC",
	"gin.mode":                "GIN_MODE",
	"gin.log_path":            "GIN_PATH",
	"database.type":           "DB_TYPE",
	"database.uri":            "DATABASE_URI",
	"database.host":           "DB_HOST",
	"database.port":           "DB_PORT",
	"database.user":           "DB_USER",
	"database.password":       "DB_PASSWORD",
	"database.name":           "DB_NAME",
	"database.sqlite_path":    "DB_SQLITE_PATH",
	"database.max_idle_conns": "DB_MAX_IDLE_CONNS",
	"database.max_open_conns": "DB_MAX_OPEN_CONNS",
	"log.level":               "LOG_LEVEL",
	"log.path":                "LOG_PATH",
	"log.max_size_mb":         "LOG_MAX_SIZE_MB",
	"log.max_backups":         "LOG_MAX_BACKUPS",
	"log.max_age_days":        "LOG_MAX_AGE_DAYS",
	"log.compress":            "LOG_COMPRESS",
}

// Load reads configuration once and caches it. Precedence: defaults -> config file -> environment.
// A missing config file is not an error; a malformed one is.
func Load(path string) (AppConfig, error) {
	mu.Lock()
	defer mu.Unlock()
	if loaded {
		return cfg, nil
	}

	c, err := read(path)
	if err != nil {
		return AppConfig{}, err
	}
	cfg = c
	loaded = true
	return cfg, nil
}

func read(path string) (AppConfig, error) {
	v := viper.New()
	applyDefaults(v)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return AppConfig{}, fmt.Errorf("bind %s: %w", env, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("json")
		if err := v.ReadInConfig(); err != nil && !isMissingFile(err) {
			return AppConfig{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	c := AppConfig{
		AppPort:         v.GetString("app.port"),
		AllowedOrigins:  readList(v, "app.allowed_origins"),
		ShutdownTimeout: v.GetInt("app.shutdown_timeout"),
		GinMode:         v.GetString("gin.mode"),
		GinPath:         v.GetString("gin.log_path"),
		DBType:          strings.ToLower(v.GetString("database.type")),
		DatabaseURI:     v.GetString("database.uri"),
		DBHost:          v.GetString("database.host"),
		DBPort:          v.GetString("database.port"),
		DBUser:          v.GetString("database.user"),
		DBPassword:      v.GetString("database.password"),
		DBName:          v.GetString("database.name"),
		DBSQLitePath:    v.GetString("database.sqlite_path"),
		DBMaxIdleConns:  v.GetInt("database.max_idle_conns"),
		DBMaxOpenConns:  v.GetInt("database.max_open_conns"),
		LogLevel:        strings.ToLower(v.GetString("log.level")),
		LogPath:         v.GetString("log.path"),
		LogMaxSizeMB:    v.GetInt("log.max_size_mb"),
		LogMaxBackups:   v.GetInt("log.max_backups"),
		LogMaxAgeDays:   v.GetInt("log.max_age_days"),
		LogCompress:     v.GetBool("log.compress"),
	}

	switch c.DBType {
	case "postgres", "mysql", "sqlite":
	default:
		return AppConfig{}, fmt.Errorf("unsupported database type %q", c.DBType)
	}
	return c, nil
}

// applyDefaults sets sane defaults for every key.
func applyDefaults(v *viper.Viper) {
	v.SetDefault("app.port", "8000")
	v.SetDefault("app.allowed_origins", []string{"*"})
	v.SetDefault("app.shutdown_timeout", 30)
	v.SetDefault("gin.mode", "release")
	v.SetDefault("gin.log_path", "logs/go_gin.log")
	v.SetDefault("database.type", "postgres")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.name", "postgres")
	v.SetDefault("database.sqlite_path", "data/qa.db")
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.max_open_conns", 15)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.max_size_mb", 100)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 7)
}

func isMissingFile(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
}

// readList accepts both a JSON array from the file and a comma separated environment value.
func readList(v *viper.Viper, key string) []string {
	switch raw := v.Get(key).(type) {
	case string:
		return splitAndTrim(raw)
	case []string:
		return raw
	case []any:
		out := make([]string, 0, len(raw))
		for _, it := range raw {
			if s, ok := it.(string); ok && strings.TrimSpace(s) != "" {
				out = append(out, strings.TrimSpace(s))
			}
		}
		return out
	default:
		return nil
	}
}

func splitAndTrim(raw string) []string {
	items := []string{}
	for _, item := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}

// reset clears the cache; tests only.
func reset() {
	mu.Lock()
	defer mu.Unlock()
	cfg = AppConfig{}
	loaded = false
}

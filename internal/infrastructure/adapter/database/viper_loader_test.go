package database

import (
	"testing"
	"time"

	"github.com/querykicks/querykicks/internal/infrastructure/config"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearDatabaseEnv blanks the QK_DB_* variables so the loaders fall back
// to the supplied configuration instead of the ambient environment
func clearDatabaseEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"QK_DB_HOST", "QK_DB_PORT", "QK_DB_USERNAME",
		"QK_DB_PASSWORD", "QK_DB_NAME",
	} {
		t.Setenv(key, "")
	}
}

func TestParsePort(t *testing.T) {
	testCases := []struct {
		port     string
		expected int
	}{
		{"5432", 5432},
		{"1", 1},
		{"65535", 65535},
		{"0", 0},
		{"-5", 0},
		{"65536", 0},
		{"not-a-port", 0},
		{"", 0},
	}

	for _, tc := range testCases {
		t.Run(tc.port, func(t *testing.T) {
			assert.Equal(t, tc.expected, ParsePort(tc.port))
		})
	}
}

func TestLoadFromViper(t *testing.T) {
	clearDatabaseEnv(t)

	v := viper.New()
	v.Set("database.host", "db.internal")
	v.Set("database.username", "querykicks")
	v.Set("database.password", "secret")
	v.Set("database.database", "querykicks_test")
	v.Set("database.maxOpenConns", 40)
	v.Set("database.queryTimeout", "8s")

	cfg, err := LoadFromViper(v)
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Host)
	assert.Equal(t, 5432, cfg.Port)
	assert.Equal(t, "querykicks", cfg.Username)
	assert.Equal(t, "secret", cfg.Password)
	assert.Equal(t, "querykicks_test", cfg.Database)
	assert.Equal(t, 40, cfg.MaxOpenConns)
	assert.Equal(t, 8*time.Second, cfg.QueryTimeout)
}

func TestLoadFromViperEnvWins(t *testing.T) {
	clearDatabaseEnv(t)
	t.Setenv("QK_DB_HOST", "env-host")
	t.Setenv("QK_DB_PORT", "6000")
	t.Setenv("QK_DB_USERNAME", "env-user")
	t.Setenv("QK_DB_PASSWORD", "env-pass")
	t.Setenv("QK_DB_NAME", "env-db")

	v := viper.New()
	v.Set("database.host", "file-host")
	v.Set("database.username", "file-user")
	v.Set("database.password", "file-pass")
	v.Set("database.database", "file-db")

	cfg, err := LoadFromViper(v)
	require.NoError(t, err)

	assert.Equal(t, "env-host", cfg.Host)
	assert.Equal(t, 6000, cfg.Port)
	assert.Equal(t, "env-user", cfg.Username)
	assert.Equal(t, "env-pass", cfg.Password)
	assert.Equal(t, "env-db", cfg.Database)
}

func TestLoadFromViperRejectsIncomplete(t *testing.T) {
	clearDatabaseEnv(t)

	v := viper.New()
	v.Set("database.host", "db.internal")
	// No credentials anywhere

	_, err := LoadFromViper(v)
	assert.Error(t, err)
}

func TestCreateConfigFromViperConfig(t *testing.T) {
	clearDatabaseEnv(t)

	appConfig := &config.Config{
		Database: config.DatabaseConfig{
			Host:            "db.internal",
			Port:            "5432",
			Username:        "querykicks",
			Password:        "secret",
			Database:        "querykicks",
			SSLMode:         "require",
			MaxOpenConns:    60,
			MaxIdleConns:    30,
			ConnMaxLifetime: 45 * time.Minute,
			QueryTimeout:    7 * time.Second,
			RetryAttempts:   4,
			RetryDelay:      3 * time.Second,
		},
		Logger: config.LoggerConfig{Level: "warn"},
	}

	cfg := CreateConfigFromViperConfig(appConfig)

	assert.Equal(t, "db.internal", cfg.Host)
	assert.Equal(t, 5432, cfg.Port)
	assert.Equal(t, "require", cfg.SSLMode)
	assert.Equal(t, 60, cfg.MaxOpenConns)
	assert.Equal(t, 30, cfg.MaxIdleConns)
	assert.Equal(t, 45*time.Minute, cfg.ConnMaxLifetime)
	assert.Equal(t, 7*time.Second, cfg.QueryTimeout)
	assert.Equal(t, 4, cfg.RetryAttempts)
	assert.Equal(t, 3, cfg.RetryDelay)
	assert.Equal(t, "warn", cfg.LogLevel)

	require.NoError(t, cfg.Validate())
	assert.Equal(t,
		"host=db.internal port=5432 user=querykicks password=secret dbname=querykicks sslmode=require",
		cfg.DSN())
}

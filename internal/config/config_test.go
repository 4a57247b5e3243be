package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, EnvLocal, cfg.Env)
	assert.Equal(t, DriverSQLite, cfg.DB.Driver)
	assert.Equal(t, "./db/test.db", cfg.DB.DatabaseURI)
	assert.Empty(t, cfg.DB.Migrations)
	assert.Equal(t, ":8080", cfg.Server.RunAddress)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", EnvProd)
	t.Setenv("DATABASE_DRIVER", DriverPostgres)
	t.Setenv("DATABASE_URI", "postgres://u:p@localhost:5432/dataapi?sslmode=disable")
	t.Setenv("RUN_ADDRESS", "127.0.0.1:9000")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, EnvProd, cfg.Env)
	assert.Equal(t, DriverPostgres, cfg.DB.Driver)
	assert.Equal(t, "postgres://u:p@localhost:5432/dataapi?sslmode=disable", cfg.DB.DatabaseURI)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.RunAddress)
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "warn", cfg.Logger.LogLevel)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "unknown driver", key: "database_driver", val: "mysql"},
		{name: "empty uri", key: "database_uri", val: ""},
		{name: "unknown env", key: "app_env", val: "staging"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			v.Set(tt.key, tt.val)

			_, err := Load(v)
			assert.Error(t, err)
		})
	}
}

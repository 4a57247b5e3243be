package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPath  = ".env"
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"
)

const (
	defaultRunAddress      = ":8080"
	defaultDriver          = DriverSQLite
	defaultDatabaseURI     = "./db/test.db"
	defaultEnv             = EnvLocal
	defaultShutdownTimeout = 10 * time.Second
)

type Config struct {
	Env    string
	DB     DB
	Server Server
	Logger Logger
}

type DB struct {
	Driver      string `env:"DATABASE_DRIVER"`
	DatabaseURI string `env:"DATABASE_URI"`
	// Migrations overrides the embedded migrations with a directory on disk.
	Migrations string `env:"MIGRATIONS_PATH"`
}

type Server struct {
	RunAddress      string        `env:"RUN_ADDRESS"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

type Logger struct {
	LogLevel string `env:"LOG_LEVEL"`
}

// NewConfig loads .env if present and builds the configuration from the
// global viper instance, so values read from a config file are honoured.
func NewConfig() (*Config, error) {
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			log.Printf("load %s: %v", envPath, err)
		}
	}

	return Load(viper.GetViper())
}

// Load builds a Config from v, applying defaults for unset keys.
func Load(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetDefault("app_env", defaultEnv)
	v.SetDefault("run_address", defaultRunAddress)
	v.SetDefault("database_driver", defaultDriver)
	v.SetDefault("database_uri", defaultDatabaseURI)
	v.SetDefault("shutdown_timeout", defaultShutdownTimeout)

	cfg := &Config{
		Env: v.GetString("app_env"),
		DB: DB{
			Driver:      v.GetString("database_driver"),
			DatabaseURI: v.GetString("database_uri"),
			Migrations:  v.GetString("migrations_path"),
		},
		Server: Server{
			RunAddress:      v.GetString("run_address"),
			ShutdownTimeout: v.GetDuration("shutdown_timeout"),
		},
		Logger: Logger{LogLevel: v.GetString("log_level")},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.DB.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("unsupported database driver %q", c.DB.Driver)
	}
	if c.DB.DatabaseURI == "" {
		return errors.New("database_uri must be set")
	}
	switch c.Env {
	case EnvLocal, EnvDev, EnvProd:
	default:
		return fmt.Errorf("unknown app_env %q", c.Env)
	}
	return nil
}

package pgstore

import (
	"errors"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the connection settings, loaded from the environment.
type Config struct {
	ConnectionString  string        `env:"DATABASE_URL,required"`                     // Postgres connection URL.
	MaxOpenConns      int32         `env:"PGSTORE_MAX_OPEN_CONNS" envDefault:"10"`    // Maximum open connections in the pool.
	MaxIdleConns      int32         `env:"PGSTORE_MAX_IDLE_CONNS" envDefault:"5"`     // Minimum idle connections kept ready.
	HealthCheckPeriod time.Duration `env:"PGSTORE_HEALTHCHECK_PERIOD" envDefault:"1m"`
	MaxConnIdleTime   time.Duration `env:"PGSTORE_MAX_CONN_IDLE_TIME" envDefault:"10m"`
	MaxConnLifetime   time.Duration `env:"PGSTORE_MAX_CONN_LIFETIME" envDefault:"30m"`

	RetryAttempts int           `env:"PGSTORE_RETRY_ATTEMPTS" envDefault:"3"` // Connection attempts before giving up.
	RetryInterval time.Duration `env:"PGSTORE_RETRY_INTERVAL" envDefault:"5s"`

	MigrationsPath  string `env:"PGSTORE_MIGRATIONS_PATH" envDefault:""` // Optional goose migrations directory.
	MigrationsTable string `env:"PGSTORE_MIGRATIONS_TABLE" envDefault:"schema_migrations"`
}

var loadDotenv sync.Once

// LoadConfig reads a Config from the environment, loading a .env file
// first if one is present.
func LoadConfig() (Config, error) {
	loadDotenv.Do(func() {
		// A missing .env file is fine; real environments set vars directly.
		_ = godotenv.Load()
	})

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrFailedToParseConfig, err)
	}
	return cfg, nil
}

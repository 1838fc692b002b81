package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Port  string `env:"PORT" env-default:"8080"`
	Clerk ClerkConfig
	DB    DBConfig
	Cal   CalendarificConfig
	Redis RedisConfig
}

type ClerkConfig struct {
	// Issuer is the Clerk instance URL; tokens must carry it verbatim.
	Issuer   string `env:"CLERK_ISSUER" env-required:"true"`
	Audience string `env:"CLERK_AUDIENCE" env-required:"true"`
	// JWKSURL overrides the default <issuer>/.well-known/jwks.json.
	JWKSURL string `env:"CLERK_JWKS_URL" env-default:""`
}

type DBConfig struct {
	DSN string `env:"DATABASE_DSN" env-required:"true"`
}

type CalendarificConfig struct {
	// APIKey may be empty: holiday lookups then serve cache hits only and
	// fail on a miss.
	APIKey  string        `env:"CALENDARIFIC_API_KEY" env-default:""`
	BaseURL string        `env:"CALENDARIFIC_BASE_URL" env-default:"https://calendarific.com/api/v2"`
	Timeout time.Duration `env:"CALENDARIFIC_TIMEOUT" env-default:"10s"`

	// RefreshSpec is a cron expression for the stale-entry sweep; empty
	// disables the job.
	RefreshSpec   string        `env:"HOLIDAY_REFRESH_SPEC" env-default:""`
	RefreshMaxAge time.Duration `env:"HOLIDAY_REFRESH_MAX_AGE" env-default:"720h"`
}

type RedisConfig struct {
	// Addr is "host:port". Empty disables the hot cache entirely.
	Addr     string        `env:"REDIS_ADDR" env-default:""`
	Password string        `env:"REDIS_PASSWORD" env-default:""`
	DB       int           `env:"REDIS_DB" env-default:"0"`
	TTL      time.Duration `env:"REDIS_TTL" env-default:"1h"`
}

func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read env: %w", err)
	}
	if cfg.Clerk.JWKSURL == "" {
		cfg.Clerk.JWKSURL = strings.TrimSuffix(cfg.Clerk.Issuer, "/") + "/.well-known/jwks.json"
	}
	return cfg, nil
}

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvTesting     Environment = "testing"
	EnvProduction  Environment = "production"
)

// Config is read from TRAVELAI_ prefixed variables, e.g. TRAVELAI_PORT, TRAVELAI_REDIS_URL.
type Config struct {
	Environment Environment `envconfig:"ENVIRONMENT" default:"development"`
	Port        int         `envconfig:"PORT" default:"8080"`
	LogLevel    string      `envconfig:"LOG_LEVEL" default:"info"`

	PostgresURL string `envconfig:"POSTGRES_URL" default:""`

	// Empty keeps saved trips and revoked tokens in process memory.
	RedisURL      string `envconfig:"REDIS_URL" default:""`
	RedisPassword string `envconfig:"REDIS_PASSWORD" default:""`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`

	JWTSecret string        `envconfig:"JWT_SECRET" default:"change-me"`
	JWTTTL    time.Duration `envconfig:"JWT_TTL" default:"60m"`

	RateLimitPerMinute int      `envconfig:"RATE_LIMIT_PER_MINUTE" default:"30"`
	CORSOrigins        []string `envconfig:"CORS_ORIGINS" default:"*"`

	// 0 draws activities from an unseeded source.
	RandomSeed uint64 `envconfig:"RANDOM_SEED" default:"0"`

	SavedTripCap     int           `envconfig:"SAVED_TRIP_CAP" default:"50"`
	SavedTripMaxAge  time.Duration `envconfig:"SAVED_TRIP_MAX_AGE" default:"4380h"`
	SavedTripQuotaKB int           `envconfig:"SAVED_TRIP_QUOTA_KB" default:"5120"`
}

// New loads an optional .env file and then the environment.
func New() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("TRAVELAI", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func NewForTesting() *Config {
	return &Config{
		Environment:        EnvTesting,
		Port:               8080,
		LogLevel:           "debug",
		JWTSecret:          "test-secret",
		JWTTTL:             time.Hour,
		RateLimitPerMinute: 1000,
		CORSOrigins:        []string{"*"},
		RandomSeed:         1,
		SavedTripCap:       50,
		SavedTripMaxAge:    180 * 24 * time.Hour,
		SavedTripQuotaKB:   5 * 1024,
	}
}

func (c *Config) validate() error {
	switch c.Environment {
	case EnvDevelopment, EnvTesting, EnvProduction:
	default:
		return fmt.Errorf("unsupported ENVIRONMENT: %s", c.Environment)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT: %d", c.Port)
	}
	if c.IsProduction() && (c.JWTSecret == "" || c.JWTSecret == "change-me") {
		return fmt.Errorf("JWT_SECRET must be set in production")
	}
	if c.SavedTripCap < 1 {
		return fmt.Errorf("invalid SAVED_TRIP_CAP: %d", c.SavedTripCap)
	}
	for i, o := range c.CORSOrigins {
		c.CORSOrigins[i] = strings.TrimSpace(o)
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

func (c *Config) UsesRedis() bool {
	return c.RedisURL != ""
}

func (c *Config) HTTPAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}

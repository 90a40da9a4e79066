// Package config loads the server configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every setting the server needs. It is built once at startup and
// passed explicitly to the components that need it.
type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	JWTSecret    string        `env:"JWT_SECRET"`
	JWTExpiresIn time.Duration `env:"JWT_EXPIRES_IN" envDefault:"100000s"`

	DBDSN         string `env:"DB_DSN"`
	RunMigrations bool   `env:"RUN_MIGRATIONS" envDefault:"false"`

	// RedisAddr が空の場合はキャッシュなしで起動します。
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`

	GitHub GitHubConfig

	AuthRateLimitRPM int      `env:"AUTH_RATE_LIMIT_RPM" envDefault:"10"`
	CORSOrigins      []string `env:"CORS_ORIGINS" envDefault:"*" envSeparator:","`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
}

// GitHubConfig holds settings for the GitHub repository lookup.
type GitHubConfig struct {
	BaseURL      string        `env:"GITHUB_BASE_URL" envDefault:"https://api.github.com"`
	ClientID     string        `env:"GITHUB_CLIENT_ID"`
	ClientSecret string        `env:"GITHUB_CLIENT_SECRET"`
	Token        string        `env:"GITHUB_TOKEN"`
	Timeout      time.Duration `env:"GITHUB_TIMEOUT" envDefault:"10s"`
	CacheTTL     time.Duration `env:"GITHUB_CACHE_TTL" envDefault:"10m"`
	RPS          float64       `env:"GITHUB_RPS" envDefault:"1"`
}

// Load reads an optional .env file, parses the environment and validates the result.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info(".env not found; using system environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	cfg.JWTSecret = strings.TrimSpace(cfg.JWTSecret)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that required settings are present and durations are positive.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if strings.TrimSpace(c.DBDSN) == "" {
		return errors.New("DB_DSN is required")
	}
	if c.Port == "" {
		return errors.New("PORT cannot be empty")
	}
	if c.JWTExpiresIn <= 0 {
		return errors.New("JWT_EXPIRES_IN must be positive")
	}
	if c.GitHub.Timeout <= 0 {
		return errors.New("GITHUB_TIMEOUT must be positive")
	}
	if c.GitHub.RPS <= 0 {
		return errors.New("GITHUB_RPS must be positive")
	}
	if c.AuthRateLimitRPM <= 0 {
		return errors.New("AUTH_RATE_LIMIT_RPM must be positive")
	}
	return nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	API     APIConfig
	Session SessionConfig
	Mongo   MongoConfig
	Redis   RedisConfig
}

// APIConfig points at the external Jobzen REST API.
type APIConfig struct {
	BaseURL string        `env:"API_BASE_URL, default=https://jobzen-backend.onrender.com/api"`
	Timeout time.Duration `env:"API_TIMEOUT,  default=60s"`
}

type SessionConfig struct {
	// Key seals session tokens at rest. Required outside development.
	Key          string        `env:"SESSION_KEY"`
	TTL          time.Duration `env:"SESSION_TTL,         default=168h"`
	CookieSecure bool          `env:"COOKIE_SECURE,       default=false"`
	LoginRate    float64       `env:"LOGIN_RATE_PER_SEC,  default=1"`
	LoginBurst   int           `env:"LOGIN_RATE_BURST,    default=5"`
}

type MongoConfig struct {
	// URI is optional; without it theme selections live only in cookies.
	URI      string `env:"MONGO_URI"`
	Database string `env:"MONGO_DB,  default=jobzen_dashboard"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,      default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,        default=0"`
	PoolSize int    `env:"REDIS_POOL_SIZE, default=20"`
}

// IsDevelopment reports whether the server runs with development defaults.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	cfg, err := LoadFrom(context.Background(), envconfig.OsLookuper())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

// LoadFrom reads configuration through l and validates it.
func LoadFrom(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, err
	}
	if cfg.Session.Key == "" {
		if !cfg.IsDevelopment() {
			return nil, fmt.Errorf("SESSION_KEY is required when ENV=%s", cfg.Env)
		}
		cfg.Session.Key = "jobzen-dashboard-development-key"
	}
	return &cfg, nil
}

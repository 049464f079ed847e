package config

import (
	"context"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port           string        `env:"PORT,            default=8000"`
	Env            string        `env:"ENV,             default=development"`
	LogLevel       string        `env:"LOG_LEVEL,       default=info"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT, default=15s"`
	CORSOrigins    []string      `env:"CORS_ORIGINS,    default=http://localhost:3000"`

	Auth  AuthConfig
	Mongo MongoConfig
	Redis RedisConfig
	Mail  MailConfig
}

type AuthConfig struct {
	SecretKey      string        `env:"SECRET_KEY, required"`
	AccessTokenTTL time.Duration `env:"ACCESS_TOKEN_TTL,  default=24h"`
	CookieName     string        `env:"ACCESS_COOKIE_KEY, default=_comclic_auth"`
	CookieSecure   bool          `env:"COOKIE_SECURE,     default=false"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=comclic"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	DB       int    `env:"REDIS_DB,       default=0"`
	Password string `env:"REDIS_PASSWORD"`
}

type MailConfig struct {
	Host     string `env:"SMTP_HOST"`
	Port     int    `env:"SMTP_PORT,    default=465"`
	Username string `env:"SMTP_USERNAME"`
	Password string `env:"SMTP_PASSWORD"`
	From     string `env:"FROM_EMAIL,   default=no-reply@comclic.local"`
	ResetURL string `env:"RESET_URL,    default=http://localhost:8000/api/auth/reset_password"`
	Workers  int    `env:"MAIL_WORKERS, default=2"`
}

// IsDevelopment reports whether the service runs with developer defaults.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load reads a .env file when present, then configuration from environment
// variables using go-envconfig. It panics when required values are missing.
func Load() *Config {
	_ = godotenv.Load()

	cfg, err := LoadFrom(context.Background(), envconfig.OsLookuper())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

// LoadFrom processes configuration from an arbitrary lookuper.
func LoadFrom(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: l,
	}); err != nil {
		return nil, err
	}
	if cfg.Auth.AccessTokenTTL <= 0 {
		return nil, fmt.Errorf("ACCESS_TOKEN_TTL must be positive, got %s", cfg.Auth.AccessTokenTTL)
	}
	// The auth cookie needs credentialed CORS, which browsers refuse for "*".
	for _, origin := range cfg.CORSOrigins {
		if origin == "*" {
			return nil, fmt.Errorf("CORS_ORIGINS must list explicit origins, got %q", origin)
		}
	}
	return &cfg, nil
}

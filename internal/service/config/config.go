package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	ListenAddr     string        `env:"BACKEND_URL" envDefault:":3000"`
	FrontendURL    string        `env:"FRONTEND_URL"`
	JWTSecret      string        `env:"JWT_SECRET,required,notEmpty"`
	TokenTTL       time.Duration `env:"TOKEN_TTL" envDefault:"24h"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`
	TLSCertFile    string        `env:"TLS_CERT_FILE"`
	TLSKeyFile     string        `env:"TLS_KEY_FILE"`

	HeroCatalogPath string `env:"HERO_CATALOG_PATH"`

	Database  DatabaseConfig  `envPrefix:"DB_"`
	Redis     RedisConfig     `envPrefix:"REDIS_"`
	Log       LogConfig       `envPrefix:"LOG_"`
	RateLimit RateLimitConfig `envPrefix:"RATE_LIMIT_"`
}

type DatabaseConfig struct {
	Host            string        `env:"HOST"`
	Port            string        `env:"PORT" envDefault:"5432"`
	User            string        `env:"USER"`
	Password        string        `env:"PASS"`
	Name            string        `env:"NAME"`
	SSLMode         string        `env:"SSLMODE" envDefault:"disable"`
	MaxOpenConns    int           `env:"MAX_OPEN_CONNS" envDefault:"100"`
	MaxIdleConns    int           `env:"MAX_IDLE_CONNS" envDefault:"50"`
	ConnMaxLifetime time.Duration `env:"CONN_MAX_LIFETIME" envDefault:"30m"`
	ConnMaxIdleTime time.Duration `env:"CONN_MAX_IDLE_TIME" envDefault:"5m"`
}

// RedisConfig is optional; an empty Endpoint disables the duplicate-submit guard.
type RedisConfig struct {
	Endpoint       string        `env:"ENDPOINT"`
	Password       string        `env:"PASSWORD"`
	DB             int           `env:"DB" envDefault:"0"`
	IdempotencyTTL time.Duration `env:"IDEMPOTENCY_TTL" envDefault:"10m"`
}

type LogConfig struct {
	AccessPath string `env:"ACCESS_PATH" envDefault:"access.log"`
	DBPath     string `env:"DB_PATH" envDefault:"db.log"`
}

type RateLimitConfig struct {
	RPS   float64 `env:"RPS" envDefault:"20"`
	Burst int     `env:"BURST" envDefault:"40"`
}

// Load reads an optional .env file and then the process environment.
func Load(files ...string) (*Config, error) {
	_ = godotenv.Load(files...)

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}

func (c *Config) TLSEnabled() bool {
	return c.TLSCertFile != "" && c.TLSKeyFile != ""
}

// LoadDatabase reads only the DB_ settings, for tools that never serve requests.
func LoadDatabase(files ...string) (DatabaseConfig, error) {
	_ = godotenv.Load(files...)

	var cfg DatabaseConfig
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "DB_"}); err != nil {
		return DatabaseConfig{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

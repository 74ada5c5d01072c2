package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Environment string `toml:"environment"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`
	RunMigrations  bool   `toml:"run_migrations"`

	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`

	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	// auth
	LoginRateLimitAllowedPerMin int `toml:"login_rate_limit_allowed_per_min"`
	SessionTTLHours             int `toml:"session_ttl_hours"`

	// week templates cache
	TemplatesCacheSizeMB     int `toml:"templates_cache_size_mb"`
	TemplatesCacheTTLSeconds int `toml:"templates_cache_ttl_seconds"`
}

func (c *Config) SessionTTL() time.Duration {
	if c.SessionTTLHours <= 0 {
		return 24 * 7 * time.Hour
	}
	return time.Duration(c.SessionTTLHours) * time.Hour
}

type Toml struct {
	Development *Config `toml:"development"`
	Production  *Config `toml:"production"`
	DockerDev   *Config `toml:"dockerdev"`
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	case "ddev", "dockerdev":
		cfg = t.DockerDev
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
	if cfg == nil {
		return nil, fmt.Errorf("no config section for env: %s", env)
	}
	return cfg, nil
}

func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode toml config [%s]: %w", path, err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	applyDefaults(cfg)

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.LoginRateLimitAllowedPerMin <= 0 {
		cfg.LoginRateLimitAllowedPerMin = 15
	}
	if cfg.TemplatesCacheSizeMB <= 0 {
		cfg.TemplatesCacheSizeMB = 10
	}
	if cfg.TemplatesCacheTTLSeconds <= 0 {
		cfg.TemplatesCacheTTLSeconds = 600
	}
}

// Secrets are never kept in the TOML file.
type Secrets struct {
	JWTSecret         string `env:"GYMWEEKS_JWT_SECRET"`
	RedisPassword     string `env:"GYMWEEKS_REDIS_PASS"`
	PostgresUser      string `env:"GYMWEEKS_POSTGRES_USER, default=postgres"`
	PostgresPassword  string `env:"GYMWEEKS_POSTGRES_PASS"`
	AdminEmail        string `env:"GYMWEEKS_ADMIN_EMAIL"`
	AdminPasswordHash string `env:"GYMWEEKS_ADMIN_PASSWORD_HASH"`
	SentryDSN         string `env:"SENTRY_DSN"`
	HoneycombEnabled  bool   `env:"HONEYCOMB_ENABLED, default=false"`
	HoneycombAPIKey   string `env:"HONEYCOMB_API_KEY"`
	OtelServiceName   string `env:"OTEL_SERVICE_NAME"`
}

// LoadSecrets reads secrets from the environment. Values from the optional
// dotEnvPath file are loaded first, without overriding variables already set.
func LoadSecrets(ctx context.Context, dotEnvPath string) (*Secrets, error) {
	if dotEnvPath != "" {
		if err := godotenv.Load(dotEnvPath); err != nil {
			return nil, fmt.Errorf("load dotenv [%s]: %w", dotEnvPath, err)
		}
	}

	var s Secrets
	if err := envconfig.Process(ctx, &s); err != nil {
		return nil, fmt.Errorf("process env secrets: %w", err)
	}
	return &s, nil
}

package config

import (
	"strings"
	"time"
)

// DefaultBackendURL is used when backend.base_url is blank.
const DefaultBackendURL = "http://localhost:8080"

// Session store kinds.
const (
	StoreBolt     = "bolt"
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Backend   BackendConfig   `yaml:"backend"`
	Session   SessionConfig   `yaml:"session"`
	Database  DatabaseConfig  `yaml:"database"`
	CSRF      CSRFConfig      `yaml:"csrf"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Log       LogConfig       `yaml:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"3000"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// BackendConfig points at the judgments REST backend.
type BackendConfig struct {
	BaseURL string        `yaml:"base_url" env:"BACKEND_BASE_URL" env-default:"http://localhost:8080"`
	Timeout time.Duration `yaml:"timeout"  env:"BACKEND_TIMEOUT"  env-default:"15s"`
}

// APIBase returns the base URL with trailing slashes removed and the
// "/api" prefix appended unless already present.
func (c BackendConfig) APIBase() string {
	base := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if base == "" {
		base = DefaultBackendURL
	}
	if strings.HasSuffix(base, "/api") {
		return base
	}
	return base + "/api"
}

// SessionConfig holds browser session settings.
type SessionConfig struct {
	Store         string        `yaml:"store"          env:"SESSION_STORE"          env-default:"bolt"`
	BoltPath      string        `yaml:"bolt_path"      env:"SESSION_BOLT_PATH"      env-default:"data/sessions.db"`
	CookieName    string        `yaml:"cookie_name"    env:"SESSION_COOKIE_NAME"    env-default:"judgment_session"`
	CookieSecure  bool          `yaml:"cookie_secure"  env:"SESSION_COOKIE_SECURE"  env-default:"false"`
	TTL           time.Duration `yaml:"ttl"            env:"SESSION_TTL"            env-default:"168h"`
	Secret        string        `yaml:"secret"         env:"SESSION_SECRET"         env-required:"true"`
	PurgeInterval time.Duration `yaml:"purge_interval" env:"SESSION_PURGE_INTERVAL" env-default:"15m"`
}

// DatabaseConfig holds PostgreSQL connection settings for the postgres
// session store.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"true"`
}

// CSRFConfig holds cross-site request forgery protection settings.
// The token key is derived from the session secret.
type CSRFConfig struct {
	Secure         bool   `yaml:"secure"          env:"CSRF_SECURE"          env-default:"false"`
	TrustedOrigins string `yaml:"trusted_origins" env:"CSRF_TRUSTED_ORIGINS"`
}

// TrustedOriginList splits TrustedOrigins on commas.
func (c CSRFConfig) TrustedOriginList() []string {
	var out []string
	for _, o := range strings.Split(c.TrustedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

// RateLimitConfig throttles the login and register forms per client IP.
type RateLimitConfig struct {
	AuthPerMinute   int           `yaml:"auth_per_minute"  env:"RATE_LIMIT_AUTH_PER_MINUTE" env-default:"10"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"RATE_LIMIT_CLEANUP"         env-default:"5m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

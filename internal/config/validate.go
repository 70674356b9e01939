package config

import (
	"fmt"
	"net/url"
	"strings"
)

// MinSecretLength is the shortest accepted session.secret.
const MinSecretLength = 32

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Session.Secret) < MinSecretLength {
		return fmt.Errorf("session.secret must be at least %d characters (got %d)", MinSecretLength, len(c.Session.Secret))
	}

	if err := c.Session.validate(); err != nil {
		return fmt.Errorf("session: %w", err)
	}

	if c.Session.Store == StorePostgres && strings.TrimSpace(c.Database.DSN) == "" {
		return fmt.Errorf("database.dsn is required when session.store is %q", StorePostgres)
	}

	if err := c.Backend.validate(); err != nil {
		return fmt.Errorf("backend: %w", err)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if c.RateLimit.AuthPerMinute <= 0 {
		return fmt.Errorf("rate_limit.auth_per_minute must be > 0 (got %d)", c.RateLimit.AuthPerMinute)
	}

	if c.RateLimit.CleanupInterval <= 0 {
		return fmt.Errorf("rate_limit.cleanup_interval must be > 0 (got %v)", c.RateLimit.CleanupInterval)
	}

	return nil
}

func (s *SessionConfig) validate() error {
	switch s.Store {
	case StoreBolt:
		if strings.TrimSpace(s.BoltPath) == "" {
			return fmt.Errorf("bolt_path is required for the bolt store")
		}
	case StorePostgres, StoreMemory:
	default:
		return fmt.Errorf("store must be one of %s, %s, %s (got %q)", StoreBolt, StorePostgres, StoreMemory, s.Store)
	}
	if s.TTL <= 0 {
		return fmt.Errorf("ttl must be > 0 (got %v)", s.TTL)
	}
	if s.PurgeInterval <= 0 {
		return fmt.Errorf("purge_interval must be > 0 (got %v)", s.PurgeInterval)
	}
	if strings.TrimSpace(s.CookieName) == "" {
		return fmt.Errorf("cookie_name is required")
	}
	return nil
}

func (b *BackendConfig) validate() error {
	u, err := url.Parse(b.APIBase())
	if err != nil {
		return fmt.Errorf("base_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("base_url must be an http(s) URL (got %q)", b.BaseURL)
	}
	if b.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", b.Timeout)
	}
	return nil
}

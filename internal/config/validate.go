package config

import (
	"fmt"
	"net/url"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if err := c.Storage.validate(); err != nil {
		return fmt.Errorf("storage: %w", err)
	}

	if c.RateLimit.PerMinute < 0 {
		return fmt.Errorf("rate_limit.per_minute must be >= 0 (got %d)", c.RateLimit.PerMinute)
	}

	if err := c.Client.validate(); err != nil {
		return fmt.Errorf("client: %w", err)
	}

	return nil
}

func (s *StorageConfig) validate() error {
	switch s.Driver {
	case DriverMemory:
	case DriverPostgres:
		if s.DSN == "" {
			return fmt.Errorf("dsn is required for driver %q", s.Driver)
		}
		if s.MaxConns < 1 {
			return fmt.Errorf("max_conns must be > 0 (got %d)", s.MaxConns)
		}
		if s.MinConns < 0 || s.MinConns > s.MaxConns {
			return fmt.Errorf("min_conns must be in 0..max_conns (got %d)", s.MinConns)
		}
	case DriverSQLite:
		if s.Path == "" {
			return fmt.Errorf("path is required for driver %q", s.Driver)
		}
	default:
		return fmt.Errorf("unknown driver %q (want memory, postgres or sqlite)", s.Driver)
	}
	return nil
}

func (c *ClientConfig) validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("base_url must be an absolute URL (got %q)", c.BaseURL)
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("request_timeout must be >= 0 (got %s)", c.RequestTimeout)
	}
	if c.CalendarDays < 1 || c.CalendarDays > 31 {
		return fmt.Errorf("calendar_days must be in 1..31 (got %d)", c.CalendarDays)
	}
	if c.DeleteConfirmDwell < 0 {
		return fmt.Errorf("delete_confirm_dwell must be >= 0 (got %s)", c.DeleteConfirmDwell)
	}
	return nil
}

package config

import (
	"errors"
	"fmt"
	"strings"
)

var supportedDrivers = map[string]bool{
	"postgres": true,
	"sqlite":   true,
	"memory":   true,
}

// Validate checks that the loaded values are usable together
func (c *Config) Validate() error {
	var problems []string

	if c.Port <= 0 || c.Port > 65535 {
		problems = append(problems, fmt.Sprintf("PORT must be between 1 and 65535, got %d", c.Port))
	}

	if !supportedDrivers[c.StorageDriver] {
		problems = append(problems, fmt.Sprintf("STORAGE_DRIVER must be one of postgres, sqlite, memory, got %q", c.StorageDriver))
	}
	if c.StorageDriver == "sqlite" && strings.TrimSpace(c.SQLitePath) == "" {
		problems = append(problems, "SQLITE_PATH must be set when STORAGE_DRIVER=sqlite")
	}

	if c.MinStake <= 0 {
		problems = append(problems, fmt.Sprintf("MIN_STAKE must be positive, got %d", c.MinStake))
	}
	if c.MaxStake < c.MinStake {
		problems = append(problems, fmt.Sprintf("MAX_STAKE (%d) must not be below MIN_STAKE (%d)", c.MaxStake, c.MinStake))
	}

	if c.RateLimitRPS > 0 && c.RateLimitBurst <= 0 {
		problems = append(problems, "RATE_LIMIT_BURST must be positive when rate limiting is enabled")
	}

	if c.ShutdownTimeout <= 0 {
		problems = append(problems, "SHUTDOWN_TIMEOUT must be positive")
	}

	if len(problems) > 0 {
		return errors.New("invalid configuration: " + strings.Join(problems, "; "))
	}
	return nil
}

// Warnings returns non-fatal notes about risky settings
func (c *Config) Warnings() []string {
	var warnings []string

	if c.StorageDriver == "memory" && !c.IsDevelopment() {
		warnings = append(warnings, "STORAGE_DRIVER=memory loses all predictions on restart")
	}

	if c.StorageDriver == "postgres" && c.DBPassword == "postgres" && !c.IsDevelopment() {
		warnings = append(warnings, "DB_PASSWORD is using the default value")
	}

	for _, origin := range c.CORSAllowedOrigins {
		if origin == "*" && !c.IsDevelopment() {
			warnings = append(warnings, "CORS_ALLOWED_ORIGINS allows every origin")
			break
		}
	}

	if c.RateLimitRPS <= 0 {
		warnings = append(warnings, "rate limiting is disabled")
	}

	return warnings
}

package config

import "time"

// Defaults applied when the matching environment variable is unset
const (
	DefaultPort          = "8080"
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "text"
	DefaultEnvironment   = "dev"
	DefaultServiceName   = "callboard"
	DefaultVersion       = "dev"
	DefaultStorageDriver = "postgres"
	DefaultSQLitePath    = "callboard.db"

	DefaultDBMaxConns        = 10
	DefaultDBMaxConnIdleTime = time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute

	DefaultMinStake = 1
	DefaultMaxStake = 1000

	DefaultRateLimitRPS    = 20.0
	DefaultRateLimitBurst  = 40
	DefaultShutdownTimeout = 10 * time.Second
)

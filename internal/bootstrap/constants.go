package bootstrap

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileName is the active log file inside LOG_DIR; rotated files get a timestamp suffix
	LogFileName = "callboard.log"

	// LogFileMaxSizeMB rotates the active file once it grows past this size
	LogFileMaxSizeMB = 50

	// LogFileMaxBackups is the number of rotated files kept on disk
	LogFileMaxBackups = 9

	// LogFileMaxAgeDays removes rotated files older than this
	LogFileMaxAgeDays = 30
)

// Log messages for startup
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingCallBoard   = "Starting CallBoard"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgConfigWarning       = "Configuration warning"
	LogMsgStorageReady        = "Storage ready"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
)

// Storage errors
const (
	ErrMsgUnknownStorageDriver = "unknown storage driver"
	ErrMsgFailedConnectDB      = "failed to connect to database"
	ErrMsgFailedMigrateDB      = "failed to migrate database"
	ErrMsgFailedOpenSQLite     = "failed to open sqlite database"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgClosingStorage       = "Closing storage..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
)

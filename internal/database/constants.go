package database

// DefaultMinConnections is the minimum number of connections kept in the pool
const DefaultMinConnections = 2

// Error Messages - Database Operations
const (
	ErrMsgFailedToParseConnString = "failed to parse connection string"
	ErrMsgFailedToCreatePool      = "failed to create connection pool"
	ErrMsgFailedToPingDatabase    = "failed to ping database"
	ErrMsgFailedToLoadMigrations  = "failed to load migrations"
	ErrMsgFailedToApplyMigrations = "failed to apply migrations"
	ErrMsgUnsupportedDialect      = "unsupported migration dialect"
)

// Log Messages
const (
	LogMsgConnectedToDatabase = "Connected to database"
	LogMsgMigrationApplied    = "Migration applied"
	LogMsgSchemaUpToDate      = "Database schema up to date"
)

package common

// RequestIDHeaderName is the HTTP header and gRPC metadata key carrying the
// request id assigned by the server.
const RequestIDHeaderName = "x-request-id"

// Storage drivers accepted by the server configuration.
const (
	StorageDriverPostgres = "postgres"
	StorageDriverSQLite   = "sqlite"
	StorageDriverGorm     = "gorm"
	StorageDriverMemory   = "memory"
	StorageDriverMySQL    = "mysql"
	StorageDriverRedis    = "redis"
)

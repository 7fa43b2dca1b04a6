// Package storage opens the configured storage engine, applies the schema
// and exposes the member repository bound to it.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/firstweek/internal/common"
	"github.com/dmitrijs2005/firstweek/internal/filex"
	"github.com/dmitrijs2005/firstweek/internal/server/repositories/members"
	"github.com/dmitrijs2005/firstweek/internal/server/repositories/repomanager"
	"github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Storage bundles the member repository with the lifecycle of the
// underlying connection.
type Storage struct {
	Driver  string
	Members members.Repository
	pingFn  func(ctx context.Context) error
	closeFn func() error
}

// redisKeyPrefix namespaces every key the redis driver writes.
const redisKeyPrefix = "firstweek"

// Ping checks that the storage is reachable. The in-memory driver is always
// reachable.
func (s *Storage) Ping(ctx context.Context) error {
	if s.pingFn == nil {
		return nil
	}
	return s.pingFn(ctx)
}

// Close releases the underlying connection pool, if any.
func (s *Storage) Close() error {
	if s.closeFn == nil {
		return nil
	}
	return s.closeFn()
}

func sqlStorage(driver string, repo members.Repository, db *sql.DB) *Storage {
	return &Storage{Driver: driver, Members: repo, pingFn: db.PingContext, closeFn: db.Close}
}

// Open connects to the storage selected by driver and runs migrations.
func Open(ctx context.Context, driver, dsn string) (*Storage, error) {
	switch driver {
	case common.StorageDriverPostgres:
		return openSQL(ctx, driver, "pgx", dsn, repomanager.NewPostgresRepositoryManager())
	case common.StorageDriverSQLite:
		return openSQL(ctx, driver, "sqlite", dsn, repomanager.NewSQLiteRepositoryManager())
	case common.StorageDriverMySQL:
		mdsn, err := mysqlDSN(dsn)
		if err != nil {
			return nil, fmt.Errorf("db open error: %w", err)
		}
		return openSQL(ctx, driver, "mysql", mdsn, repomanager.NewMySQLRepositoryManager())
	case common.StorageDriverGorm:
		return openGorm(ctx, dsn)
	case common.StorageDriverRedis:
		return openRedis(ctx, dsn)
	case common.StorageDriverMemory:
		return &Storage{Driver: driver, Members: members.NewInMemoryRepository()}, nil
	default:
		return nil, fmt.Errorf("%w: %q", common.ErrorUnknownStorageDriver, driver)
	}
}

func openSQL(ctx context.Context, driver, sqlDriver, dsn string, m repomanager.RepositoryManager) (*Storage, error) {
	if driver == common.StorageDriverSQLite {
		if path := sqliteFilePath(dsn); path != "" {
			if err := filex.EnsureParentDir(path); err != nil {
				return nil, fmt.Errorf("db open error: %w", err)
			}
		}
	}

	db, err := sql.Open(sqlDriver, dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	// every connection to an in-memory database gets its own copy
	if driver == common.StorageDriverSQLite && strings.Contains(dsn, ":memory:") {
		db.SetMaxOpenConns(1)
	}

	if err := m.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return sqlStorage(driver, m.Members(db), db), nil
}

// mysqlDSN makes the server report matched rather than changed rows.
func mysqlDSN(dsn string) (string, error) {
	c, err := mysql.ParseDSN(dsn)
	if err != nil {
		return "", err
	}
	c.ClientFoundRows = true
	return c.FormatDSN(), nil
}

// openRedis accepts a redis:// URL as DSN.
func openRedis(ctx context.Context, dsn string) (*Storage, error) {
	opts, err := redis.ParseURL(dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &Storage{
		Driver:  common.StorageDriverRedis,
		Members: members.NewRedisRepository(rdb, redisKeyPrefix),
		pingFn:  func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
		closeFn: rdb.Close,
	}, nil
}

// sqliteFilePath extracts the database file from a SQLite DSN such as
// "data/members.db" or "file:data/members.db?_pragma=foreign_keys(1)".
// In-memory DSNs have no file and yield "".
func sqliteFilePath(dsn string) string {
	if strings.Contains(dsn, ":memory:") {
		return ""
	}
	path, _, _ := strings.Cut(strings.TrimPrefix(dsn, "file:"), "?")
	return path
}

// openGorm uses GORM over PostgreSQL. The schema is still owned by the goose
// migrations so every driver sees the same table.
func openGorm(ctx context.Context, dsn string) (*Storage, error) {
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	db, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	if err := repomanager.NewPostgresRepositoryManager().RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return sqlStorage(common.StorageDriverGorm, members.NewGormRepository(gdb), db), nil
}

package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/firstweek/internal/dbx"
	"github.com/dmitrijs2005/firstweek/internal/server/migrations"
	"github.com/dmitrijs2005/firstweek/internal/server/repositories/members"
	_ "modernc.org/sqlite"
)

// SQLiteRepositoryManager is the SQLite counterpart of PostgresRepositoryManager.
type SQLiteRepositoryManager struct{}

func (m *SQLiteRepositoryManager) Members(db dbx.DBTX) members.Repository {
	return members.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	return runMigrations(ctx, db, "sqlite3", migrations.SQLiteDir)
}

func NewSQLiteRepositoryManager() RepositoryManager {
	return &SQLiteRepositoryManager{}
}

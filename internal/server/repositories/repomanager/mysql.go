package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/firstweek/internal/dbx"
	"github.com/dmitrijs2005/firstweek/internal/server/migrations"
	"github.com/dmitrijs2005/firstweek/internal/server/repositories/members"
	_ "github.com/go-sql-driver/mysql"
)

type MySQLRepositoryManager struct{}

func (m *MySQLRepositoryManager) Members(db dbx.DBTX) members.Repository {
	return members.NewMySQLRepository(db)
}

func (m *MySQLRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	return runMigrations(ctx, db, "mysql", migrations.MySQLDir)
}

func NewMySQLRepositoryManager() RepositoryManager {
	return &MySQLRepositoryManager{}
}

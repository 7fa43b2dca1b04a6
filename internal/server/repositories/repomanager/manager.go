// Package repomanager vends database/sql-backed repository implementations
// per dialect and runs the matching embedded goose migrations.
package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/firstweek/internal/dbx"
	"github.com/dmitrijs2005/firstweek/internal/server/migrations"
	"github.com/dmitrijs2005/firstweek/internal/server/repositories/members"
	"github.com/pressly/goose/v3"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Members(db dbx.DBTX) members.Repository
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// runMigrations points goose at the embedded migrations and applies the
// ones found in dir for the given goose dialect.
func runMigrations(ctx context.Context, db *sql.DB, dialect, dir string) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("goose dialect %q: %w", dialect, err)
	}
	return gooseUpContext(ctx, db, dir)
}

// Package migrations embeds the goose SQL migrations, one directory per
// dialect.
package migrations

import "embed"

// Directories inside Migrations.
const (
	PostgresDir = "postgres"
	SQLiteDir   = "sqlite"
	MySQLDir    = "mysql"
)

//go:embed postgres/*.sql sqlite/*.sql mysql/*.sql
var Migrations embed.FS

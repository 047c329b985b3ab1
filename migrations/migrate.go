package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// Migrate applies all embedded migrations for the given driver
// ("pgx" or "sqlite3"). Each driver has its own migration directory because
// the dialects disagree on serial columns and timestamp defaults.
func Migrate(db *sql.DB, driver string) error {
	goose.SetBaseFS(embedMigrations)

	dialect, dir := "pgx", "postgres"
	if driver == "sqlite3" {
		dialect, dir = "sqlite3", "sqlite"
	}

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

// Package migrations содержит SQL-миграции схемы для каждого поддерживаемого драйвера.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// dialects сопоставляет драйвер из конфигурации с диалектом goose
var dialects = map[string]string{
	"postgres": "postgres",
	"sqlite":   "sqlite3",
}

// Up применяет все миграции для указанного драйвера
func Up(db *sql.DB, driver string) error {
	dialect, ok := dialects[driver]
	if !ok {
		return fmt.Errorf("unsupported database driver %q", driver)
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}

	if err := goose.Up(db, driver); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

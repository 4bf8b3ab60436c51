package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"strings"

	"github.com/pressly/goose/v3"
	"go.uber.org/zap"

	"github.com/company-records-api/internal/config"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var embedMigrations embed.FS

// Migrate применяет встроенные миграции для указанного драйвера
func Migrate(ctx context.Context, db *sql.DB, driver string, logger *zap.Logger) error {
	dialect, dir := "postgres", "migrations/postgres"
	if driver == config.DriverSQLite {
		dialect, dir = "sqlite3", "migrations/sqlite"
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(gooseLogger{logger.Sugar()})

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, dir); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

// gooseLogger направляет вывод goose в zap
type gooseLogger struct {
	*zap.SugaredLogger
}

func (l gooseLogger) Printf(format string, v ...any) {
	l.Infof(strings.TrimSpace(format), v...)
}

// Package database opens the PostgreSQL pool and manages the schema for
// the taxi CMS: blogs with revisions, the route/city/airport directory,
// taxonomies, roles, media, redirects, audit logs and bookings. The goose
// migration set is embedded so a fresh database bootstraps itself on
// startup; Seed then installs the built-in roles and first admin.
package database

import (
	"database/sql"
	"embed"
	"fmt"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations
var embedMigrations embed.FS

// Connect opens a PostgreSQL pool via the pgx stdlib driver and pings it
// once so a bad DSN fails at startup rather than on the first request.
func Connect(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("database open: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("database ping: %w", err)
	}

	slog.Info("database connected")
	return db, nil
}

// Migrate applies any pending migrations from the embedded set. The SQL
// files under migrations/ are compiled into the binary, so deployments
// carry their own schema.
func Migrate(db *sql.DB) error {
	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose set dialect: %w", err)
	}

	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	slog.Info("database migrations applied")
	return nil
}

// store_test.go provides a shared test database helper for all store
// integration tests. Tests are skipped if PostgreSQL is not available.
package store

import (
	"database/sql"
	"os"
	"testing"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"gujarattaxi/internal/database"
)

// testDSN returns the PostgreSQL connection string for testing.
// Uses environment variables with defaults matching docker-compose.yml.
func testDSN() string {
	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "gujarattaxi")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "gujarattaxi")
	return "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test database and runs migrations.
// If the database is unavailable, the test is skipped. A cleanup
// function is registered to close the connection when the test finishes.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := testDSN()
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Skipf("skipping integration test: cannot open DB: %v", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping integration test: DB not reachable: %v", err)
	}

	// Run migrations to ensure the schema is current.
	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	// Downgrade goose global state.
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// cleanBlogs removes test blogs by slug. Call in t.Cleanup().
func cleanBlogs(t *testing.T, db *sql.DB, slugs ...string) {
	t.Helper()
	for _, slug := range slugs {
		db.Exec("DELETE FROM blog_revisions WHERE blog_id IN (SELECT id FROM blogs WHERE slug = $1)", slug)
		db.Exec("DELETE FROM blogs WHERE slug = $1", slug)
	}
}

// cleanRoutes removes test routes by url. Call in t.Cleanup().
func cleanRoutes(t *testing.T, db *sql.DB, urls ...string) {
	t.Helper()
	for _, url := range urls {
		db.Exec("DELETE FROM routes WHERE url = $1", url)
	}
}

// cleanRoles removes test roles by slug. Call in t.Cleanup().
func cleanRoles(t *testing.T, db *sql.DB, slugs ...string) {
	t.Helper()
	for _, slug := range slugs {
		db.Exec("DELETE FROM roles WHERE slug = $1", slug)
	}
}

// cleanRedirects removes test redirects by from_path. Call in t.Cleanup().
func cleanRedirects(t *testing.T, db *sql.DB, paths ...string) {
	t.Helper()
	for _, p := range paths {
		db.Exec("DELETE FROM redirects WHERE from_path = $1", p)
	}
}

// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for handler integration
// tests. Tests are skipped when PostgreSQL or Redis are unavailable.
package handlers

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"

	"gujarattaxi/internal/database"
	"gujarattaxi/internal/middleware"
	"gujarattaxi/internal/resolver"
	"gujarattaxi/internal/session"
	"gujarattaxi/internal/store"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test PostgreSQL, runs migrations and
// the seed.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "gujarattaxi")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "gujarattaxi")
	dsn := "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Skipf("skipping: cannot open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping: DB not reachable: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("migrate: %v", err)
	}
	goose.SetBaseFS(nil)

	if err := database.Seed(db); err != nil {
		db.Close()
		t.Fatalf("seed: %v", err)
	}

	t.Cleanup(func() { db.Close() })
	return db
}

// testRedisClient returns a Redis client for handler tests on DB 15.
func testRedisClient(t *testing.T) *redis.Client {
	t.Helper()

	host := envOr("REDIS_HOST", "localhost")
	port := envOr("REDIS_PORT", "6379")
	password := os.Getenv("REDIS_PASSWORD")

	client := redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: password,
		DB:       15,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping: Redis not reachable: %v", err)
	}

	t.Cleanup(func() {
		keys, _ := client.Keys(ctx, "session:*").Result()
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
		client.Close()
	})

	return client
}

// testEnv holds all dependencies for handler integration tests.
type testEnv struct {
	DB        *sql.DB
	Redis     *redis.Client
	Sessions  *session.Store
	Users     *store.UserStore
	Roles     *store.RoleStore
	BlogStore *store.BlogStore
	Revisions *store.RevisionStore
	Auth      *Auth
	Blogs     *Blogs
	Directory *Directory
	Taxonomy  *Taxonomy
	Roleh     *Roles
	Userh     *Users
	Redirects *Redirects
	Bookings  *Bookings
	Public    *Public
}

// newTestEnv creates a complete test environment with all handler
// dependencies. Object storage is left nil; media upload tests live in
// the storage-aware suite.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := testDB(t)
	rdb := testRedisClient(t)

	sessions := session.NewStore(rdb, false)
	userStore := store.NewUserStore(db)
	roleStore := store.NewRoleStore(db)
	blogStore := store.NewBlogStore(db)
	revisionStore := store.NewRevisionStore(db)
	routeStore := store.NewRouteStore(db)
	cityStore := store.NewCityStore(db)
	airportStore := store.NewAirportStore(db)
	categoryStore := store.NewCategoryStore(db)
	tagStore := store.NewTagStore(db)
	redirectStore := store.NewRedirectStore(db)
	auditStore := store.NewAuditLogStore(db)
	bookingStore := store.NewBookingStore(db)

	res := resolver.New(routeStore, cityStore, airportStore, blogStore)

	return &testEnv{
		DB:        db,
		Redis:     rdb,
		Sessions:  sessions,
		Users:     userStore,
		Roles:     roleStore,
		BlogStore: blogStore,
		Revisions: revisionStore,
		Auth:      NewAuth(sessions, userStore, roleStore),
		Blogs:     NewBlogs(blogStore, revisionStore, categoryStore, tagStore, auditStore, nil),
		Directory: NewDirectory(routeStore, cityStore, airportStore, auditStore),
		Taxonomy:  NewTaxonomy(categoryStore, tagStore, auditStore),
		Roleh:     NewRoles(roleStore, auditStore),
		Userh:     NewUsers(userStore, auditStore),
		Redirects: NewRedirects(redirectStore, auditStore),
		Bookings:  NewBookings(bookingStore, auditStore),
		Public:    NewPublic(res, blogStore, routeStore, cityStore, airportStore, categoryStore, tagStore, "http://localhost:8080"),
	}
}

// ctxWithSession adds session data to a context using the middleware key.
func ctxWithSession(ctx context.Context, data *session.Data) context.Context {
	return context.WithValue(ctx, middleware.SessionKey, data)
}

// testSession creates a session.Data for testing.
func testSession(userID uuid.UUID, email, roleSlug string, twoFADone bool) *session.Data {
	return &session.Data{
		UserID:    userID,
		Email:     email,
		UserName:  "Test User",
		RoleSlug:  roleSlug,
		TwoFADone: twoFADone,
	}
}

// withChiURLParam adds a chi URL parameter to a request.
func withChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// cleanBlogs removes test blogs (and their revisions) by slug.
func cleanBlogs(t *testing.T, db *sql.DB, slugs ...string) {
	t.Helper()
	for _, s := range slugs {
		db.Exec("DELETE FROM blog_revisions WHERE blog_id IN (SELECT id FROM blogs WHERE slug = $1)", s)
		db.Exec("DELETE FROM blogs WHERE slug = $1", s)
	}
}

// cleanRedirects removes test redirect rules by source path.
func cleanRedirects(t *testing.T, db *sql.DB, paths ...string) {
	t.Helper()
	for _, p := range paths {
		db.Exec("DELETE FROM redirects WHERE from_path = $1", p)
	}
}

// cleanBookings removes test bookings by phone number.
func cleanBookings(t *testing.T, db *sql.DB, phones ...string) {
	t.Helper()
	for _, p := range phones {
		db.Exec("DELETE FROM bookings WHERE phone = $1", p)
	}
}

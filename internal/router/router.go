// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains for the
// API server. Routes are organized into public and admin groups with
// per-group permission middleware.
package router

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"

	"gujarattaxi/internal/handlers"
	"gujarattaxi/internal/middleware"
	"gujarattaxi/internal/models"
	"gujarattaxi/internal/session"
)

// Deps bundles everything the router wires together.
type Deps struct {
	Sessions  *session.Store
	Roles     middleware.RoleFinder
	Auth      *handlers.Auth
	Blogs     *handlers.Blogs
	Directory *handlers.Directory
	Taxonomy  *handlers.Taxonomy
	Roleh     *handlers.Roles
	Users     *handlers.Users
	Media     *handlers.MediaLibrary
	Redirects *handlers.Redirects
	Bookings  *handlers.Bookings
	AuditLogs *handlers.AuditLogs
	Public    *handlers.Public

	// AllowedOrigins is the comma-separated CORS allowlist. Empty
	// disables cross-origin access.
	AllowedOrigins string

	// BookingLimiter rate-limits the public booking form by client IP.
	BookingLimiter *middleware.RateLimiter
}

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(d Deps) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	if d.AllowedOrigins != "" {
		r.Use(cors.New(cors.Options{
			AllowedOrigins:   splitOrigins(d.AllowedOrigins),
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Content-Type"},
			AllowCredentials: true,
			MaxAge:           300,
		}).Handler)
	}
	r.Use(middleware.LoadSession(d.Sessions))

	// Health check.
	r.Get("/health", healthHandler)

	// Public API.
	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", d.Auth.Login)
		r.Post("/auth/logout", d.Auth.Logout)

		r.Get("/resolve/{slug}", d.Public.Resolve)
		r.Get("/blogs", d.Public.ListBlogs)
		r.Get("/blogs/{slug}", d.Public.GetBlogBySlug)
		r.Get("/routes/grouped", d.Directory.GroupedRoutes)
		r.Get("/cities/grouped", d.Directory.GroupedCities)
		r.Get("/airports/grouped", d.Directory.GroupedAirports)
		r.Get("/redirects/lookup", d.Redirects.Lookup)

		// Booking form submissions are rate-limited per client IP.
		r.Group(func(r chi.Router) {
			if d.BookingLimiter != nil {
				r.Use(d.BookingLimiter.Middleware)
			}
			r.Post("/bookings", d.Bookings.Create)
		})
	})

	r.Get("/sitemap.xml", d.Public.Sitemap)

	// Admin API. Every route past this point requires a session; 2FA
	// verification is enforced once enrolled.
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(middleware.RequireAuth)

		// 2FA endpoints are reachable with the challenge still pending.
		r.Post("/2fa/setup", d.Auth.Setup2FA)
		r.Post("/2fa/verify", d.Auth.Verify2FA)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Require2FA)

			r.Get("/me", d.Auth.Me)

			perm := func(check func(models.Permissions) bool) func(http.Handler) http.Handler {
				return middleware.RequirePermission(d.Roles, check)
			}

			// Blogs and revisions.
			r.Route("/blogs", func(r chi.Router) {
				r.With(perm(func(p models.Permissions) bool { return p.BlogView })).
					Get("/", d.Blogs.List)
				r.With(perm(func(p models.Permissions) bool { return p.BlogView })).
					Get("/{id}", d.Blogs.Get)
				r.With(perm(func(p models.Permissions) bool { return p.BlogCreate })).
					Post("/", d.Blogs.Create)
				r.With(perm(func(p models.Permissions) bool { return p.BlogEdit })).
					Put("/{id}", d.Blogs.Update)
				r.With(perm(func(p models.Permissions) bool { return p.BlogDelete })).
					Delete("/{id}", d.Blogs.Delete)

				r.With(perm(func(p models.Permissions) bool { return p.BlogView })).
					Get("/{id}/revisions", d.Blogs.ListRevisions)
				r.With(perm(func(p models.Permissions) bool { return p.BlogEdit })).
					Post("/{id}/revisions", d.Blogs.CreateRevision)
				r.With(perm(func(p models.Permissions) bool { return p.BlogEdit })).
					Post("/{id}/revisions/{revisionId}/restore", d.Blogs.RestoreRevision)
			})

			// Directory collections.
			seo := perm(func(p models.Permissions) bool { return p.SEOManage })
			r.Route("/routes", func(r chi.Router) {
				r.Get("/", d.Directory.ListRoutes)
				r.Get("/{id}", d.Directory.GetRoute)
				r.With(seo).Post("/", d.Directory.CreateRoute)
				r.With(seo).Put("/{id}", d.Directory.UpdateRoute)
				r.With(seo).Delete("/{id}", d.Directory.DeleteRoute)
			})
			r.Route("/cities", func(r chi.Router) {
				r.Get("/", d.Directory.ListCities)
				r.Get("/{id}", d.Directory.GetCity)
				r.With(seo).Post("/", d.Directory.CreateCity)
				r.With(seo).Put("/{id}", d.Directory.UpdateCity)
				r.With(seo).Delete("/{id}", d.Directory.DeleteCity)
			})
			r.Route("/airports", func(r chi.Router) {
				r.Get("/", d.Directory.ListAirports)
				r.Get("/{id}", d.Directory.GetAirport)
				r.With(seo).Post("/", d.Directory.CreateAirport)
				r.With(seo).Put("/{id}", d.Directory.UpdateAirport)
				r.With(seo).Delete("/{id}", d.Directory.DeleteAirport)
			})

			// Taxonomies.
			cat := perm(func(p models.Permissions) bool { return p.CategoryManage })
			r.Route("/categories", func(r chi.Router) {
				r.Get("/", d.Taxonomy.ListCategories)
				r.Get("/{id}", d.Taxonomy.GetCategory)
				r.With(cat).Post("/", d.Taxonomy.CreateCategory)
				r.With(cat).Put("/{id}", d.Taxonomy.UpdateCategory)
				r.With(cat).Delete("/{id}", d.Taxonomy.DeleteCategory)
			})
			tag := perm(func(p models.Permissions) bool { return p.TagManage })
			r.Route("/tags", func(r chi.Router) {
				r.Get("/", d.Taxonomy.ListTags)
				r.Get("/{id}", d.Taxonomy.GetTag)
				r.With(tag).Post("/", d.Taxonomy.CreateTag)
				r.With(tag).Put("/{id}", d.Taxonomy.UpdateTag)
				r.With(tag).Delete("/{id}", d.Taxonomy.DeleteTag)
			})

			// Roles and users.
			roleMgr := perm(func(p models.Permissions) bool { return p.RoleManage })
			r.Route("/roles", func(r chi.Router) {
				r.Use(roleMgr)
				r.Get("/", d.Roleh.List)
				r.Get("/{id}", d.Roleh.Get)
				r.Post("/", d.Roleh.Create)
				r.Put("/{id}", d.Roleh.Update)
				r.Delete("/{id}", d.Roleh.Delete)
			})
			userMgr := perm(func(p models.Permissions) bool { return p.UserManage })
			r.Route("/users", func(r chi.Router) {
				r.Use(userMgr)
				r.Get("/", d.Users.List)
				r.Get("/{id}", d.Users.Get)
				r.Post("/", d.Users.Create)
				r.Put("/{id}", d.Users.Update)
				r.Delete("/{id}", d.Users.Delete)
			})

			// Media library.
			r.Route("/media", func(r chi.Router) {
				r.With(perm(func(p models.Permissions) bool { return p.MediaView })).
					Get("/", d.Media.List)
				r.With(perm(func(p models.Permissions) bool { return p.MediaView })).
					Get("/{id}", d.Media.Get)
				r.With(perm(func(p models.Permissions) bool { return p.MediaUpload })).
					Post("/", d.Media.Upload)
				r.With(perm(func(p models.Permissions) bool { return p.MediaUpload })).
					Put("/{id}", d.Media.UpdateMeta)
				r.With(perm(func(p models.Permissions) bool { return p.MediaDelete })).
					Delete("/{id}", d.Media.Delete)
			})

			// Redirects.
			redir := perm(func(p models.Permissions) bool { return p.RedirectManage })
			r.Route("/redirects", func(r chi.Router) {
				r.Use(redir)
				r.Get("/", d.Redirects.List)
				r.Post("/", d.Redirects.Create)
				r.Put("/{id}", d.Redirects.Update)
				r.Delete("/{id}", d.Redirects.Delete)
			})

			// Bookings (admin side).
			r.Route("/bookings", func(r chi.Router) {
				r.Get("/", d.Bookings.List)
				r.Get("/{id}", d.Bookings.Get)
				r.Put("/{id}", d.Bookings.Update)
				r.Delete("/{id}", d.Bookings.Delete)
			})

			// Audit log.
			r.With(perm(func(p models.Permissions) bool { return p.AuditView })).
				Get("/audit-logs", d.AuditLogs.List)
		})
	})

	return r
}

// NewBookingLimiter returns the rate limiter used on the public booking
// endpoint: 5 submissions per client IP per minute.
func NewBookingLimiter() *middleware.RateLimiter {
	return middleware.NewRateLimiter(5, time.Minute)
}

func splitOrigins(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

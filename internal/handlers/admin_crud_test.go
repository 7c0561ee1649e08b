// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// admin_crud_test.go contains handler integration tests for the admin
// CRUD surfaces: blogs with revisions, roles, redirects and bookings.
package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"gujarattaxi/internal/models"
)

func jsonBody(t *testing.T, v any) *bytes.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	return bytes.NewReader(b)
}

func TestBlogLifecycleWithRevisions(t *testing.T) {
	env := newTestEnv(t)
	cleanBlogs(t, env.DB, "handler-lifecycle-post")
	t.Cleanup(func() { cleanBlogs(t, env.DB, "handler-lifecycle-post") })

	// Create.
	req := httptest.NewRequest(http.MethodPost, "/api/admin/blogs", jsonBody(t, map[string]any{
		"title":       "Lifecycle Post",
		"slug":        "handler-lifecycle-post",
		"description": "First version",
		"image":       "https://cdn.example.com/lifecycle.jpg",
		"status":      "published",
	}))
	rec := httptest.NewRecorder()
	env.Blogs.Create(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status: got %d: %s", rec.Code, rec.Body.String())
	}

	var createResp struct {
		Blog models.Blog `json:"blog"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &createResp); err != nil {
		t.Fatalf("decode create: %v", err)
	}
	id := createResp.Blog.ID.String()
	if createResp.Blog.Status != models.BlogStatusPublished {
		t.Errorf("status: got %s, want published", createResp.Blog.Status)
	}

	// Update snapshots the outgoing version into the revision log.
	req = httptest.NewRequest(http.MethodPut, "/api/admin/blogs/"+id, jsonBody(t, map[string]any{
		"title":       "Lifecycle Post v2",
		"slug":        "handler-lifecycle-post",
		"description": "Second version",
		"image":       "https://cdn.example.com/lifecycle.jpg",
		"status":      "published",
	}))
	req = withChiURLParam(req, "id", id)
	rec = httptest.NewRecorder()
	env.Blogs.Update(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("update status: got %d: %s", rec.Code, rec.Body.String())
	}

	// One revision must exist, holding the pre-update content.
	req = httptest.NewRequest(http.MethodGet, "/api/admin/blogs/"+id+"/revisions", nil)
	req = withChiURLParam(req, "id", id)
	rec = httptest.NewRecorder()
	env.Blogs.ListRevisions(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("revisions status: got %d: %s", rec.Code, rec.Body.String())
	}

	var revResp struct {
		Revisions []models.BlogRevision `json:"revisions"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &revResp); err != nil {
		t.Fatalf("decode revisions: %v", err)
	}
	if len(revResp.Revisions) != 1 {
		t.Fatalf("revisions: got %d, want 1", len(revResp.Revisions))
	}
	if revResp.Revisions[0].Title != "Lifecycle Post" {
		t.Errorf("revision title: got %q, want the pre-update title", revResp.Revisions[0].Title)
	}

	// Restore brings the old content back without adding a revision.
	revID := revResp.Revisions[0].ID.String()
	req = httptest.NewRequest(http.MethodPost, "/api/admin/blogs/"+id+"/revisions/"+revID+"/restore", nil)
	req = withChiURLParam(req, "id", id)
	req = withChiURLParam(req, "revisionId", revID)
	rec = httptest.NewRecorder()
	env.Blogs.RestoreRevision(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("restore status: got %d: %s", rec.Code, rec.Body.String())
	}

	var restoreResp struct {
		Blog models.Blog `json:"blog"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &restoreResp); err != nil {
		t.Fatalf("decode restore: %v", err)
	}
	if restoreResp.Blog.Title != "Lifecycle Post" {
		t.Errorf("restored title: got %q, want %q", restoreResp.Blog.Title, "Lifecycle Post")
	}

	revs, err := env.Revisions.ListByBlogID(createResp.Blog.ID)
	if err != nil {
		t.Fatalf("list revisions: %v", err)
	}
	if len(revs) != 1 {
		t.Errorf("revision count after restore: got %d, want 1", len(revs))
	}
}

func TestBlogCreate_DuplicateSlugConflicts(t *testing.T) {
	env := newTestEnv(t)
	cleanBlogs(t, env.DB, "handler-dup-slug")
	t.Cleanup(func() { cleanBlogs(t, env.DB, "handler-dup-slug") })

	payload := map[string]any{
		"title":       "Dup",
		"slug":        "handler-dup-slug",
		"description": "Body",
		"image":       "https://cdn.example.com/dup.jpg",
	}

	rec := httptest.NewRecorder()
	env.Blogs.Create(rec, httptest.NewRequest(http.MethodPost, "/api/admin/blogs", jsonBody(t, payload)))
	if rec.Code != http.StatusCreated {
		t.Fatalf("first create: got %d: %s", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	env.Blogs.Create(rec, httptest.NewRequest(http.MethodPost, "/api/admin/blogs", jsonBody(t, payload)))
	if rec.Code != http.StatusConflict {
		t.Errorf("second create: got %d, want 409", rec.Code)
	}
}

func TestRoleCreate_ReservedSlugRejected(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/roles", jsonBody(t, map[string]any{
		"name": "Fake Admin",
		"slug": "super-admin",
	}))
	rec := httptest.NewRecorder()

	env.Roleh.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400", rec.Code)
	}
}

func TestRoleUpdate_ProtectedRoleRejected(t *testing.T) {
	env := newTestEnv(t)

	role, err := env.Roles.FindBySlug(models.RoleSlugSuperAdmin)
	if err != nil {
		t.Fatalf("find role: %v", err)
	}
	if role == nil {
		t.Skip("skipping: super-admin role not seeded")
	}

	req := httptest.NewRequest(http.MethodPut, "/api/admin/roles/"+role.ID.String(), jsonBody(t, map[string]any{
		"name": "Renamed",
	}))
	req = withChiURLParam(req, "id", role.ID.String())
	rec := httptest.NewRecorder()

	env.Roleh.Update(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400", rec.Code)
	}
}

func TestRedirectCreateAndPublicLookup(t *testing.T) {
	env := newTestEnv(t)
	cleanRedirects(t, env.DB, "/handler-old-path")
	t.Cleanup(func() { cleanRedirects(t, env.DB, "/handler-old-path") })

	req := httptest.NewRequest(http.MethodPost, "/api/admin/redirects", jsonBody(t, map[string]any{
		"fromPath": "/handler-old-path",
		"toPath":   "/handler-new-path",
	}))
	rec := httptest.NewRecorder()
	env.Redirects.Create(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status: got %d: %s", rec.Code, rec.Body.String())
	}

	// Public lookup finds the active rule.
	req = httptest.NewRequest(http.MethodGet, "/api/redirects/lookup?path=/handler-old-path", nil)
	rec = httptest.NewRecorder()
	env.Redirects.Lookup(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("lookup status: got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		ToPath string `json:"toPath"`
		Type   string `json:"type"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode lookup: %v", err)
	}
	if resp.ToPath != "/handler-new-path" {
		t.Errorf("toPath: got %q, want /handler-new-path", resp.ToPath)
	}
	if resp.Type != "301" {
		t.Errorf("type: got %q, want 301 by default", resp.Type)
	}
}

func TestRedirectLookup_MissingPath(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/api/redirects/lookup", nil)
	rec := httptest.NewRecorder()

	env.Redirects.Lookup(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400", rec.Code)
	}
}

func TestBookingCreate_Public(t *testing.T) {
	env := newTestEnv(t)
	cleanBookings(t, env.DB, "+91 90000 11111")
	t.Cleanup(func() { cleanBookings(t, env.DB, "+91 90000 11111") })

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", jsonBody(t, map[string]any{
		"tripType":   "one-way",
		"from":       "Ahmedabad",
		"to":         "Vadodara",
		"date":       "2026-10-01T09:00:00Z",
		"passengers": 3,
		"carType":    "sedan",
		"phone":      "+91 90000 11111",
	}))
	rec := httptest.NewRecorder()

	env.Bookings.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status: got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestBookingCreate_InvalidRejected(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", jsonBody(t, map[string]any{
		"tripType":   "one-way",
		"from":       "",
		"date":       "2026-10-01T09:00:00Z",
		"passengers": 3,
		"phone":      "+91 90000 11111",
	}))
	rec := httptest.NewRecorder()

	env.Bookings.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400", rec.Code)
	}
}

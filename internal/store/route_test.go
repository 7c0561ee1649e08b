package store

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"gujarattaxi/internal/models"
)

func TestRouteStoreCreateAndFindByURL(t *testing.T) {
	db := testDB(t)
	s := NewRouteStore(db)

	url := "test-ahmedabad-surat-" + uuid.NewString()[:8]
	t.Cleanup(func() { cleanRoutes(t, db, url) })

	route := &models.Route{
		Name: "Ahmedabad to Surat",
		From: "Ahmedabad",
		To:   "Surat",
		URL:  url,
	}

	created, err := s.Create(route)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == uuid.Nil {
		t.Error("expected non-nil UUID")
	}

	found, err := s.FindByURL(url)
	if err != nil {
		t.Fatalf("FindByURL: %v", err)
	}
	if found == nil {
		t.Fatal("expected route, got nil")
	}
	if found.From != "Ahmedabad" || found.To != "Surat" {
		t.Errorf("endpoints: got %q -> %q", found.From, found.To)
	}

	missing, err := s.FindByURL("nonexistent-url-xyz")
	if err != nil {
		t.Fatalf("FindByURL (missing): %v", err)
	}
	if missing != nil {
		t.Error("expected nil for unknown url")
	}
}

func TestRouteStoreDuplicateURL(t *testing.T) {
	db := testDB(t)
	s := NewRouteStore(db)

	url := "test-dup-route-" + uuid.NewString()[:8]
	t.Cleanup(func() { cleanRoutes(t, db, url) })

	if _, err := s.Create(&models.Route{Name: "First", URL: url}); err != nil {
		t.Fatalf("Create first: %v", err)
	}

	_, err := s.Create(&models.Route{Name: "Second", URL: url})
	if !errors.Is(err, ErrDuplicate) {
		t.Errorf("expected ErrDuplicate, got %v", err)
	}
}

func TestRouteStoreDanglingBlogRef(t *testing.T) {
	db := testDB(t)
	routes := NewRouteStore(db)
	blogs := NewBlogStore(db)

	url := "test-dangling-" + uuid.NewString()[:8]
	slug := "test-dangling-blog-" + uuid.NewString()[:8]
	t.Cleanup(func() {
		cleanRoutes(t, db, url)
		cleanBlogs(t, db, slug)
	})

	blog, err := blogs.Create(&models.Blog{Title: "Linked", Slug: slug, Description: "x", Status: models.BlogStatusDraft})
	if err != nil {
		t.Fatalf("Create blog: %v", err)
	}

	created, err := routes.Create(&models.Route{Name: "Linked Route", URL: url, BlogID: &blog.ID})
	if err != nil {
		t.Fatalf("Create route: %v", err)
	}

	// Deleting the blog leaves the reference dangling, not an error.
	if err := blogs.Delete(blog.ID); err != nil {
		t.Fatalf("Delete blog: %v", err)
	}

	found, err := routes.FindByID(created.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if found == nil {
		t.Fatal("expected route to survive blog deletion")
	}
	if found.BlogID == nil || *found.BlogID != blog.ID {
		t.Error("expected dangling blog id to remain")
	}
}

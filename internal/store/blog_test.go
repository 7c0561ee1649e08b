package store

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"gujarattaxi/internal/models"
)

func TestBlogStoreCreateAndFind(t *testing.T) {
	db := testDB(t)
	s := NewBlogStore(db)

	slug := "test-create-blog-" + uuid.NewString()[:8]
	t.Cleanup(func() { cleanBlogs(t, db, slug) })

	blog := &models.Blog{
		Title:        "Ahmedabad to Surat Taxi",
		Slug:         slug,
		Description:  "<p>Comfortable rides</p>",
		MetaKeywords: []string{"taxi", "ahmedabad"},
		FAQs: []models.FAQ{
			{Question: "How long is the trip?", Answer: "About 4 hours."},
		},
		Status: models.BlogStatusDraft,
	}

	created, err := s.Create(blog)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if created.ID == uuid.Nil {
		t.Error("expected non-nil UUID")
	}
	if created.Status != models.BlogStatusDraft {
		t.Errorf("status: got %q, want %q", created.Status, models.BlogStatusDraft)
	}
	if len(created.MetaKeywords) != 2 {
		t.Errorf("meta keywords: got %d, want 2", len(created.MetaKeywords))
	}
	if len(created.FAQs) != 1 || created.FAQs[0].Question != "How long is the trip?" {
		t.Errorf("faqs round-trip failed: %+v", created.FAQs)
	}

	found, err := s.FindByID(created.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if found == nil {
		t.Fatal("expected blog, got nil")
	}
	if found.Slug != slug {
		t.Errorf("slug: got %q, want %q", found.Slug, slug)
	}
}

func TestBlogStoreDuplicateSlug(t *testing.T) {
	db := testDB(t)
	s := NewBlogStore(db)

	slug := "test-dup-" + uuid.NewString()[:8]
	t.Cleanup(func() { cleanBlogs(t, db, slug) })

	if _, err := s.Create(&models.Blog{Title: "First", Slug: slug, Description: "a", Status: models.BlogStatusDraft}); err != nil {
		t.Fatalf("Create first: %v", err)
	}

	_, err := s.Create(&models.Blog{Title: "Second", Slug: slug, Description: "b", Status: models.BlogStatusDraft})
	if !errors.Is(err, ErrDuplicate) {
		t.Errorf("expected ErrDuplicate, got %v", err)
	}
}

func TestBlogStoreFindPublishedBySlug(t *testing.T) {
	db := testDB(t)
	s := NewBlogStore(db)

	slug := "test-pubslug-" + uuid.NewString()[:8]
	t.Cleanup(func() { cleanBlogs(t, db, slug) })

	s.Create(&models.Blog{Title: "Draft", Slug: slug, Description: "d", Status: models.BlogStatusDraft})

	// Drafts are invisible to the public lookup.
	found, err := s.FindPublishedBySlug(slug)
	if err != nil {
		t.Fatalf("FindPublishedBySlug (draft): %v", err)
	}
	if found != nil {
		t.Error("expected nil for draft blog")
	}

	db.Exec("UPDATE blogs SET status = 'published' WHERE slug = $1", slug)

	found, err = s.FindPublishedBySlug(slug)
	if err != nil {
		t.Fatalf("FindPublishedBySlug (published): %v", err)
	}
	if found == nil {
		t.Fatal("expected blog after publishing")
	}

	// Admin lookup sees any status.
	any, err := s.FindBySlug(slug)
	if err != nil {
		t.Fatalf("FindBySlug: %v", err)
	}
	if any == nil {
		t.Error("expected blog via admin lookup")
	}
}

func TestBlogStoreUpdate(t *testing.T) {
	db := testDB(t)
	s := NewBlogStore(db)

	slug := "test-update-" + uuid.NewString()[:8]
	t.Cleanup(func() { cleanBlogs(t, db, slug) })

	created, _ := s.Create(&models.Blog{Title: "Original", Slug: slug, Description: "o", Status: models.BlogStatusDraft})

	created.Title = "Updated Title"
	created.Status = models.BlogStatusPublished
	created.CategoryIDs = []uuid.UUID{uuid.New()}

	if err := s.Update(created); err != nil {
		t.Fatalf("Update: %v", err)
	}

	found, _ := s.FindByID(created.ID)
	if found.Title != "Updated Title" {
		t.Errorf("title: got %q, want %q", found.Title, "Updated Title")
	}
	if found.Status != models.BlogStatusPublished {
		t.Errorf("status: got %q, want %q", found.Status, models.BlogStatusPublished)
	}
	if len(found.CategoryIDs) != 1 {
		t.Errorf("category ids: got %d, want 1", len(found.CategoryIDs))
	}
}

func TestBlogStorePromoteDue(t *testing.T) {
	db := testDB(t)
	s := NewBlogStore(db)

	slug := "test-promote-" + uuid.NewString()[:8]
	t.Cleanup(func() { cleanBlogs(t, db, slug) })

	past := time.Now().Add(-time.Hour)
	created, err := s.Create(&models.Blog{
		Title: "Scheduled", Slug: slug, Description: "s",
		Status: models.BlogStatusScheduled, ScheduledAt: &past,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	n, err := s.PromoteDue(time.Now())
	if err != nil {
		t.Fatalf("PromoteDue: %v", err)
	}
	if n < 1 {
		t.Errorf("expected at least 1 promotion, got %d", n)
	}

	found, _ := s.FindByID(created.ID)
	if found.Status != models.BlogStatusPublished {
		t.Errorf("status after promote: got %q, want published", found.Status)
	}
}

func TestRevisionStoreAppendAndList(t *testing.T) {
	db := testDB(t)
	blogs := NewBlogStore(db)
	revs := NewRevisionStore(db)

	slug := "test-rev-" + uuid.NewString()[:8]
	t.Cleanup(func() { cleanBlogs(t, db, slug) })

	blog, err := blogs.Create(&models.Blog{Title: "Rev Target", Slug: slug, Description: "v1", Status: models.BlogStatusDraft})
	if err != nil {
		t.Fatalf("Create blog: %v", err)
	}

	for _, title := range []string{"v1", "v2", "v3"} {
		if _, err := revs.Create(&models.BlogRevision{
			BlogID: blog.ID, Title: title, Description: "body " + title,
		}); err != nil {
			t.Fatalf("Create revision %s: %v", title, err)
		}
	}

	list, err := revs.ListByBlogID(blog.ID)
	if err != nil {
		t.Fatalf("ListByBlogID: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("revisions: got %d, want 3", len(list))
	}

	// Newest first.
	if list[0].Title != "v3" {
		t.Errorf("first revision: got %q, want v3", list[0].Title)
	}

	found, err := revs.FindByID(list[1].ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if found == nil || found.Title != "v2" {
		t.Errorf("expected v2 revision, got %+v", found)
	}
}

// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"gujarattaxi/internal/models"
)

const blogColumns = `id, title, slug, description, image, image_key,
	meta_title, meta_description, meta_keywords, extra_metatag, faqs,
	category_ids, tag_ids, status, scheduled_at, canonical_url,
	featured_image_alt, created_at, updated_at`

// BlogStore handles all blog-related database operations.
type BlogStore struct {
	db *sql.DB
}

// NewBlogStore creates a new BlogStore with the given database connection.
func NewBlogStore(db *sql.DB) *BlogStore {
	return &BlogStore{db: db}
}

// scanBlog reads one blog row, decoding the JSONB list columns.
func scanBlog(row scanner) (*models.Blog, error) {
	b := &models.Blog{}
	var keywords, faqs, catIDs, tagIDs []byte
	if err := row.Scan(
		&b.ID, &b.Title, &b.Slug, &b.Description, &b.Image, &b.ImageKey,
		&b.MetaTitle, &b.MetaDescription, &keywords, &b.ExtraMetaTag, &faqs,
		&catIDs, &tagIDs, &b.Status, &b.ScheduledAt, &b.CanonicalURL,
		&b.FeaturedImageAlt, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		return nil, err
	}

	b.MetaKeywords = []string{}
	b.FAQs = []models.FAQ{}
	b.CategoryIDs = []uuid.UUID{}
	b.TagIDs = []uuid.UUID{}
	if err := scanJSON(keywords, &b.MetaKeywords); err != nil {
		return nil, err
	}
	if err := scanJSON(faqs, &b.FAQs); err != nil {
		return nil, err
	}
	if err := scanJSON(catIDs, &b.CategoryIDs); err != nil {
		return nil, err
	}
	if err := scanJSON(tagIDs, &b.TagIDs); err != nil {
		return nil, err
	}
	return b, nil
}

// List returns all blog posts, newest first.
func (s *BlogStore) List() ([]models.Blog, error) {
	rows, err := s.db.Query(`SELECT ` + blogColumns + ` FROM blogs ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list blogs: %w", err)
	}
	defer rows.Close()

	var items []models.Blog
	for rows.Next() {
		b, err := scanBlog(rows)
		if err != nil {
			return nil, fmt.Errorf("scan blog: %w", err)
		}
		items = append(items, *b)
	}
	return items, rows.Err()
}

// ListPublished returns all published posts, newest first. Used by the
// public listing and the sitemap.
func (s *BlogStore) ListPublished() ([]models.Blog, error) {
	rows, err := s.db.Query(`SELECT `+blogColumns+` FROM blogs WHERE status = $1 ORDER BY created_at DESC`,
		models.BlogStatusPublished)
	if err != nil {
		return nil, fmt.Errorf("list published blogs: %w", err)
	}
	defer rows.Close()

	var items []models.Blog
	for rows.Next() {
		b, err := scanBlog(rows)
		if err != nil {
			return nil, fmt.Errorf("scan blog: %w", err)
		}
		items = append(items, *b)
	}
	return items, rows.Err()
}

// FindByID retrieves a blog post by its UUID. Returns nil if not found.
func (s *BlogStore) FindByID(id uuid.UUID) (*models.Blog, error) {
	b, err := scanBlog(s.db.QueryRow(`SELECT `+blogColumns+` FROM blogs WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find blog by id: %w", err)
	}
	return b, nil
}

// FindBySlug retrieves a blog post by slug regardless of status. Used by
// the admin surface.
func (s *BlogStore) FindBySlug(slug string) (*models.Blog, error) {
	b, err := scanBlog(s.db.QueryRow(`SELECT `+blogColumns+` FROM blogs WHERE slug = $1`, slug))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find blog by slug: %w", err)
	}
	return b, nil
}

// FindPublishedBySlug retrieves a published blog post by slug. Drafts and
// scheduled posts are invisible to the public surface.
func (s *BlogStore) FindPublishedBySlug(slug string) (*models.Blog, error) {
	b, err := scanBlog(s.db.QueryRow(`SELECT `+blogColumns+` FROM blogs WHERE slug = $1 AND status = $2`,
		slug, models.BlogStatusPublished))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find published blog: %w", err)
	}
	return b, nil
}

// Create inserts a new blog post and returns it with the generated ID.
// Returns ErrDuplicate if the slug is already taken.
func (s *BlogStore) Create(b *models.Blog) (*models.Blog, error) {
	keywords, err := jsonb(b.MetaKeywords)
	if err != nil {
		return nil, err
	}
	faqs, err := jsonb(b.FAQs)
	if err != nil {
		return nil, err
	}
	catIDs, err := jsonb(b.CategoryIDs)
	if err != nil {
		return nil, err
	}
	tagIDs, err := jsonb(b.TagIDs)
	if err != nil {
		return nil, err
	}

	result, err := scanBlog(s.db.QueryRow(`
		INSERT INTO blogs (title, slug, description, image, image_key,
		                   meta_title, meta_description, meta_keywords, extra_metatag, faqs,
		                   category_ids, tag_ids, status, scheduled_at, canonical_url,
		                   featured_image_alt)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING `+blogColumns,
		b.Title, b.Slug, b.Description, b.Image, b.ImageKey,
		b.MetaTitle, b.MetaDescription, keywords, b.ExtraMetaTag, faqs,
		catIDs, tagIDs, b.Status, b.ScheduledAt, b.CanonicalURL,
		b.FeaturedImageAlt,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("create blog: %w", err)
	}
	return result, nil
}

// Update modifies an existing blog post. Returns ErrDuplicate if the new
// slug collides with another post.
func (s *BlogStore) Update(b *models.Blog) error {
	keywords, err := jsonb(b.MetaKeywords)
	if err != nil {
		return err
	}
	faqs, err := jsonb(b.FAQs)
	if err != nil {
		return err
	}
	catIDs, err := jsonb(b.CategoryIDs)
	if err != nil {
		return err
	}
	tagIDs, err := jsonb(b.TagIDs)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(`
		UPDATE blogs SET
			title = $1, slug = $2, description = $3, image = $4, image_key = $5,
			meta_title = $6, meta_description = $7, meta_keywords = $8,
			extra_metatag = $9, faqs = $10, category_ids = $11, tag_ids = $12,
			status = $13, scheduled_at = $14, canonical_url = $15,
			featured_image_alt = $16, updated_at = NOW()
		WHERE id = $17`,
		b.Title, b.Slug, b.Description, b.Image, b.ImageKey,
		b.MetaTitle, b.MetaDescription, keywords,
		b.ExtraMetaTag, faqs, catIDs, tagIDs,
		b.Status, b.ScheduledAt, b.CanonicalURL,
		b.FeaturedImageAlt, b.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("update blog: %w", err)
	}
	return nil
}

// Delete removes a blog post by ID. Directory entries referencing it keep
// their dangling blog_id.
func (s *BlogStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM blogs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete blog: %w", err)
	}
	return nil
}

// PromoteDue flips scheduled posts whose scheduled time has passed to
// published. Returns the number of posts promoted.
func (s *BlogStore) PromoteDue(now time.Time) (int64, error) {
	res, err := s.db.Exec(`
		UPDATE blogs SET status = $1, updated_at = NOW()
		WHERE status = $2 AND scheduled_at IS NOT NULL AND scheduled_at <= $3`,
		models.BlogStatusPublished, models.BlogStatusScheduled, now,
	)
	if err != nil {
		return 0, fmt.Errorf("promote scheduled blogs: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("promote scheduled blogs: %w", err)
	}
	return n, nil
}

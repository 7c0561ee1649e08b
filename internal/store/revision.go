// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"gujarattaxi/internal/models"
)

// RevisionStore handles the append-only blog revision log. Revisions are
// only ever inserted and read, never updated or deleted.
type RevisionStore struct {
	db *sql.DB
}

// NewRevisionStore creates a new RevisionStore.
func NewRevisionStore(db *sql.DB) *RevisionStore {
	return &RevisionStore{db: db}
}

// Create appends a revision snapshot and returns it with the generated ID.
func (s *RevisionStore) Create(r *models.BlogRevision) (*models.BlogRevision, error) {
	result := &models.BlogRevision{}
	err := s.db.QueryRow(`
		INSERT INTO blog_revisions (blog_id, title, description, content_html,
		                            meta_title, meta_description, excerpt)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, blog_id, title, description, content_html,
		          meta_title, meta_description, excerpt, created_at`,
		r.BlogID, r.Title, r.Description, r.ContentHTML,
		r.MetaTitle, r.MetaDescription, r.Excerpt,
	).Scan(
		&result.ID, &result.BlogID, &result.Title, &result.Description,
		&result.ContentHTML, &result.MetaTitle, &result.MetaDescription,
		&result.Excerpt, &result.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("create revision: %w", err)
	}
	return result, nil
}

// ListByBlogID returns all revisions of a post, newest first.
func (s *RevisionStore) ListByBlogID(blogID uuid.UUID) ([]models.BlogRevision, error) {
	rows, err := s.db.Query(`
		SELECT id, blog_id, title, description, content_html,
		       meta_title, meta_description, excerpt, created_at
		FROM blog_revisions
		WHERE blog_id = $1
		ORDER BY created_at DESC`, blogID)
	if err != nil {
		return nil, fmt.Errorf("list revisions: %w", err)
	}
	defer rows.Close()

	var items []models.BlogRevision
	for rows.Next() {
		var r models.BlogRevision
		if err := rows.Scan(
			&r.ID, &r.BlogID, &r.Title, &r.Description, &r.ContentHTML,
			&r.MetaTitle, &r.MetaDescription, &r.Excerpt, &r.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan revision: %w", err)
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

// FindByID retrieves a single revision. Returns nil if not found.
func (s *RevisionStore) FindByID(id uuid.UUID) (*models.BlogRevision, error) {
	r := &models.BlogRevision{}
	err := s.db.QueryRow(`
		SELECT id, blog_id, title, description, content_html,
		       meta_title, meta_description, excerpt, created_at
		FROM blog_revisions WHERE id = $1`, id,
	).Scan(
		&r.ID, &r.BlogID, &r.Title, &r.Description, &r.ContentHTML,
		&r.MetaTitle, &r.MetaDescription, &r.Excerpt, &r.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find revision by id: %w", err)
	}
	return r, nil
}

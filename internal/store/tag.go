// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"gujarattaxi/internal/models"
)

// TagStore handles blog tag operations.
type TagStore struct {
	db *sql.DB
}

// NewTagStore creates a new TagStore.
func NewTagStore(db *sql.DB) *TagStore {
	return &TagStore{db: db}
}

// List returns all tags ordered by name.
func (s *TagStore) List() ([]models.Tag, error) {
	rows, err := s.db.Query(`
		SELECT id, name, slug, description, seo_title, seo_description,
		       created_at, updated_at
		FROM tags ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	defer rows.Close()

	var items []models.Tag
	for rows.Next() {
		var t models.Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.Slug, &t.Description,
			&t.SEOTitle, &t.SEODescription, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan tag: %w", err)
		}
		items = append(items, t)
	}
	return items, rows.Err()
}

// ListByIDs returns the tags matching the given IDs, in name order.
// Unknown IDs are silently skipped: blog references are weak.
func (s *TagStore) ListByIDs(ids []uuid.UUID) ([]models.Tag, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	placeholders := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}

	rows, err := s.db.Query(`
		SELECT id, name, slug, description, seo_title, seo_description,
		       created_at, updated_at
		FROM tags WHERE id IN (`+strings.Join(placeholders, ", ")+`) ORDER BY name ASC`, args...)
	if err != nil {
		return nil, fmt.Errorf("list tags by ids: %w", err)
	}
	defer rows.Close()

	var items []models.Tag
	for rows.Next() {
		var t models.Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.Slug, &t.Description,
			&t.SEOTitle, &t.SEODescription, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan tag: %w", err)
		}
		items = append(items, t)
	}
	return items, rows.Err()
}

// FindByID retrieves a tag. Returns nil if not found.
func (s *TagStore) FindByID(id uuid.UUID) (*models.Tag, error) {
	t := &models.Tag{}
	err := s.db.QueryRow(`
		SELECT id, name, slug, description, seo_title, seo_description,
		       created_at, updated_at
		FROM tags WHERE id = $1`, id,
	).Scan(&t.ID, &t.Name, &t.Slug, &t.Description,
		&t.SEOTitle, &t.SEODescription, &t.CreatedAt, &t.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find tag by id: %w", err)
	}
	return t, nil
}

// Create inserts a new tag. Returns ErrDuplicate on slug collision.
func (s *TagStore) Create(t *models.Tag) (*models.Tag, error) {
	result := &models.Tag{}
	err := s.db.QueryRow(`
		INSERT INTO tags (name, slug, description, seo_title, seo_description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, slug, description, seo_title, seo_description,
		          created_at, updated_at`,
		t.Name, t.Slug, t.Description, t.SEOTitle, t.SEODescription,
	).Scan(&result.ID, &result.Name, &result.Slug, &result.Description,
		&result.SEOTitle, &result.SEODescription, &result.CreatedAt, &result.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("create tag: %w", err)
	}
	return result, nil
}

// Update modifies an existing tag.
func (s *TagStore) Update(t *models.Tag) error {
	_, err := s.db.Exec(`
		UPDATE tags SET name = $1, slug = $2, description = $3,
		       seo_title = $4, seo_description = $5, updated_at = NOW()
		WHERE id = $6`,
		t.Name, t.Slug, t.Description, t.SEOTitle, t.SEODescription, t.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("update tag: %w", err)
	}
	return nil
}

// Delete removes a tag. Blog posts keep the dangling ID in their tag_ids
// list; it simply stops resolving.
func (s *TagStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM tags WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete tag: %w", err)
	}
	return nil
}

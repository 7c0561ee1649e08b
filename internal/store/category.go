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

// CategoryStore handles blog category operations.
type CategoryStore struct {
	db *sql.DB
}

// NewCategoryStore creates a new CategoryStore.
func NewCategoryStore(db *sql.DB) *CategoryStore {
	return &CategoryStore{db: db}
}

// List returns all categories ordered by name.
func (s *CategoryStore) List() ([]models.Category, error) {
	rows, err := s.db.Query(`
		SELECT id, name, slug, parent_id, description, seo_title, seo_description,
		       created_at, updated_at
		FROM categories ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var items []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.ParentID, &c.Description,
			&c.SEOTitle, &c.SEODescription, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

// ListByIDs returns the categories matching the given IDs, in name order.
// Unknown IDs are silently skipped: blog references are weak.
func (s *CategoryStore) ListByIDs(ids []uuid.UUID) ([]models.Category, error) {
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
		SELECT id, name, slug, parent_id, description, seo_title, seo_description,
		       created_at, updated_at
		FROM categories WHERE id IN (`+strings.Join(placeholders, ", ")+`) ORDER BY name ASC`, args...)
	if err != nil {
		return nil, fmt.Errorf("list categories by ids: %w", err)
	}
	defer rows.Close()

	var items []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.ParentID, &c.Description,
			&c.SEOTitle, &c.SEODescription, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

// FindByID retrieves a category. Returns nil if not found.
func (s *CategoryStore) FindByID(id uuid.UUID) (*models.Category, error) {
	c := &models.Category{}
	err := s.db.QueryRow(`
		SELECT id, name, slug, parent_id, description, seo_title, seo_description,
		       created_at, updated_at
		FROM categories WHERE id = $1`, id,
	).Scan(&c.ID, &c.Name, &c.Slug, &c.ParentID, &c.Description,
		&c.SEOTitle, &c.SEODescription, &c.CreatedAt, &c.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find category by id: %w", err)
	}
	return c, nil
}

// Create inserts a new category. Returns ErrDuplicate on slug collision.
func (s *CategoryStore) Create(c *models.Category) (*models.Category, error) {
	result := &models.Category{}
	err := s.db.QueryRow(`
		INSERT INTO categories (name, slug, parent_id, description, seo_title, seo_description)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, name, slug, parent_id, description, seo_title, seo_description,
		          created_at, updated_at`,
		c.Name, c.Slug, c.ParentID, c.Description, c.SEOTitle, c.SEODescription,
	).Scan(&result.ID, &result.Name, &result.Slug, &result.ParentID, &result.Description,
		&result.SEOTitle, &result.SEODescription, &result.CreatedAt, &result.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("create category: %w", err)
	}
	return result, nil
}

// Update modifies an existing category.
func (s *CategoryStore) Update(c *models.Category) error {
	_, err := s.db.Exec(`
		UPDATE categories SET name = $1, slug = $2, parent_id = $3, description = $4,
		       seo_title = $5, seo_description = $6, updated_at = NOW()
		WHERE id = $7`,
		c.Name, c.Slug, c.ParentID, c.Description, c.SEOTitle, c.SEODescription, c.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// Delete removes a category. Blog posts keep the dangling ID in their
// category_ids list; it simply stops resolving.
func (s *CategoryStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

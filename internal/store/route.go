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

// RouteStore handles taxi route directory entries.
type RouteStore struct {
	db *sql.DB
}

// NewRouteStore creates a new RouteStore.
func NewRouteStore(db *sql.DB) *RouteStore {
	return &RouteStore{db: db}
}

// List returns all routes, newest first.
func (s *RouteStore) List() ([]models.Route, error) {
	rows, err := s.db.Query(`
		SELECT id, name, from_city, to_city, url, blog_id, created_at
		FROM routes ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list routes: %w", err)
	}
	defer rows.Close()

	var items []models.Route
	for rows.Next() {
		var r models.Route
		if err := rows.Scan(&r.ID, &r.Name, &r.From, &r.To, &r.URL, &r.BlogID, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan route: %w", err)
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

// FindByID retrieves a route by its UUID. Returns nil if not found.
func (s *RouteStore) FindByID(id uuid.UUID) (*models.Route, error) {
	r := &models.Route{}
	err := s.db.QueryRow(`
		SELECT id, name, from_city, to_city, url, blog_id, created_at
		FROM routes WHERE id = $1`, id,
	).Scan(&r.ID, &r.Name, &r.From, &r.To, &r.URL, &r.BlogID, &r.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find route by id: %w", err)
	}
	return r, nil
}

// FindByURL retrieves a route by its unique URL slug. Returns nil if not
// found. Used by the slug resolver.
func (s *RouteStore) FindByURL(url string) (*models.Route, error) {
	r := &models.Route{}
	err := s.db.QueryRow(`
		SELECT id, name, from_city, to_city, url, blog_id, created_at
		FROM routes WHERE url = $1`, url,
	).Scan(&r.ID, &r.Name, &r.From, &r.To, &r.URL, &r.BlogID, &r.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find route by url: %w", err)
	}
	return r, nil
}

// Create inserts a new route. Returns ErrDuplicate if the URL is taken.
func (s *RouteStore) Create(r *models.Route) (*models.Route, error) {
	result := &models.Route{}
	err := s.db.QueryRow(`
		INSERT INTO routes (name, from_city, to_city, url, blog_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, from_city, to_city, url, blog_id, created_at`,
		r.Name, r.From, r.To, r.URL, r.BlogID,
	).Scan(&result.ID, &result.Name, &result.From, &result.To, &result.URL, &result.BlogID, &result.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("create route: %w", err)
	}
	return result, nil
}

// Update modifies an existing route. Returns ErrDuplicate on URL collision.
func (s *RouteStore) Update(r *models.Route) error {
	_, err := s.db.Exec(`
		UPDATE routes SET name = $1, from_city = $2, to_city = $3, url = $4, blog_id = $5
		WHERE id = $6`,
		r.Name, r.From, r.To, r.URL, r.BlogID, r.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("update route: %w", err)
	}
	return nil
}

// Delete removes a route by ID.
func (s *RouteStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM routes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete route: %w", err)
	}
	return nil
}

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

// CityStore handles serviced-city directory entries.
type CityStore struct {
	db *sql.DB
}

// NewCityStore creates a new CityStore.
func NewCityStore(db *sql.DB) *CityStore {
	return &CityStore{db: db}
}

// List returns all cities, newest first.
func (s *CityStore) List() ([]models.City, error) {
	rows, err := s.db.Query(`
		SELECT id, name, from_city, url, blog_id, created_at
		FROM cities ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list cities: %w", err)
	}
	defer rows.Close()

	var items []models.City
	for rows.Next() {
		var c models.City
		if err := rows.Scan(&c.ID, &c.Name, &c.From, &c.URL, &c.BlogID, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan city: %w", err)
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

// FindByID retrieves a city by its UUID. Returns nil if not found.
func (s *CityStore) FindByID(id uuid.UUID) (*models.City, error) {
	c := &models.City{}
	err := s.db.QueryRow(`
		SELECT id, name, from_city, url, blog_id, created_at
		FROM cities WHERE id = $1`, id,
	).Scan(&c.ID, &c.Name, &c.From, &c.URL, &c.BlogID, &c.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find city by id: %w", err)
	}
	return c, nil
}

// FindByURL retrieves a city by its unique URL slug. Returns nil if not
// found. Used by the slug resolver.
func (s *CityStore) FindByURL(url string) (*models.City, error) {
	c := &models.City{}
	err := s.db.QueryRow(`
		SELECT id, name, from_city, url, blog_id, created_at
		FROM cities WHERE url = $1`, url,
	).Scan(&c.ID, &c.Name, &c.From, &c.URL, &c.BlogID, &c.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find city by url: %w", err)
	}
	return c, nil
}

// Create inserts a new city. Returns ErrDuplicate if the URL is taken.
func (s *CityStore) Create(c *models.City) (*models.City, error) {
	result := &models.City{}
	err := s.db.QueryRow(`
		INSERT INTO cities (name, from_city, url, blog_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, from_city, url, blog_id, created_at`,
		c.Name, c.From, c.URL, c.BlogID,
	).Scan(&result.ID, &result.Name, &result.From, &result.URL, &result.BlogID, &result.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("create city: %w", err)
	}
	return result, nil
}

// Update modifies an existing city. Returns ErrDuplicate on URL collision.
func (s *CityStore) Update(c *models.City) error {
	_, err := s.db.Exec(`
		UPDATE cities SET name = $1, from_city = $2, url = $3, blog_id = $4
		WHERE id = $5`,
		c.Name, c.From, c.URL, c.BlogID, c.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("update city: %w", err)
	}
	return nil
}

// Delete removes a city by ID.
func (s *CityStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM cities WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete city: %w", err)
	}
	return nil
}

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

// AirportStore handles airport-transfer directory entries.
type AirportStore struct {
	db *sql.DB
}

// NewAirportStore creates a new AirportStore.
func NewAirportStore(db *sql.DB) *AirportStore {
	return &AirportStore{db: db}
}

// List returns all airports, newest first.
func (s *AirportStore) List() ([]models.Airport, error) {
	rows, err := s.db.Query(`
		SELECT id, name, from_city, to_city, url, blog_id, created_at
		FROM airports ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list airports: %w", err)
	}
	defer rows.Close()

	var items []models.Airport
	for rows.Next() {
		var a models.Airport
		if err := rows.Scan(&a.ID, &a.Name, &a.From, &a.To, &a.URL, &a.BlogID, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan airport: %w", err)
		}
		items = append(items, a)
	}
	return items, rows.Err()
}

// FindByID retrieves an airport by its UUID. Returns nil if not found.
func (s *AirportStore) FindByID(id uuid.UUID) (*models.Airport, error) {
	a := &models.Airport{}
	err := s.db.QueryRow(`
		SELECT id, name, from_city, to_city, url, blog_id, created_at
		FROM airports WHERE id = $1`, id,
	).Scan(&a.ID, &a.Name, &a.From, &a.To, &a.URL, &a.BlogID, &a.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find airport by id: %w", err)
	}
	return a, nil
}

// FindByURL retrieves an airport by its unique URL slug. Returns nil if
// not found. Used by the slug resolver.
func (s *AirportStore) FindByURL(url string) (*models.Airport, error) {
	a := &models.Airport{}
	err := s.db.QueryRow(`
		SELECT id, name, from_city, to_city, url, blog_id, created_at
		FROM airports WHERE url = $1`, url,
	).Scan(&a.ID, &a.Name, &a.From, &a.To, &a.URL, &a.BlogID, &a.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find airport by url: %w", err)
	}
	return a, nil
}

// Create inserts a new airport. Returns ErrDuplicate if the URL is taken.
func (s *AirportStore) Create(a *models.Airport) (*models.Airport, error) {
	result := &models.Airport{}
	err := s.db.QueryRow(`
		INSERT INTO airports (name, from_city, to_city, url, blog_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, from_city, to_city, url, blog_id, created_at`,
		a.Name, a.From, a.To, a.URL, a.BlogID,
	).Scan(&result.ID, &result.Name, &result.From, &result.To, &result.URL, &result.BlogID, &result.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("create airport: %w", err)
	}
	return result, nil
}

// Update modifies an existing airport. Returns ErrDuplicate on URL collision.
func (s *AirportStore) Update(a *models.Airport) error {
	_, err := s.db.Exec(`
		UPDATE airports SET name = $1, from_city = $2, to_city = $3, url = $4, blog_id = $5
		WHERE id = $6`,
		a.Name, a.From, a.To, a.URL, a.BlogID, a.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("update airport: %w", err)
	}
	return nil
}

// Delete removes an airport by ID.
func (s *AirportStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM airports WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete airport: %w", err)
	}
	return nil
}

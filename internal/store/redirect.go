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

// RedirectStore handles URL redirect rules.
type RedirectStore struct {
	db *sql.DB
}

// NewRedirectStore creates a new RedirectStore.
func NewRedirectStore(db *sql.DB) *RedirectStore {
	return &RedirectStore{db: db}
}

const redirectColumns = `id, from_path, to_path, type, active, notes, created_at, updated_at`

func scanRedirect(row scanner) (*models.Redirect, error) {
	r := &models.Redirect{}
	err := row.Scan(&r.ID, &r.FromPath, &r.ToPath, &r.Type, &r.Active,
		&r.Notes, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// List returns all redirect rules, newest first.
func (s *RedirectStore) List() ([]models.Redirect, error) {
	rows, err := s.db.Query(`SELECT ` + redirectColumns + ` FROM redirects ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list redirects: %w", err)
	}
	defer rows.Close()

	var items []models.Redirect
	for rows.Next() {
		r, err := scanRedirect(rows)
		if err != nil {
			return nil, fmt.Errorf("scan redirect: %w", err)
		}
		items = append(items, *r)
	}
	return items, rows.Err()
}

// FindByID retrieves a redirect rule. Returns nil if not found.
func (s *RedirectStore) FindByID(id uuid.UUID) (*models.Redirect, error) {
	r, err := scanRedirect(s.db.QueryRow(`SELECT `+redirectColumns+` FROM redirects WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find redirect by id: %w", err)
	}
	return r, nil
}

// FindActiveByFromPath retrieves an active rule matching the given source
// path. Returns nil if no active rule matches. Used by the public lookup.
func (s *RedirectStore) FindActiveByFromPath(fromPath string) (*models.Redirect, error) {
	r, err := scanRedirect(s.db.QueryRow(
		`SELECT `+redirectColumns+` FROM redirects WHERE from_path = $1 AND active = TRUE`,
		fromPath))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find redirect by path: %w", err)
	}
	return r, nil
}

// Create inserts a redirect rule. Returns ErrDuplicate if a rule for the
// same from_path already exists.
func (s *RedirectStore) Create(r *models.Redirect) (*models.Redirect, error) {
	result, err := scanRedirect(s.db.QueryRow(`
		INSERT INTO redirects (from_path, to_path, type, active, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+redirectColumns,
		r.FromPath, r.ToPath, r.Type, r.Active, r.Notes))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("create redirect: %w", err)
	}
	return result, nil
}

// Update modifies an existing redirect rule.
func (s *RedirectStore) Update(r *models.Redirect) error {
	_, err := s.db.Exec(`
		UPDATE redirects SET from_path = $1, to_path = $2, type = $3,
		       active = $4, notes = $5, updated_at = NOW()
		WHERE id = $6`,
		r.FromPath, r.ToPath, r.Type, r.Active, r.Notes, r.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("update redirect: %w", err)
	}
	return nil
}

// Delete removes a redirect rule by ID.
func (s *RedirectStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM redirects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete redirect: %w", err)
	}
	return nil
}

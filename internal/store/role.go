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

// RoleStore handles role and permission persistence. Permission flags are
// stored as a JSONB document; unknown keys from older versions are ignored
// on read and absent flags default to false.
type RoleStore struct {
	db *sql.DB
}

// NewRoleStore creates a new RoleStore.
func NewRoleStore(db *sql.DB) *RoleStore {
	return &RoleStore{db: db}
}

func scanRole(row scanner) (*models.Role, error) {
	r := &models.Role{}
	var perms []byte
	if err := row.Scan(&r.ID, &r.Name, &r.Slug, &r.Description, &perms,
		&r.CreatedAt, &r.UpdatedAt); err != nil {
		return nil, err
	}
	if err := scanJSON(perms, &r.Permissions); err != nil {
		return nil, err
	}
	return r, nil
}

// List returns all roles ordered by name.
func (s *RoleStore) List() ([]models.Role, error) {
	rows, err := s.db.Query(`
		SELECT id, name, slug, description, permissions, created_at, updated_at
		FROM roles ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	defer rows.Close()

	var items []models.Role
	for rows.Next() {
		r, err := scanRole(rows)
		if err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		items = append(items, *r)
	}
	return items, rows.Err()
}

// FindByID retrieves a role. Returns nil if not found.
func (s *RoleStore) FindByID(id uuid.UUID) (*models.Role, error) {
	r, err := scanRole(s.db.QueryRow(`
		SELECT id, name, slug, description, permissions, created_at, updated_at
		FROM roles WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find role by id: %w", err)
	}
	return r, nil
}

// FindBySlug retrieves a role by its unique slug. Returns nil if not found.
func (s *RoleStore) FindBySlug(slug string) (*models.Role, error) {
	r, err := scanRole(s.db.QueryRow(`
		SELECT id, name, slug, description, permissions, created_at, updated_at
		FROM roles WHERE slug = $1`, slug))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find role by slug: %w", err)
	}
	return r, nil
}

// Create inserts a new role. Returns ErrDuplicate on name or slug collision.
func (s *RoleStore) Create(r *models.Role) (*models.Role, error) {
	perms, err := jsonb(r.Permissions)
	if err != nil {
		return nil, err
	}

	result, err := scanRole(s.db.QueryRow(`
		INSERT INTO roles (name, slug, description, permissions)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, slug, description, permissions, created_at, updated_at`,
		r.Name, r.Slug, r.Description, perms))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("create role: %w", err)
	}
	return result, nil
}

// Update modifies an existing role.
func (s *RoleStore) Update(r *models.Role) error {
	perms, err := jsonb(r.Permissions)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(`
		UPDATE roles SET name = $1, slug = $2, description = $3, permissions = $4,
		       updated_at = NOW()
		WHERE id = $5`,
		r.Name, r.Slug, r.Description, perms, r.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("update role: %w", err)
	}
	return nil
}

// Delete removes a role. Users assigned to it keep the dangling role_id
// and lose all permissions until reassigned.
func (s *RoleStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM roles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete role: %w", err)
	}
	return nil
}
